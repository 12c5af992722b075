package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mca/pkg/domain"
)

func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time

	return &v
}

// date normalizes a DATE column to midnight UTC.
func date(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := date(t.Time)

	return &v
}

type PgApplication struct {
	ID              uuid.UUID       `db:"id"               goqu:"skipinsert"`
	MerchantID      uuid.UUID       `db:"merchant_id"`
	ISOID           uuid.UUID       `db:"iso_id"`
	RequestedAmount decimal.Decimal `db:"requested_amount"`
	Status          string          `db:"status"`
	MerchantName    string          `db:"merchant_name"`
	MerchantEmail   string          `db:"merchant_email"`
	MerchantPhone   string          `db:"merchant_phone"`
	CreatedAt       time.Time       `db:"created_at"       goqu:"skipinsert"`
	UpdatedAt       sql.NullTime    `db:"updated_at"       goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() domain.Application {
	return domain.Application{
		ID:              domain.ApplicationID(p.ID),
		MerchantID:      domain.MerchantID(p.MerchantID),
		ISOID:           domain.PartyID(p.ISOID),
		RequestedAmount: p.RequestedAmount,
		Status:          domain.ApplicationStatus(p.Status),
		Merchant:        domain.Contact{Name: p.MerchantName, Email: p.MerchantEmail, Phone: p.MerchantPhone},
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

func (p *PgApplication) FromDomain(a domain.Application) {
	*p = PgApplication{
		ID:              uuid.UUID(a.ID),
		MerchantID:      uuid.UUID(a.MerchantID),
		ISOID:           uuid.UUID(a.ISOID),
		RequestedAmount: a.RequestedAmount,
		Status:          string(a.Status),
		MerchantName:    a.Merchant.Name,
		MerchantEmail:   a.Merchant.Email,
		MerchantPhone:   a.Merchant.Phone,
	}
}

type PgFunding struct {
	ID            uuid.UUID       `db:"id"             goqu:"skipinsert"`
	ApplicationID uuid.UUID       `db:"application_id"`
	MerchantID    uuid.UUID       `db:"merchant_id"`
	FunderID      uuid.UUID       `db:"funder_id"`
	ISOID         uuid.UUID       `db:"iso_id"`
	FundedAmount  decimal.Decimal `db:"funded_amount"`
	PaybackAmount decimal.Decimal `db:"payback_amount"`
	Status        string          `db:"status"`
	FundedDate    time.Time       `db:"funded_date"`
	MerchantName  string          `db:"merchant_name"`
	MerchantEmail string          `db:"merchant_email"`
	MerchantPhone string          `db:"merchant_phone"`
	CreatedAt     time.Time       `db:"created_at"     goqu:"skipinsert"`
	UpdatedAt     sql.NullTime    `db:"updated_at"     goqu:"skipinsert"`
}

func (p *PgFunding) ToDomain() domain.Funding {
	return domain.Funding{
		ID:            domain.FundingID(p.ID),
		ApplicationID: domain.ApplicationID(p.ApplicationID),
		MerchantID:    domain.MerchantID(p.MerchantID),
		FunderID:      domain.PartyID(p.FunderID),
		ISOID:         domain.PartyID(p.ISOID),
		FundedAmount:  p.FundedAmount,
		PaybackAmount: p.PaybackAmount,
		Status:        domain.FundingStatus(p.Status),
		FundedDate:    date(p.FundedDate),
		Merchant:      domain.Contact{Name: p.MerchantName, Email: p.MerchantEmail, Phone: p.MerchantPhone},
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgFunding) FromDomain(f domain.Funding) {
	*p = PgFunding{
		ID:            uuid.UUID(f.ID),
		ApplicationID: uuid.UUID(f.ApplicationID),
		MerchantID:    uuid.UUID(f.MerchantID),
		FunderID:      uuid.UUID(f.FunderID),
		ISOID:         uuid.UUID(f.ISOID),
		FundedAmount:  f.FundedAmount,
		PaybackAmount: f.PaybackAmount,
		Status:        string(f.Status),
		FundedDate:    date(f.FundedDate),
		MerchantName:  f.Merchant.Name,
		MerchantEmail: f.Merchant.Email,
		MerchantPhone: f.Merchant.Phone,
	}
}

type PgFee struct {
	ID        uuid.UUID       `db:"id"         goqu:"skipinsert"`
	FundingID uuid.UUID       `db:"funding_id"`
	Type      string          `db:"type"`
	Amount    decimal.Decimal `db:"amount"`
	Upfront   bool            `db:"upfront"`
	CreatedAt time.Time       `db:"created_at" goqu:"skipinsert"`
}

func (p *PgFee) ToDomain() domain.Fee {
	return domain.Fee{
		ID:        domain.FeeID(p.ID),
		FundingID: domain.FundingID(p.FundingID),
		Type:      domain.FeeType(p.Type),
		Amount:    p.Amount,
		Upfront:   p.Upfront,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgFee) FromDomain(f domain.Fee) {
	*p = PgFee{
		FundingID: uuid.UUID(f.FundingID),
		Type:      string(f.Type),
		Amount:    f.Amount,
		Upfront:   f.Upfront,
	}
}

type PgExpense struct {
	ID          uuid.UUID       `db:"id"          goqu:"skipinsert"`
	FundingID   uuid.UUID       `db:"funding_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"  goqu:"skipinsert"`
}

func (p *PgExpense) ToDomain() domain.Expense {
	return domain.Expense{
		ID:          domain.ExpenseID(p.ID),
		FundingID:   domain.FundingID(p.FundingID),
		Description: p.Description,
		Amount:      p.Amount,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgExpense) FromDomain(e domain.Expense) {
	*p = PgExpense{
		FundingID:   uuid.UUID(e.FundingID),
		Description: e.Description,
		Amount:      e.Amount,
	}
}

type PgPaybackPlan struct {
	ID              uuid.UUID       `db:"id"                goqu:"skipinsert"`
	FundingID       uuid.UUID       `db:"funding_id"`
	Frequency       string          `db:"frequency"`
	StartDate       time.Time       `db:"start_date"`
	DayOfWeek       sql.NullInt16   `db:"day_of_week"`
	DayOfMonth      sql.NullInt16   `db:"day_of_month"`
	PaymentAmount   decimal.Decimal `db:"payment_amount"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	PaymentCount    int             `db:"payment_count"`
	Convention      string          `db:"convention"`
	SkipWeekends    bool            `db:"skip_weekends"`
	Status          string          `db:"status"`
	NextPaymentDate sql.NullTime    `db:"next_payment_date"`
	CreatedAt       time.Time       `db:"created_at"        goqu:"skipinsert"`
	UpdatedAt       sql.NullTime    `db:"updated_at"        goqu:"skipinsert"`
}

func (p *PgPaybackPlan) ToDomain() domain.PaybackPlan {
	plan := domain.PaybackPlan{
		ID:              domain.PaybackPlanID(p.ID),
		FundingID:       domain.FundingID(p.FundingID),
		Frequency:       domain.Frequency(p.Frequency),
		StartDate:       date(p.StartDate),
		PaymentAmount:   p.PaymentAmount,
		TotalAmount:     p.TotalAmount,
		PaymentCount:    p.PaymentCount,
		Convention:      domain.Convention(p.Convention),
		SkipWeekends:    p.SkipWeekends,
		Status:          domain.PaybackPlanStatus(p.Status),
		NextPaymentDate: datePtr(p.NextPaymentDate),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
	if p.DayOfWeek.Valid {
		wd := time.Weekday(p.DayOfWeek.Int16)
		plan.DayOfWeek = &wd
	}
	if p.DayOfMonth.Valid {
		dom := int(p.DayOfMonth.Int16)
		plan.DayOfMonth = &dom
	}

	return plan
}

func (p *PgPaybackPlan) FromDomain(plan domain.PaybackPlan) {
	*p = PgPaybackPlan{
		FundingID:       uuid.UUID(plan.FundingID),
		Frequency:       string(plan.Frequency),
		StartDate:       date(plan.StartDate),
		PaymentAmount:   plan.PaymentAmount,
		TotalAmount:     plan.TotalAmount,
		PaymentCount:    plan.PaymentCount,
		Convention:      string(plan.Convention),
		SkipWeekends:    plan.SkipWeekends,
		Status:          string(plan.Status),
		NextPaymentDate: nullTime(plan.NextPaymentDate),
	}
	if plan.DayOfWeek != nil {
		p.DayOfWeek = sql.NullInt16{Int16: int16(*plan.DayOfWeek), Valid: true} //nolint: gosec
	}
	if plan.DayOfMonth != nil {
		p.DayOfMonth = sql.NullInt16{Int16: int16(*plan.DayOfMonth), Valid: true} //nolint: gosec
	}
}

type PgPayback struct {
	ID            uuid.UUID       `db:"id"             goqu:"skipinsert"`
	FundingID     uuid.UUID       `db:"funding_id"`
	PlanID        uuid.NullUUID   `db:"plan_id"`
	Seq           int             `db:"seq"`
	DueDate       time.Time       `db:"due_date"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	FailureReason sql.NullString  `db:"failure_reason"`
	PaidDate      sql.NullTime    `db:"paid_date"`
	CreatedAt     time.Time       `db:"created_at"     goqu:"skipinsert"`
	UpdatedAt     sql.NullTime    `db:"updated_at"     goqu:"skipinsert"`
}

func (p *PgPayback) ToDomain() domain.Payback {
	pb := domain.Payback{
		ID:            domain.PaybackID(p.ID),
		FundingID:     domain.FundingID(p.FundingID),
		Seq:           p.Seq,
		DueDate:       date(p.DueDate),
		Amount:        p.Amount,
		Status:        domain.PaybackStatus(p.Status),
		FailureReason: p.FailureReason.String,
		PaidDate:      datePtr(p.PaidDate),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
	if p.PlanID.Valid {
		id := domain.PaybackPlanID(p.PlanID.UUID)
		pb.PlanID = &id
	}

	return pb
}

func (p *PgPayback) FromDomain(pb domain.Payback) {
	*p = PgPayback{
		FundingID:     uuid.UUID(pb.FundingID),
		Seq:           pb.Seq,
		DueDate:       date(pb.DueDate),
		Amount:        pb.Amount,
		Status:        string(pb.Status),
		FailureReason: sql.NullString{String: pb.FailureReason, Valid: pb.FailureReason != ""},
		PaidDate:      nullTime(pb.PaidDate),
	}
	if pb.PlanID != nil {
		p.PlanID = uuid.NullUUID{UUID: uuid.UUID(*pb.PlanID), Valid: true}
	}
}

type PgSyndication struct {
	ID                   uuid.UUID       `db:"id"                     goqu:"skipinsert"`
	FundingID            uuid.UUID       `db:"funding_id"`
	SyndicatorID         uuid.UUID       `db:"syndicator_id"`
	ParticipationAmount  decimal.Decimal `db:"participation_amount"`
	ParticipationPercent decimal.Decimal `db:"participation_percent"`
	ManagementFeePercent decimal.Decimal `db:"management_fee_percent"`
	Status               string          `db:"status"`
	CreatedAt            time.Time       `db:"created_at"             goqu:"skipinsert"`
	UpdatedAt            sql.NullTime    `db:"updated_at"             goqu:"skipinsert"`
}

func (p *PgSyndication) ToDomain() domain.Syndication {
	return domain.Syndication{
		ID:                   domain.SyndicationID(p.ID),
		FundingID:            domain.FundingID(p.FundingID),
		SyndicatorID:         domain.PartyID(p.SyndicatorID),
		ParticipationAmount:  p.ParticipationAmount,
		ParticipationPercent: p.ParticipationPercent,
		ManagementFeePercent: p.ManagementFeePercent,
		Status:               domain.SyndicationStatus(p.Status),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
	}
}

func (p *PgSyndication) FromDomain(s domain.Syndication) {
	*p = PgSyndication{
		FundingID:            uuid.UUID(s.FundingID),
		SyndicatorID:         uuid.UUID(s.SyndicatorID),
		ParticipationAmount:  s.ParticipationAmount,
		ParticipationPercent: s.ParticipationPercent,
		ManagementFeePercent: s.ManagementFeePercent,
		Status:               string(s.Status),
	}
}

type PgSyndicationOffer struct {
	ID            uuid.UUID       `db:"id"             goqu:"skipinsert"`
	FundingID     uuid.UUID       `db:"funding_id"`
	SyndicatorID  uuid.UUID       `db:"syndicator_id"`
	OfferedAmount decimal.Decimal `db:"offered_amount"`
	Status        string          `db:"status"`
	ExpiresAt     sql.NullTime    `db:"expires_at"`
	CreatedAt     time.Time       `db:"created_at"     goqu:"skipinsert"`
	UpdatedAt     sql.NullTime    `db:"updated_at"     goqu:"skipinsert"`
}

func (p *PgSyndicationOffer) ToDomain() domain.SyndicationOffer {
	return domain.SyndicationOffer{
		ID:            domain.SyndicationOfferID(p.ID),
		FundingID:     domain.FundingID(p.FundingID),
		SyndicatorID:  domain.PartyID(p.SyndicatorID),
		OfferedAmount: p.OfferedAmount,
		Status:        domain.SyndicationOfferStatus(p.Status),
		ExpiresAt:     p.ExpiresAt.Time,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgSyndicationOffer) FromDomain(o domain.SyndicationOffer) {
	*p = PgSyndicationOffer{
		FundingID:     uuid.UUID(o.FundingID),
		SyndicatorID:  uuid.UUID(o.SyndicatorID),
		OfferedAmount: o.OfferedAmount,
		Status:        string(o.Status),
		ExpiresAt:     nullTime(&o.ExpiresAt),
	}
}

type PgIntent struct {
	ID            uuid.UUID       `db:"id"             goqu:"skipinsert"`
	FundingID     uuid.UUID       `db:"funding_id"`
	Kind          string          `db:"kind"`
	PayeeID       uuid.UUID       `db:"payee_id"`
	SyndicationID uuid.NullUUID   `db:"syndication_id"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	ScheduledDate time.Time       `db:"scheduled_date"`
	CreatedAt     time.Time       `db:"created_at"     goqu:"skipinsert"`
	UpdatedAt     sql.NullTime    `db:"updated_at"     goqu:"skipinsert"`
}

func (p *PgIntent) ToDomain() domain.Intent {
	it := domain.Intent{
		ID:            domain.IntentID(p.ID),
		FundingID:     domain.FundingID(p.FundingID),
		Kind:          domain.IntentKind(p.Kind),
		PayeeID:       domain.PartyID(p.PayeeID),
		Amount:        p.Amount,
		Status:        domain.IntentStatus(p.Status),
		ScheduledDate: date(p.ScheduledDate),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
	if p.SyndicationID.Valid {
		id := domain.SyndicationID(p.SyndicationID.UUID)
		it.SyndicationID = &id
	}

	return it
}

func (p *PgIntent) FromDomain(it domain.Intent) {
	*p = PgIntent{
		FundingID:     uuid.UUID(it.FundingID),
		Kind:          string(it.Kind),
		PayeeID:       uuid.UUID(it.PayeeID),
		Amount:        it.Amount,
		Status:        string(it.Status),
		ScheduledDate: date(it.ScheduledDate),
	}
	if it.SyndicationID != nil {
		p.SyndicationID = uuid.NullUUID{UUID: uuid.UUID(*it.SyndicationID), Valid: true}
	}
}

type PgTransaction struct {
	ID          uuid.UUID       `db:"id"           goqu:"skipinsert"`
	FundingID   uuid.UUID       `db:"funding_id"`
	Kind        string          `db:"kind"`
	Source      string          `db:"source"`
	ReferenceID uuid.UUID       `db:"reference_id"`
	Amount      decimal.Decimal `db:"amount"`
	SettledAt   time.Time       `db:"settled_at"`
}

func (p *PgTransaction) ToDomain() domain.Transaction {
	return domain.Transaction{
		ID:          domain.TransactionID(p.ID),
		FundingID:   domain.FundingID(p.FundingID),
		Kind:        domain.TransactionKind(p.Kind),
		Source:      domain.TransactionSource(p.Source),
		ReferenceID: p.ReferenceID,
		Amount:      p.Amount,
		SettledAt:   p.SettledAt,
	}
}

func (p *PgTransaction) FromDomain(t domain.Transaction) {
	settled := t.SettledAt
	if settled.IsZero() {
		settled = time.Now().UTC()
	}

	*p = PgTransaction{
		FundingID:   uuid.UUID(t.FundingID),
		Kind:        string(t.Kind),
		Source:      string(t.Source),
		ReferenceID: t.ReferenceID,
		Amount:      t.Amount,
		SettledAt:   settled,
	}
}

// model is implemented by every Pg* row type.
type model[D any] interface {
	ToDomain() D
	FromDomain(D)
}

func toPg[D any, P any, PP interface {
	*P
	model[D]
}](in []D) []P {
	out := make([]P, len(in))
	for i := range in {
		PP(&out[i]).FromDomain(in[i])
	}

	return out
}

func toDomain[D any, P any, PP interface {
	*P
	model[D]
}](in []P) []D {
	out := make([]D, len(in))
	for i := range in {
		out[i] = PP(&in[i]).ToDomain()
	}

	return out
}

func uuids[T ~[16]byte](ids []T) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		out[i] = uuid.UUID(id)
	}

	return out
}
