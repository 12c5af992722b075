// Package payback owns the lifecycle of payback plans: generating their
// schedule, recording collection results and keeping the plan in sync with
// its paybacks.
package payback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"mca/internal/config"
	"mca/internal/rollup"
	"mca/pkg/calendar"
	"mca/pkg/domain"
	"mca/pkg/logger"
	"mca/pkg/metrics"
	"mca/pkg/notifier"
	"mca/pkg/schedule"
	"mca/pkg/serrors"
	"mca/pkg/storage"
)

const (
	instrumentation = "mca/internal/payback"

	templateFailed   = "payback_failed"
	templateUpcoming = "payback_upcoming"
)

// Options configure the payback service.
type Options struct {
	Calendar          *calendar.Calendar
	DefaultConvention domain.Convention
	// MaxAttempts and RefreshUniquePeriod apply to the jobs enqueued by the service.
	MaxAttempts         int
	RefreshUniquePeriod time.Duration
	// CollectionsEmail receives failed payback alerts.
	CollectionsEmail string
	Now              func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, cal *calendar.Calendar) Options {
	return Options{
		Calendar:            cal,
		DefaultConvention:   domain.Convention(cfg.Schedule.DefaultConvention),
		MaxAttempts:         cfg.Worker.MaxAttempts,
		RefreshUniquePeriod: cfg.Worker.RefreshUniquePeriod,
		CollectionsEmail:    cfg.Notifier.CollectionsEmail,
		Now:                 time.Now,
	}
}

type service struct {
	options  Options
	storage  storage.Storage
	notifier notifier.Notifier
	tracer   trace.Tracer
}

// New creates a payback Service.
func New(storage storage.Storage, notifier notifier.Notifier, options Options) Service {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Calendar == nil {
		options.Calendar = calendar.New()
	}
	if options.DefaultConvention == "" {
		options.DefaultConvention = domain.ConventionFollowing
	}

	return &service{
		options:  options,
		storage:  storage,
		notifier: notifier,
		tracer:   otel.Tracer(instrumentation),
	}
}

func (s *service) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "payback."+name, trace.WithAttributes(attrs...))
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *service) today() time.Time {
	return calendar.Date(s.options.Now())
}

func (s *service) refresh(fundingID domain.FundingID) rollup.RefreshArgs {
	return rollup.NewRefreshArgs(fundingID, s.options.MaxAttempts, s.options.RefreshUniquePeriod)
}

func (s *service) normalize(plan domain.PaybackPlan) domain.PaybackPlan {
	plan.StartDate = calendar.Date(plan.StartDate)
	if plan.Convention == "" {
		plan.Convention = s.options.DefaultConvention
	}
	plan.Status = domain.PaybackPlanStatusActive
	plan.NextPaymentDate = nil

	return plan
}

func (s *service) build(plan domain.PaybackPlan) ([]schedule.Installment, error) {
	return schedule.Build(schedule.FromPaybackPlan(plan), schedule.CalendarFor(s.options.Calendar, plan))
}

func toPaybacks(plan domain.PaybackPlan, installments []schedule.Installment, seqOffset int) []domain.Payback {
	out := make([]domain.Payback, len(installments))
	for i, in := range installments {
		out[i] = domain.Payback{
			FundingID: plan.FundingID,
			PlanID:    &plan.ID,
			Seq:       seqOffset + in.Seq,
			DueDate:   in.Date,
			Amount:    in.Amount,
			Status:    domain.PaybackStatusScheduled,
		}
	}

	return out
}

func (s *service) Preview(ctx context.Context, plan domain.PaybackPlan) (res []schedule.Installment, err error) {
	_, span := s.start(ctx, "Preview")
	defer func() { end(span, err) }()

	return s.build(s.normalize(plan))
}

func (s *service) CreatePlan(ctx context.Context, plan domain.PaybackPlan) (
	*domain.PaybackPlan, []domain.Payback, error,
) {
	ctx, span := s.start(ctx, "CreatePlan", attribute.String("funding.id", plan.FundingID.String()))
	var err error
	defer func() { end(span, err) }()

	plan = s.normalize(plan)

	var (
		stored   *domain.PaybackPlan
		paybacks []domain.Payback
	)
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		f, err := tx.LockFunding(ctx, plan.FundingID)
		if err != nil {
			return fmt.Errorf("could not lock funding: %w", err)
		}
		if f == nil {
			return serrors.With(serrors.ErrNotFound, "funding not found")
		}
		if f.Status == domain.FundingStatusPaidOff || f.Status == domain.FundingStatusCancelled {
			return serrors.With(serrors.ErrConflict, "funding is %s", f.Status)
		}

		existing, err := tx.PaybackPlansByFundings(ctx, plan.FundingID)
		if err != nil {
			return fmt.Errorf("could not get payback plans: %w", err)
		}
		for _, e := range existing {
			if e.Status == domain.PaybackPlanStatusActive || e.Status == domain.PaybackPlanStatusPaused {
				return serrors.With(serrors.ErrConflict, "funding already has a %s payback plan %s", e.Status, e.ID)
			}
		}
		if plan.TotalAmount.IsZero() {
			plan.TotalAmount = f.PaybackAmount
		}

		installments, err := s.build(plan)
		if err != nil {
			return err
		}
		first := installments[0].Date
		plan.NextPaymentDate = &first

		stored, err = tx.StorePaybackPlan(ctx, plan)
		if err != nil {
			return fmt.Errorf("could not store payback plan: %w", err)
		}

		paybacks, err = tx.StorePaybacks(ctx, toPaybacks(*stored, installments, 0)...)
		if err != nil {
			return fmt.Errorf("could not store paybacks: %w", err)
		}

		if _, err := tx.AddJob(ctx, s.refresh(plan.FundingID), nil); err != nil {
			return fmt.Errorf("could not enqueue stats refresh: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create payback plan: %w", err)
	}

	logger.Info(ctx, "created payback plan",
		zap.Stringer("plan_id", stored.ID),
		zap.Stringer("funding_id", stored.FundingID),
		zap.Int("paybacks", len(paybacks)))

	return stored, paybacks, nil
}

func (s *service) RecordResult(ctx context.Context,
	paybackID domain.PaybackID,
	status domain.PaybackStatus,
	reason string,
) (res *domain.Payback, err error) {
	ctx, span := s.start(ctx, "RecordResult",
		attribute.String("payback.id", paybackID.String()),
		attribute.String("payback.status", string(status)))
	defer func() { end(span, err) }()

	switch status {
	case domain.PaybackStatusPaid, domain.PaybackStatusFailed, domain.PaybackStatusPending:
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "cannot record a %q result", status)
	}

	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		// plan before payback, the order every plan writer locks in
		current, err := tx.PaybackByID(ctx, paybackID)
		if err != nil {
			return fmt.Errorf("could not get payback: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "payback not found")
		}
		if current.PlanID != nil {
			if _, err := s.lockPlan(ctx, tx, *current.PlanID); err != nil {
				return err
			}
		}

		p, err := tx.LockPayback(ctx, paybackID)
		if err != nil {
			return fmt.Errorf("could not lock payback: %w", err)
		}
		if p == nil {
			return serrors.With(serrors.ErrNotFound, "payback not found")
		}
		if p.Status.IsTerminal() {
			return serrors.With(serrors.ErrConflict, "payback is already %s", p.Status)
		}

		updates := storage.PaybackUpdates{Status: status}
		switch status {
		case domain.PaybackStatusPaid:
			paid := s.today()
			cleared := ""
			updates.PaidDate = &paid
			updates.FailureReason = &cleared
		case domain.PaybackStatusFailed:
			if reason == "" {
				reason = "unspecified"
			}
			updates.FailureReason = &reason
		}

		res, err = tx.UpdatePayback(ctx, p.ID, updates)
		if err != nil {
			return fmt.Errorf("could not update payback: %w", err)
		}

		if status == domain.PaybackStatusPaid {
			_, err = tx.StoreTransactions(ctx, domain.Transaction{
				FundingID:   res.FundingID,
				Kind:        domain.TransactionKindDebit,
				Source:      domain.TransactionSourcePayback,
				ReferenceID: uuid.UUID(res.ID),
				Amount:      res.Amount,
				SettledAt:   s.options.Now(),
			})
			if err != nil {
				return fmt.Errorf("could not store transaction: %w", err)
			}
		}

		if res.PlanID != nil {
			if err := s.syncPlan(ctx, tx, *res.PlanID); err != nil {
				return err
			}
		}

		if _, err := tx.AddJob(ctx, s.refresh(res.FundingID), nil); err != nil {
			return fmt.Errorf("could not enqueue stats refresh: %w", err)
		}
		if status == domain.PaybackStatusFailed {
			args := NotifyFailedArgs{PaybackID: res.ID, maxAttempts: s.options.MaxAttempts}
			if _, err := tx.AddJob(ctx, args, nil); err != nil {
				return fmt.Errorf("could not enqueue failure notification: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not record payback result: %w", err)
	}

	metrics.RecordPaybackResult(string(status))
	logger.Info(ctx, "recorded payback result",
		zap.Stringer("payback_id", res.ID),
		zap.String("status", string(status)))

	return res, nil
}

func (s *service) lockPlan(ctx context.Context, tx storage.AllStorage, planID domain.PaybackPlanID) (
	*domain.PaybackPlan, error,
) {
	plan, err := tx.LockPaybackPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("could not lock payback plan: %w", err)
	}
	if plan == nil {
		return nil, serrors.With(serrors.ErrNotFound, "payback plan not found")
	}

	return plan, nil
}

// syncPlan points the plan at its earliest open payback, completing an
// active plan once nothing is open and the total has been collected. The
// caller holds the plan lock.
func (s *service) syncPlan(ctx context.Context, tx storage.AllStorage, planID domain.PaybackPlanID) error {
	plan, err := tx.PaybackPlanByID(ctx, planID)
	if err != nil {
		return fmt.Errorf("could not get payback plan: %w", err)
	}
	if plan == nil {
		return serrors.With(serrors.ErrNotFound, "payback plan not found")
	}

	paybacks, err := tx.PaybacksByPlan(ctx, planID)
	if err != nil {
		return fmt.Errorf("could not get paybacks: %w", err)
	}

	var next *time.Time
	paid := decimal.Zero
	for _, p := range paybacks {
		if p.Status.IsOpen() && (next == nil || p.DueDate.Before(*next)) {
			d := p.DueDate
			next = &d
		}
		if p.Status == domain.PaybackStatusPaid {
			paid = paid.Add(p.Amount)
		}
	}

	updates := storage.PaybackPlanUpdates{NextPaymentDate: next, ClearNextPaymentDate: next == nil}
	if plan.Status == domain.PaybackPlanStatusActive && next == nil && paid.GreaterThanOrEqual(plan.TotalAmount) {
		completed := domain.PaybackPlanStatusCompleted
		updates.Status = &completed
	}

	if _, err := tx.UpdatePaybackPlan(ctx, planID, updates); err != nil {
		return fmt.Errorf("could not update payback plan: %w", err)
	}

	return nil
}

// regenerate cancels the scheduled paybacks due on or after from and
// schedules what is left of the plan's total in their place.
func (s *service) regenerate(ctx context.Context,
	tx storage.AllStorage,
	plan domain.PaybackPlan,
	from time.Time,
) ([]domain.Payback, error) {
	if _, err := tx.CancelScheduledPaybacks(ctx, plan.ID, from); err != nil {
		return nil, fmt.Errorf("could not cancel scheduled paybacks: %w", err)
	}

	paybacks, err := tx.PaybacksByPlan(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get paybacks: %w", err)
	}

	covered := decimal.Zero
	seq := 0
	for _, p := range paybacks {
		seq = max(seq, p.Seq)
		switch p.Status {
		case domain.PaybackStatusPaid, domain.PaybackStatusPending, domain.PaybackStatusScheduled:
			covered = covered.Add(p.Amount)
		}
	}

	installments, err := schedule.Remaining(schedule.FromPaybackPlan(plan), covered, from,
		schedule.CalendarFor(s.options.Calendar, plan))
	if err != nil {
		return nil, err
	}

	var created []domain.Payback
	if len(installments) > 0 {
		created, err = tx.StorePaybacks(ctx, toPaybacks(plan, installments, seq)...)
		if err != nil {
			return nil, fmt.Errorf("could not store paybacks: %w", err)
		}
	}

	if err := s.syncPlan(ctx, tx, plan.ID); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *service) Reschedule(ctx context.Context, planID domain.PaybackPlanID, from time.Time) (
	res []domain.Payback, err error,
) {
	ctx, span := s.start(ctx, "Reschedule", attribute.String("plan.id", planID.String()))
	defer func() { end(span, err) }()

	if from.IsZero() {
		from = s.options.Now()
	}
	from = calendar.Date(from)

	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		plan, err := s.lockPlan(ctx, tx, planID)
		if err != nil {
			return err
		}
		if plan.Status != domain.PaybackPlanStatusActive {
			return serrors.With(serrors.ErrConflict, "payback plan is %s", plan.Status)
		}

		res, err = s.regenerate(ctx, tx, *plan, from)
		if err != nil {
			return err
		}

		if _, err := tx.AddJob(ctx, s.refresh(plan.FundingID), nil); err != nil {
			return fmt.Errorf("could not enqueue stats refresh: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not reschedule payback plan: %w", err)
	}

	logger.Info(ctx, "rescheduled payback plan",
		zap.Stringer("plan_id", planID),
		zap.Time("from", from),
		zap.Int("paybacks", len(res)))

	return res, nil
}

func (s *service) SetStatus(ctx context.Context, planID domain.PaybackPlanID, status domain.PaybackPlanStatus) (
	res *domain.PaybackPlan, err error,
) {
	ctx, span := s.start(ctx, "SetStatus",
		attribute.String("plan.id", planID.String()),
		attribute.String("plan.status", string(status)))
	defer func() { end(span, err) }()

	switch status {
	case domain.PaybackPlanStatusActive, domain.PaybackPlanStatusPaused, domain.PaybackPlanStatusStopped:
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "cannot set plan status to %q", status)
	}

	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		plan, err := s.lockPlan(ctx, tx, planID)
		if err != nil {
			return err
		}
		if plan.Status == status {
			res = plan

			return nil
		}
		if plan.Status == domain.PaybackPlanStatusStopped || plan.Status == domain.PaybackPlanStatusCompleted {
			return serrors.With(serrors.ErrConflict, "payback plan is %s", plan.Status)
		}

		if status == domain.PaybackPlanStatusActive {
			res, err = s.resume(ctx, tx, *plan)
		} else {
			res, err = s.halt(ctx, tx, *plan, status)
		}
		if err != nil {
			return err
		}

		if _, err := tx.AddJob(ctx, s.refresh(plan.FundingID), nil); err != nil {
			return fmt.Errorf("could not enqueue stats refresh: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not set payback plan status: %w", err)
	}

	logger.Info(ctx, "changed payback plan status",
		zap.Stringer("plan_id", planID),
		zap.String("status", string(res.Status)))

	return res, nil
}

func (s *service) halt(ctx context.Context,
	tx storage.AllStorage,
	plan domain.PaybackPlan,
	status domain.PaybackPlanStatus,
) (*domain.PaybackPlan, error) {
	if _, err := tx.CancelScheduledPaybacks(ctx, plan.ID, s.today()); err != nil {
		return nil, fmt.Errorf("could not cancel scheduled paybacks: %w", err)
	}

	updated, err := tx.UpdatePaybackPlan(ctx, plan.ID, storage.PaybackPlanUpdates{
		Status:               &status,
		ClearNextPaymentDate: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update payback plan: %w", err)
	}

	return updated, nil
}

func (s *service) resume(ctx context.Context, tx storage.AllStorage, plan domain.PaybackPlan) (
	*domain.PaybackPlan, error,
) {
	active := domain.PaybackPlanStatusActive
	if _, err := tx.UpdatePaybackPlan(ctx, plan.ID, storage.PaybackPlanUpdates{Status: &active}); err != nil {
		return nil, fmt.Errorf("could not update payback plan: %w", err)
	}
	plan.Status = active

	if _, err := s.regenerate(ctx, tx, plan, s.today()); err != nil {
		return nil, err
	}

	updated, err := tx.PaybackPlanByID(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get payback plan: %w", err)
	}

	return updated, nil
}

func (s *service) Projection(ctx context.Context, planID domain.PaybackPlanID) (res *schedule.Projection, err error) {
	ctx, span := s.start(ctx, "Projection", attribute.String("plan.id", planID.String()))
	defer func() { end(span, err) }()

	plan, err := s.storage.PaybackPlanByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("could not get payback plan: %w", err)
	}
	if plan == nil {
		return nil, serrors.With(serrors.ErrNotFound, "payback plan not found")
	}

	paybacks, err := s.storage.PaybacksByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("could not get paybacks: %w", err)
	}

	var installments []schedule.Installment
	paid, open := decimal.Zero, decimal.Zero
	last := s.today().AddDate(0, 0, -1)
	for _, p := range paybacks {
		switch p.Status {
		case domain.PaybackStatusPaid:
			paid = paid.Add(p.Amount)
		case domain.PaybackStatusScheduled, domain.PaybackStatusPending:
			open = open.Add(p.Amount)
			if p.DueDate.After(last) {
				last = p.DueDate
			}
		default:
			continue
		}
		installments = append(installments, schedule.Installment{Seq: p.Seq, Date: p.DueDate, Amount: p.Amount})
	}

	// failed and cancelled paybacks are still owed; an active plan collects
	// them after its last open payback
	unscheduled := plan.TotalAmount.Sub(paid).Sub(open)
	if unscheduled.IsPositive() && plan.Status == domain.PaybackPlanStatusActive {
		extra, err := schedule.Remaining(schedule.FromPaybackPlan(*plan), paid.Add(open), last.AddDate(0, 0, 1),
			schedule.CalendarFor(s.options.Calendar, *plan))
		if err != nil {
			return nil, err
		}
		installments = append(installments, extra...)
		unscheduled = decimal.Zero
	}

	projection := schedule.Project(installments, paid, s.options.Now())
	if unscheduled.IsPositive() {
		projection.RemainingAmount = projection.RemainingAmount.Add(unscheduled)
	}

	return &projection, nil
}

func (s *service) NotifyFailed(ctx context.Context, paybackID domain.PaybackID) (err error) {
	ctx, span := s.start(ctx, "NotifyFailed", attribute.String("payback.id", paybackID.String()))
	defer func() { end(span, err) }()

	p, err := s.storage.PaybackByID(ctx, paybackID)
	if err != nil {
		return fmt.Errorf("could not get payback: %w", err)
	}
	if p == nil {
		return serrors.With(serrors.ErrNotFound, "payback not found")
	}
	if p.Status != domain.PaybackStatusFailed {
		return serrors.With(serrors.ErrConflict, "payback is %s", p.Status)
	}

	f, err := s.storage.FundingByID(ctx, p.FundingID)
	if err != nil {
		return fmt.Errorf("could not get funding: %w", err)
	}
	if f == nil {
		return serrors.With(serrors.ErrNotFound, "funding not found")
	}

	msg := notifier.Message{
		To:      []string{s.options.CollectionsEmail},
		Subject: fmt.Sprintf("Payback failed: %s", f.Merchant.Name),
		Text: fmt.Sprintf("The payback of %s due %s for %s (funding %s) failed: %s\n",
			p.Amount.StringFixed(domain.MoneyPlaces),
			p.DueDate.Format(time.DateOnly),
			f.Merchant.Name,
			f.ID,
			p.FailureReason),
	}

	err = s.notifier.Send(ctx, msg)
	metrics.RecordNotification(templateFailed, err)
	if err != nil {
		return fmt.Errorf("could not send failure notification: %w", err)
	}

	return nil
}

func (s *service) RemindUpcoming(ctx context.Context, horizonDays int) (sent int, err error) {
	ctx, span := s.start(ctx, "RemindUpcoming", attribute.Int("horizon.days", horizonDays))
	defer func() { end(span, err) }()

	if horizonDays <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "horizon must be positive")
	}

	today := s.today()
	from := today.AddDate(0, 0, 1)
	to := s.options.Calendar.AddBusinessDays(today, horizonDays)

	upcoming, err := s.storage.UpcomingPaybacks(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("could not get upcoming paybacks: %w", err)
	}
	if len(upcoming) == 0 {
		return 0, nil
	}

	byFunding := make(map[domain.FundingID][]domain.Payback)
	ids := make([]domain.FundingID, 0)
	for _, p := range upcoming {
		if _, ok := byFunding[p.FundingID]; !ok {
			ids = append(ids, p.FundingID)
		}
		byFunding[p.FundingID] = append(byFunding[p.FundingID], p)
	}

	fundings, err := s.storage.Fundings(ctx, storage.FundingFilter{IDs: ids})
	if err != nil {
		return 0, fmt.Errorf("could not get fundings: %w", err)
	}

	var transient error
	for _, f := range fundings {
		if f.Merchant.Email == "" {
			logger.Warn(ctx, "merchant has no email, skipping reminder", zap.Stringer("funding_id", f.ID))

			continue
		}

		err := s.notifier.Send(ctx, reminder(f, byFunding[f.ID]))
		metrics.RecordNotification(templateUpcoming, err)
		if err != nil {
			logger.Warn(ctx, "could not send reminder", zap.Stringer("funding_id", f.ID), zap.Error(err))
			if !serrors.IsPermanent(err) {
				transient = err
			}

			continue
		}
		sent++
	}

	// retried only when nothing went out, so merchants are not reminded twice
	if sent == 0 && transient != nil {
		return 0, fmt.Errorf("could not send reminders: %w", transient)
	}

	logger.Info(ctx, "sent payback reminders", zap.Int("sent", sent), zap.Int("fundings", len(fundings)))

	return sent, nil
}

func reminder(f domain.Funding, paybacks []domain.Payback) notifier.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nThe following payments are scheduled:\n\n", f.Merchant.Name)
	for _, p := range paybacks {
		fmt.Fprintf(&b, "  %s  $%s\n", p.DueDate.Format(time.DateOnly), p.Amount.StringFixed(domain.MoneyPlaces))
	}
	b.WriteString("\nPlease make sure the funds are available.\n")

	return notifier.Message{
		To:      []string{f.Merchant.Email},
		Subject: "Upcoming payments",
		Text:    b.String(),
	}
}
