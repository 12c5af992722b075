package stats_test

import (
	"mca/pkg/calendar"
	"mca/pkg/domain"
	"mca/pkg/schedule"
	"mca/pkg/stats"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(calendar.DateLayout, s)
	if err != nil {
		panic(err)
	}

	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireAmount(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func payback(status domain.PaybackStatus, amount, due string) domain.Payback {
	return domain.Payback{
		ID:      domain.PaybackID(uuid.New()),
		Amount:  dec(amount),
		Status:  status,
		DueDate: day(due),
	}
}

func intent(kind domain.IntentKind, status domain.IntentStatus, amount string) domain.Intent {
	return domain.Intent{ID: domain.IntentID(uuid.New()), Kind: kind, Status: status, Amount: dec(amount)}
}

func fundingInput() stats.FundingInput {
	installments := make([]schedule.Installment, 0, 8)
	for i, d := range []string{
		"2025-01-06", "2025-01-13", "2025-01-21", "2025-01-27",
		"2025-02-03", "2025-02-10", "2025-02-18", "2025-02-24",
	} {
		installments = append(installments, schedule.Installment{Seq: i + 1, Date: day(d), Amount: dec("500")})
	}

	return stats.FundingInput{
		Funding: domain.Funding{
			ID:            domain.FundingID(uuid.New()),
			FundedAmount:  dec("10000"),
			PaybackAmount: dec("14000"),
			Status:        domain.FundingStatusPerforming,
		},
		Fees: []domain.Fee{
			{Type: domain.FeeTypeOrigination, Amount: dec("500"), Upfront: true},
			{Type: domain.FeeTypeNSF, Amount: dec("50")},
		},
		Expenses: []domain.Expense{{Description: "ucc filing", Amount: dec("100")}},
		Intents: []domain.Intent{
			intent(domain.IntentKindDisbursement, domain.IntentStatusSucceeded, "9500"),
			intent(domain.IntentKindDisbursement, domain.IntentStatusPending, "200"),
			intent(domain.IntentKindDisbursement, domain.IntentStatusCancelled, "9999"),
			intent(domain.IntentKindCommission, domain.IntentStatusSucceeded, "1000"),
			intent(domain.IntentKindCommission, domain.IntentStatusScheduled, "300"),
			intent(domain.IntentKindCommission, domain.IntentStatusCancelled, "400"),
			intent(domain.IntentKindSyndicationPayout, domain.IntentStatusSucceeded, "700"),
			intent(domain.IntentKindSyndicationPayout, domain.IntentStatusFailed, "100"),
		},
		Syndications: []domain.Syndication{
			{ParticipationAmount: dec("2500"), Status: domain.SyndicationStatusActive},
			{ParticipationAmount: dec("1000"), Status: domain.SyndicationStatusCancelled},
		},
		Paybacks: []domain.Payback{
			payback(domain.PaybackStatusPaid, "500", "2025-01-06"),
			payback(domain.PaybackStatusPaid, "500", "2025-01-13"),
			payback(domain.PaybackStatusPaid, "500", "2025-01-21"),
			payback(domain.PaybackStatusFailed, "500", "2025-01-27"),
			payback(domain.PaybackStatusPending, "500", "2025-01-31"),
			payback(domain.PaybackStatusScheduled, "500", "2025-02-10"),
			payback(domain.PaybackStatusScheduled, "500", "2025-02-03"),
			payback(domain.PaybackStatusCancelled, "500", "2025-02-18"),
		},
		Installments: installments,
	}
}

func TestFunding(t *testing.T) {
	s := stats.Funding(fundingInput(), day("2025-02-01").Add(15*time.Hour))

	for field, tt := range map[string]struct {
		want string
		got  decimal.Decimal
	}{
		"FactorRate":                {"1.4", s.FactorRate},
		"FeeAmount":                 {"550", s.FeeAmount},
		"UpfrontFeeAmount":          {"500", s.UpfrontFeeAmount},
		"ExpenseAmount":             {"100", s.ExpenseAmount},
		"NetFundedAmount":           {"9500", s.NetFundedAmount},
		"DisbursedAmount":           {"9500", s.DisbursedAmount},
		"PendingDisbursementAmount": {"200", s.PendingDisbursementAmount},
		"CommissionAmount":          {"1300", s.CommissionAmount},
		"PaidCommissionAmount":      {"1000", s.PaidCommissionAmount},
		"SyndicatedAmount":          {"2500", s.SyndicatedAmount},
		"SyndicatedPercent":         {"25", s.SyndicatedPercent},
		"SyndicationPayoutAmount":   {"700", s.SyndicationPayoutAmount},
		"PaidBackAmount":            {"1500", s.PaidBackAmount},
		"PendingAmount":             {"1500", s.PendingAmount},
		"FailedAmount":              {"500", s.FailedAmount},
		"BalanceAmount":             {"12500", s.BalanceAmount},
		"PaidPercent":               {"10.71", s.PaidPercent},
		"ExpectedToDate":            {"2000", s.ExpectedToDate},
		"PerformancePercent":        {"75", s.PerformancePercent},
		"RetainedAmount":            {"800", s.RetainedAmount},
		"ProfitAmount":              {"-9100", s.ProfitAmount},
	} {
		requireAmount(t, tt.want, tt.got, field)
	}

	require.Equal(t, 3, s.PaidCount)
	require.Equal(t, 1, s.FailedCount)
	require.NotNil(t, s.NextPaybackDate)
	require.Equal(t, day("2025-02-03"), *s.NextPaybackDate)
	require.Equal(t, day("2025-02-01"), s.AsOf)
}

func TestFundingNothingExpected(t *testing.T) {
	in := fundingInput()
	in.Installments = nil
	in.Paybacks = nil

	s := stats.Funding(in, day("2025-02-01"))
	requireAmount(t, "100", s.PerformancePercent, "PerformancePercent")
	requireAmount(t, "0", s.PaidPercent, "PaidPercent")
	requireAmount(t, "14000", s.BalanceAmount, "BalanceAmount")
	require.Nil(t, s.NextPaybackDate)
}

func TestFundingBalanceNeverNegative(t *testing.T) {
	in := fundingInput()
	in.Paybacks = []domain.Payback{payback(domain.PaybackStatusPaid, "15000", "2025-01-06")}

	s := stats.Funding(in, day("2025-02-01"))
	requireAmount(t, "0", s.BalanceAmount, "BalanceAmount")
	requireAmount(t, "107.14", s.PaidPercent, "PaidPercent")
}

func TestFundingUnfunded(t *testing.T) {
	s := stats.Funding(stats.FundingInput{}, day("2025-02-01"))
	requireAmount(t, "0", s.SyndicatedPercent, "SyndicatedPercent")
	requireAmount(t, "0", s.FactorRate, "FactorRate")
	requireAmount(t, "100", s.PerformancePercent, "PerformancePercent")
}

func TestAggregateAndGroupBy(t *testing.T) {
	merchantA := domain.MerchantID(uuid.New())
	merchantB := domain.MerchantID(uuid.New())
	funder := domain.PartyID(uuid.New())

	fundings := []stats.FundingStats{
		{MerchantID: merchantA, FunderID: funder, FundedAmount: dec("10000"), PaybackAmount: dec("14000"),
			PaidBackAmount: dec("7000"), BalanceAmount: dec("7000"), FeeAmount: dec("500")},
		{MerchantID: merchantA, FunderID: funder, FundedAmount: dec("5000"), PaybackAmount: dec("6000"),
			PaidBackAmount: dec("0"), BalanceAmount: dec("6000"), CommissionAmount: dec("250")},
		{MerchantID: merchantB, FunderID: funder, FundedAmount: dec("1000"), PaybackAmount: dec("1300"),
			PaidBackAmount: dec("1300"), SyndicatedAmount: dec("500")},
	}

	total := stats.Aggregate(fundings)
	require.Equal(t, 3, total.Count)
	requireAmount(t, "16000", total.FundedAmount, "FundedAmount")
	requireAmount(t, "21300", total.PaybackAmount, "PaybackAmount")
	requireAmount(t, "8300", total.PaidBackAmount, "PaidBackAmount")
	requireAmount(t, "13000", total.BalanceAmount, "BalanceAmount")
	requireAmount(t, "38.97", total.PaidPercent, "PaidPercent")

	byMerchant := stats.ByMerchant(fundings)
	require.Len(t, byMerchant, 2)
	require.Equal(t, 2, byMerchant[merchantA].Count)
	requireAmount(t, "500", byMerchant[merchantA].FeeAmount, "FeeAmount")
	requireAmount(t, "250", byMerchant[merchantA].CommissionAmount, "CommissionAmount")
	requireAmount(t, "500", byMerchant[merchantB].SyndicatedAmount, "SyndicatedAmount")

	byFunder := stats.ByFunder(fundings)
	require.Len(t, byFunder, 1)
	require.Equal(t, 3, byFunder[funder].Count)

	require.Len(t, stats.ByApplication(fundings), 1)
	require.Zero(t, stats.Aggregate(nil).Count)
}

func TestSyndicator(t *testing.T) {
	syndicator := domain.PartyID(uuid.New())
	f1, f2 := domain.FundingID(uuid.New()), domain.FundingID(uuid.New())
	synA := domain.SyndicationID(uuid.New())
	synC := domain.SyndicationID(uuid.New())

	in := stats.SyndicatorInput{
		SyndicatorID: syndicator,
		Syndications: []domain.Syndication{
			{ID: synA, FundingID: f1, ParticipationAmount: dec("2500"), ParticipationPercent: dec("25"),
				ManagementFeePercent: dec("2"), Status: domain.SyndicationStatusActive},
			{ID: domain.SyndicationID(uuid.New()), FundingID: f2, ParticipationAmount: dec("1000"),
				ParticipationPercent: dec("10"), Status: domain.SyndicationStatusClosed},
			{ID: synC, FundingID: f2, ParticipationAmount: dec("800"), ParticipationPercent: dec("8"),
				Status: domain.SyndicationStatusCancelled},
		},
		Payouts: []domain.Intent{
			{Kind: domain.IntentKindSyndicationPayout, Status: domain.IntentStatusSucceeded, SyndicationID: &synA, Amount: dec("700")},
			{Kind: domain.IntentKindSyndicationPayout, Status: domain.IntentStatusFailed, SyndicationID: &synA, Amount: dec("100")},
			{Kind: domain.IntentKindSyndicationPayout, Status: domain.IntentStatusSucceeded, SyndicationID: &synC, Amount: dec("50")},
			{Kind: domain.IntentKindSyndicationPayout, Status: domain.IntentStatusSucceeded, PayeeID: syndicator, Amount: dec("30")},
			{Kind: domain.IntentKindSyndicationPayout, Status: domain.IntentStatusSucceeded, PayeeID: domain.PartyID(uuid.New()), Amount: dec("90")},
		},
		Offers: []domain.SyndicationOffer{
			{OfferedAmount: dec("1000"), Status: domain.SyndicationOfferStatusPending, ExpiresAt: day("2025-02-10")},
			{OfferedAmount: dec("500"), Status: domain.SyndicationOfferStatusPending, ExpiresAt: day("2025-01-15")},
			{OfferedAmount: dec("2000"), Status: domain.SyndicationOfferStatusAccepted},
			{OfferedAmount: dec("300"), Status: domain.SyndicationOfferStatusDeclined},
			{OfferedAmount: dec("400"), Status: domain.SyndicationOfferStatusExpired},
		},
		PaybackAmounts: map[domain.FundingID]decimal.Decimal{f1: dec("14000"), f2: dec("5000")},
	}

	s := stats.Syndicator(in, day("2025-02-01"))
	require.Equal(t, syndicator, s.SyndicatorID)
	require.Equal(t, 1, s.ActiveCount)
	requireAmount(t, "3500", s.InvestedAmount, "InvestedAmount")
	requireAmount(t, "3930", s.ExpectedReturnAmount, "ExpectedReturnAmount")
	requireAmount(t, "730", s.PayoutAmount, "PayoutAmount")
	requireAmount(t, "3200", s.OutstandingAmount, "OutstandingAmount")

	require.Equal(t, 1, s.Offers.PendingCount)
	requireAmount(t, "1000", s.Offers.PendingAmount, "PendingAmount")
	require.Equal(t, 1, s.Offers.AcceptedCount)
	requireAmount(t, "2000", s.Offers.AcceptedAmount, "AcceptedAmount")
	require.Equal(t, 1, s.Offers.DeclinedCount)
	requireAmount(t, "300", s.Offers.DeclinedAmount, "DeclinedAmount")
	require.Equal(t, 2, s.Offers.ExpiredCount)
}
