package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"mca/pkg/calendar"
	"mca/pkg/domain"
	"mca/pkg/serrors"
)

// Plan splits TotalAmount across the dates of Rule. When PaymentAmount is
// positive every installment but the last is PaymentAmount; otherwise Count
// installments of equal size are generated. The rule's own Count is replaced
// by the installment count.
type Plan struct {
	Rule          Rule
	TotalAmount   decimal.Decimal
	PaymentAmount decimal.Decimal
	Count         int
}

// Installment is a single scheduled debit.
type Installment struct {
	Seq    int             `json:"seq"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Total sums the amounts of installments.
func Total(installments []Installment) decimal.Decimal {
	sum := decimal.Zero
	for _, in := range installments {
		sum = sum.Add(in.Amount)
	}

	return sum
}

// Build generates the installments of p. Amounts are in cents and add up to
// TotalAmount exactly; the last installment absorbs any remainder.
func Build(p Plan, cal Calendar) ([]Installment, error) {
	total := domain.Money(p.TotalAmount)
	if !total.IsPositive() {
		return nil, serrors.With(serrors.ErrBadRequest, "total amount must be positive")
	}

	amounts, err := split(total, domain.Money(p.PaymentAmount), p.Count)
	if err != nil {
		return nil, err
	}

	rule := p.Rule
	rule.Count = len(amounts)

	dates, err := Dates(rule, cal)
	if err != nil {
		return nil, err
	}
	if len(dates) < len(amounts) {
		return nil, serrors.With(serrors.ErrBadRequest,
			"schedule ends after %d of %d installments", len(dates), len(amounts))
	}

	out := make([]Installment, len(amounts))
	for i, a := range amounts {
		out[i] = Installment{Seq: i + 1, Date: dates[i], Amount: a}
	}

	return out, nil
}

func split(total, payment decimal.Decimal, count int) ([]decimal.Decimal, error) {
	switch {
	case payment.IsNegative():
		return nil, serrors.With(serrors.ErrBadRequest, "payment amount must be positive")
	case payment.IsPositive():
		ratio := total.Div(payment).Ceil()
		if ratio.GreaterThan(decimal.NewFromInt(MaxOccurrences)) {
			return nil, serrors.With(serrors.ErrBadRequest,
				"payment amount %s yields more than %d installments", payment, MaxOccurrences)
		}
		n := ratio.IntPart()

		amounts := make([]decimal.Decimal, n)
		for i := range amounts {
			amounts[i] = payment
		}
		amounts[n-1] = total.Sub(payment.Mul(decimal.NewFromInt(n - 1)))

		return amounts, nil
	case count > 0:
		if count > MaxOccurrences {
			return nil, serrors.With(serrors.ErrBadRequest, "count must not exceed %d", MaxOccurrences)
		}

		n := decimal.NewFromInt(int64(count))
		base := total.Div(n).RoundDown(domain.MoneyPlaces)
		if !base.IsPositive() {
			return nil, serrors.With(serrors.ErrBadRequest, "total %s is too small for %d installments", total, count)
		}

		amounts := make([]decimal.Decimal, count)
		for i := range amounts {
			amounts[i] = base
		}
		amounts[count-1] = total.Sub(base.Mul(decimal.NewFromInt(int64(count - 1))))

		return amounts, nil
	case count < 0:
		return nil, serrors.With(serrors.ErrBadRequest, "count must be positive")
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "either payment amount or count is required")
	}
}

// Remaining regenerates the installments still owed on p once paid has been
// collected, starting on the first generated date on or after from. Weekly
// and monthly anchors of the original rule are kept. A count based plan keeps
// the number of original installments not yet due.
func Remaining(p Plan, paid decimal.Decimal, from time.Time, cal Calendar) ([]Installment, error) {
	outstanding := domain.Money(p.TotalAmount).Sub(domain.Money(paid))
	if !outstanding.IsPositive() {
		return nil, nil
	}

	next := p
	next.TotalAmount = outstanding
	next.Rule = rebase(p.Rule, calendar.Date(from))
	next.Rule.Until = time.Time{}

	if !p.PaymentAmount.IsPositive() {
		original, err := Build(p, cal)
		if err != nil {
			return nil, err
		}

		left := 0
		for _, in := range original {
			if !in.Date.Before(calendar.Date(from)) {
				left++
			}
		}
		next.Count = max(left, 1)
	}

	return Build(next, cal)
}

// rebase moves the start of r to from while keeping its anchor: weekly and
// biweekly rules continue on the original cadence, monthly rules on the
// original day of month.
func rebase(r Rule, from time.Time) Rule {
	start := calendar.Date(r.Start)
	if from.Before(start) {
		from = start
	}
	switch r.Frequency {
	case domain.FrequencyWeekly, domain.FrequencyBiweekly:
		step := 7
		if r.Frequency == domain.FrequencyBiweekly {
			step = 14
		}
		anchor := start
		if r.DayOfWeek != nil {
			anchor = start.AddDate(0, 0, (int(*r.DayOfWeek)-int(start.Weekday())+7)%7)
		}
		if from.After(anchor) {
			days := int(from.Sub(anchor).Hours() / 24)
			periods := (days + step - 1) / step
			anchor = anchor.AddDate(0, 0, periods*step)
		}
		r.Start = anchor
		r.DayOfWeek = nil
	case domain.FrequencyMonthly:
		if r.DayOfMonth == nil {
			dom := start.Day()
			r.DayOfMonth = &dom
		}
		r.Start = from
	default:
		r.Start = from
	}

	return r
}

// NextDate returns the first date of r strictly after after, or false when
// the rule is exhausted.
func NextDate(r Rule, after time.Time, cal Calendar) (time.Time, bool, error) {
	dates, err := Dates(r, cal)
	if err != nil {
		return time.Time{}, false, err
	}

	after = calendar.Date(after)
	for _, d := range dates {
		if d.After(after) {
			return d, true, nil
		}
	}

	return time.Time{}, false, nil
}
