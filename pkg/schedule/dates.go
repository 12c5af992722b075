// Package schedule generates payback dates for a recurring rule and splits a
// payback amount across them.
package schedule

import (
	"time"

	"mca/pkg/calendar"
	"mca/pkg/domain"
	"mca/pkg/serrors"
)

// MaxOccurrences bounds the number of dates a single rule can generate.
const MaxOccurrences = 2000

// Calendar is the subset of *calendar.Calendar the engine needs.
type Calendar interface {
	IsBusinessDay(t time.Time) bool
	Roll(t time.Time, convention domain.Convention) time.Time
	Next(t time.Time) time.Time
}

// Rule describes a recurring sequence of dates. Generation stops after Count
// dates or at the last date not after Until, whichever comes first.
type Rule struct {
	Frequency domain.Frequency
	Start     time.Time
	// DayOfWeek anchors weekly and biweekly rules.
	DayOfWeek *time.Weekday
	// DayOfMonth anchors monthly rules, 1 to 31.
	DayOfMonth *int
	Convention domain.Convention
	Count      int
	Until      time.Time
}

// Validate checks that the rule can generate a bounded sequence.
func (r Rule) Validate() error {
	switch r.Frequency {
	case domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyBiweekly, domain.FrequencyMonthly:
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown frequency %q", r.Frequency)
	}

	switch r.Convention {
	case "", domain.ConventionFollowing, domain.ConventionPreceding, domain.ConventionModifiedFollowing:
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown convention %q", r.Convention)
	}

	if r.Start.IsZero() {
		return serrors.With(serrors.ErrBadRequest, "start date is required")
	}
	if r.DayOfWeek != nil && (*r.DayOfWeek < time.Sunday || *r.DayOfWeek > time.Saturday) {
		return serrors.With(serrors.ErrBadRequest, "day of week %d out of range", *r.DayOfWeek)
	}
	if r.DayOfMonth != nil && (*r.DayOfMonth < 1 || *r.DayOfMonth > 31) {
		return serrors.With(serrors.ErrBadRequest, "day of month %d out of range", *r.DayOfMonth)
	}
	if r.Count < 0 {
		return serrors.With(serrors.ErrBadRequest, "count must not be negative")
	}
	if r.Count > MaxOccurrences {
		return serrors.With(serrors.ErrBadRequest, "count must not exceed %d", MaxOccurrences)
	}
	if r.Count == 0 && r.Until.IsZero() {
		return serrors.With(serrors.ErrBadRequest, "either count or until is required")
	}
	if !r.Until.IsZero() && calendar.Date(r.Until).Before(calendar.Date(r.Start)) {
		return serrors.With(serrors.ErrBadRequest, "until is before start")
	}

	return nil
}

// Dates generates the business days of r. A date is kept while both its
// nominal and its rolled day are not after Until. The result is strictly
// increasing and never starts before r.Start. When rolling moves a date onto
// or before its predecessor it is pushed to the next business day instead.
func Dates(r Rule, cal Calendar) ([]time.Time, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	limit := r.Count
	if limit == 0 {
		limit = MaxOccurrences
	}

	var until time.Time
	if !r.Until.IsZero() {
		until = calendar.Date(r.Until)
	}

	start := calendar.Date(r.Start)
	nominal := nominalSequence(r, start, cal)
	out := make([]time.Time, 0, min(limit, 64))

	for i := 0; len(out) < limit; i++ {
		d, ok := nominal(i)
		if !until.IsZero() && d.After(until) {
			break
		}
		if !ok {
			continue
		}

		d = cal.Roll(d, r.Convention)
		if d.Before(start) {
			d = cal.Roll(start, domain.ConventionFollowing)
		}
		if n := len(out); n > 0 && !d.After(out[n-1]) {
			d = cal.Next(out[n-1])
		}
		if !until.IsZero() && d.After(until) {
			break
		}

		out = append(out, d)
	}

	return out, nil
}

// nominalSequence returns the i-th unrolled date of r. Daily rules report
// non-business days as skipped rather than rolled.
func nominalSequence(r Rule, start time.Time, cal Calendar) func(i int) (time.Time, bool) {
	switch r.Frequency {
	case domain.FrequencyDaily:
		return func(i int) (time.Time, bool) {
			d := start.AddDate(0, 0, i)

			return d, cal.IsBusinessDay(d)
		}
	case domain.FrequencyMonthly:
		return monthlySequence(r, start)
	default:
		step := 7
		if r.Frequency == domain.FrequencyBiweekly {
			step = 14
		}
		anchor := start
		if r.DayOfWeek != nil {
			anchor = start.AddDate(0, 0, (int(*r.DayOfWeek)-int(start.Weekday())+7)%7)
		}

		return func(i int) (time.Time, bool) {
			return anchor.AddDate(0, 0, i*step), true
		}
	}
}

func monthlySequence(r Rule, start time.Time) func(i int) (time.Time, bool) {
	dom := start.Day()
	if r.DayOfMonth != nil {
		dom = *r.DayOfMonth
	}

	year, month := start.Year(), start.Month()
	if clampDay(year, month, dom).Before(start) {
		month++
	}

	return func(i int) (time.Time, bool) {
		return clampDay(year, month+time.Month(i), dom), true
	}
}

// clampDay returns day dom of the given month, or the month's last day when
// the month is shorter. Months past December are normalized.
func clampDay(year int, month time.Month, dom int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()

	return first.AddDate(0, 0, min(dom, last)-1)
}
