// Package calendar decides which dates are banking (ACH) business days and
// moves dates onto them.
package calendar

import (
	"time"

	"mca/pkg/domain"
)

// Calendar holds a set of holidays and a weekend rule. By default Saturdays
// and Sundays are not business days. All dates are compared at day precision
// in UTC.
type Calendar struct {
	holidays     map[time.Time]struct{}
	openWeekends bool
}

// New builds a calendar from a list of holidays.
func New(holidays ...time.Time) *Calendar {
	c := &Calendar{holidays: make(map[time.Time]struct{}, len(holidays))}
	c.Add(holidays...)

	return c
}

// NewUS builds a calendar with the Federal Reserve holidays of every year in
// [fromYear, toYear], plus extra.
func NewUS(fromYear, toYear int, extra ...time.Time) *Calendar {
	c := New(extra...)
	for y := fromYear; y <= toYear; y++ {
		c.Add(USFederalHolidays(y)...)
	}

	return c
}

// Date truncates t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WithOpenWeekends returns a calendar sharing c's holidays on which Saturdays
// and Sundays are business days.
func (c *Calendar) WithOpenWeekends() *Calendar {
	return &Calendar{holidays: c.holidays, openWeekends: true}
}

// Add registers more holidays.
func (c *Calendar) Add(holidays ...time.Time) {
	for _, h := range holidays {
		c.holidays[Date(h)] = struct{}{}
	}
}

// Holidays returns the number of registered holidays.
func (c *Calendar) Holidays() int {
	return len(c.holidays)
}

// IsHoliday reports whether t is a registered holiday.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[Date(t)]

	return ok
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()

	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessDay reports whether t is neither a closed weekend day nor a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if !c.openWeekends && IsWeekend(t) {
		return false
	}

	return !c.IsHoliday(t)
}

// Next returns the first business day strictly after t.
func (c *Calendar) Next(t time.Time) time.Time {
	d := Date(t).AddDate(0, 0, 1)
	for !c.IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}

	return d
}

// Previous returns the last business day strictly before t.
func (c *Calendar) Previous(t time.Time) time.Time {
	d := Date(t).AddDate(0, 0, -1)
	for !c.IsBusinessDay(d) {
		d = d.AddDate(0, 0, -1)
	}

	return d
}

// Roll returns t when it is a business day, otherwise the business day chosen
// by convention. An unknown convention behaves like following.
func (c *Calendar) Roll(t time.Time, convention domain.Convention) time.Time {
	d := Date(t)
	if c.IsBusinessDay(d) {
		return d
	}

	switch convention {
	case domain.ConventionPreceding:
		return c.Previous(d)
	case domain.ConventionModifiedFollowing:
		next := c.Next(d)
		if next.Month() != d.Month() {
			return c.Previous(d)
		}

		return next
	default:
		return c.Next(d)
	}
}

// AddBusinessDays moves n business days from t. A negative n moves backwards
// and zero returns t rolled forward onto a business day.
func (c *Calendar) AddBusinessDays(t time.Time, n int) time.Time {
	d := Date(t)
	switch {
	case n > 0:
		for ; n > 0; n-- {
			d = c.Next(d)
		}
	case n < 0:
		for ; n < 0; n++ {
			d = c.Previous(d)
		}
	default:
		d = c.Roll(d, domain.ConventionFollowing)
	}

	return d
}

// BusinessDaysBetween counts business days in (from, to].
func (c *Calendar) BusinessDaysBetween(from, to time.Time) int {
	n := 0
	for d := Date(from).AddDate(0, 0, 1); !d.After(Date(to)); d = d.AddDate(0, 0, 1) {
		if c.IsBusinessDay(d) {
			n++
		}
	}

	return n
}
