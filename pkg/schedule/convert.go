package schedule

import (
	"mca/pkg/calendar"
	"mca/pkg/domain"
)

// FromPaybackPlan maps a stored payback plan onto the engine's Plan.
func FromPaybackPlan(p domain.PaybackPlan) Plan {
	return Plan{
		Rule: Rule{
			Frequency:  p.Frequency,
			Start:      p.StartDate,
			DayOfWeek:  p.DayOfWeek,
			DayOfMonth: p.DayOfMonth,
			Convention: p.Convention,
		},
		TotalAmount:   p.TotalAmount,
		PaymentAmount: p.PaymentAmount,
		Count:         p.PaymentCount,
	}
}

// CalendarFor returns the calendar a plan is generated on. Plans that do not
// skip weekends may collect on Saturdays and Sundays.
func CalendarFor(cal *calendar.Calendar, p domain.PaybackPlan) *calendar.Calendar {
	if p.SkipWeekends {
		return cal
	}

	return cal.WithOpenWeekends()
}
