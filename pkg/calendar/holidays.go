package calendar

import "time"

// USFederalHolidays returns the Federal Reserve holidays observed in year.
// A holiday on Sunday is observed the following Monday; a holiday on Saturday
// is not moved, the Federal Reserve stays open the Friday before.
func USFederalHolidays(year int) []time.Time {
	fixed := func(m time.Month, d int) time.Time {
		t := time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
		if t.Weekday() == time.Sunday {
			t = t.AddDate(0, 0, 1)
		}

		return t
	}

	days := []time.Time{
		fixed(time.January, 1),
		nthWeekday(year, time.January, time.Monday, 3),    // Martin Luther King Jr.
		nthWeekday(year, time.February, time.Monday, 3),   // Washington's Birthday
		lastWeekday(year, time.May, time.Monday),          // Memorial Day
		fixed(time.July, 4),                               // Independence Day
		nthWeekday(year, time.September, time.Monday, 1),  // Labor Day
		nthWeekday(year, time.October, time.Monday, 2),    // Columbus Day
		fixed(time.November, 11),                          // Veterans Day
		nthWeekday(year, time.November, time.Thursday, 4), // Thanksgiving
		fixed(time.December, 25),
	}
	if year >= 2022 {
		days = append(days, fixed(time.June, 19))
	}

	return days
}

func nthWeekday(year int, month time.Month, wd time.Weekday, n int) time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(wd) - int(t.Weekday()) + 7) % 7

	return t.AddDate(0, 0, offset+7*(n-1))
}

func lastWeekday(year int, month time.Month, wd time.Weekday) time.Time {
	t := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) - int(wd) + 7) % 7

	return t.AddDate(0, 0, -offset)
}
