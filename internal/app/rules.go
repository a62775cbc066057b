package app

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
)

// NthWeekdayOfMonth returns the n-th (1-indexed) occurrence of weekday in the
// given month.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) (time.Time, error) {
	if n < 1 || n > 5 {
		return time.Time{}, fmt.Errorf("%w: occurrence %d", ErrNoSuchWeekday, n)
	}

	h := &cal.Holiday{Month: month, Weekday: weekday, Offset: n, Func: cal.CalcWeekdayOffset}
	actual, _ := h.Calc(year)
	if actual.IsZero() || actual.Month() != month {
		return time.Time{}, fmt.Errorf("%w: %d. %s of %s %d", ErrNoSuchWeekday, n, weekday, month, year)
	}
	return dateOf(actual), nil
}

// FirstWeekdayInRange returns the first date on or after dayStart of month
// that falls on weekday. The result is not clamped: ok reports whether it
// lies within the window ending on dayEnd. A dayEnd smaller than dayStart
// means the window reaches into the following month (June 28 - July 4).
func FirstWeekdayInRange(year int, month time.Month, weekday time.Weekday, dayStart, dayEnd int) (date time.Time, ok bool) {
	h := &cal.Holiday{Month: month, Day: dayStart, Weekday: weekday, Offset: 1, Func: cal.CalcWeekdayFrom}
	actual, _ := h.Calc(year)
	date = dateOf(actual)
	return date, !date.After(windowEnd(year, month, dayStart, dayEnd))
}

func windowEnd(year int, month time.Month, dayStart, dayEnd int) time.Time {
	if dayEnd < dayStart {
		month++
	}
	// time.Date normalizes month 13 into January of the next year
	return time.Date(year, month, dayEnd, 0, 0, 0, 0, time.UTC)
}

var schoolStartWeek = map[Cohort]int{
	StartEarly: 1,
	StartLate:  2,
}

// SchoolYearStart returns the Monday the school year begins in September.
func SchoolYearStart(year int, region Region) (time.Time, error) {
	cohort, err := schoolStartCohorts.Lookup(region)
	if err != nil {
		return time.Time{}, err
	}
	return NthWeekdayOfMonth(year, time.September, time.Monday, schoolStartWeek[cohort])
}

var semesterWeek = map[Cohort]int{
	SemesterFirst:  1,
	SemesterSecond: 2,
	SemesterThird:  3,
}

// SemesterBreak returns the one-week February break (Monday to Sunday).
func SemesterBreak(year int, region Region) (HolidayPeriod, error) {
	cohort, err := semesterCohorts.Lookup(region)
	if err != nil {
		return HolidayPeriod{}, err
	}

	start, err := NthWeekdayOfMonth(year, time.February, time.Monday, semesterWeek[cohort])
	if err != nil {
		return HolidayPeriod{}, err
	}

	return HolidayPeriod{
		Start:  start,
		End:    start.AddDate(0, 0, 6),
		Name:   SemesterBreakName,
		NameEN: SemesterBreakNameEN,
	}, nil
}

// summerWindow is the statutory day-of-month window for the first Saturday of
// the summer holidays.
type summerWindow struct {
	month       time.Month
	dayStart    int
	dayEnd      int // may wrap into the next month
	extendedEnd int // fallback end day, always inside month
}

var summerWindows = map[Cohort]summerWindow{
	SummerEarly: {month: time.June, dayStart: 28, dayEnd: 4, extendedEnd: 30},
	SummerLate:  {month: time.July, dayStart: 5, dayEnd: 11, extendedEnd: 31},
}

// SummerHolidays returns the Hauptferien: from the statutory Saturday until
// the day before the next school year starts.
func SummerHolidays(year int, region Region) (HolidayPeriod, error) {
	cohort, err := summerCohorts.Lookup(region)
	if err != nil {
		return HolidayPeriod{}, err
	}

	start, err := summerStart(year, summerWindows[cohort])
	if err != nil {
		return HolidayPeriod{}, fmt.Errorf("summer holidays %d %s: %w", year, region, err)
	}

	nextSchoolYear, err := SchoolYearStart(year+1, region)
	if err != nil {
		return HolidayPeriod{}, err
	}

	return HolidayPeriod{
		Start:  start,
		End:    nextSchoolYear.AddDate(0, 0, -1),
		Name:   SummerHolidaysName,
		NameEN: SummerHolidaysNameEN,
	}, nil
}

// summerStart searches the primary window first, then the extended window
// within the same month. Spilling into the next month is never assumed.
func summerStart(year int, w summerWindow) (time.Time, error) {
	if date, ok := FirstWeekdayInRange(year, w.month, time.Saturday, w.dayStart, w.dayEnd); ok {
		return date, nil
	}

	if date, ok := FirstWeekdayInRange(year, w.month, time.Saturday, w.dayStart, w.extendedEnd); ok {
		return date, nil
	}

	return time.Time{}, fmt.Errorf("%w: %s %d-%d", ErrNoStatutorySaturday, w.month, w.dayStart, w.extendedEnd)
}
