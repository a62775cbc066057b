package app

import (
	"sort"
	"strings"
	"time"
)

// SortPeriodsByStart sorts periods by start date in ascending order
func SortPeriodsByStart(periods []HolidayPeriod) {
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].Start.Before(periods[j].Start)
	})
}

// dateOf strips the time of day and location, keeping the calendar date
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// formatDate formats a date as YYYY-MM-DD
func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// slugify lowercases s and joins words with dashes ("Summer Holidays" -> "summer-holidays")
func slugify(s string) string {
	return slugReplacer.Replace(strings.Join(strings.Fields(strings.ToLower(s)), "-"))
}
