package app

import "time"

// HolidayPeriod is a closed date interval, inclusive on both ends
type HolidayPeriod struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Name   string    `json:"name"`
	NameEN string    `json:"name_en"`
}

// Days returns the number of calendar days in the period
func (p HolidayPeriod) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Calendar is a set of periods rendered into one ICS document
type Calendar struct {
	Name        string
	Description string
	Periods     []HolidayPeriod

	// Scope goes into every UID, e.g. the region slug
	Scope string

	// DescribeEvent builds the DESCRIPTION value; nil falls back to NameEN
	DescribeEvent func(HolidayPeriod) string
}

// YearRange is an inclusive interval of years
type YearRange struct {
	From int
	To   int
}

// Years returns every year of the range in ascending order
func (r YearRange) Years() []int {
	if r.To < r.From {
		return nil
	}
	years := make([]int, 0, r.To-r.From+1)
	for y := r.From; y <= r.To; y++ {
		years = append(years, y)
	}
	return years
}

// Validate rejects ranges that end before they start
func (r YearRange) Validate() error {
	if r.To < r.From {
		return ErrInvalidYearRange
	}
	return nil
}
