package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// HolidaysForYear returns the semester break and the summer holidays of the
// school year rules applied to year.
func HolidaysForYear(year int, region Region) ([]HolidayPeriod, error) {
	semester, err := SemesterBreak(year, region)
	if err != nil {
		return nil, err
	}

	summer, err := SummerHolidays(year, region)
	if err != nil {
		return nil, err
	}

	return []HolidayPeriod{semester, summer}, nil
}

// SchoolCalendar collects the school holidays of region over years, sorted
// by start date.
func SchoolCalendar(region Region, years YearRange) (Calendar, error) {
	if err := years.Validate(); err != nil {
		return Calendar{}, err
	}

	var periods []HolidayPeriod
	for _, year := range years.Years() {
		holidays, err := HolidaysForYear(year, region)
		if err != nil {
			return Calendar{}, err
		}
		periods = append(periods, holidays...)
	}
	SortPeriodsByStart(periods)

	return Calendar{
		Name:        fmt.Sprintf("Schulferien %s", region),
		Description: fmt.Sprintf("Schulferien in %s, Österreich (%d-%d)", region, years.From, years.To),
		Scope:       region.Slug(),
		DescribeEvent: func(p HolidayPeriod) string {
			return fmt.Sprintf("%s - Schulferien in %s", p.NameEN, region)
		},
		Periods: periods,
	}, nil
}

// SchoolCalendarFile returns the file name of the school calendar of region.
func SchoolCalendarFile(region Region) string {
	return SchoolFilePrefix + region.Slug() + CalendarFileSuffix
}

// WriteSchoolCalendar computes and writes the calendar of a single region.
func (g *Generator) WriteSchoolCalendar(region Region, years YearRange, stamp time.Time) (string, error) {
	c, err := SchoolCalendar(region, years)
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.Config.SchoolDir, SchoolCalendarFile(region))
	if err := g.writeCalendar(path, c, ICSProductID, stamp); err != nil {
		return "", err
	}
	return path, nil
}

// SchoolCalendars writes one calendar per Bundesland. A failing region is
// logged and reported in the joined error; the other regions are still
// written.
func (g *Generator) SchoolCalendars(years YearRange, stamp time.Time) ([]string, error) {
	if err := years.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %d-%d", err, years.From, years.To)
	}

	var (
		paths []string
		errs  []error
	)
	for _, region := range Regions {
		path, err := g.WriteSchoolCalendar(region, years, stamp)
		if err != nil {
			g.Log.Error().Err(err).Str("region", region.String()).Msg("school calendar failed")
			errs = append(errs, fmt.Errorf("%s: %w", region, err))
			continue
		}
		g.progress("✓ Generated: %s", path)
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}
