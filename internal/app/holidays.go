package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/at"
)

// PublicHolidays returns all public holidays in Austria for the given year
func PublicHolidays(year int) []HolidayPeriod {
	return publicHolidays(at.Holidays, year)
}

func publicHolidays(defs []*cal.Holiday, year int) []HolidayPeriod {
	periods := make([]HolidayPeriod, 0, len(defs))
	for _, h := range defs {
		actual, _ := h.Calc(year)
		// Zero means the holiday did not exist in that year
		if actual.IsZero() {
			continue
		}
		day := dateOf(actual)
		periods = append(periods, HolidayPeriod{Start: day, End: day, Name: h.Name, NameEN: h.Name})
	}
	SortPeriodsByStart(periods)
	return periods
}

// PublicCalendar collects the Austrian public holidays over years
func PublicCalendar(years YearRange) (Calendar, error) {
	if err := years.Validate(); err != nil {
		return Calendar{}, err
	}

	var periods []HolidayPeriod
	for _, year := range years.Years() {
		periods = append(periods, PublicHolidays(year)...)
	}

	return Calendar{
		Name:        "Feiertage Österreich",
		Description: fmt.Sprintf("Gesetzliche Feiertage in Österreich (%d-%d)", years.From, years.To),
		Scope:       PublicCalendarScope,
		DescribeEvent: func(p HolidayPeriod) string {
			return fmt.Sprintf("%s - Feiertag in Österreich", p.Name)
		},
		Periods: periods,
	}, nil
}

// PublicYearFile returns the file name of the single-year public calendar
func PublicYearFile(year int) string {
	return PublicYearPrefix + strconv.Itoa(year) + CalendarFileSuffix
}

// PublicCalendars writes the rolling calendar over all years plus one
// calendar per year into the output directory. Each file is written on its
// own; a failure does not stop the remaining files.
func (g *Generator) PublicCalendars(years YearRange, stamp time.Time) ([]string, error) {
	if err := years.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %d-%d", err, years.From, years.To)
	}

	type job struct {
		path  string
		years YearRange
	}
	jobs := []job{{path: filepath.Join(g.Config.OutputDir, PublicRollingFile), years: years}}
	for _, year := range years.Years() {
		jobs = append(jobs, job{
			path:  filepath.Join(g.Config.OutputDir, PublicYearFile(year)),
			years: YearRange{From: year, To: year},
		})
	}

	var (
		paths []string
		errs  []error
	)
	for _, j := range jobs {
		c, err := PublicCalendar(j.years)
		if err == nil {
			err = g.writeCalendar(j.path, c, ICSPublicProductID, stamp)
		}
		if err != nil {
			g.Log.Error().Err(err).Str("path", j.path).Msg("public holiday calendar failed")
			errs = append(errs, fmt.Errorf("%s: %w", j.path, err))
			continue
		}
		g.progress("✓ Generated: %s", j.path)
		paths = append(paths, j.path)
	}
	return paths, errors.Join(errs...)
}
