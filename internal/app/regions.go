package app

import (
	"fmt"
	"strings"
)

// Region is one of the nine Austrian Bundesländer.
type Region string

const (
	Burgenland        Region = "Burgenland"
	Kaernten          Region = "Kärnten"
	Niederoesterreich Region = "Niederösterreich"
	Oberoesterreich   Region = "Oberösterreich"
	Salzburg          Region = "Salzburg"
	Steiermark        Region = "Steiermark"
	Tirol             Region = "Tirol"
	Vorarlberg        Region = "Vorarlberg"
	Wien              Region = "Wien"
)

// Regions lists all Bundesländer in generation order.
var Regions = []Region{
	Burgenland,
	Kaernten,
	Niederoesterreich,
	Oberoesterreich,
	Salzburg,
	Steiermark,
	Tirol,
	Vorarlberg,
	Wien,
}

// Cohort tags a group of regions that share one statutory variant.
type Cohort string

const (
	// Schulzeitgesetz § 2 (1): school year start
	StartEarly Cohort = "start-first-monday"
	StartLate  Cohort = "start-second-monday"

	// § 2 (2) 1. b): semester break
	SemesterFirst  Cohort = "semester-first-monday"
	SemesterSecond Cohort = "semester-second-monday"
	SemesterThird  Cohort = "semester-third-monday"

	// § 2 (2) 2.: summer holidays
	SummerEarly Cohort = "summer-june-28"
	SummerLate  Cohort = "summer-july-5"
)

// CohortTable maps every region to its group for a single rule.
type CohortTable map[Region]Cohort

var schoolStartCohorts = CohortTable{
	Burgenland:        StartEarly,
	Niederoesterreich: StartEarly,
	Wien:              StartEarly,
	Kaernten:          StartLate,
	Oberoesterreich:   StartLate,
	Salzburg:          StartLate,
	Steiermark:        StartLate,
	Tirol:             StartLate,
	Vorarlberg:        StartLate,
}

var semesterCohorts = CohortTable{
	Niederoesterreich: SemesterFirst,
	Wien:              SemesterFirst,
	Burgenland:        SemesterSecond,
	Kaernten:          SemesterSecond,
	Salzburg:          SemesterSecond,
	Tirol:             SemesterSecond,
	Vorarlberg:        SemesterSecond,
	Oberoesterreich:   SemesterThird,
	Steiermark:        SemesterThird,
}

var summerCohorts = CohortTable{
	Burgenland:        SummerEarly,
	Niederoesterreich: SummerEarly,
	Wien:              SummerEarly,
	Kaernten:          SummerLate,
	Oberoesterreich:   SummerLate,
	Salzburg:          SummerLate,
	Steiermark:        SummerLate,
	Tirol:             SummerLate,
	Vorarlberg:        SummerLate,
}

// Lookup returns the cohort of r or ErrUnknownRegion.
func (t CohortTable) Lookup(r Region) (Cohort, error) {
	c, ok := t[r]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, string(r))
	}
	return c, nil
}

// ParseRegion resolves a Bundesland by its display name.
func ParseRegion(name string) (Region, error) {
	for _, r := range Regions {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, name)
}

var slugReplacer = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss", " ", "-")

// Slug returns the transliterated lowercase name used in file names and UIDs.
func (r Region) Slug() string {
	return slugReplacer.Replace(strings.ToLower(string(r)))
}

func (r Region) String() string {
	return string(r)
}
