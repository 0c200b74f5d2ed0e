package mapping

import (
	"strings"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/schema"
)

type Family string

const (
	FamilyGeneral Family = "general"
	FamilyCruise  Family = "cruise"
	FamilyRail    Family = "rail"
)

var cruiseMarkers = []string{"CRZ", "CRUISE"}
var railMarkers = []string{"RAIL", "RLY"}

// Cruise and rail products only truly depart on fixed weekdays even when the
// supplier calendar flags every day. The stricter of the two signals wins.
var familyWeekdays = map[Family]map[time.Weekday]bool{
	FamilyCruise: {
		time.Monday:    true,
		time.Wednesday: true,
		time.Saturday:  true,
	},
	FamilyRail: {
		time.Tuesday:  true,
		time.Thursday: true,
		time.Sunday:   true,
	},
}

func FamilyForCode(productCode string) Family {
	code := strings.ToUpper(productCode)

	for _, marker := range cruiseMarkers {
		if strings.Contains(code, marker) {
			return FamilyCruise
		}
	}

	for _, marker := range railMarkers {
		if strings.Contains(code, marker) {
			return FamilyRail
		}
	}

	return FamilyGeneral
}

// DepartsOn applies the family weekday restriction. Unrestricted families
// pass every weekday through.
func (f Family) DepartsOn(day time.Weekday) bool {
	restricted, ok := familyWeekdays[f]
	if !ok {
		return true
	}

	return restricted[day]
}

// WeekdayNames lists the allowed departure days in calendar order, nil for
// unrestricted families.
func (f Family) WeekdayNames() *[]string {
	restricted, ok := familyWeekdays[f]
	if !ok {
		return nil
	}

	names := []string{}
	for day := time.Sunday; day <= time.Saturday; day++ {
		if restricted[day] {
			names = append(names, day.String())
		}
	}

	return &names
}

// Allow-list of product-code markers for which twin/double figures are a
// total for the whole unit, not per person. Upstream data quality gap: the
// supplier's explicit RateBasis field wins whenever it is present, this
// table is the fallback heuristic only.
var perUnitMarkers = []string{"APT", "VIL", "HTL", "LDG"}

func RateBasisForCode(productCode string) schema.RateBasis {
	code := strings.ToUpper(productCode)

	for _, marker := range perUnitMarkers {
		if strings.Contains(code, marker) {
			return schema.RateBasisPerUnit
		}
	}

	return schema.RateBasisUnknown
}

// TwinShareDivisor returns what a twin/double figure must be divided by to
// quote a per-person price.
func TwinShareDivisor(productCode string, supplierBasis string) float64 {
	switch schema.RateBasis(supplierBasis) {
	case schema.RateBasisPerUnit:
		return 2
	case schema.RateBasisPerPerson:
		return 1
	}

	if RateBasisForCode(productCode) == schema.RateBasisPerUnit {
		return 2
	}

	return 1
}
