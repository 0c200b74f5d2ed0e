package tourplan

import (
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/hostconnect"
	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/mapping"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
)

func nightsBetween(dateFrom string, dateTo string) int {
	from, err := time.Parse(schema.DateFormat, dateFrom)
	if err != nil {
		return 0
	}

	to, err := time.Parse(schema.DateFormat, dateTo)
	if err != nil {
		return 0
	}

	nights := int(to.Sub(from).Hours() / 24)
	if nights < 0 {
		return 0
	}

	return nights
}

// Supplier availability codes, one per day: -1 sold out, -2 free sell,
// -3 on request, positive numbers are units left.
func availCodeMeansAvailable(code int) bool {
	return code == -2 || code == -3 || code > 0
}

type dayRates struct {
	currency   string
	singleRate *float64
	twinRate   *float64
}

// effectiveRates picks the rate set covering the given day. When several
// rate names are returned the first one wins; the supplier never documented
// which is authoritative.
func effectiveRates(productCode string, day time.Time, ranges []hostconnect.OptDateRange) (dayRates, bool) {
	for _, dateRange := range ranges {
		from, err := time.Parse(schema.DateFormat, dateRange.DateFrom)
		if err != nil {
			continue
		}

		to, err := time.Parse(schema.DateFormat, dateRange.DateTo)
		if err != nil {
			continue
		}

		if day.Before(from) || day.After(to) {
			continue
		}

		if len(dateRange.RateSets.RateSet) == 0 {
			return dayRates{currency: dateRange.Currency}, true
		}

		roomRates := dateRange.RateSets.RateSet[0].OptRate.RoomRates
		divisor := mapping.TwinShareDivisor(productCode, dateRange.RateBasis)

		rates := dayRates{
			currency:   dateRange.Currency,
			singleRate: roomRates.SingleRate,
		}

		twin := roomRates.TwinRate
		if twin == nil {
			twin = roomRates.DoubleRate
		}
		if twin != nil {
			perPerson := *twin / divisor
			rates.twinRate = &perPerson
		}

		return rates, true
	}

	return dayRates{}, false
}

// assembleCalendar builds the per-day grid and the collapsed range view out
// of one option's availability codes and date ranges. A day is offered only
// when the supplier calendar covers it AND the product family departs on
// that weekday; the disclaimer is set when the two signals disagree.
func assembleCalendar(
	productCode string,
	dateFrom time.Time,
	dateTo time.Time,
	availCodes []int,
	ranges []hostconnect.OptDateRange,
) ([]schema.CalendarDay, []schema.DateRange, *string) {
	family := mapping.FamilyForCode(productCode)

	days := []schema.CalendarDay{}
	var disclaimer *string

	for day, index := dateFrom, 0; !day.After(dateTo); day, index = day.AddDate(0, 0, 1), index+1 {
		rates, hasRange := effectiveRates(productCode, day, ranges)

		available := hasRange
		if index < len(availCodes) {
			available = availCodeMeansAvailable(availCodes[index])
		}

		departs := family.DepartsOn(day.Weekday())
		if available && hasRange && !departs && disclaimer == nil {
			disclaimer = disclaimerForFamily(family)
		}

		calendarDay := schema.CalendarDay{
			Date:      day.Format(schema.DateFormat),
			DayOfWeek: day.Weekday().String(),
			ValidDay:  hasRange && departs,
			Available: available,
			Currency:  rates.currency,
		}

		if rates.singleRate != nil {
			calendarDay.SingleRate = roundedFloat(*rates.singleRate)
		}
		if rates.twinRate != nil {
			calendarDay.TwinRate = roundedFloat(*rates.twinRate)
		}

		// Cheapest per-person figure the grid can show.
		if calendarDay.TwinRate != nil {
			calendarDay.DisplayPrice = calendarDay.TwinRate
		} else if calendarDay.SingleRate != nil {
			calendarDay.DisplayPrice = calendarDay.SingleRate
		}

		days = append(days, calendarDay)
	}

	return days, collapseRanges(days, family), disclaimer
}

func roundedFloat(value float64) *schema.RoundedFloat {
	rounded := schema.RoundedFloat(value)
	return &rounded
}

func disclaimerForFamily(family mapping.Family) *string {
	text := "Departures for this product run on fixed weekdays; the supplier calendar may show additional dates that cannot be confirmed."
	if family == mapping.FamilyGeneral {
		return nil
	}

	return &text
}

func sameRoundedFloat(a *schema.RoundedFloat, b *schema.RoundedFloat) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// collapseRanges groups contiguous days with identical pricing and
// availability into table rows.
func collapseRanges(days []schema.CalendarDay, family mapping.Family) []schema.DateRange {
	ranges := []schema.DateRange{}
	weekdays := family.WeekdayNames()

	var current *schema.DateRange

	for _, day := range days {
		joins := current != nil &&
			current.Available == day.Available &&
			current.Currency == day.Currency &&
			sameRoundedFloat(current.SingleRate, day.SingleRate) &&
			sameRoundedFloat(current.TwinRate, day.TwinRate)

		if joins {
			current.DateTo = day.Date
			continue
		}

		if current != nil {
			ranges = append(ranges, *current)
		}

		current = &schema.DateRange{
			DateFrom:          day.Date,
			DateTo:            day.Date,
			SingleRate:        day.SingleRate,
			TwinRate:          day.TwinRate,
			Currency:          day.Currency,
			Available:         day.Available,
			AppliesDaysOfWeek: weekdays,
		}
	}

	if current != nil {
		ranges = append(ranges, *current)
	}

	return ranges
}
