package mapping_test

import (
	"testing"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/mapping"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestFamilyForCode(t *testing.T) {
	tests := []struct {
		productCode string
		expected    mapping.Family
	}{
		{"CNSCRCRZMWS001", mapping.FamilyCruise},
		{"SYDCRCRUISE002", mapping.FamilyCruise},
		{"cnscrcrzmws001", mapping.FamilyCruise},
		{"ALCRLRAILTT001", mapping.FamilyRail},
		{"CHCRLRLYPAS001", mapping.FamilyRail},
		{"AKLACHTLSTD001", mapping.FamilyGeneral},
		{"", mapping.FamilyGeneral},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, mapping.FamilyForCode(test.productCode), test.productCode)
	}
}

func TestDepartsOn(t *testing.T) {
	t.Run("cruise departs Monday Wednesday Saturday only", func(t *testing.T) {
		assert.True(t, mapping.FamilyCruise.DepartsOn(time.Monday))
		assert.True(t, mapping.FamilyCruise.DepartsOn(time.Wednesday))
		assert.True(t, mapping.FamilyCruise.DepartsOn(time.Saturday))
		assert.False(t, mapping.FamilyCruise.DepartsOn(time.Tuesday))
		assert.False(t, mapping.FamilyCruise.DepartsOn(time.Sunday))
	})

	t.Run("rail departs Tuesday Thursday Sunday only", func(t *testing.T) {
		assert.True(t, mapping.FamilyRail.DepartsOn(time.Tuesday))
		assert.True(t, mapping.FamilyRail.DepartsOn(time.Thursday))
		assert.True(t, mapping.FamilyRail.DepartsOn(time.Sunday))
		assert.False(t, mapping.FamilyRail.DepartsOn(time.Monday))
		assert.False(t, mapping.FamilyRail.DepartsOn(time.Saturday))
	})

	t.Run("general departs every day", func(t *testing.T) {
		for day := time.Sunday; day <= time.Saturday; day++ {
			assert.True(t, mapping.FamilyGeneral.DepartsOn(day))
		}
	})
}

func TestWeekdayNames(t *testing.T) {
	assert.Nil(t, mapping.FamilyGeneral.WeekdayNames())
	assert.Equal(t, []string{"Monday", "Wednesday", "Saturday"}, *mapping.FamilyCruise.WeekdayNames())
	assert.Equal(t, []string{"Sunday", "Tuesday", "Thursday"}, *mapping.FamilyRail.WeekdayNames())
}

func TestRateBasisForCode(t *testing.T) {
	assert.Equal(t, schema.RateBasisPerUnit, mapping.RateBasisForCode("WLGACAPT00101"))
	assert.Equal(t, schema.RateBasisPerUnit, mapping.RateBasisForCode("QTWACVILPRM001"))
	assert.Equal(t, schema.RateBasisUnknown, mapping.RateBasisForCode("CNSCRCRZMWS001"))
}

func TestTwinShareDivisor(t *testing.T) {
	t.Run("supplier field wins over the code heuristic", func(t *testing.T) {
		assert.Equal(t, 2.0, mapping.TwinShareDivisor("CNSCRCRZMWS001", "per-unit"))
		assert.Equal(t, 1.0, mapping.TwinShareDivisor("WLGACAPT00101", "per-person"))
	})

	t.Run("code heuristic applies when the supplier field is absent", func(t *testing.T) {
		assert.Equal(t, 2.0, mapping.TwinShareDivisor("WLGACAPT00101", ""))
		assert.Equal(t, 1.0, mapping.TwinShareDivisor("AKLACTOUR0101", ""))
	})
}
