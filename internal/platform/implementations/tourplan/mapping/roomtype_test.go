package mapping_test

import (
	"testing"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/mapping"
	"github.com/stretchr/testify/assert"
)

func TestRoomTypeLabel(t *testing.T) {
	tests := []struct {
		name        string
		productCode string
		displayName string
		description string
		fallback    string
		expected    string
	}{
		{
			name:        "trailing segment naming a room wins over the code",
			productCode: "AKLACHTLDLX001",
			displayName: "Harbour View Hotel - Premium Ocean Room",
			expected:    "Premium Ocean Room",
		},
		{
			name:        "trailing segment naming a suite",
			productCode: "AKLACHTLSTD001",
			displayName: "Harbour View Hotel - Honeymoon Suite",
			expected:    "Honeymoon Suite",
		},
		{
			name:        "trailing segment without a room keyword is ignored",
			productCode: "AKLACHTLDLX001",
			displayName: "Harbour View Hotel - Waterfront",
			expected:    "Deluxe Room",
		},
		{
			name:        "hyphenated name without separator spaces is not a segment",
			productCode: "AKLACHTLSTD001",
			displayName: "Harbour-View Hotel",
			expected:    "Standard Room",
		},
		{
			name:        "code marker STD",
			productCode: "AKLACHTLSTD001",
			displayName: "Harbour View Hotel",
			expected:    "Standard Room",
		},
		{
			name:        "code marker DLX",
			productCode: "AKLACHTLDLX001",
			displayName: "Harbour View Hotel",
			expected:    "Deluxe Room",
		},
		{
			name:        "code marker SUP",
			productCode: "CNSACHTLSUP001",
			displayName: "Reef Resort",
			expected:    "Superior Room",
		},
		{
			name:        "code marker SUI",
			productCode: "CNSACHTLSUI001",
			displayName: "Reef Resort",
			expected:    "Suite",
		},
		{
			name:        "code marker FAM",
			productCode: "ROTACLDGFAM002",
			displayName: "Lakeside Lodge",
			expected:    "Family Room",
		},
		{
			name:        "code marker VIL",
			productCode: "QTWACVILPRM001",
			displayName: "Alpine Villas",
			expected:    "Villa",
		},
		{
			name:        "code marker TNT",
			productCode: "DRWACTNTLUX001",
			displayName: "Outback Camp",
			expected:    "Tented Camp",
		},
		{
			name:        "code marker APT",
			productCode: "WLGACAPT00101",
			displayName: "City Apartments",
			expected:    "Apartment",
		},
		{
			name:        "lower case code still matches the marker table",
			productCode: "aklachtldlx001",
			displayName: "Harbour View Hotel",
			expected:    "Deluxe Room",
		},
		{
			name:        "description keyword when the code has no marker",
			productCode: "AKLACHTLXXX001",
			displayName: "Harbour View Hotel",
			description: "Spacious superior rooms overlooking the marina",
			expected:    "Superior Room",
		},
		{
			name:        "fallback when nothing matches",
			productCode: "AKLACHTLXXX001",
			displayName: "Harbour View Hotel",
			description: "Overlooking the marina",
			fallback:    "Twin Share",
			expected:    "Twin Share",
		},
		{
			name:        "default label when nothing matches and no fallback",
			productCode: "AKLACHTLXXX001",
			displayName: "Harbour View Hotel",
			description: "Overlooking the marina",
			expected:    "Standard Room",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			label := mapping.RoomTypeLabel(test.productCode, test.displayName, test.description, test.fallback)

			assert.Equal(t, test.expected, label)
		})
	}
}
