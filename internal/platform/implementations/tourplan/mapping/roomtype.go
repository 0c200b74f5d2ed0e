package mapping

import "strings"

// Label resolution is ordered and first-match-wins:
//  1. trailing " - " segment of the display name when it names a room kind
//  2. product-code substring table
//  3. description keyword scan
//  4. caller fallback, else "Standard Room"
//
// Extending a new supplier naming convention means extending these tables.

const defaultRoomTypeLabel = "Standard Room"

var roomSegmentKeywords = []string{
	"room",
	"suite",
	"villa",
	"tent",
	"cabin",
	"apartment",
}

var codeLabels = []struct {
	Marker string
	Label  string
}{
	{"STD", "Standard Room"},
	{"DLX", "Deluxe Room"},
	{"DEL", "Deluxe Room"},
	{"SUP", "Superior Room"},
	{"EXE", "Executive Room"},
	{"SUI", "Suite"},
	{"FAM", "Family Room"},
	{"VIL", "Villa"},
	{"TNT", "Tented Camp"},
	{"CAB", "Cabin"},
	{"APT", "Apartment"},
}

var descriptionLabels = []struct {
	Keyword string
	Label   string
}{
	{"deluxe", "Deluxe Room"},
	{"superior", "Superior Room"},
	{"executive", "Executive Room"},
	{"family", "Family Room"},
	{"suite", "Suite"},
	{"villa", "Villa"},
	{"tented", "Tented Camp"},
	{"tent", "Tented Camp"},
	{"cabin", "Cabin"},
	{"apartment", "Apartment"},
	{"standard", "Standard Room"},
}

// RoomTypeLabel maps a supplier product onto a presentable room or category
// label. Deterministic and never empty.
func RoomTypeLabel(productCode string, name string, description string, fallback string) string {
	if segment, ok := trailingRoomSegment(name); ok {
		return segment
	}

	code := strings.ToUpper(productCode)
	for _, entry := range codeLabels {
		if strings.Contains(code, entry.Marker) {
			return entry.Label
		}
	}

	lowered := strings.ToLower(description)
	for _, entry := range descriptionLabels {
		if strings.Contains(lowered, entry.Keyword) {
			return entry.Label
		}
	}

	if fallback != "" {
		return fallback
	}

	return defaultRoomTypeLabel
}

func trailingRoomSegment(name string) (string, bool) {
	index := strings.LastIndex(name, " - ")
	if index < 0 {
		return "", false
	}

	segment := strings.TrimSpace(name[index+3:])
	lowered := strings.ToLower(segment)

	for _, keyword := range roomSegmentKeywords {
		if strings.Contains(lowered, keyword) {
			return segment, true
		}
	}

	return "", false
}
