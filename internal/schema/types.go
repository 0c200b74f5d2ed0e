package schema

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const DefaultTimeoutMs = 30000

// Per-request timeout overrides in milliseconds, Default applies when the
// operation-specific value is absent.
type Timeouts struct {
	Default           int  `json:"default"`
	Search            *int `json:"search,omitempty"`
	OptionInfo        *int `json:"optionInfo,omitempty"`
	Availability      *int `json:"availability,omitempty"`
	Booking           *int `json:"booking,omitempty"`
	ProductSearchData *int `json:"productSearchData,omitempty"`
}

func (t Timeouts) DefaultOr(override *int) int {
	if override != nil {
		return *override
	}

	if t.Default != 0 {
		return t.Default
	}

	return DefaultTimeoutMs
}

type SearchType string

const (
	SearchTypeTours         SearchType = "tours"
	SearchTypeAccommodation SearchType = "accommodation"
)

type RoomConfig struct {
	Adults   int      `json:"adults"`
	Children int      `json:"children"`
	RoomType RoomType `json:"roomType"`
}

type SearchRequestParams struct {
	SearchType  SearchType `json:"searchType"`
	Destination *string    `json:"destination,omitempty"`
	ButtonName  *string    `json:"buttonName,omitempty"`
	DateFrom    *string    `json:"dateFrom,omitempty"`
	DateTo      *string    `json:"dateTo,omitempty"`
	Adults      int        `json:"adults"`
	Children    int        `json:"children"`
	ProductCode *string    `json:"productCode,omitempty"`
	Timeouts    Timeouts   `json:"timeouts"`
}

// InventoryOption is one bookable product as normalized from the supplier
// reply. Transient, rebuilt per response cycle.
type InventoryOption struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	SupplierName     string  `json:"supplierName"`
	Locality         *string `json:"locality,omitempty"`
	ClassDescription *string `json:"classDescription,omitempty"`
	RoomType         string  `json:"roomType"`
}

type SearchResponse struct {
	Options          []InventoryOption       `json:"options"`
	Errors           *SupplierResponseErrors `json:"errors,omitempty"`
	SupplierRequests *SupplierRequests       `json:"supplierRequests,omitempty"`
}

type OptionInfoRequestParams struct {
	Code        string       `json:"code"`
	DateFrom    *string      `json:"dateFrom,omitempty"`
	DateTo      *string      `json:"dateTo,omitempty"`
	RoomConfigs []RoomConfig `json:"roomConfigs,omitempty"`
	Timeouts    Timeouts     `json:"timeouts"`
}

// RateBasis tells whether twin/double figures are quoted for the whole unit
// or already per person. Unknown when the supplier did not say.
type RateBasis string

const (
	RateBasisPerUnit   RateBasis = "per-unit"
	RateBasisPerPerson RateBasis = "per-person"
	RateBasisUnknown   RateBasis = "unknown"
)

type RateQuote struct {
	RateName   string        `json:"rateName"`
	Currency   string        `json:"currency"`
	SingleRate *RoundedFloat `json:"singleRate,omitempty"`
	DoubleRate *RoundedFloat `json:"doubleRate,omitempty"`
	TwinRate   *RoundedFloat `json:"twinRate,omitempty"`
	RateBasis  RateBasis     `json:"rateBasis"`
}

type OptionInfoResponse struct {
	Option           *InventoryOption        `json:"option,omitempty"`
	Rates            []RateQuote             `json:"rates"`
	Errors           *SupplierResponseErrors `json:"errors,omitempty"`
	SupplierRequests *SupplierRequests       `json:"supplierRequests,omitempty"`
}

type AvailabilityRequestParams struct {
	Code     string    `json:"code"`
	DateFrom string    `json:"dateFrom"`
	DateTo   string    `json:"dateTo"`
	Adults   int       `json:"adults"`
	Children int       `json:"children"`
	RoomType *RoomType `json:"roomType,omitempty"`
	Timeouts Timeouts  `json:"timeouts"`
}

type CalendarDay struct {
	Date         string        `json:"date"`
	DayOfWeek    string        `json:"dayOfWeek"`
	ValidDay     bool          `json:"validDay"`
	Available    bool          `json:"available"`
	DisplayPrice *RoundedFloat `json:"displayPrice,omitempty"`
	SingleRate   *RoundedFloat `json:"singleRate,omitempty"`
	TwinRate     *RoundedFloat `json:"twinRate,omitempty"`
	Currency     string        `json:"currency,omitempty"`
}

type DateRange struct {
	DateFrom          string        `json:"dateFrom"`
	DateTo            string        `json:"dateTo"`
	SingleRate        *RoundedFloat `json:"singleRate,omitempty"`
	TwinRate          *RoundedFloat `json:"twinRate,omitempty"`
	Currency          string        `json:"currency,omitempty"`
	Available         bool          `json:"available"`
	AppliesDaysOfWeek *[]string     `json:"appliesDaysOfWeek,omitempty"`
}

type AvailabilityResponse struct {
	Days             []CalendarDay           `json:"days"`
	Ranges           []DateRange             `json:"ranges"`
	Disclaimer       *string                 `json:"disclaimer,omitempty"`
	Errors           *SupplierResponseErrors `json:"errors,omitempty"`
	SupplierRequests *SupplierRequests       `json:"supplierRequests,omitempty"`
}

type Customer struct {
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Email     openapi_types.Email `json:"email"`
	Phone     string              `json:"phone"`
}

type BookingRequestParams struct {
	Code            string    `json:"code"`
	DateFrom        string    `json:"dateFrom"`
	DateTo          string    `json:"dateTo"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	RoomType        *RoomType `json:"roomType,omitempty"`
	Customer        Customer  `json:"customer"`
	BrokerReference *string   `json:"brokerReference,omitempty"`
	Timeouts        Timeouts  `json:"timeouts"`
}

type BookingResponseStatus string

const (
	BookingResponseStatusOK      BookingResponseStatus = "OK"
	BookingResponseStatusPENDING BookingResponseStatus = "PENDING"
	BookingResponseStatusFAILED  BookingResponseStatus = "FAILED"
)

type BookingResponse struct {
	Status BookingResponseStatus `json:"status"`

	// Reference straight from the supplier, present when the supplier
	// auto-confirmed.
	SupplierBookingReference *string `json:"supplierBookingReference,omitempty"`
	SupplierBookingId        *string `json:"supplierBookingId,omitempty"`

	// Locally generated "WEB-" reference handed to the customer when the
	// supplier outcome is pending manual confirmation.
	FallbackReference *string `json:"fallbackReference,omitempty"`

	SupplierStatus   *string                 `json:"supplierStatus,omitempty"`
	Errors           *SupplierResponseErrors `json:"errors,omitempty"`
	SupplierRequests *SupplierRequests       `json:"supplierRequests,omitempty"`
}

type ConnectionTestRequestParams struct {
	Timeouts Timeouts `json:"timeouts"`
}

type ConnectionTestResponse struct {
	Connected        bool                    `json:"connected"`
	AgentName        *string                 `json:"agentName,omitempty"`
	Currency         *string                 `json:"currency,omitempty"`
	Errors           *SupplierResponseErrors `json:"errors,omitempty"`
	SupplierRequests *SupplierRequests       `json:"supplierRequests,omitempty"`
}

type ProductSearchDataRequestParams struct {
	Timeouts Timeouts `json:"timeouts"`
}

type ProductSearchDataResponse struct {
	ButtonNames      []string                `json:"buttonNames"`
	Destinations     []string                `json:"destinations"`
	Localities       []string                `json:"localities"`
	Errors           *SupplierResponseErrors `json:"errors,omitempty"`
	SupplierRequests *SupplierRequests       `json:"supplierRequests,omitempty"`
}
