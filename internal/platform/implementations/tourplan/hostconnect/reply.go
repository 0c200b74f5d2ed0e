package hostconnect

import "encoding/xml"

// Reply is the supplier's response envelope: exactly one reply element, or
// an ErrorReply with the message text inside.
type Reply struct {
	XMLName xml.Name `xml:"Reply"`

	ErrorReply                *ErrorReply                `xml:"ErrorReply"`
	OptionInfoReply           *OptionInfoReply           `xml:"OptionInfoReply"`
	AddServiceReply           *AddServiceReply           `xml:"AddServiceReply"`
	AgentInfoReply            *AgentInfoReply            `xml:"AgentInfoReply"`
	GetProductSearchDataReply *GetProductSearchDataReply `xml:"GetProductSearchDataReply"`
}

type ErrorReply struct {
	Error string `xml:"Error"`
}

func (r *Reply) ErrorMessage() string {
	if r.ErrorReply != nil {
		return r.ErrorReply.Error
	}

	return ""
}

// Recognized tells whether the envelope carried any reply element at all.
// Unrecognized but well-formed documents get the generic parse failure.
func (r *Reply) Recognized() bool {
	return r.ErrorReply != nil ||
		r.OptionInfoReply != nil ||
		r.AddServiceReply != nil ||
		r.AgentInfoReply != nil ||
		r.GetProductSearchDataReply != nil
}

type OptionInfoReply struct {
	Options []Option `xml:"Option"`
}

type Option struct {
	Opt           string        `xml:"Opt"`
	OptionNumber  string        `xml:"OptionNumber"`
	OptGeneral    OptGeneral    `xml:"OptGeneral"`
	OptAvail      string        `xml:"OptAvail"`
	OptDateRanges OptDateRanges `xml:"OptDateRanges"`
}

type OptGeneral struct {
	Description         string `xml:"Description"`
	Comment             string `xml:"Comment"`
	SupplierName        string `xml:"SupplierName"`
	Locality            string `xml:"Locality"`
	LocalityDescription string `xml:"LocalityDescription"`
	ClassDescription    string `xml:"ClassDescription"`
	ButtonName          string `xml:"ButtonName"`
	SType               string `xml:"SType"`
}

type OptDateRanges struct {
	OptDateRange []OptDateRange `xml:"OptDateRange"`
}

type OptDateRange struct {
	DateFrom string `xml:"DateFrom"`
	DateTo   string `xml:"DateTo"`
	Currency string `xml:"Currency"`

	// RateBasis is only sent by newer supplier versions; when present it is
	// authoritative over any product-code heuristic.
	RateBasis string   `xml:"RateBasis"`
	RateSets  RateSets `xml:"RateSets"`
}

type RateSets struct {
	RateSet []RateSet `xml:"RateSet"`
}

type RateSet struct {
	RateName string  `xml:"RateName"`
	OptRate  OptRate `xml:"OptRate"`
}

type OptRate struct {
	RoomRates RoomRates `xml:"RoomRates"`
}

type RoomRates struct {
	SingleRate *float64 `xml:"SingleRate"`
	DoubleRate *float64 `xml:"DoubleRate"`
	TwinRate   *float64 `xml:"TwinRate"`
}

type AddServiceReply struct {
	Status    string `xml:"Status"`
	BookingId string `xml:"BookingId"`
	Ref       string `xml:"Ref"`
}

type AgentInfoReply struct {
	AgentName string `xml:"AgentName"`
	Currency  string `xml:"Currency"`
}

type GetProductSearchDataReply struct {
	ButtonNames  ButtonNames  `xml:"ButtonNames"`
	Destinations Destinations `xml:"Destinations"`
	Localities   Localities   `xml:"Localities"`
}

type ButtonNames struct {
	ButtonName []string `xml:"ButtonName"`
}

type Destinations struct {
	Destination []string `xml:"Destination"`
}

type Localities struct {
	Locality []string `xml:"Locality"`
}
