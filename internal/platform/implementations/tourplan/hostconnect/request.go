package hostconnect

import (
	"encoding/xml"
	"fmt"
)

// The supplier pins requests to a named DTD version. The document is trusted
// as declared, nothing is validated locally.
const doctype = `<!DOCTYPE Request SYSTEM "hostConnect_5_05_000.dtd">`

// Document wraps a single operation element in the fixed Request envelope.
// Escaping of element values is left to the marshaller, so names containing
// &, < or quotes arrive intact on the supplier side.
func Document(operation any) (string, error) {
	body, err := xml.MarshalIndent(operation, "  ", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\n%s\n<Request>\n%s\n</Request>", xml.Header[:len(xml.Header)-1], doctype, body), nil
}

// Agent credentials are always the first two children of an operation
// element, in this order. Every operation struct embeds this first.
type Agent struct {
	AgentID  string `xml:"AgentID"`
	Password string `xml:"Password"`
}

type RoomConfigs struct {
	RoomConfig []RoomConfig `xml:"RoomConfig"`
}

type RoomConfig struct {
	Adults   int    `xml:"Adults"`
	Children int    `xml:"Children,omitempty"`
	RoomType string `xml:"RoomType,omitempty"`
}

// OptionInfoRequest covers search, pricing and availability lookups. The
// Info flags pick what comes back: G = general, S = stay pricing,
// R = rates, A = availability, D = date ranges.
type OptionInfoRequest struct {
	XMLName xml.Name `xml:"OptionInfoRequest"`
	Agent

	Opt             string       `xml:"Opt"`
	Info            string       `xml:"Info"`
	DateFrom        string       `xml:"DateFrom,omitempty"`
	SCUqty          int          `xml:"SCUqty,omitempty"`
	ButtonName      string       `xml:"ButtonName,omitempty"`
	DestinationName string       `xml:"DestinationName,omitempty"`
	RoomConfigs     *RoomConfigs `xml:"RoomConfigs,omitempty"`
}

type NewBookingInfo struct {
	Name string `xml:"Name"`
	// QB selects quote ("Q") or firm booking ("B").
	QB    string `xml:"QB"`
	Email string `xml:"Email,omitempty"`
}

// AddServiceRequest books one service line onto a new booking.
type AddServiceRequest struct {
	XMLName xml.Name `xml:"AddServiceRequest"`
	Agent

	NewBookingInfo *NewBookingInfo `xml:"NewBookingInfo,omitempty"`
	Opt            string          `xml:"Opt"`
	RateId         string          `xml:"RateId,omitempty"`
	DateFrom       string          `xml:"DateFrom"`
	SCUqty         int             `xml:"SCUqty"`
	Adults         int             `xml:"Adults"`
	Children       int             `xml:"Children,omitempty"`
	RoomType       string          `xml:"RoomType,omitempty"`
	Email          string          `xml:"Email,omitempty"`
	PuRemark       string          `xml:"puRemark,omitempty"`
}

// AgentInfoRequest is the credential round trip used as a connection test.
type AgentInfoRequest struct {
	XMLName xml.Name `xml:"AgentInfoRequest"`
	Agent
}

// GetProductSearchDataRequest fetches the search metadata (service buttons,
// destinations, localities) the site builds its filters from.
type GetProductSearchDataRequest struct {
	XMLName xml.Name `xml:"GetProductSearchDataRequest"`
	Agent
}
