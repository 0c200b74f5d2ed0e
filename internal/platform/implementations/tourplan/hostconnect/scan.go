package hostconnect

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Parse reads a reply document. Strict unmarshalling is tried first; when
// the document is not well-formed (the supplier does emit ragged XML) a
// forgiving token scan recovers whatever known fields are present. The
// second return value is false when nothing recognizable was found.
func Parse(raw []byte) (*Reply, bool) {
	var reply Reply
	if err := xml.Unmarshal(raw, &reply); err == nil && reply.Recognized() {
		return &reply, true
	}

	return scan(raw)
}

// scan walks the token stream without requiring balanced structure. It only
// recovers the flat reply shapes (errors, booking outcomes, agent info,
// option records); nested rate structures need the strict path.
func scan(raw []byte) (*Reply, bool) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose

	reply := &Reply{}
	var option *Option
	var field string

	for {
		token, err := decoder.Token()
		if err != nil {
			// Syntax error or EOF. Keep whatever was collected.
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			name := t.Name.Local

			switch name {
			case "ErrorReply":
				reply.ErrorReply = &ErrorReply{}
				field = ""
			case "OptionInfoReply":
				if reply.OptionInfoReply == nil {
					reply.OptionInfoReply = &OptionInfoReply{Options: []Option{}}
				}
				field = ""
			case "AddServiceReply":
				reply.AddServiceReply = &AddServiceReply{}
				field = ""
			case "AgentInfoReply":
				reply.AgentInfoReply = &AgentInfoReply{}
				field = ""
			case "Option":
				if reply.OptionInfoReply == nil {
					reply.OptionInfoReply = &OptionInfoReply{Options: []Option{}}
				}
				option = &Option{}
				field = ""
			default:
				field = name
			}

		case xml.EndElement:
			if t.Name.Local == "Option" && option != nil {
				reply.OptionInfoReply.Options = append(reply.OptionInfoReply.Options, *option)
				option = nil
			}
			field = ""

		case xml.CharData:
			value := strings.TrimSpace(string(t))
			if value == "" || field == "" {
				continue
			}

			assign(reply, option, field, value)
		}
	}

	if !reply.Recognized() {
		return nil, false
	}

	return reply, true
}

func assign(reply *Reply, option *Option, field string, value string) {
	if option != nil {
		switch field {
		case "Opt":
			option.Opt = value
		case "OptionNumber":
			option.OptionNumber = value
		case "OptAvail":
			option.OptAvail = value
		case "Description":
			option.OptGeneral.Description = value
		case "Comment":
			option.OptGeneral.Comment = value
		case "SupplierName":
			option.OptGeneral.SupplierName = value
		case "Locality":
			option.OptGeneral.Locality = value
		case "LocalityDescription":
			option.OptGeneral.LocalityDescription = value
		case "ClassDescription":
			option.OptGeneral.ClassDescription = value
		case "ButtonName":
			option.OptGeneral.ButtonName = value
		case "SType":
			option.OptGeneral.SType = value
		}

		return
	}

	switch field {
	case "Error":
		// Some failure replies carry a bare Error element with no wrapper.
		if reply.ErrorReply == nil {
			reply.ErrorReply = &ErrorReply{}
		}
		reply.ErrorReply.Error = value
	case "Status":
		if reply.AddServiceReply == nil {
			reply.AddServiceReply = &AddServiceReply{}
		}
		reply.AddServiceReply.Status = value
	case "BookingId":
		if reply.AddServiceReply == nil {
			reply.AddServiceReply = &AddServiceReply{}
		}
		reply.AddServiceReply.BookingId = value
	case "Ref":
		if reply.AddServiceReply == nil {
			reply.AddServiceReply = &AddServiceReply{}
		}
		reply.AddServiceReply.Ref = value
	case "AgentName":
		if reply.AgentInfoReply == nil {
			reply.AgentInfoReply = &AgentInfoReply{}
		}
		reply.AgentInfoReply.AgentName = value
	case "Currency":
		if reply.AgentInfoReply != nil {
			reply.AgentInfoReply.Currency = value
		}
	}
}
