package tourplan

import (
	"context"
	"io"
	"net/http"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/hostconnect"
	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/mapping"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/converting"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/requesting"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

// Full wildcard pattern: 3-char locality, 6-char supplier, 6-char item.
const anyProductCode = "???????????????"

type searchRequest struct {
	params        schema.SearchRequestParams
	configuration schema.TourplanConfiguration
	logger        *zerolog.Logger
	slowLogger    slowlog.Logger
}

func (s *searchRequest) buttonName() string {
	buttonName := converting.Unwrap(s.params.ButtonName)
	if buttonName != "" {
		return buttonName
	}

	// The supplier's service buttons are the only search categorization it
	// understands; the two site flows map onto fixed buttons.
	if s.params.SearchType == schema.SearchTypeAccommodation {
		return "Accommodation"
	}

	return "Group Tours"
}

func (s *searchRequest) requestBody() (string, error) {
	opt := converting.Unwrap(s.params.ProductCode)
	if opt == "" {
		opt = anyProductCode
	}

	var roomConfigs *hostconnect.RoomConfigs
	if s.params.SearchType == schema.SearchTypeAccommodation && s.params.Adults > 0 {
		roomConfigs = &hostconnect.RoomConfigs{
			RoomConfig: []hostconnect.RoomConfig{
				{
					Adults:   s.params.Adults,
					Children: s.params.Children,
				},
			},
		}
	}

	nights := 0
	dateFrom := converting.Unwrap(s.params.DateFrom)
	if dateFrom != "" {
		nights = nightsBetween(dateFrom, converting.Unwrap(s.params.DateTo))
	}

	body := hostconnect.OptionInfoRequest{
		Agent: hostconnect.Agent{
			AgentID:  s.configuration.AgentID,
			Password: s.configuration.Password,
		},
		Opt:             opt,
		Info:            "G",
		DateFrom:        dateFrom,
		SCUqty:          nights,
		ButtonName:      s.buttonName(),
		DestinationName: converting.Unwrap(s.params.Destination),
		RoomConfigs:     roomConfigs,
	}

	return hostconnect.Document(&body)
}

func parseOption(option hostconnect.Option) schema.InventoryOption {
	general := option.OptGeneral

	inventoryOption := schema.InventoryOption{
		Code:         option.Opt,
		Name:         general.Description,
		SupplierName: general.SupplierName,
		RoomType:     mapping.RoomTypeLabel(option.Opt, general.Description, general.Comment, ""),
	}

	if general.Comment != "" {
		inventoryOption.Description = &general.Comment
	}

	locality := general.LocalityDescription
	if locality == "" {
		locality = general.Locality
	}
	if locality != "" {
		inventoryOption.Locality = &locality
	}

	if general.ClassDescription != "" {
		inventoryOption.ClassDescription = &general.ClassDescription
	}

	return inventoryOption
}

func (s *searchRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.SearchResponse, error) {
	s.slowLogger.Start("tourplan:search:execute")
	defer s.slowLogger.Stop("tourplan:search:execute")

	search := schema.SearchResponse{
		Options: []schema.InventoryOption{},
	}

	requestsBucket := schema.NewSupplierRequestsBucket()
	errorsBucket := schema.NewErrorsBucket()

	search.SupplierRequests = requestsBucket.SupplierRequests()
	search.Errors = errorsBucket.Errors()

	if !s.configuration.IsConfigured() {
		errorsBucket.AddError(schema.NewNotConfiguredError())
		return search, nil
	}

	requestBody, err := s.requestBody()
	if err != nil {
		return search, err
	}

	httpRequest, err := supplierRequest(ctx, schema.Search, s.configuration, requestBody)
	if err != nil {
		return search, err
	}

	timeout := s.params.Timeouts.DefaultOr(s.params.Timeouts.Search)
	client := newSupplierClient(timeout, httpTransport, s.logger, &requestsBucket)

	rs, e := requesting.RequestErrors(client.Do(httpRequest))
	if e != nil {
		errorsBucket.AddError(*e)
		return search, nil
	}

	bodyBytes, _ := io.ReadAll(rs.Body)
	rs.Body.Close()

	reply, ok := hostconnect.Parse(bodyBytes)
	if !ok {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return search, nil
	}

	if message := reply.ErrorMessage(); message != "" {
		errorsBucket.AddError(schema.NewSupplierError(message))
		return search, nil
	}

	if reply.OptionInfoReply == nil {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return search, nil
	}

	for _, option := range reply.OptionInfoReply.Options {
		search.Options = append(search.Options, parseOption(option))
	}

	return search, nil
}
