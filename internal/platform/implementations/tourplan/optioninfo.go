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
	"github.com/rs/zerolog"
)

type optionInfoRequest struct {
	params        schema.OptionInfoRequestParams
	configuration schema.TourplanConfiguration
	logger        *zerolog.Logger
}

func (o *optionInfoRequest) requestBody() (string, error) {
	var roomConfigs *hostconnect.RoomConfigs
	if len(o.params.RoomConfigs) > 0 {
		configs := make([]hostconnect.RoomConfig, 0, len(o.params.RoomConfigs))
		for _, roomConfig := range o.params.RoomConfigs {
			configs = append(configs, hostconnect.RoomConfig{
				Adults:   roomConfig.Adults,
				Children: roomConfig.Children,
				RoomType: string(roomConfig.RoomType),
			})
		}
		roomConfigs = &hostconnect.RoomConfigs{RoomConfig: configs}
	}

	nights := 0
	dateFrom := converting.Unwrap(o.params.DateFrom)
	if dateFrom != "" {
		nights = nightsBetween(dateFrom, converting.Unwrap(o.params.DateTo))
	}

	body := hostconnect.OptionInfoRequest{
		Agent: hostconnect.Agent{
			AgentID:  o.configuration.AgentID,
			Password: o.configuration.Password,
		},
		Opt:         o.params.Code,
		Info:        "GS",
		DateFrom:    dateFrom,
		SCUqty:      nights,
		RoomConfigs: roomConfigs,
	}

	return hostconnect.Document(&body)
}

// parseRates flattens the date range structure into one quote per range.
// Within a range only the first rate set counts, later sets are alternate
// rate plans the site does not sell.
func parseRates(productCode string, ranges []hostconnect.OptDateRange) []schema.RateQuote {
	rates := []schema.RateQuote{}

	for _, dateRange := range ranges {
		if len(dateRange.RateSets.RateSet) == 0 {
			continue
		}

		rateSet := dateRange.RateSets.RateSet[0]
		roomRates := rateSet.OptRate.RoomRates

		rateBasis := schema.RateBasis(dateRange.RateBasis)
		if rateBasis != schema.RateBasisPerUnit && rateBasis != schema.RateBasisPerPerson {
			rateBasis = mapping.RateBasisForCode(productCode)
		}

		quote := schema.RateQuote{
			RateName:  rateSet.RateName,
			Currency:  dateRange.Currency,
			RateBasis: rateBasis,
		}

		if roomRates.SingleRate != nil {
			quote.SingleRate = roundedFloat(*roomRates.SingleRate)
		}
		if roomRates.DoubleRate != nil {
			quote.DoubleRate = roundedFloat(*roomRates.DoubleRate)
		}
		if roomRates.TwinRate != nil {
			quote.TwinRate = roundedFloat(*roomRates.TwinRate)
		}

		rates = append(rates, quote)
	}

	return rates
}

func (o *optionInfoRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.OptionInfoResponse, error) {
	optionInfo := schema.OptionInfoResponse{
		Rates: []schema.RateQuote{},
	}

	requestsBucket := schema.NewSupplierRequestsBucket()
	errorsBucket := schema.NewErrorsBucket()

	optionInfo.SupplierRequests = requestsBucket.SupplierRequests()
	optionInfo.Errors = errorsBucket.Errors()

	if !o.configuration.IsConfigured() {
		errorsBucket.AddError(schema.NewNotConfiguredError())
		return optionInfo, nil
	}

	requestBody, err := o.requestBody()
	if err != nil {
		return optionInfo, err
	}

	httpRequest, err := supplierRequest(ctx, schema.OptionInfo, o.configuration, requestBody)
	if err != nil {
		return optionInfo, err
	}

	timeout := o.params.Timeouts.DefaultOr(o.params.Timeouts.OptionInfo)
	client := newSupplierClient(timeout, httpTransport, o.logger, &requestsBucket)

	rs, e := requesting.RequestErrors(client.Do(httpRequest))
	if e != nil {
		errorsBucket.AddError(*e)
		return optionInfo, nil
	}

	bodyBytes, _ := io.ReadAll(rs.Body)
	rs.Body.Close()

	reply, ok := hostconnect.Parse(bodyBytes)
	if !ok {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return optionInfo, nil
	}

	if message := reply.ErrorMessage(); message != "" {
		errorsBucket.AddError(schema.NewSupplierError(message))
		return optionInfo, nil
	}

	if reply.OptionInfoReply == nil || len(reply.OptionInfoReply.Options) == 0 {
		errorsBucket.AddError(schema.NewSupplierError("option not found"))
		return optionInfo, nil
	}

	option := reply.OptionInfoReply.Options[0]
	inventoryOption := parseOption(option)

	optionInfo.Option = &inventoryOption
	optionInfo.Rates = parseRates(option.Opt, option.OptDateRanges.OptDateRange)

	return optionInfo, nil
}
