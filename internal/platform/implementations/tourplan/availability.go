package tourplan

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/hostconnect"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/converting"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/requesting"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

type availabilityRequest struct {
	params        schema.AvailabilityRequestParams
	configuration schema.TourplanConfiguration
	logger        *zerolog.Logger
	slowLogger    slowlog.Logger
}

func (a *availabilityRequest) requestBody() (string, error) {
	roomConfig := hostconnect.RoomConfig{
		Adults:   a.params.Adults,
		Children: a.params.Children,
		RoomType: string(converting.Unwrap(a.params.RoomType)),
	}

	body := hostconnect.OptionInfoRequest{
		Agent: hostconnect.Agent{
			AgentID:  a.configuration.AgentID,
			Password: a.configuration.Password,
		},
		Opt:      a.params.Code,
		Info:     "AD",
		DateFrom: a.params.DateFrom,
		SCUqty:   nightsBetween(a.params.DateFrom, a.params.DateTo),
		RoomConfigs: &hostconnect.RoomConfigs{
			RoomConfig: []hostconnect.RoomConfig{roomConfig},
		},
	}

	return hostconnect.Document(&body)
}

// parseAvailCodes splits the supplier's space separated day code list.
// Unparseable entries are kept as sold out rather than dropped so the
// positional alignment with the window survives.
func parseAvailCodes(optAvail string) []int {
	fields := strings.Fields(optAvail)
	codes := make([]int, len(fields))

	for i, field := range fields {
		code, err := strconv.Atoi(field)
		if err != nil {
			code = -1
		}
		codes[i] = code
	}

	return codes
}

func (a *availabilityRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.AvailabilityResponse, error) {
	a.slowLogger.Start("tourplan:availability:execute")
	defer a.slowLogger.Stop("tourplan:availability:execute")

	availability := schema.AvailabilityResponse{
		Days:   []schema.CalendarDay{},
		Ranges: []schema.DateRange{},
	}

	requestsBucket := schema.NewSupplierRequestsBucket()
	errorsBucket := schema.NewErrorsBucket()

	availability.SupplierRequests = requestsBucket.SupplierRequests()
	availability.Errors = errorsBucket.Errors()

	if !a.configuration.IsConfigured() {
		errorsBucket.AddError(schema.NewNotConfiguredError())
		return availability, nil
	}

	dateFrom, err := time.Parse(schema.DateFormat, a.params.DateFrom)
	if err != nil {
		errorsBucket.AddError(schema.NewSupplierError("invalid dateFrom, expected YYYY-MM-DD"))
		return availability, nil
	}

	dateTo, err := time.Parse(schema.DateFormat, a.params.DateTo)
	if err != nil || dateTo.Before(dateFrom) {
		errorsBucket.AddError(schema.NewSupplierError("invalid dateTo, expected YYYY-MM-DD after dateFrom"))
		return availability, nil
	}

	requestBody, err := a.requestBody()
	if err != nil {
		return availability, err
	}

	httpRequest, err := supplierRequest(ctx, schema.Availability, a.configuration, requestBody)
	if err != nil {
		return availability, err
	}

	timeout := a.params.Timeouts.DefaultOr(a.params.Timeouts.Availability)
	client := newSupplierClient(timeout, httpTransport, a.logger, &requestsBucket)

	rs, e := requesting.RequestErrors(client.Do(httpRequest))
	if e != nil {
		errorsBucket.AddError(*e)
		return availability, nil
	}

	bodyBytes, _ := io.ReadAll(rs.Body)
	rs.Body.Close()

	reply, ok := hostconnect.Parse(bodyBytes)
	if !ok {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return availability, nil
	}

	if message := reply.ErrorMessage(); message != "" {
		errorsBucket.AddError(schema.NewSupplierError(message))
		return availability, nil
	}

	if reply.OptionInfoReply == nil || len(reply.OptionInfoReply.Options) == 0 {
		errorsBucket.AddError(schema.NewSupplierError("option not found"))
		return availability, nil
	}

	option := reply.OptionInfoReply.Options[0]

	a.slowLogger.Start("tourplan:availability:assemble")

	days, ranges, disclaimer := assembleCalendar(
		a.params.Code,
		dateFrom,
		dateTo,
		parseAvailCodes(option.OptAvail),
		option.OptDateRanges.OptDateRange,
	)

	a.slowLogger.Stop("tourplan:availability:assemble")

	availability.Days = days
	availability.Ranges = ranges
	availability.Disclaimer = disclaimer

	return availability, nil
}
