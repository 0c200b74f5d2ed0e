package tourplan

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/caching"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/converting"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/slowlog"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type tourplan struct {
	redis               *redis.Client
	httpTransport       *http.Transport
	configuration       schema.TourplanConfiguration
	mailerConfiguration schema.MailerConfiguration
}

func (t *tourplan) TrafficLightGroupingCacheKey(ctx context.Context, params schema.SearchRequestParams, logger *zerolog.Logger) string {
	keyPieces := [10]string{
		"grouping",
		"supplier-tourplan",
		"1",
		string(params.SearchType),
		converting.Unwrap(params.Destination),
		converting.Unwrap(params.ButtonName),
		converting.Unwrap(params.DateFrom),
		converting.Unwrap(params.ProductCode),
		fmt.Sprintf("%d-%d", params.Adults, params.Children),
		t.configuration.AgentID,
	}

	return strings.ToLower(strings.Join(keyPieces[:], ":"))
}

func (t *tourplan) Search(ctx context.Context, params schema.SearchRequestParams, logger *zerolog.Logger) (schema.SearchResponse, error) {
	searchRequest := searchRequest{
		params:        params,
		configuration: t.configuration,
		logger:        logger,
		slowLogger:    slowlog.CreateLogger(logger),
	}

	return searchRequest.Execute(ctx, t.httpTransport)
}

func (t *tourplan) GetOptionInfo(ctx context.Context, params schema.OptionInfoRequestParams, logger *zerolog.Logger) (schema.OptionInfoResponse, error) {
	optionInfoRequest := optionInfoRequest{
		params:        params,
		configuration: t.configuration,
		logger:        logger,
	}

	return optionInfoRequest.Execute(ctx, t.httpTransport)
}

func (t *tourplan) CheckAvailability(ctx context.Context, params schema.AvailabilityRequestParams, logger *zerolog.Logger) (schema.AvailabilityResponse, error) {
	availabilityRequest := availabilityRequest{
		params:        params,
		configuration: t.configuration,
		logger:        logger,
		slowLogger:    slowlog.CreateLogger(logger),
	}

	return availabilityRequest.Execute(ctx, t.httpTransport)
}

func (t *tourplan) CreateBooking(ctx context.Context, params schema.BookingRequestParams, logger *zerolog.Logger) (schema.BookingResponse, error) {
	bookingRequest := bookingRequest{
		params:              params,
		configuration:       t.configuration,
		mailerConfiguration: t.mailerConfiguration,
		logger:              logger,
	}

	return bookingRequest.Execute(ctx, t.httpTransport)
}

func (t *tourplan) TestConnection(ctx context.Context, params schema.ConnectionTestRequestParams, logger *zerolog.Logger) (schema.ConnectionTestResponse, error) {
	connectionTest := connectionTestRequest{
		params:        params,
		configuration: t.configuration,
		logger:        logger,
	}

	return connectionTest.Execute(ctx, t.httpTransport)
}

func (t *tourplan) GetProductSearchData(ctx context.Context, params schema.ProductSearchDataRequestParams, logger *zerolog.Logger) (schema.ProductSearchDataResponse, error) {
	productSearchDataRequest := productSearchDataRequest{
		cache:         caching.NewRedisCache(t.redis),
		params:        params,
		configuration: t.configuration,
		logger:        logger,
	}

	return productSearchDataRequest.Execute(ctx, t.httpTransport)
}

func New(
	redisClient *redis.Client,
	configuration schema.TourplanConfiguration,
	mailerConfiguration schema.MailerConfiguration,
) *tourplan {
	transport := http.DefaultTransport.(*http.Transport)
	// improves durations a lot
	transport.DisableKeepAlives = true

	return &tourplan{
		redis:               redisClient,
		httpTransport:       transport,
		configuration:       configuration,
		mailerConfiguration: mailerConfiguration,
	}
}
