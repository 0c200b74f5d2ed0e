package interfaces

import (
	"context"

	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"github.com/rs/zerolog"
)

type WithTrafficLightSearchGrouping interface {
	TrafficLightGroupingCacheKey(context.Context, schema.SearchRequestParams, *zerolog.Logger) string
}

type WithSearch interface {
	Search(context.Context, schema.SearchRequestParams, *zerolog.Logger) (schema.SearchResponse, error)
}

type WithOptionInfo interface {
	GetOptionInfo(context.Context, schema.OptionInfoRequestParams, *zerolog.Logger) (schema.OptionInfoResponse, error)
}

type WithAvailability interface {
	CheckAvailability(context.Context, schema.AvailabilityRequestParams, *zerolog.Logger) (schema.AvailabilityResponse, error)
}

type WithCreateBooking interface {
	CreateBooking(context.Context, schema.BookingRequestParams, *zerolog.Logger) (schema.BookingResponse, error)
}

type WithConnectionTest interface {
	TestConnection(context.Context, schema.ConnectionTestRequestParams, *zerolog.Logger) (schema.ConnectionTestResponse, error)
}

type WithProductSearchData interface {
	GetProductSearchData(context.Context, schema.ProductSearchDataRequestParams, *zerolog.Logger) (schema.ProductSearchDataResponse, error)
}
