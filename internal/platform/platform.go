package platform

import (
	"fmt"
	"net/http"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/errors"
	"bitbucket.org/crgw/tourplan-hub/internal/platform/factory"
	"bitbucket.org/crgw/tourplan-hub/internal/platform/interfaces"
	platformMiddleware "bitbucket.org/crgw/tourplan-hub/internal/platform/middleware"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/responding"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/slowlog"
	"bitbucket.org/crgw/tourplan-hub/internal/trafficlight/grouping"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RegisterRoutes(
	router *gin.Engine,
	factory *factory.Factory,
	redisFactory *redisfactory.Factory,
) {
	group := router.Group(
		"/:platform",
		platformMiddleware.PreparePlatform(factory),
		platformMiddleware.TapLogger,
	)

	group.POST("/search",
		platformMiddleware.PrepareParams(schema.SearchRequestParams{}),
		grouping.Middleware(grouping.MiddlewareOptions{
			CreateManager: grouping.NewRequestManager,
			RedisClient:   redisFactory.TrafficlightClient(),
		}),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			key := fmt.Sprintf("%s:search", ctx.Params.ByName("platform"))
			slowLog.Start(key)

			platformWithSearch, ok := ctx.MustGet(platformMiddleware.PlatformKey).(interfaces.WithSearch)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Search not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.SearchRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			response, err := platformWithSearch.Search(ctx.Request.Context(), *params, logger)
			if err != nil {
				responding.HandleError(ctx, http.StatusInternalServerError, "Failed requesting search", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)

			slowLog.Stop(key)
		},
	)

	group.POST("/option-info",
		platformMiddleware.PrepareParams(schema.OptionInfoRequestParams{}),
		func(ctx *gin.Context) {
			platformWithOptionInfo, ok := ctx.MustGet(platformMiddleware.PlatformKey).(interfaces.WithOptionInfo)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Option info not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.OptionInfoRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := platformWithOptionInfo.GetOptionInfo(ctx.Request.Context(), *params, logger)
			if err != nil {
				responding.HandleError(ctx, http.StatusInternalServerError, "Failed requesting option info", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/availability",
		platformMiddleware.PrepareParams(schema.AvailabilityRequestParams{}),
		func(ctx *gin.Context) {
			platformWithAvailability, ok := ctx.MustGet(platformMiddleware.PlatformKey).(interfaces.WithAvailability)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Availability not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.AvailabilityRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := platformWithAvailability.CheckAvailability(ctx.Request.Context(), *params, logger)
			if err != nil {
				responding.HandleError(ctx, http.StatusInternalServerError, "Failed requesting availability", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/booking",
		platformMiddleware.PrepareParams(schema.BookingRequestParams{}),
		func(ctx *gin.Context) {
			platformWithCreateBooking, ok := ctx.MustGet(platformMiddleware.PlatformKey).(interfaces.WithCreateBooking)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Create booking not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.BookingRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := platformWithCreateBooking.CreateBooking(ctx.Request.Context(), *params, logger)
			if err != nil {
				responding.HandleError(ctx, http.StatusInternalServerError, "Failed requesting booking", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/connection-test",
		platformMiddleware.PrepareParams(schema.ConnectionTestRequestParams{}),
		func(ctx *gin.Context) {
			platformWithConnectionTest, ok := ctx.MustGet(platformMiddleware.PlatformKey).(interfaces.WithConnectionTest)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Connection test not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.ConnectionTestRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := platformWithConnectionTest.TestConnection(ctx.Request.Context(), *params, logger)
			if err != nil {
				responding.HandleError(ctx, http.StatusInternalServerError, "Failed requesting connection test", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/product-search-data",
		platformMiddleware.PrepareParams(schema.ProductSearchDataRequestParams{}),
		func(ctx *gin.Context) {
			platformWithProductSearchData, ok := ctx.MustGet(platformMiddleware.PlatformKey).(interfaces.WithProductSearchData)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Product search data not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.ProductSearchDataRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := platformWithProductSearchData.GetProductSearchData(ctx.Request.Context(), *params, logger)
			if err != nil {
				responding.HandleError(ctx, http.StatusInternalServerError, "Failed requesting product search data", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)
}
