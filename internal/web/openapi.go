package web

import (
	"net/http"
	"os"

	"bitbucket.org/crgw/tourplan-hub/internal/tools/responding"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// OpenapiValidator validates incoming request bodies against the served
// openapi document. Routes the document does not describe (status, pprof,
// the document itself) pass through untouched. When the document cannot be
// loaded at all the validator degrades to a no-op so a broken deploy still
// serves traffic.
func OpenapiValidator() gin.HandlerFunc {
	location := os.Getenv("OPENAPI_LOCATION")
	if location == "" {
		location = "./api/openapi.json"
	}

	router := loadOpenapiRouter(location)

	return func(c *gin.Context) {
		if router == nil {
			c.Next()
			return
		}

		route, pathParams, err := (*router).FindRoute(c.Request)
		if err != nil {
			c.Next()
			return
		}

		requestValidationInput := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
		}

		if err := openapi3filter.ValidateRequest(c.Request.Context(), requestValidationInput); err != nil {
			responding.HandleError(c, http.StatusBadRequest, "Request body failed validation", err)
			return
		}

		c.Next()
	}
}

func loadOpenapiRouter(location string) *routers.Router {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(location)
	if err != nil {
		logOpenapiProblem(err, location)
		return nil
	}

	if err := doc.Validate(loader.Context); err != nil {
		logOpenapiProblem(err, location)
		return nil
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		logOpenapiProblem(err, location)
		return nil
	}

	return &router
}

func logOpenapiProblem(err error, location string) {
	log.Warn().
		Err(err).
		Str("location", location).
		Msg("openapi document unusable, request validation disabled")
}
