package tourplan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/hostconnect"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/caching"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
)

// The search metadata set changes when the supplier reloads its product
// database, roughly daily.
const productSearchDataTtl = 24 * time.Hour

type productSearchDataRequest struct {
	cache         *caching.Cacher
	params        schema.ProductSearchDataRequestParams
	configuration schema.TourplanConfiguration
	logger        *zerolog.Logger
}

type cachedProductSearchData struct {
	ButtonNames  []string `json:"buttonNames"`
	Destinations []string `json:"destinations"`
	Localities   []string `json:"localities"`
}

func (p *productSearchDataRequest) cacheKey() string {
	return fmt.Sprintf("supplier-tourplan:product-search-data:1:%s", p.configuration.AgentID)
}

func (p *productSearchDataRequest) requestBody() (string, error) {
	body := hostconnect.GetProductSearchDataRequest{
		Agent: hostconnect.Agent{
			AgentID:  p.configuration.AgentID,
			Password: p.configuration.Password,
		},
	}

	return hostconnect.Document(&body)
}

func (p *productSearchDataRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.ProductSearchDataResponse, error) {
	productSearchData := schema.ProductSearchDataResponse{
		ButtonNames:  []string{},
		Destinations: []string{},
		Localities:   []string{},
	}

	requestsBucket := schema.NewSupplierRequestsBucket()
	errorsBucket := schema.NewErrorsBucket()

	productSearchData.SupplierRequests = requestsBucket.SupplierRequests()
	productSearchData.Errors = errorsBucket.Errors()

	if !p.configuration.IsConfigured() {
		errorsBucket.AddError(schema.NewNotConfiguredError())
		return productSearchData, nil
	}

	var cached cachedProductSearchData
	if p.cache.Fetch(ctx, p.cacheKey(), &cached) {
		productSearchData.ButtonNames = cached.ButtonNames
		productSearchData.Destinations = cached.Destinations
		productSearchData.Localities = cached.Localities
		return productSearchData, nil
	}

	requestBody, err := p.requestBody()
	if err != nil {
		return productSearchData, err
	}

	request, err := supplierRequest(ctx, schema.ProductSearchData, p.configuration, requestBody)
	if err != nil {
		return productSearchData, err
	}

	// Every attempt needs its own body reader
	makeRequest := func() *http.Request {
		attempt := request.Clone(request.Context())
		attempt.Body, _ = request.GetBody()
		return attempt
	}

	timeout := p.params.Timeouts.DefaultOr(p.params.Timeouts.ProductSearchData)
	client := newSupplierClient(timeout, httpTransport, p.logger, &requestsBucket)

	// Metadata fetch is read only, safe to retry.
	rs, e := requesting.RequestErrors(requesting.WithRetries(client, requesting.ExpBackoff(3, 500*time.Millisecond), makeRequest))
	if e != nil {
		errorsBucket.AddError(*e)
		return productSearchData, nil
	}

	bodyBytes, _ := io.ReadAll(rs.Body)
	rs.Body.Close()

	reply, ok := hostconnect.Parse(bodyBytes)
	if !ok {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return productSearchData, nil
	}

	if message := reply.ErrorMessage(); message != "" {
		errorsBucket.AddError(schema.NewSupplierError(message))
		return productSearchData, nil
	}

	if reply.GetProductSearchDataReply == nil {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return productSearchData, nil
	}

	dataReply := reply.GetProductSearchDataReply

	productSearchData.ButtonNames = append(productSearchData.ButtonNames, dataReply.ButtonNames.ButtonName...)
	productSearchData.Destinations = append(productSearchData.Destinations, dataReply.Destinations.Destination...)
	productSearchData.Localities = append(productSearchData.Localities, dataReply.Localities.Locality...)

	err = p.cache.Store(ctx, p.cacheKey(), cachedProductSearchData{
		ButtonNames:  productSearchData.ButtonNames,
		Destinations: productSearchData.Destinations,
		Localities:   productSearchData.Localities,
	}, productSearchDataTtl)
	if err != nil {
		p.logger.Error().Err(err).Msg("could not cache product search data")
	}

	return productSearchData, nil
}
