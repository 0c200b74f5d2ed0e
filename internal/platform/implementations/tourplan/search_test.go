package tourplan_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func defaultSupplierSearchResponse() string {
	return `<?xml version="1.0"?>
<Reply>
  <OptionInfoReply>
    <Option>
      <Opt>AKLACHTLSTD001</Opt>
      <OptGeneral>
        <Description>Harbour View Hotel - Standard Room</Description>
        <Comment>Central Auckland hotel close to the ferry terminal</Comment>
        <SupplierName>Harbour View Hotel</SupplierName>
        <Locality>AKL</Locality>
        <LocalityDescription>Auckland</LocalityDescription>
        <ClassDescription>4 Star</ClassDescription>
      </OptGeneral>
    </Option>
    <Option>
      <Opt>CNSCRCRZMWS001</Opt>
      <OptGeneral>
        <Description>Outer Reef Cruise</Description>
        <SupplierName>Reef Cruises Ltd</SupplierName>
        <Locality>CNS</Locality>
      </OptGeneral>
    </Option>
  </OptionInfoReply>
</Reply>`
}

func TestSearchRequest(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should build the search request based on params", func(t *testing.T) {
		var receivedBody string

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			receivedBody = string(body)

			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "text/xml; charset=utf-8", r.Header.Get("Content-Type"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(defaultSupplierSearchResponse()))
		}))
		defer testServer.Close()

		destination := "Auckland"
		dateFrom := "2026-10-05"
		dateTo := "2026-10-08"

		service := newService(defaultConfiguration(testServer.URL))

		_, err := service.Search(context.TODO(), schema.SearchRequestParams{
			SearchType:  schema.SearchTypeAccommodation,
			Destination: &destination,
			DateFrom:    &dateFrom,
			DateTo:      &dateTo,
			Adults:      2,
			Children:    1,
		}, &log)

		assert.NoError(t, err)

		assert.Contains(t, receivedBody, "<OptionInfoRequest>")
		assert.Contains(t, receivedBody, "<AgentID>testagent</AgentID>")
		assert.Contains(t, receivedBody, "<Password>testpassword</Password>")
		assert.Contains(t, receivedBody, "<Opt>???????????????</Opt>")
		assert.Contains(t, receivedBody, "<Info>G</Info>")
		assert.Contains(t, receivedBody, "<DateFrom>2026-10-05</DateFrom>")
		assert.Contains(t, receivedBody, "<SCUqty>3</SCUqty>")
		assert.Contains(t, receivedBody, "<ButtonName>Accommodation</ButtonName>")
		assert.Contains(t, receivedBody, "<DestinationName>Auckland</DestinationName>")
		assert.Contains(t, receivedBody, "<Adults>2</Adults>")
		assert.Contains(t, receivedBody, "<Children>1</Children>")
	})

	t.Run("should default the tours button name", func(t *testing.T) {
		var receivedBody string

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			receivedBody = string(body)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`<Reply><OptionInfoReply></OptionInfoReply></Reply>`))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		_, err := service.Search(context.TODO(), schema.SearchRequestParams{
			SearchType: schema.SearchTypeTours,
		}, &log)

		assert.NoError(t, err)
		assert.Contains(t, receivedBody, "<ButtonName>Group Tours</ButtonName>")
		assert.NotContains(t, receivedBody, "<RoomConfigs>")
	})

	t.Run("should parse supplier options", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(defaultSupplierSearchResponse()))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.Search(context.TODO(), schema.SearchRequestParams{
			SearchType: schema.SearchTypeAccommodation,
		}, &log)

		assert.NoError(t, err)
		assert.Empty(t, *response.Errors)
		assert.Len(t, response.Options, 2)

		hotel := response.Options[0]
		assert.Equal(t, "AKLACHTLSTD001", hotel.Code)
		assert.Equal(t, "Harbour View Hotel - Standard Room", hotel.Name)
		assert.Equal(t, "Harbour View Hotel", hotel.SupplierName)
		assert.Equal(t, "Standard Room", hotel.RoomType)
		assert.Equal(t, "Auckland", *hotel.Locality)
		assert.Equal(t, "4 Star", *hotel.ClassDescription)
		assert.Equal(t, "Central Auckland hotel close to the ferry terminal", *hotel.Description)

		cruise := response.Options[1]
		assert.Equal(t, "CNSCRCRZMWS001", cruise.Code)
		// Short locality code is kept when there is no description for it.
		assert.Equal(t, "CNS", *cruise.Locality)
		assert.Nil(t, cruise.Description)
	})

	t.Run("should surface a supplier error reply", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`<Reply><ErrorReply><Error>2051 SCN Server error</Error></ErrorReply></Reply>`))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.Search(context.TODO(), schema.SearchRequestParams{
			SearchType: schema.SearchTypeTours,
		}, &log)

		assert.NoError(t, err)
		assert.Empty(t, response.Options)
		assert.Len(t, *response.Errors, 1)
		assert.Equal(t, schema.SupplierError, (*response.Errors)[0].Code)
		assert.Equal(t, "2051 SCN Server error", (*response.Errors)[0].Message)
	})

	t.Run("should report unusable supplier output as a format error", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("<html>gateway timeout</html>"))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.Search(context.TODO(), schema.SearchRequestParams{
			SearchType: schema.SearchTypeTours,
		}, &log)

		assert.NoError(t, err)
		assert.Len(t, *response.Errors, 1)
		assert.Equal(t, "invalid response format", (*response.Errors)[0].Message)
	})

	t.Run("should not call the supplier when credentials are missing", func(t *testing.T) {
		supplierCalled := false

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplierCalled = true
		}))
		defer testServer.Close()

		configuration := defaultConfiguration(testServer.URL)
		configuration.AgentID = ""

		service := newService(configuration)

		response, err := service.Search(context.TODO(), schema.SearchRequestParams{
			SearchType: schema.SearchTypeTours,
		}, &log)

		assert.NoError(t, err)
		assert.False(t, supplierCalled)
		assert.Len(t, *response.Errors, 1)
		assert.Equal(t, schema.AgentNotConfigured, (*response.Errors)[0].Code)
	})

	t.Run("should record the supplier exchange in the history", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(defaultSupplierSearchResponse()))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.Search(context.TODO(), schema.SearchRequestParams{
			SearchType: schema.SearchTypeAccommodation,
		}, &log)

		assert.NoError(t, err)
		assert.Len(t, *response.SupplierRequests, 1)

		request := (*response.SupplierRequests)[0]
		assert.Equal(t, schema.Search, *request.Name)
		assert.Contains(t, *request.RequestContent.Body, "<OptionInfoRequest>")
		assert.Equal(t, http.StatusOK, *request.ResponseContent.StatusCode)
	})
}
