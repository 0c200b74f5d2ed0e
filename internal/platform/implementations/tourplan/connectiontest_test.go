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

func TestConnectionTestRequest(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should report a working connection with agent details", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), "<AgentInfoRequest>")
			assert.Contains(t, string(body), "<AgentID>testagent</AgentID>")

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`<Reply><AgentInfoReply><AgentName>Test Travel</AgentName><Currency>NZD</Currency></AgentInfoReply></Reply>`))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.TestConnection(context.TODO(), schema.ConnectionTestRequestParams{}, &log)

		assert.NoError(t, err)
		assert.True(t, response.Connected)
		assert.Equal(t, "Test Travel", *response.AgentName)
		assert.Equal(t, "NZD", *response.Currency)
		assert.Empty(t, *response.Errors)
	})

	t.Run("should report rejected credentials", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`<Reply><ErrorReply><Error>2051 Invalid agent</Error></ErrorReply></Reply>`))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.TestConnection(context.TODO(), schema.ConnectionTestRequestParams{}, &log)

		assert.NoError(t, err)
		assert.False(t, response.Connected)
		assert.Equal(t, "2051 Invalid agent", (*response.Errors)[0].Message)
	})

	t.Run("should report an unreachable supplier", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.TestConnection(context.TODO(), schema.ConnectionTestRequestParams{}, &log)

		assert.NoError(t, err)
		assert.False(t, response.Connected)
		assert.Equal(t, schema.ConnectionError, (*response.Errors)[0].Code)
	})

	t.Run("should not call the supplier when credentials are missing", func(t *testing.T) {
		service := newService(schema.TourplanConfiguration{})

		response, err := service.TestConnection(context.TODO(), schema.ConnectionTestRequestParams{}, &log)

		assert.NoError(t, err)
		assert.False(t, response.Connected)
		assert.Equal(t, schema.AgentNotConfigured, (*response.Errors)[0].Code)
	})
}
