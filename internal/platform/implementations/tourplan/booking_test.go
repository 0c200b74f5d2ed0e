package tourplan_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"github.com/go-redis/redismock/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func bookingParamsTemplate() schema.BookingRequestParams {
	return schema.BookingRequestParams{
		Code:     "AKLACHTLSTD001",
		DateFrom: "2026-10-05",
		DateTo:   "2026-10-08",
		Adults:   2,
		Customer: schema.Customer{
			FirstName: "Seán",
			LastName:  "O'Connor",
			Email:     "sean@example.com",
			Phone:     "+64 21 555 123",
		},
	}
}

func TestBookingRequest(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should build the booking request based on params", func(t *testing.T) {
		var receivedBody string

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			receivedBody = string(body)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`<Reply><AddServiceReply><Status>OK</Status><BookingId>70111</BookingId><Ref>AB123456</Ref></AddServiceReply></Reply>`))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		_, err := service.CreateBooking(context.TODO(), bookingParamsTemplate(), &log)

		assert.NoError(t, err)

		assert.Contains(t, receivedBody, "<AddServiceRequest>")
		assert.Contains(t, receivedBody, "<QB>B</QB>")
		assert.Contains(t, receivedBody, "<Opt>AKLACHTLSTD001</Opt>")
		assert.Contains(t, receivedBody, "<RateId>Default</RateId>")
		assert.Contains(t, receivedBody, "<DateFrom>2026-10-05</DateFrom>")
		assert.Contains(t, receivedBody, "<SCUqty>3</SCUqty>")
		assert.Contains(t, receivedBody, "<Adults>2</Adults>")
		assert.Contains(t, receivedBody, "<puRemark>Phone: +64 21 555 123</puRemark>")

		// Accents folded, surname first, apostrophe escaped by the encoder.
		assert.Contains(t, receivedBody, "<Name>O&#39;Connor/Sean</Name>")

		agentIndex := strings.Index(receivedBody, "<AgentID>")
		passwordIndex := strings.Index(receivedBody, "<Password>")
		assert.True(t, agentIndex >= 0)
		assert.True(t, passwordIndex > agentIndex)
	})

	t.Run("should confirm when the supplier returns OK", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`<Reply><AddServiceReply><Status>OK</Status><BookingId>70111</BookingId><Ref>AB123456</Ref></AddServiceReply></Reply>`))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.CreateBooking(context.TODO(), bookingParamsTemplate(), &log)

		assert.NoError(t, err)
		assert.Equal(t, schema.BookingResponseStatusOK, response.Status)
		assert.Equal(t, "AB123456", *response.SupplierBookingReference)
		assert.Equal(t, "70111", *response.SupplierBookingId)
		assert.Nil(t, response.FallbackReference)
	})

	t.Run("should go pending with a local reference on other statuses", func(t *testing.T) {
		tests := []string{"RQ", "WQ", "PX", "NO"}

		for _, status := range tests {
			t.Run(status, func(t *testing.T) {
				testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
					w.Write([]byte(`<Reply><AddServiceReply><Status>` + status + `</Status><BookingId>70112</BookingId></AddServiceReply></Reply>`))
				}))
				defer testServer.Close()

				service := newService(defaultConfiguration(testServer.URL))

				response, err := service.CreateBooking(context.TODO(), bookingParamsTemplate(), &log)

				assert.NoError(t, err)
				assert.Equal(t, schema.BookingResponseStatusPENDING, response.Status)
				assert.Equal(t, status, *response.SupplierStatus)
				assert.True(t, strings.HasPrefix(*response.FallbackReference, "WEB-"))
				assert.Nil(t, response.SupplierBookingReference)
			})
		}
	})

	t.Run("should notify staff for pending bookings when the mailer is configured", func(t *testing.T) {
		mailerCalled := false

		mailerServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mailerCalled = true

			assert.Equal(t, "/messages", r.URL.Path)
			assert.Equal(t, "Bearer mailer-key", r.Header.Get("Authorization"))

			var message map[string]string
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &message))
			assert.Equal(t, "staff@example.com", message["to"])
			assert.Contains(t, message["subject"], "WEB-")

			w.WriteHeader(http.StatusOK)
		}))
		defer mailerServer.Close()

		supplierServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`<Reply><AddServiceReply><Status>RQ</Status></AddServiceReply></Reply>`))
		}))
		defer supplierServer.Close()

		redisClient, _ := redismock.NewClientMock()
		service := tourplan.New(redisClient, defaultConfiguration(supplierServer.URL), schema.MailerConfiguration{
			ApiUrl:       mailerServer.URL,
			ApiKey:       "mailer-key",
			FromAddress:  "noreply@example.com",
			StaffAddress: "staff@example.com",
		})

		response, err := service.CreateBooking(context.TODO(), bookingParamsTemplate(), &log)

		assert.NoError(t, err)
		assert.Equal(t, schema.BookingResponseStatusPENDING, response.Status)
		assert.True(t, mailerCalled)
	})

	t.Run("should fail on a supplier error reply", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`<Reply><ErrorReply><Error>2052 Option not bookable</Error></ErrorReply></Reply>`))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.CreateBooking(context.TODO(), bookingParamsTemplate(), &log)

		assert.NoError(t, err)
		assert.Equal(t, schema.BookingResponseStatusFAILED, response.Status)
		assert.Equal(t, "2052 Option not bookable", (*response.Errors)[0].Message)
		assert.Nil(t, response.FallbackReference)
	})

	t.Run("should fail when the supplier response is unusable", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("not xml at all"))
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.CreateBooking(context.TODO(), bookingParamsTemplate(), &log)

		assert.NoError(t, err)
		assert.Equal(t, schema.BookingResponseStatusFAILED, response.Status)
		assert.Equal(t, "invalid response format", (*response.Errors)[0].Message)
	})

	t.Run("should fail with a supplier error on bad status codes", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		response, err := service.CreateBooking(context.TODO(), bookingParamsTemplate(), &log)

		assert.NoError(t, err)
		assert.Equal(t, schema.BookingResponseStatusFAILED, response.Status)
		assert.Equal(t, schema.SupplierError, (*response.Errors)[0].Code)
	})

	t.Run("should fail with a timeout error when the supplier hangs", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer testServer.Close()

		service := newService(defaultConfiguration(testServer.URL))

		params := bookingParamsTemplate()
		params.Timeouts = schema.Timeouts{Default: 10}

		response, err := service.CreateBooking(context.TODO(), params, &log)

		assert.NoError(t, err)
		assert.Equal(t, schema.BookingResponseStatusFAILED, response.Status)
		assert.Equal(t, schema.TimeoutError, (*response.Errors)[0].Code)
	})

	t.Run("should not call the supplier when credentials are missing", func(t *testing.T) {
		supplierCalled := false

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplierCalled = true
		}))
		defer testServer.Close()

		configuration := defaultConfiguration(testServer.URL)
		configuration.Password = ""

		service := newService(configuration)

		response, err := service.CreateBooking(context.TODO(), bookingParamsTemplate(), &log)

		assert.NoError(t, err)
		assert.False(t, supplierCalled)
		assert.Equal(t, schema.BookingResponseStatusFAILED, response.Status)
		assert.Equal(t, schema.AgentNotConfigured, (*response.Errors)[0].Code)
	})
}
