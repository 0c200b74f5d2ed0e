package requesting

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"github.com/rs/zerolog"
)

type TransportMiddleware func(http.RoundTripper) http.RoundTripper

// InterceptorTransport chains middlewares around the base transport.
// Middlewares wrap in order, so the last one in the slice sees the
// request first.
type InterceptorTransport struct {
	Transport   http.RoundTripper
	Middlewares []TransportMiddleware
}

func (t *InterceptorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	for _, middleware := range t.Middlewares {
		transport = middleware(transport)
	}

	return transport.RoundTrip(req)
}

type loggingTransport struct {
	transport http.RoundTripper
	log       *zerolog.Logger
}

func NewLoggingTransportMiddleware(log *zerolog.Logger) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &loggingTransport{
			log:       log,
			transport: rt,
		}
	}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	message := t.log.Info().
		Str("label", "outgoing-request").
		Str("method", req.Method).
		Str("url", req.URL.String())

	defer func() {
		message.
			Float64("duration", time.Since(startTime).Seconds()).
			Msg("")
	}()

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		message.Str("error", err.Error())
		return nil, err
	}

	message.Int("code", resp.StatusCode)

	return resp, nil
}

// RequestBucket collects every supplier exchange made while serving a
// request so it can be returned in the response diagnostics.
type RequestBucket interface {
	FinishedRequest(
		requestType schema.SupplierRequestName,
		startTime time.Time,
		statusCode int,
		method string,
		url string,
		requestBody string,
		requestHeaders http.Header,
		responseBody string,
		responseHeaders http.Header,
	)
}

type bucketTransport struct {
	transport http.RoundTripper
	bucket    RequestBucket
}

func NewBucketTransportMiddleware(bucket RequestBucket) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &bucketTransport{
			transport: rt,
			bucket:    bucket,
		}
	}
}

func (b *bucketTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	startTime := time.Now()

	// Set by supplierRequest when the request is built
	requestType := request.Context().Value(schema.RequestingTypeKey).(schema.SupplierRequestName)

	requestBody := rewindBody(&request.Body)

	status := 0
	responseBody := ""
	responseHeaders := make(http.Header)

	defer func() {
		b.bucket.FinishedRequest(
			requestType,
			startTime,
			status,
			request.Method,
			request.URL.String(),
			requestBody,
			request.Header,
			responseBody,
			responseHeaders,
		)
	}()

	response, err := b.transport.RoundTrip(request)
	if err != nil {
		return nil, err
	}

	status = response.StatusCode
	responseBody = rewindBody(&response.Body)
	responseHeaders = response.Header

	return response, nil
}

// rewindBody drains the body for recording and replaces it with a fresh
// reader so the exchange still works downstream.
func rewindBody(body *io.ReadCloser) string {
	recorded, _ := io.ReadAll(*body)
	(*body).Close()
	*body = io.NopCloser(bytes.NewBuffer(recorded))

	return string(recorded)
}
