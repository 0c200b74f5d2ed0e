package client

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// OutgoingLoggerRoundTripper logs every exchange with a named internal
// service, such as the mailer. Supplier traffic has its own transport
// middleware with per-operation diagnostics.
type OutgoingLoggerRoundTripper struct {
	destination string
	logger      *zerolog.Logger
}

func NewOutgoingLoggerRoundTripper(logger *zerolog.Logger, destination string) *OutgoingLoggerRoundTripper {
	return &OutgoingLoggerRoundTripper{
		destination: destination,
		logger:      logger,
	}
}

func (r OutgoingLoggerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	message := r.logger.Info().
		Str("label", "outgoing-request").
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("destination", r.destination).
		Str("userAgent", req.UserAgent())

	defer func() {
		message.Float64("duration", time.Since(startTime).Seconds()).Msg("")
	}()

	res, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		message.Str("error", err.Error()).Int("code", statusOrZero(res))
		return nil, err
	}

	message.Int("code", res.StatusCode)

	return res, nil
}

func statusOrZero(res *http.Response) int {
	if res == nil {
		return 0
	}

	return res.StatusCode
}
