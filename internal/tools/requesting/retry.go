package requesting

import (
	"io"
	"math/rand"
	"net/http"
	"time"
)

// RetryPolicy decides whether a failed supplier exchange is attempted again.
// The hub default is NoRetry: booking calls are not idempotent on the
// supplier side, so any retrying has to be opted into per call site.
type RetryPolicy interface {
	// Attempts returns the maximum number of tries, including the first one.
	Attempts() int

	// Backoff returns how long to sleep before the given attempt (1-based).
	Backoff(attempt int) time.Duration
}

type noRetry struct{}

func (noRetry) Attempts() int             { return 1 }
func (noRetry) Backoff(int) time.Duration { return 0 }

// NoRetry performs exactly one attempt.
func NoRetry() RetryPolicy {
	return noRetry{}
}

type expBackoff struct {
	attempts int
	base     time.Duration
}

func (p expBackoff) Attempts() int {
	return p.attempts
}

func (p expBackoff) Backoff(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	backoff := p.base << (attempt - 2)
	jitter := time.Duration(rand.Int63n(int64(p.base)))

	return backoff + jitter
}

// ExpBackoff retries up to attempts times with exponential backoff plus
// jitter. Only safe for read-only supplier operations.
func ExpBackoff(attempts int, base time.Duration) RetryPolicy {
	return expBackoff{
		attempts: attempts,
		base:     base,
	}
}

// WithRetries performs the exchange under the given policy. The request
// factory is invoked per attempt so the body reader is fresh each time.
func WithRetries(
	client *http.Client,
	policy RetryPolicy,
	makeRequest func() *http.Request,
) (*http.Response, error) {
	var response *http.Response
	var err error

	for attempt := 1; attempt <= policy.Attempts(); attempt++ {
		// The previous attempt is abandoned, drain it so the
		// connection can be reused
		if response != nil {
			io.Copy(io.Discard, response.Body)
			response.Body.Close()
		}

		time.Sleep(policy.Backoff(attempt))

		response, err = client.Do(makeRequest())
		if err == nil && isValidResponse(response.StatusCode) {
			return response, nil
		}
	}

	return response, err
}
