package client

import "time"

const DefaultTimeout = 3 * time.Second

type OptionFunc func(o *Options)

// Options configures a client for an internal service. The hub only
// talks to a handful of them, so the surface is small: where to reach
// the service and how long to wait.
type Options struct {
	// Name of the caller service, used for logging
	name string

	// Full URL to the service, including protocol
	baseURL string

	timeout time.Duration
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(o *Options) {
		o.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(o *Options) {
		o.timeout = timeout
	}
}

func NewOptions(optionFuncs ...OptionFunc) (*Options, error) {
	options := &Options{
		name: "tourplan-hub",
	}

	for _, optionFunc := range optionFuncs {
		optionFunc(options)
	}

	return options, nil
}

func (o *Options) Name() string {
	return o.name
}

func (o *Options) BaseURL() string {
	return o.baseURL
}

func (o *Options) Timeout() time.Duration {
	if o.timeout != 0 {
		return o.timeout
	}
	return DefaultTimeout
}
