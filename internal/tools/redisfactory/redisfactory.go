package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Two separate connections: the trafficlight DB holds short-lived
// coalescing locks and grouped search responses, the responses cache DB
// holds longer-lived supplier data such as product search metadata.
// They can point at the same Redis instance in smaller deployments.

// todo: clients could be created on-demand, but got to figure out how to fail fast if URIs are missing

type Factory struct {
	trafficlightCache *redis.Client
	responsesCache    *redis.Client
}

func New() *Factory {
	return &Factory{
		trafficlightCache: clientFromEnv("TRAFFICLIGHT_REDIS_URI"),
		responsesCache:    clientFromEnv("RESPONSES_CACHE_REDIS_URI"),
	}
}

func clientFromEnv(variable string) *redis.Client {
	opt, err := redis.ParseURL(os.Getenv(variable))
	if err != nil {
		panic(err)
	}

	// HostConnect calls are slow enough on their own, cache lookups
	// must not add to the wait
	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return redis.NewClient(opt)
}

func (f *Factory) TrafficlightClient() *redis.Client {
	return f.trafficlightCache
}

func (f *Factory) ResponsesCacheClient() *redis.Client {
	return f.responsesCache
}
