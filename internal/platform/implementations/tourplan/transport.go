package tourplan

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/requesting"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

// proxyQuery is the routing metadata the egress proxy reads off the URL to
// pick the upstream and label its access logs.
type proxyQuery struct {
	Agent     string `url:"agent"`
	Operation string `url:"operation"`
}

// supplierRequest builds the HostConnect POST for one operation. The request
// type travels in the context so the bucket middleware can label the history
// entry. Proxied calls carry a short-lived signed bearer token.
func supplierRequest(
	ctx context.Context,
	name schema.SupplierRequestName,
	configuration schema.TourplanConfiguration,
	requestBody string,
) (*http.Request, error) {
	c := context.WithValue(ctx, schema.RequestingTypeKey, name)

	endpoint := configuration.EndpointUrl()
	if configuration.UseProxy {
		v, _ := query.Values(proxyQuery{
			Agent:     configuration.AgentID,
			Operation: string(name),
		})
		endpoint = endpoint + "?" + v.Encode()
	}

	httpRequest, err := http.NewRequestWithContext(c, http.MethodPost, endpoint, bytes.NewBufferString(requestBody))
	if err != nil {
		return nil, err
	}

	httpRequest.Header.Set("Content-Type", "text/xml; charset=utf-8")

	if configuration.BasicAuthUsername != nil && configuration.BasicAuthPassword != nil {
		httpRequest.SetBasicAuth(*configuration.BasicAuthUsername, *configuration.BasicAuthPassword)
	}

	if configuration.UseProxy && configuration.ProxySigningSecret != nil {
		token, err := proxyToken(configuration)
		if err != nil {
			return nil, err
		}

		// Dedicated header, the Authorization header stays free for
		// the supplier's basic auth
		httpRequest.Header.Set("Proxy-Authorization", "Bearer "+token)
	}

	return httpRequest, nil
}

func proxyToken(configuration schema.TourplanConfiguration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    "tourplan-hub",
		Subject:   configuration.AgentID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Minute)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(*configuration.ProxySigningSecret))
}

func newSupplierClient(
	timeoutMs int,
	httpTransport *http.Transport,
	logger *zerolog.Logger,
	bucket requesting.RequestBucket,
) *http.Client {
	return &http.Client{
		Timeout: time.Duration(timeoutMs) * time.Millisecond,
		Transport: &requesting.InterceptorTransport{
			Transport: httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(logger),
				requesting.NewBucketTransportMiddleware(bucket),
			},
		},
	}
}
