package rest

import (
	"net/http"

	"github.com/architeacher/imagekit/pkg/circuitbreaker"
	"github.com/architeacher/imagekit/pkg/logger"
	otelTrace "go.opentelemetry.io/otel/trace"
)

// Option configures the REST Client.
type Option func(*Client)

// WithHTTPClient replaces the default client. Its transport is still
// wrapped with OpenTelemetry instrumentation.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCircuitBreaker allows injecting a custom circuit breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker[*Response]) Option {
	return func(c *Client) {
		c.cb = cb
	}
}

func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

func WithTracerProvider(tracerProvider otelTrace.TracerProvider) Option {
	return func(c *Client) {
		c.tracerProvider = tracerProvider
	}
}
