package imagekit

import (
	"net/http"
	"time"

	"github.com/architeacher/imagekit/internal/config"
	"github.com/architeacher/imagekit/pkg/circuitbreaker"
	"github.com/architeacher/imagekit/pkg/logger"
	"github.com/architeacher/imagekit/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	// Option configures an ImageKit client.
	Option func(*options)

	options struct {
		httpClient     *http.Client
		logger         *logger.Logger
		tracerProvider otelTrace.TracerProvider
		metricsClient  metrics.Client
		uploadEndpoint string
		filesEndpoint  string
		timeout        *time.Duration
		userAgent      string
		breaker        *circuitbreaker.Config
	}
)

// WithHTTPClient sends requests through httpClient. Its transport is wrapped
// with OpenTelemetry instrumentation; the value passed in is not modified.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.logger = &log
	}
}

func WithTracerProvider(tracerProvider otelTrace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tracerProvider
	}
}

// WithMetricsClient records per-operation durations and outcomes, e.g. to a
// metrics.NewOtelClient.
func WithMetricsClient(metricsClient metrics.Client) Option {
	return func(o *options) {
		o.metricsClient = metricsClient
	}
}

// WithUploadEndpoint overrides https://upload.imagekit.io/api/v1/files/upload.
func WithUploadEndpoint(endpoint string) Option {
	return func(o *options) {
		o.uploadEndpoint = endpoint
	}
}

// WithFilesEndpoint overrides https://api.imagekit.io/v1/files.
func WithFilesEndpoint(endpoint string) Option {
	return func(o *options) {
		o.filesEndpoint = endpoint
	}
}

// WithTimeout bounds every request. It is ignored when WithHTTPClient is
// used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = &timeout
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithCircuitBreaker guards requests with a circuit breaker. Transport
// failures, 429 and 5xx responses count as failures. cfg.Name is ignored.
func WithCircuitBreaker(cfg circuitbreaker.Config) Option {
	return func(o *options) {
		o.breaker = &cfg
	}
}

func (o *options) apply(cfg *config.ServiceConfig) {
	if o.uploadEndpoint != "" {
		cfg.Endpoints.Upload = o.uploadEndpoint
	}

	if o.filesEndpoint != "" {
		cfg.Endpoints.Files = o.filesEndpoint
	}

	if o.timeout != nil {
		cfg.HTTPClient.Timeout = *o.timeout
	}

	if o.userAgent != "" {
		cfg.HTTPClient.UserAgent = o.userAgent
	}

	if o.breaker != nil {
		cfg.CircuitBreaker = config.CircuitBreaker{
			Enabled:          o.breaker.Enabled,
			MaxRequests:      o.breaker.MaxRequests,
			Interval:         o.breaker.Interval,
			Timeout:          o.breaker.Timeout,
			FailureThreshold: o.breaker.FailureThreshold,
		}
	}
}
