package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/architeacher/imagekit/internal/config"
	"github.com/architeacher/imagekit/pkg/circuitbreaker"
	"github.com/architeacher/imagekit/pkg/logger"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const (
	HeaderRequestID   = "X-Request-Id"
	HeaderUserAgent   = "User-Agent"
	HeaderContentType = "Content-Type"
)

type (
	// Response is a raw response of the remote service. Decoding and status
	// handling belong to the service layer.
	Response struct {
		StatusCode int
		Header     http.Header
		Body       []byte
	}

	// Client is a thin HTTP adapter over the upload and files APIs.
	Client struct {
		httpClient     *http.Client
		tracerProvider otelTrace.TracerProvider
		cb             *circuitbreaker.CircuitBreaker[*Response]
		logger         logger.Logger
		config         *config.ServiceConfig
	}

	// statusError marks responses the breaker counts as failures. It never
	// leaves this package.
	statusError struct {
		statusCode int
	}
)

func (e *statusError) Error() string {
	return fmt.Sprintf("remote service responded with status %d", e.statusCode)
}

// NewClient creates a client for the endpoints and credentials of cfg.
func NewClient(cfg *config.ServiceConfig, opts ...Option) *Client {
	client := &Client{
		config: cfg,
		logger: logger.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: cfg.HTTPClient.Timeout}
	}

	client.httpClient = instrument(client.httpClient, client.tracerProvider)

	if client.cb == nil {
		client.cb = circuitbreaker.New[*Response](
			cfg.CircuitBreaker.BreakerConfig("imagekit"),
			circuitbreaker.WithFailurePredicate(isFailure),
			circuitbreaker.WithStateChangeHook(func(name string, from, to circuitbreaker.State) {
				client.logger.Warn().
					Str("breaker", name).
					Str("from", string(from)).
					Str("to", string(to)).
					Msg("circuit breaker state changed")
			}),
		)
	}

	return client
}

// Config returns the service configuration.
func (c *Client) Config() *config.ServiceConfig {
	return c.config
}

// Upload posts a multipart body to the upload endpoint.
func (c *Client) Upload(ctx context.Context, body io.Reader, contentType string) (*Response, error) {
	return c.do(ctx, http.MethodPost, c.config.Endpoints.Upload, body, contentType)
}

// Delete calls DELETE {files}/{fileID}.
func (c *Client) Delete(ctx context.Context, fileID string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, c.fileURL(fileID), nil, "")
}

// GetDetails calls GET {files}/{fileID}/details.
func (c *Client) GetDetails(ctx context.Context, fileID string) (*Response, error) {
	return c.do(ctx, http.MethodGet, c.fileURL(fileID)+"/details", nil, "")
}

// List calls GET {files} with the given query.
func (c *Client) List(ctx context.Context, query url.Values) (*Response, error) {
	endpoint := strings.TrimRight(c.config.Endpoints.Files, "/")
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	return c.do(ctx, http.MethodGet, endpoint, nil, "")
}

func (c *Client) fileURL(fileID string) string {
	return strings.TrimRight(c.config.Endpoints.Files, "/") + "/" + url.PathEscape(fileID)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string) (*Response, error) {
	requestID, ok := logger.RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
		ctx = logger.WithRequestID(ctx, requestID)
	}

	log := c.logger.WithContext(ctx).With().
		Str("method", method).
		Str("endpoint", endpoint).
		Logger()

	resp, err := circuitbreaker.Execute(c.cb, func() (*Response, error) {
		return c.send(ctx, method, endpoint, body, contentType, requestID)
	})

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		err = nil
	}

	if err != nil {
		log.Debug().Err(err).Msg("request failed")

		return nil, err
	}

	log.Debug().Int("status", resp.StatusCode).Msg("request completed")

	return resp, nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, body io.Reader, contentType, requestID string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("unable to build %s request: %w", method, err)
	}

	req.SetBasicAuth(c.config.Credentials.PrivateKey, "")
	req.Header.Set(HeaderUserAgent, c.config.HTTPClient.UserAgent)
	req.Header.Set(HeaderRequestID, requestID)

	if contentType != "" {
		req.Header.Set(HeaderContentType, contentType)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       bytes.TrimSpace(data),
	}

	if httpResp.StatusCode == http.StatusTooManyRequests || httpResp.StatusCode >= http.StatusInternalServerError {
		return resp, &statusError{statusCode: httpResp.StatusCode}
	}

	return resp, nil
}

// isFailure counts transport errors and overload or server responses
// against the breaker. Caller cancellation does not.
func isFailure(err error) bool {
	if err == nil {
		return false
	}

	return !errors.Is(err, context.Canceled)
}

// instrument returns a copy of client whose transport records OpenTelemetry
// spans and metrics.
func instrument(client *http.Client, tracerProvider otelTrace.TracerProvider) *http.Client {
	instrumented := *client

	base := instrumented.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	var opts []otelhttp.Option
	if tracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(tracerProvider))
	}

	instrumented.Transport = otelhttp.NewTransport(base, opts...)

	return &instrumented
}
