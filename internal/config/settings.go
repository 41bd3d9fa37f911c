package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/architeacher/imagekit/pkg/circuitbreaker"
)

const (
	DefaultUploadEndpoint = "https://upload.imagekit.io/api/v1/files/upload"
	DefaultFilesEndpoint  = "https://api.imagekit.io/v1/files"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type (
	ServiceConfig struct {
		Credentials    Credentials    `json:"credentials"`
		Endpoints      Endpoints      `json:"endpoints"`
		HTTPClient     HTTPClient     `json:"http_client"`
		CircuitBreaker CircuitBreaker `json:"circuit_breaker"`
		Logging        Logging        `json:"logging"`
	}

	Credentials struct {
		PublicKey  string `envconfig:"IMAGEKIT_PUBLIC_KEY" default:"" json:"public_key"`
		PrivateKey string `envconfig:"IMAGEKIT_PRIVATE_KEY" default:"" json:"-"`
	}

	Endpoints struct {
		URL    string `envconfig:"IMAGEKIT_URL_ENDPOINT" default:"" json:"url"`
		Upload string `envconfig:"IMAGEKIT_UPLOAD_ENDPOINT" default:"https://upload.imagekit.io/api/v1/files/upload" json:"upload"`
		Files  string `envconfig:"IMAGEKIT_FILES_ENDPOINT" default:"https://api.imagekit.io/v1/files" json:"files"`
	}

	HTTPClient struct {
		Timeout   time.Duration `envconfig:"IMAGEKIT_HTTP_TIMEOUT" default:"30s" json:"timeout"`
		UserAgent string        `envconfig:"IMAGEKIT_USER_AGENT" default:"imagekit-go" json:"user_agent"`
	}

	CircuitBreaker struct {
		Enabled          bool          `envconfig:"IMAGEKIT_CB_ENABLED" default:"false" json:"enabled"`
		MaxRequests      uint          `envconfig:"IMAGEKIT_CB_MAX_REQUESTS" default:"1" json:"max_requests"`
		Interval         time.Duration `envconfig:"IMAGEKIT_CB_INTERVAL" default:"60s" json:"interval"`
		Timeout          time.Duration `envconfig:"IMAGEKIT_CB_TIMEOUT" default:"30s" json:"timeout"`
		FailureThreshold uint          `envconfig:"IMAGEKIT_CB_FAILURE_THRESHOLD" default:"5" json:"failure_threshold"`
	}

	Logging struct {
		Level  string `envconfig:"IMAGEKIT_LOG_LEVEL" default:"info" json:"level"`
		Format string `envconfig:"IMAGEKIT_LOG_FORMAT" default:"json" json:"format"`
	}
)

// Validate reports missing credentials and malformed endpoints.
func (c *ServiceConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Credentials.PublicKey) == "" {
		errs = append(errs, errors.New("public key is required"))
	}

	if strings.TrimSpace(c.Credentials.PrivateKey) == "" {
		errs = append(errs, errors.New("private key is required"))
	}

	for name, endpoint := range map[string]string{
		"url endpoint":    c.Endpoints.URL,
		"upload endpoint": c.Endpoints.Upload,
		"files endpoint":  c.Endpoints.Files,
	} {
		if err := validateEndpoint(endpoint); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if c.HTTPClient.Timeout < 0 {
		errs = append(errs, errors.New("http timeout must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

func (c CircuitBreaker) BreakerConfig(name string) circuitbreaker.Config {
	return circuitbreaker.Config{
		Name:             name,
		Enabled:          c.Enabled,
		MaxRequests:      c.MaxRequests,
		Interval:         c.Interval,
		Timeout:          c.Timeout,
		FailureThreshold: c.FailureThreshold,
	}
}

func validateEndpoint(endpoint string) error {
	if strings.TrimSpace(endpoint) == "" {
		return errors.New("is required")
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return err
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", endpoint)
	}

	return nil
}
