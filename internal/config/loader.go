package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Init reads the IMAGEKIT_* environment. The result is not validated.
func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	return cfg, nil
}

// WithCredentials reads the environment like Init and replaces the
// credentials and URL endpoint with the given values.
func WithCredentials(publicKey, privateKey, urlEndpoint string) (*ServiceConfig, error) {
	cfg, err := Init()
	if err != nil {
		return nil, err
	}

	cfg.Credentials.PublicKey = publicKey
	cfg.Credentials.PrivateKey = privateKey
	cfg.Endpoints.URL = urlEndpoint

	return cfg, nil
}
