package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultFilePath is used by LoadFile when no path is given.
const DefaultFilePath = "~/.config/imagekit/config.toml"

type (
	fileConfig struct {
		PublicKey      string      `toml:"public_key"`
		PrivateKey     string      `toml:"private_key"`
		URLEndpoint    string      `toml:"url_endpoint"`
		UploadEndpoint string      `toml:"upload_endpoint"`
		FilesEndpoint  string      `toml:"files_endpoint"`
		HTTP           fileHTTP    `toml:"http"`
		Logging        fileLogging `toml:"logging"`
	}

	fileHTTP struct {
		Timeout   string `toml:"timeout"`
		UserAgent string `toml:"user_agent"`
	}

	fileLogging struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	}
)

// LoadFile reads the environment like Init and then applies the settings
// of a TOML file on top. Keys missing from the file keep their
// environment or default value.
//
//	public_key   = "public_..."
//	private_key  = "private_..."
//	url_endpoint = "https://ik.imagekit.io/demo"
//
//	[http]
//	timeout = "10s"
func LoadFile(path string) (*ServiceConfig, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg, err := Init()
	if err != nil {
		return nil, err
	}

	if err := raw.apply(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (f fileConfig) apply(cfg *ServiceConfig) error {
	set(&cfg.Credentials.PublicKey, f.PublicKey)
	set(&cfg.Credentials.PrivateKey, f.PrivateKey)
	set(&cfg.Endpoints.URL, f.URLEndpoint)
	set(&cfg.Endpoints.Upload, f.UploadEndpoint)
	set(&cfg.Endpoints.Files, f.FilesEndpoint)
	set(&cfg.HTTPClient.UserAgent, f.HTTP.UserAgent)
	set(&cfg.Logging.Level, f.Logging.Level)
	set(&cfg.Logging.Format, f.Logging.Format)

	if timeout := strings.TrimSpace(f.HTTP.Timeout); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("parse config: http.timeout: %w", err)
		}

		cfg.HTTPClient.Timeout = parsed
	}

	return nil
}

func set(target *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*target = value
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultFilePath
	}

	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}

		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}

	return filepath.Abs(trimmed)
}
