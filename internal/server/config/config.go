// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
)

// Config holds runtime settings for the PasteKeeper server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - HostURL: public base URL used to build paste retrieval links.
//   - UploadDir: root directory for per-user paste storage.
//   - IDLength: length of generated paste identifiers.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - TokenValidityDuration: token lifetime. Required.
type Config struct {
	EndpointAddr          string
	HostURL               string
	UploadDir             string
	IDLength              int
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults. The secret and
// token validity have no defaults on purpose: they must be supplied through
// the environment, a JSON file, or flags.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.HostURL = "http://127.0.0.1:8000"
	c.UploadDir = "upload"
	c.IDLength = 64
}

// Validate rejects misconfiguration at startup. An unparsable host URL is an
// error here rather than a silent per-request fallback.
func (c *Config) Validate() error {
	if c.EndpointAddr == "" {
		return fmt.Errorf("endpoint address is empty")
	}
	u, err := url.Parse(c.HostURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("host URL %q is not a valid absolute URL", c.HostURL)
	}
	if c.UploadDir == "" {
		return fmt.Errorf("upload directory is empty")
	}
	if c.IDLength <= 0 {
		return fmt.Errorf("paste id length must be positive, got %d", c.IDLength)
	}
	if c.SecretKey == "" {
		return common.ErrSecretNotFound
	}
	if c.TokenValidityDuration <= 0 {
		return common.ErrExpiryConfigMissing
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags. The result is validated before being returned.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
