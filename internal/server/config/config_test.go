package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"pastekeeper"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	resetArgs(t)
	t.Setenv(EnvSecretKey, "env-secret")
	t.Setenv(EnvExpireSecs, "120")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 2*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, ":8000", cfg.EndpointAddr)
	assert.Equal(t, "upload", cfg.UploadDir)
	assert.Equal(t, 64, cfg.IDLength)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	resetArgs(t)
	t.Setenv(EnvExpireSecs, "120")

	_, err := LoadConfig()
	require.ErrorIs(t, err, common.ErrSecretNotFound)
}

func TestLoadConfig_MissingExpiry(t *testing.T) {
	resetArgs(t)
	t.Setenv(EnvSecretKey, "env-secret")

	_, err := LoadConfig()
	require.ErrorIs(t, err, common.ErrExpiryConfigMissing)
}

func TestLoadConfig_InvalidExpiry(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "soon"},
		{"negative", "-5"},
		{"float", "1.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetArgs(t)
			t.Setenv(EnvSecretKey, "env-secret")
			t.Setenv(EnvExpireSecs, tc.value)

			_, err := LoadConfig()
			require.ErrorIs(t, err, common.ErrExpiryConfigInvalid)
		})
	}
}

func TestLoadConfig_FlagOverlay(t *testing.T) {
	resetArgs(t, "-a", ":9999", "-o", "https://paste.example.com", "-u", "/var/pastes", "-l", "32", "-s", "flag-secret", "-t", "60")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, "https://paste.example.com", cfg.HostURL)
	assert.Equal(t, "/var/pastes", cfg.UploadDir)
	assert.Equal(t, 32, cfg.IDLength)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, time.Minute, cfg.TokenValidityDuration)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"endpoint_addr": ":7070",
		"host_url": "http://paste.local:7070",
		"id_length": 16,
		"secret_key": "json-secret",
		"token_validity_duration": "90s"
	}`), 0o600))

	resetArgs(t, "-c", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "http://paste.local:7070", cfg.HostURL)
	assert.Equal(t, 16, cfg.IDLength)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 90*time.Second, cfg.TokenValidityDuration)
}

func TestLoadConfig_EnvWinsOverJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"secret_key": "json-secret", "token_validity_duration": "90s"}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv(EnvSecretKey, "env-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.SecretKey)
}

func TestConfig_Validate_RejectsBadHost(t *testing.T) {
	tests := []string{"", "not a url", "127.0.0.1:8000", "/relative/path"}

	for _, host := range tests {
		cfg := &Config{}
		cfg.LoadDefaults()
		cfg.SecretKey = "s"
		cfg.TokenValidityDuration = time.Minute
		cfg.HostURL = host

		assert.Error(t, cfg.Validate(), "host %q should be rejected", host)
	}
}

func TestConfig_Validate_RejectsBadIDLength(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "s"
	cfg.TokenValidityDuration = time.Minute
	cfg.IDLength = 0

	assert.Error(t, cfg.Validate())
}
