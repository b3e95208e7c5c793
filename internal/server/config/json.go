package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pastekeeper/internal/flagx"
	"github.com/dmitrijs2005/pastekeeper/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for the validity field, which allows parsing
// both string values such as "60s" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	HostURL               string         `json:"host_url"`
	UploadDir             string         `json:"upload_dir"`
	IDLength              *int           `json:"id_length"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags; if
// neither is set, no JSON file is loaded. Fields absent from the file keep
// their current values.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", jsonConfigFile, err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.HostURL != "" {
		config.HostURL = c.HostURL
	}
	if c.UploadDir != "" {
		config.UploadDir = c.UploadDir
	}
	if c.IDLength != nil {
		config.IDLength = *c.IDLength
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}

	return nil
}
