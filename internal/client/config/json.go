package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/dmitrijs2005/pastekeeper/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON configuration file.
type JsonConfig struct {
	ServerURL string `json:"server_url"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any. A missing flag means nothing is loaded; an
// unreadable or invalid file is fatal.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		log.Fatalf("reading config file: %v", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		log.Fatalf("parsing config file %s: %v", jsonConfigFile, err)
	}

	if c.ServerURL != "" {
		config.ServerURL = c.ServerURL
	}
}
