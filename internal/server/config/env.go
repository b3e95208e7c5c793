package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
)

// Environment variable names. JWT_SECRET and JWT_EXPIRE_SECS are the
// canonical way to configure the token codec; the JSON overlay and flags
// exist mainly for development.
const (
	EnvSecretKey  = "JWT_SECRET"
	EnvExpireSecs = "JWT_EXPIRE_SECS"
	EnvUploadDir  = "UPLOAD_DIR"
)

// parseEnv overlays values from the process environment. A present but
// unparsable JWT_EXPIRE_SECS is a hard error; an absent variable simply
// leaves the current value in place (it may still fail validation later).
func parseEnv(config *Config) error {
	if v, ok := os.LookupEnv(EnvSecretKey); ok {
		config.SecretKey = v
	}

	if v, ok := os.LookupEnv(EnvExpireSecs); ok {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 0 {
			return common.ErrExpiryConfigInvalid
		}
		config.TokenValidityDuration = time.Duration(secs) * time.Second
	}

	if v, ok := os.LookupEnv(EnvUploadDir); ok {
		config.UploadDir = v
	}

	return nil
}
