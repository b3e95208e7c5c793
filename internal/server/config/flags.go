package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pastekeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-o string   public host URL used in retrieval links
//	-u string   upload root directory
//	-l int      generated paste identifier length
//	-s string   JWT HMAC secret key
//	-t int      token validity, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-o", "-u", "-l", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.HostURL, "o", config.HostURL, "public host URL")
	fs.StringVar(&config.UploadDir, "u", config.UploadDir, "upload root directory")
	fs.IntVar(&config.IDLength, "l", config.IDLength, "paste identifier length")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValiditySecs := fs.Int("t", int(config.TokenValidityDuration.Seconds()), "token validity (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.TokenValidityDuration = time.Duration(*tokenValiditySecs) * time.Second
	return nil
}
