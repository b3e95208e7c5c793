package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/pastekeeper/internal/flagx"
)

// parseFlags populates client Config fields from command-line flags.
//
// Supported flags:
//
//	-e string   server base URL (e.g., "http://127.0.0.1:8000")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&config.ServerURL, "e", config.ServerURL, "server base URL")

	_ = fs.Parse(args)
}
