package config

import (
	"flag"
	"os"

	"github.com/Dowlet20/ecom-admin/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    base URL of the marketplace API
//	-img string  base URL thumbnails are served from
//	-s string    path to the session token file
//	-e string    environment name (local, dev, prod)
//
// The function filters os.Args to only the flags it knows about, so it does
// not conflict with flags handled elsewhere (such as -c/-config).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-img", "-s", "-e"})

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the marketplace API")
	fs.StringVar(&cfg.ImageBaseURL, "img", cfg.ImageBaseURL, "base URL thumbnails are served from")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "path to the session token file")
	fs.StringVar(&cfg.Env, "e", cfg.Env, "environment name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
