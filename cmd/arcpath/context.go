package main

import (
	"errors"
	"strings"

	"github.com/arcpath/arcpath/internal/config"
	"github.com/arcpath/arcpath/internal/rewrite"
	"github.com/spf13/cobra"
)

// contextFlags builds an archival context either from a config file or
// directly from flags, for the commands that rewrite URLs.
type contextFlags struct {
	configPath string

	currentURL     string
	originalHost   string
	originalScheme string
	originalURL    string
	servingPrefix  string
}

func (f *contextFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to config file")
	cmd.Flags().StringVar(&f.currentURL, "current-url", "", "Absolute URL of the document making requests")
	cmd.Flags().StringVar(&f.originalHost, "original-host", "", "Scheme+host of the archived site, e.g. https://example.com")
	cmd.Flags().StringVar(&f.originalScheme, "original-scheme", "", "Scheme of the archived site (defaults to the original host's)")
	cmd.Flags().StringVar(&f.originalURL, "original-url", "", "Absolute URL of the archived page (defaults to original host + /)")
	cmd.Flags().StringVar(&f.servingPrefix, "prefix", "", "Absolute path prefix the archive is served under")
}

func (f *contextFlags) build() (*rewrite.Context, error) {
	if f.configPath != "" {
		cfg, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		ctx := cfg.Context
		return rewrite.NewContext(ctx.CurrentURL, ctx.OriginalHost, ctx.OriginalScheme, ctx.OriginalURL, ctx.ServingPrefix)
	}

	if f.originalHost == "" || f.servingPrefix == "" {
		return nil, errors.New("either --config or --original-host and --prefix are required")
	}

	originalScheme := f.originalScheme
	if originalScheme == "" {
		scheme, _, found := strings.Cut(f.originalHost, "//")
		if !found {
			return nil, errors.New("--original-host must include a scheme")
		}
		originalScheme = scheme
	}
	originalURL := f.originalURL
	if originalURL == "" {
		originalURL = f.originalHost + "/"
	}
	currentURL := f.currentURL
	if currentURL == "" {
		currentURL = originalURL
	}

	return rewrite.NewContext(currentURL, f.originalHost, originalScheme, originalURL, f.servingPrefix)
}
