package config

import (
	"errors"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		ConfigVersion: 1,
		Context: ContextConfig{
			CurrentURL:     "https://example.com/v",
			OriginalHost:   "https://example.com",
			OriginalScheme: "https:",
			OriginalURL:    "https://example.com/v",
			ServingPrefix:  "/archive/20230101/",
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateProblems(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Config)
		problem string
	}{
		"bad version": {
			func(c *Config) { c.ConfigVersion = 2 },
			"configVersion must be 1",
		},
		"missing current url": {
			func(c *Config) { c.Context.CurrentURL = "" },
			"context.currentUrl is required",
		},
		"relative original url": {
			func(c *Config) { c.Context.OriginalURL = "v/page" },
			"context.originalUrl invalid",
		},
		"host with path": {
			func(c *Config) { c.Context.OriginalHost = "https://example.com/sub" },
			"context.originalHost invalid",
		},
		"scheme without colon": {
			func(c *Config) { c.Context.OriginalScheme = "https" },
			"context.originalScheme must end with a colon",
		},
		"relative prefix": {
			func(c *Config) { c.Context.ServingPrefix = "archive/" },
			"context.servingPrefix must be an absolute path",
		},
		"prefix without trailing slash": {
			func(c *Config) { c.Context.ServingPrefix = "/archive" },
			"context.servingPrefix must end with a slash",
		},
		"bad metrics listen": {
			func(c *Config) { c.Metrics = MetricsConfig{Enabled: true} },
			"metrics.listen invalid",
		},
	}

	for name, tc := range cases {
		cfg := validConfig()
		tc.mutate(cfg)

		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", name)
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected *ValidationError, got %T", name, err)
		}

		found := false
		for _, problem := range verr.Problems {
			if strings.Contains(problem, tc.problem) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("%s: expected problem %q in %v", name, tc.problem, verr.Problems)
		}
	}
}
