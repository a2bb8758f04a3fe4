package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arcpath.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `configVersion: 1
context:
  currentUrl: https://example.com/v
  originalHost: https://example.com
  originalScheme: "https:"
  originalUrl: https://example.com/v
  servingPrefix: /archive/20230101/
logging:
  decisionLog: decisions.jsonl
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.Context.ServingPrefix != "/archive/20230101/" {
		t.Fatalf("unexpected serving prefix %q", cfg.Context.ServingPrefix)
	}

	resolved := cfg.ResolvePath(cfg.Logging.DecisionLog)
	if resolved != filepath.Join(filepath.Dir(path), "decisions.jsonl") {
		t.Fatalf("decision log not anchored to config dir: %q", resolved)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `configVersion: 1
context:
  currentUrl: https://example.com/v
  servingPrefx: /archive/20230101/
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected misspelled key to be rejected")
	} else if !strings.Contains(err.Error(), "servingPrefx") {
		t.Fatalf("expected error to name the unknown key, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
