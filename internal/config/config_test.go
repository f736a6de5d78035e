package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadMissingPathReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Global.ComponentSep != "_" {
		t.Errorf("expected default component separator, got %q", cfg.Global.ComponentSep)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vcrename.yaml")
	yamlContent := `
global:
  component_separator: "-"
category:
  placement: prefix
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Global.ComponentSep != "-" {
		t.Errorf("expected overridden separator '-', got %q", cfg.Global.ComponentSep)
	}
	if cfg.Category.Placement != "prefix" {
		t.Errorf("expected overridden placement 'prefix', got %q", cfg.Category.Placement)
	}
	// Untouched defaults should survive the partial override.
	if cfg.Date.NormalizedFormat != "%Y-%m-%d" {
		t.Errorf("expected default date format to survive partial override, got %q", cfg.Date.NormalizedFormat)
	}
}

func TestValidateRejectsUnknownCaseNormalization(t *testing.T) {
	cfg := Default()
	cfg.Global.CaseNormalization = "screaming"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid case_normalization")
	}
}

func TestValidateRejectsUnknownComponent(t *testing.T) {
	cfg := Default()
	cfg.Global.ComponentOrder = []string{"id", "bogus"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid component_order entry")
	}
}

func TestValidateRejectsDuplicateComponent(t *testing.T) {
	cfg := Default()
	cfg.Global.ComponentOrder = []string{"id", "id"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for duplicate component_order entry")
	}
}

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("/cfg/dir", "mapping.csv"); got != filepath.Join("/cfg/dir", "mapping.csv") {
		t.Errorf("ResolvePath relative = %q", got)
	}
	if got := ResolvePath("/cfg/dir", "/abs/mapping.csv"); got != "/abs/mapping.csv" {
		t.Errorf("ResolvePath absolute = %q", got)
	}
	if got := ResolvePath("", "mapping.csv"); got != "mapping.csv" {
		t.Errorf("ResolvePath empty dir = %q", got)
	}
}
