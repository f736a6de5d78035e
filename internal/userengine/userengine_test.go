package userengine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/config"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/mapping"
)

func newTestEngine(t *testing.T, userCfg config.UserMappingConfig) *Engine {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "user_mapping.csv")
	content := "id,name\n1001,John Doe\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	um, err := mapping.LoadUserMap(path, "id", "name", false, false)
	if err != nil {
		t.Fatalf("LoadUserMap: %v", err)
	}
	return New(um, userCfg, "titlecase")
}

func TestResolveMappedUserUsesCanonicalSpellingVerbatim(t *testing.T) {
	e := newTestEngine(t, config.UserMappingConfig{})
	res := e.Resolve("john doe")
	if res.UserID != "1001" || res.CanonicalName != "John Doe" {
		t.Fatalf("Resolve = %+v, want canonical mapping spelling", res)
	}
}

func TestResolveUnmappedAppliesCaseNormalization(t *testing.T) {
	e := newTestEngine(t, config.UserMappingConfig{})
	res := e.Resolve("temp person")
	if res.UserID != "" {
		t.Fatalf("UserID = %q, want empty for unmapped", res.UserID)
	}
	if res.CanonicalName != "Temp Person" {
		t.Fatalf("CanonicalName = %q, want title-cased fallback", res.CanonicalName)
	}
}

func TestResolveStripsPrefixAndManagementSuffix(t *testing.T) {
	e := newTestEngine(t, config.UserMappingConfig{Prefix: "VC - ", ManagementSuffix: " - MGMT"})
	res := e.Resolve("VC - John Doe - MGMT")
	if !res.IsManagement {
		t.Fatalf("IsManagement = false, want true")
	}
	if res.UserID != "1001" {
		t.Fatalf("UserID = %q, want 1001 after prefix/suffix stripped", res.UserID)
	}
}

func TestResolveNonManagementSuffixAbsent(t *testing.T) {
	e := newTestEngine(t, config.UserMappingConfig{ManagementSuffix: " - MGMT"})
	res := e.Resolve("John Doe")
	if res.IsManagement {
		t.Fatalf("IsManagement = true, want false when suffix absent")
	}
}
