package mapping

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadUserMapExactLookup(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "users.csv", "user_id,full_name\n1001,John Doe\n1002,Jane Smith\n")

	um, err := LoadUserMap(path, "user_id", "full_name", false, false)
	if err != nil {
		t.Fatalf("LoadUserMap: %v", err)
	}
	if um.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", um.Len())
	}

	id, canonical, found := um.Lookup("john doe")
	if !found || id != "1001" || canonical != "John Doe" {
		t.Errorf("Lookup(john doe) = (%q, %q, %v)", id, canonical, found)
	}

	if _, _, found := um.Lookup("Nobody Here"); found {
		t.Errorf("expected no match for unknown name")
	}
}

func TestLoadUserMapCreatesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "users.csv")

	um, err := LoadUserMap(path, "user_id", "full_name", true, false)
	if err != nil {
		t.Fatalf("LoadUserMap: %v", err)
	}
	if um.Len() == 0 {
		t.Fatal("expected seeded default mapping to be loaded")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default mapping file to be created: %v", err)
	}
	if canonical, ok := um.CanonicalByID("1001"); !ok || canonical != "John Doe" {
		t.Errorf("expected seeded id 1001 -> John Doe, got (%q, %v)", canonical, ok)
	}
}

func TestLoadUserMapMissingWithoutCreateIsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "absent.csv")

	um, err := LoadUserMap(path, "user_id", "full_name", false, false)
	if err != nil {
		t.Fatalf("LoadUserMap: %v", err)
	}
	if um.Len() != 0 {
		t.Fatalf("expected empty map, got %d entries", um.Len())
	}
}

func TestUserMapFuzzyLookup(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "users.csv", "user_id,full_name\n1001,John Doe\n")

	um, err := LoadUserMap(path, "user_id", "full_name", false, true)
	if err != nil {
		t.Fatalf("LoadUserMap: %v", err)
	}

	id, canonical, found := um.Lookup("John Doey")
	if !found || id != "1001" || canonical != "John Doe" {
		t.Errorf("fuzzy Lookup = (%q, %q, %v)", id, canonical, found)
	}
}
