package mapping

import (
	"path/filepath"
	"testing"
)

func TestNormalizeCategoryCandidate(t *testing.T) {
	cases := map[string]string{
		"WHS":               "whs",
		"GP Reports":        "gp reports",
		"Support-Plans & Co": "support plans co",
		"  multi   space  ": "multi space",
	}
	for in, want := range cases {
		if got := NormalizeCategoryCandidate(in); got != want {
			t.Errorf("NormalizeCategoryCandidate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryMapExactAndSubstringMatch(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "cat.csv",
		"category_id,category_name\n1,WHS\n2,GP Reports\n3,Support Plans\n")

	cm, err := LoadCategoryMap(path, "category_id", "category_name", false)
	if err != nil {
		t.Fatalf("LoadCategoryMap: %v", err)
	}
	if cm.Len() != 3 {
		t.Fatalf("expected 3 categories, got %d", cm.Len())
	}

	id, name, ok := cm.Match("WHS")
	if !ok || id != "1" || name != "WHS" {
		t.Errorf("exact match = (%q, %q, %v)", id, name, ok)
	}

	id, name, ok = cm.Match("Incidents")
	if ok {
		t.Errorf("expected no match for Incidents, got (%q, %q)", id, name)
	}

	id, _, ok = cm.Match("GP Reports 2024")
	if !ok || id != "2" {
		t.Errorf("expected substring match on GP Reports, got (%q, %v)", id, ok)
	}

	if !cm.Validate("1") {
		t.Error("expected category id 1 to validate")
	}
	if cm.Validate("999") {
		t.Error("expected category id 999 to be invalid")
	}
}

func TestCategoryMapMissingFileIsEmptyNotFatal(t *testing.T) {
	cm, err := LoadCategoryMap(filepath.Join(t.TempDir(), "absent.csv"), "category_id", "category_name", false)
	if err != nil {
		t.Fatalf("expected no error for missing category mapping, got %v", err)
	}
	if cm.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d", cm.Len())
	}
	if _, _, ok := cm.Match("anything"); ok {
		t.Error("expected no match against empty catalog")
	}
}
