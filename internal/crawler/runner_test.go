package crawler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/config"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/mapping"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/pipeline"
)

type fakeStat struct{ t time.Time }

func (f fakeStat) ModTime(string) (time.Time, error)   { return f.t, nil }
func (f fakeStat) BirthTime(string) (time.Time, error) { return f.t, nil }

func TestRunMovesFileIntoCanonicalNameSubdirectory(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(root, "John Doe", "WHS", "2023", "Incidents", "01.06.2023 - John Doe.pdf"))

	mapDir := t.TempDir()
	userCSV := filepath.Join(mapDir, "user_mapping.csv")
	if err := os.WriteFile(userCSV, []byte("id,name\n1001,John Doe\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	userMap, err := mapping.LoadUserMap(userCSV, "id", "name", false, false)
	if err != nil {
		t.Fatalf("LoadUserMap: %v", err)
	}

	categoryCSV := filepath.Join(mapDir, "category_mapping.csv")
	if err := os.WriteFile(categoryCSV, []byte("id,name\n1,WHS\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	categoryMap, err := mapping.LoadCategoryMap(categoryCSV, "id", "name", false)
	if err != nil {
		t.Fatalf("LoadCategoryMap: %v", err)
	}

	cfg := config.Default()
	p, err := pipeline.New(&cfg, userMap, categoryMap)
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}

	summary, err := Run(root, out, p, WalkOptions{FileExclusions: cfg.Global.FileExclusions}, RunOptions{}, fakeStat{t: time.Now()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(summary.Results))
	}
	r := summary.Results[0]
	if r.Outcome != Moved {
		t.Fatalf("Outcome = %v, want Moved (reason: %s)", r.Outcome, r.Reason)
	}

	destPath := filepath.Join(out, r.CanonicalName, r.NewFilename)
	if _, err := os.Stat(destPath); err != nil {
		t.Fatalf("output file not found at %s: %v", destPath, err)
	}
	if _, err := os.Stat(filepath.Join(root, "John Doe", "WHS", "2023", "Incidents", "01.06.2023 - John Doe.pdf")); !os.IsNotExist(err) {
		t.Fatalf("source file still present after move")
	}
}

func TestRunDuplicateCopiesWithoutRemovingSource(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	src := filepath.Join(root, "Temp Person", "notes.txt")
	writeFile(t, src)

	userMap, err := mapping.LoadUserMap(filepath.Join(t.TempDir(), "missing.csv"), "id", "name", true, false)
	if err != nil {
		t.Fatalf("LoadUserMap: %v", err)
	}
	categoryMap, err := mapping.LoadCategoryMap(filepath.Join(t.TempDir(), "missing.csv"), "id", "name", true)
	if err != nil {
		t.Fatalf("LoadCategoryMap: %v", err)
	}

	cfg := config.Default()
	p, err := pipeline.New(&cfg, userMap, categoryMap)
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}

	summary, err := Run(root, out, p, WalkOptions{}, RunOptions{Duplicate: true}, fakeStat{t: time.Now()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Results) != 1 || summary.Results[0].Outcome != Copied {
		t.Fatalf("Results = %+v, want one Copied entry", summary.Results)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("source file should still exist after --duplicate copy: %v", err)
	}
}
