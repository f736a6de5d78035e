package crawler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/dateengine"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/pipeline"
	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/logger"
)

// RunOptions controls one crawl/materialize pass (spec.md §6 CLI surface).
type RunOptions struct {
	Duplicate             bool // --duplicate: copy instead of rename/move
	ExcludeManagementFlag bool // --exclude-management-flag
}

// RunSummary is the per-run report the CLI prints at completion (spec.md
// §4.7 "Collect a per-file result record", §7 "summarized at completion").
type RunSummary struct {
	ID         string
	Root       string
	OutputRoot string
	Started    time.Time
	Duration   time.Duration
	Results    []FileResult
}

// Counts tallies outcomes for a human-readable summary line.
func (s *RunSummary) Counts() (copied, moved, skipped, failed int) {
	for _, r := range s.Results {
		switch r.Outcome {
		case Copied:
			copied++
		case Moved:
			moved++
		case Skipped:
			skipped++
		case Failed:
			failed++
		}
	}
	return
}

// Run walks root, skips excluded files, invokes the pipeline for every
// remaining regular file, and materializes each result into
// <outputRoot>/<canonical_name>/<new_filename> (spec.md §4.7, §6 "Output
// directory layout"). Per-file errors never abort the run; they are
// recorded on that file's FileResult and the walk continues, matching
// spec.md §7's "only config and top-level path errors terminate the run".
func Run(root, outputRoot string, p *pipeline.Pipeline, walkOpts WalkOptions, runOpts RunOptions, stat dateengine.StatSource) (*RunSummary, error) {
	files, err := WalkFiles(root, walkOpts)
	if err != nil {
		return nil, fmt.Errorf("vcrename: walking %s: %w", root, err)
	}
	return RunFiles(files, root, outputRoot, p, runOpts, stat)
}

// RunFiles runs the same per-file pipeline-invoke-and-materialize loop as
// Run, but over a caller-supplied list of root-relative file paths instead
// of walking root itself. This lets callers (e.g. the CLI's
// --person-filter) narrow the file set between discovery and processing.
func RunFiles(files []string, root, outputRoot string, p *pipeline.Pipeline, runOpts RunOptions, stat dateengine.StatSource) (*RunSummary, error) {
	started := time.Now()

	summary := &RunSummary{
		ID:         uuid.NewString(),
		Root:       root,
		OutputRoot: outputRoot,
	}

	for _, rel := range files {
		absIn := filepath.Join(root, filepath.FromSlash(rel))
		comps, filename := p.Run(rel, absIn, stat, runOpts.ExcludeManagementFlag)

		destDir := filepath.Join(outputRoot, comps.CanonicalName)
		destPath := filepath.Join(destDir, filename)

		result := FileResult{
			OriginalPath:  rel,
			CanonicalName: comps.CanonicalName,
			NewFilename:   filename,
		}

		if err := materialize(absIn, destDir, destPath, runOpts.Duplicate); err != nil {
			result.Outcome = Failed
			result.Reason = err.Error()
			logger.Error("materialize failed", logger.String("run", summary.ID), logger.String("path", rel), logger.Err(err))
		} else {
			if runOpts.Duplicate {
				result.Outcome = Copied
			} else {
				result.Outcome = Moved
			}
			logger.Info("processed file", logger.String("run", summary.ID), logger.String("from", rel), logger.String("to", destPath))
		}

		summary.Results = append(summary.Results, result)
	}

	summary.Duration = time.Since(started)
	return summary, nil
}

// materialize copies or moves src to destPath (creating destDir as needed),
// preserving the source's modification time. A timestamp restoration
// failure is logged but non-fatal (spec.md §4.7).
func materialize(src, destDir, destPath string, duplicate bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	if duplicate {
		if err := copyFile(src, destPath); err != nil {
			return err
		}
	} else {
		if err := os.Rename(src, destPath); err != nil {
			// Cross-device rename: fall back to copy + remove.
			if copyErr := copyFile(src, destPath); copyErr != nil {
				return fmt.Errorf("rename %s: %w", src, err)
			}
			if rmErr := os.Remove(src); rmErr != nil {
				logger.Warn("removing source after copy fallback failed", logger.String("path", src), logger.Err(rmErr))
			}
		}
	}

	if err := os.Chtimes(destPath, info.ModTime(), info.ModTime()); err != nil {
		logger.Warn("restoring timestamps failed", logger.String("path", destPath), logger.Err(err))
	}
	return nil
}

// copyFile duplicates src to destPath atomically via renameio (write to a
// temp file in the same directory, then atomic rename), the same library
// and pattern the pack's aretext editor uses for crash-safe saves.
func copyFile(src, destPath string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	pf, err := renameio.NewPendingFile(destPath, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("renameio.NewPendingFile %s: %w", destPath, err)
	}
	defer pf.Cleanup()

	if _, err := io.Copy(pf, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return pf.CloseAtomicallyReplace()
}
