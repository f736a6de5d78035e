// Package report renders a human-readable per-file summary table for the
// crawler's RunSummary (spec.md §6 "Log/console: human-readable per-file
// lines"), column-aligned with go-runewidth the way the teacher's
// pkg/ascii box-drawing helpers measure display width rather than byte or
// rune count, so names containing wide or combining characters still line
// up in a terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/crawler"
)

// columns is the fixed header set for the summary table.
var columns = []string{"ORIGINAL", "CANONICAL", "NEW FILENAME", "OUTCOME"}

// Table renders summary.Results as an aligned, human-readable table
// followed by a totals line, for printing to stdout/stderr.
func Table(summary *crawler.RunSummary) string {
	copied, moved, skipped, failed := summary.Counts()

	rows := make([][4]string, 0, len(summary.Results))
	for _, r := range summary.Results {
		reason := r.Reason
		outcome := r.Outcome.String()
		if reason != "" {
			outcome = outcome + " (" + reason + ")"
		}
		rows = append(rows, [4]string{r.OriginalPath, r.CanonicalName, r.NewFilename, outcome})
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "run %s  root=%s  out=%s  duration=%s\n",
		summary.ID, summary.Root, summary.OutputRoot, summary.Duration)

	writeRow := func(cells []string) {
		for i, cell := range cells {
			pad := widths[i] - runewidth.StringWidth(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
			if i != len(cells)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	writeRow(columns)
	for _, row := range rows {
		writeRow(row[:])
	}

	fmt.Fprintf(&b, "\ntotal=%d copied=%d moved=%d skipped=%d failed=%d\n",
		len(summary.Results), copied, moved, skipped, failed)

	return b.String()
}
