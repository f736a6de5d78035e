package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/crawler"
)

func TestTableAlignsColumnsAndTotals(t *testing.T) {
	summary := &crawler.RunSummary{
		ID:         "abc-123",
		Root:       "/in",
		OutputRoot: "/out",
		Duration:   2 * time.Second,
		Results: []crawler.FileResult{
			{OriginalPath: "John Doe/report.pdf", CanonicalName: "John Doe", NewFilename: "1001_John Doe_report.pdf", Outcome: crawler.Moved},
			{OriginalPath: "bad/broken.pdf", CanonicalName: "", NewFilename: "", Outcome: crawler.Failed, Reason: "stat error"},
		},
	}

	out := Table(summary)

	require.Contains(t, out, "ORIGINAL")
	require.Contains(t, out, "John Doe/report.pdf")
	require.Contains(t, out, "failed (stat error)")
	require.Contains(t, out, "total=2 copied=0 moved=1 skipped=0 failed=1")
}
