package dateengine

import (
	"testing"
	"time"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/config"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(config.Default().Date)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestExtractSingleDMYDate(t *testing.T) {
	e := newTestEngine(t)
	dates, remainder, _ := e.extractSingleSegment("01.06.2023 - John Doe.pdf")
	if len(dates) != 1 || dates[0] != "2023-06-01" {
		t.Fatalf("dates = %v, want [2023-06-01]", dates)
	}
	// Only the one separator right after the date goes with it; the rest of
	// the " - " run is left for CleanRemainder.
	if remainder != "- John Doe.pdf" {
		t.Fatalf("remainder = %q", remainder)
	}
}

func TestExtractRejectsInvalidCalendarDate(t *testing.T) {
	e := newTestEngine(t)
	dates, _, _ := e.extractSingleSegment("2023-02-30 report.pdf")
	if len(dates) != 0 {
		t.Fatalf("dates = %v, want none for an invalid calendar date", dates)
	}
}

func TestExtractRejectsNonLeapFeb29(t *testing.T) {
	e := newTestEngine(t)
	dates, _, _ := e.extractSingleSegment("2023-02-29 report.pdf")
	if len(dates) != 0 {
		t.Fatalf("dates = %v, want none: 2023 is not a leap year", dates)
	}
}

func TestExtractAcceptsLeapFeb29(t *testing.T) {
	e := newTestEngine(t)
	dates, _, _ := e.extractSingleSegment("2024-02-29 report.pdf")
	if len(dates) != 1 || dates[0] != "2024-02-29" {
		t.Fatalf("dates = %v, want [2024-02-29]", dates)
	}
}

func TestExtractTwoDigitYearResolvesTo20xx(t *testing.T) {
	e := newTestEngine(t)
	dates, _, _ := e.extractSingleSegment("15.03.23 meeting.pdf")
	if len(dates) != 1 || dates[0] != "2023-03-15" {
		t.Fatalf("dates = %v, want [2023-03-15]", dates)
	}
}

func TestExtractPrefixedDateIsPreservedNotPromoted(t *testing.T) {
	e := newTestEngine(t)
	dates, remainder, _ := e.extractSingleSegment("exp 2025-08-30 Renewal.pdf")
	if len(dates) != 0 {
		t.Fatalf("dates = %v, want none: prefixed date must not be promoted", dates)
	}
	if remainder != "exp 2025.08.30 Renewal.pdf" {
		t.Fatalf("remainder = %q, want the prefix kept and date normalized with the prefix format", remainder)
	}
}

func TestExtractRangeIsProtectedAsOneUnit(t *testing.T) {
	e := newTestEngine(t)
	dates, remainder, protected := e.extractSingleSegment("Contracts 2024-07-01 - 2025-06-30 agreement.pdf")
	if len(dates) != 0 {
		t.Fatalf("dates = %v, want none: a range must not be promoted to the date slot", dates)
	}
	want := "Contracts 2024-07-01 - 2025-06-30 agreement.pdf"
	if remainder != want {
		t.Fatalf("remainder = %q, want %q", remainder, want)
	}
	if len(protected) != 1 {
		t.Fatalf("protected = %v, want exactly one span covering the range", protected)
	}
}

func TestExtractFromPathAccumulatesInOrder(t *testing.T) {
	e := newTestEngine(t)
	dates, _, segments := ExtractFromPath(e, "2023-01-01/John Doe/01.06.2023 - report.pdf")
	if len(dates) != 2 {
		t.Fatalf("dates = %v, want two (foldername then filename)", dates)
	}
	if dates[0] != "2023-01-01" {
		t.Fatalf("dates[0] = %q, want the folder segment's date first", dates[0])
	}
	if dates[1] != "2023-06-01" {
		t.Fatalf("dates[1] = %q, want the filename segment's date second", dates[1])
	}
	if len(segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(segments))
	}
	if FirstDate(dates) != "2023-01-01" {
		t.Fatalf("FirstDate = %q, want the earliest-segment date", FirstDate(dates))
	}
}

type fakeStatSource struct {
	modTime, birthTime time.Time
	modErr, birthErr   error
}

func (f fakeStatSource) ModTime(string) (time.Time, error)   { return f.modTime, f.modErr }
func (f fakeStatSource) BirthTime(string) (time.Time, error) { return f.birthTime, f.birthErr }

func TestFallbackUsesFirstSuccessfulSourceInPriorityOrder(t *testing.T) {
	cfg := config.Default().Date
	cfg.DatePriorityOrder = []string{"filename", "foldername", "modified", "created"}
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	stat := fakeStatSource{modTime: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}
	got := e.Fallback("/some/path", stat)
	if got != "2024-03-15" {
		t.Fatalf("Fallback = %q, want 2024-03-15", got)
	}
}

func TestFallbackReturnsEmptyWhenNoSourceUsable(t *testing.T) {
	cfg := config.Default().Date
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	stat := fakeStatSource{modErr: errNotFound{}, birthErr: errNotFound{}}
	got := e.Fallback("/missing", stat)
	if got != "" {
		t.Fatalf("Fallback = %q, want empty on stat failure", got)
	}
}

type errNotFound struct{}

func (errNotFound) Error() string { return "not found" }
