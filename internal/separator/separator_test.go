package separator

import "testing"

func newTestEngine() *Engine {
	return New([]string{"_", "-", ".", " "}, " ")
}

func TestCleanRemainderBasic(t *testing.T) {
	e := newTestEngine()
	got := e.CleanRemainder("John Doe/WHS/2023/Incidents", nil)
	want := "John Doe WHS 2023 Incidents"
	if got != want {
		t.Errorf("CleanRemainder = %q, want %q", got, want)
	}
}

func TestCleanRemainderCollapsesRuns(t *testing.T) {
	e := newTestEngine()
	got := e.CleanRemainder("meeting___notes--final", nil)
	want := "meeting notes final"
	if got != want {
		t.Errorf("CleanRemainder = %q, want %q", got, want)
	}
}

func TestCleanRemainderTrimsEnds(t *testing.T) {
	e := newTestEngine()
	got := e.CleanRemainder("_-.leading and trailing._-", nil)
	want := "leading and trailing"
	if got != want {
		t.Errorf("CleanRemainder = %q, want %q", got, want)
	}
}

func TestCleanRemainderIdempotent(t *testing.T) {
	e := newTestEngine()
	once := e.CleanRemainder("John__Doe - - Report.pdf", nil)
	twice := e.CleanRemainder(once, nil)
	if once != twice {
		t.Errorf("CleanRemainder not idempotent: %q != %q", once, twice)
	}
}

func TestCleanRemainderProtectedSpanUntouched(t *testing.T) {
	e := newTestEngine()
	text := "Contracts/2024-07-01 - 2025-06-30 agreement"
	// Protect the date range span exactly.
	start := len("Contracts/")
	end := start + len("2024-07-01 - 2025-06-30")
	protected := []Span{{Start: start, End: end}}

	got := e.CleanRemainder(text, protected)
	want := "Contracts 2024-07-01 - 2025-06-30 agreement"
	if got != want {
		t.Errorf("CleanRemainder with protection = %q, want %q", got, want)
	}
}

func TestCleanRemainderPrecedenceOrder(t *testing.T) {
	// A run mixing several input separators (" - .") collapses to the one
	// configured normalized separator ("_"), whichever separators it holds.
	e := New([]string{"_", "-", ".", " "}, "_")
	got := e.CleanRemainder("a - .b", nil)
	if got != "a_b" {
		t.Errorf("CleanRemainder precedence = %q, want %q", got, "a_b")
	}
}
