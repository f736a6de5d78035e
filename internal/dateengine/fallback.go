package dateengine

import (
	"os"
	"time"
)

// StatSource abstracts filesystem timestamp lookup so tests can fake it
// without touching a real file (spec.md §6 names file metadata I/O as an
// external collaborator reached through a narrow interface).
type StatSource interface {
	ModTime(path string) (time.Time, error)
	BirthTime(path string) (time.Time, error)
}

// OSStatSource reads real file timestamps via os.Stat. Birth time (creation
// time) is not portably exposed by the standard library across platforms,
// so BirthTime always returns the modification time; `created` therefore
// yields the same date as `modified`.
type OSStatSource struct{}

func (OSStatSource) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func (OSStatSource) BirthTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Fallback consults date_priority_order's "modified"/"created" entries in
// order, returning the first timestamp after the Unix epoch formatted with
// NormalizedFormat (spec.md §4.2 "Metadata fallback"). A stat failure for
// one source is non-fatal; the next source in priority order is tried.
// Returns "" if no source yields a usable timestamp.
func (e *Engine) Fallback(path string, stat StatSource) string {
	for _, source := range e.cfg.DatePriorityOrder {
		var t time.Time
		var err error
		switch source {
		case "modified":
			t, err = stat.ModTime(path)
		case "created":
			t, err = stat.BirthTime(path)
		default:
			continue
		}
		if err != nil || !t.After(time.Unix(0, 0)) {
			continue
		}
		return strftimeToGo(e.cfg.NormalizedFormat, t.Year(), int(t.Month()), t.Day())
	}
	return ""
}
