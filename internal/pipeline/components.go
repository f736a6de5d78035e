// Package pipeline implements spec.md §4.6: the per-file stage machine
// that turns a raw relative path into a normalized output filename.
package pipeline

import "github.com/anthonythorne/visualcare-file-migration-renamer/internal/separator"

// Components is the per-file record threaded through every stage (spec.md
// §4.6, §5 "Per-file Components is owned exclusively by the pipeline
// invocation").
type Components struct {
	RawPath       string
	Extension     string
	UserID        string
	CanonicalName string
	IsManagement  bool
	CategoryID    string
	CategoryName  string
	CategoryFound bool
	Date          string
	Remainder     string
	Protected     []separator.Span
	NameMatches   []string
}
