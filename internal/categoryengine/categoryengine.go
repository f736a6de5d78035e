// Package categoryengine implements spec.md §4.4: matching the first
// remaining path segment after the person against the category mapping.
package categoryengine

import (
	"strings"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/config"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/mapping"
)

// Status reports which of the three §4.4 outcomes a Match produced.
type Status int

const (
	// NoCategory is returned when the residual path has no segment to
	// inspect (spec.md §4.4 "On empty path, emit no_category").
	NoCategory Status = iota
	// Matched is returned when the candidate resolved against the catalog.
	Matched
	// Unmapped is returned when a non-empty candidate did not resolve; the
	// candidate stays in the remainder unchanged.
	Unmapped
)

// Result is the output contract of §4.4.
type Result struct {
	Status        Status
	CategoryID    string
	Candidate     string
	CanonicalName string
	Remainder     string
}

// Engine matches the first remaining path segment against a category
// catalog loaded from the mapping CSV.
type Engine struct {
	catalog        *mapping.CategoryMap
	firstLevelOnly bool
}

// New builds a category engine from the loaded catalog and Category.* config.
func New(catalog *mapping.CategoryMap, cfg config.CategoryConfig) *Engine {
	return &Engine{catalog: catalog, firstLevelOnly: cfg.FirstLevelOnly}
}

// Match inspects residualPath (the path remaining after the person segment
// was consumed, "/"-delimited) and, when first_level_only is set, only its
// first segment. On a match it strips that segment from the remainder; on
// no match the candidate is left in place (spec.md §4.4).
func (e *Engine) Match(residualPath string) Result {
	trimmed := strings.Trim(residualPath, "/")
	if trimmed == "" {
		return Result{Status: NoCategory, Remainder: residualPath}
	}

	segments := strings.Split(trimmed, "/")
	candidate := segments[0]
	if !e.firstLevelOnly {
		// Non-first-level-only mode is not reachable under the default
		// config, but fall back to scanning the whole path as one
		// candidate if ever disabled, rather than guessing which segment.
		candidate = trimmed
	}

	id, canonical, ok := e.catalog.Match(candidate)
	if !ok {
		return Result{Status: Unmapped, Candidate: candidate, Remainder: residualPath}
	}

	remainder := strings.Join(segments[1:], "/")
	return Result{
		Status:        Matched,
		CategoryID:    id,
		Candidate:     candidate,
		CanonicalName: canonical,
		Remainder:     remainder,
	}
}
