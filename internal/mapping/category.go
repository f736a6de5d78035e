package mapping

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/logger"
)

// categoryEntry preserves CSV row order for deterministic substring-match
// precedence (spec.md §9 "Category 'partial match' order is CSV-row order").
type categoryEntry struct {
	normalizedName string
	name           string
	id             string
}

// CategoryMap is the category_id <-> category_name mapping table, with a
// normalized-name index for exact and substring lookup.
type CategoryMap struct {
	entries  []categoryEntry
	byExact  map[string]categoryEntry
	byID     map[string]string
}

var categoryNonAlnum = regexp.MustCompile(`[^a-z0-9 ]`)
var categoryWhitespace = regexp.MustCompile(`\s+`)

// NormalizeCategoryCandidate normalizes a directory-segment candidate or a
// mapping-file category name the way spec.md §4.4 specifies: lowercase,
// replace "-_&" with space, strip non-alphanumeric (keep spaces), collapse
// whitespace.
func NormalizeCategoryCandidate(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '&':
			return ' '
		}
		return r
	}, s)
	s = categoryNonAlnum.ReplaceAllString(s, "")
	s = categoryWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// LoadCategoryMap reads a category mapping CSV from path. A missing file
// produces a logged warning and an empty catalog (spec.md §4.4 failure
// semantics), never a fatal error.
func LoadCategoryMap(path, idColumn, nameColumn string, createIfMissing bool) (*CategoryMap, error) {
	cm := &CategoryMap{byExact: map[string]categoryEntry{}, byID: map[string]string{}}

	rows, header, err := readCSV(path)
	if err != nil {
		logger.Warn("category mapping file not found or unreadable; using empty catalog",
			logger.String("path", path), logger.Err(err))
		return cm, nil
	}

	idIdx, nameIdx, err := columnIndices(header, idColumn, nameColumn)
	if err != nil {
		return nil, fmt.Errorf("vcrename: category mapping %s: %w", path, err)
	}

	for _, row := range rows {
		id := strings.TrimSpace(row[idIdx])
		name := strings.TrimSpace(row[nameIdx])
		if id == "" || name == "" {
			continue
		}
		entry := categoryEntry{normalizedName: NormalizeCategoryCandidate(name), name: name, id: id}
		cm.entries = append(cm.entries, entry)
		cm.byExact[entry.normalizedName] = entry
		cm.byID[id] = name
	}
	return cm, nil
}

// Match looks up a raw directory-segment candidate against the category
// catalog, per spec.md §4.4 matching order: exact normalized equality, then
// substring either way in CSV order. Returns (categoryID, canonicalName, ok).
func (m *CategoryMap) Match(candidate string) (id, canonicalName string, ok bool) {
	norm := NormalizeCategoryCandidate(candidate)
	if norm == "" {
		return "", "", false
	}
	if entry, found := m.byExact[norm]; found {
		return entry.id, entry.name, true
	}
	for _, entry := range m.entries {
		if strings.Contains(norm, entry.normalizedName) || strings.Contains(entry.normalizedName, norm) {
			return entry.id, entry.name, true
		}
	}
	return "", "", false
}

// Validate reports whether categoryID exists in the loaded catalog.
func (m *CategoryMap) Validate(categoryID string) bool {
	_, ok := m.byID[categoryID]
	return ok
}

// All returns a copy of the id->name catalog.
func (m *CategoryMap) All() map[string]string {
	out := make(map[string]string, len(m.byID))
	for k, v := range m.byID {
		out[k] = v
	}
	return out
}

// Len reports the number of loaded categories.
func (m *CategoryMap) Len() int { return len(m.entries) }
