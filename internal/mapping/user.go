// Package mapping loads the CSV mapping tables — user id to canonical name,
// and category id to category name — described in spec.md §3 "Mapping
// tables" and §6 "Mapping files (CSV, UTF-8, header row)".
package mapping

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/logger"
)

// UserMap is the user_id <-> canonical_name mapping table, with a
// case-insensitive reverse index for lookup by directory name.
type UserMap struct {
	byID        map[string]string
	byLowerName map[string]string
	fuzzy       bool
}

// LoadUserMap reads a user mapping CSV from path. idColumn/nameColumn name
// the header columns to use (spec.md §6 "columns ... header names
// configurable"). If the file is missing and createIfMissing is true, a
// default mapping file is seeded (spec.md §7 "Mapping absence"), mirroring
// original_source/core/utils/user_mapping.py:create_default_mapping.
func LoadUserMap(path, idColumn, nameColumn string, createIfMissing, fuzzyIndex bool) (*UserMap, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("vcrename: stat user mapping %s: %w", path, err)
		}
		if !createIfMissing {
			logger.Warn("user mapping file not found; proceeding with empty map", logger.String("path", path))
			return &UserMap{byID: map[string]string{}, byLowerName: map[string]string{}, fuzzy: fuzzyIndex}, nil
		}
		if err := seedDefaultUserMapping(path, idColumn, nameColumn); err != nil {
			return nil, err
		}
	}

	rows, header, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("vcrename: reading user mapping %s: %w", path, err)
	}

	idIdx, nameIdx, err := columnIndices(header, idColumn, nameColumn)
	if err != nil {
		return nil, fmt.Errorf("vcrename: user mapping %s: %w", path, err)
	}

	um := &UserMap{
		byID:        make(map[string]string, len(rows)),
		byLowerName: make(map[string]string, len(rows)),
		fuzzy:       fuzzyIndex,
	}
	for _, row := range rows {
		id := strings.TrimSpace(row[idIdx])
		name := strings.TrimSpace(row[nameIdx])
		if id == "" || name == "" {
			continue
		}
		um.byID[id] = name
		um.byLowerName[strings.ToLower(name)] = id
	}
	return um, nil
}

// Lookup resolves a stripped person-directory string to (userID,
// canonicalName, found). Matching is case-insensitive exact first, then an
// optional fuzzy substring/edit-distance pass when the fuzzy index is
// enabled (spec.md §3 "optional fuzzy (case-insensitive) substring index
// disabled by default").
func (m *UserMap) Lookup(name string) (id string, canonical string, found bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", "", false
	}
	if uid, ok := m.byLowerName[lower]; ok {
		return uid, m.byID[uid], true
	}
	if !m.fuzzy {
		return "", "", false
	}

	bestID, bestName, bestScore := "", "", -1
	for candidateLower, uid := range m.byLowerName {
		if strings.Contains(candidateLower, lower) || strings.Contains(lower, candidateLower) {
			score := len(candidateLower)
			if score > bestScore {
				bestScore, bestID, bestName = score, uid, m.byID[uid]
			}
			continue
		}
		dist := levenshtein.ComputeDistance(candidateLower, lower)
		threshold := len(candidateLower) / 4
		if threshold == 0 {
			threshold = 1
		}
		if dist <= threshold {
			score := len(candidateLower) - dist
			if score > bestScore {
				bestScore, bestID, bestName = score, uid, m.byID[uid]
			}
		}
	}
	if bestID == "" {
		return "", "", false
	}
	return bestID, bestName, true
}

// CanonicalByID returns the canonical name registered for a user id.
func (m *UserMap) CanonicalByID(id string) (string, bool) {
	name, ok := m.byID[id]
	return name, ok
}

// Len reports the number of loaded mappings.
func (m *UserMap) Len() int { return len(m.byID) }

// All returns a copy of the id->canonical_name catalog (SPEC_FULL.md
// "Supplemented features" #3, mirroring CategoryMap.All).
func (m *UserMap) All() map[string]string {
	out := make(map[string]string, len(m.byID))
	for k, v := range m.byID {
		out[k] = v
	}
	return out
}

func seedDefaultUserMapping(path, idColumn, nameColumn string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("vcrename: creating directory for default user mapping: %w", err)
	}
	f, err := os.Create(path) // #nosec G304 -- path comes from configuration, not user-controlled request
	if err != nil {
		return fmt.Errorf("vcrename: creating default user mapping %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{idColumn, nameColumn}); err != nil {
		return err
	}
	defaults := [][2]string{
		{"1001", "John Doe"},
		{"1002", "Jane Smith"},
		{"1003", "Bob Johnson"},
		{"1004", "Sarah Smith"},
		{"1005", "Michael Brown"},
	}
	for _, row := range defaults {
		if err := w.Write([]string{row[0], row[1]}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	logger.Info("seeded default user mapping file", logger.String("path", path))
	return nil
}

// readCSV reads a header row and the remaining rows from a CSV file.
func readCSV(path string) (rows [][]string, header []string, err error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err = r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("empty file, missing header row")
		}
		return nil, nil, err
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}

func columnIndices(header []string, idColumn, nameColumn string) (idIdx, nameIdx int, err error) {
	idIdx, nameIdx = -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case idColumn:
			idIdx = i
		case nameColumn:
			nameIdx = i
		}
	}
	if idIdx == -1 {
		return 0, 0, fmt.Errorf("missing id column %q", idColumn)
	}
	if nameIdx == -1 {
		return 0, 0, fmt.Errorf("missing name column %q", nameColumn)
	}
	return idIdx, nameIdx, nil
}
