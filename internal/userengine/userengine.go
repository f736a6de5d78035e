// Package userengine implements spec.md §4.5: resolving the raw person
// path segment to a user id and canonical name, honoring configured
// prefix/management-suffix stripping.
package userengine

import (
	"strings"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/caseconv"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/config"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/mapping"
)

// Result is the output contract of §4.5.
type Result struct {
	UserID        string
	CanonicalName string
	IsManagement  bool
	Stripped      string
}

// Engine resolves a raw first path segment to a user id / canonical name.
type Engine struct {
	userMap           *mapping.UserMap
	prefix            string
	managementSuffix  string
	caseNormalization string
}

// New builds a user engine from the loaded user map and UserMapping.*/
// Global.case_normalization config.
func New(userMap *mapping.UserMap, userCfg config.UserMappingConfig, caseNormalization string) *Engine {
	return &Engine{
		userMap:           userMap,
		prefix:            userCfg.Prefix,
		managementSuffix:  userCfg.ManagementSuffix,
		caseNormalization: caseNormalization,
	}
}

// Resolve strips UserMapping.prefix and UserMapping.management_suffix from
// rawSegment, looks the stripped form up in the user map, and derives the
// canonical name: the mapping's verbatim spelling if found, otherwise the
// stripped form with case_normalization applied (spec.md §4.5).
func (e *Engine) Resolve(rawSegment string) Result {
	stripped := rawSegment
	if e.prefix != "" {
		stripped = strings.TrimPrefix(stripped, e.prefix)
	}

	isManagement := false
	if e.managementSuffix != "" && strings.HasSuffix(stripped, e.managementSuffix) {
		isManagement = true
		stripped = strings.TrimSuffix(stripped, e.managementSuffix)
	}

	id, canonical, found := e.userMap.Lookup(stripped)
	if found {
		return Result{UserID: id, CanonicalName: canonical, IsManagement: isManagement, Stripped: stripped}
	}

	return Result{
		UserID:        "",
		CanonicalName: caseconv.Apply(e.caseNormalization, stripped),
		IsManagement:  isManagement,
		Stripped:      stripped,
	}
}
