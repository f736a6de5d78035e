package nameengine

import (
	"regexp"
	"strings"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/config"
)

// Engine matches a target person name against a remainder string using the
// configured pass order and fuzzy substitution table (spec.md §4.3).
type Engine struct {
	extractionOrder []string
	fuzzySubs       map[string][]string
	sepInput        []string
}

// New builds a name engine from Name.* and Global.separators.input.
func New(nameCfg config.NameConfig, sepInput []string) *Engine {
	return &Engine{
		extractionOrder: nameCfg.ExtractionOrder,
		fuzzySubs:       nameCfg.FuzzySubstitutions,
		sepInput:        sepInput,
	}
}

// Result is the output contract of §4.3: matched surface forms in order of
// appearance, and the reduced remainder.
type Result struct {
	Matches   []string
	Remainder string
}

// Run matches target (already split on whitespace into parts) against
// remainder, running each configured pass in order and removing matched
// spans before the next pass begins. Every pass removes all occurrences it
// finds, in either mode. pathAware treats "/" as an additional separator
// and boundary character (§4.3 "Path-aware variant").
func (e *Engine) Run(target, remainder string, pathAware bool) Result {
	parts := splitParts(target)
	if len(parts) == 0 {
		return Result{Matches: nil, Remainder: remainder}
	}

	sc := sepClass(e.sepInput, pathAware)
	var allMatches []string

	for _, pass := range e.extractionOrder {
		var matches []string
		switch pass {
		case "shorthand":
			matches, remainder = e.shorthandPass(parts, remainder, sc)
		case "initials":
			matches, remainder = e.initialsPass(parts, remainder, sc)
		case "name_components":
			matches, remainder = e.componentsPass(parts, remainder, sc)
		}
		allMatches = append(allMatches, matches...)
	}

	return Result{Matches: allMatches, Remainder: remainder}
}

func splitParts(target string) []string {
	fields := strings.Fields(target)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return parts
}

// namePattern pairs a compiled regex with the index of the capturing group
// holding the actual matched name text (boundary separators are matched
// but not captured, so removing only the captured span leaves them intact,
// satisfying spec.md §4.3 "removing a name token leaves the separator that
// preceded it intact").
type namePattern struct {
	re         *regexp.Regexp
	groupIndex int
}

// maxNameIterations bounds the shorthand/initials removal loop (spec.md §5
// "a hard upper bound on iterations is required ... ≤ 32"). Exceeding it
// aborts the pass with whatever matches were found so far.
const maxNameIterations = 32

// runToExhaustion repeatedly finds the earliest-starting match across all
// given patterns and removes its captured span, until none match (spec.md
// §4.3 "Passes find all occurrences before moving to the next pass").
func runToExhaustion(patterns []namePattern, remainder string) ([]string, string) {
	var matches []string
	for i := 0; i < maxNameIterations; i++ {
		start, end, found := earliestCapturedMatch(patterns, remainder)
		if !found {
			break
		}
		matches = append(matches, remainder[start:end])
		remainder = remainder[:start] + remainder[end:]
	}
	return matches, remainder
}

func earliestCapturedMatch(patterns []namePattern, remainder string) (start, end int, found bool) {
	bestStart := -1
	for _, p := range patterns {
		loc := p.re.FindStringSubmatchIndex(remainder)
		if loc == nil {
			continue
		}
		gi := p.groupIndex * 2
		if gi+1 >= len(loc) || loc[gi] < 0 {
			continue
		}
		s, e := loc[gi], loc[gi+1]
		if bestStart == -1 || s < bestStart {
			bestStart = s
			start, end = s, e
			found = true
		}
	}
	return start, end, found
}

func mustCompile(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + pattern)
}

const boundaryStart = `(?:^|%s)`
const boundaryEnd = `(?:$|%s)`
