package nameengine

import (
	"sort"
	"strings"
)

type span struct{ start, end int }

// componentsPass implements spec.md §4.3 pass 3: for each target part,
// finds every bounded occurrence (anchored by separators or string ends)
// plus every in-word occurrence not already covered by a bounded one.
// Each matched occurrence is recorded once; duplicates across repeated
// occurrences of the same part are preserved.
func (e *Engine) componentsPass(parts []string, remainder, sepCls string) ([]string, string) {
	var allSpans []span

	for _, part := range parts {
		fuzzy := fuzzyPartRegex(part, e.fuzzySubs)
		boundedRe := mustCompile(anchor(sepCls, fuzzy))
		bareRe := mustCompile(fuzzy)

		boundedSpans := findAllCapturedSpans(boundedRe, 1, remainder)
		bareSpans := findAllSpans(bareRe, remainder)

		allSpans = append(allSpans, boundedSpans...)
		for _, s := range bareSpans {
			if overlapsAny(boundedSpans, s) || overlapsAny(allSpans, s) {
				continue
			}
			allSpans = append(allSpans, s)
		}
	}

	sort.Slice(allSpans, func(i, j int) bool { return allSpans[i].start < allSpans[j].start })

	var matches []string
	var b strings.Builder
	last := 0
	for _, s := range allSpans {
		if s.start < last {
			// Overlaps a span already consumed by an earlier (lower-index)
			// target part; leave the already-claimed text alone.
			continue
		}
		b.WriteString(remainder[last:s.start])
		matches = append(matches, remainder[s.start:s.end])
		last = s.end
	}
	b.WriteString(remainder[last:])
	return matches, b.String()
}

func findAllCapturedSpans(re interface {
	FindAllStringSubmatchIndex(string, int) [][]int
}, groupIndex int, text string) []span {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	spans := make([]span, 0, len(locs))
	gi := groupIndex * 2
	for _, loc := range locs {
		if gi+1 >= len(loc) || loc[gi] < 0 {
			continue
		}
		spans = append(spans, span{start: loc[gi], end: loc[gi+1]})
	}
	return spans
}

func findAllSpans(re interface {
	FindAllStringIndex(string, int) [][]int
}, text string) []span {
	locs := re.FindAllStringIndex(text, -1)
	spans := make([]span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, span{start: loc[0], end: loc[1]})
	}
	return spans
}

func overlapsAny(spans []span, s span) bool {
	for _, o := range spans {
		if s.start < o.end && s.end > o.start {
			return true
		}
	}
	return false
}
