package dateengine

import "strings"

// SegmentResult is one path segment's extraction outcome, keeping the
// protected spans local to that segment's own remainder text.
type SegmentResult struct {
	Original  string
	Dates     []string
	Remainder string
	Protected []Span
}

// ExtractFromPath runs extractSingleSegment independently over each
// `/`-delimited path segment, then the filename, accumulating dates in
// path-then-filename order (spec.md §4.2 "Path-aware driver": earlier
// segments are processed before the filename, and a date found in a parent
// folder name still counts as "the" extracted date if the filename itself
// has none). The full rewritten path (segments rejoined with "/") and the
// per-segment results are both returned so callers can route the filename
// remainder into later passes while keeping folder remainders for
// provenance/logging only.
func ExtractFromPath(e *Engine, path string) (dates []string, rewrittenPath string, segments []SegmentResult) {
	parts := strings.Split(path, "/")
	rewritten := make([]string, len(parts))

	for i, part := range parts {
		d, remainder, protected := e.extractSingleSegment(part)
		segments = append(segments, SegmentResult{
			Original:  part,
			Dates:     d,
			Remainder: remainder,
			Protected: protected,
		})
		dates = append(dates, d...)
		rewritten[i] = remainder
	}

	return dates, strings.Join(rewritten, "/"), segments
}

// FirstDate returns the first extracted date across the whole path, or ""
// if none were found. spec.md §9 Open Question 2: the first date found in
// path-then-filename order wins the output `date` slot; later dates are
// dropped from the remainder (they were already removed by
// extractSingleSegment) and not reported in the assembled filename.
func FirstDate(dates []string) string {
	if len(dates) == 0 {
		return ""
	}
	return dates[0]
}
