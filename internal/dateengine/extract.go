package dateengine

import (
	"regexp"
	"strings"
	"time"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/config"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/separator"
)

// maxIterations bounds the single-date extraction loop so pathological
// input cannot spin forever (spec.md §5 "hard upper bound ... small
// constant (≤ 32)").
const maxIterations = 16

// Span aliases separator.Span so pipeline callers pass one protected-span
// type through every stage.
type Span = separator.Span

// Engine is the compiled, config-driven date extraction engine.
type Engine struct {
	cfg      config.DateConfig
	patterns []compiledPattern
}

// New compiles the configured allowed formats once for reuse across files.
func New(cfg config.DateConfig) (*Engine, error) {
	patterns, err := compileFormats(cfg.AllowedFormats)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, patterns: patterns}, nil
}

// strftimeToGo renders a resolved (year, month, day) using a small
// strftime-style output token (only %Y/%y/%m/%d are needed for the
// configured output formats).
func strftimeToGo(token string, year, month, day int) string {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	var b strings.Builder
	i := 0
	for i < len(token) {
		if token[i] == '%' && i+1 < len(token) {
			switch token[i+1] {
			case 'Y':
				b.WriteString(t.Format("2006"))
				i += 2
				continue
			case 'y':
				b.WriteString(t.Format("06"))
				i += 2
				continue
			case 'm':
				b.WriteString(t.Format("01"))
				i += 2
				continue
			case 'd':
				b.WriteString(t.Format("02"))
				i += 2
				continue
			case 'B':
				b.WriteString(t.Format("January"))
				i += 2
				continue
			}
		}
		b.WriteByte(token[i])
		i++
	}
	return b.String()
}

// validCalendarDate reports whether (year, month, day) is a real date,
// rejecting e.g. 2023-02-30 and non-leap Feb 29 (spec.md §8 boundary
// behaviors), using Go's normalizing time.Date and checking it didn't roll
// over into the next month.
func validCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return int(t.Month()) == month && t.Day() == day && t.Year() == year
}

// Result is the output contract of §4.2: ordered dates found, the
// rewritten remainder, and the protected spans later passes must respect.
type Result struct {
	Dates     []string
	Remainder string
	Protected []Span
}

// extractSingleSegment runs the single-date extraction loop (spec.md §4.2
// "Single date extraction") over one path segment, with range protection
// and prefix exclusion applied first. Returned span offsets are relative
// to the returned remainder, not to the segment text passed in.
func (e *Engine) extractSingleSegment(segment string) (dates []string, remainder string, protected []Span) {
	remainder = segment

	remainder, protected = e.protectRanges(remainder)
	remainder, protected = e.protectPrefixedDates(remainder, protected)

	for iter := 0; iter < maxIterations; iter++ {
		_, loc, pattern, found := e.findUnprotectedMatch(remainder, protected)
		if !found {
			break
		}
		matchText := remainder[loc[0]:loc[1]]
		sub := submatches(pattern.re, matchText)
		year, month, day, ok := extractYMD(pattern.re, sub)
		if !ok || !validCalendarDate(year, month, day) {
			// Mark processed with a zero-length removal: drop just the
			// matched span so the loop makes progress without altering
			// surrounding text semantics.
			remainder, protected = removeSpan(remainder, loc[0], loc[1], protected)
			continue
		}

		formatted := strftimeToGo(e.cfg.NormalizedFormat, year, month, day)
		dates = append(dates, formatted)

		remainder, protected = removeSpanPreservingSeparator(remainder, loc[0], loc[1], protected)
	}
	return dates, remainder, protected
}

// findUnprotectedMatch finds the earliest-starting match across all
// configured patterns whose span does not overlap any protected span. Among
// matches tied on start position, the pattern earlier in config order wins
// (spec.md §4.2 "Formats are tried in list order").
func (e *Engine) findUnprotectedMatch(remainder string, protected []Span) (start int, loc []int, pattern compiledPattern, found bool) {
	bestStart := -1
	for _, p := range e.patterns {
		for searchFrom := 0; searchFrom <= len(remainder); {
			m := p.re.FindStringSubmatchIndex(remainder[searchFrom:])
			if m == nil {
				break
			}
			absStart := searchFrom + m[0]
			absEnd := searchFrom + m[1]
			if spanOverlaps(protected, absStart, absEnd) {
				// Retry past this match; a later, unprotected occurrence of
				// the same pattern may still exist.
				if m[1] == m[0] {
					searchFrom = absEnd + 1
				} else {
					searchFrom = absEnd
				}
				continue
			}
			if bestStart == -1 || absStart < bestStart {
				bestStart = absStart
				loc = offsetIndices(m, searchFrom)
				pattern = p
				found = true
			}
			break
		}
	}
	return bestStart, loc, pattern, found
}

func offsetIndices(m []int, offset int) []int {
	out := make([]int, len(m))
	for i, v := range m {
		if v < 0 {
			out[i] = v
			continue
		}
		out[i] = v + offset
	}
	return out
}

func spanOverlaps(spans []Span, start, end int) bool {
	for _, s := range spans {
		if start < s.End && end > s.Start {
			return true
		}
	}
	return false
}

func submatches(re *regexp.Regexp, text string) []string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return m
}

// removeSpan deletes remainder[start:end] with no separator preservation,
// used for invalid-calendar-date spans (spec.md §4.2 "mark the span
// processed (zero-length replacement)"). Protected span offsets after end
// are shifted left by the removed length.
func removeSpan(remainder string, start, end int, protected []Span) (string, []Span) {
	out := remainder[:start] + remainder[end:]
	return out, shiftSpans(protected, start, end)
}

// removeSpanPreservingSeparator removes remainder[start:end] (a validated
// date) together with at most one separator character immediately before
// it and at most one immediately after it; any further separators of a run
// stay in place for CleanRemainder.
func removeSpanPreservingSeparator(remainder string, start, end int, protected []Span) (string, []Span) {
	newStart, newEnd := start, end
	if start > 0 && isSeparatorByte(remainder[start-1]) {
		newStart = start - 1
	}
	if end < len(remainder) && isSeparatorByte(remainder[end]) {
		newEnd = end + 1
	}
	out := remainder[:newStart] + remainder[newEnd:]
	return out, shiftSpans(protected, newStart, newEnd)
}

func isSeparatorByte(b byte) bool {
	switch b {
	case '-', '_', '.', ' ':
		return true
	}
	return false
}

// shiftSpans removes [start,end) from the coordinate space and shifts any
// span after end left by (end-start).
func shiftSpans(spans []Span, start, end int) []Span {
	removed := end - start
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		ns, ne := s.Start, s.End
		if ns >= end {
			ns -= removed
			ne -= removed
		} else if ns >= start {
			// Span started inside the removed region; this should not
			// happen for protections we construct (ranges/prefixes are
			// always found before single-date extraction touches them),
			// but guard by collapsing to the removal point.
			ns = start
			ne = start
		}
		if ne > ns {
			out = append(out, Span{Start: ns, End: ne})
		}
	}
	return out
}
