package dateengine

import (
	"strings"
)

// protectPrefixedDates finds dates immediately preceded (ignoring
// separators) by one of Date.excluded_date_by_prefix, rewrites the
// `prefix + separator + date` span to Date.normalized_prefix_format and
// protects it, so the prefix stays attached to its date and the date is
// excluded from the single-date extraction loop (spec.md §4.2 "Prefix
// exclusion"). Runs after protectRanges so prefixes found immediately
// before an already-protected range are left alone (a range is itself a
// complete, protected unit).
func (e *Engine) protectPrefixedDates(text string, protected []Span) (string, []Span) {
	if len(e.cfg.ExcludedDateByPrefix) == 0 {
		return text, protected
	}

	remainder := text
	for {
		prefixStart, dateEnd, replacement, ok := e.findNextPrefixedDate(remainder, protected)
		if !ok {
			break
		}
		remainder = remainder[:prefixStart] + replacement + remainder[dateEnd:]
		protected = shiftSpans(protected, prefixStart, dateEnd)
		protected = append(protected, Span{Start: prefixStart, End: prefixStart + len(replacement)})
	}
	return remainder, protected
}

// findNextPrefixedDate scans for the earliest unprotected date match that
// is immediately preceded by one of the configured prefix words.
func (e *Engine) findNextPrefixedDate(remainder string, protected []Span) (prefixStart, dateEnd int, replacement string, found bool) {
	bestStart := -1

	for _, p := range e.patterns {
		for searchFrom := 0; searchFrom <= len(remainder); {
			loc := p.re.FindStringIndex(remainder[searchFrom:])
			if loc == nil {
				break
			}
			absStart := searchFrom + loc[0]
			absEnd := searchFrom + loc[1]

			if spanOverlaps(protected, absStart, absEnd) {
				searchFrom = absEnd
				continue
			}
			pEnd, pStart, ok := findPrefixBefore(remainder, absStart, e.cfg.ExcludedDateByPrefix)
			if !ok {
				searchFrom = absEnd
				continue
			}
			matchText := remainder[absStart:absEnd]
			y, m, d, dok := extractYMD(p.re, submatches(p.re, matchText))
			if !dok || !validCalendarDate(y, m, d) {
				searchFrom = absEnd
				continue
			}

			if bestStart == -1 || pStart < bestStart {
				bestStart = pStart
				normalizedDate := strftimeToGo(e.cfg.NormalizedPrefixFormat, y, m, d)
				prefixText := remainder[pStart:pEnd]
				prefixStart = pStart
				dateEnd = absEnd
				replacement = prefixText + " " + normalizedDate
				found = true
			}
			break
		}
	}

	return prefixStart, dateEnd, replacement, found
}

// findPrefixBefore looks immediately before byte offset dateStart (skipping
// at most one run of separator bytes) for a case-insensitive match against
// one of prefixes. Returns the [start,end) byte range of the matched
// prefix word itself (not including the separator run).
func findPrefixBefore(text string, dateStart int, prefixes []string) (prefixEnd, prefixStart int, ok bool) {
	end := dateStart
	for end > 0 && isSeparatorByte(text[end-1]) {
		end--
	}
	wordEnd := end
	wordStart := wordEnd
	for wordStart > 0 && !isSeparatorByte(text[wordStart-1]) && text[wordStart-1] != '/' {
		wordStart--
	}
	if wordStart == wordEnd {
		return 0, 0, false
	}
	word := text[wordStart:wordEnd]
	for _, p := range prefixes {
		if strings.EqualFold(word, p) {
			return wordEnd, wordStart, true
		}
	}
	return 0, 0, false
}
