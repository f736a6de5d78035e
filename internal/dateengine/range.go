package dateengine

import "strings"

// protectRanges finds `<date><sep><date>` pairs joined by one of
// Date.exclude_ranges_separator_strings (or a run of characters from
// Date.exclude_ranges_separators), rewrites the pair to
// `<dateA><exclude_ranges_normalized_separator><dateB>` formatted with
// Date.normalized_ranges_format, and protects the rewritten span so no
// later pass (single-date extraction, separator cleanup, or a later
// iteration of this same pass) touches it (spec.md §4.2 "Range
// protection"). No-op when Date.exclude_ranges is false.
func (e *Engine) protectRanges(text string) (string, []Span) {
	if !e.cfg.ExcludeRanges {
		return text, nil
	}

	var protected []Span
	remainder := text

	for {
		wholeStart, wholeEnd, replacement, ok := e.findNextRange(remainder, protected)
		if !ok {
			break
		}
		remainder = remainder[:wholeStart] + replacement + remainder[wholeEnd:]
		protected = shiftSpans(protected, wholeStart, wholeEnd)
		protected = append(protected, Span{Start: wholeStart, End: wholeStart + len(replacement)})
	}

	return remainder, protected
}

// findNextRange scans for the first (by start offset) unprotected
// `<date><sep><date>` occurrence across all configured patterns.
func (e *Engine) findNextRange(remainder string, protected []Span) (start, end int, replacement string, found bool) {
	bestStart := -1

	for _, p := range e.patterns {
		for searchFrom := 0; searchFrom <= len(remainder); {
			firstLoc := p.re.FindStringIndex(remainder[searchFrom:])
			if firstLoc == nil {
				break
			}
			firstStart := searchFrom + firstLoc[0]
			firstEnd := searchFrom + firstLoc[1]

			if spanOverlaps(protected, firstStart, firstEnd) {
				searchFrom = firstEnd
				continue
			}

			rest := remainder[firstEnd:]
			sepLen, sepOK := matchRangeSeparator(rest, e.cfg.ExcludeRangesSeparatorStrs, e.cfg.ExcludeRangesSeparators)
			if !sepOK {
				searchFrom = firstEnd
				continue
			}
			afterSep := rest[sepLen:]
			secondLoc := p.re.FindStringIndex(afterSep)
			if secondLoc == nil || secondLoc[0] != 0 {
				searchFrom = firstEnd
				continue
			}
			secondStart := firstEnd + sepLen
			secondEnd := secondStart + secondLoc[1]
			if spanOverlaps(protected, secondStart, secondEnd) {
				searchFrom = firstEnd
				continue
			}

			firstText := remainder[firstStart:firstEnd]
			secondText := remainder[secondStart:secondEnd]

			y1, m1, d1, ok1 := extractYMD(p.re, submatches(p.re, firstText))
			y2, m2, d2, ok2 := extractYMD(p.re, submatches(p.re, secondText))
			if !ok1 || !ok2 || !validCalendarDate(y1, m1, d1) || !validCalendarDate(y2, m2, d2) {
				searchFrom = firstEnd
				continue
			}

			if bestStart == -1 || firstStart < bestStart {
				bestStart = firstStart
				normA := strftimeToGo(e.cfg.NormalizedRangesFormat, y1, m1, d1)
				normB := strftimeToGo(e.cfg.NormalizedRangesFormat, y2, m2, d2)
				sepText := e.cfg.ExcludeRangesNormalizedSep
				if sepText == "" {
					sepText = " - "
				}
				start = firstStart
				end = secondEnd
				replacement = normA + sepText + normB
				found = true
			}
			break
		}
	}

	return start, end, replacement, found
}

// matchRangeSeparator checks whether text begins with one of the
// configured separator strings (longest match wins, so e.g. " to " beats a
// bare " ") or, failing that, a run of one or more characters drawn from
// separatorChars. Returns the matched byte length and whether a match
// occurred.
func matchRangeSeparator(text string, separatorStrings []string, separatorChars string) (int, bool) {
	best := -1
	for _, s := range separatorStrings {
		if s == "" {
			continue
		}
		if strings.HasPrefix(text, s) && len(s) > best {
			best = len(s)
		}
	}
	if best >= 0 {
		return best, true
	}

	if separatorChars == "" {
		return 0, false
	}
	n := 0
	for n < len(text) && strings.ContainsRune(separatorChars, rune(text[n])) {
		n++
	}
	if n == 0 {
		return 0, false
	}
	return n, true
}
