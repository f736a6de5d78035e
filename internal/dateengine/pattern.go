// Package dateengine implements spec.md §4.2: detecting, validating and
// normalizing single dates and ranges, excluding prefixed dates, and
// falling back to file metadata timestamps.
package dateengine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// compiledPattern is one allowed date format compiled into an anchored-ish
// regex with named year/month/day groups, paired with its strftime token
// so the engine can re-render a match with any configured output format.
type compiledPattern struct {
	token string
	re    *regexp.Regexp
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthAbbrev = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// monthNameAlternation matches either a full month name or its
// three-letter abbreviation, case-insensitively.
const monthNameAlternation = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

// compileFormats builds one compiled regex per configured strftime-style
// format string, in the given order (spec.md §4.2 "Formats are tried in
// list order; ordering decides DMY vs MDY ambiguity").
func compileFormats(formats []string) ([]compiledPattern, error) {
	out := make([]compiledPattern, 0, len(formats))
	for _, f := range formats {
		re, err := formatToRegex(f)
		if err != nil {
			return nil, fmt.Errorf("vcrename: invalid date format %q: %w", f, err)
		}
		out = append(out, compiledPattern{token: f, re: re})
	}
	return out, nil
}

// formatToRegex translates a small set of strftime-style tokens into a Go
// regexp with named groups "year", "month", "day". Supported tokens:
// %Y (4-digit year), %y (2-digit year), %m (1-2 digit month),
// %d (1-2 digit day), %B (full or abbreviated month name), literal
// separators (any of - . / space) and literal text passed through escaped.
func formatToRegex(format string) (*regexp.Regexp, error) {
	var b strings.Builder
	i := 0
	for i < len(format) {
		c := format[i]
		if c == '%' && i+1 < len(format) {
			switch format[i+1] {
			case 'Y':
				b.WriteString(`(?P<year>\d{4})`)
				i += 2
				continue
			case 'y':
				b.WriteString(`(?P<year>\d{2})`)
				i += 2
				continue
			case 'm':
				b.WriteString(`(?P<month>0[1-9]|1[0-2]|[1-9])`)
				i += 2
				continue
			case 'd':
				b.WriteString(`(?P<day>0[1-9]|[12]\d|3[01]|[1-9])`)
				i += 2
				continue
			case 'B':
				b.WriteString(`(?P<month>` + monthNameAlternation + `)`)
				i += 2
				continue
			}
		}
		if c == ' ' {
			b.WriteString(`[-.\s]+`)
			i++
			continue
		}
		if c == '.' || c == '-' || c == '/' {
			b.WriteString(`[-.\s/]`)
			i++
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(c)))
		i++
	}
	return regexp.Compile("(?i)" + b.String())
}

// monthNameToNumber converts a month name or abbreviation to 1-12.
func monthNameToNumber(name string) (int, bool) {
	lower := strings.ToLower(name)
	for i, m := range monthNames {
		if strings.ToLower(m) == lower {
			return i + 1, true
		}
	}
	for i, m := range monthAbbrev {
		if strings.ToLower(m) == lower {
			return i + 1, true
		}
	}
	return 0, false
}

// resolveYear expands a 2-digit year to the 2000-2099 window (spec.md §8
// boundary behavior).
func resolveYear(raw string) (int, error) {
	y, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if len(raw) == 2 {
		return 2000 + y, nil
	}
	return y, nil
}

// extractYMD pulls (year, month, day) out of a regexp match using the
// compiled pattern's named groups.
func extractYMD(re *regexp.Regexp, match []string) (year, month, day int, ok bool) {
	names := re.SubexpNames()
	var yearStr, monthStr, dayStr string
	for i, name := range names {
		if i >= len(match) {
			continue
		}
		switch name {
		case "year":
			yearStr = match[i]
		case "month":
			monthStr = match[i]
		case "day":
			dayStr = match[i]
		}
	}
	if yearStr == "" || monthStr == "" || dayStr == "" {
		return 0, 0, 0, false
	}
	y, err := resolveYear(yearStr)
	if err != nil {
		return 0, 0, 0, false
	}
	var m int
	if mi, err := strconv.Atoi(monthStr); err == nil {
		m = mi
	} else if mn, found := monthNameToNumber(monthStr); found {
		m = mn
	} else {
		return 0, 0, 0, false
	}
	d, err := strconv.Atoi(dayStr)
	if err != nil {
		return 0, 0, 0, false
	}
	return y, m, d, true
}
