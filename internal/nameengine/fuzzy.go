// Package nameengine implements spec.md §4.3: matching a target person's
// name in a remainder string in several shapes (shorthand, initials, full
// components), tolerant of diacritics and common character substitutions.
package nameengine

import (
	"regexp"
	"strings"
)

// fuzzyPartRegex builds a case-insensitive regex fragment for one name
// part: each lowercase letter expands to a character class of itself plus
// its configured fuzzy substitutions (e.g. "o" -> "[o0ôöó]"); everything
// else is regex-escaped literally.
func fuzzyPartRegex(part string, subs map[string][]string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(part) {
		letter := string(r)
		if alts, ok := subs[letter]; ok {
			b.WriteString(charClass(append([]string{letter}, alts...)))
			continue
		}
		b.WriteString(regexp.QuoteMeta(letter))
	}
	return b.String()
}

// charClass builds a `[...]` regex character class from a set of
// (possibly multi-byte) candidate strings. regexp.QuoteMeta does not quote
// `-` or `^` (they are only special inside a class, not outside it), so
// each rune is escaped explicitly here to keep every candidate a literal
// member of the class rather than a range or negation.
func charClass(candidates []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, c := range candidates {
		for _, r := range c {
			switch r {
			case ']', '^', '-', '\\':
				b.WriteByte('\\')
				b.WriteRune(r)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// sepClass builds a `[...]` character class from the configured separator
// alphabet, optionally including `/` for path-aware matching (spec.md
// §4.3 "Path-aware variant": forward slashes are treated as separators).
func sepClass(input []string, includeSlash bool) string {
	chars := make([]string, 0, len(input)+1)
	chars = append(chars, input...)
	if includeSlash {
		chars = append(chars, "/")
	}
	return charClass(chars)
}
