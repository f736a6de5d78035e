// Package caseconv applies spec.md §3's Global.case_normalization policy
// (titlecase, lowercase, uppercase, asis) to component text.
package caseconv

import "strings"

// Apply renders s according to policy. An unrecognized policy is treated
// as "asis" (config validation rejects unknown policies before this is
// ever reached in practice).
func Apply(policy, s string) string {
	switch policy {
	case "lowercase":
		return strings.ToLower(s)
	case "uppercase":
		return strings.ToUpper(s)
	case "titlecase":
		return titleCase(s)
	default:
		return s
	}
}

// titleCase upper-cases the first letter of each whitespace-delimited word
// and lowercases the rest, matching the "Temp Person" / "John Doe" shape
// spec.md's worked examples expect.
func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(strings.ToLower(f))
		if len(r) > 0 {
			r[0] = toUpperRune(r[0])
		}
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}

func toUpperRune(r rune) rune {
	return []rune(strings.ToUpper(string(r)))[0]
}
