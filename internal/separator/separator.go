// Package separator implements the separator engine of spec.md §4.1:
// canonicalizing separator characters and cleaning the shrinking remainder
// string, without disturbing substrings that earlier passes marked
// protected (normalized date ranges, prefix-bound dates).
package separator

// Span is a byte range [Start, End) in a remainder string that later
// passes must not rewrite (spec.md GLOSSARY "Protected span").
type Span struct {
	Start, End int
}

func contains(spans []Span, i int) bool {
	for _, s := range spans {
		if i >= s.Start && i < s.End {
			return true
		}
	}
	return false
}

// Engine canonicalizes separators according to a configured input alphabet
// and a single normalized replacement character.
type Engine struct {
	input      []rune
	normalized rune
}

// New builds a separator engine from Global.separators.input (a list of
// single characters) and Global.separators.normalized (a single character).
func New(input []string, normalized string) *Engine {
	runes := make([]rune, 0, len(input))
	for _, s := range input {
		for _, r := range s {
			runes = append(runes, r)
			break
		}
	}
	norm := ' '
	for _, r := range normalized {
		norm = r
		break
	}
	return &Engine{input: runes, normalized: norm}
}

func (e *Engine) isSeparator(r rune) bool {
	if r == e.normalized {
		return true
	}
	for _, in := range e.input {
		if in == r {
			return true
		}
	}
	return false
}

// precedence returns the index of r in the configured input order, used to
// record a winner when a run mixes separators (the winner is kept on the
// run's token only; CleanRemainder always emits the normalized separator),
// or len(input) if r is the normalized separator but absent from the
// configured input list, or -1 if r is not a separator at all.
func (e *Engine) precedence(r rune) int {
	for i, in := range e.input {
		if in == r {
			return i
		}
	}
	if r == e.normalized {
		return len(e.input)
	}
	return -1
}

// CleanRemainder replaces every character from the configured separator
// alphabet with the normalized separator, collapses runs of separators to
// one, and trims separator runs touching either end of the string. Forward
// slashes are treated as a word separator first, per spec.md §4.1. Bytes
// falling within any span in protected are copied through untouched and
// also act as ordinary (non-separator) content, breaking up any
// surrounding separator run rather than being absorbed into it.
func (e *Engine) CleanRemainder(text string, protected []Span) string {
	runes := []rune(text)
	byteOffset := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		byteOffset[i] = offset
		offset += len(string(r))
	}
	byteOffset[len(runes)] = offset

	type token struct {
		isSepRun bool
		runeVal  rune // winner for a separator run
		text     string
	}
	var tokens []token

	i := 0
	for i < len(runes) {
		bytePos := byteOffset[i]
		protectedHere := contains(protected, bytePos)
		r := runes[i]
		if r == '/' && !protectedHere {
			r = ' '
		}

		if !protectedHere && e.isSeparator(r) {
			// Consume a maximal run of (non-protected) separators.
			best := e.precedence(r)
			bestRune := r
			i++
			for i < len(runes) {
				bp := byteOffset[i]
				if contains(protected, bp) {
					break
				}
				ri := runes[i]
				if ri == '/' {
					ri = ' '
				}
				if !e.isSeparator(ri) {
					break
				}
				p := e.precedence(ri)
				if p != -1 && (best == -1 || p < best) {
					best = p
					bestRune = ri
				}
				i++
			}
			tokens = append(tokens, token{isSepRun: true, runeVal: bestRune})
			continue
		}

		// Content rune (protected or ordinary, including un-slashed path
		// separators when protected).
		orig := runes[i]
		tokens = append(tokens, token{isSepRun: false, text: string(orig)})
		i++
	}

	// Trim leading/trailing separator-run tokens.
	start := 0
	for start < len(tokens) && tokens[start].isSepRun {
		start++
	}
	end := len(tokens)
	for end > start && tokens[end-1].isSepRun {
		end--
	}
	tokens = tokens[start:end]

	var b []rune
	for _, t := range tokens {
		if t.isSepRun {
			b = append(b, e.normalized)
		} else {
			b = append(b, []rune(t.text)...)
		}
	}
	return string(b)
}

// CollapseOnly cleans text with no protected spans, for callers that only
// need run collapsing.
func (e *Engine) CollapseOnly(text string) string {
	return e.CleanRemainder(text, nil)
}

// NormalizedSeparator returns the configured replacement separator.
func (e *Engine) NormalizedSeparator() string { return string(e.normalized) }
