package nameengine

import "fmt"

// anchor wraps inner (a regex producing exactly one capturing group around
// the real match text) with a string-start-or-separator boundary on each
// side, matching spec.md §4.3 "anchored by separators or string ends".
func anchor(sepCls, inner string) string {
	return fmt.Sprintf(boundaryStart, sepCls) + "(" + inner + ")" + fmt.Sprintf(boundaryEnd, sepCls)
}

// shorthandPass implements spec.md §4.3 pass 1: only when target has
// exactly two parts, tries `F.Last`, `First.L`, and grouped `FLast`.
func (e *Engine) shorthandPass(parts []string, remainder, sepCls string) ([]string, string) {
	if len(parts) != 2 {
		return nil, remainder
	}
	first, last := parts[0], parts[1]
	firstInitial := fuzzyPartRegex(first[:1], e.fuzzySubs)
	lastInitial := fuzzyPartRegex(last[:1], e.fuzzySubs)
	fuzzyFirst := fuzzyPartRegex(first, e.fuzzySubs)
	fuzzyLast := fuzzyPartRegex(last, e.fuzzySubs)

	patterns := []namePattern{
		{re: mustCompile(anchor(sepCls, firstInitial+sepCls+fuzzyLast)), groupIndex: 1},
		{re: mustCompile(anchor(sepCls, fuzzyFirst+sepCls+lastInitial)), groupIndex: 1},
		{re: mustCompile(anchor(sepCls, firstInitial+fuzzyLast)), groupIndex: 1},
	}
	return runToExhaustion(patterns, remainder)
}
