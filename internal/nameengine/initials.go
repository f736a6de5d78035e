package nameengine

import "strings"

// initialsPass implements spec.md §4.3 pass 2: for any target with 2+
// parts, tries a separated shape (`F<sep>+M<sep>+...<sep>+L`) and a
// grouped shape (`FML...`), both anchored.
func (e *Engine) initialsPass(parts []string, remainder, sepCls string) ([]string, string) {
	if len(parts) < 2 {
		return nil, remainder
	}

	initials := make([]string, len(parts))
	for i, p := range parts {
		initials[i] = fuzzyPartRegex(p[:1], e.fuzzySubs)
	}

	separated := strings.Join(initials, sepCls+"+")
	grouped := strings.Join(initials, "")

	patterns := []namePattern{
		{re: mustCompile(anchor(sepCls, separated)), groupIndex: 1},
		{re: mustCompile(anchor(sepCls, grouped)), groupIndex: 1},
	}
	return runToExhaustion(patterns, remainder)
}
