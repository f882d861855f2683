package statement

import (
	"strings"

	"github.com/ArthurFDLR/beancount-ce/internal/rules"
	"github.com/ArthurFDLR/beancount-ce/internal/textnorm"
)

// CleanSection reduces one account section to its line-item stream. The
// section is truncated at the first new-balance banner (everything after
// belongs to the next account or to footers), then every line carrying a
// boilerplate phrase or the account header itself is removed, and the noise
// filters are re-applied. The result contains only debit/credit entries,
// possibly wrapped over multiple physical lines.
func CleanSection(body, header string, r *rules.Rules) string {
	if loc := newBalanceRe.FindStringIndex(body); loc != nil {
		body = body[:loc[0]]
	}

	phrases := make([]string, 0, len(r.BoilerplatePhrases)+1)
	phrases = append(phrases, header)
	phrases = append(phrases, r.BoilerplatePhrases...)

	var kept []string
	for _, line := range strings.Split(body, "\n") {
		if containsBoilerplate(line, phrases) {
			continue
		}
		kept = append(kept, line)
	}

	return textnorm.Normalize(strings.Join(kept, "\n"))
}

// containsBoilerplate reports whether the line carries any of the phrases.
// Matching is literal containment: the phrases are distinctive fixed text,
// and regexp word boundaries are ASCII-only in Go, so phrases ending in an
// accented letter ("Relevé") would never match before a space.
func containsBoilerplate(line string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}
