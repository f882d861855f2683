// Package textnorm strips layout noise from raw extracted statement text.
package textnorm

import (
	"strings"
	"unicode/utf8"
)

// maxLineLength is the threshold above which a line is considered a layout
// reconstruction artifact rather than statement content.
const maxLineLength = 70

// Normalize removes noise lines from raw extracted text: lines of only
// whitespace or a single character, lines of 70 or more characters, and lines
// shorter than two characters once trimmed. Trailing spaces and tabs are
// stripped from every retained line. The operation preserves line order and
// is idempotent.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if utf8.RuneCountInString(line) >= maxLineLength {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(line)) < 2 {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
