package doxyrst

import (
	"strings"
	"unicode"
)

// LeadingWidth returns the number of leading whitespace characters in line.
func LeadingWidth(line string) int {
	return len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
}

// IndentBlock prefixes every line of s that contains more than whitespace
// with width spaces. Blank lines and line terminators pass through
// unchanged.
func IndentBlock(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	prefix := strings.Repeat(" ", width)
	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}
