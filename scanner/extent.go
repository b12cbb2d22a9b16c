package scanner

import (
	"strings"

	"vigil/rules"
)

// FunctionExtent measures how many lines the function starting at start
// occupies. Malformed input (unbalanced braces, odd indentation) degrades to
// "rest of file" rather than failing.
func FunctionExtent(lines []string, start int, delim rules.Delimiter) int {
	if start < 0 || start >= len(lines) {
		return 0
	}
	if delim == rules.DelimDedent {
		return dedentExtent(lines, start)
	}
	return braceExtent(lines, start)
}

// braceExtent tracks the running {/} balance from the signature line. The
// body ends at the first line strictly after start where the balance returns
// to zero; that closing line is included in the extent.
func braceExtent(lines []string, start int) int {
	balance := 0
	for i := start; i < len(lines); i++ {
		balance += strings.Count(lines[i], "{")
		balance -= strings.Count(lines[i], "}")
		if i > start && balance == 0 {
			return i - start + 1
		}
	}
	return len(lines) - start
}

// dedentExtent skips the signature line, then ends the body at the first
// blank or unindented line once at least one body line has been consumed.
// The dedent line itself is excluded from the extent.
func dedentExtent(lines []string, start int) int {
	for i := start + 1; i < len(lines); i++ {
		if i == start+1 {
			continue
		}
		line := lines[i]
		if strings.TrimSpace(line) == "" || !startsWithIndent(line) {
			return i - start
		}
	}
	return len(lines) - start
}

func startsWithIndent(line string) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}
