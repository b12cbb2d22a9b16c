package scanner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"

	"vigil/rules"
)

// bareCallRe matches a statement that is nothing but a call: an identifier
// (possibly dotted / pathed), an argument list and an optional terminator.
var bareCallRe = regexp.MustCompile(`^[A-Za-z_][\w.:!]*\s*\(.*\)\s*;?\s*$`)

// assignRe rejects lines of the form "x = f(...)" early; the result is used,
// not discarded.
var assignRe = regexp.MustCompile(`^[\w.\[\]*]+\s*:?=[^=]`)

// returnAuditor flags bare call statements whose return value is discarded.
// Purely lexical: calls split across lines are undercounted and call-shaped
// text inside comments or strings is overcounted. That trade is accepted, not
// a bug.
type returnAuditor struct {
	ignore        *ahocorasick.Matcher
	critical      *ahocorasick.Matcher
	voidIndicator string
}

func newReturnAuditor(rs *rules.RuleSet) *returnAuditor {
	a := &returnAuditor{voidIndicator: rs.VoidIndicator}
	if len(rs.IgnoreCalls) > 0 {
		a.ignore = ahocorasick.NewStringMatcher(rs.IgnoreCalls)
	}
	if len(rs.CriticalCalls) > 0 {
		a.critical = ahocorasick.NewStringMatcher(rs.CriticalCalls)
	}
	return a
}

func (a *returnAuditor) audit(lines []string) []Finding {
	var findings []Finding
	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || assignRe.MatchString(trimmed) {
			continue
		}
		if !bareCallRe.MatchString(trimmed) {
			continue
		}
		if a.voidIndicator != "" && strings.Contains(trimmed, a.voidIndicator) {
			continue
		}
		if contains(a.ignore, trimmed) {
			continue
		}
		findings = append(findings, Finding{
			IssueType: IssueUncheckedReturn,
			Message:   fmt.Sprintf("return value not checked: %s", trimmed),
			Line:      i + 1,
		})
		if contains(a.critical, trimmed) {
			findings = append(findings, Finding{
				IssueType: IssueUncheckedReturnCrit,
				Message:   fmt.Sprintf("critical call return value not checked: %s", trimmed),
				Line:      i + 1,
			})
		}
	}
	return findings
}

func contains(m *ahocorasick.Matcher, text string) bool {
	if m == nil {
		return false
	}
	return len(m.MatchThreadSafe([]byte(text))) > 0
}
