package scanner

import (
	"fmt"
	"regexp"
	"strings"

	"vigil/rules"
)

// funcNameRe extracts a best-effort function name: the first identifier-like
// token directly in front of an argument list.
var funcNameRe = regexp.MustCompile(`([A-Za-z_]\w*)\s*\(`)

// Analyzer applies one language's RuleSet to file contents. It is read-only
// after construction and safe for concurrent use.
type Analyzer struct {
	rs      *rules.RuleSet
	auditor *returnAuditor
}

func NewAnalyzer(rs *rules.RuleSet) *Analyzer {
	return &Analyzer{rs: rs, auditor: newReturnAuditor(rs)}
}

// Analyze runs every detector against text. Emission order is a contract:
// rule-pattern findings in table order, then oversized-function findings,
// then unchecked-return findings.
func (a *Analyzer) Analyze(text string) []Finding {
	var findings []Finding

	for _, rule := range a.rs.Rules {
		for _, loc := range rule.Pattern.FindAllStringIndex(text, -1) {
			findings = append(findings, Finding{
				IssueType: rule.Name,
				Message:   text[loc[0]:loc[1]],
				Line:      lineOfOffset(text, loc[0]),
			})
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !a.rs.FuncSignature.MatchString(line) {
			continue
		}
		extent := FunctionExtent(lines, i, a.rs.Delimiter)
		if extent <= MaxFuncLines {
			continue
		}
		findings = append(findings, Finding{
			IssueType: IssueExceedsMaxFuncLines,
			Message: fmt.Sprintf("function %s spans %d lines, limit is %d",
				functionName(line), extent, MaxFuncLines),
			Line: i + 1,
		})
	}

	findings = append(findings, a.auditor.audit(lines)...)
	return findings
}

// lineOfOffset converts a byte offset into a 1-based line number by counting
// the newlines strictly before it.
func lineOfOffset(text string, offset int) int {
	return 1 + strings.Count(text[:offset], "\n")
}

var signatureKeywords = map[string]bool{
	"func": true, "fn": true, "def": true, "function": true,
	"if": true, "for": true, "while": true, "switch": true, "catch": true,
}

func functionName(signature string) string {
	for _, m := range funcNameRe.FindAllStringSubmatch(signature, -1) {
		if !signatureKeywords[m[1]] {
			return m[1]
		}
	}
	return "anonymous"
}
