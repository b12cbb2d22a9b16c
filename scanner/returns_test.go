package scanner

import (
	"testing"

	"vigil/rules"
)

func TestAuditCriticalCallEmitsBothFindings(t *testing.T) {
	rs := rules.ForExtension(".js")
	a := newReturnAuditor(rs)
	findings := a.audit([]string{`fetch("http://x");`})
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d: %+v", len(findings), findings)
	}
	if findings[0].IssueType != IssueUncheckedReturn {
		t.Fatalf("first finding = %s, want %s", findings[0].IssueType, IssueUncheckedReturn)
	}
	if findings[1].IssueType != IssueUncheckedReturnCrit {
		t.Fatalf("second finding = %s, want %s", findings[1].IssueType, IssueUncheckedReturnCrit)
	}
	if findings[0].Line != 1 || findings[1].Line != 1 {
		t.Fatalf("both findings should point at line 1: %+v", findings)
	}
}

func TestAuditIgnoredAndVoidCallsAreExempt(t *testing.T) {
	rs := rules.ForExtension(".go")
	a := newReturnAuditor(rs)
	lines := []string{
		"close(ch)",            // ignore list
		`fmt.Println("hello")`, // void indicator
		"doWork(1, 2)",         // flagged
	}
	findings := a.audit(lines)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d: %+v", len(findings), findings)
	}
	if findings[0].Line != 3 {
		t.Fatalf("finding line = %d, want 3", findings[0].Line)
	}
}

func TestAuditSkipsAssignmentsAndNonCalls(t *testing.T) {
	rs := rules.ForExtension(".c")
	a := newReturnAuditor(rs)
	lines := []string{
		"int r = compute(1);",
		"r = compute(2);",
		"if (check(r)) {",
		"return compute(3);",
		"// compute(4);",
	}
	if findings := a.audit(lines); len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestAuditQuotesTrimmedLine(t *testing.T) {
	rs := rules.ForExtension(".c")
	a := newReturnAuditor(rs)
	findings := a.audit([]string{"    compute(1);"})
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if want := "return value not checked: compute(1);"; findings[0].Message != want {
		t.Fatalf("message = %q, want %q", findings[0].Message, want)
	}
}
