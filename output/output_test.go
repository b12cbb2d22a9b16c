package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vigil/scanner"
)

func sampleReports() []scanner.FileReport {
	return []scanner.FileReport{
		{
			RelPath:  "a.go",
			Language: "go",
			Findings: []scanner.Finding{
				{IssueType: "exposed_secrets", Message: `token = "x"`, Line: 3},
				{IssueType: "unchecked_func_return", Message: "return value not checked: f()", Line: 9},
			},
		},
		{RelPath: "b.go", Language: "go", Findings: []scanner.Finding{}},
		{
			RelPath: "c.py",
			Findings: []scanner.Finding{
				{IssueType: "checksum_mismatch", Message: "content digest x does not match manifest entry y"},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(sampleReports())
	if sum.TotalFiles != 3 || sum.FilesFlagged != 2 || sum.TotalFindings != 3 {
		t.Fatalf("summary totals wrong: %+v", sum)
	}
	if sum.BySeverity["critical"] != 2 || sum.BySeverity["medium"] != 1 {
		t.Fatalf("severity counts wrong: %v", sum.BySeverity)
	}
}

func TestSummaryExceeds(t *testing.T) {
	sum := Summarize(sampleReports())
	if !sum.Exceeds(SeverityCritical) || !sum.Exceeds(SeverityLow) {
		t.Fatal("critical finding must trip every threshold")
	}
	clean := Summarize([]scanner.FileReport{{RelPath: "a.go", Findings: []scanner.Finding{}}})
	if clean.Exceeds(SeverityLow) {
		t.Fatal("clean scan must never trip the gate")
	}
}

func TestSeverityOf(t *testing.T) {
	if SeverityOf("exposed_secrets") != SeverityCritical {
		t.Error("exposed_secrets should be critical")
	}
	if SeverityOf("global_vars") != SeverityLow {
		t.Error("global_vars should be low")
	}
	if SeverityOf("some_future_rule") != SeverityLow {
		t.Error("unknown issue types default to low")
	}
}

func TestParseSeverity(t *testing.T) {
	if s, ok := ParseSeverity("high"); !ok || s != SeverityHigh {
		t.Errorf("ParseSeverity(high) = %v, %v", s, ok)
	}
	if _, ok := ParseSeverity(""); ok {
		t.Error("empty value should disable the gate")
	}
}

func TestWriteJSONDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	metrics := &Metrics{StartTime: "2026-01-01T00:00:00Z"}
	w, err := New("json", path, metrics)
	if err != nil {
		t.Fatal(err)
	}
	reports := sampleReports()
	if err := w.Write("/src/app", reports, Summarize(reports)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		SchemaVersion string               `json:"schema_version"`
		Tool          string               `json:"tool"`
		Root          string               `json:"root"`
		Reports       []scanner.FileReport `json:"reports"`
		Summary       *Summary             `json:"summary"`
		Metrics       *Metrics             `json:"metrics"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.SchemaVersion != SchemaVersion || doc.Tool != "vigil" || doc.Root != "/src/app" {
		t.Fatalf("document header wrong: %+v", doc)
	}
	if len(doc.Reports) != 3 || doc.Reports[0].Findings[0].Line != 3 {
		t.Fatalf("reports not preserved: %+v", doc.Reports)
	}
	if doc.Metrics == nil || doc.Metrics.FilesReported != 3 || doc.Metrics.TotalFindings != 3 {
		t.Fatalf("metrics not filled in: %+v", doc.Metrics)
	}
}

func TestWriteConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w, err := New("console", path, nil)
	if err != nil {
		t.Fatal(err)
	}
	reports := sampleReports()
	if err := w.Write("/src/app", reports, Summarize(reports)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		"a.go",
		"exposed_secrets",
		"3 files scanned, 2 flagged, 3 findings",
		"file", // whole-file findings carry no line number
	} {
		if !strings.Contains(text, want) {
			t.Errorf("console output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "b.go") {
		t.Errorf("clean files should not be listed:\n%s", text)
	}
	if strings.Contains(text, "\x1b[") {
		t.Errorf("file output must not carry color escapes:\n%s", text)
	}
}
