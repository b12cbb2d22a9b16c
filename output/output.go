package output

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"

	"vigil/scanner"
	"vigil/version"
)

// SchemaVersion identifies the JSON document layout.
const SchemaVersion = "1"

type Metrics struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	FilesScanned  int    `json:"files_scanned"`
	FilesReported int    `json:"files_reported"`
	TotalFindings int    `json:"total_findings"`
}

// Summary aggregates findings across a scan for the console footer, the JSON
// document and the fail-on gate.
type Summary struct {
	TotalFiles    int            `json:"total_files"`
	FilesFlagged  int            `json:"files_flagged"`
	TotalFindings int            `json:"total_findings"`
	BySeverity    map[string]int `json:"by_severity"`

	worst    Severity
	hasWorst bool
}

func Summarize(reports []scanner.FileReport) *Summary {
	s := &Summary{
		TotalFiles: len(reports),
		BySeverity: map[string]int{},
	}
	for _, r := range reports {
		if len(r.Findings) == 0 {
			continue
		}
		s.FilesFlagged++
		for _, f := range r.Findings {
			s.TotalFindings++
			sev := SeverityOf(f.IssueType)
			s.BySeverity[sev.String()]++
			if !s.hasWorst || sev > s.worst {
				s.worst = sev
				s.hasWorst = true
			}
		}
	}
	return s
}

// Exceeds reports whether any finding reached the threshold.
func (s *Summary) Exceeds(threshold Severity) bool {
	return s.hasWorst && s.worst >= threshold
}

// Writer renders scan results to stdout or a file. A file destination always
// gets plain text; the terminal palette follows fatih/color's own detection.
type Writer struct {
	mu      sync.Mutex
	buf     *bufio.Writer
	file    *os.File
	format  string
	colored bool
	metrics *Metrics
}

// New opens a result writer. An empty path means stdout.
func New(format, path string, m *Metrics) (*Writer, error) {
	w := &Writer{format: format, metrics: m}
	if path == "" {
		w.buf = bufio.NewWriter(os.Stdout)
		w.colored = !color.NoColor
		return w, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	w.file = f
	w.buf = bufio.NewWriterSize(f, 64*1024)
	return w, nil
}

// Write renders all reports plus the summary in the configured format.
func (w *Writer) Write(root string, reports []scanner.FileReport, sum *Summary) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.metrics != nil {
		w.metrics.FilesReported = len(reports)
		w.metrics.TotalFindings = sum.TotalFindings
	}
	switch w.format {
	case "json":
		return w.writeJSON(root, reports, sum)
	default:
		return w.writeConsole(reports, sum)
	}
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.buf.Flush(); err != nil {
		return err
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

type document struct {
	SchemaVersion string               `json:"schema_version"`
	Tool          string               `json:"tool"`
	Version       string               `json:"version"`
	Root          string               `json:"root"`
	Reports       []scanner.FileReport `json:"reports"`
	Summary       *Summary             `json:"summary"`
	Metrics       *Metrics             `json:"metrics,omitempty"`
}

func (w *Writer) writeJSON(root string, reports []scanner.FileReport, sum *Summary) error {
	if reports == nil {
		reports = []scanner.FileReport{}
	}
	doc := document{
		SchemaVersion: SchemaVersion,
		Tool:          "vigil",
		Version:       version.Version,
		Root:          root,
		Reports:       reports,
		Summary:       sum,
		Metrics:       w.metrics,
	}
	data, err := jsonMarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if _, err := w.buf.Write(data); err != nil {
		return err
	}
	_, err = w.buf.WriteString("\n")
	return err
}

var severityPalette = map[Severity]*color.Color{
	SeverityCritical: color.New(color.FgRed, color.Bold),
	SeverityHigh:     color.New(color.FgRed),
	SeverityMedium:   color.New(color.FgYellow),
	SeverityLow:      color.New(color.FgBlue),
}

var pathStyle = color.New(color.FgCyan, color.Bold)

func (w *Writer) writeConsole(reports []scanner.FileReport, sum *Summary) error {
	for _, r := range reports {
		if len(r.Findings) == 0 {
			continue
		}
		fmt.Fprintf(w.buf, "%s\n", w.paint(pathStyle, r.RelPath))
		for _, f := range r.Findings {
			sev := SeverityOf(f.IssueType)
			loc := "file"
			if f.Line > 0 {
				loc = fmt.Sprintf("%4d", f.Line)
			}
			fmt.Fprintf(w.buf, "  %s  %s  %s: %s\n",
				loc, w.paint(severityPalette[sev], fmt.Sprintf("%-8s", sev)), f.IssueType, f.Message)
		}
		fmt.Fprintln(w.buf)
	}

	fmt.Fprintf(w.buf, "%d files scanned, %d flagged, %d findings", sum.TotalFiles, sum.FilesFlagged, sum.TotalFindings)
	if sum.TotalFindings > 0 {
		fmt.Fprint(w.buf, " (")
		first := true
		for sev := SeverityCritical; sev >= SeverityLow; sev-- {
			n := sum.BySeverity[sev.String()]
			if n == 0 {
				continue
			}
			if !first {
				fmt.Fprint(w.buf, ", ")
			}
			fmt.Fprintf(w.buf, "%s: %d", w.paint(severityPalette[sev], sev.String()), n)
			first = false
		}
		fmt.Fprint(w.buf, ")")
	}
	fmt.Fprintln(w.buf)
	return w.buf.Flush()
}

func (w *Writer) paint(c *color.Color, s string) string {
	if !w.colored {
		return s
	}
	return c.Sprint(s)
}
