package scanner

// Issue types produced by the engine itself. Rule-pattern findings carry the
// rule's name from the language table instead.
const (
	IssueExceedsMaxFuncLines = "exceeds_max_func_lines"
	IssueUncheckedReturn     = "unchecked_func_return"
	IssueUncheckedReturnCrit = "unchecked_func_return_crit"
	IssueChecksumMismatch    = "checksum_mismatch"
)

// MaxFuncLines is the oversized-function threshold.
const MaxFuncLines = 60

// Finding is one reported rule violation. Line is 1-based; 0 means the
// finding applies to the whole file (only checksum_mismatch does).
type Finding struct {
	IssueType string `json:"issue_type"`
	Message   string `json:"message"`
	Line      int    `json:"line,omitempty"`
}

// FileReport collects the findings for one analyzed file. Files whose
// extension no language claims never get a FileReport: absence, not
// emptiness, signals "unsupported". Reports keep their findings in detection
// order; consumers index into the slice.
type FileReport struct {
	Path       string    `json:"path"`
	RelPath    string    `json:"rel_path"`
	Language   string    `json:"language,omitempty"`
	ModTime    string    `json:"mod_time,omitempty"`
	ChangeTime string    `json:"change_time,omitempty"`
	MimeType   string    `json:"mime_type,omitempty"`
	Findings   []Finding `json:"findings"`
}
