package output

// Severity ranks findings for the console palette and the exit gate.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

var issueSeverity = map[string]Severity{
	"exposed_secrets":            SeverityCritical,
	"unsanitized_exec":           SeverityCritical,
	"eval_usage":                 SeverityCritical,
	"buffer_overflow_risk":       SeverityCritical,
	"unchecked_func_return_crit": SeverityCritical,
	"checksum_mismatch":          SeverityCritical,

	"weak_crypto":     SeverityHigh,
	"unsafe_input":    SeverityHigh,
	"unsafe_file_op":  SeverityHigh,
	"unbounded_loops": SeverityHigh,
	"import_risk":     SeverityHigh,

	"network_call":           SeverityMedium,
	"dynamic_memory":         SeverityMedium,
	"complex_flow":           SeverityMedium,
	"async_risk":             SeverityMedium,
	"set_timeout":            SeverityMedium,
	"try_catch":              SeverityMedium,
	"unchecked_func_return":  SeverityMedium,
	"exceeds_max_func_lines": SeverityMedium,

	"global_vars": SeverityLow,
}

// SeverityOf maps an issue type to its severity. Unknown types rank low so a
// new rule never trips the gate before someone has classified it.
func SeverityOf(issueType string) Severity {
	if s, ok := issueSeverity[issueType]; ok {
		return s
	}
	return SeverityLow
}

// ParseSeverity converts a fail-on flag value. The empty string disables the
// gate, reported through ok=false.
func ParseSeverity(value string) (Severity, bool) {
	switch value {
	case "critical":
		return SeverityCritical, true
	case "high":
		return SeverityHigh, true
	case "medium":
		return SeverityMedium, true
	case "low":
		return SeverityLow, true
	default:
		return 0, false
	}
}
