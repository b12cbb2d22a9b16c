package rules

import "regexp"

var goRules = &RuleSet{
	Language:   "go",
	Extensions: []string{".go"},
	Rules: []Rule{
		{"unbounded_loops", regexp.MustCompile(`\bfor\s*\{|\bfor\s+true\s*\{`)},
		{"dynamic_memory", regexp.MustCompile(`\bmake\(|\bnew\(`)},
		{"global_vars", regexp.MustCompile(`(?m)^var\s+\w+(\s+[\w\[\]\*\.]+)?\s*=`)},
		{"complex_flow", regexp.MustCompile(`\bgoto\s+\w+`)},
		{"exposed_secrets", regexp.MustCompile(`(?i)(api[_-]?key|secret|passwd|password|token)\s*:?=\s*"[^"]+"`)},
		{"async_risk", regexp.MustCompile(`\bgo\s+func\b|\bgo\s+\w+[\w\.]*\(`)},
		{"unsanitized_exec", regexp.MustCompile(`exec\.Command\(`)},
		{"network_call", regexp.MustCompile(`http\.(Get|Post|Head)\(|net\.(Dial|Listen)\(`)},
		{"weak_crypto", regexp.MustCompile(`\bmd5\.\w+\(|\bsha1\.\w+\(|\brand\.\w+\(`)},
		{"unsafe_input", regexp.MustCompile(`bufio\.NewReader\(os\.Stdin\)|fmt\.Scan`)},
		{"unsafe_file_op", regexp.MustCompile(`ioutil\.(ReadFile|WriteFile)\(`)},
		{"set_timeout", regexp.MustCompile(`time\.Sleep\(`)},
	},
	FuncSignature: regexp.MustCompile(`^func\s+(\([^)]*\)\s*)?[A-Za-z_]\w*\s*\(`),
	Delimiter:     DelimBrace,
	IgnoreCalls:   []string{"append", "close", "delete", "copy", "panic", "wg.Done", "wg.Add", "defer"},
	CriticalCalls: []string{"os.Open", "os.Create", "http.Get", "http.Post", "net.Dial", "exec.Command"},
	VoidIndicator: "fmt.Print",
}
