package rules

import "regexp"

var cRules = &RuleSet{
	Language:   "c",
	Extensions: []string{".c", ".h"},
	Rules: []Rule{
		{"unbounded_loops", regexp.MustCompile(`while\s*\(\s*(1|true)\s*\)|for\s*\(\s*;\s*;\s*\)`)},
		{"dynamic_memory", regexp.MustCompile(`\b(malloc|calloc|realloc)\s*\(`)},
		{"global_vars", regexp.MustCompile(`(?m)^(unsigned\s+)?(int|char|long|short|float|double)\s+\w+\s*=`)},
		{"complex_flow", regexp.MustCompile(`\bgoto\s+\w+`)},
		{"exposed_secrets", regexp.MustCompile(`(?i)(api[_-]?key|secret|passwd|password|token)\s*(=|:)\s*"[^"]+"`)},
		{"unsafe_input", regexp.MustCompile(`\b(gets|scanf)\s*\(`)},
		{"buffer_overflow_risk", regexp.MustCompile(`\b(strcpy|strcat|sprintf)\s*\(`)},
		{"weak_crypto", regexp.MustCompile(`\b(rand|srand)\s*\(`)},
		{"network_call", regexp.MustCompile(`\b(socket|connect|recv|send)\s*\(`)},
		{"unsanitized_exec", regexp.MustCompile(`\b(system|popen|execl|execv)\s*\(`)},
	},
	FuncSignature: regexp.MustCompile(`^[A-Za-z_][\w\s\*]*\s\**[A-Za-z_]\w*\s*\([^;]*\)\s*\{?\s*$`),
	Delimiter:     DelimBrace,
	IgnoreCalls:   []string{"free", "exit", "memset", "memcpy", "close", "srand"},
	CriticalCalls: []string{"malloc", "calloc", "realloc", "fopen", "socket", "connect", "recv"},
	VoidIndicator: "printf",
}
