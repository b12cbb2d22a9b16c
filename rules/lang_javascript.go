package rules

import "regexp"

var jsRules = &RuleSet{
	Language:   "javascript",
	Extensions: []string{".js", ".ts"},
	Rules: []Rule{
		{"unbounded_loops", regexp.MustCompile(`while\s*\(\s*true\s*\)|for\s*\(\s*;\s*;\s*\)`)},
		{"dynamic_memory", regexp.MustCompile(`new\s+Array\(|new\s+Map\(|new\s+Set\(`)},
		{"exposed_secrets", regexp.MustCompile(`(?i)(api[_-]?key|secret|passwd|password|token)\s*[:=]\s*["'][^"']+["']`)},
		{"eval_usage", regexp.MustCompile(`\beval\(|new\s+Function\(`)},
		{"network_call", regexp.MustCompile(`fetch\(|axios\.|XMLHttpRequest`)},
		{"weak_crypto", regexp.MustCompile(`Math\.random\(`)},
		{"set_timeout", regexp.MustCompile(`setTimeout\(|setInterval\(`)},
		{"async_risk", regexp.MustCompile(`async\s+function\b|new\s+Promise\(`)},
		{"unsanitized_exec", regexp.MustCompile(`child_process|execSync\(`)},
	},
	FuncSignature: regexp.MustCompile(`^\s*(async\s+)?function\s+\w+\s*\(|^\s*(const|let|var)\s+\w+\s*=\s*(async\s*)?\([^)]*\)\s*=>`),
	Delimiter:     DelimBrace,
	IgnoreCalls:   []string{"push", "pop", "forEach", "addEventListener"},
	CriticalCalls: []string{"fetch", "eval", "require"},
	VoidIndicator: "console.",
}
