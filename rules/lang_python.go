package rules

import "regexp"

var pythonRules = &RuleSet{
	Language:   "python",
	Extensions: []string{".py"},
	Rules: []Rule{
		{"unbounded_loops", regexp.MustCompile(`while\s+True\s*:`)},
		{"dynamic_memory", regexp.MustCompile(`list\(range\(|\[[^\]]*\]\s*\*\s*\d+`)},
		{"exposed_secrets", regexp.MustCompile(`(?i)(api[_-]?key|secret|passwd|password|token)\s*=\s*["'][^"']+["']`)},
		{"import_risk", regexp.MustCompile(`(?m)^from\s+\S+\s+import\s+\*`)},
		{"eval_usage", regexp.MustCompile(`\beval\(|\bexec\(`)},
		{"network_call", regexp.MustCompile(`requests\.(get|post|put|delete)\(|urllib\.|socket\.socket\(`)},
		{"weak_crypto", regexp.MustCompile(`hashlib\.(md5|sha1)\(|random\.(random|randint)\(`)},
		{"unsafe_input", regexp.MustCompile(`\binput\(`)},
		{"async_risk", regexp.MustCompile(`threading\.Thread\(|asyncio\.`)},
		{"unsanitized_exec", regexp.MustCompile(`os\.system\(|subprocess\.(call|run|Popen)\(`)},
	},
	FuncSignature: regexp.MustCompile(`^\s*def\s+\w+\s*\(`),
	Delimiter:     DelimDedent,
	IgnoreCalls:   []string{"append", "close", "sort", "update", "exit"},
	CriticalCalls: []string{"open", "eval", "exec", "connect"},
	VoidIndicator: "print(",
}
