package rules

import "regexp"

var javaRules = &RuleSet{
	Language:   "java",
	Extensions: []string{".java"},
	Rules: []Rule{
		{"unbounded_loops", regexp.MustCompile(`while\s*\(\s*true\s*\)|for\s*\(\s*;\s*;\s*\)`)},
		{"dynamic_memory", regexp.MustCompile(`new\s+(ArrayList|HashMap|LinkedList|HashSet|StringBuilder)\b`)},
		{"global_vars", regexp.MustCompile(`public\s+static\s+\w+\s+\w+\s*=`)},
		{"exposed_secrets", regexp.MustCompile(`(?i)(api[_-]?key|secret|passwd|password|token)\s*=\s*"[^"]+"`)},
		{"async_risk", regexp.MustCompile(`@Async\b|CompletableFuture|new\s+Thread\(`)},
		{"eval_usage", regexp.MustCompile(`ScriptEngine|\.eval\(`)},
		{"network_call", regexp.MustCompile(`HttpURLConnection|new\s+URL\(|new\s+Socket\(`)},
		{"weak_crypto", regexp.MustCompile(`MessageDigest\.getInstance\("(MD5|SHA-?1)"\)|new\s+Random\(`)},
		{"unsafe_input", regexp.MustCompile(`\.readLine\(\)`)},
		{"unsafe_file_op", regexp.MustCompile(`new\s+(FileReader|FileWriter|FileInputStream)\(`)},
		{"set_timeout", regexp.MustCompile(`Thread\.sleep\(`)},
		{"try_catch", regexp.MustCompile(`catch\s*\(\s*Exception\s+\w+\s*\)`)},
	},
	FuncSignature: regexp.MustCompile(`^\s*(public|private|protected)\s+[\w<>\[\]]+\s+\w+\s*\([^;]*\)`),
	Delimiter:     DelimBrace,
	IgnoreCalls:   []string{"println", "print", "close", "flush", "add", "put"},
	CriticalCalls: []string{"connect", "getInputStream", "readLine", "eval"},
	VoidIndicator: "System.out",
}
