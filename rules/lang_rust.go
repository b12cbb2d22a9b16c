package rules

import "regexp"

var rustRules = &RuleSet{
	Language:   "rust",
	Extensions: []string{".rs"},
	Rules: []Rule{
		{"unbounded_loops", regexp.MustCompile(`\bloop\s*\{|while\s+true\b`)},
		{"dynamic_memory", regexp.MustCompile(`\bvec!|Box::new\(|Vec::new\(`)},
		{"global_vars", regexp.MustCompile(`static\s+mut\s+\w+`)},
		{"exposed_secrets", regexp.MustCompile(`(?i)(api[_-]?key|secret|passwd|password|token)[\w]*\s*(:\s*&?str\s*)?=\s*"[^"]+"`)},
		{"eval_usage", regexp.MustCompile(`\bunsafe\s*\{`)},
		{"network_call", regexp.MustCompile(`TcpStream::connect|UdpSocket::bind|reqwest::`)},
		{"weak_crypto", regexp.MustCompile(`\bmd5::|\bsha1::`)},
		{"unsafe_input", regexp.MustCompile(`read_line\(`)},
		{"async_risk", regexp.MustCompile(`thread::spawn\(|tokio::spawn\(`)},
		{"unsanitized_exec", regexp.MustCompile(`Command::new\(`)},
	},
	FuncSignature: regexp.MustCompile(`^\s*(pub\s+)?(async\s+)?fn\s+\w+`),
	Delimiter:     DelimBrace,
	IgnoreCalls:   []string{"push", "insert", "drop", "clear"},
	CriticalCalls: []string{"File::open", "connect", "spawn"},
	VoidIndicator: "println!",
}
