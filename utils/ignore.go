package utils

import (
	"path"
	"regexp"
	"strings"
)

// DefaultIgnorePatterns covers common VCS, build and dependency directories
// plus compiled artifacts for the supported source languages. Callers may
// replace the list entirely.
var DefaultIgnorePatterns = []string{
	".git", ".svn", ".hg",
	"node_modules", "vendor", "target", "build", "dist",
	"__pycache__", ".venv", ".idea", ".vscode",
	"*.o", "*.a", "*.so", "*.dll", "*.exe",
	"*.class", "*.jar", "*.pyc", "*.bin", "*.min.js",
}

type ignorePattern struct {
	raw  string
	glob *regexp.Regexp
}

// IgnoreSpec is an ordered list of path-exclusion patterns. A path is ignored
// when ANY pattern matches as a literal substring, a path-start prefix, a
// basename equality, or a single-wildcard basename glob.
type IgnoreSpec struct {
	patterns []ignorePattern
}

func NewIgnoreSpec(patterns []string) *IgnoreSpec {
	spec := &IgnoreSpec{patterns: make([]ignorePattern, 0, len(patterns))}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		entry := ignorePattern{raw: p}
		if strings.Count(p, "*") == 1 {
			expanded := "^" + strings.Replace(regexp.QuoteMeta(p), `\*`, ".*", 1) + "$"
			if re, err := regexp.Compile(expanded); err == nil {
				entry.glob = re
			}
		}
		spec.patterns = append(spec.patterns, entry)
	}
	return spec
}

// Match reports whether relPath (slash-separated, relative to the scan root)
// is excluded.
func (s *IgnoreSpec) Match(relPath string) bool {
	if s == nil {
		return false
	}
	base := path.Base(relPath)
	for _, p := range s.patterns {
		if strings.Contains(relPath, p.raw) {
			return true
		}
		if strings.HasPrefix(relPath, p.raw) {
			return true
		}
		if base == p.raw {
			return true
		}
		if p.glob != nil && p.glob.MatchString(base) {
			return true
		}
	}
	return false
}
