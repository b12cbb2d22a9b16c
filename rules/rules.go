package rules

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Delimiter selects how function bodies are bounded in a language.
type Delimiter int

const (
	// DelimBrace counts a running {/} balance.
	DelimBrace Delimiter = iota
	// DelimDedent ends a body at the first blank or unindented line.
	DelimDedent
)

// Rule is one named lexical pattern. Rules are evaluated in table order and
// that order is part of the report contract.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// RuleSet bundles everything the engine needs to know about one language.
// RuleSets are plain data: registering a new language never touches the
// engine.
type RuleSet struct {
	Language      string
	Extensions    []string
	Rules         []Rule
	FuncSignature *regexp.Regexp
	Delimiter     Delimiter

	// IgnoreCalls lists call names whose discarded return value is fine.
	IgnoreCalls []string
	// CriticalCalls lists call names whose discarded return value is
	// escalated to a critical finding.
	CriticalCalls []string
	// VoidIndicator marks calls with no meaningful return, such as a
	// print-output prefix.
	VoidIndicator string
}

var registry = []*RuleSet{
	cRules,
	goRules,
	javaRules,
	jsRules,
	pythonRules,
	rustRules,
}

func init() {
	if err := validateRegistry(registry); err != nil {
		panic(err)
	}
}

// validateRegistry enforces that extension claims are disjoint. Overlap is a
// programmer error in the tables, not a runtime condition.
func validateRegistry(sets []*RuleSet) error {
	claimed := make(map[string]string)
	for _, rs := range sets {
		for _, ext := range rs.Extensions {
			if prev, ok := claimed[ext]; ok {
				return fmt.Errorf("rules: extension %q claimed by both %s and %s", ext, prev, rs.Language)
			}
			claimed[ext] = rs.Language
		}
	}
	return nil
}

// All returns every registered language RuleSet.
func All() []*RuleSet {
	return registry
}

// ForExtension returns the RuleSet claiming ext (including the leading dot),
// or nil when no language claims it.
func ForExtension(ext string) *RuleSet {
	ext = strings.ToLower(ext)
	for _, rs := range registry {
		for _, e := range rs.Extensions {
			if e == ext {
				return rs
			}
		}
	}
	return nil
}

// ForPath resolves a file path to its language RuleSet via the extension.
func ForPath(path string) *RuleSet {
	return ForExtension(filepath.Ext(path))
}
