// Package artifact removes non-prose debris from caselaw text: footnote
// markers, section-symbol runs, procedural boilerplate, URLs and digit runs.
// Rules are independent, individually switchable, and order-sensitive: each
// rule scans the text as left by the rules before it, so declaration order
// is part of the public contract.
package artifact

import (
	"fmt"
	"regexp"
)

// Rule is one named pattern-based cleaning rule. Pattern is a regular
// expression in Go (RE2) syntax; matched text is substituted with
// Replacement. Disabled rules are skipped but stay in the declared order.
type Rule struct {
	Name        string `yaml:"name" json:"name"`
	Pattern     string `yaml:"pattern" json:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement"`
	Enabled     bool   `yaml:"enabled" json:"enabled"`
}

// CompiledRule is a rule whose pattern has been compiled and validated.
type CompiledRule struct {
	Rule
	matcher *regexp.Regexp
}

// Compile validates and compiles the rule's pattern. A malformed pattern is
// reported here, at configuration time, so a bad rule can never partially
// corrupt output mid-pipeline.
func (r Rule) Compile() (CompiledRule, error) {
	if r.Name == "" {
		return CompiledRule{}, fmt.Errorf("artifact rule has no name")
	}
	matcher, err := regexp.Compile(r.Pattern)
	if err != nil {
		return CompiledRule{}, fmt.Errorf("artifact rule %q: invalid pattern: %w", r.Name, err)
	}
	return CompiledRule{Rule: r, matcher: matcher}, nil
}

// CompileRules compiles a rule sequence in declaration order, failing on the
// first invalid rule (all-or-nothing).
func CompileRules(rules []Rule) ([]CompiledRule, error) {
	compiled := make([]CompiledRule, 0, len(rules))
	for _, rule := range rules {
		compiledRule, err := rule.Compile()
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledRule)
	}
	return compiled, nil
}
