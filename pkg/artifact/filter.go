package artifact

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// urlPattern matches scheme-prefixed URL tokens. Applied before digit
	// removal so a URL containing digits disappears as a unit instead of
	// being fragmented.
	urlPattern = regexp.MustCompile(`https?://\S+`)

	// wwwPattern matches bare www-prefixed web references, which appear in
	// caselaw reprints without a scheme.
	wwwPattern = regexp.MustCompile(`www\.\S+`)

	// digitPattern matches a single digit character.
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// Filter applies an ordered artifact rule set plus the URL and digit
// removal passes. Construct with New so the rule patterns are validated up
// front; a Filter never fails while cleaning.
type Filter struct {
	rules        []CompiledRule
	removeURLs   bool
	removeDigits bool
}

// New builds a filter from the rule sequence. Rule order is preserved and is
// semantically significant: the first-declared rule wins any region two
// rules could both match. Returns an error if any rule pattern is invalid.
func New(rules []Rule, removeURLs, removeDigits bool) (*Filter, error) {
	compiled, err := CompileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Filter{rules: compiled, removeURLs: removeURLs, removeDigits: removeDigits}, nil
}

// Apply runs the enabled rules in declaration order over the text, then URL
// removal, then digit removal. Each rule sees the text as modified by the
// rules before it. Apply is idempotent: cleaning already-cleaned text
// produces no further change.
func (f *Filter) Apply(text string) string {
	result := text
	for _, rule := range f.rules {
		if !rule.Enabled {
			continue
		}
		result = rule.matcher.ReplaceAllString(result, rule.Replacement)
	}

	// URLs before digits: a URL often contains digits that must go with it.
	if f.removeURLs {
		result = urlPattern.ReplaceAllString(result, "")
		result = wwwPattern.ReplaceAllString(result, "")
	}
	if f.removeDigits {
		result = digitPattern.ReplaceAllString(result, "")
	}
	return result
}

// Rules returns the filter's rules in declaration order, for reporting.
func (f *Filter) Rules() []Rule {
	rules := make([]Rule, len(f.rules))
	for i, compiled := range f.rules {
		rules[i] = compiled.Rule
	}
	return rules
}

// Describe renders a one-line-per-rule summary of the configured order, the
// documented contract for order-dependent rule sets.
func (f *Filter) Describe() string {
	var b strings.Builder
	for i, rule := range f.rules {
		state := "enabled"
		if !rule.Enabled {
			state = "disabled"
		}
		fmt.Fprintf(&b, "%2d. %-28s %s\n", i+1, rule.Name, state)
	}
	return b.String()
}
