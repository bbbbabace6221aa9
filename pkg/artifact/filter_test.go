package artifact

import (
	"strings"
	"testing"
)

func TestNewRejectsBadPattern(t *testing.T) {
	rules := []Rule{
		{Name: "good", Pattern: `\d+`, Enabled: true},
		{Name: "broken", Pattern: `[unclosed`, Enabled: true},
	}

	_, err := New(rules, false, false)
	if err == nil {
		t.Fatal("expected error for malformed pattern")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the failing rule, got %v", err)
	}
}

func TestNewRejectsUnnamedRule(t *testing.T) {
	rules := []Rule{{Pattern: `\d+`, Enabled: true}}
	if _, err := New(rules, false, false); err == nil {
		t.Fatal("expected error for unnamed rule")
	}
}

func TestApplyRunsRulesInDeclarationOrder(t *testing.T) {
	// The first rule rewrites "alpha" to "beta"; the second removes "beta".
	// Run in order, both regions vanish; run reversed, "alpha" would turn
	// into a surviving "beta".
	rules := []Rule{
		{Name: "alpha-to-beta", Pattern: `alpha`, Replacement: "beta", Enabled: true},
		{Name: "drop-beta", Pattern: `beta`, Replacement: "", Enabled: true},
	}

	f, err := New(rules, false, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := f.Apply("alpha and beta"); got != " and " {
		t.Errorf("Apply = %q, want %q", got, " and ")
	}
}

func TestApplySkipsDisabledRules(t *testing.T) {
	rules := []Rule{
		{Name: "drop-foo", Pattern: `foo`, Replacement: "", Enabled: false},
		{Name: "drop-bar", Pattern: `bar`, Replacement: "", Enabled: true},
	}

	f, err := New(rules, false, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := f.Apply("foo bar"); got != "foo " {
		t.Errorf("Apply = %q, want disabled rule skipped", got)
	}
}

func TestApplyRemovesURLsBeforeDigits(t *testing.T) {
	f, err := New(nil, true, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := f.Apply("Visit https://example.com/page123 for details. Call 555-1234.")
	if strings.Contains(got, "example") || strings.Contains(got, "123") {
		t.Errorf("Apply = %q, URL and digits should be gone", got)
	}
	// The URL vanishes whole; a digits-first order would leave
	// "https://example.com/page" behind.
	if strings.Contains(got, "https") {
		t.Errorf("Apply = %q, URL scheme survived", got)
	}
	if got != "Visit  for details. Call -." {
		t.Errorf("Apply = %q", got)
	}
}

func TestApplyRemovesBareWWWReferences(t *testing.T) {
	f, err := New(nil, true, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := f.Apply("See www.courtlistener.com for dockets."); strings.Contains(got, "www") {
		t.Errorf("Apply = %q, www reference survived", got)
	}
}

func TestApplyURLRemovalOffLeavesURLs(t *testing.T) {
	f, err := New(nil, false, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	text := "Visit https://example.com/page123 for details."
	if got := f.Apply(text); got != text {
		t.Errorf("Apply = %q, want input unchanged", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	f, err := New(DefaultRules(), true, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	inputs := []string{
		"The court held [1] that § 12 applies (see 45 F.2d 123). Visit https://example.com/op1.",
		"Page 3 of 17\nThe appellant argued, inter alia, that the search was unlawful.",
		"Plain prose with nothing to clean.",
		"",
	}
	for _, input := range inputs {
		once := f.Apply(input)
		twice := f.Apply(once)
		if once != twice {
			t.Errorf("Apply not idempotent on %q:\n once:  %q\n twice: %q", input, once, twice)
		}
	}
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	if len(rules) == 0 {
		t.Fatal("no default rules")
	}

	// Every stock rule compiles and ships enabled.
	for _, rule := range rules {
		if _, err := rule.Compile(); err != nil {
			t.Errorf("default rule %q does not compile: %v", rule.Name, err)
		}
		if !rule.Enabled {
			t.Errorf("default rule %q ships disabled", rule.Name)
		}
	}

	f, err := New(rules, false, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"footnote_marker", "The rule applies.[3] So held.", "The rule applies. So held."},
		{"section_symbol", "Under § 1983 the claim fails.", "Under section 1983 the claim fails."},
		{"double_section", "See §§ 12-14 for exceptions.", "See section 12-14 for exceptions."},
		{"latin_jargon", "The appellant argued, inter alia, that venue was improper.", "The appellant argued, , that venue was improper."},
		{"empty_brackets", "The record [ ] shows ( ) nothing.", "The record  shows  nothing."},
		{"page_header", "before\nPage 2 of 9\nafter", "before\n\nafter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Apply(tc.in); got != tc.want {
				t.Errorf("Apply(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRulesAndDescribe(t *testing.T) {
	rules := []Rule{
		{Name: "first", Pattern: `a`, Enabled: true},
		{Name: "second", Pattern: `b`, Enabled: false},
	}
	f, err := New(rules, false, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := f.Rules()
	if len(got) != 2 || got[0].Name != "first" || got[1].Name != "second" {
		t.Errorf("Rules() = %+v, want declaration order preserved", got)
	}

	desc := f.Describe()
	if !strings.Contains(desc, "first") || !strings.Contains(desc, "enabled") {
		t.Errorf("Describe() missing enabled rule: %q", desc)
	}
	if !strings.Contains(desc, "second") || !strings.Contains(desc, "disabled") {
		t.Errorf("Describe() missing disabled rule: %q", desc)
	}
}
