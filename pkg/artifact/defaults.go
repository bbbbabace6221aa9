package artifact

// DefaultRules returns the stock artifact rule set for US caselaw text, in
// the order they are applied. The order matters and is part of the
// contract: parenthesized debris is removed before the empty-bracket
// cleanup, and boilerplate line rules run before inline rules so a line
// removal never leaves half-cleaned inline artifacts behind.
//
// Every rule ships enabled; callers disable individual rules by name or
// supply their own sequence.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:        "scholar-links",
			Pattern:     `\([^)]*"[^"]*(?:https?|scholar|google)[^"]*"[^)]*\)`,
			Replacement: "",
			Enabled:     true,
		},
		{
			Name:        "parenthetical-citations",
			Pattern:     `\([^)]*\d+\s*[A-Za-z\.]+\s*\d+[^)]*\)`,
			Replacement: "",
			Enabled:     true,
		},
		{
			Name:        "procedural-boilerplate",
			Pattern:     `(?m)^[ \t]*(?:CONFIDENTIAL|FOR PUBLICATION|NOT FOR PUBLICATION|SLIP OPINION|PUBLISH)[ \t]*$`,
			Replacement: "",
			Enabled:     true,
		},
		{
			Name:        "page-headers",
			Pattern:     `(?mi)^[ \t]*Page \d+ of \d+[ \t]*$`,
			Replacement: "",
			Enabled:     true,
		},
		{
			Name:        "footnote-markers",
			Pattern:     `\[\d+\]|[¹²³⁴⁵⁶⁷⁸⁹⁰]+`,
			Replacement: "",
			Enabled:     true,
		},
		{
			Name:        "section-symbols",
			Pattern:     `§§?\s*`,
			Replacement: "section ",
			Enabled:     true,
		},
		{
			Name:        "latin-jargon",
			Pattern:     `\b(?:inter alia|prima facie|de facto|de jure|amicus curiae|sua sponte)\b`,
			Replacement: "",
			Enabled:     true,
		},
		{
			Name:        "hereinafter",
			Pattern:     `\bhereinafter\s+referred\s+to\s+as\b`,
			Replacement: "",
			Enabled:     true,
		},
		{
			Name:        "empty-brackets",
			Pattern:     `\(\s*\)|\[\s*\]`,
			Replacement: "",
			Enabled:     true,
		},
	}
}
