// Package sentence re-segments rewritten caselaw text into well-formed
// sentences and repairs the spacing and punctuation artifacts that span
// removal leaves behind. The output contract is TTS-readiness: every
// sentence ends with exactly one terminal mark and is separated from the
// next by exactly one space, with paragraph breaks preserved as blank lines.
package sentence

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// paragraphBreakPattern matches two or more consecutive newlines, which
	// are preserved as a single paragraph break.
	paragraphBreakPattern = regexp.MustCompile(`\n{2,}`)

	// whitespaceRunPattern collapses any whitespace run inside a paragraph.
	whitespaceRunPattern = regexp.MustCompile(`\s+`)

	// spaceBeforePunctPattern removes space left before punctuation when a
	// citation between a word and its punctuation was deleted.
	spaceBeforePunctPattern = regexp.MustCompile(`\s+([.,;:!?])`)

	// weakBeforeStrongPattern collapses a stray comma or semicolon that now
	// abuts a terminal mark ("held, ." after removal) into the stronger
	// terminal punctuation.
	weakBeforeStrongPattern = regexp.MustCompile(`[,;]\s*([.!?])`)

	// doubledCommaPattern and doubledSemicolonPattern collapse repeats.
	doubledCommaPattern     = regexp.MustCompile(`,\s*,`)
	doubledSemicolonPattern = regexp.MustCompile(`;\s*;`)

	// repeatedTerminalPattern reduces "!!!" or "?." runs to the first mark.
	repeatedTerminalPattern = regexp.MustCompile(`([.!?])[.!?]+`)

	// emptyBracketPattern removes parentheses or brackets whose contents
	// were entirely removed.
	emptyBracketPattern = regexp.MustCompile(`\(\s*\)|\[\s*\]`)

	// missingSpacePattern restores the space after sentence or clause
	// punctuation when it was lost ("rule.The court"). Restricted to a
	// following letter so decimals and numeric lists stay intact.
	missingSpacePattern = regexp.MustCompile(`([.,;:!?])([A-Za-z(])`)

	// danglingOpenPattern removes an opening parenthesis followed directly
	// by sentence punctuation, the remnant of a removed parenthetical.
	danglingOpenPattern = regexp.MustCompile(`\([\s]*([.,;!?])`)
)

// abbreviationGuard lists lowercase tokens that end with a period without
// ending a sentence. Checked against the word immediately preceding a
// candidate boundary.
var abbreviationGuard = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "st": true,
	"no": true, "nos": true, "v": true, "vs": true, "cf": true,
	"e.g": true, "i.e": true, "al": true, "seq": true, "jr": true,
	"sr": true, "inc": true, "co": true, "corp": true, "ltd": true,
	"u.s": true, "u.s.c": true, "c.f.r": true, "sec": true, "art": true,
	"rev": true, "stat": true, "approx": true,
}

// Normalize cleans whitespace and punctuation and re-joins the text into
// TTS-ready prose. Runs of whitespace collapse to a single space, except
// that two or more consecutive newlines survive as one paragraph break.
// Sentence-initial lowercase fragments left by span removal are
// re-capitalized; the policy is deterministic: the first letter of every
// segmented sentence is uppercased.
func Normalize(text string) string {
	// Line endings first, so paragraph detection sees plain \n.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	paragraphs := paragraphBreakPattern.Split(text, -1)
	cleaned := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		normalized := normalizeParagraph(paragraph)
		if normalized != "" {
			cleaned = append(cleaned, normalized)
		}
	}
	return strings.Join(cleaned, "\n\n")
}

// normalizeParagraph flattens one paragraph to a single line of well-formed
// sentences.
func normalizeParagraph(paragraph string) string {
	flat := whitespaceRunPattern.ReplaceAllString(paragraph, " ")
	flat = strings.TrimSpace(flat)
	if flat == "" {
		return ""
	}

	flat = repairPunctuation(flat)

	sentences := Split(flat)
	for i, s := range sentences {
		s = strings.TrimSpace(s)
		s = capitalizeFirst(s)
		if !strings.ContainsAny(s[len(s)-1:], ".!?") {
			s += "."
		}
		sentences[i] = s
	}
	return strings.Join(sentences, " ")
}

// repairPunctuation fixes the punctuation artifacts of span removal in a
// fixed order: dangling openers, empty brackets, spacing before marks,
// doubled weak marks, weak marks that collapsed into terminals, repeated
// terminals, and finally missing spaces after punctuation.
func repairPunctuation(text string) string {
	text = danglingOpenPattern.ReplaceAllString(text, "$1")
	text = emptyBracketPattern.ReplaceAllString(text, "")
	text = spaceBeforePunctPattern.ReplaceAllString(text, "$1")
	text = doubledCommaPattern.ReplaceAllString(text, ",")
	text = doubledSemicolonPattern.ReplaceAllString(text, ";")
	text = weakBeforeStrongPattern.ReplaceAllString(text, "$1")
	text = repeatedTerminalPattern.ReplaceAllString(text, "$1")
	text = emptyBracketPattern.ReplaceAllString(text, "")
	text = missingSpacePattern.ReplaceAllString(text, "$1 $2")
	// Bracket removal above can leave a double space behind.
	text = whitespaceRunPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Split segments prose into sentences. A boundary is a terminal mark
// followed by whitespace and an upper-case letter, opening quote or digit,
// unless the word before the mark is a known abbreviation or a single
// initial. Sentences keep their terminal punctuation. Returns nil for
// blank input.
func Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if !boundaryFollows(text, i) {
			continue
		}
		if c == '.' && guardedAbbreviation(text, i) {
			continue
		}
		// Closing quotes or parens attached to the mark stay with the
		// sentence they close.
		end := i + 1
		for end < len(text) && (text[end] == '"' || text[end] == '\'' || text[end] == ')') {
			end++
		}
		sentences = append(sentences, strings.TrimSpace(text[start:end]))
		start = end
		i = end - 1
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// boundaryFollows reports whether the text after position i (a terminal
// mark) looks like the start of a new sentence: end of text, or whitespace
// followed by an upper-case letter, digit, or opening quote.
func boundaryFollows(text string, i int) bool {
	j := i + 1
	// Consume closing quotes or parens attached to the mark.
	for j < len(text) && (text[j] == '"' || text[j] == '\'' || text[j] == ')') {
		j++
	}
	if j >= len(text) {
		return true
	}
	if text[j] != ' ' && text[j] != '\n' && text[j] != '\t' {
		return false
	}
	for j < len(text) && (text[j] == ' ' || text[j] == '\n' || text[j] == '\t') {
		j++
	}
	if j >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[j:])
	return unicode.IsUpper(next) || unicode.IsDigit(next) || next == '"' || next == '\''
}

// guardedAbbreviation reports whether the period at position i terminates a
// known abbreviation or single initial rather than a sentence.
func guardedAbbreviation(text string, i int) bool {
	start := i
	for start > 0 {
		c := text[start-1]
		if c == '.' || c == '\'' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			start--
			continue
		}
		break
	}
	word := strings.ToLower(strings.TrimSuffix(text[start:i], "."))
	if word == "" {
		return false
	}
	if abbreviationGuard[word] {
		return true
	}
	// Single upper-case initial, e.g. "John Q. Public".
	return len(word) == 1 && unicode.IsUpper(rune(text[start]))
}

// capitalizeFirst uppercases the first letter of a sentence fragment left
// lowercase by removal of its original opening material.
func capitalizeFirst(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			if unicode.IsLower(r) {
				return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
			}
			return s
		}
		// Only skip over leading quotes or parens, not whole words.
		if !unicode.IsPunct(r) && !unicode.IsSpace(r) {
			return s
		}
	}
	return s
}
