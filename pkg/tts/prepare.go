// Package tts performs the final formatting passes that make cleaned
// caselaw text comfortable for speech synthesizers: abbreviation expansion,
// speakable numbers and dates, and optional SSML output.
package tts

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	numericRangePattern = regexp.MustCompile(`(\d+)-(\d+)`)
	sectionSubPattern   = regexp.MustCompile(`§\s*(\d+)\.(\d+)`)
	sectionPattern      = regexp.MustCompile(`§\s*(\d+)`)
	datePattern         = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	sentenceEndPattern  = regexp.MustCompile(`([.!?])\s+`)
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DefaultAbbreviations maps the legal abbreviations that trip up speech
// engines to their spoken forms.
func DefaultAbbreviations() map[string]string {
	return map[string]string{
		"i.e.":   "that is",
		"e.g.":   "for example",
		"et al.": "and others",
		"etc.":   "etcetera",
		"v.":     "versus",
		"cf.":    "compare",
		"id.":    "the same",
		"Mr.":    "Mister",
		"Mrs.":   "Misses",
		"Dr.":    "Doctor",
		"No.":    "Number",
	}
}

// ExpandAbbreviations replaces each abbreviation with its expanded form.
// Longer abbreviations are expanded first so "U.S.C." is never clipped by a
// shorter entry, and matches are word-bounded so substrings inside words
// are left alone.
func ExpandAbbreviations(text string, abbreviations map[string]string) string {
	keys := make([]string, 0, len(abbreviations))
	for key := range abbreviations {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	result := text
	for _, abbrev := range keys {
		// QuoteMeta guarantees the pattern compiles.
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(abbrev))
		result = pattern.ReplaceAllString(result, abbreviations[abbrev])
	}
	return result
}

// NormalizeNumbers rewrites numeric expressions into speakable prose:
// ranges become "N to M", section symbols become the word "Section", and
// MM/DD/YYYY dates become month-name dates. Date rewriting walks matches
// right to left so earlier offsets stay valid.
func NormalizeNumbers(text string) string {
	result := numericRangePattern.ReplaceAllString(text, "$1 to $2")
	result = sectionSubPattern.ReplaceAllString(result, "Section $1 point $2")
	result = sectionPattern.ReplaceAllString(result, "Section $1")

	matches := datePattern.FindAllStringSubmatchIndex(result, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		idx := matches[i]
		month, _ := strconv.Atoi(result[idx[2]:idx[3]])
		day, _ := strconv.Atoi(result[idx[4]:idx[5]])
		year := result[idx[6]:idx[7]]
		if month < 1 || month > 12 {
			continue
		}
		spoken := fmt.Sprintf("%s %d, %s", monthNames[month-1], day, year)
		result = result[:idx[0]] + spoken + result[idx[1]:]
	}
	return result
}

// SSML wraps the text in a SSML document with medium prosodic breaks after
// sentence boundaries, for synthesizers that accept markup. XML-special
// characters are escaped first.
func SSML(text string) string {
	escaped := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	).Replace(text)

	escaped = sentenceEndPattern.ReplaceAllString(escaped, `$1<break strength="medium"/> `)
	return "<speak>" + escaped + "</speak>"
}
