package tts

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	// tokenPattern splits filter input into word tokens (letters, digits,
	// apostrophes, hyphens) and the punctuation marks worth keeping.
	tokenPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9'’\-]*|[.,;:!?]`)

	// longWordPattern finds suspiciously long alphabetic runs that are
	// usually several words concatenated without spaces, a common defect
	// in scraped caselaw ("BiancoBrandiJonesRudy").
	longWordPattern = regexp.MustCompile(`\b[A-Za-z]{12,}\b`)
)

// keepAbbreviations are legal tokens retained by the word filter even when
// the dictionary does not list them.
var keepAbbreviations = map[string]bool{
	"v": true, "vs": true, "etc": true, "ie": true, "eg": true,
	"co": true, "inc": true, "llc": true, "llp": true, "jr": true,
	"sr": true, "no": true, "id": true, "op": true,
}

// Dictionary is a case-insensitive word set used to keep recognized prose
// and drop residual citation or markup debris the pattern-based passes
// missed. Build one with NewDictionary and extend it with Load.
type Dictionary struct {
	words map[string]bool
}

// NewDictionary returns a dictionary preloaded with a base vocabulary of
// common English and legal terms.
func NewDictionary() *Dictionary {
	d := &Dictionary{words: make(map[string]bool, len(baseVocabulary))}
	for _, word := range baseVocabulary {
		d.words[word] = true
	}
	return d
}

// Load merges a custom dictionary file, one word per line, into the set.
// Blank lines are skipped; words are stored lowercase.
func (d *Dictionary) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			d.words[word] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return nil
}

// Contains reports whether the word is in the set, case-insensitively.
func (d *Dictionary) Contains(word string) bool {
	return d.words[strings.ToLower(word)]
}

// Len returns the number of words in the set.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Filter keeps only recognized words and essential punctuation. Unknown
// tokens are dropped; this is the last line of defense against citation
// fragments and scraped markup that survived the pattern-based passes.
// Kept besides dictionary words: punctuation, numeric tokens (digit policy
// belongs to the artifact filter), single letters, common legal
// abbreviations, contractions and hyphenated words whose base words are
// known. Long concatenated words are broken apart first so their component
// words can be judged individually.
func (d *Dictionary) Filter(text string) string {
	text = d.breakConcatenated(text)

	var kept []string
	for _, token := range tokenPattern.FindAllString(text, -1) {
		if keepToken(token, d) {
			kept = append(kept, token)
		}
	}

	result := strings.Join(kept, " ")
	result = spaceBeforeMarkPattern.ReplaceAllString(result, "$1")
	return strings.TrimSpace(result)
}

var spaceBeforeMarkPattern = regexp.MustCompile(`\s+([.,;:!?])`)

// keepToken decides whether one token survives the filter.
func keepToken(token string, d *Dictionary) bool {
	if len(token) == 1 && strings.ContainsAny(token, ".,;:!?") {
		return true
	}
	// Unlikely to be a real word at this length, and a TTS engine would
	// spell it out letter by letter.
	if len(token) > 20 {
		return false
	}
	if strings.ContainsAny(token, "0123456789") {
		return true
	}
	if d.Contains(token) {
		return true
	}
	lower := strings.ToLower(token)
	if len(token) == 1 {
		return true
	}
	if keepAbbreviations[lower] {
		return true
	}
	if i := strings.IndexAny(lower, "'’"); i >= 0 {
		return d.Contains(lower[:i])
	}
	if strings.Contains(lower, "-") {
		for _, part := range strings.Split(lower, "-") {
			if part != "" && !d.Contains(part) {
				return false
			}
		}
		return true
	}
	return false
}

// breakConcatenated splits long runs of letters at case transitions so
// concatenated names read as separate words instead of being spelled out.
// A long word the dictionary knows is left alone; a long word with no case
// transitions is left for the length cutoff in keepToken.
func (d *Dictionary) breakConcatenated(text string) string {
	for _, long := range longWordPattern.FindAllString(text, -1) {
		if d.Contains(long) {
			continue
		}
		var b strings.Builder
		last := 0
		for i := 1; i < len(long); i++ {
			if isLower(long[i-1]) && isUpper(long[i]) {
				b.WriteString(long[last:i])
				b.WriteByte(' ')
				last = i
			}
		}
		if last == 0 {
			continue
		}
		b.WriteString(long[last:])
		text = strings.ReplaceAll(text, long, b.String())
	}
	return text
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
