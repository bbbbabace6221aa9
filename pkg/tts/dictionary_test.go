package tts

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWordList(t *testing.T, words string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(words), 0644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	return path
}

func TestDictionaryLoad(t *testing.T) {
	d := NewDictionary()
	base := d.Len()

	path := writeWordList(t, "Zylophant\n\nquibble\n")
	if err := d.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.Len() != base+2 {
		t.Errorf("Len = %d, want %d (blank lines skipped)", d.Len(), base+2)
	}
	if !d.Contains("zylophant") || !d.Contains("Zylophant") {
		t.Error("loaded words should match case-insensitively")
	}
	if !d.Contains("quibble") {
		t.Error("quibble should be loaded")
	}
}

func TestDictionaryLoadMissingFile(t *testing.T) {
	d := NewDictionary()
	if err := d.Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing dictionary file")
	}
}

func TestDictionaryFilter(t *testing.T) {
	d := NewDictionary()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "recognized_prose_unchanged",
			in:   "The court held that the search was unlawful.",
			want: "The court held that the search was unlawful.",
		},
		{
			name: "unknown_token_dropped",
			in:   "The court qzxv held.",
			want: "The court held.",
		},
		{
			name: "overlong_token_dropped",
			in:   "The ruling Supercalifragilisticexpialidocious stands.",
			want: "The ruling stands.",
		},
		{
			name: "numbers_kept",
			in:   "The year 1925 remains.",
			want: "The year 1925 remains.",
		},
		{
			name: "possessive_of_known_word_kept",
			in:   "The court's order stands.",
			want: "The court's order stands.",
		},
		{
			name: "hyphenated_known_parts_kept",
			in:   "A well-known rule stands.",
			want: "A well-known rule stands.",
		},
		{
			name: "hyphenated_unknown_part_dropped",
			in:   "A qzxv-known rule stands.",
			want: "A rule stands.",
		},
		{
			name: "single_letters_kept",
			in:   "Exhibit A was read.",
			want: "Exhibit A was read.",
		},
		{
			name: "legal_abbreviations_kept",
			in:   "The rule stands, etc.",
			want: "The rule stands, etc.",
		},
		{
			name: "punctuation_kept_and_respaced",
			in:   "The court , held .",
			want: "The court, held.",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Filter(tc.in); got != tc.want {
				t.Errorf("Filter(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDictionaryFilterBreaksConcatenatedNames(t *testing.T) {
	d := NewDictionary()
	path := writeWordList(t, "bianco\nbrandi\njones\n")
	if err := d.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := d.Filter("Counsel BiancoBrandiJones moved.")
	if got != "Counsel Bianco Brandi Jones moved." {
		t.Errorf("Filter = %q, want concatenated name broken apart", got)
	}
}

func TestDictionaryFilterLeavesKnownLongWordsAlone(t *testing.T) {
	d := NewDictionary()
	path := writeWordList(t, "constitutionalism\n")
	if err := d.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := d.Filter("The time of constitutionalism remains.")
	if got != "The time of constitutionalism remains." {
		t.Errorf("Filter = %q, dictionary word should stay intact", got)
	}
}

func TestDictionaryFilterIsIdempotent(t *testing.T) {
	d := NewDictionary()
	inputs := []string{
		"The court qzxv held that the search was unlawful.",
		"Counsel moved , and the court agreed .",
		"Exhibit A was read. The year 1925 remains.",
	}
	for _, in := range inputs {
		once := d.Filter(in)
		twice := d.Filter(once)
		if once != twice {
			t.Errorf("Filter not idempotent on %q:\n once:  %q\n twice: %q", in, once, twice)
		}
	}
}
