package rewrite

import (
	"strings"
	"testing"

	"github.com/coolbeans/oratio/pkg/citation"
)

func span(start, end int, text string) citation.Span {
	return citation.Span{Start: start, End: end, Text: text[start:end], Type: citation.TypeFull}
}

func TestRewriteEmptySpansIsNoOp(t *testing.T) {
	text := "The court held otherwise."

	for _, strategy := range []Strategy{
		{Kind: Remove},
		{Kind: Replace, Placeholder: "[CITATION]"},
	} {
		result, offsets, err := Rewrite(text, nil, strategy)
		if err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		if result != text {
			t.Errorf("Strategy %s: got %q, want input unchanged", strategy, result)
		}
		if pos, deleted := offsets.Translate(7); pos != 7 || deleted {
			t.Errorf("Translate(7) = (%d, %v), want (7, false)", pos, deleted)
		}
	}
}

func TestRewriteRemoveCollapsesAdjacentSpace(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		start    int
		end      int
		expected string
	}{
		{
			name:     "span_mid_text",
			text:     "See Carroll v. United States, 267 U.S. 132 (1925), for the rule.",
			start:    4,
			end:      50,
			expected: "See for the rule.",
		},
		{
			name:     "span_at_start",
			text:     "Id. at 12 the court agreed.",
			start:    0,
			end:      9,
			expected: "the court agreed.",
		},
		{
			name:     "span_at_end",
			text:     "The rule comes from Id. at 12",
			start:    20,
			end:      29,
			expected: "The rule comes from",
		},
		{
			name:     "whole_text",
			text:     "Id. at 12",
			start:    0,
			end:      9,
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, _, err := Rewrite(tc.text, []citation.Span{span(tc.start, tc.end, tc.text)}, Strategy{Kind: Remove})
			if err != nil {
				t.Fatalf("Rewrite failed: %v", err)
			}
			if result != tc.expected {
				t.Errorf("got %q, want %q", result, tc.expected)
			}
			if strings.Contains(result, "  ") {
				t.Errorf("output contains double space: %q", result)
			}
			if len(result) > len(tc.text) {
				t.Errorf("Remove grew the text: %d > %d", len(result), len(tc.text))
			}
		})
	}
}

func TestRewriteReplaceIsVerbatim(t *testing.T) {
	text := "See Carroll v. United States, 267 U.S. 132 (1925), for the rule."
	spans := []citation.Span{span(4, 50, text)}

	result, _, err := Rewrite(text, spans, Strategy{Kind: Replace, Placeholder: "[CITATION]"})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if result != "See [CITATION] for the rule." {
		t.Errorf("got %q", result)
	}

	// Length consistency: len(text) - sum(span lengths) + len(p)*count.
	want := len(text) - (50 - 4) + len("[CITATION]")
	if len(result) != want {
		t.Errorf("length = %d, want %d", len(result), want)
	}
}

func TestRewriteMergesOverlappingSpans(t *testing.T) {
	text := "head ABCDEFGHIJ tail"
	spans := []citation.Span{
		span(5, 10, text),
		span(8, 15, text), // overlaps the first
	}

	result, _, err := Rewrite(text, spans, Strategy{Kind: Replace, Placeholder: "[X]"})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if result != "head [X] tail" {
		t.Errorf("got %q, want single merged replacement", result)
	}

	// Merged region is counted once in the length property.
	want := len(text) - Removed(spans) + len("[X]")
	if len(result) != want {
		t.Errorf("length = %d, want %d", len(result), want)
	}
}

func TestRewriteMultipleSpansRightToLeft(t *testing.T) {
	text := "A cite one B cite two C"
	spans := []citation.Span{
		span(2, 10, text),  // "cite one"
		span(13, 21, text), // "cite two"
	}

	result, _, err := Rewrite(text, spans, Strategy{Kind: Remove})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if result != "A B C" {
		t.Errorf("got %q, want %q", result, "A B C")
	}
}

func TestRewriteOffsetMapTranslation(t *testing.T) {
	text := "See Carroll v. United States, 267 U.S. 132 (1925), for the rule."
	spans := []citation.Span{span(4, 50, text)}

	result, offsets, err := Rewrite(text, spans, Strategy{Kind: Remove})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	// "for" starts at 51 in the original and must land at its position in
	// the rewritten text.
	newPos, deleted := offsets.Translate(51)
	if deleted {
		t.Fatalf("offset 51 reported deleted")
	}
	if !strings.HasPrefix(result[newPos:], "for") {
		t.Errorf("Translate(51) = %d, result[%d:] = %q", newPos, newPos, result[newPos:])
	}

	// An offset inside the removed span is deleted.
	if _, deleted := offsets.Translate(10); !deleted {
		t.Errorf("offset inside removed span not reported deleted")
	}

	// Offsets before the span are untouched.
	if pos, deleted := offsets.Translate(1); pos != 1 || deleted {
		t.Errorf("Translate(1) = (%d, %v), want (1, false)", pos, deleted)
	}
}

func TestRewriteRejectsInvalidStrategy(t *testing.T) {
	_, _, err := Rewrite("text", nil, Strategy{Kind: "shout"})
	if err == nil {
		t.Fatal("expected error for unsupported strategy")
	}
}

func TestRewriteRejectsOutOfRangeSpan(t *testing.T) {
	text := "short"
	spans := []citation.Span{{Start: 2, End: 99}}
	if _, _, err := Rewrite(text, spans, Strategy{Kind: Remove}); err == nil {
		t.Fatal("expected error for out-of-range span")
	}

	spans = []citation.Span{{Start: 3, End: 3}}
	if _, _, err := Rewrite(text, spans, Strategy{Kind: Remove}); err == nil {
		t.Fatal("expected error for empty span")
	}
}

func TestStrategyValidate(t *testing.T) {
	if err := (Strategy{Kind: Remove}).Validate(); err != nil {
		t.Errorf("Remove should validate: %v", err)
	}
	if err := (Strategy{Kind: Replace, Placeholder: "[C]"}).Validate(); err != nil {
		t.Errorf("Replace should validate: %v", err)
	}
	if err := (Strategy{Kind: "mumble"}).Validate(); err == nil {
		t.Error("unsupported strategy should not validate")
	}
}
