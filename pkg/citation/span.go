// Package citation defines citation spans over raw caselaw text and the
// detector boundary that locates them. Detection is pluggable: anything
// implementing Detector can supply spans, and a Composite merges the results
// of several detectors into one deduplicated sequence.
package citation

import (
	"fmt"
	"sort"
)

// Type classifies the kind of citation a span represents.
type Type string

const (
	// TypeFull is a complete case citation with reporter, volume and page
	// (e.g. "Brown v. Board of Education, 347 U.S. 483 (1954)").
	TypeFull Type = "full"

	// TypeShort is a short-form citation back to an earlier full citation
	// (e.g. "Brown, 347 U.S. at 489").
	TypeShort Type = "short"

	// TypeSupra is a supra reference (e.g. "Brown, supra, at 489").
	TypeSupra Type = "supra"

	// TypeID is an id. citation referring to the immediately preceding
	// authority.
	TypeID Type = "id"

	// TypeStatute covers statutory and code citations (U.S.C., C.F.R.).
	TypeStatute Type = "statute"
)

// Metadata holds the parsed components of a citation.
// Fields are empty when the detector could not extract them.
type Metadata struct {
	Reporter      string `json:"reporter,omitempty"`
	Volume        string `json:"volume,omitempty"`
	Page          string `json:"page,omitempty"`
	Year          string `json:"year,omitempty"`
	Parenthetical string `json:"parenthetical,omitempty"`
}

// Span is a contiguous citation region within one snapshot of a text.
// Offsets are byte offsets into that snapshot and become invalid the moment
// the text is rewritten; a span is never adjusted in place.
type Span struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Text     string   `json:"text"`
	Type     Type     `json:"type"`
	Metadata Metadata `json:"metadata"`
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// ValidateSpans checks every span against the text it was detected on.
// A span with Start < 0, Start >= End, or End beyond the text is rejected
// outright rather than clamped, since clamping could corrupt unrelated text
// downstream.
func ValidateSpans(text string, spans []Span) error {
	for i, span := range spans {
		if span.Start < 0 || span.Start >= span.End || span.End > len(text) {
			return fmt.Errorf("span %d [%d:%d) out of range for text of length %d",
				i, span.Start, span.End, len(text))
		}
	}
	return nil
}

// SortByStart sorts spans by start offset ascending, breaking ties by the
// longer span first so that merging keeps the widest region.
func SortByStart(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})
}

// MergeOverlapping sorts the spans and merges overlapping or touching spans
// into a single span covering their union, so a region is never processed
// twice. The merged span keeps the type and metadata of the earliest
// contributing span; Text is not recomputed, so consumers of merged spans
// must slice the source text by offsets. The input slice is not modified.
func MergeOverlapping(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	SortByStart(sorted)

	merged := []Span{sorted[0]}
	for _, span := range sorted[1:] {
		last := &merged[len(merged)-1]
		if span.Start <= last.End {
			if span.End > last.End {
				last.End = span.End
			}
			continue
		}
		merged = append(merged, span)
	}
	return merged
}
