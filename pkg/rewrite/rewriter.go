// Package rewrite applies a removal or replacement strategy to citation
// spans over a string. Spans are consumed in a single right-to-left pass so
// that earlier offsets stay valid while later regions are rewritten, and an
// offset map is returned so callers can translate pre-rewrite offsets into
// the rewritten text.
package rewrite

import (
	"fmt"
	"strings"

	"github.com/coolbeans/oratio/pkg/citation"
)

// StrategyKind selects how citation spans are rewritten.
type StrategyKind string

const (
	// Remove deletes each span, collapsing one adjacent space so no double
	// space results.
	Remove StrategyKind = "remove"

	// Replace substitutes each span with a placeholder string, verbatim.
	// The placeholder is expected to be self-spacing; the rewriter does not
	// infer padding.
	Replace StrategyKind = "replace"
)

// Strategy is the rewriting strategy applied uniformly to every span in one
// pass. Placeholder is only consulted for Replace.
type Strategy struct {
	Kind        StrategyKind `yaml:"kind" json:"kind"`
	Placeholder string       `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// Validate reports whether the strategy is supported.
func (s Strategy) Validate() error {
	switch s.Kind {
	case Remove, Replace:
		return nil
	default:
		return fmt.Errorf("unsupported rewrite strategy %q (want %q or %q)", s.Kind, Remove, Replace)
	}
}

// edit records one applied rewrite for offset translation: the half-open
// original region [start, end) was replaced by newLen bytes.
type edit struct {
	start  int
	end    int
	newLen int
}

// OffsetMap translates offsets in the pre-rewrite text to offsets in the
// rewritten text. Offsets inside a removed region are reported as deleted.
type OffsetMap struct {
	edits []edit // sorted by start ascending
}

// Translate maps a pre-rewrite offset to its post-rewrite position.
// For an offset inside a rewritten region it returns the position where the
// replacement begins and deleted=true (for Remove, the replacement is empty).
func (m *OffsetMap) Translate(offset int) (int, bool) {
	shift := 0
	for _, e := range m.edits {
		if offset < e.start {
			break
		}
		if offset < e.end {
			return e.start + shift, true
		}
		shift += e.newLen - (e.end - e.start)
	}
	return offset + shift, false
}

// Rewrite applies the strategy to every span over the text and returns the
// rewritten text plus an offset map. Overlapping or adjacent spans are
// merged first so no region is processed twice; an empty span set is a
// no-op. Spans out of range for the text are rejected.
func Rewrite(text string, spans []citation.Span, strategy Strategy) (string, *OffsetMap, error) {
	if err := strategy.Validate(); err != nil {
		return "", nil, err
	}
	if len(spans) == 0 {
		return text, &OffsetMap{}, nil
	}
	if err := citation.ValidateSpans(text, spans); err != nil {
		return "", nil, err
	}

	merged := citation.MergeOverlapping(spans)

	// Right-to-left so earlier offsets stay valid as later regions change.
	result := text
	edits := make([]edit, len(merged))
	for i := len(merged) - 1; i >= 0; i-- {
		span := merged[i]
		switch strategy.Kind {
		case Remove:
			start, end := widenForSpace(result, span.Start, span.End)
			result = result[:start] + result[end:]
			edits[i] = edit{start: start, end: end, newLen: 0}
		case Replace:
			result = result[:span.Start] + strategy.Placeholder + result[span.End:]
			edits[i] = edit{start: span.Start, end: span.End, newLen: len(strategy.Placeholder)}
		}
	}

	return result, &OffsetMap{edits: edits}, nil
}

// widenForSpace extends a removal region over the single space adjacent to
// it, preferring the space that follows, so deleting the span leaves no
// double space. No space is consumed where none existed, and at most one is
// consumed in total.
func widenForSpace(text string, start, end int) (int, int) {
	if end < len(text) && text[end] == ' ' {
		return start, end + 1
	}
	if start > 0 && text[start-1] == ' ' {
		return start - 1, end
	}
	return start, end
}

// Removed reports the total number of bytes of citation text (excluding any
// collapsed spacing) that the strategy would act on, after span merging.
// Used for length-consistency checks and reporting.
func Removed(spans []citation.Span) int {
	total := 0
	for _, span := range citation.MergeOverlapping(spans) {
		total += span.Len()
	}
	return total
}

// String describes the strategy for logs and error messages.
func (s Strategy) String() string {
	if s.Kind == Replace {
		return fmt.Sprintf("replace(%s)", strings.TrimSpace(s.Placeholder))
	}
	return string(s.Kind)
}
