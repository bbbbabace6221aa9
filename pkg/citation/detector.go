package citation

// Detector locates citation spans in raw text.
// Implementations must be safe for concurrent use and must report spans with
// byte offsets valid for exactly the text they were given: the caller owns
// the decision of what to do with the spans, and offsets are never adjusted
// after the text changes.
type Detector interface {
	// Name returns the detector's registry name (e.g. "caselaw").
	Name() string

	// Detect extracts all citation spans from the text, sorted by start
	// offset. Returns an empty slice (not nil) when no citations are found.
	Detect(text string) ([]Span, error)
}
