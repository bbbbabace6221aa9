package pipeline

import (
	"fmt"

	"github.com/coolbeans/oratio/pkg/citation"
)

// ConfigError reports an invalid pipeline configuration: a malformed
// artifact rule pattern, an unsupported rewrite strategy, or an unknown
// detector identifier. It is raised by Validate before any text is touched;
// a run that fails this way never reaches a rewriting stage.
type ConfigError struct {
	Field string // configuration field or rule name at fault
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid pipeline configuration (%s): %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DetectionError reports a failure at the detection boundary: the detector
// returned an error, or it reported a span that does not fit the text.
// Malformed spans fail the whole call rather than being clamped, since
// clamping could corrupt unrelated text.
type DetectionError struct {
	Detector string
	Span     *citation.Span // offending span, if one was identified
	Err      error
}

func (e *DetectionError) Error() string {
	if e.Span != nil {
		return fmt.Sprintf("detector %q returned invalid span [%d:%d): %v",
			e.Detector, e.Span.Start, e.Span.End, e.Err)
	}
	return fmt.Sprintf("detector %q failed: %v", e.Detector, e.Err)
}

func (e *DetectionError) Unwrap() error {
	return e.Err
}
