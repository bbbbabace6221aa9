// Package pipeline orchestrates the caselaw-to-speech transform: citation
// detection over the original text, span rewriting, artifact filtering, and
// sentence normalization, in strict sequence. Each stage sees only the
// previous stage's output, nothing is retried, and no partial result is
// ever returned.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/coolbeans/oratio/pkg/artifact"
	"github.com/coolbeans/oratio/pkg/citation"
	"github.com/coolbeans/oratio/pkg/rewrite"
	"github.com/coolbeans/oratio/pkg/sentence"
	"github.com/coolbeans/oratio/pkg/tts"
)

// Pipeline is a validated, ready-to-run processing pipeline. Build one with
// New; a Pipeline holds no per-run state, so a single instance may process
// texts from many goroutines concurrently.
type Pipeline struct {
	cfg      Config
	detector citation.Detector
	filter   *artifact.Filter
	abbrevs  map[string]string
	dict     *tts.Dictionary
	logger   *zap.Logger
}

// Registry returns a composite detector preloaded with the detectors the
// pipeline knows by name. Today that is the regex caselaw detector;
// jurisdiction-specific detectors register here.
func Registry() *citation.Composite {
	registry := citation.NewComposite()
	// Registration of the built-in detector cannot collide in a fresh registry.
	_ = registry.Register(citation.NewCaselawDetector())
	return registry
}

// New validates the configuration and builds a pipeline using the named
// detector from the registry. All configuration problems surface here as
// *ConfigError, before any text is processed: unsupported strategy, unknown
// detector name, malformed artifact rule. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) (*Pipeline, error) {
	registry := Registry()
	name := cfg.Detector
	if name == "" {
		name = "caselaw"
	}
	detector, ok := registry.Get(name)
	if !ok {
		return nil, &ConfigError{
			Field: "detector",
			Err:   fmt.Errorf("unknown detector %q (registered: %v)", name, registry.List()),
		}
	}
	return NewWithDetector(cfg, detector, logger)
}

// NewWithDetector builds a pipeline around a caller-supplied detector,
// bypassing the registry. This is the substitution point for alternative or
// composite detectors.
func NewWithDetector(cfg Config, detector citation.Detector, logger *zap.Logger) (*Pipeline, error) {
	if detector == nil {
		return nil, &ConfigError{Field: "detector", Err: fmt.Errorf("detector cannot be nil")}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := cfg.Citation.Validate(); err != nil {
		return nil, &ConfigError{Field: "citation.kind", Err: err}
	}

	rules := cfg.ArtifactRules
	if rules == nil {
		rules = artifact.DefaultRules()
	}
	filter, err := artifact.New(rules, cfg.RemoveURLs, cfg.RemoveDigits)
	if err != nil {
		return nil, &ConfigError{Field: "artifact_rules", Err: err}
	}

	abbrevs := cfg.Abbreviations
	if abbrevs == nil {
		abbrevs = tts.DefaultAbbreviations()
	}

	var dict *tts.Dictionary
	if cfg.DictionaryFilter {
		dict = tts.NewDictionary()
		if cfg.DictionaryPath != "" {
			if err := dict.Load(cfg.DictionaryPath); err != nil {
				return nil, &ConfigError{Field: "dictionary_path", Err: err}
			}
		}
	}

	return &Pipeline{
		cfg:      cfg,
		detector: detector,
		filter:   filter,
		abbrevs:  abbrevs,
		dict:     dict,
		logger:   logger,
	}, nil
}

// Process runs the full transform over one text and returns TTS-ready
// prose. The detector runs exactly once, over the original text; every
// reported span is validated against that text before any rewriting. On
// any failure no partial output is returned.
func (p *Pipeline) Process(text string) (string, error) {
	spans, err := p.detector.Detect(text)
	if err != nil {
		return "", &DetectionError{Detector: p.detector.Name(), Err: err}
	}
	if invalid := firstInvalidSpan(text, spans); invalid != nil {
		return "", &DetectionError{
			Detector: p.detector.Name(),
			Span:     invalid,
			Err:      fmt.Errorf("span exceeds text bounds (len %d)", len(text)),
		}
	}
	p.logger.Debug("citations detected",
		zap.String("detector", p.detector.Name()),
		zap.Int("spans", len(spans)),
		zap.Int("chars", len(text)))

	rewritten, _, err := rewrite.Rewrite(text, spans, p.cfg.Citation)
	if err != nil {
		return "", fmt.Errorf("rewrite stage: %w", err)
	}
	p.logger.Debug("citations rewritten",
		zap.Stringer("strategy", p.cfg.Citation),
		zap.Int("chars", len(rewritten)))

	filtered := p.filter.Apply(rewritten)
	p.logger.Debug("artifacts filtered",
		zap.Bool("remove_urls", p.cfg.RemoveURLs),
		zap.Bool("remove_digits", p.cfg.RemoveDigits),
		zap.Int("chars", len(filtered)))

	normalized := sentence.Normalize(filtered)

	result := normalized
	if p.cfg.ExpandAbbreviations {
		result = tts.ExpandAbbreviations(result, p.abbrevs)
	}
	if p.cfg.NormalizeNumbers && !p.cfg.RemoveDigits {
		result = tts.NormalizeNumbers(result)
	}
	if p.dict != nil {
		result = p.dict.Filter(result)
		p.logger.Debug("dictionary filtered",
			zap.Int("words", p.dict.Len()),
			zap.Int("chars", len(result)))
	}
	if p.cfg.SSMLOutput {
		result = tts.SSML(result)
	}

	p.logger.Info("text processed",
		zap.Int("chars_in", len(text)),
		zap.Int("chars_out", len(result)),
		zap.Int("citations", len(spans)))
	return result, nil
}

// firstInvalidSpan returns the first span that does not fit the text, or
// nil when all spans are in range.
func firstInvalidSpan(text string, spans []citation.Span) *citation.Span {
	for i := range spans {
		s := spans[i]
		if s.Start < 0 || s.Start >= s.End || s.End > len(text) {
			return &spans[i]
		}
	}
	return nil
}
