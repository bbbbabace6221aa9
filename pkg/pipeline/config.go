package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/oratio/pkg/artifact"
	"github.com/coolbeans/oratio/pkg/rewrite"
)

// Config is the full configuration for one pipeline run. It is treated as
// immutable once the pipeline is built; the CLI maps its flags onto this
// struct and library callers populate it directly or load it from YAML.
type Config struct {
	// Citation selects the rewrite strategy applied to detected spans.
	Citation rewrite.Strategy `yaml:"citation"`

	// Detector names the registered citation detector to run. Empty means
	// the default caselaw detector.
	Detector string `yaml:"detector,omitempty"`

	// ArtifactRules is the ordered rule sequence for the artifact filter.
	// Nil means artifact.DefaultRules(); an explicit empty slice disables
	// rule-based cleaning.
	ArtifactRules []artifact.Rule `yaml:"artifact_rules,omitempty"`

	// RemoveDigits strips every digit character from the cleaned text.
	RemoveDigits bool `yaml:"remove_digits"`

	// RemoveURLs strips URL-shaped tokens before digit removal.
	RemoveURLs bool `yaml:"remove_urls"`

	// ExpandAbbreviations substitutes spoken forms for legal abbreviations
	// after normalization. Abbreviations overrides the default table.
	ExpandAbbreviations bool              `yaml:"expand_abbreviations"`
	Abbreviations       map[string]string `yaml:"abbreviations,omitempty"`

	// DictionaryFilter keeps only dictionary-recognized words in the final
	// text, dropping residual debris the pattern-based passes missed.
	// DictionaryPath merges a custom word list (one word per line) into the
	// built-in vocabulary.
	DictionaryFilter bool   `yaml:"dictionary_filter"`
	DictionaryPath   string `yaml:"dictionary_path,omitempty"`

	// NormalizeNumbers rewrites ranges, section symbols and dates into
	// speakable prose. Ignored when RemoveDigits is set, since the digits
	// it produces would be stripped anyway.
	NormalizeNumbers bool `yaml:"normalize_numbers"`

	// SSMLOutput wraps the final text in an SSML document.
	SSMLOutput bool `yaml:"ssml_output"`
}

// DefaultConfig returns the stock configuration: remove citations, apply
// the default artifact rules, keep digits and URLs, plain prose output.
func DefaultConfig() Config {
	return Config{
		Citation:      rewrite.Strategy{Kind: rewrite.Remove},
		ArtifactRules: artifact.DefaultRules(),
	}
}

// LoadConfig reads a YAML configuration file. Fields not present keep their
// zero values; callers typically start from DefaultConfig and overlay.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadRules reads an ordered artifact rule sequence from a YAML file of the
// form:
//
//	- name: footnote-markers
//	  pattern: '\[\d+\]'
//	  replacement: ""
//	  enabled: true
func LoadRules(path string) ([]artifact.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	var rules []artifact.Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return rules, nil
}
