package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coolbeans/oratio/pkg/artifact"
	"github.com/coolbeans/oratio/pkg/citation"
	"github.com/coolbeans/oratio/pkg/pipeline"
	"github.com/coolbeans/oratio/pkg/rewrite"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "oratio",
		Short: "Caselaw text filter for speech synthesis",
		Long: `Oratio prepares legal caselaw text for text-to-speech playback.

It removes or replaces case citations, strips non-prose artifacts
(footnote markers, section symbols, boilerplate, URLs, digit runs),
and normalizes the remaining prose into well-formed sentences that a
speech synthesizer can read without stumbling.`,
		Version: version,
	}

	rootCmd.AddCommand(processCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(rulesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func processCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [files...]",
		Short: "Process caselaw documents for TTS",
		Long: `Process plain-text caselaw documents and emit TTS-ready prose.

A single document comes from --source or a positional argument; several
positional arguments are processed as a batch with the same configuration.

Example:
  oratio process --source opinion.txt --output spoken.txt
  oratio process --source opinion.txt --citation-strategy replace --placeholder " [CITATION] "
  oratio process --source opinion.txt --remove-urls --remove-digits --ssml
  oratio process opinions/*.txt --output-dir spoken/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			outputDir, _ := cmd.Flags().GetString("output-dir")
			strategy, _ := cmd.Flags().GetString("citation-strategy")
			placeholder, _ := cmd.Flags().GetString("placeholder")
			detector, _ := cmd.Flags().GetString("detector")
			removeDigits, _ := cmd.Flags().GetBool("remove-digits")
			removeURLs, _ := cmd.Flags().GetBool("remove-urls")
			expandAbbrevs, _ := cmd.Flags().GetBool("expand-abbreviations")
			normalizeNumbers, _ := cmd.Flags().GetBool("normalize-numbers")
			ssml, _ := cmd.Flags().GetBool("ssml")
			configPath, _ := cmd.Flags().GetString("config")
			rulesPath, _ := cmd.Flags().GetString("rules")
			dictFilter, _ := cmd.Flags().GetBool("use-dictionary-filter")
			customDict, _ := cmd.Flags().GetString("custom-dictionary")
			verbose, _ := cmd.Flags().GetBool("verbose")

			sources := args
			if source != "" {
				sources = append([]string{source}, sources...)
			}
			if len(sources) == 0 {
				return fmt.Errorf("no input: pass --source or positional file arguments")
			}
			if output != "" && len(sources) > 1 {
				return fmt.Errorf("--output only works with a single input; use --output-dir for a batch")
			}

			cfg := pipeline.DefaultConfig()
			if configPath != "" {
				loaded, err := pipeline.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags override the config file.
			if cmd.Flags().Changed("citation-strategy") || configPath == "" {
				cfg.Citation = rewrite.Strategy{
					Kind:        rewrite.StrategyKind(strategy),
					Placeholder: placeholder,
				}
			}
			if detector != "" {
				cfg.Detector = detector
			}
			if cmd.Flags().Changed("remove-digits") {
				cfg.RemoveDigits = removeDigits
			}
			if cmd.Flags().Changed("remove-urls") {
				cfg.RemoveURLs = removeURLs
			}
			if cmd.Flags().Changed("expand-abbreviations") {
				cfg.ExpandAbbreviations = expandAbbrevs
			}
			if cmd.Flags().Changed("normalize-numbers") {
				cfg.NormalizeNumbers = normalizeNumbers
			}
			if cmd.Flags().Changed("ssml") {
				cfg.SSMLOutput = ssml
			}
			if cmd.Flags().Changed("use-dictionary-filter") {
				cfg.DictionaryFilter = dictFilter
			}
			if customDict != "" {
				cfg.DictionaryPath = customDict
			}
			if rulesPath != "" {
				rules, err := pipeline.LoadRules(rulesPath)
				if err != nil {
					return err
				}
				cfg.ArtifactRules = rules
			}

			logger := zap.NewNop()
			if verbose {
				devLogger, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("failed to build logger: %w", err)
				}
				defer devLogger.Sync()
				logger = devLogger
			}

			// One pipeline, shared across the whole batch.
			p, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}

			for _, src := range sources {
				data, err := os.ReadFile(src)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", src, err)
				}

				result, err := p.Process(string(data))
				if err != nil {
					return fmt.Errorf("%s: %w", src, err)
				}

				dest := output
				if outputDir != "" {
					dest = filepath.Join(outputDir, filepath.Base(src))
				}
				if dest == "" {
					fmt.Println(result)
					continue
				}
				if err := os.WriteFile(dest, []byte(result+"\n"), 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				fmt.Printf("Wrote processed text to: %s\n", dest)
			}
			return nil
		},
	}

	cmd.Flags().String("source", "", "Path to the input caselaw document (plain text)")
	cmd.Flags().String("output", "", "Path for the processed output (default: stdout)")
	cmd.Flags().String("output-dir", "", "Directory for batch output, one file per input")
	cmd.Flags().String("citation-strategy", "remove", "Citation handling: remove or replace")
	cmd.Flags().String("placeholder", " [CITATION] ", "Placeholder text for the replace strategy")
	cmd.Flags().String("detector", "", "Citation detector to use (default: caselaw)")
	cmd.Flags().Bool("remove-digits", false, "Strip every digit from the output")
	cmd.Flags().Bool("remove-urls", false, "Strip URL tokens from the output")
	cmd.Flags().Bool("expand-abbreviations", false, "Expand legal abbreviations to spoken forms")
	cmd.Flags().Bool("normalize-numbers", false, "Rewrite ranges, sections and dates as speakable prose")
	cmd.Flags().Bool("ssml", false, "Emit SSML instead of plain prose")
	cmd.Flags().Bool("use-dictionary-filter", false, "Keep only dictionary-recognized words")
	cmd.Flags().String("custom-dictionary", "", "Path to a custom word list, one word per line")
	cmd.Flags().String("config", "", "Path to a YAML pipeline configuration file")
	cmd.Flags().String("rules", "", "Path to a YAML artifact rule file (overrides defaults)")
	cmd.Flags().Bool("verbose", false, "Log pipeline stages")

	return cmd
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report citation statistics for a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("failed to read source: %w", err)
			}

			stats, err := citation.Stats(citation.NewCaselawDetector(), string(data))
			if err != nil {
				return err
			}

			encoded, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
			return nil
		},
	}

	cmd.Flags().String("source", "", "Path to the input caselaw document (plain text)")
	return cmd
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the default artifact rules in application order",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := artifact.New(artifact.DefaultRules(), false, false)
			if err != nil {
				return err
			}
			fmt.Print(filter.Describe())
			return nil
		},
	}
}
