package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show application settings",
	Long: `View the effective pipeline configuration.

Settings are read from config.toml in the configuration directory.
Keys that are absent fall back to their defaults.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := openServices(wireOptions{
		configDir:  configDir,
		corpusPath: corpusPath,
		source:     sourceName,
	})
	if err != nil {
		return err
	}
	defer svc.Close()

	if svc.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	applySettingsOverrides(settings)

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Config file: %s\n", svc.Settings.ConfigPath())
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Source: %s\n", settings.Corpus.Source.Description())
	cmd.Printf("  Path: %s\n", orDefault(settings.Corpus.Path, "~/nltk_data/corpora/movie_reviews"))
	cmd.Printf("  Database: %s\n", orDefault(settings.Corpus.Database, "~/.sentiment/data"))
	cmd.Println()

	cmd.Println("[Pipeline]")
	cmd.Printf("  Seed: %d\n", settings.Seed)
	cmd.Printf("  Test ratio: %g\n", settings.TestRatio)
	cmd.Printf("  Samples: %d\n", settings.Samples)
	cmd.Println()

	cmd.Println("[Normaliser]")
	cmd.Printf("  Processors: %s\n", strings.Join(settings.Normaliser.Processors, ", "))
	cmd.Printf("  Lemmatizer: %s\n", settings.Normaliser.Lemmatizer.Description())
	cmd.Println()

	cmd.Println("[Vectorizer]")
	cmd.Printf("  Min count: %d\n", settings.MinCount)
	cmd.Println()

	cmd.Println("[Classifier]")
	cmd.Printf("  Max iterations: %d\n", settings.Classifier.MaxIterations)
	cmd.Printf("  Regularization (C): %g\n", settings.Classifier.Regularization)
	cmd.Printf("  Tolerance: %g\n", settings.Classifier.Tolerance)
	cmd.Println()

	cmd.Println("[History]")
	if settings.RecordHistory {
		cmd.Println("  Enabled: yes")
	} else {
		cmd.Println("  Enabled: no")
	}
	cmd.Println()

	if err := svc.Settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

// applySettingsOverrides reflects persistent flag overrides in displayed settings.
func applySettingsOverrides(settings *domain.PipelineSettings) {
	if corpusPath != "" {
		settings.Corpus.Path = corpusPath
	}
	if sourceName != "" {
		settings.Corpus.Source = domain.CorpusSourceType(sourceName)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback + " (default)"
	}
	return value
}
