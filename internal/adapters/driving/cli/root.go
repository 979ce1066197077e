// Package cli provides the sentiment command line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentiment-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configDir  string
	corpusPath string
	sourceName string

	runSeed      uint64
	runSamples   int
	runMaxIter   int
	runTestRatio float64
	runRecord    bool
)

var rootCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Classify movie reviews as positive or negative",
	Long: `Runs the review sentiment pipeline: loads a labelled corpus, shuffles
and splits it, normalises the text, trains a logistic regression classifier
on bag-of-words counts and reports held-out accuracy with sample predictions.

By default the corpus is read from ~/nltk_data/corpora/movie_reviews.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runPipeline,
}

func init() {
	defaults := domain.DefaultPipelineSettings()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.sentiment)")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "corpus root directory for the filesystem source")
	rootCmd.PersistentFlags().StringVar(&sourceName, "source", "", "corpus source: filesystem or sqlite")

	rootCmd.Flags().Uint64Var(&runSeed, "seed", defaults.Seed, "random seed for shuffling and sampling")
	rootCmd.Flags().IntVar(&runSamples, "samples", defaults.Samples, "number of sample predictions to show")
	rootCmd.Flags().IntVar(&runMaxIter, "max-iter", defaults.Classifier.MaxIterations, "maximum optimiser iterations")
	rootCmd.Flags().Float64Var(&runTestRatio, "test-ratio", defaults.TestRatio, "fraction of documents held out for testing")
	rootCmd.Flags().BoolVar(&runRecord, "record", false, "record the run in the history database")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	opts := runOptions(cmd)

	svc, err := openServices(wireOptions{
		configDir:  configDir,
		corpusPath: corpusPath,
		source:     sourceName,
		needStore:  opts.Record != nil && *opts.Record,
	})
	if err != nil {
		return err
	}
	defer svc.Close()

	if svc.Pipeline == nil {
		return fmt.Errorf("pipeline service not configured")
	}

	report, err := svc.Pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)
	if !report.Converged {
		fmt.Fprintf(cmd.ErrOrStderr(),
			"Warning: classifier did not converge after %d iterations; results use the best weights found\n",
			report.Iterations)
	}
	return nil
}

// runOptions collects only the flags set on the command line so that
// unset flags fall through to the configured settings.
func runOptions(cmd *cobra.Command) driving.RunOptions {
	var opts driving.RunOptions
	flags := cmd.Flags()
	if flags.Changed("seed") {
		opts.Seed = &runSeed
	}
	if flags.Changed("samples") {
		opts.Samples = &runSamples
	}
	if flags.Changed("max-iter") {
		opts.MaxIterations = &runMaxIter
	}
	if flags.Changed("test-ratio") {
		opts.TestRatio = &runTestRatio
	}
	if flags.Changed("record") {
		opts.Record = &runRecord
	}
	return opts
}

// printReport writes the accuracy line followed by the sample predictions.
func printReport(w io.Writer, report *domain.Report) {
	fmt.Fprintf(w, "Accuracy: %.4f\n", report.Accuracy)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sample predictions:")
	for i, s := range report.Samples {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Text (normalized): %s\n", s.Text)
		fmt.Fprintf(w, "True label: %s\n", s.Actual)
		fmt.Fprintf(w, "Predicted label: %s\n", s.Predicted)
	}
}
