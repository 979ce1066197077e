package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded pipeline runs",
	Long: `Lists pipeline runs recorded with --record or history.enabled,
newest first.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	svc, err := openServices(wireOptions{configDir: configDir, needStore: true})
	if err != nil {
		return err
	}
	defer svc.Close()

	if svc.History == nil {
		return errors.New("history service not configured")
	}

	reports, err := svc.History.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tSTARTED\tSEED\tTRAIN\tTEST\tACCURACY\tCONVERGED")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.4f\t%s\n",
			shortID(r.RunID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Seed,
			r.TrainSize,
			r.TestSize,
			r.Accuracy,
			yesNo(r.Converged),
		)
	}
	return w.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	svc, err := openServices(wireOptions{configDir: configDir, needStore: true})
	if err != nil {
		return err
	}
	defer svc.Close()

	if svc.History == nil {
		return errors.New("history service not configured")
	}

	report, err := svc.History.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run: %s\n", report.RunID)
	fmt.Fprintf(out, "Started: %s (%s)\n", report.StartedAt.Local().Format("2006-01-02 15:04:05"), report.Duration)
	fmt.Fprintf(out, "Seed: %d\n", report.Seed)
	fmt.Fprintf(out, "Documents: %d (train %d, test %d)\n", report.CorpusSize, report.TrainSize, report.TestSize)
	fmt.Fprintf(out, "Vocabulary: %d terms\n", report.VocabularySize)
	fmt.Fprintf(out, "Iterations: %d (converged: %s)\n", report.Iterations, yesNo(report.Converged))
	fmt.Fprintln(out)
	printConfusion(cmd, &report.Confusion)
	fmt.Fprintln(out)
	printReport(out, report)
	return nil
}

func printConfusion(cmd *cobra.Command, m *domain.ConfusionMatrix) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTUAL \\ PREDICTED\tnegative\tpositive")
	for _, actual := range domain.AllLabels() {
		fmt.Fprintf(w, "%s\t%d\t%d\n", actual,
			m.Count(actual, domain.LabelNegative),
			m.Count(actual, domain.LabelPositive))
	}
	_ = w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
