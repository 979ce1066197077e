package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and import review corpora",
}

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show categories and document counts of the corpus source",
	Args:  cobra.NoArgs,
	RunE:  runCorpusStats,
}

var corpusImportCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import a corpus directory into the local database",
	Long: `Copies a corpus laid out as <dir>/<category>/*.txt into the SQLite
corpus store, replacing its previous contents. Categories must be
pos/positive or neg/negative.

Use --source sqlite to run the pipeline against the imported corpus.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusImport,
}

func init() {
	corpusCmd.AddCommand(corpusStatsCmd)
	corpusCmd.AddCommand(corpusImportCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusStats(cmd *cobra.Command, _ []string) error {
	svc, err := openServices(wireOptions{
		configDir:  configDir,
		corpusPath: corpusPath,
		source:     sourceName,
	})
	if err != nil {
		return err
	}
	defer svc.Close()

	if svc.Corpus == nil {
		return errors.New("corpus service not configured")
	}

	stats, err := svc.Corpus.Stats(cmd.Context())
	if err != nil {
		return err
	}

	total := 0
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tDOCUMENTS")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\n", s.Category, s.Documents)
		total += s.Documents
	}
	fmt.Fprintf(w, "total\t%d\n", total)
	return w.Flush()
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	svc, err := openServices(wireOptions{configDir: configDir, needStore: true})
	if err != nil {
		return err
	}
	defer svc.Close()

	if svc.Corpus == nil {
		return errors.New("corpus service not configured")
	}

	cmd.Printf("Importing corpus from %s...\n", args[0])
	n, err := svc.Corpus.Import(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d documents.\n", n)
	return nil
}
