package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driving"
)

// writeCorpus lays out n reviews per category as <dir>/<category>/cvNNN.txt.
func writeCorpus(t *testing.T, n int) string {
	t.Helper()

	dir := t.TempDir()
	words := map[string][]string{
		"pos": {"wonderful", "brilliant", "superb", "moving"},
		"neg": {"terrible", "awful", "boring", "dreadful"},
	}
	for category, ws := range words {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, category), 0o755))
		for i := 0; i < n; i++ {
			text := fmt.Sprintf("The acting was %s and the plot was %s.", ws[i%len(ws)], ws[(i+1)%len(ws)])
			name := filepath.Join(dir, category, fmt.Sprintf("cv%03d.txt", i))
			require.NoError(t, os.WriteFile(name, []byte(text), 0o600))
		}
	}
	return dir
}

func TestWireServices_Filesystem(t *testing.T) {
	corpusDir := writeCorpus(t, 15)

	svc, err := wireServices(wireOptions{configDir: t.TempDir(), corpusPath: corpusDir})
	require.NoError(t, err)
	defer svc.Close()

	stats, err := svc.Corpus.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []driving.CategoryStats{
		{Category: "neg", Documents: 15},
		{Category: "pos", Documents: 15},
	}, stats)

	report, err := svc.Pipeline.Run(context.Background(), driving.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 30, report.CorpusSize)
	assert.Equal(t, 6, report.TestSize)
	assert.GreaterOrEqual(t, report.Accuracy, 0.0)
	assert.LessOrEqual(t, report.Accuracy, 1.0)
	assert.Len(t, report.Samples, 3)
}

func TestWireServices_MissingCorpus(t *testing.T) {
	svc, err := wireServices(wireOptions{
		configDir:  t.TempDir(),
		corpusPath: filepath.Join(t.TempDir(), "nope"),
	})
	require.NoError(t, err)
	defer svc.Close()

	_, err = svc.Pipeline.Run(context.Background(), driving.RunOptions{})

	assert.ErrorIs(t, err, domain.ErrCorpusUnavailable)
	assert.Contains(t, err.Error(), "load corpus")
}

func TestWireServices_SQLiteImportAndHistory(t *testing.T) {
	corpusDir := writeCorpus(t, 10)
	configDir := t.TempDir()
	dataDir := t.TempDir()
	config := fmt.Sprintf("[corpus]\nsource = \"sqlite\"\ndatabase = %q\n", dataDir)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o600))

	svc, err := wireServices(wireOptions{configDir: configDir})
	require.NoError(t, err)
	defer svc.Close()

	n, err := svc.Corpus.Import(context.Background(), corpusDir)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	stats, err := svc.Corpus.Stats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 10, stats[0].Documents)

	record := true
	report, err := svc.Pipeline.Run(context.Background(), driving.RunOptions{Record: &record})
	require.NoError(t, err)
	assert.Equal(t, 20, report.CorpusSize)

	runs, err := svc.History.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, report.RunID, runs[0].RunID)
	assert.FileExists(t, filepath.Join(dataDir, "sentiment.db"))
}

func TestWireServices_UnknownSource(t *testing.T) {
	_, err := wireServices(wireOptions{configDir: t.TempDir(), source: "s3"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWireServices_NoStoreByDefault(t *testing.T) {
	svc, err := wireServices(wireOptions{configDir: t.TempDir(), corpusPath: writeCorpus(t, 5)})
	require.NoError(t, err)
	defer svc.Close()

	runs, err := svc.History.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = svc.Corpus.Import(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
