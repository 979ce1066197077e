package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentiment-cli/internal/adapters/driven/language"
	"github.com/custodia-labs/sentiment-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sentiment-cli/internal/classifiers/logistic"
	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentiment-cli/internal/logger"
	"github.com/custodia-labs/sentiment-cli/internal/normalisers/review"
	"github.com/custodia-labs/sentiment-cli/internal/postprocessors"
	"github.com/custodia-labs/sentiment-cli/internal/vectorizer"
)

// reviewCorpus builds a small, clearly separable corpus.
func reviewCorpus(n int) map[string][]string {
	positive := []string{"wonderful", "brilliant", "superb", "delightful", "masterpiece"}
	negative := []string{"terrible", "awful", "boring", "dreadful", "disaster"}

	corpus := map[string][]string{}
	for i := 0; i < n; i++ {
		corpus["pos"] = append(corpus["pos"], fmt.Sprintf(
			"The film was %s and %s, a %s evening.",
			positive[i%len(positive)], positive[(i+1)%len(positive)], positive[(i+2)%len(positive)]))
		corpus["neg"] = append(corpus["neg"], fmt.Sprintf(
			"The film was %s and %s, a %s evening.",
			negative[i%len(negative)], negative[(i+1)%len(negative)], negative[(i+2)%len(negative)]))
	}
	return corpus
}

func newTestPipeline(t *testing.T, source driven.CorpusSource, runStore driven.RunStore) *PipelineService {
	t.Helper()

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	chain, err := registry.BuildPipeline(domain.DefaultProcessors(), map[string]map[string]any{
		"lemmatize": {"lemmatizer": "dictionary"},
	})
	require.NoError(t, err)

	return NewPipelineService(
		domain.DefaultPipelineSettings(),
		source,
		language.NewEnglish(),
		review.New(chain),
		vectorizer.New(),
		logistic.New(),
		runStore,
	)
}

func TestPipelineService_Run(t *testing.T) {
	source := memory.NewCorpusFrom(reviewCorpus(25))
	service := newTestPipeline(t, source, nil)

	report, err := service.Run(context.Background(), driving.RunOptions{})

	require.NoError(t, err)
	assert.Equal(t, 50, report.CorpusSize)
	assert.Equal(t, 40, report.TrainSize)
	assert.Equal(t, 10, report.TestSize)
	assert.Equal(t, uint64(42), report.Seed)
	assert.InDelta(t, 1.0, report.Accuracy, 1e-9)
	assert.True(t, report.Converged)
	assert.Positive(t, report.VocabularySize)
	assert.Equal(t, 10, report.Confusion.Total())
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Samples, 3)
	for _, s := range report.Samples {
		assert.NotContains(t, s.Text, "the")
		assert.Contains(t, s.Text, "film")
	}
}

func TestPipelineService_Run_Reproducible(t *testing.T) {
	source := memory.NewCorpusFrom(reviewCorpus(15))

	a, err := newTestPipeline(t, source, nil).Run(context.Background(), driving.RunOptions{})
	require.NoError(t, err)
	b, err := newTestPipeline(t, source, nil).Run(context.Background(), driving.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, a.Accuracy, b.Accuracy)
	assert.Equal(t, a.Samples, b.Samples)
	assert.Equal(t, a.Confusion, b.Confusion)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestPipelineService_Run_SeedChangesSamples(t *testing.T) {
	source := memory.NewCorpusFrom(reviewCorpus(30))
	service := newTestPipeline(t, source, nil)

	a, err := service.Run(context.Background(), driving.RunOptions{})
	require.NoError(t, err)

	seed := uint64(7)
	samples := 12
	b, err := service.Run(context.Background(), driving.RunOptions{Seed: &seed, Samples: &samples})
	require.NoError(t, err)

	assert.Equal(t, uint64(7), b.Seed)
	assert.Len(t, b.Samples, 12)
	assert.NotEqual(t, a.Samples, b.Samples[:3])
}

func TestPipelineService_Run_AllPositive(t *testing.T) {
	source := memory.NewCorpusFrom(map[string][]string{"pos": reviewCorpus(20)["pos"]})
	service := newTestPipeline(t, source, nil)

	report, err := service.Run(context.Background(), driving.RunOptions{})

	require.NoError(t, err)
	assert.InDelta(t, 1.0, report.Accuracy, 1e-9)
	for _, s := range report.Samples {
		assert.Equal(t, domain.LabelPositive, s.Predicted)
	}
}

func TestPipelineService_Run_SampleSizeExceeded(t *testing.T) {
	source := memory.NewCorpusFrom(reviewCorpus(5))
	service := newTestPipeline(t, source, nil)
	samples := 5

	_, err := service.Run(context.Background(), driving.RunOptions{Samples: &samples})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSampleSizeExceeded)
	assert.Contains(t, err.Error(), "sample predictions")
}

func TestPipelineService_Run_StageErrors(t *testing.T) {
	t.Run("empty corpus", func(t *testing.T) {
		_, err := newTestPipeline(t, memory.NewCorpus(), nil).Run(context.Background(), driving.RunOptions{})

		assert.ErrorIs(t, err, domain.ErrCorpusUnavailable)
		assert.Contains(t, err.Error(), "load corpus")
	})

	t.Run("unknown category", func(t *testing.T) {
		source := memory.NewCorpusFrom(map[string][]string{"meh": {"so so"}})

		_, err := newTestPipeline(t, source, nil).Run(context.Background(), driving.RunOptions{})

		assert.ErrorIs(t, err, domain.ErrUnknownLabel)
	})

	t.Run("too small to split", func(t *testing.T) {
		source := memory.NewCorpusFrom(map[string][]string{"pos": {"only one"}})

		_, err := newTestPipeline(t, source, nil).Run(context.Background(), driving.RunOptions{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "split corpus")
	})

	t.Run("invalid override", func(t *testing.T) {
		ratio := 1.5

		_, err := newTestPipeline(t, memory.NewCorpusFrom(reviewCorpus(5)), nil).
			Run(context.Background(), driving.RunOptions{TestRatio: &ratio})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestPipeline(t, memory.NewCorpusFrom(reviewCorpus(5)), nil).Run(ctx, driving.RunOptions{})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPipelineService_Run_RecordsHistory(t *testing.T) {
	runs := memory.NewRunStore()
	service := newTestPipeline(t, memory.NewCorpusFrom(reviewCorpus(10)), runs)
	record := true

	report, err := service.Run(context.Background(), driving.RunOptions{Record: &record})
	require.NoError(t, err)

	stored, err := runs.Get(context.Background(), report.RunID)
	require.NoError(t, err)
	assert.Equal(t, report.Accuracy, stored.Accuracy)
	assert.Equal(t, report.Samples, stored.Samples)
}

func TestPipelineService_Run_NoRecordByDefault(t *testing.T) {
	runs := memory.NewRunStore()
	service := newTestPipeline(t, memory.NewCorpusFrom(reviewCorpus(10)), runs)

	_, err := service.Run(context.Background(), driving.RunOptions{})
	require.NoError(t, err)

	listed, err := runs.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

// failingRunStore rejects every save.
type failingRunStore struct {
	*memory.RunStore
}

func (f *failingRunStore) Save(_ context.Context, _ *domain.Report) error {
	return fmt.Errorf("database locked")
}

func TestPipelineService_Run_SaveFailureIsNotFatal(t *testing.T) {
	runs := &failingRunStore{RunStore: memory.NewRunStore()}
	service := newTestPipeline(t, memory.NewCorpusFrom(reviewCorpus(10)), runs)
	record := true

	report, err := service.Run(context.Background(), driving.RunOptions{Record: &record})

	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestPipelineService_Run_VerboseDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	service := newTestPipeline(t, memory.NewCorpusFrom(reviewCorpus(25)), nil)

	_, err := service.Run(context.Background(), driving.RunOptions{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Train matrix: 40 rows")
	assert.Contains(t, out, "Test matrix: 10 rows")
	assert.Contains(t, out, "Most positive terms: ")
	assert.Contains(t, out, "Most negative terms: ")
	assert.Equal(t, 3, strings.Count(out, "P(positive) = "))
}

func TestStrongestTerms(t *testing.T) {
	vocab := domain.NewVocabulary([]string{"awful", "dull", "fine", "great", "superb"})
	model := &domain.Model{Weights: []float64{-2, -0.5, 0, 1, 3}}

	assert.Equal(t, []string{"superb", "great"}, strongestTerms(model, vocab, 10, true))
	assert.Equal(t, []string{"awful"}, strongestTerms(model, vocab, 1, false))
	assert.Empty(t, strongestTerms(&domain.Model{Weights: []float64{0, 0}}, vocab, 3, true))
}
