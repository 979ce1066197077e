package services

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentiment-cli/internal/logger"
)

// topTerms is how many of the strongest terms per class a verbose run logs.
const topTerms = 10

// Ensure PipelineService implements the interface.
var _ driving.PipelineService = (*PipelineService)(nil)

// PipelineService runs the batch sentiment pipeline end to end:
// load, shuffle, split, normalise, vectorise, train, predict and evaluate.
type PipelineService struct {
	settings   domain.PipelineSettings
	loader     *CorpusLoader
	stopwords  driven.StopwordSource
	normaliser driven.TextNormaliser
	vectorizer driven.Vectorizer
	classifier driven.Classifier
	evaluator  *Evaluator
	runStore   driven.RunStore
	now        func() time.Time
}

// NewPipelineService creates a pipeline service. runStore may be nil, in
// which case runs are never recorded.
func NewPipelineService(
	settings domain.PipelineSettings,
	source driven.CorpusSource,
	stopwords driven.StopwordSource,
	normaliser driven.TextNormaliser,
	vectorizer driven.Vectorizer,
	classifier driven.Classifier,
	runStore driven.RunStore,
) *PipelineService {
	return &PipelineService{
		settings:   settings,
		loader:     NewCorpusLoader(source),
		stopwords:  stopwords,
		normaliser: normaliser,
		vectorizer: vectorizer,
		classifier: classifier,
		evaluator:  NewEvaluator(),
		runStore:   runStore,
		now:        time.Now,
	}
}

// Run executes one pipeline run and returns its report.
func (s *PipelineService) Run(ctx context.Context, opts driving.RunOptions) (*domain.Report, error) {
	cfg := s.apply(opts)
	if err := ValidateSettings(&cfg); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	started := s.now()
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	var stopwords map[string]struct{}
	if s.stopwords != nil {
		stopwords = s.stopwords.Stopwords()
	}

	done := logger.Timed("load corpus")
	docs, err := s.loader.LoadShuffled(ctx, rng)
	done()
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	logger.Debug("Loaded %d documents (seed %d)", len(docs), cfg.Seed)

	split, err := domain.NewSplit(docs, cfg.TestRatio)
	if err != nil {
		return nil, fmt.Errorf("split corpus: %w", err)
	}
	logger.Debug("Split into %d train / %d test", split.TrainSize(), split.TestSize())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done = logger.Timed("normalise")
	train := s.normaliser.NormalizeAll(split.Train(), stopwords)
	test := s.normaliser.NormalizeAll(split.Test(), stopwords)
	done()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Vectorise")
	vocab, trainX := s.vectorizer.FitTransform(train)
	testX := s.vectorizer.Transform(test, vocab)
	logger.Debug("Vocabulary size: %d", vocab.Size())
	logMatrix("Train", trainX)
	logMatrix("Test", testX)

	done = logger.Timed("train " + s.classifier.Name())
	model, err := s.classifier.Train(ctx, trainX, domain.Labels(split.Train()), cfg.Classifier.MaxIterations)
	done()
	if err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}
	logger.Debug("Trained in %d iterations (converged: %t, loss: %.6f)", model.Iterations, model.Converged, model.Loss)
	logger.Debug("Most positive terms: %s", strings.Join(strongestTerms(model, vocab, topTerms, true), ", "))
	logger.Debug("Most negative terms: %s", strings.Join(strongestTerms(model, vocab, topTerms, false), ", "))

	logger.Section("Evaluate")
	predicted, err := s.classifier.Predict(model, testX)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	actual := domain.Labels(split.Test())
	accuracy, err := s.evaluator.Accuracy(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	confusion, err := s.evaluator.Confusion(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	logger.Debug("Confusion: TN=%d FP=%d FN=%d TP=%d",
		confusion.Count(domain.LabelNegative, domain.LabelNegative),
		confusion.Count(domain.LabelNegative, domain.LabelPositive),
		confusion.Count(domain.LabelPositive, domain.LabelNegative),
		confusion.Count(domain.LabelPositive, domain.LabelPositive))

	texts := make([]string, len(test))
	for i := range test {
		texts[i] = test[i].Text()
	}
	samples, err := s.evaluator.Sample(texts, actual, predicted, cfg.Samples, rng)
	if err != nil {
		return nil, fmt.Errorf("sample predictions: %w", err)
	}
	for i, sample := range samples {
		p, err := s.classifier.Probability(model, testX[sample.Index])
		if err != nil {
			return nil, fmt.Errorf("sample predictions: %w", err)
		}
		logger.Debug("Sample %d: P(positive) = %.4f", i+1, p)
	}

	report := &domain.Report{
		RunID:          uuid.New().String(),
		Seed:           cfg.Seed,
		CorpusSize:     len(docs),
		TrainSize:      split.TrainSize(),
		TestSize:       split.TestSize(),
		VocabularySize: vocab.Size(),
		Accuracy:       accuracy,
		Iterations:     model.Iterations,
		Converged:      model.Converged,
		Confusion:      confusion,
		Samples:        samples,
		StartedAt:      started,
		Duration:       s.now().Sub(started),
	}
	logger.Info("Accuracy %.4f on %d test documents", accuracy, len(actual))

	if cfg.RecordHistory && s.runStore != nil {
		if err := s.runStore.Save(ctx, report); err != nil {
			logger.Warn("failed to record run %s: %v", report.RunID, err)
		} else {
			logger.Debug("Recorded run %s", report.RunID)
		}
	}

	return report, nil
}

// apply returns the service settings with any option overrides.
func (s *PipelineService) apply(opts driving.RunOptions) domain.PipelineSettings {
	cfg := s.settings
	if opts.Seed != nil {
		cfg.Seed = *opts.Seed
	}
	if opts.TestRatio != nil {
		cfg.TestRatio = *opts.TestRatio
	}
	if opts.Samples != nil {
		cfg.Samples = *opts.Samples
	}
	if opts.MaxIterations != nil {
		cfg.Classifier.MaxIterations = *opts.MaxIterations
	}
	if opts.Record != nil {
		cfg.RecordHistory = *opts.Record
	}
	return cfg
}

// logMatrix logs the density of a feature matrix.
func logMatrix(name string, vectors []domain.FeatureVector) {
	nnz := 0
	tokens := 0.0
	for _, v := range vectors {
		nnz += v.Nnz()
		tokens += v.Sum()
	}
	logger.Debug("%s matrix: %d rows, %d non-zero entries, %.0f counted tokens", name, len(vectors), nnz, tokens)
}

// strongestTerms returns up to k vocabulary terms with the largest weights
// toward one class, strongest first. Ties keep vocabulary order.
func strongestTerms(model *domain.Model, vocab *domain.Vocabulary, k int, positive bool) []string {
	idx := make([]int, 0, len(model.Weights))
	for i, w := range model.Weights {
		if (positive && w > 0) || (!positive && w < 0) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return math.Abs(model.Weights[idx[a]]) > math.Abs(model.Weights[idx[b]])
	})
	if len(idx) > k {
		idx = idx[:k]
	}
	terms := make([]string, len(idx))
	for i, j := range idx {
		terms[i] = vocab.Term(j)
	}
	return terms
}
