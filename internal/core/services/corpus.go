package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentiment-cli/internal/logger"
)

// CorpusLoader reads labelled documents from a CorpusSource.
type CorpusLoader struct {
	source driven.CorpusSource
}

// NewCorpusLoader creates a loader over source.
func NewCorpusLoader(source driven.CorpusSource) *CorpusLoader {
	return &CorpusLoader{source: source}
}

// Load returns every document of the corpus, category by category in the
// source's order. Category names map to labels through domain.ParseLabel.
func (l *CorpusLoader) Load(ctx context.Context) ([]domain.Document, error) {
	if l.source == nil {
		return nil, fmt.Errorf("%w: no corpus source configured", domain.ErrCorpusUnavailable)
	}

	categories, err := l.source.Categories(ctx)
	if err != nil {
		return nil, unavailable("list categories", err)
	}

	var docs []domain.Document
	for _, category := range categories {
		label, err := domain.ParseLabel(category)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", category, err)
		}

		texts, err := l.source.Documents(ctx, category)
		if err != nil {
			return nil, unavailable("read category "+category, err)
		}
		logger.Debug("Loaded %d %s documents from %s", len(texts), label, l.source.Name())

		for _, text := range texts {
			docs = append(docs, domain.NewDocument(text, label))
		}
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s corpus contains no documents", domain.ErrCorpusUnavailable, l.source.Name())
	}

	return docs, nil
}

// LoadShuffled loads the corpus and shuffles it with rng.
func (l *CorpusLoader) LoadShuffled(ctx context.Context, rng *rand.Rand) ([]domain.Document, error) {
	docs, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Shuffle(docs, rng), nil
}

// Shuffle returns a uniformly shuffled copy of docs. The input is not modified.
func Shuffle(docs []domain.Document, rng *rand.Rand) []domain.Document {
	out := make([]domain.Document, len(docs))
	copy(out, docs)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// unavailable wraps a source failure as ErrCorpusUnavailable unless it
// already carries a more specific sentinel or a context error.
func unavailable(op string, err error) error {
	if errors.Is(err, domain.ErrCorpusUnavailable) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrCorpusUnavailable, op, err)
}

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// SourceOpener opens a CorpusSource rooted at a directory.
type SourceOpener func(dir string) driven.CorpusSource

// CorpusService inspects the configured corpus and imports corpora into
// a writable store.
type CorpusService struct {
	source driven.CorpusSource
	writer driven.CorpusWriter
	open   SourceOpener
}

// NewCorpusService creates a corpus service. writer and open may be nil,
// in which case Import is unavailable.
func NewCorpusService(source driven.CorpusSource, writer driven.CorpusWriter, open SourceOpener) *CorpusService {
	return &CorpusService{
		source: source,
		writer: writer,
		open:   open,
	}
}

// Stats counts documents per category.
func (s *CorpusService) Stats(ctx context.Context) ([]driving.CategoryStats, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: no corpus source configured", domain.ErrCorpusUnavailable)
	}

	categories, err := s.source.Categories(ctx)
	if err != nil {
		return nil, unavailable("list categories", err)
	}

	stats := make([]driving.CategoryStats, 0, len(categories))
	for _, category := range categories {
		texts, err := s.source.Documents(ctx, category)
		if err != nil {
			return nil, unavailable("read category "+category, err)
		}
		stats = append(stats, driving.CategoryStats{Category: category, Documents: len(texts)})
	}
	return stats, nil
}

// Import replaces the writable store's contents with the corpus at dir.
// The whole corpus is read before the store is touched, so a failed read
// leaves the previous contents in place.
func (s *CorpusService) Import(ctx context.Context, dir string) (int, error) {
	if s.writer == nil || s.open == nil {
		return 0, fmt.Errorf("%w: no writable corpus store configured", domain.ErrInvalidInput)
	}

	logger.Section("Corpus Import")
	src := s.open(dir)

	categories, err := src.Categories(ctx)
	if err != nil {
		return 0, unavailable("list categories", err)
	}
	for _, category := range categories {
		if _, err := domain.ParseLabel(category); err != nil {
			return 0, fmt.Errorf("category %q: %w", category, err)
		}
	}

	docs := make(map[string][]string, len(categories))
	total := 0
	for _, category := range categories {
		texts, err := src.Documents(ctx, category)
		if err != nil {
			return 0, unavailable("read category "+category, err)
		}
		logger.Debug("Read %d documents from %s", len(texts), category)
		docs[category] = texts
		total += len(texts)
	}

	if err := s.writer.ReplaceAll(ctx, docs); err != nil {
		return 0, fmt.Errorf("replace corpus: %w", err)
	}

	logger.Info("Imported %d documents from %s", total, dir)
	return total, nil
}
