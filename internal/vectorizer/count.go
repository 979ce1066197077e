// Package vectorizer turns normalised documents into term count vectors.
package vectorizer

import (
	"sort"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// Ensure Count implements the interface.
var _ driven.Vectorizer = (*Count)(nil)

// Count is a bag-of-words vectoriser. Vocabulary indices follow the
// lexicographic order of the terms.
type Count struct {
	minCount int
}

// Option configures the count vectoriser.
type Option func(*Count)

// WithMinCount leaves out terms seen fewer than n times across the
// training documents.
func WithMinCount(n int) Option {
	return func(c *Count) {
		if n > 0 {
			c.minCount = n
		}
	}
}

// New creates a count vectoriser.
func New(opts ...Option) *Count {
	c := &Count{minCount: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fit builds the vocabulary from the training documents.
func (c *Count) Fit(docs []domain.NormalizedDocument) *domain.Vocabulary {
	totals := make(map[string]int)
	for _, doc := range docs {
		doc.Each(func(token string) {
			totals[token]++
		})
	}

	terms := make([]string, 0, len(totals))
	for term, n := range totals {
		if n >= c.minCount {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	return domain.NewVocabulary(terms)
}

// Transform counts vocabulary terms per document. Tokens missing from the
// vocabulary are ignored, so every vector has length vocab.Size().
func (c *Count) Transform(docs []domain.NormalizedDocument, vocab *domain.Vocabulary) []domain.FeatureVector {
	dim := vocab.Size()
	out := make([]domain.FeatureVector, len(docs))
	for i, doc := range docs {
		counts := make(map[int]float64)
		doc.Each(func(token string) {
			if idx, ok := vocab.Index(token); ok {
				counts[idx]++
			}
		})
		out[i] = domain.NewFeatureVector(dim, counts)
	}
	return out
}

// FitTransform fits the vocabulary and transforms the same documents.
func (c *Count) FitTransform(docs []domain.NormalizedDocument) (*domain.Vocabulary, []domain.FeatureVector) {
	vocab := c.Fit(docs)
	return vocab, c.Transform(docs, vocab)
}
