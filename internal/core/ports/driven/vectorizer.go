package driven

import "github.com/custodia-labs/sentiment-cli/internal/core/domain"

// Vectorizer maps normalised documents to fixed-length count vectors.
type Vectorizer interface {
	// Fit learns a vocabulary from the training documents.
	// Called once per pipeline run, before any Transform.
	// An empty collection yields a zero-size vocabulary.
	Fit(docs []domain.NormalizedDocument) *domain.Vocabulary

	// Transform counts vocabulary tokens in each document.
	// Tokens absent from vocab are ignored. Every vector has length vocab.Size().
	Transform(docs []domain.NormalizedDocument, vocab *domain.Vocabulary) []domain.FeatureVector

	// FitTransform fits a vocabulary on docs and transforms the same docs.
	FitTransform(docs []domain.NormalizedDocument) (*domain.Vocabulary, []domain.FeatureVector)
}
