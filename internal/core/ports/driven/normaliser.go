package driven

import "github.com/custodia-labs/sentiment-cli/internal/core/domain"

// TextNormaliser converts raw review text into a canonical token sequence.
// Identical text and stopword set always yield an identical result.
type TextNormaliser interface {
	// Normalize lowercases, tokenises, filters and lemmatises text.
	// Empty or fully filtered input yields an empty NormalizedDocument.
	Normalize(text string, stopwords map[string]struct{}) domain.NormalizedDocument

	// NormalizeAll normalises each document's text, keeping order.
	NormalizeAll(docs []domain.Document, stopwords map[string]struct{}) []domain.NormalizedDocument
}
