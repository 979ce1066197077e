// Package review normalises movie review text into lemmatised tokens.
package review

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentiment-cli/internal/normalisers/review/tokenizer"
)

// Ensure Normaliser implements the interface.
var _ driven.TextNormaliser = (*Normaliser)(nil)

// Normaliser folds text to NFKC, lowercases it, tokenises it and runs the
// tokens through a processing pipeline.
type Normaliser struct {
	pipeline driven.TokenPipeline
}

// New creates a review normaliser. A nil pipeline only lowercases and
// tokenises.
func New(pipeline driven.TokenPipeline) *Normaliser {
	return &Normaliser{pipeline: pipeline}
}

// Normalize converts text into a NormalizedDocument.
func (n *Normaliser) Normalize(text string, stopwords map[string]struct{}) domain.NormalizedDocument {
	if text == "" {
		return domain.NewNormalizedDocument(nil)
	}

	// cases.Caser holds state, so each call gets its own.
	lower := cases.Lower(language.English).String(norm.NFKC.String(text))

	tokens := tokenizer.Words(lower)
	if n.pipeline != nil {
		tokens = n.pipeline.Process(tokens, stopwords)
	}
	return domain.NewNormalizedDocument(tokens)
}

// NormalizeAll normalises every document in order.
func (n *Normaliser) NormalizeAll(docs []domain.Document, stopwords map[string]struct{}) []domain.NormalizedDocument {
	out := make([]domain.NormalizedDocument, len(docs))
	for i, doc := range docs {
		out[i] = n.Normalize(doc.Text(), stopwords)
	}
	return out
}
