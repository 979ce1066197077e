// Package lemmatize provides a token processor that reduces tokens to their lemma.
package lemmatize

import (
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// Name is the processor name used in configuration.
const Name = "lemmatize"

// Processor replaces each token with its lemma.
// It implements the TokenProcessor interface.
type Processor struct {
	lemmatizer driven.Lemmatizer
}

// New creates a lemmatising processor backed by lemmatizer.
func New(lemmatizer driven.Lemmatizer) *Processor {
	return &Processor{lemmatizer: lemmatizer}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process maps every token through the lemmatizer, preserving order.
func (p *Processor) Process(tokens []string, _ map[string]struct{}) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = p.lemmatizer.Lemma(t)
	}
	return out
}
