// Package postprocessors provides the token processing steps that run after
// tokenisation: alphabetic filtering, stopword removal and lemmatisation.
package postprocessors

import (
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.TokenPipeline = (*Pipeline)(nil)

// Pipeline chains multiple TokenProcessors and runs them in order.
// It implements the TokenPipeline interface.
type Pipeline struct {
	processors []driven.TokenProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.TokenProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the tokens through all processors in order.
// Each processor receives the output of the previous one.
// Processing stops early once no tokens remain.
func (p *Pipeline) Process(tokens []string, stopwords map[string]struct{}) []string {
	for _, processor := range p.processors {
		if len(tokens) == 0 {
			return nil
		}
		tokens = processor.Process(tokens, stopwords)
	}
	return tokens
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.TokenProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}

// Names returns the processor names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.processors))
	for i, processor := range p.processors {
		names[i] = processor.Name()
	}
	return names
}
