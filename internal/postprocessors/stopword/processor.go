// Package stopword provides a token filter that removes stopwords.
package stopword

// Name is the processor name used in configuration.
const Name = "stopwords"

// Processor removes tokens found in the stopword set.
// Tokens are expected to be lower-case already.
// It implements the TokenProcessor interface.
type Processor struct {
	extra map[string]struct{}
}

// Option configures the stopword processor.
type Option func(*Processor)

// WithExtra removes words in addition to the set passed to Process.
func WithExtra(words ...string) Option {
	return func(p *Processor) {
		for _, w := range words {
			p.extra[w] = struct{}{}
		}
	}
}

// New creates a new stopword processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{extra: make(map[string]struct{})}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process drops tokens present in stopwords or the extra set.
func (p *Processor) Process(tokens []string, stopwords map[string]struct{}) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := stopwords[t]; ok {
			continue
		}
		if _, ok := p.extra[t]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}
