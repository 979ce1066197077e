// Package alpha provides a token filter that keeps purely alphabetic tokens.
package alpha

import (
	"unicode"
	"unicode/utf8"
)

// Name is the processor name used in configuration.
const Name = "alpha"

// Processor drops numerals, punctuation and mixed tokens.
// It implements the TokenProcessor interface.
type Processor struct {
	minLength int
}

// Option configures the alpha processor.
type Option func(*Processor)

// WithMinLength drops alphabetic tokens shorter than n runes.
func WithMinLength(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.minLength = n
		}
	}
}

// New creates a new alpha processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{minLength: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process keeps tokens made entirely of letters.
func (p *Processor) Process(tokens []string, _ map[string]struct{}) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if isAlpha(t) && utf8.RuneCountInString(t) >= p.minLength {
			out = append(out, t)
		}
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
