package driven

// TokenProcessor is one step of token normalisation (filtering, lemmatising).
// TokenProcessors are chained in a pipeline after tokenisation.
type TokenProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process takes the tokens produced so far and returns the next sequence.
	// The stopword set is passed through for processors that need it.
	// Implementations must not modify the input slice.
	Process(tokens []string, stopwords map[string]struct{}) []string
}

// TokenPipeline chains multiple TokenProcessors.
type TokenPipeline interface {
	// Process runs the tokens through all processors in order.
	Process(tokens []string, stopwords map[string]struct{}) []string
}
