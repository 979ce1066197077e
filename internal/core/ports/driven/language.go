package driven

// StopwordSource supplies a fixed stopword set.
// Words are lower-case; the set is loaded once before normalisation begins.
type StopwordSource interface {
	// Stopwords returns the stopword set.
	Stopwords() map[string]struct{}
}

// Lemmatizer reduces a lower-case token to its dictionary base form.
// Implementations must be deterministic and safe for concurrent use.
type Lemmatizer interface {
	// Name returns the lemmatizer name for logging and configuration.
	Name() string

	// Lemma returns the base form of token.
	Lemma(token string) string
}
