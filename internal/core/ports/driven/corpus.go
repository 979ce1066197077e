package driven

import "context"

// CorpusSource exposes a labelled document collection.
// The corpus loader treats it as a black box: any store that can list
// categories and the raw texts inside each one will do.
type CorpusSource interface {
	// Name returns the source name for logging.
	Name() string

	// Categories returns the label categories in a stable order.
	Categories(ctx context.Context) ([]string, error)

	// Documents returns the raw texts of one category in a stable order.
	Documents(ctx context.Context, category string) ([]string, error)
}

// CorpusWriter replaces the contents of a corpus store.
// Only stores that can be populated locally implement it.
type CorpusWriter interface {
	// ReplaceAll swaps the stored documents for docs, keyed by category.
	// On error the previous contents must be left in place.
	ReplaceAll(ctx context.Context, docs map[string][]string) error
}
