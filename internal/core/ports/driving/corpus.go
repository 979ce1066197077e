package driving

import (
	"context"
)

// CategoryStats counts the documents of one corpus category.
type CategoryStats struct {
	Category  string
	Documents int
}

// CorpusService inspects and imports corpora.
type CorpusService interface {
	// Stats counts documents per category of the configured source.
	Stats(ctx context.Context) ([]CategoryStats, error)

	// Import copies every document of the filesystem corpus at dir into
	// the local corpus store, replacing its contents. Returns the number
	// of documents imported.
	Import(ctx context.Context, dir string) (int, error)
}
