package driving

import (
	"context"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

// HistoryService exposes recorded pipeline runs.
type HistoryService interface {
	// List returns the most recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.Report, error)

	// Get returns one run by ID.
	Get(ctx context.Context, runID string) (*domain.Report, error)
}
