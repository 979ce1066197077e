package driven

import (
	"context"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

// RunStore persists pipeline run reports.
// Only the report summary and its samples are stored; models never are.
type RunStore interface {
	// Save stores a report.
	Save(ctx context.Context, report *domain.Report) error

	// Get retrieves a report by run ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, runID string) (*domain.Report, error)

	// List returns the most recent reports, newest first.
	// A limit of zero or less returns all reports.
	List(ctx context.Context, limit int) ([]domain.Report, error)
}
