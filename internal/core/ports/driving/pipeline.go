package driving

import (
	"context"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

// RunOptions override stored settings for a single run.
// Nil fields keep the configured value.
type RunOptions struct {
	Seed          *uint64
	TestRatio     *float64
	Samples       *int
	MaxIterations *int
	Record        *bool
}

// PipelineService runs the end-to-end classification pipeline.
type PipelineService interface {
	// Run loads, shuffles, splits, normalises, vectorises, trains and
	// evaluates, returning the run report.
	Run(ctx context.Context, opts RunOptions) (*domain.Report, error)
}
