package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads recorded pipeline runs.
type HistoryService struct {
	runStore driven.RunStore
}

// NewHistoryService creates a history service over runStore.
func NewHistoryService(runStore driven.RunStore) *HistoryService {
	return &HistoryService{runStore: runStore}
}

// List returns the most recent runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Report, error) {
	if s.runStore == nil {
		return nil, nil
	}
	reports, err := s.runStore.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return reports, nil
}

// Get returns one run by ID.
func (s *HistoryService) Get(ctx context.Context, runID string) (*domain.Report, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotFound
	}
	report, err := s.runStore.Get(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	return report, nil
}
