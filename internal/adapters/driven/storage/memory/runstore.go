package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu      sync.RWMutex
	reports map[string]domain.Report
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		reports: make(map[string]domain.Report),
	}
}

// Save stores or replaces a report.
func (s *RunStore) Save(_ context.Context, report *domain.Report) error {
	if report == nil || report.RunID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.RunID] = copyReport(*report)
	return nil
}

// Get retrieves a report by run ID.
func (s *RunStore) Get(_ context.Context, runID string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := copyReport(report)
	return &cp, nil
}

// List returns reports newest first.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		reports = append(reports, copyReport(r))
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].StartedAt.Equal(reports[j].StartedAt) {
			return reports[i].RunID > reports[j].RunID
		}
		return reports[i].StartedAt.After(reports[j].StartedAt)
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

func copyReport(r domain.Report) domain.Report {
	if r.Samples != nil {
		samples := make([]domain.Sample, len(r.Samples))
		copy(samples, r.Samples)
		r.Samples = samples
	}
	return r
}
