package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.RunRecord
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Save appends a run.
func (s *RunStore) Save(_ context.Context, run *domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, *run)
	return nil
}

// List returns matching runs, most recent first.
func (s *RunStore) List(_ context.Context, filter domain.RunFilter) ([]domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.RunRecord
	for _, r := range s.runs {
		if filter.Day == 0 || r.Day == filter.Day {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	if limit := filter.EffectiveLimit(); len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Prune keeps the most recent keep runs per day.
func (s *RunStore) Prune(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]domain.RunRecord, len(s.runs))
	copy(sorted, s.runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.After(sorted[j].StartedAt)
	})

	perDay := make(map[int]int)
	kept := sorted[:0]
	for _, r := range sorted {
		if perDay[r.Day] < keep {
			kept = append(kept, r)
		}
		perDay[r.Day]++
	}
	s.runs = kept
	return nil
}

// Close is a no-op.
func (s *RunStore) Close() error {
	return nil
}
