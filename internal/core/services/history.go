package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driven"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads the run history.
type HistoryService struct {
	runs driven.RunStore
}

// NewHistoryService creates a history service.
// runs may be nil when history is disabled.
func NewHistoryService(runs driven.RunStore) *HistoryService {
	return &HistoryService{runs: runs}
}

// Recent returns runs matching filter, most recent first.
func (s *HistoryService) Recent(ctx context.Context, filter domain.RunFilter) ([]domain.RunRecord, error) {
	if s.runs == nil {
		return nil, fmt.Errorf("%w: run history is disabled", domain.ErrNotFound)
	}
	runs, err := s.runs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Prune keeps the most recent keep runs per day.
func (s *HistoryService) Prune(ctx context.Context, keep int) error {
	if s.runs == nil {
		return fmt.Errorf("%w: run history is disabled", domain.ErrNotFound)
	}
	if keep < 1 {
		return fmt.Errorf("%w: keep %d must be positive", domain.ErrInvalidInput, keep)
	}
	if err := s.runs.Prune(ctx, keep); err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}
