package driving

import (
	"context"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

// HistoryService reads past runs.
type HistoryService interface {
	// Recent returns runs matching filter, most recent first.
	// Returns domain.ErrNotFound when history is disabled.
	Recent(ctx context.Context, filter domain.RunFilter) ([]domain.RunRecord, error)

	// Prune keeps the most recent keep runs per day.
	Prune(ctx context.Context, keep int) error
}
