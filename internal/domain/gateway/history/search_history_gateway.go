package history

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

// SearchHistoryGateway keeps the most recent city lookups.
type SearchHistoryGateway interface {
	// Record stores an entry. It never fails: storage errors are logged and dropped.
	Record(ctx context.Context, entry entity.SearchEntry)

	// List returns the kept entries, newest first
	List(ctx context.Context) ([]entity.SearchEntry, error)
}
