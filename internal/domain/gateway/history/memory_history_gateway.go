package history

import (
	"context"
	"sync"

	"weather-dashboard/internal/domain/entity"
)

const DefaultSize = 10

// memoryHistoryGateway is a concurrency-safe bounded history kept in process memory.
type memoryHistoryGateway struct {
	mu      sync.RWMutex
	size    int
	entries []entity.SearchEntry
}

// NewMemoryHistoryGateway keeps the newest size entries. Non-positive sizes use DefaultSize.
func NewMemoryHistoryGateway(size int) SearchHistoryGateway {
	if size <= 0 {
		size = DefaultSize
	}
	return &memoryHistoryGateway{
		size:    size,
		entries: make([]entity.SearchEntry, 0, size),
	}
}

func (g *memoryHistoryGateway) Record(_ context.Context, entry entity.SearchEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.entries) < g.size {
		g.entries = append(g.entries, entity.SearchEntry{})
	}
	copy(g.entries[1:], g.entries[:len(g.entries)-1])
	g.entries[0] = entry
}

func (g *memoryHistoryGateway) List(_ context.Context) ([]entity.SearchEntry, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]entity.SearchEntry, len(g.entries))
	copy(out, g.entries)
	return out, nil
}
