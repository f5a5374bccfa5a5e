package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
)

const (
	DefaultRedisKey = "weather::search-history"
	recordTimeout   = 500 * time.Millisecond
)

// redisHistoryGateway keeps the history in a capped Redis list, shared by every instance.
type redisHistoryGateway struct {
	client *redis.Client
	key    string
	size   int
}

func NewRedisHistoryGateway(client *redis.Client, key string, size int) SearchHistoryGateway {
	if key == "" {
		key = DefaultRedisKey
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &redisHistoryGateway{
		client: client,
		key:    key,
		size:   size,
	}
}

func (g *redisHistoryGateway) Record(ctx context.Context, entry entity.SearchEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		log.Warn(msg.GetMessage("history.error.record", entry.City, err.Error()), zap.Error(err))
		return
	}

	// the lookup outcome must not wait on a slow Redis
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := g.client.PushCapped(ctx, g.key, data, int64(g.size)); err != nil {
		log.Warn(msg.GetMessage("history.error.record", entry.City, err.Error()),
			zap.String("key", g.key),
			zap.Error(err),
		)
	}
}

func (g *redisHistoryGateway) List(ctx context.Context) ([]entity.SearchEntry, error) {
	values, err := g.client.LRange(ctx, g.key, 0, int64(g.size)-1)
	if err != nil {
		log.Error(msg.GetMessage("history.error.list", err.Error()), zap.Error(err))
		return nil, fmt.Errorf("failed to list search history: %w", err)
	}

	entries := make([]entity.SearchEntry, 0, len(values))
	for _, value := range values {
		var entry entity.SearchEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			log.Warn(msg.GetMessage("history.error.list", err.Error()), zap.String("value", value))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
