package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

const (
	activityKey = "activity:leads"
	activityCap = 100
)

// ActivityLog keeps a capped list of recent lead events for the manager
// dashboard. Newest first.
type ActivityLog struct {
	client *redis.Client
}

func NewActivityLog(client *redis.Client) *ActivityLog {
	return &ActivityLog{client: client}
}

func (l *ActivityLog) Record(ctx context.Context, event domain.LeadEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal lead event: %w", err)
	}

	pipe := l.client.TxPipeline()
	pipe.LPush(ctx, activityKey, payload)
	pipe.LTrim(ctx, activityKey, 0, activityCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (l *ActivityLog) Recent(ctx context.Context, limit int64) ([]domain.LeadEvent, error) {
	if limit <= 0 || limit > activityCap {
		limit = activityCap
	}

	entries, err := l.client.LRange(ctx, activityKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read activity: %w", err)
	}

	events := make([]domain.LeadEvent, 0, len(entries))
	for _, entry := range entries {
		var event domain.LeadEvent
		if err := json.Unmarshal([]byte(entry), &event); err != nil {
			return nil, fmt.Errorf("unmarshal lead event: %w", err)
		}
		events = append(events, event)
	}
	return events, nil
}
