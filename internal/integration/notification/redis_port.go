// Package notification stores scheduled reminder events in Redis and
// dispatches the ones whose firing time has passed.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/debtnet/backend/internal/application/adapter"
	"github.com/debtnet/backend/internal/domain/entity"
)

const (
	// scheduleKey is a sorted set of event identifiers scored by firing time.
	scheduleKey = "reminders:schedule"
	// eventsKey is a hash of event identifier to JSON-encoded event.
	eventsKey = "reminders:events"
)

// RedisPort implements adapter.NotificationPort on top of Redis. Events live
// in two structures: a sorted set ordered by firing time for due-event
// queries, and a hash holding the full event payloads.
type RedisPort struct {
	client  *redis.Client
	enabled bool
}

// NewRedisPort creates a new Redis-backed notification port.
func NewRedisPort(client *redis.Client, enabled bool) *RedisPort {
	return &RedisPort{
		client:  client,
		enabled: enabled,
	}
}

// IsEnabled reports whether reminder scheduling is turned on.
func (p *RedisPort) IsEnabled() bool {
	return p.enabled
}

// Schedule stores an event, replacing any existing event with the same ID.
func (p *RedisPort) Schedule(ctx context.Context, event *entity.ReminderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode reminder event: %w", err)
	}

	pipe := p.client.TxPipeline()
	pipe.ZAdd(ctx, scheduleKey, redis.Z{
		Score:  float64(event.FireAt.Unix()),
		Member: event.ID,
	})
	pipe.HSet(ctx, eventsKey, event.ID, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store reminder event: %w", err)
	}
	return nil
}

// Cancel removes a single event. Unknown identifiers are a no-op.
func (p *RedisPort) Cancel(ctx context.Context, eventID string) error {
	pipe := p.client.TxPipeline()
	pipe.ZRem(ctx, scheduleKey, eventID)
	pipe.HDel(ctx, eventsKey, eventID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cancel reminder event: %w", err)
	}
	return nil
}

// CancelAll removes every scheduled event.
func (p *RedisPort) CancelAll(ctx context.Context) error {
	if err := p.client.Del(ctx, scheduleKey, eventsKey).Err(); err != nil {
		return fmt.Errorf("failed to clear reminder events: %w", err)
	}
	return nil
}

// PopDue atomically removes and returns up to limit events whose firing time
// is at or before now, ordered by firing time. Events whose payload is
// missing or corrupt are dropped with a log entry.
func (p *RedisPort) PopDue(ctx context.Context, now time.Time, limit int) ([]*entity.ReminderEvent, error) {
	ids, err := p.client.ZRangeByScore(ctx, scheduleKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}

	pipe := p.client.TxPipeline()
	getCmd := pipe.HMGet(ctx, eventsKey, ids...)
	pipe.ZRem(ctx, scheduleKey, members...)
	pipe.HDel(ctx, eventsKey, ids...)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to pop due reminders: %w", err)
	}

	events := make([]*entity.ReminderEvent, 0, len(ids))
	for i, raw := range getCmd.Val() {
		str, ok := raw.(string)
		if !ok {
			slog.Warn("Reminder event payload missing", "event_id", ids[i])
			continue
		}
		var event entity.ReminderEvent
		if err := json.Unmarshal([]byte(str), &event); err != nil {
			slog.Warn("Failed to decode reminder event", "event_id", ids[i], "error", err)
			continue
		}
		events = append(events, &event)
	}
	return events, nil
}

// Ensure RedisPort implements adapter.NotificationPort.
var _ adapter.NotificationPort = (*RedisPort)(nil)
