// Package notification stores scheduled reminder events in Redis and
// dispatches the ones whose firing time has passed.
package notification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/debtnet/backend/internal/domain/entity"
)

func newTestPort(t *testing.T) *RedisPort {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPort(client, true)
}

func makeEvent(debtID uuid.UUID, kind entity.ReminderKind, fireAt time.Time) *entity.ReminderEvent {
	return &entity.ReminderEvent{
		ID:     entity.ReminderEventID(debtID, kind),
		DebtID: debtID,
		Kind:   kind,
		FireAt: fireAt,
		Title:  "Payment reminder",
		Body:   "A payment is coming up.",
		Payload: map[string]string{
			"debt_id": debtID.String(),
			"user_id": uuid.New().String(),
		},
	}
}

func TestRedisPort_ScheduleAndPopDue(t *testing.T) {
	ctx := context.Background()
	port := newTestPort(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	debtID := uuid.New()

	past := makeEvent(debtID, entity.ReminderWeekBefore, now.Add(-time.Hour))
	due := makeEvent(debtID, entity.ReminderDayBefore, now)
	future := makeEvent(debtID, entity.ReminderOnDueDate, now.Add(time.Hour))

	for _, ev := range []*entity.ReminderEvent{future, past, due} {
		require.NoError(t, port.Schedule(ctx, ev))
	}

	t.Run("pop returns only due events ordered by firing time", func(t *testing.T) {
		events, err := port.PopDue(ctx, now, 10)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, past.ID, events[0].ID)
		require.Equal(t, due.ID, events[1].ID)

		require.Equal(t, past.DebtID, events[0].DebtID)
		require.Equal(t, past.Kind, events[0].Kind)
		require.Equal(t, past.Title, events[0].Title)
		require.Equal(t, past.Payload["user_id"], events[0].Payload["user_id"])
	})

	t.Run("popped events are removed", func(t *testing.T) {
		events, err := port.PopDue(ctx, now, 10)
		require.NoError(t, err)
		require.Empty(t, events)
	})

	t.Run("future event fires once its time arrives", func(t *testing.T) {
		events, err := port.PopDue(ctx, now.Add(2*time.Hour), 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, future.ID, events[0].ID)
	})
}

func TestRedisPort_PopDueLimit(t *testing.T) {
	ctx := context.Background()
	port := newTestPort(t)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		ev := makeEvent(uuid.New(), entity.ReminderOnDueDate, now.Add(time.Duration(-i)*time.Minute))
		require.NoError(t, port.Schedule(ctx, ev))
	}

	events, err := port.PopDue(ctx, now, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)

	events, err = port.PopDue(ctx, now, 3)
	require.NoError(t, err)
	require.Len(t, events, 2)
}

func TestRedisPort_Cancel(t *testing.T) {
	ctx := context.Background()
	port := newTestPort(t)

	now := time.Now().UTC()
	debtID := uuid.New()
	kept := makeEvent(debtID, entity.ReminderWeekBefore, now.Add(-time.Minute))
	dropped := makeEvent(debtID, entity.ReminderDayBefore, now.Add(-time.Minute))

	require.NoError(t, port.Schedule(ctx, kept))
	require.NoError(t, port.Schedule(ctx, dropped))

	require.NoError(t, port.Cancel(ctx, dropped.ID))

	t.Run("cancelling an unknown event is a no-op", func(t *testing.T) {
		require.NoError(t, port.Cancel(ctx, entity.ReminderEventID(uuid.New(), entity.ReminderOnDueDate)))
	})

	events, err := port.PopDue(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, kept.ID, events[0].ID)
}

func TestRedisPort_CancelAll(t *testing.T) {
	ctx := context.Background()
	port := newTestPort(t)

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		require.NoError(t, port.Schedule(ctx, makeEvent(uuid.New(), entity.ReminderOnDueDate, now.Add(-time.Minute))))
	}

	require.NoError(t, port.CancelAll(ctx))

	events, err := port.PopDue(ctx, now, 10)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestRedisPort_Reschedule(t *testing.T) {
	ctx := context.Background()
	port := newTestPort(t)

	now := time.Now().UTC()
	debtID := uuid.New()

	ev := makeEvent(debtID, entity.ReminderOnDueDate, now.Add(time.Hour))
	require.NoError(t, port.Schedule(ctx, ev))

	// Scheduling the same event ID again replaces the firing time.
	ev.FireAt = now.Add(-time.Minute)
	require.NoError(t, port.Schedule(ctx, ev))

	events, err := port.PopDue(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, ev.ID, events[0].ID)
}
