// Package reminder derives due-date reminder events from debt state and
// reconciles the notification port's scheduled-event set to match.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/debtnet/backend/internal/application/adapter"
	"github.com/debtnet/backend/internal/domain/entity"
)

// ComputeEvents returns the reminder events a debt should have at the given
// instant. The result is empty when the debt is paid or has no due date;
// otherwise it holds up to three events (week before, day before, on the
// due date), keeping only firing times strictly after now. The computation
// is pure: the same debt and the same now always yield the same event set
// with the same identifiers.
func ComputeEvents(debt *entity.Debt, now time.Time) []*entity.ReminderEvent {
	if debt.IsPaid || debt.DueDate == nil {
		return nil
	}

	events := make([]*entity.ReminderEvent, 0, len(entity.ReminderKinds))
	for _, kind := range entity.ReminderKinds {
		fireAt := debt.DueDate.Add(kind.Offset())
		if !fireAt.After(now) {
			continue
		}

		events = append(events, &entity.ReminderEvent{
			ID:     entity.ReminderEventID(debt.ID, kind),
			DebtID: debt.ID,
			Kind:   kind,
			FireAt: fireAt,
			Title:  titleFor(kind),
			Body:   bodyFor(kind, debt),
			Payload: map[string]string{
				"debt_id":     debt.ID.String(),
				"user_id":     debt.UserID.String(),
				"debtor_name": debt.DebtorName,
				"amount":      debt.Amount.String(),
				"type":        string(debt.Type),
			},
		})
	}
	return events
}

// Scheduler reconciles the notification port against current debt state.
// It owns no persistent state of its own.
type Scheduler struct {
	port adapter.NotificationPort
	now  func() time.Time
}

// NewScheduler creates a new Scheduler instance.
func NewScheduler(port adapter.NotificationPort) *Scheduler {
	return &Scheduler{
		port: port,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// NewSchedulerWithClock creates a Scheduler with an injectable clock.
func NewSchedulerWithClock(port adapter.NotificationPort, now func() time.Time) *Scheduler {
	return &Scheduler{
		port: port,
		now:  now,
	}
}

// Reconcile replaces the port's event set with the union of the computed
// events over the given debts. Paid debts naturally contribute nothing.
// Individual port failures are logged and skipped; the remaining events
// are still scheduled.
func (s *Scheduler) Reconcile(ctx context.Context, debts []*entity.Debt) {
	if !s.port.IsEnabled() {
		return
	}

	if err := s.port.CancelAll(ctx); err != nil {
		slog.Error("Failed to clear scheduled reminders", "error", err)
	}

	now := s.now()
	scheduled := 0
	for _, debt := range debts {
		for _, event := range ComputeEvents(debt, now) {
			if err := s.port.Schedule(ctx, event); err != nil {
				slog.Error("Failed to schedule reminder",
					"event_id", event.ID,
					"debt_id", event.DebtID,
					"error", err,
				)
				continue
			}
			scheduled++
		}
	}

	slog.Debug("Reminder reconciliation completed", "scheduled", scheduled, "debts", len(debts))
}

// CancelForDebt cancels the three deterministic event identifiers the debt
// can have. Cancelling a never-scheduled identifier is a no-op at the port.
func (s *Scheduler) CancelForDebt(ctx context.Context, debtID uuid.UUID) {
	if !s.port.IsEnabled() {
		return
	}

	for _, id := range entity.ReminderEventIDsForDebt(debtID) {
		if err := s.port.Cancel(ctx, id); err != nil {
			slog.Error("Failed to cancel reminder", "event_id", id, "error", err)
		}
	}
}

// Ensure Scheduler implements adapter.ReminderScheduler.
var _ adapter.ReminderScheduler = (*Scheduler)(nil)
