// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/debtnet/backend/internal/domain/entity"
)

// NotificationPort is the external collaborator responsible for holding and
// eventually delivering scheduled reminder events. The scheduler reconciles
// the port's event set but does not own it; every call is independent and
// fire-and-forget from the scheduler's perspective.
type NotificationPort interface {
	// Schedule stores an event for future delivery. Scheduling an event with
	// an identifier that already exists replaces it.
	Schedule(ctx context.Context, event *entity.ReminderEvent) error

	// Cancel removes a single event by identifier. Cancelling an event that
	// was never scheduled is a no-op.
	Cancel(ctx context.Context, eventID string) error

	// CancelAll removes every scheduled event.
	CancelAll(ctx context.Context) error

	// IsEnabled reports whether reminder delivery is available. When false,
	// reconciliation is a no-op.
	IsEnabled() bool
}
