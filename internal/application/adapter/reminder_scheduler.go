// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/debtnet/backend/internal/domain/entity"
)

// ReminderScheduler keeps the notification port's event set in agreement
// with the current debt collection. Ledger use cases call it after every
// mutation that could affect reminders.
type ReminderScheduler interface {
	// Reconcile recomputes the reminder events for the given debts (the
	// caller passes the active-debt set) and replaces the port's event set
	// with the result.
	Reconcile(ctx context.Context, debts []*entity.Debt)

	// CancelForDebt cancels every event that could exist for the debt.
	CancelForDebt(ctx context.Context, debtID uuid.UUID)
}
