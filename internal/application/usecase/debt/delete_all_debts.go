// Package debt contains debt-ledger use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/debtnet/backend/internal/application/adapter"
)

// DeleteAllDebtsInput represents the input for clearing a user's ledger.
type DeleteAllDebtsInput struct {
	UserID uuid.UUID
}

// DeleteAllDebtsOutput represents the output of clearing a user's ledger.
type DeleteAllDebtsOutput struct{}

// DeleteAllDebtsUseCase removes every debt a user has, along with the
// reminder events those debts contributed.
type DeleteAllDebtsUseCase struct {
	debtRepo  adapter.DebtRepository
	scheduler adapter.ReminderScheduler
}

// NewDeleteAllDebtsUseCase creates a new DeleteAllDebtsUseCase instance.
func NewDeleteAllDebtsUseCase(debtRepo adapter.DebtRepository, scheduler adapter.ReminderScheduler) *DeleteAllDebtsUseCase {
	return &DeleteAllDebtsUseCase{
		debtRepo:  debtRepo,
		scheduler: scheduler,
	}
}

// Execute clears the user's ledger and reconciles reminders so only other
// users' events remain scheduled.
func (uc *DeleteAllDebtsUseCase) Execute(ctx context.Context, input DeleteAllDebtsInput) (*DeleteAllDebtsOutput, error) {
	if err := uc.debtRepo.DeleteByUserID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to delete debts: %w", err)
	}

	reconcileReminders(ctx, uc.debtRepo, uc.scheduler)

	return &DeleteAllDebtsOutput{}, nil
}
