// Package debt contains debt-ledger use cases.
package debt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/debtnet/backend/internal/application/adapter"
	"github.com/debtnet/backend/internal/domain/entity"
	domainerror "github.com/debtnet/backend/internal/domain/error"
)

// SetPaidStatusInput represents the input for toggling a debt's paid state.
type SetPaidStatusInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
	Paid   bool
}

// SetPaidStatusOutput represents the output of toggling a debt's paid state.
type SetPaidStatusOutput struct {
	Debt *entity.Debt
}

// SetPaidStatusUseCase handles the Active/Paid state transitions.
type SetPaidStatusUseCase struct {
	debtRepo  adapter.DebtRepository
	scheduler adapter.ReminderScheduler
}

// NewSetPaidStatusUseCase creates a new SetPaidStatusUseCase instance.
func NewSetPaidStatusUseCase(debtRepo adapter.DebtRepository, scheduler adapter.ReminderScheduler) *SetPaidStatusUseCase {
	return &SetPaidStatusUseCase{
		debtRepo:  debtRepo,
		scheduler: scheduler,
	}
}

// Execute sets the paid flag. Marking paid settles the full principal and
// cancels the debt's reminders. Reopening resets the paid amount to zero
// and reschedules reminders when the due date is still in the future.
func (uc *SetPaidStatusUseCase) Execute(ctx context.Context, input SetPaidStatusInput) (*SetPaidStatusOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return nil, fmt.Errorf("failed to look up debt: %w", err)
	}

	if debt.UserID != input.UserID {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeUnauthorizedDebtAccess,
			"debt belongs to another user",
			domainerror.ErrUnauthorizedDebtAccess,
		)
	}

	updated := *debt
	updated.IsPaid = input.Paid
	if input.Paid {
		updated.AmountPaid = updated.Amount
	} else {
		// Reopening discards the payment history of the closed debt.
		updated.AmountPaid = decimal.Zero
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.debtRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update paid status: %w", err)
	}

	if input.Paid {
		uc.scheduler.CancelForDebt(ctx, updated.ID)
	} else {
		reconcileReminders(ctx, uc.debtRepo, uc.scheduler)
	}

	return &SetPaidStatusOutput{
		Debt: &updated,
	}, nil
}
