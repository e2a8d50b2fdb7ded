// Package debt contains debt-ledger use cases.
package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/debtnet/backend/internal/application/adapter"
	domainerror "github.com/debtnet/backend/internal/domain/error"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// DeleteDebtOutput represents the output of debt deletion.
type DeleteDebtOutput struct {
	Deleted bool
}

// DeleteDebtUseCase handles debt deletion logic.
type DeleteDebtUseCase struct {
	debtRepo  adapter.DebtRepository
	scheduler adapter.ReminderScheduler
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository, scheduler adapter.ReminderScheduler) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo:  debtRepo,
		scheduler: scheduler,
	}
}

// Execute performs the debt deletion. Deletion is idempotent: removing an
// already-absent debt succeeds with Deleted=false.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) (*DeleteDebtOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return &DeleteDebtOutput{Deleted: false}, nil
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

	uc.scheduler.CancelForDebt(ctx, input.DebtID)

	if err := uc.debtRepo.Delete(ctx, input.DebtID); err != nil {
		return nil, fmt.Errorf("failed to delete debt: %w", err)
	}

	return &DeleteDebtOutput{Deleted: true}, nil
}
