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

// UpdateDebtInput represents the input for debt update. Nil pointer fields
// are left unchanged.
type UpdateDebtInput struct {
	DebtID       uuid.UUID
	UserID       uuid.UUID
	DebtorName   *string
	Description  *string
	Amount       *decimal.Decimal
	InterestRate *decimal.Decimal
	Category     *entity.DebtCategory
	Type         *entity.DebtType
	DueDate      *time.Time
	ClearDueDate bool
}

// UpdateDebtOutput represents the output of debt update.
type UpdateDebtOutput struct {
	Debt *entity.Debt
}

// UpdateDebtUseCase handles debt update logic.
type UpdateDebtUseCase struct {
	debtRepo  adapter.DebtRepository
	scheduler adapter.ReminderScheduler
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository, scheduler adapter.ReminderScheduler) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo:  debtRepo,
		scheduler: scheduler,
	}
}

// Execute performs the debt update. Identity and creation date are
// preserved; the record is replaced in place.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
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
	if input.DebtorName != nil {
		updated.DebtorName = *input.DebtorName
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.Amount != nil {
		updated.Amount = *input.Amount
		// Keep the paid amount inside the new principal and re-derive the
		// paid flag: shrinking the principal to the paid amount settles the
		// debt, raising it above the paid amount reopens it.
		if updated.AmountPaid.GreaterThan(updated.Amount) {
			updated.AmountPaid = updated.Amount
		}
		updated.IsPaid = updated.AmountPaid.Equal(updated.Amount)
	}
	if input.InterestRate != nil {
		updated.InterestRate = *input.InterestRate
	}
	if input.Category != nil {
		updated.Category = *input.Category
	}
	if input.Type != nil {
		updated.Type = *input.Type
	}
	if input.ClearDueDate {
		updated.DueDate = nil
	} else if input.DueDate != nil {
		updated.DueDate = input.DueDate
	}

	if err := validateDebtFields(updated.DebtorName, updated.Amount, updated.InterestRate, updated.Category, updated.Type); err != nil {
		return nil, err
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := uc.debtRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}

	reconcileReminders(ctx, uc.debtRepo, uc.scheduler)

	return &UpdateDebtOutput{
		Debt: &updated,
	}, nil
}
