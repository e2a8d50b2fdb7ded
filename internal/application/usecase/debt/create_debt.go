// Package debt contains debt-ledger use cases.
package debt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/debtnet/backend/internal/application/adapter"
	"github.com/debtnet/backend/internal/domain/entity"
)

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID       uuid.UUID
	DebtorName   string
	Description  string
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
	Category     entity.DebtCategory
	Type         entity.DebtType
	DueDate      *time.Time
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo  adapter.DebtRepository
	scheduler adapter.ReminderScheduler
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository, scheduler adapter.ReminderScheduler) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo:  debtRepo,
		scheduler: scheduler,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	if err := validateDebtFields(input.DebtorName, input.Amount, input.InterestRate, input.Category, input.Type); err != nil {
		return nil, err
	}

	debt := entity.NewDebt(
		input.UserID,
		input.DebtorName,
		input.Description,
		input.Amount,
		input.InterestRate,
		input.Category,
		input.Type,
		input.DueDate,
	)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	reconcileReminders(ctx, uc.debtRepo, uc.scheduler)

	return &CreateDebtOutput{
		Debt: debt,
	}, nil
}
