// Package debt contains debt-ledger use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/debtnet/backend/internal/application/adapter"
	"github.com/debtnet/backend/internal/domain/entity"
)

// ListDebtsInput represents the input for listing a user's debts.
type ListDebtsInput struct {
	UserID uuid.UUID

	// ActiveOnly restricts the result to unpaid debts.
	ActiveOnly bool
}

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts []*entity.Debt
}

// ListDebtsUseCase handles listing debts for a user.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute returns the user's debts, newest first.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	var (
		debts []*entity.Debt
		err   error
	)
	if input.ActiveOnly {
		debts, err = uc.debtRepo.FindActiveByUserID(ctx, input.UserID)
	} else {
		debts, err = uc.debtRepo.FindByUserID(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	return &ListDebtsOutput{
		Debts: debts,
	}, nil
}
