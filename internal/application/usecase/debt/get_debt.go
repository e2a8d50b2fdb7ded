// Package debt contains debt-ledger use cases.
package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/debtnet/backend/internal/application/adapter"
	"github.com/debtnet/backend/internal/domain/entity"
	domainerror "github.com/debtnet/backend/internal/domain/error"
)

// GetDebtInput represents the input for fetching a single debt.
type GetDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// GetDebtOutput represents the output of fetching a single debt.
type GetDebtOutput struct {
	Debt *entity.Debt
}

// GetDebtUseCase handles fetching a single debt by ID.
type GetDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewGetDebtUseCase creates a new GetDebtUseCase instance.
func NewGetDebtUseCase(debtRepo adapter.DebtRepository) *GetDebtUseCase {
	return &GetDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute fetches the debt and verifies ownership.
func (uc *GetDebtUseCase) Execute(ctx context.Context, input GetDebtInput) (*GetDebtOutput, error) {
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

	return &GetDebtOutput{
		Debt: debt,
	}, nil
}
