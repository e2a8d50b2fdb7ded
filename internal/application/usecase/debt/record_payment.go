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

// RecordPaymentInput represents the input for recording a partial payment.
type RecordPaymentInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
}

// RecordPaymentOutput represents the output of recording a payment.
type RecordPaymentOutput struct {
	Debt *entity.Debt
}

// RecordPaymentUseCase handles partial-payment accounting. Payments are
// applied against the principal, not the amount with interest.
type RecordPaymentUseCase struct {
	debtRepo  adapter.DebtRepository
	scheduler adapter.ReminderScheduler
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(debtRepo adapter.DebtRepository, scheduler adapter.ReminderScheduler) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		debtRepo:  debtRepo,
		scheduler: scheduler,
	}
}

// Execute records the payment. The payment is rejected, with no state
// change, when the amount is non-positive or exceeds the remaining
// balance. A payment that exhausts the balance marks the debt paid and
// cancels its reminders.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

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

	if input.Amount.GreaterThan(debt.RemainingAmount()) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodePaymentExceedsBalance,
			"payment amount exceeds remaining balance",
			domainerror.ErrPaymentExceedsBalance,
		)
	}

	updated := *debt
	updated.AmountPaid = updated.AmountPaid.Add(input.Amount)

	settled := updated.AmountPaid.GreaterThanOrEqual(updated.Amount)
	if settled {
		updated.AmountPaid = updated.Amount
		updated.IsPaid = true
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.debtRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if settled {
		uc.scheduler.CancelForDebt(ctx, updated.ID)
	}

	return &RecordPaymentOutput{
		Debt: &updated,
	}, nil
}
