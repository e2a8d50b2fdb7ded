// Package debt contains debt-ledger use cases.
package debt

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/debtnet/backend/internal/application/adapter"
	"github.com/debtnet/backend/internal/domain/entity"
	domainerror "github.com/debtnet/backend/internal/domain/error"
)

// validateDebtFields applies the shared create/update validation rules.
// Validation happens strictly before any mutation or persistence call.
func validateDebtFields(
	debtorName string,
	amount decimal.Decimal,
	interestRate decimal.Decimal,
	category entity.DebtCategory,
	debtType entity.DebtType,
) error {
	if strings.TrimSpace(debtorName) == "" {
		return domainerror.NewDebtError(
			domainerror.ErrCodeEmptyDebtorName,
			"debtor name must not be empty",
			domainerror.ErrEmptyDebtorName,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if interestRate.IsNegative() {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidInterestRate,
			"interest rate must not be negative",
			domainerror.ErrInvalidInterestRate,
		)
	}

	if !entity.IsValidDebtCategory(category) {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtCategory,
			"category must be 'personal', 'business', 'family', 'friend', or 'other'",
			domainerror.ErrInvalidDebtCategory,
		)
	}

	if !entity.IsValidDebtType(debtType) {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtType,
			"type must be 'owed_to_me' or 'i_owe'",
			domainerror.ErrInvalidDebtType,
		)
	}

	return nil
}

// reconcileReminders re-derives the full reminder event set from the
// current active debts. Scheduling failures never fail the ledger
// operation that triggered them.
func reconcileReminders(ctx context.Context, debtRepo adapter.DebtRepository, scheduler adapter.ReminderScheduler) {
	active, err := debtRepo.FindAllActive(ctx)
	if err != nil {
		slog.Error("Failed to load active debts for reminder reconciliation", "error", err)
		return
	}
	scheduler.Reconcile(ctx, active)
}
