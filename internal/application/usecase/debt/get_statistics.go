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

// GetStatisticsInput represents the input for computing debt statistics.
type GetStatisticsInput struct {
	UserID uuid.UUID
}

// CategoryBreakdown aggregates debts of a single category.
type CategoryBreakdown struct {
	Category    entity.DebtCategory
	Count       int
	TotalAmount decimal.Decimal
}

// GetStatisticsOutput represents the aggregated view over a user's debts.
type GetStatisticsOutput struct {
	TotalOwedToMe             decimal.Decimal
	TotalIOwe                 decimal.Decimal
	TotalOwedToMeWithInterest decimal.Decimal
	TotalIOweWithInterest     decimal.Decimal
	TotalDebtAmount           decimal.Decimal
	TotalPaidAmount           decimal.Decimal
	ActiveCount               int
	PaidCount                 int
	OverdueCount              int
	ByCategory                []CategoryBreakdown
}

// GetStatisticsUseCase computes aggregate figures over a user's debts.
type GetStatisticsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(debtRepo adapter.DebtRepository) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute loads the user's debts and aggregates them. Directional totals
// and TotalDebtAmount sum the full principal (or with-interest value) of
// unpaid debts; TotalPaidAmount sums the principal of settled debts.
// Per-category totals cover everything.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, input GetStatisticsInput) (*GetStatisticsOutput, error) {
	debts, err := uc.debtRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts for statistics: %w", err)
	}

	now := time.Now().UTC()
	out := &GetStatisticsOutput{
		TotalOwedToMe:             decimal.Zero,
		TotalIOwe:                 decimal.Zero,
		TotalOwedToMeWithInterest: decimal.Zero,
		TotalIOweWithInterest:     decimal.Zero,
		TotalDebtAmount:           decimal.Zero,
		TotalPaidAmount:           decimal.Zero,
	}

	byCategory := make(map[entity.DebtCategory]*CategoryBreakdown)
	for _, d := range debts {
		if d.IsPaid {
			out.PaidCount++
			out.TotalPaidAmount = out.TotalPaidAmount.Add(d.Amount)
		} else {
			out.ActiveCount++
			out.TotalDebtAmount = out.TotalDebtAmount.Add(d.Amount)
			switch d.Type {
			case entity.DebtTypeOwedToMe:
				out.TotalOwedToMe = out.TotalOwedToMe.Add(d.Amount)
				out.TotalOwedToMeWithInterest = out.TotalOwedToMeWithInterest.Add(d.AmountWithInterest())
			case entity.DebtTypeIOwe:
				out.TotalIOwe = out.TotalIOwe.Add(d.Amount)
				out.TotalIOweWithInterest = out.TotalIOweWithInterest.Add(d.AmountWithInterest())
			}
			if d.IsOverdue(now) {
				out.OverdueCount++
			}
		}

		bd, ok := byCategory[d.Category]
		if !ok {
			bd = &CategoryBreakdown{
				Category:    d.Category,
				TotalAmount: decimal.Zero,
			}
			byCategory[d.Category] = bd
		}
		bd.Count++
		bd.TotalAmount = bd.TotalAmount.Add(d.Amount)
	}

	for _, category := range entity.DebtCategories {
		if bd, ok := byCategory[category]; ok {
			out.ByCategory = append(out.ByCategory, *bd)
		}
	}

	return out, nil
}
