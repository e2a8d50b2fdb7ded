// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtCategory represents the category of a debt.
type DebtCategory string

const (
	DebtCategoryPersonal DebtCategory = "personal"
	DebtCategoryBusiness DebtCategory = "business"
	DebtCategoryFamily   DebtCategory = "family"
	DebtCategoryFriend   DebtCategory = "friend"
	DebtCategoryOther    DebtCategory = "other"
)

// DebtType represents the direction of a debt.
type DebtType string

const (
	// DebtTypeOwedToMe means the counterparty owes the user.
	DebtTypeOwedToMe DebtType = "owed_to_me"
	// DebtTypeIOwe means the user owes the counterparty.
	DebtTypeIOwe DebtType = "i_owe"
)

// DebtCategories lists all valid debt categories.
var DebtCategories = []DebtCategory{
	DebtCategoryPersonal,
	DebtCategoryBusiness,
	DebtCategoryFamily,
	DebtCategoryFriend,
	DebtCategoryOther,
}

// Debt represents a tracked obligation between the user and a named
// counterparty. Invariants: 0 <= AmountPaid <= Amount, and
// IsPaid implies AmountPaid == Amount.
type Debt struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	DebtorName   string
	Description  string
	Amount       decimal.Decimal
	AmountPaid   decimal.Decimal
	InterestRate decimal.Decimal // Percentage, 0 means no interest
	Category     DebtCategory
	Type         DebtType
	DueDate      *time.Time // nil means no deadline, never overdue
	IsPaid       bool
	DateCreated  time.Time
	UpdatedAt    time.Time
}

// NewDebt creates a new Debt entity in the active state.
func NewDebt(
	userID uuid.UUID,
	debtorName string,
	description string,
	amount decimal.Decimal,
	interestRate decimal.Decimal,
	category DebtCategory,
	debtType DebtType,
	dueDate *time.Time,
) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:           uuid.New(),
		UserID:       userID,
		DebtorName:   debtorName,
		Description:  description,
		Amount:       amount,
		AmountPaid:   decimal.Zero,
		InterestRate: interestRate,
		Category:     category,
		Type:         debtType,
		DueDate:      dueDate,
		IsPaid:       false,
		DateCreated:  now,
		UpdatedAt:    now,
	}
}

// AmountWithInterest returns the principal plus accrued interest:
// amount * (1 + rate/100).
func (d *Debt) AmountWithInterest() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(d.InterestRate.Div(decimal.NewFromInt(100)))
	return d.Amount.Mul(factor)
}

// RemainingAmount returns the unpaid portion of the principal, never negative.
func (d *Debt) RemainingAmount() decimal.Decimal {
	remaining := d.Amount.Sub(d.AmountPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Progress returns the repayment progress clamped to [0, 1].
// A zero-amount debt reports zero progress.
func (d *Debt) Progress() float64 {
	if !d.Amount.IsPositive() {
		return 0
	}
	p, _ := d.AmountPaid.Div(d.Amount).Float64()
	if p > 1 {
		return 1
	}
	return p
}

// IsOverdue reports whether the debt has a due date in the past and is unpaid.
func (d *Debt) IsOverdue(now time.Time) bool {
	if d.DueDate == nil {
		return false
	}
	return !d.IsPaid && now.After(*d.DueDate)
}

// IsValidDebtCategory reports whether category is a known debt category.
func IsValidDebtCategory(category DebtCategory) bool {
	for _, c := range DebtCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidDebtType reports whether debtType is a known debt type.
func IsValidDebtType(debtType DebtType) bool {
	return debtType == DebtTypeOwedToMe || debtType == DebtTypeIOwe
}
