// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/debtnet/backend/internal/application/usecase/debt"
	"github.com/debtnet/backend/internal/domain/entity"
)

// CreateDebtRequest represents the request body for debt creation.
// Monetary values travel as decimal strings to avoid float rounding.
type CreateDebtRequest struct {
	DebtorName   string     `json:"debtor_name" binding:"required,min=1,max=100"`
	Description  string     `json:"description"`
	Amount       string     `json:"amount" binding:"required"`
	InterestRate string     `json:"interest_rate"`
	Category     string     `json:"category" binding:"required,oneof=personal business family friend other"`
	Type         string     `json:"type" binding:"required,oneof=owed_to_me i_owe"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

// UpdateDebtRequest represents the request body for debt update.
// All fields are optional; absent fields are left unchanged.
type UpdateDebtRequest struct {
	DebtorName   *string    `json:"debtor_name,omitempty" binding:"omitempty,min=1,max=100"`
	Description  *string    `json:"description,omitempty"`
	Amount       *string    `json:"amount,omitempty"`
	InterestRate *string    `json:"interest_rate,omitempty"`
	Category     *string    `json:"category,omitempty" binding:"omitempty,oneof=personal business family friend other"`
	Type         *string    `json:"type,omitempty" binding:"omitempty,oneof=owed_to_me i_owe"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ClearDueDate bool       `json:"clear_due_date,omitempty"`
}

// RecordPaymentRequest represents the request body for recording a payment.
type RecordPaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// SetPaidRequest represents the request body for toggling the paid state.
type SetPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// DebtResponse represents a single debt in API responses, including the
// derived fields clients would otherwise recompute.
type DebtResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	DebtorName         string     `json:"debtor_name"`
	Description        string     `json:"description,omitempty"`
	Amount             string     `json:"amount"`
	AmountPaid         string     `json:"amount_paid"`
	InterestRate       string     `json:"interest_rate"`
	AmountWithInterest string     `json:"amount_with_interest"`
	RemainingAmount    string     `json:"remaining_amount"`
	Progress           float64    `json:"progress"`
	Category           string     `json:"category"`
	Type               string     `json:"type"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	IsPaid             bool       `json:"is_paid"`
	IsOverdue          bool       `json:"is_overdue"`
	DateCreated        time.Time  `json:"date_created"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// CategoryBreakdownResponse represents per-category aggregates.
type CategoryBreakdownResponse struct {
	Category    string `json:"category"`
	Count       int    `json:"count"`
	TotalAmount string `json:"total_amount"`
}

// StatisticsResponse represents the aggregated debt statistics.
type StatisticsResponse struct {
	TotalOwedToMe             string                      `json:"total_owed_to_me"`
	TotalIOwe                 string                      `json:"total_i_owe"`
	TotalOwedToMeWithInterest string                      `json:"total_owed_to_me_with_interest"`
	TotalIOweWithInterest     string                      `json:"total_i_owe_with_interest"`
	TotalDebtAmount           string                      `json:"total_debt_amount"`
	TotalPaidAmount           string                      `json:"total_paid_amount"`
	ActiveCount               int                         `json:"active_count"`
	PaidCount                 int                         `json:"paid_count"`
	OverdueCount              int                         `json:"overdue_count"`
	ByCategory                []CategoryBreakdownResponse `json:"by_category"`
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:                 d.ID.String(),
		UserID:             d.UserID.String(),
		DebtorName:         d.DebtorName,
		Description:        d.Description,
		Amount:             d.Amount.StringFixed(2),
		AmountPaid:         d.AmountPaid.StringFixed(2),
		InterestRate:       d.InterestRate.String(),
		AmountWithInterest: d.AmountWithInterest().StringFixed(2),
		RemainingAmount:    d.RemainingAmount().StringFixed(2),
		Progress:           d.Progress(),
		Category:           string(d.Category),
		Type:               string(d.Type),
		DueDate:            d.DueDate,
		IsPaid:             d.IsPaid,
		IsOverdue:          d.IsOverdue(time.Now().UTC()),
		DateCreated:        d.DateCreated,
		UpdatedAt:          d.UpdatedAt,
	}
}

// ToDebtListResponse converts a list of debts to a DebtListResponse.
func ToDebtListResponse(debts []*entity.Debt) DebtListResponse {
	responses := make([]DebtResponse, len(debts))
	for i, d := range debts {
		responses[i] = ToDebtResponse(d)
	}
	return DebtListResponse{
		Debts: responses,
	}
}

// ToStatisticsResponse converts statistics output to a StatisticsResponse.
func ToStatisticsResponse(output *debt.GetStatisticsOutput) StatisticsResponse {
	byCategory := make([]CategoryBreakdownResponse, len(output.ByCategory))
	for i, bd := range output.ByCategory {
		byCategory[i] = CategoryBreakdownResponse{
			Category:    string(bd.Category),
			Count:       bd.Count,
			TotalAmount: bd.TotalAmount.StringFixed(2),
		}
	}

	return StatisticsResponse{
		TotalOwedToMe:             output.TotalOwedToMe.StringFixed(2),
		TotalIOwe:                 output.TotalIOwe.StringFixed(2),
		TotalOwedToMeWithInterest: output.TotalOwedToMeWithInterest.StringFixed(2),
		TotalIOweWithInterest:     output.TotalIOweWithInterest.StringFixed(2),
		TotalDebtAmount:           output.TotalDebtAmount.StringFixed(2),
		TotalPaidAmount:           output.TotalPaidAmount.StringFixed(2),
		ActiveCount:               output.ActiveCount,
		PaidCount:                 output.PaidCount,
		OverdueCount:              output.OverdueCount,
		ByCategory:                byCategory,
	}
}
