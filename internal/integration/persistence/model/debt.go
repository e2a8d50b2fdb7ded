// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/debtnet/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	DebtorName   string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:text"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AmountPaid   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestRate decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	Category     string          `gorm:"type:varchar(20);not null"`
	Type         string          `gorm:"type:varchar(20);not null;index"`
	DueDate      *time.Time      `gorm:"type:timestamptz;index"`
	IsPaid       bool            `gorm:"not null;default:false;index"`
	DateCreated  time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:           m.ID,
		UserID:       m.UserID,
		DebtorName:   m.DebtorName,
		Description:  m.Description,
		Amount:       m.Amount,
		AmountPaid:   m.AmountPaid,
		InterestRate: m.InterestRate,
		Category:     entity.DebtCategory(m.Category),
		Type:         entity.DebtType(m.Type),
		DueDate:      m.DueDate,
		IsPaid:       m.IsPaid,
		DateCreated:  m.DateCreated,
		UpdatedAt:    m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:           debt.ID,
		UserID:       debt.UserID,
		DebtorName:   debt.DebtorName,
		Description:  debt.Description,
		Amount:       debt.Amount,
		AmountPaid:   debt.AmountPaid,
		InterestRate: debt.InterestRate,
		Category:     string(debt.Category),
		Type:         string(debt.Type),
		DueDate:      debt.DueDate,
		IsPaid:       debt.IsPaid,
		DateCreated:  debt.DateCreated,
		UpdatedAt:    debt.UpdatedAt,
	}
}
