// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/debtnet/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
// The repository is the single writer for the debt collection; all
// mutations go through it and complete before reminder reconciliation runs.
type DebtRepository interface {
	// Create appends a new debt to the collection.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindByUserID retrieves all debts for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)

	// FindActiveByUserID retrieves the user's unpaid debts.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)

	// FindAllActive retrieves every unpaid debt across all users. The
	// reminder scheduler reconciles against this set, since the
	// notification port holds a single global event set.
	FindAllActive(ctx context.Context) ([]*entity.Debt, error)

	// Update replaces an existing debt record in place.
	Update(ctx context.Context, debt *entity.Debt) error

	// Delete removes a debt. Deleting a missing debt is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes every debt belonging to the user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
