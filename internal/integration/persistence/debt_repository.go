// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/debtnet/backend/internal/application/adapter"
	"github.com/debtnet/backend/internal/domain/entity"
	domainerror "github.com/debtnet/backend/internal/domain/error"
	"github.com/debtnet/backend/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).Create(debtModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a debt by its ID.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByUserID retrieves all debts for a given user, newest first.
func (r *debtRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_created DESC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(debtModels), nil
}

// FindActiveByUserID retrieves all unpaid debts for a given user, newest first.
func (r *debtRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_paid = ?", userID, false).
		Order("date_created DESC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(debtModels), nil
}

// FindAllActive retrieves all unpaid debts across all users.
func (r *debtRepository) FindAllActive(ctx context.Context) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Where("is_paid = ?", false).
		Order("date_created DESC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(debtModels), nil
}

// Update updates an existing debt in the database.
func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).Save(debtModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a debt from the database.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DebtModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByUserID removes all debts belonging to a user.
func (r *debtRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DebtModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toEntities(debtModels []model.DebtModel) []*entity.Debt {
	debts := make([]*entity.Debt, len(debtModels))
	for i, dm := range debtModels {
		debts[i] = dm.ToEntity()
	}
	return debts
}
