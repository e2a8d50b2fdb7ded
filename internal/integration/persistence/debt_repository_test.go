// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/debtnet/backend/internal/domain/entity"
	domainerror "github.com/debtnet/backend/internal/domain/error"
	"github.com/debtnet/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.DebtModel{}, &model.UserModel{}, &model.RefreshTokenModel{}))

	return db
}

func makeDebt(userID uuid.UUID, due *time.Time) *entity.Debt {
	return entity.NewDebt(
		userID,
		"Alice",
		"borrowed for rent",
		decimal.RequireFromString("1250.75"),
		decimal.RequireFromString("2.5"),
		entity.DebtCategoryFamily,
		entity.DebtTypeOwedToMe,
		due,
	)
}

func TestDebtRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewDebtRepository(newTestDB(t))
	userID := uuid.New()

	t.Run("create and find preserves every field", func(t *testing.T) {
		due := time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)
		debt := makeDebt(userID, &due)
		require.NoError(t, repo.Create(ctx, debt))

		found, err := repo.FindByID(ctx, debt.ID)
		require.NoError(t, err)
		require.Equal(t, debt.ID, found.ID)
		require.Equal(t, debt.UserID, found.UserID)
		require.Equal(t, debt.DebtorName, found.DebtorName)
		require.Equal(t, debt.Description, found.Description)
		require.True(t, debt.Amount.Equal(found.Amount))
		require.True(t, debt.AmountPaid.Equal(found.AmountPaid))
		require.True(t, debt.InterestRate.Equal(found.InterestRate))
		require.Equal(t, debt.Category, found.Category)
		require.Equal(t, debt.Type, found.Type)
		require.NotNil(t, found.DueDate)
		require.True(t, due.Equal(*found.DueDate))
		require.False(t, found.IsPaid)
	})

	t.Run("nil due date survives the round trip", func(t *testing.T) {
		debt := makeDebt(userID, nil)
		require.NoError(t, repo.Create(ctx, debt))

		found, err := repo.FindByID(ctx, debt.ID)
		require.NoError(t, err)
		require.Nil(t, found.DueDate)
	})

	t.Run("missing debt yields the domain error", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		require.True(t, errors.Is(err, domainerror.ErrDebtNotFound))
	})
}

func TestDebtRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := NewDebtRepository(newTestDB(t))

	alice := uuid.New()
	bob := uuid.New()

	active1 := makeDebt(alice, nil)
	require.NoError(t, repo.Create(ctx, active1))

	paid := makeDebt(alice, nil)
	paid.AmountPaid = paid.Amount
	paid.IsPaid = true
	require.NoError(t, repo.Create(ctx, paid))

	active2 := makeDebt(bob, nil)
	require.NoError(t, repo.Create(ctx, active2))

	t.Run("FindByUserID returns only the user's debts", func(t *testing.T) {
		debts, err := repo.FindByUserID(ctx, alice)
		require.NoError(t, err)
		require.Len(t, debts, 2)
	})

	t.Run("FindActiveByUserID filters out paid debts", func(t *testing.T) {
		debts, err := repo.FindActiveByUserID(ctx, alice)
		require.NoError(t, err)
		require.Len(t, debts, 1)
		require.Equal(t, active1.ID, debts[0].ID)
	})

	t.Run("FindAllActive spans users", func(t *testing.T) {
		debts, err := repo.FindAllActive(ctx)
		require.NoError(t, err)
		require.Len(t, debts, 2)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		debts, err := repo.FindByUserID(ctx, uuid.New())
		require.NoError(t, err)
		require.Empty(t, debts)
	})
}

func TestDebtRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewDebtRepository(newTestDB(t))
	userID := uuid.New()

	t.Run("update persists changed fields", func(t *testing.T) {
		debt := makeDebt(userID, nil)
		require.NoError(t, repo.Create(ctx, debt))

		debt.AmountPaid = decimal.RequireFromString("500")
		debt.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.Update(ctx, debt))

		found, err := repo.FindByID(ctx, debt.ID)
		require.NoError(t, err)
		require.True(t, found.AmountPaid.Equal(decimal.RequireFromString("500")))
	})

	t.Run("delete removes the row and is idempotent", func(t *testing.T) {
		debt := makeDebt(userID, nil)
		require.NoError(t, repo.Create(ctx, debt))

		require.NoError(t, repo.Delete(ctx, debt.ID))
		_, err := repo.FindByID(ctx, debt.ID)
		require.True(t, errors.Is(err, domainerror.ErrDebtNotFound))

		require.NoError(t, repo.Delete(ctx, debt.ID))
	})

	t.Run("DeleteByUserID clears only that user", func(t *testing.T) {
		mine := makeDebt(userID, nil)
		other := makeDebt(uuid.New(), nil)
		require.NoError(t, repo.Create(ctx, mine))
		require.NoError(t, repo.Create(ctx, other))

		require.NoError(t, repo.DeleteByUserID(ctx, userID))

		debts, err := repo.FindByUserID(ctx, userID)
		require.NoError(t, err)
		require.Empty(t, debts)

		_, err = repo.FindByID(ctx, other.ID)
		require.NoError(t, err)
	})
}
