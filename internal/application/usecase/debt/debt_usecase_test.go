// Package debt contains debt-ledger use cases.
package debt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/debtnet/backend/internal/domain/entity"
	domainerror "github.com/debtnet/backend/internal/domain/error"
)

// fakeDebtRepo is an in-memory DebtRepository for use case tests.
type fakeDebtRepo struct {
	debts   map[uuid.UUID]*entity.Debt
	findErr error
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: make(map[uuid.UUID]*entity.Debt)}
}

func (r *fakeDebtRepo) Create(_ context.Context, debt *entity.Debt) error {
	copied := *debt
	r.debts[debt.ID] = &copied
	return nil
}

func (r *fakeDebtRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	d, ok := r.debts[id]
	if !ok {
		return nil, domainerror.ErrDebtNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDebtRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	var out []*entity.Debt
	for _, d := range r.debts {
		if d.UserID == userID {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeDebtRepo) FindActiveByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	var out []*entity.Debt
	for _, d := range r.debts {
		if d.UserID == userID && !d.IsPaid {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeDebtRepo) FindAllActive(_ context.Context) ([]*entity.Debt, error) {
	var out []*entity.Debt
	for _, d := range r.debts {
		if !d.IsPaid {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeDebtRepo) Update(_ context.Context, debt *entity.Debt) error {
	copied := *debt
	r.debts[debt.ID] = &copied
	return nil
}

func (r *fakeDebtRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.debts, id)
	return nil
}

func (r *fakeDebtRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	for id, d := range r.debts {
		if d.UserID == userID {
			delete(r.debts, id)
		}
	}
	return nil
}

// fakeScheduler records scheduler calls.
type fakeScheduler struct {
	reconciles int
	lastDebts  []*entity.Debt
	cancelled  []uuid.UUID
}

func (s *fakeScheduler) Reconcile(_ context.Context, debts []*entity.Debt) {
	s.reconciles++
	s.lastDebts = debts
}

func (s *fakeScheduler) CancelForDebt(_ context.Context, debtID uuid.UUID) {
	s.cancelled = append(s.cancelled, debtID)
}

func seedDebt(repo *fakeDebtRepo, userID uuid.UUID, amount string, due *time.Time) *entity.Debt {
	d := entity.NewDebt(
		userID,
		"Alice",
		"",
		decimal.RequireFromString(amount),
		decimal.Zero,
		entity.DebtCategoryPersonal,
		entity.DebtTypeOwedToMe,
		due,
	)
	_ = repo.Create(context.Background(), d)
	return d
}

func debtErrCode(t *testing.T, err error) domainerror.DebtErrorCode {
	t.Helper()
	var debtErr *domainerror.DebtError
	if !errors.As(err, &debtErr) {
		t.Fatalf("expected DebtError, got %v", err)
	}
	return debtErr.Code
}

func TestCreateDebtUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates an active debt and reconciles reminders", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewCreateDebtUseCase(repo, scheduler)

		due := time.Now().UTC().Add(30 * 24 * time.Hour)
		output, err := uc.Execute(ctx, CreateDebtInput{
			UserID:       userID,
			DebtorName:   "Alice",
			Amount:       decimal.RequireFromString("100"),
			InterestRate: decimal.Zero,
			Category:     entity.DebtCategoryPersonal,
			Type:         entity.DebtTypeOwedToMe,
			DueDate:      &due,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Debt.IsPaid {
			t.Error("expected new debt to be active")
		}
		if scheduler.reconciles != 1 {
			t.Errorf("expected 1 reconcile, got %d", scheduler.reconciles)
		}
		if len(scheduler.lastDebts) != 1 {
			t.Errorf("expected 1 active debt in reconcile, got %d", len(scheduler.lastDebts))
		}
	})

	t.Run("rejects invalid fields without touching the repository", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewCreateDebtUseCase(repo, scheduler)

		cases := []struct {
			name  string
			input CreateDebtInput
			code  domainerror.DebtErrorCode
		}{
			{
				name: "empty debtor name",
				input: CreateDebtInput{
					UserID:     userID,
					DebtorName: "  ",
					Amount:     decimal.RequireFromString("10"),
					Category:   entity.DebtCategoryPersonal,
					Type:       entity.DebtTypeOwedToMe,
				},
				code: domainerror.ErrCodeEmptyDebtorName,
			},
			{
				name: "zero amount",
				input: CreateDebtInput{
					UserID:     userID,
					DebtorName: "Alice",
					Amount:     decimal.Zero,
					Category:   entity.DebtCategoryPersonal,
					Type:       entity.DebtTypeOwedToMe,
				},
				code: domainerror.ErrCodeInvalidAmount,
			},
			{
				name: "negative interest rate",
				input: CreateDebtInput{
					UserID:       userID,
					DebtorName:   "Alice",
					Amount:       decimal.RequireFromString("10"),
					InterestRate: decimal.RequireFromString("-1"),
					Category:     entity.DebtCategoryPersonal,
					Type:         entity.DebtTypeOwedToMe,
				},
				code: domainerror.ErrCodeInvalidInterestRate,
			},
			{
				name: "unknown category",
				input: CreateDebtInput{
					UserID:     userID,
					DebtorName: "Alice",
					Amount:     decimal.RequireFromString("10"),
					Category:   entity.DebtCategory("junk"),
					Type:       entity.DebtTypeOwedToMe,
				},
				code: domainerror.ErrCodeInvalidDebtCategory,
			},
			{
				name: "unknown type",
				input: CreateDebtInput{
					UserID:     userID,
					DebtorName: "Alice",
					Amount:     decimal.RequireFromString("10"),
					Category:   entity.DebtCategoryPersonal,
					Type:       entity.DebtType("junk"),
				},
				code: domainerror.ErrCodeInvalidDebtType,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tc.input)
				if got := debtErrCode(t, err); got != tc.code {
					t.Errorf("expected code %s, got %s", tc.code, got)
				}
			})
		}
		if len(repo.debts) != 0 {
			t.Errorf("expected no persisted debts, got %d", len(repo.debts))
		}
		if scheduler.reconciles != 0 {
			t.Error("expected no reconcile after rejected creates")
		}
	})
}

func TestUpdateDebtUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	decPtr := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	t.Run("raising the principal of a paid debt reopens it", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewUpdateDebtUseCase(repo, scheduler)

		d := seedDebt(repo, userID, "100", nil)
		d.AmountPaid = d.Amount
		d.IsPaid = true
		_ = repo.Update(ctx, d)

		output, err := uc.Execute(ctx, UpdateDebtInput{
			DebtID: d.ID, UserID: userID, Amount: decPtr("200"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Debt.IsPaid {
			t.Error("expected debt to be reopened")
		}
		if !output.Debt.AmountPaid.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected paid amount preserved at 100, got %s", output.Debt.AmountPaid)
		}
		if output.Debt.IsPaid && !output.Debt.AmountPaid.Equal(output.Debt.Amount) {
			t.Error("paid flag and paid amount disagree")
		}
		if scheduler.reconciles != 1 {
			t.Errorf("expected 1 reconcile, got %d", scheduler.reconciles)
		}
	})

	t.Run("shrinking the principal to the paid amount settles the debt", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewUpdateDebtUseCase(repo, scheduler)

		d := seedDebt(repo, userID, "100", nil)
		d.AmountPaid = decimal.RequireFromString("40")
		_ = repo.Update(ctx, d)

		output, err := uc.Execute(ctx, UpdateDebtInput{
			DebtID: d.ID, UserID: userID, Amount: decPtr("40"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Debt.IsPaid {
			t.Error("expected debt to be settled")
		}
		if !output.Debt.AmountPaid.Equal(output.Debt.Amount) {
			t.Errorf("expected paid == amount, got %s / %s", output.Debt.AmountPaid, output.Debt.Amount)
		}
	})

	t.Run("shrinking below the paid amount clamps and settles", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewUpdateDebtUseCase(repo, scheduler)

		d := seedDebt(repo, userID, "100", nil)
		d.AmountPaid = decimal.RequireFromString("80")
		_ = repo.Update(ctx, d)

		output, err := uc.Execute(ctx, UpdateDebtInput{
			DebtID: d.ID, UserID: userID, Amount: decPtr("50"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Debt.AmountPaid.Equal(decimal.RequireFromString("50")) {
			t.Errorf("expected paid amount clamped to 50, got %s", output.Debt.AmountPaid)
		}
		if !output.Debt.IsPaid {
			t.Error("expected debt to be settled after clamp")
		}
	})

	t.Run("invalid fields leave the record unchanged", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewUpdateDebtUseCase(repo, scheduler)
		d := seedDebt(repo, userID, "100", nil)

		empty := "  "
		_, err := uc.Execute(ctx, UpdateDebtInput{
			DebtID: d.ID, UserID: userID, DebtorName: &empty,
		})
		if got := debtErrCode(t, err); got != domainerror.ErrCodeEmptyDebtorName {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeEmptyDebtorName, got)
		}

		stored, _ := repo.FindByID(ctx, d.ID)
		if stored.DebtorName != "Alice" {
			t.Errorf("expected untouched debtor name, got %q", stored.DebtorName)
		}
	})

	t.Run("a repository failure is not reported as a missing debt", func(t *testing.T) {
		repo := newFakeDebtRepo()
		repo.findErr = errors.New("connection reset")
		uc := NewUpdateDebtUseCase(repo, &fakeScheduler{})

		_, err := uc.Execute(ctx, UpdateDebtInput{
			DebtID: uuid.New(), UserID: userID, Amount: decPtr("10"),
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		var debtErr *domainerror.DebtError
		if errors.As(err, &debtErr) {
			t.Errorf("expected a plain wrapped error, got code %s", debtErr.Code)
		}
		if !errors.Is(err, repo.findErr) {
			t.Error("expected the repository error to be wrapped")
		}
	})
}

func TestRecordPaymentUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("partial payment accumulates without settling", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewRecordPaymentUseCase(repo, scheduler)
		d := seedDebt(repo, userID, "100", nil)

		output, err := uc.Execute(ctx, RecordPaymentInput{
			DebtID: d.ID, UserID: userID, Amount: decimal.RequireFromString("40"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Debt.AmountPaid.Equal(decimal.RequireFromString("40")) {
			t.Errorf("expected paid 40, got %s", output.Debt.AmountPaid)
		}
		if output.Debt.IsPaid {
			t.Error("expected debt to stay active")
		}
		if len(scheduler.cancelled) != 0 {
			t.Error("expected no reminder cancellation for partial payment")
		}
	})

	t.Run("exact payment settles the debt and cancels reminders", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewRecordPaymentUseCase(repo, scheduler)
		d := seedDebt(repo, userID, "100", nil)

		output, err := uc.Execute(ctx, RecordPaymentInput{
			DebtID: d.ID, UserID: userID, Amount: decimal.RequireFromString("100"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Debt.IsPaid {
			t.Error("expected debt to be settled")
		}
		if !output.Debt.AmountPaid.Equal(output.Debt.Amount) {
			t.Errorf("expected paid == amount, got %s", output.Debt.AmountPaid)
		}
		if len(scheduler.cancelled) != 1 || scheduler.cancelled[0] != d.ID {
			t.Errorf("expected reminder cancellation for %s, got %v", d.ID, scheduler.cancelled)
		}
	})

	t.Run("overpayment is rejected with no state change", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewRecordPaymentUseCase(repo, scheduler)
		d := seedDebt(repo, userID, "100", nil)

		_, err := uc.Execute(ctx, RecordPaymentInput{
			DebtID: d.ID, UserID: userID, Amount: decimal.RequireFromString("150"),
		})
		if got := debtErrCode(t, err); got != domainerror.ErrCodePaymentExceedsBalance {
			t.Errorf("expected %s, got %s", domainerror.ErrCodePaymentExceedsBalance, got)
		}

		stored, _ := repo.FindByID(ctx, d.ID)
		if !stored.AmountPaid.IsZero() {
			t.Errorf("expected untouched paid amount, got %s", stored.AmountPaid)
		}
	})

	t.Run("non-positive payment is rejected", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewRecordPaymentUseCase(repo, scheduler)
		d := seedDebt(repo, userID, "100", nil)

		_, err := uc.Execute(ctx, RecordPaymentInput{
			DebtID: d.ID, UserID: userID, Amount: decimal.Zero,
		})
		if got := debtErrCode(t, err); got != domainerror.ErrCodeInvalidPaymentAmount {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeInvalidPaymentAmount, got)
		}
	})

	t.Run("a repository failure is not reported as a missing debt", func(t *testing.T) {
		repo := newFakeDebtRepo()
		repo.findErr = errors.New("connection reset")
		uc := NewRecordPaymentUseCase(repo, &fakeScheduler{})

		_, err := uc.Execute(ctx, RecordPaymentInput{
			DebtID: uuid.New(), UserID: userID, Amount: decimal.RequireFromString("10"),
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		var debtErr *domainerror.DebtError
		if errors.As(err, &debtErr) {
			t.Errorf("expected a plain wrapped error, got code %s", debtErr.Code)
		}
	})

	t.Run("payment against another user's debt is forbidden", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewRecordPaymentUseCase(repo, scheduler)
		d := seedDebt(repo, userID, "100", nil)

		_, err := uc.Execute(ctx, RecordPaymentInput{
			DebtID: d.ID, UserID: uuid.New(), Amount: decimal.RequireFromString("10"),
		})
		if got := debtErrCode(t, err); got != domainerror.ErrCodeUnauthorizedDebtAccess {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeUnauthorizedDebtAccess, got)
		}
	})
}

func TestSetPaidStatusUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("marking paid settles the principal and cancels reminders", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewSetPaidStatusUseCase(repo, scheduler)
		d := seedDebt(repo, userID, "100", nil)

		output, err := uc.Execute(ctx, SetPaidStatusInput{DebtID: d.ID, UserID: userID, Paid: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Debt.IsPaid {
			t.Error("expected paid debt")
		}
		if !output.Debt.AmountPaid.Equal(output.Debt.Amount) {
			t.Errorf("expected paid == amount, got %s", output.Debt.AmountPaid)
		}
		if len(scheduler.cancelled) != 1 {
			t.Errorf("expected 1 cancellation, got %d", len(scheduler.cancelled))
		}
	})

	t.Run("reopening resets the paid amount and reconciles", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewSetPaidStatusUseCase(repo, scheduler)
		d := seedDebt(repo, userID, "100", nil)

		if _, err := uc.Execute(ctx, SetPaidStatusInput{DebtID: d.ID, UserID: userID, Paid: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := uc.Execute(ctx, SetPaidStatusInput{DebtID: d.ID, UserID: userID, Paid: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Debt.IsPaid {
			t.Error("expected active debt")
		}
		if !output.Debt.AmountPaid.IsZero() {
			t.Errorf("expected reset paid amount, got %s", output.Debt.AmountPaid)
		}
		if scheduler.reconciles != 1 {
			t.Errorf("expected 1 reconcile after reopen, got %d", scheduler.reconciles)
		}
	})
}

func TestDeleteDebtUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes the debt and cancels its reminders", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewDeleteDebtUseCase(repo, scheduler)
		d := seedDebt(repo, userID, "100", nil)

		output, err := uc.Execute(ctx, DeleteDebtInput{DebtID: d.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Deleted {
			t.Error("expected Deleted=true")
		}
		if len(scheduler.cancelled) != 1 || scheduler.cancelled[0] != d.ID {
			t.Errorf("expected cancellation for %s, got %v", d.ID, scheduler.cancelled)
		}
		if _, err := repo.FindByID(ctx, d.ID); !errors.Is(err, domainerror.ErrDebtNotFound) {
			t.Error("expected debt to be gone")
		}
	})

	t.Run("deleting an unknown debt succeeds", func(t *testing.T) {
		repo := newFakeDebtRepo()
		scheduler := &fakeScheduler{}
		uc := NewDeleteDebtUseCase(repo, scheduler)

		output, err := uc.Execute(ctx, DeleteDebtInput{DebtID: uuid.New(), UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Deleted {
			t.Error("expected Deleted=false for unknown debt")
		}
	})
}

func TestDeleteAllDebtsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	repo := newFakeDebtRepo()
	scheduler := &fakeScheduler{}
	uc := NewDeleteAllDebtsUseCase(repo, scheduler)

	seedDebt(repo, userID, "100", nil)
	seedDebt(repo, userID, "200", nil)
	kept := seedDebt(repo, otherID, "300", nil)

	if _, err := uc.Execute(ctx, DeleteAllDebtsInput{UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mine, _ := repo.FindByUserID(ctx, userID)
	if len(mine) != 0 {
		t.Errorf("expected empty ledger, got %d debts", len(mine))
	}
	if _, err := repo.FindByID(ctx, kept.ID); err != nil {
		t.Error("expected other user's debt to survive")
	}
	if scheduler.reconciles != 1 {
		t.Errorf("expected 1 reconcile, got %d", scheduler.reconciles)
	}
	if len(scheduler.lastDebts) != 1 {
		t.Errorf("expected 1 active debt after clear, got %d", len(scheduler.lastDebts))
	}
}

func TestGetStatisticsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeDebtRepo()
	uc := NewGetStatisticsUseCase(repo)

	// 100 owed to me with 10% interest, 30 paid.
	owed := seedDebt(repo, userID, "100", nil)
	owed.InterestRate = decimal.RequireFromString("10")
	owed.AmountPaid = decimal.RequireFromString("30")
	_ = repo.Update(ctx, owed)

	// 50 that I owe, overdue.
	past := time.Now().UTC().Add(-24 * time.Hour)
	iowe := seedDebt(repo, userID, "50", &past)
	iowe.Type = entity.DebtTypeIOwe
	iowe.Category = entity.DebtCategoryBusiness
	_ = repo.Update(ctx, iowe)

	// Settled debt contributes only to the paid total and paid count.
	settled := seedDebt(repo, userID, "25", nil)
	settled.AmountPaid = settled.Amount
	settled.IsPaid = true
	_ = repo.Update(ctx, settled)

	output, err := uc.Execute(ctx, GetStatisticsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Directional totals sum the full value of unpaid debts, regardless of
	// partial payments.
	if !output.TotalOwedToMe.Equal(decimal.RequireFromString("100")) {
		t.Errorf("TotalOwedToMe: expected 100, got %s", output.TotalOwedToMe)
	}
	if !output.TotalOwedToMeWithInterest.Equal(decimal.RequireFromString("110")) {
		t.Errorf("TotalOwedToMeWithInterest: expected 110, got %s", output.TotalOwedToMeWithInterest)
	}
	if !output.TotalIOwe.Equal(decimal.RequireFromString("50")) {
		t.Errorf("TotalIOwe: expected 50, got %s", output.TotalIOwe)
	}
	if !output.TotalDebtAmount.Equal(decimal.RequireFromString("150")) {
		t.Errorf("TotalDebtAmount: expected 150, got %s", output.TotalDebtAmount)
	}
	if !output.TotalPaidAmount.Equal(decimal.RequireFromString("25")) {
		t.Errorf("TotalPaidAmount: expected 25, got %s", output.TotalPaidAmount)
	}
	if output.ActiveCount != 2 || output.PaidCount != 1 {
		t.Errorf("counts: expected 2 active / 1 paid, got %d / %d", output.ActiveCount, output.PaidCount)
	}
	if output.OverdueCount != 1 {
		t.Errorf("expected 1 overdue, got %d", output.OverdueCount)
	}
	if len(output.ByCategory) != 2 {
		t.Fatalf("expected 2 category buckets, got %d", len(output.ByCategory))
	}
}
