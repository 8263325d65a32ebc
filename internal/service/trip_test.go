package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mglover/tripwise/internal/domain"
	"github.com/mglover/tripwise/internal/repo"
	"github.com/mglover/tripwise/internal/service"
)

// ---- mock repos ------------------------------------------------------------

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Set only the method fields your test needs.
type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error)
	list      func(ctx context.Context, userID string) ([]domain.Trip, error)
	listPaged func(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, userID string, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripRepo) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	return m.list(ctx, userID)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, userID, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validTrip() domain.Trip {
	return domain.Trip{
		UserID:      "user-1",
		Name:        "Japan 2026",
		Destination: "Tokyo",
		StartDate:   domain.NewDate(2026, 4, 1),
		EndDate:     domain.NewDate(2026, 4, 14),
	}
}

// ---- Create ----------------------------------------------------------------

func TestTripService_Create_OK(t *testing.T) {
	input := validTrip()
	stored := input
	stored.ID = uuid.New()

	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			assert.Equal(t, input.Name, trip.Name)
			return stored, nil
		},
	})

	got, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

func TestTripService_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Trip)
	}{
		{"missing name", func(tr *domain.Trip) { tr.Name = "  " }},
		{"missing destination", func(tr *domain.Trip) { tr.Destination = "" }},
		{"missing start date", func(tr *domain.Trip) { tr.StartDate = domain.Date{} }},
		{"missing end date", func(tr *domain.Trip) { tr.EndDate = domain.Date{} }},
	}

	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			t.Fatal("repo must not be reached on validation failure")
			return domain.Trip{}, nil
		},
	})

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trip := validTrip()
			tc.mutate(&trip)

			_, err := svc.Create(context.Background(), trip)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// End date before start date is accepted: the status classifier defines the
// behavior of such records, and rejecting them would break old saved trips.
func TestTripService_Create_AllowsEndBeforeStart(t *testing.T) {
	trip := validTrip()
	trip.StartDate = domain.NewDate(2026, 4, 14)
	trip.EndDate = domain.NewDate(2026, 4, 1)

	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			return trip, nil
		},
	})

	_, err := svc.Create(context.Background(), trip)
	assert.NoError(t, err)
}

// ---- List ------------------------------------------------------------------

func TestTripService_List_NilBecomesEmptySlice(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		list: func(_ context.Context, _ string) ([]domain.Trip, error) { return nil, nil },
	})

	trips, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

// ---- Update ----------------------------------------------------------------

func TestTripService_Update_NotFound(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		update: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("repo: %w", domain.ErrNotFound)
		},
	})

	_, err := svc.Update(context.Background(), validTrip())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete ----------------------------------------------------------------

func TestTripService_Delete_PropagatesError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := service.NewTripService(&mockTripRepo{
		delete: func(_ context.Context, _ string, _ uuid.UUID) error { return boom },
	})

	err := svc.Delete(context.Background(), "user-1", uuid.New())
	assert.ErrorIs(t, err, boom)
}

// ---- SetPaymentPaid --------------------------------------------------------

func tripWithPayments() domain.Trip {
	trip := validTrip()
	trip.ID = uuid.New()
	trip.Deposit = 200
	trip.MonthlyPayments = []domain.Payment{
		{Amount: 100, DueDate: domain.NewDate(2026, 1, 1)},
		{Amount: 100, DueDate: domain.NewDate(2026, 2, 1)},
	}
	trip.Payments = []domain.Payment{{Amount: 50}}
	return trip
}

func TestTripService_SetPaymentPaid_Monthly(t *testing.T) {
	trip := tripWithPayments()

	var updated domain.Trip
	svc := service.NewTripService(&mockTripRepo{
		getByID: func(_ context.Context, _ string, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
		update: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			updated = tr
			return tr, nil
		},
	})

	got, err := svc.SetPaymentPaid(context.Background(), trip.UserID, trip.ID, domain.KindMonthly, 1, true)
	require.NoError(t, err)
	assert.True(t, got.MonthlyPayments[1].Paid)
	assert.False(t, got.MonthlyPayments[0].Paid)
	assert.True(t, updated.MonthlyPayments[1].Paid)
}

func TestTripService_SetPaymentPaid_Deposit(t *testing.T) {
	trip := tripWithPayments()

	svc := service.NewTripService(&mockTripRepo{
		getByID: func(_ context.Context, _ string, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
		update: func(_ context.Context, tr domain.Trip) (domain.Trip, error) { return tr, nil },
	})

	got, err := svc.SetPaymentPaid(context.Background(), trip.UserID, trip.ID, domain.KindDeposit, 0, true)
	require.NoError(t, err)
	assert.True(t, got.DepositPaid)
}

func TestTripService_SetPaymentPaid_BadInput(t *testing.T) {
	trip := tripWithPayments()

	svc := service.NewTripService(&mockTripRepo{
		getByID: func(_ context.Context, _ string, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
		update: func(_ context.Context, tr domain.Trip) (domain.Trip, error) { return tr, nil },
	})

	_, err := svc.SetPaymentPaid(context.Background(), trip.UserID, trip.ID, domain.KindMonthly, 5, true)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.SetPaymentPaid(context.Background(), trip.UserID, trip.ID, "mystery", 0, true)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_SetPaymentPaid_TripNotFound(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		getByID: func(_ context.Context, _ string, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("repo: %w", domain.ErrNotFound)
		},
	})

	_, err := svc.SetPaymentPaid(context.Background(), "user-1", uuid.New(), domain.KindDeposit, 0, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
