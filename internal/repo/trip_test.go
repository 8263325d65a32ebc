package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mglover/tripwise/internal/domain"
	"github.com/mglover/tripwise/internal/repo"
	"github.com/mglover/tripwise/testutil"
)

// testUserID scopes all fixture trips; the repo must never return trips
// belonging to anyone else.
const testUserID = "test-user"

// newTestRepo opens a transaction against the test database and returns a
// TripRepo backed by that transaction. The transaction is automatically rolled
// back when the test finishes, giving free per-test isolation.
func newTestRepo(t *testing.T) repo.TripRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test; no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewTripRepo(tx)
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	return domain.Trip{
		UserID:      testUserID,
		Name:        "Japan Adventure",
		Destination: "Tokyo, Japan",
		StartDate:   domain.NewDate(2026, 4, 1),
		EndDate:     domain.NewDate(2026, 4, 14),
		BaseCost:    1500,
		Currency:    "USD",
		Deposit:     200,
		DepositDueDate: domain.NewDate(2026, 1, 15),
		MonthlyPayments: []domain.Payment{
			{Description: "Installment 1", Amount: 300, DueDate: domain.NewDate(2026, 2, 1)},
			{Description: "Installment 2", Amount: 300, DueDate: domain.NewDate(2026, 3, 1)},
		},
		Tags: []string{"asia", "spring"},
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Destination, got.Destination)
	assert.Equal(t, "2026-04-01", got.StartDate.String())
	assert.Equal(t, "2026-04-14", got.EndDate.String())
	assert.InDelta(t, 1500, got.BaseCost.Float64(), 1e-9)
	require.Len(t, got.MonthlyPayments, 2)
	assert.Equal(t, "Installment 1", got.MonthlyPayments[0].Description)
	assert.Equal(t, []string{"asia", "spring"}, got.Tags)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_Create_NoOptionalFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	input.Deposit = 0
	input.DepositDueDate = domain.Date{}
	input.MonthlyPayments = nil
	input.Tags = nil

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.True(t, got.DepositDueDate.IsZero(), "DepositDueDate should stay absent")
	assert.Empty(t, got.MonthlyPayments)
	assert.Empty(t, got.Tags)
}

func TestTripRepo_GetByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, testUserID, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.GetByID(ctx, testUserID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_GetByID_OtherUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	// A trip belonging to someone else must look exactly like a missing trip.
	_, err = r.GetByID(ctx, "someone-else", created.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	t1 := tripFixture()
	t1.Name = "First Trip"

	t2 := tripFixture()
	t2.Name = "Second Trip"

	other := tripFixture()
	other.UserID = "someone-else"
	other.Name = "Not Mine"

	_, err := r.Create(ctx, t1)
	require.NoError(t, err)
	_, err = r.Create(ctx, t2)
	require.NoError(t, err)
	_, err = r.Create(ctx, other)
	require.NoError(t, err)

	trips, err := r.List(ctx, testUserID)

	require.NoError(t, err)
	require.Len(t, trips, 2)

	var names []string
	for _, tr := range trips {
		names = append(names, tr.Name)
	}
	assert.Contains(t, names, "First Trip")
	assert.Contains(t, names, "Second Trip")
	assert.NotContains(t, names, "Not Mine")
}

func TestTripRepo_ListPaged(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Create(ctx, tripFixture())
		require.NoError(t, err)
	}

	trips, total, err := r.ListPaged(ctx, testUserID, domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, trips, 2)

	rest, total, err := r.ListPaged(ctx, testUserID, domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, rest, 1)
}

func TestTripRepo_Update(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	created.Name = "Updated Name"
	created.Notes = "Updated notes"
	created.MonthlyPayments[0].Paid = true

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Updated Name", updated.Name)
	assert.Equal(t, "Updated notes", updated.Notes)
	require.Len(t, updated.MonthlyPayments, 2)
	assert.True(t, updated.MonthlyPayments[0].Paid)
	// updated_at is refreshed; may equal created_at in fast tests but must not be zero.
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ghost := tripFixture()
	ghost.ID = uuid.New()

	_, err := r.Update(ctx, ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	err = r.Delete(ctx, testUserID, created.ID)
	require.NoError(t, err)

	_, err = r.GetByID(ctx, testUserID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	err := r.Delete(ctx, testUserID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
