// Package repo contains all database access logic for the Tripwise API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
//
// Scalar trip fields live in columns; the nested lists (flights, payments,
// itinerary, ...) are stored as jsonb and pass through the lenient
// domain.Amount / domain.Date decoding on the way out, which is where
// malformed legacy values are normalized to zero/absent.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mglover/tripwise/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// Every operation is scoped to the owning user; a trip belonging to another
// user behaves exactly like a missing trip (domain.ErrNotFound).
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists for the user.
	GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error)

	// List returns all of a user's trips ordered by created_at descending.
	List(ctx context.Context, userID string) ([]domain.Trip, error)

	// ListPaged returns one page of a user's trips plus the total count.
	ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if no trip with that ID
	// exists for the user.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not
	// exist for the user.
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// tripColumns is the SELECT list shared by every query; scanTrip depends on
// this exact column order.
const tripColumns = `
	id, user_id, name, destination, description, notes,
	start_date, end_date,
	base_cost, includes_accommodation, currency,
	deposit, deposit_due_date, deposit_paid,
	is_booked, is_group_trip, group_trip_organizer, tags,
	flights, hotels, additional_expenses,
	monthly_payments, payments,
	itinerary, travel_checklist, packing_list, documents, photos,
	created_at, updated_at`

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q := `
		INSERT INTO trips (
			user_id, name, destination, description, notes,
			start_date, end_date,
			base_cost, includes_accommodation, currency,
			deposit, deposit_due_date, deposit_paid,
			is_booked, is_group_trip, group_trip_organizer, tags,
			flights, hotels, additional_expenses,
			monthly_payments, payments,
			itinerary, travel_checklist, packing_list, documents, photos
		) VALUES (
			@user_id, @name, @destination, @description, @notes,
			@start_date, @end_date,
			@base_cost, @includes_accommodation, @currency,
			@deposit, @deposit_due_date, @deposit_paid,
			@is_booked, @is_group_trip, @group_trip_organizer, @tags,
			@flights, @hotels, @additional_expenses,
			@monthly_payments, @payments,
			@itinerary, @travel_checklist, @packing_list, @documents, @photos
		)
		RETURNING` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key, scoped to the owning user.
func (r *pgTripRepo) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
	q := `SELECT` + tripColumns + `
		FROM trips
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all of a user's trips, most recently created first.
func (r *pgTripRepo) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	q := `SELECT` + tripColumns + `
		FROM trips
		WHERE user_id = @user_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// ListPaged returns one page of a user's trips plus the total row count.
func (r *pgTripRepo) ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	var total int64
	countRow := r.db.QueryRow(ctx,
		`SELECT count(*) FROM trips WHERE user_id = @user_id`,
		pgx.NamedArgs{"user_id": userID})
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	q := `SELECT` + tripColumns + `
		FROM trips
		WHERE user_id = @user_id
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	return trips, total, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q := `
		UPDATE trips SET
			name = @name,
			destination = @destination,
			description = @description,
			notes = @notes,
			start_date = @start_date,
			end_date = @end_date,
			base_cost = @base_cost,
			includes_accommodation = @includes_accommodation,
			currency = @currency,
			deposit = @deposit,
			deposit_due_date = @deposit_due_date,
			deposit_paid = @deposit_paid,
			is_booked = @is_booked,
			is_group_trip = @is_group_trip,
			group_trip_organizer = @group_trip_organizer,
			tags = @tags,
			flights = @flights,
			hotels = @hotels,
			additional_expenses = @additional_expenses,
			monthly_payments = @monthly_payments,
			payments = @payments,
			itinerary = @itinerary,
			travel_checklist = @travel_checklist,
			packing_list = @packing_list,
			documents = @documents,
			photos = @photos,
			updated_at = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	args["id"] = trip.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key, scoped to the owning user.
func (r *pgTripRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	q := `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs builds the NamedArgs shared by Create and Update.
// Nested structures are marshalled to jsonb; calendar dates map to
// nullable date columns.
func tripArgs(trip domain.Trip) (pgx.NamedArgs, error) {
	flights, err := jsonArg(trip.Flights)
	if err != nil {
		return nil, err
	}
	hotels, err := jsonArg(trip.Hotels)
	if err != nil {
		return nil, err
	}
	expenses, err := jsonArg(trip.AdditionalExpenses)
	if err != nil {
		return nil, err
	}
	monthly, err := jsonArg(trip.MonthlyPayments)
	if err != nil {
		return nil, err
	}
	payments, err := jsonArg(trip.Payments)
	if err != nil {
		return nil, err
	}
	itinerary, err := jsonArg(trip.Itinerary)
	if err != nil {
		return nil, err
	}
	checklist, err := jsonArg(trip.TravelChecklist)
	if err != nil {
		return nil, err
	}
	packing, err := jsonArg(trip.PackingList)
	if err != nil {
		return nil, err
	}
	photos, err := jsonArg(trip.Photos)
	if err != nil {
		return nil, err
	}

	var documents any
	if trip.Documents != nil {
		documents, err = json.Marshal(trip.Documents)
		if err != nil {
			return nil, fmt.Errorf("marshal documents: %w", err)
		}
	}

	tags := trip.Tags
	if tags == nil {
		tags = []string{}
	}

	return pgx.NamedArgs{
		"user_id":                trip.UserID,
		"name":                   trip.Name,
		"destination":            trip.Destination,
		"description":            trip.Description,
		"notes":                  trip.Notes,
		"start_date":             dateArg(trip.StartDate),
		"end_date":               dateArg(trip.EndDate),
		"base_cost":              trip.BaseCost.Float64(),
		"includes_accommodation": trip.IncludesAccommodation,
		"currency":               trip.EffectiveCurrency(),
		"deposit":                trip.Deposit.Float64(),
		"deposit_due_date":       dateArg(trip.DepositDueDate),
		"deposit_paid":           trip.DepositPaid,
		"is_booked":              trip.IsBooked,
		"is_group_trip":          trip.IsGroupTrip,
		"group_trip_organizer":   trip.GroupTripOrganizer,
		"tags":                   tags,
		"flights":                flights,
		"hotels":                 hotels,
		"additional_expenses":    expenses,
		"monthly_payments":       monthly,
		"payments":               payments,
		"itinerary":              itinerary,
		"travel_checklist":       checklist,
		"packing_list":           packing,
		"documents":              documents,
		"photos":                 photos,
	}, nil
}

// jsonArg marshals a nested list for a jsonb column, mapping nil to [].
func jsonArg(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb arg: %w", err)
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

// dateArg maps a domain.Date to a nullable date column value.
func dateArg(d domain.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.Time
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// collectTrips drains rows into a slice using scanTrip.
func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

// scanTrip maps a single database row into a domain.Trip.
// Column order must match tripColumns.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t              domain.Trip
		id             pgtype.UUID
		startDate      pgtype.Date
		endDate        pgtype.Date
		baseCost       float64
		deposit        float64
		depositDueDate pgtype.Date
		flights        []byte
		hotels         []byte
		expenses       []byte
		monthly        []byte
		payments       []byte
		itinerary      []byte
		checklist      []byte
		packing        []byte
		documents      []byte
		photos         []byte
	)

	err := s.Scan(
		&id, &t.UserID, &t.Name, &t.Destination, &t.Description, &t.Notes,
		&startDate, &endDate,
		&baseCost, &t.IncludesAccommodation, &t.Currency,
		&deposit, &depositDueDate, &t.DepositPaid,
		&t.IsBooked, &t.IsGroupTrip, &t.GroupTripOrganizer, &t.Tags,
		&flights, &hotels, &expenses,
		&monthly, &payments,
		&itinerary, &checklist, &packing, &documents, &photos,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = dateFromPg(startDate)
	t.EndDate = dateFromPg(endDate)
	t.BaseCost = domain.Amount(baseCost)
	t.Deposit = domain.Amount(deposit)
	t.DepositDueDate = dateFromPg(depositDueDate)

	if err := unmarshalList(flights, &t.Flights); err != nil {
		return domain.Trip{}, err
	}
	if err := unmarshalList(hotels, &t.Hotels); err != nil {
		return domain.Trip{}, err
	}
	if err := unmarshalList(expenses, &t.AdditionalExpenses); err != nil {
		return domain.Trip{}, err
	}
	if err := unmarshalList(monthly, &t.MonthlyPayments); err != nil {
		return domain.Trip{}, err
	}
	if err := unmarshalList(payments, &t.Payments); err != nil {
		return domain.Trip{}, err
	}
	if err := unmarshalList(itinerary, &t.Itinerary); err != nil {
		return domain.Trip{}, err
	}
	if err := unmarshalList(checklist, &t.TravelChecklist); err != nil {
		return domain.Trip{}, err
	}
	if err := unmarshalList(packing, &t.PackingList); err != nil {
		return domain.Trip{}, err
	}
	if err := unmarshalList(photos, &t.Photos); err != nil {
		return domain.Trip{}, err
	}
	if len(documents) > 0 {
		var docs domain.Documents
		if err := json.Unmarshal(documents, &docs); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal documents: %w", err)
		}
		t.Documents = &docs
	}

	return t, nil
}

// unmarshalList decodes a jsonb list column, leaving the target nil for
// NULL or empty input.
func unmarshalList[T any](data []byte, dst *[]T) error {
	if len(data) == 0 {
		return nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("unmarshal jsonb list: %w", err)
	}
	if len(out) > 0 {
		*dst = out
	}
	return nil
}

// dateFromPg converts a nullable pgtype.Date into a domain.Date.
func dateFromPg(d pgtype.Date) domain.Date {
	if !d.Valid {
		return domain.Date{}
	}
	return domain.Date{Time: d.Time}
}
