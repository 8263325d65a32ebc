// Package service contains the business logic for the Tripwise API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mglover/tripwise/internal/domain"
	"github.com/mglover/tripwise/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID, scoped to the owning user.
func (s *TripService) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all of a user's trips.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListPaged returns one page of a user's trips plus the total count.
func (s *TripService) ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and updates an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID, scoped to the owning user.
func (s *TripService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// SetPaymentPaid toggles the paid flag of one payment item in place and
// returns the updated trip. kind selects the bucket (deposit, installment
// plan, or ad hoc); index addresses the list entry and is ignored for the
// deposit.
// Returns domain.ErrValidation for an unknown kind or out-of-range index.
func (s *TripService) SetPaymentPaid(ctx context.Context, userID string, tripID uuid.UUID, kind domain.PaymentKind, index int, paid bool) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, userID, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetPaymentPaid: %w", err)
	}

	switch kind {
	case domain.KindDeposit:
		trip.DepositPaid = paid
	case domain.KindMonthly:
		if index < 0 || index >= len(trip.MonthlyPayments) {
			return domain.Trip{}, fmt.Errorf("%w: monthly payment index out of range", domain.ErrValidation)
		}
		trip.MonthlyPayments[index].Paid = paid
	case domain.KindAdHoc:
		if index < 0 || index >= len(trip.Payments) {
			return domain.Trip{}, fmt.Errorf("%w: payment index out of range", domain.ErrValidation)
		}
		trip.Payments[index].Paid = paid
	default:
		return domain.Trip{}, fmt.Errorf("%w: unknown payment kind %q", domain.ErrValidation, kind)
	}

	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetPaymentPaid: %w", err)
	}
	return result, nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name and Destination must be non-empty (whitespace-only rejected).
//   - StartDate and EndDate must be present.
//
// EndDate before StartDate is deliberately NOT rejected: such records exist
// in stored data and the status classifier defines their behavior. Rejecting
// them here would strand users unable to re-save an old trip.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", domain.ErrValidation)
	}
	if trip.EndDate.IsZero() {
		return fmt.Errorf("%w: end date is required", domain.ErrValidation)
	}
	return nil
}
