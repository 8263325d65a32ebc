package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mglover/tripwise/internal/domain"
	"github.com/mglover/tripwise/internal/finance"
	"github.com/mglover/tripwise/internal/repo"
)

// BudgetService derives portfolio-level financial views from a user's trips.
// It owns no state: it loads the trip snapshot and hands it to the pure
// functions in the finance package.
//
// The clock is injected so tests (and backfills) can pin "now"; everything
// downstream of it — statuses, alert windows — is deterministic.
type BudgetService struct {
	trips repo.TripRepo
	now   func() time.Time
}

// NewBudgetService constructs a BudgetService backed by the provided TripRepo.
// Pass nil for now to use time.Now.
func NewBudgetService(trips repo.TripRepo, now func() time.Time) *BudgetService {
	if now == nil {
		now = time.Now
	}
	return &BudgetService{trips: trips, now: now}
}

// Summary returns the portfolio overview across all of the user's trips:
// fleet cost/paid/remaining, percent paid, and per-status trip counts.
func (s *BudgetService) Summary(ctx context.Context, userID string) (domain.BudgetSummary, error) {
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}

	totalCost := finance.FleetTotal(trips)
	totalPaid := finance.FleetPaid(trips)

	var percent float64
	if totalCost > 0 {
		percent = totalPaid / totalCost * 100
	}

	groups := finance.ClassifyAll(trips, s.now())

	return domain.BudgetSummary{
		TotalCost:      totalCost,
		TotalPaid:      totalPaid,
		Remaining:      totalCost - totalPaid,
		PercentPaid:    percent,
		TripCount:      len(trips),
		UpcomingTrips:  len(groups.Upcoming),
		ActiveTrips:    len(groups.Active),
		CompletedTrips: len(groups.Completed),
	}, nil
}

// Alerts returns due-soon payment notifications across the user's trips,
// sorted by due date. Always returns a non-nil slice.
func (s *BudgetService) Alerts(ctx context.Context, userID string) ([]domain.Alert, error) {
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.BudgetService.Alerts: %w", err)
	}

	alerts := finance.UpcomingAlerts(trips, s.now())
	if alerts == nil {
		return []domain.Alert{}, nil
	}
	return alerts, nil
}

// Schedule returns the user's unpaid payments grouped by calendar month,
// in chronological order. Always returns a non-nil slice.
func (s *BudgetService) Schedule(ctx context.Context, userID string) ([]domain.MonthGroup, error) {
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.BudgetService.Schedule: %w", err)
	}

	groups := finance.MonthlySchedule(trips)
	if groups == nil {
		return []domain.MonthGroup{}, nil
	}
	return groups, nil
}
