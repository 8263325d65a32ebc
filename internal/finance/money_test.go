package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mglover/tripwise/internal/domain"
	"github.com/mglover/tripwise/internal/finance"
)

// fullTrip is a trip exercising every cost and payment component at once.
func fullTrip() domain.Trip {
	return domain.Trip{
		Name:     "Japan 2026",
		BaseCost: 1000,
		Flights: []domain.Flight{
			{Airline: "ANA", Route: "LHR-HND", Cost: 200},
		},
		Hotels: []domain.Hotel{
			{Name: "Shinjuku Granbell", Nights: 5, Cost: 300},
		},
		Deposit:     200,
		DepositPaid: true,
	}
}

func TestTotalCost_AllComponents(t *testing.T) {
	trip := fullTrip()

	assert.Equal(t, 1500.0, finance.TotalCost(trip))
	assert.Equal(t, 200.0, finance.TotalPaid(trip))
	assert.Equal(t, 1300.0, finance.Remaining(trip))
}

func TestTotalCost_BaseCostOnly(t *testing.T) {
	trip := domain.Trip{BaseCost: 2450.75}
	assert.Equal(t, 2450.75, finance.TotalCost(trip))
}

func TestTotalCost_EmptyTrip(t *testing.T) {
	assert.Equal(t, 0.0, finance.TotalCost(domain.Trip{}))
	assert.Equal(t, 0.0, finance.TotalPaid(domain.Trip{}))
	assert.Equal(t, 0.0, finance.Remaining(domain.Trip{}))
}

func TestTotalCost_AccommodationIncludedSkipsHotels(t *testing.T) {
	trip := fullTrip()
	trip.IncludesAccommodation = true

	assert.Equal(t, 1200.0, finance.TotalCost(trip))
}

func TestTotalCost_AdditionalExpenses(t *testing.T) {
	trip := domain.Trip{
		BaseCost: 100,
		AdditionalExpenses: []domain.ExpenseItem{
			{Description: "Rail pass", Amount: 250},
			{Description: "Travel insurance", Amount: 49.50},
		},
	}
	assert.Equal(t, 399.50, finance.TotalCost(trip))
}

func TestTotalPaid_IgnoresUnpaidItems(t *testing.T) {
	trip := domain.Trip{
		Deposit:     500, // unpaid — must not count
		DepositPaid: false,
		MonthlyPayments: []domain.Payment{
			{Amount: 100, Paid: true},
			{Amount: 100, Paid: false},
		},
		Payments: []domain.Payment{
			{Amount: 75, Paid: true},
			{Amount: 9999, Paid: false},
		},
	}

	assert.Equal(t, 175.0, finance.TotalPaid(trip))
}

func TestRemaining_CanGoNegative(t *testing.T) {
	trip := domain.Trip{
		BaseCost: 100,
		Payments: []domain.Payment{{Amount: 150, Paid: true}},
	}
	assert.Equal(t, -50.0, finance.Remaining(trip))
}

func TestRemaining_EqualsCostMinusPaid(t *testing.T) {
	trips := []domain.Trip{fullTrip(), {BaseCost: 42}, {}}
	for _, trip := range trips {
		assert.Equal(t, finance.TotalCost(trip)-finance.TotalPaid(trip), finance.Remaining(trip))
	}
}

func TestFleetTotals(t *testing.T) {
	trips := []domain.Trip{
		fullTrip(),             // cost 1500, paid 200
		{BaseCost: 500},        // cost 500, paid 0
		{},                     // empty record contributes nothing
	}

	assert.Equal(t, 2000.0, finance.FleetTotal(trips))
	assert.Equal(t, 200.0, finance.FleetPaid(trips))
}

func TestFleetTotals_EmptyCollection(t *testing.T) {
	assert.Equal(t, 0.0, finance.FleetTotal(nil))
	assert.Equal(t, 0.0, finance.FleetPaid(nil))
}
