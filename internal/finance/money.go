// Package finance implements the derived financial and lifecycle
// calculations for trips: cost totals, payment progress, status
// classification, and payment scheduling.
//
// Every function here is pure: it takes trips (and, where relevant, an
// explicit "now") and returns derived values without mutating its input or
// touching any I/O. Callers recompute on every read; at tens of trips with
// small nested lists there is nothing worth caching.
package finance

import "github.com/mglover/tripwise/internal/domain"

// TotalCost returns the full cost of a trip: base cost plus flights,
// hotels, and additional expenses. Hotel costs are skipped when the trip's
// accommodation is bundled into the base cost. Missing or malformed amount
// fields contribute zero (see domain.Amount) so a partial record still
// yields a partial sum.
func TotalCost(t domain.Trip) float64 {
	total := t.BaseCost.Float64()

	for _, f := range t.Flights {
		total += f.Cost.Float64()
	}

	if !t.IncludesAccommodation {
		for _, h := range t.Hotels {
			total += h.Cost.Float64()
		}
	}

	for _, e := range t.AdditionalExpenses {
		total += e.Amount.Float64()
	}

	return total
}

// TotalPaid returns the amount already paid toward a trip. An item counts
// only when its own paid flag is set: the deposit via DepositPaid, each
// installment and ad hoc payment via its Paid field.
func TotalPaid(t domain.Trip) float64 {
	var paid float64

	if t.DepositPaid {
		paid += t.Deposit.Float64()
	}

	for _, p := range t.MonthlyPayments {
		if p.Paid {
			paid += p.Amount.Float64()
		}
	}

	for _, p := range t.Payments {
		if p.Paid {
			paid += p.Amount.Float64()
		}
	}

	return paid
}

// Remaining returns TotalCost minus TotalPaid. The result is not clamped:
// an overpaid trip yields a negative balance.
func Remaining(t domain.Trip) float64 {
	return TotalCost(t) - TotalPaid(t)
}

// FleetTotal sums TotalCost across a collection of trips.
func FleetTotal(trips []domain.Trip) float64 {
	var sum float64
	for _, t := range trips {
		sum += TotalCost(t)
	}
	return sum
}

// FleetPaid sums TotalPaid across a collection of trips.
func FleetPaid(trips []domain.Trip) float64 {
	var sum float64
	for _, t := range trips {
		sum += TotalPaid(t)
	}
	return sum
}
