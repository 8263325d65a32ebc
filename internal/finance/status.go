package finance

import (
	"time"

	"github.com/mglover/tripwise/internal/domain"
)

// Classify derives a trip's lifecycle status from its dates relative to now.
//
// The check order is part of the contract: upcoming (start after now) is
// evaluated first, completed (end before now) second, and everything else
// is active. For a malformed record whose end date precedes its start date
// both conditions can hold at once; the order above decides the winner and
// must not be reordered, because stored data relying on the old behavior
// exists. A missing date fails its comparison, so a trip with no dates at
// all classifies as active.
func Classify(t domain.Trip, now time.Time) domain.TripStatus {
	if !t.StartDate.IsZero() && t.StartDate.Time.After(now) {
		return domain.StatusUpcoming
	}
	if !t.EndDate.IsZero() && t.EndDate.Time.Before(now) {
		return domain.StatusCompleted
	}
	return domain.StatusActive
}

// StatusGroups partitions a trip collection by derived status.
type StatusGroups struct {
	Upcoming  []domain.Trip
	Active    []domain.Trip
	Completed []domain.Trip
}

// ClassifyAll partitions trips into upcoming, active, and completed groups
// using Classify, so every trip lands in exactly one group.
func ClassifyAll(trips []domain.Trip, now time.Time) StatusGroups {
	var g StatusGroups
	for _, t := range trips {
		switch Classify(t, now) {
		case domain.StatusUpcoming:
			g.Upcoming = append(g.Upcoming, t)
		case domain.StatusCompleted:
			g.Completed = append(g.Completed, t)
		default:
			g.Active = append(g.Active, t)
		}
	}
	return g
}
