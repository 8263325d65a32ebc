package finance

import (
	"math"
	"sort"
	"time"

	"github.com/mglover/tripwise/internal/domain"
)

// NextPaymentDue returns the unpaid installment with the earliest due date,
// or nil when no installment is both unpaid and dated. Installments sharing
// the earliest due date resolve to plan order. Ad hoc payments and the
// deposit are not considered; they have no position in the installment plan.
func NextPaymentDue(t domain.Trip) *domain.Payment {
	var next *domain.Payment
	for i := range t.MonthlyPayments {
		p := &t.MonthlyPayments[i]
		if p.Paid || p.DueDate.IsZero() {
			continue
		}
		if next == nil || p.DueDate.Time.Before(next.DueDate.Time) {
			next = p
		}
	}
	if next == nil {
		return nil
	}
	out := *next
	return &out
}

// UpcomingAlerts scans every trip's deposit, installment plan, and ad hoc
// payments and returns one alert per unpaid, dated item that is due between
// now and the end of the current calendar month. Items due within seven
// days are urgent; the rest of the month is upcoming; everything else
// (already paid, undated, past due, or due next month) is omitted.
// Alerts are sorted by due date, soonest first.
func UpcomingAlerts(trips []domain.Trip, now time.Time) []domain.Alert {
	oneWeek := now.Add(7 * 24 * time.Hour)
	// Day 0 of the next month normalizes to the last day of the current one.
	endOfMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())

	var alerts []domain.Alert
	for _, t := range trips {
		if t.Deposit > 0 && !t.DepositPaid && !t.DepositDueDate.IsZero() {
			if a, ok := buildAlert(t.Name, t.Deposit.Float64(), t.DepositDueDate, "Deposit", now, oneWeek, endOfMonth); ok {
				alerts = append(alerts, a)
			}
		}

		for _, p := range t.MonthlyPayments {
			if p.Paid || p.DueDate.IsZero() {
				continue
			}
			if a, ok := buildAlert(t.Name, p.Amount.Float64(), p.DueDate, paymentLabel(p), now, oneWeek, endOfMonth); ok {
				alerts = append(alerts, a)
			}
		}

		for _, p := range t.Payments {
			if p.Paid || p.DueDate.IsZero() {
				continue
			}
			if a, ok := buildAlert(t.Name, p.Amount.Float64(), p.DueDate, paymentLabel(p), now, oneWeek, endOfMonth); ok {
				alerts = append(alerts, a)
			}
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DueDate.Time.Before(alerts[j].DueDate.Time)
	})
	return alerts
}

// buildAlert classifies one unpaid payment against the alert windows.
// Returns ok=false when the due date falls outside both windows.
func buildAlert(tripName string, amount float64, due domain.Date, description string, now, oneWeek, endOfMonth time.Time) (domain.Alert, bool) {
	d := due.Time
	if d.Before(now) {
		return domain.Alert{}, false
	}

	var kind domain.AlertType
	switch {
	case !d.After(oneWeek):
		kind = domain.AlertUrgent
	case !d.After(endOfMonth):
		kind = domain.AlertUpcoming
	default:
		return domain.Alert{}, false
	}

	return domain.Alert{
		Type:        kind,
		TripName:    tripName,
		Amount:      amount,
		DueDate:     due,
		Description: description,
		DaysUntil:   daysUntil(d, now),
	}, true
}

// MonthlySchedule groups every unpaid, dated payment (deposits,
// installments, ad hoc) by the calendar month of its due date, summing
// amounts per month. Months are ordered by the first due date that occurs
// in each. Past-due items are included; they are still owed.
func MonthlySchedule(trips []domain.Trip) []domain.MonthGroup {
	byLabel := make(map[string]*domain.MonthGroup)
	var order []string

	add := func(tripName string, amount float64, due domain.Date, kind string) {
		label := due.Time.Format("January 2006")
		g, ok := byLabel[label]
		if !ok {
			g = &domain.MonthGroup{Label: label, First: due}
			byLabel[label] = g
			order = append(order, label)
		}
		g.Total += amount
		g.Payments = append(g.Payments, domain.ScheduledPayment{
			TripName: tripName,
			Amount:   amount,
			Type:     kind,
			DueDate:  due,
		})
	}

	for _, t := range trips {
		if t.Deposit > 0 && !t.DepositPaid && !t.DepositDueDate.IsZero() {
			add(t.Name, t.Deposit.Float64(), t.DepositDueDate, "Deposit")
		}
		for _, p := range t.MonthlyPayments {
			if !p.Paid && !p.DueDate.IsZero() {
				add(t.Name, p.Amount.Float64(), p.DueDate, paymentLabel(p))
			}
		}
		for _, p := range t.Payments {
			if !p.Paid && !p.DueDate.IsZero() {
				add(t.Name, p.Amount.Float64(), p.DueDate, paymentLabel(p))
			}
		}
	}

	groups := make([]domain.MonthGroup, 0, len(order))
	for _, label := range order {
		groups = append(groups, *byLabel[label])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].First.Time.Before(groups[j].First.Time)
	})
	return groups
}

// paymentLabel returns the payment's description, falling back to "Payment".
func paymentLabel(p domain.Payment) string {
	if p.Description != "" {
		return p.Description
	}
	return "Payment"
}

// daysUntil returns the ceiling of the calendar-day difference between due
// and now. A payment due later today reports 1 when any fraction of a day
// remains, 0 when due equals now exactly.
func daysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
