package service

import (
	"context"
	"fmt"

	"github.com/mglover/tripwise/internal/domain"
	"github.com/mglover/tripwise/internal/finance"
	"github.com/mglover/tripwise/internal/repo"
)

// ExportService assembles a full flat export of a user's trips and payments.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per payment item (deposit, installment,
// ad hoc) across all of the user's trips. Trips with no payment items
// contribute one row with empty payment fields, so the export always shows
// every trip. Derived totals are recomputed per trip at export time.
func (s *ExportService) Export(ctx context.Context, userID string) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(trips))
	for _, t := range trips {
		base := domain.ExportRow{
			TripID:        t.ID.String(),
			TripName:      t.Name,
			Destination:   t.Destination,
			TripStartDate: t.StartDate.String(),
			TripEndDate:   t.EndDate.String(),
			Currency:      t.EffectiveCurrency(),
			TotalCost:     finance.TotalCost(t),
			TotalPaid:     finance.TotalPaid(t),
			Remaining:     finance.Remaining(t),
		}

		before := len(rows)

		if t.Deposit > 0 || !t.DepositDueDate.IsZero() {
			row := base
			row.PaymentKind = string(domain.KindDeposit)
			row.PaymentDescription = "Deposit"
			row.PaymentAmount = t.Deposit.Float64()
			row.PaymentDueDate = t.DepositDueDate.String()
			row.PaymentPaid = t.DepositPaid
			rows = append(rows, row)
		}
		for _, p := range t.MonthlyPayments {
			rows = append(rows, paymentRow(base, domain.KindMonthly, p))
		}
		for _, p := range t.Payments {
			rows = append(rows, paymentRow(base, domain.KindAdHoc, p))
		}

		// No payment items at all — keep the trip visible anyway.
		if len(rows) == before {
			rows = append(rows, base)
		}
	}

	return rows, nil
}

// paymentRow fills the payment fields of an export row from one list entry.
func paymentRow(base domain.ExportRow, kind domain.PaymentKind, p domain.Payment) domain.ExportRow {
	row := base
	row.PaymentKind = string(kind)
	row.PaymentDescription = p.Description
	row.PaymentAmount = p.Amount.Float64()
	row.PaymentDueDate = p.DueDate.String()
	row.PaymentPaid = p.Paid
	return row
}
