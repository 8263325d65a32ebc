package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/mglover/tripwise/internal/domain"
	"github.com/mglover/tripwise/internal/middleware"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "destination", "start_date", "end_date",
	"currency", "total_cost", "total_paid", "remaining",
	"payment_kind", "payment_description", "payment_amount",
	"payment_due_date", "payment_paid",
}

// exportRow is the JSON rendering of a domain.ExportRow.
type exportRow struct {
	TripID             string  `json:"tripId"`
	TripName           string  `json:"tripName"`
	Destination        string  `json:"destination"`
	TripStartDate      string  `json:"startDate,omitempty"`
	TripEndDate        string  `json:"endDate,omitempty"`
	Currency           string  `json:"currency"`
	TotalCost          float64 `json:"totalCost"`
	TotalPaid          float64 `json:"totalPaid"`
	Remaining          float64 `json:"remaining"`
	PaymentKind        string  `json:"paymentKind,omitempty"`
	PaymentDescription string  `json:"paymentDescription,omitempty"`
	PaymentAmount      float64 `json:"paymentAmount,omitempty"`
	PaymentDueDate     string  `json:"paymentDueDate,omitempty"`
	PaymentPaid        bool    `json:"paymentPaid,omitempty"`
}

// GetExport handles GET /export.
// It returns a flat table of every trip and payment combination.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context(), middleware.UserIDFrom(r.Context()))
	if err != nil {
		internalError(w)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]exportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRow(row))
	}
	respondJSON(w, http.StatusOK, out)
}

// writeCSV streams the export as CSV with a Content-Disposition so browsers
// download it as a file.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)

	cw := csv.NewWriter(w)
	//nolint:errcheck — csv.Writer reports errors via Flush/Error below.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write([]string{
			r.TripID,
			r.TripName,
			r.Destination,
			r.TripStartDate,
			r.TripEndDate,
			r.Currency,
			formatFloat(r.TotalCost),
			formatFloat(r.TotalPaid),
			formatFloat(r.Remaining),
			r.PaymentKind,
			r.PaymentDescription,
			formatFloat(r.PaymentAmount),
			r.PaymentDueDate,
			strconv.FormatBool(r.PaymentPaid),
		})
	}
	cw.Flush()
}

// formatFloat renders an amount without trailing zeros ("1500", "49.5").
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
