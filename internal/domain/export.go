package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per payment item (deposit,
// installment, or ad hoc), with trip fields repeated for every payment on
// that trip. Trips with no payment items yield one row with empty payment
// fields so they still appear in the export.
type ExportRow struct {
	// Trip fields — repeated for every payment on the trip.
	TripID          string
	TripName        string
	Destination     string
	TripStartDate   string // "2006-01-02" formatted date, "" when absent
	TripEndDate     string
	Currency        string
	TotalCost       float64
	TotalPaid       float64
	Remaining       float64

	// Payment fields — zero values when the trip has no payments.
	PaymentKind        string // "deposit", "monthly", or "adhoc"
	PaymentDescription string
	PaymentAmount      float64
	PaymentDueDate     string
	PaymentPaid        bool
}
