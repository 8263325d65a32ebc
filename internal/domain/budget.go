package domain

// TripStatus is the derived lifecycle classification of a trip.
// It is never stored; it is recomputed from the trip dates on every read,
// so it changes silently as time passes without any write to the record.
type TripStatus string

const (
	StatusUpcoming  TripStatus = "upcoming"
	StatusActive    TripStatus = "active"
	StatusCompleted TripStatus = "completed"
)

// AlertType distinguishes how soon an unpaid payment is due.
type AlertType string

const (
	// AlertUrgent marks payments due within the next seven days.
	AlertUrgent AlertType = "urgent"
	// AlertUpcoming marks payments due later this calendar month.
	AlertUpcoming AlertType = "upcoming"
)

// Alert is a derived notification for an unpaid payment that is due soon.
type Alert struct {
	Type        AlertType `json:"type"`
	TripName    string    `json:"tripName"`
	Amount      float64   `json:"amount"`
	DueDate     Date      `json:"dueDate"`
	Description string    `json:"description"`
	DaysUntil   int       `json:"daysUntil"`
}

// ScheduledPayment is one unpaid payment inside a MonthGroup.
type ScheduledPayment struct {
	TripName string  `json:"tripName"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"` // "Deposit", the payment description, or "Payment"
	DueDate  Date    `json:"dueDate"`
}

// MonthGroup aggregates all unpaid payments due in one calendar month.
// Label is human-readable ("January 2026"); First is the earliest due date
// seen for the month and is what chronological ordering is based on.
type MonthGroup struct {
	Label    string             `json:"month"`
	First    Date               `json:"-"`
	Total    float64            `json:"total"`
	Payments []ScheduledPayment `json:"payments"`
}

// BudgetSummary is the portfolio-level financial overview across all of a
// user's trips.
type BudgetSummary struct {
	TotalCost      float64 `json:"totalCost"`
	TotalPaid      float64 `json:"totalPaid"`
	Remaining      float64 `json:"remaining"`
	PercentPaid    float64 `json:"percentPaid"`
	TripCount      int     `json:"tripCount"`
	UpcomingTrips  int     `json:"upcomingTrips"`
	ActiveTrips    int     `json:"activeTrips"`
	CompletedTrips int     `json:"completedTrips"`
}
