// Package domain contains the core data types for the Tripwise backend.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (finance, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single planned (or completed) journey.
// A trip is the top-level aggregate; every nested structure lives inside it.
//
// Almost every field is optional. The record mirrors what the trip form can
// produce, and older records may predate fields added later, so all derived
// computations must tolerate zero values and empty lists.
type Trip struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"userId"`

	Name        string `json:"name"`
	Destination string `json:"destination"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`

	// StartDate and EndDate are calendar dates; no time-of-day component.
	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`

	// BaseCost is the headline price of the trip (package price, tour fee).
	BaseCost Amount `json:"baseCost,omitempty"`
	// IncludesAccommodation suppresses hotel costs in the total when the
	// accommodation is already bundled into BaseCost.
	IncludesAccommodation bool   `json:"includesAccommodation,omitempty"`
	Currency              string `json:"currency,omitempty"` // ISO 4217, defaults to USD

	Flights            []Flight      `json:"flights,omitempty"`
	Hotels             []Hotel       `json:"hotels,omitempty"`
	AdditionalExpenses []ExpenseItem `json:"additionalExpenses,omitempty"`

	// Deposit is an initial lump-sum payment with its own due date and flag.
	Deposit        Amount `json:"deposit,omitempty"`
	DepositDueDate Date   `json:"depositDueDate,omitempty"`
	DepositPaid    bool   `json:"depositPaid,omitempty"`

	// MonthlyPayments is the ordered installment plan.
	MonthlyPayments []Payment `json:"monthlyPayments,omitempty"`
	// Payments holds ad hoc payments outside the deposit/installment plan.
	Payments []Payment `json:"payments,omitempty"`

	IsBooked           bool   `json:"isBooked,omitempty"`
	IsGroupTrip        bool   `json:"isGroupTrip,omitempty"`
	GroupTripOrganizer string `json:"groupTripOrganizer,omitempty"`

	Tags []string `json:"tags,omitempty"`

	Itinerary       []ItineraryEntry `json:"itinerary,omitempty"`
	TravelChecklist []ChecklistItem  `json:"travelChecklist,omitempty"`
	PackingList     []PackingItem    `json:"packingList,omitempty"`
	Documents       *Documents       `json:"documents,omitempty"`
	Photos          []Photo          `json:"photos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Flight is a single flight booking attached to a trip.
type Flight struct {
	Airline string `json:"airline,omitempty"`
	Route   string `json:"route,omitempty"`
	Cost    Amount `json:"cost,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Hotel is a single accommodation booking attached to a trip.
type Hotel struct {
	Name   string `json:"name,omitempty"`
	Nights int    `json:"nights,omitempty"`
	Cost   Amount `json:"cost,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// ExpenseItem is an arbitrary additional cost line (tours, visas, gear).
type ExpenseItem struct {
	Description string `json:"description,omitempty"`
	Amount      Amount `json:"amount,omitempty"`
}

// Payment is one entry in a trip's installment plan or ad hoc payment list.
type Payment struct {
	Description string `json:"description,omitempty"`
	Amount      Amount `json:"amount,omitempty"`
	DueDate     Date   `json:"dueDate,omitempty"`
	Paid        bool   `json:"paid,omitempty"`
}

// PaymentKind identifies which of a trip's three payment buckets an
// operation targets.
type PaymentKind string

const (
	KindDeposit PaymentKind = "deposit"
	KindMonthly PaymentKind = "monthly"
	KindAdHoc   PaymentKind = "adhoc"
)

// ItineraryEntry is a dated plan item within the trip.
type ItineraryEntry struct {
	Date        Date   `json:"date,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// ChecklistItem is a pre-trip task with an optional reference link.
type ChecklistItem struct {
	Task      string `json:"task,omitempty"`
	Completed bool   `json:"completed,omitempty"`
	Link      string `json:"link,omitempty"`
}

// PackingItem is one line of the packing list.
type PackingItem struct {
	Item   string `json:"item,omitempty"`
	Packed bool   `json:"packed,omitempty"`
	Link   string `json:"link,omitempty"`
}

// Documents groups travel-document details for a trip.
type Documents struct {
	PassportExpiry  Date   `json:"passportExpiry,omitempty"`
	VisaRequired    bool   `json:"visaRequired,omitempty"`
	VisaNotes       string `json:"visaNotes,omitempty"`
	InsuranceHolder string `json:"insuranceHolder,omitempty"`
	InsurancePolicy string `json:"insurancePolicy,omitempty"`
}

// Photo is a captioned photo URL attached to a trip.
type Photo struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// EffectiveCurrency returns the trip's currency code, defaulting to USD.
func (t Trip) EffectiveCurrency() string {
	if t.Currency == "" {
		return "USD"
	}
	return t.Currency
}
