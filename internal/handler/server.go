// Package handler implements the HTTP handlers for the Tripwise API.
// All handlers are methods on Server; methods are split into domain-specific
// files (trip.go, budget.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mglover/tripwise/internal/domain"
	"github.com/mglover/tripwise/internal/middleware"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	SetPaymentPaid(ctx context.Context, userID string, tripID uuid.UUID, kind domain.PaymentKind, index int, paid bool) (domain.Trip, error)
}

// BudgetServicer defines the derived-financials operations the budget
// handlers depend on.
type BudgetServicer interface {
	Summary(ctx context.Context, userID string) (domain.BudgetSummary, error)
	Alerts(ctx context.Context, userID string) ([]domain.Alert, error)
	Schedule(ctx context.Context, userID string) ([]domain.MonthGroup, error)
}

// ExportServicer defines the flat-export operation the export handler
// depends on.
type ExportServicer interface {
	Export(ctx context.Context, userID string) ([]domain.ExportRow, error)
}

// TagServicer defines the tag listing the tags handler depends on.
type TagServicer interface {
	List(ctx context.Context, userID string) ([]string, error)
}

// Server holds the dependencies for all API endpoints.
// The clock is injected so handler tests can pin trip statuses.
type Server struct {
	trips  TripServicer
	budget BudgetServicer
	export ExportServicer
	tags   TagServicer
	now    func() time.Time
}

// NewServer constructs the Server with all its dependencies.
// Pass nil for now to use time.Now.
func NewServer(trips TripServicer, budget BudgetServicer, export ExportServicer, tags TagServicer, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{trips: trips, budget: budget, export: export, tags: tags, now: now}
}

// Routes mounts every API endpoint on a fresh chi router.
// Everything except the health check and the embedded OpenAPI spec requires
// a user identity (X-User-ID, set by the fronting auth proxy).
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)

	r.Get("/currency/rates", s.GetCurrencyRates)
	r.Get("/currency/convert", s.ConvertCurrency)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.CreateTrip)
			r.Get("/", s.ListTrips)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)
				r.Patch("/payments", s.SetPaymentPaid)
			})
		})

		r.Route("/budget", func(r chi.Router) {
			r.Get("/summary", s.GetBudgetSummary)
			r.Get("/alerts", s.GetPaymentAlerts)
			r.Get("/schedule", s.GetPaymentSchedule)
		})

		r.Get("/export", s.GetExport)
		r.Get("/tags", s.ListTags)
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
