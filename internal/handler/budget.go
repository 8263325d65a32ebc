package handler

import (
	"net/http"

	"github.com/mglover/tripwise/internal/middleware"
)

// GetBudgetSummary handles GET /budget/summary.
// It returns the portfolio-level totals and trip counts for the user.
func (s *Server) GetBudgetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.budget.Summary(r.Context(), middleware.UserIDFrom(r.Context()))
	if err != nil {
		internalError(w)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// GetPaymentAlerts handles GET /budget/alerts.
// It returns due-soon payment notifications sorted by due date.
func (s *Server) GetPaymentAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.budget.Alerts(r.Context(), middleware.UserIDFrom(r.Context()))
	if err != nil {
		internalError(w)
		return
	}
	respondJSON(w, http.StatusOK, alerts)
}

// GetPaymentSchedule handles GET /budget/schedule.
// It returns unpaid payments grouped by calendar month, chronologically.
func (s *Server) GetPaymentSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := s.budget.Schedule(r.Context(), middleware.UserIDFrom(r.Context()))
	if err != nil {
		internalError(w)
		return
	}
	respondJSON(w, http.StatusOK, schedule)
}
