package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/mglover/tripwise/internal/domain"
	"github.com/mglover/tripwise/internal/finance"
	"github.com/mglover/tripwise/internal/middleware"
)

// tripRequest is the create/update payload. It reuses the domain record's
// JSON shape (with its lenient amount/date decoding for nested payment
// structures) but takes the two scalar trip dates as strict wire dates, so
// a mistyped startDate is rejected instead of silently dropped.
type tripRequest struct {
	domain.Trip
	StartDate *openapi_types.Date `json:"startDate"`
	EndDate   *openapi_types.Date `json:"endDate"`
}

// toDomain builds the domain.Trip for the service layer, discarding any
// client-supplied identity and timestamps.
func (req tripRequest) toDomain(userID string) domain.Trip {
	trip := req.Trip
	trip.ID = uuid.Nil
	trip.UserID = userID
	trip.StartDate = dateFromWire(req.StartDate)
	trip.EndDate = dateFromWire(req.EndDate)
	return trip
}

// tripResponse is a trip plus its derived financials and status.
// Derived values are recomputed on every read, never stored.
type tripResponse struct {
	domain.Trip
	Status         domain.TripStatus `json:"status"`
	TotalCost      float64           `json:"totalCost"`
	TotalPaid      float64           `json:"totalPaid"`
	Remaining      float64           `json:"remaining"`
	NextPaymentDue *domain.Payment   `json:"nextPaymentDue,omitempty"`
	Countdown      string            `json:"countdown,omitempty"`
}

// toResponse decorates a trip with its derived values.
func (s *Server) toResponse(t domain.Trip) tripResponse {
	now := s.now()
	return tripResponse{
		Trip:           t,
		Status:         finance.Classify(t, now),
		TotalCost:      finance.TotalCost(t),
		TotalPaid:      finance.TotalPaid(t),
		Remaining:      finance.Remaining(t),
		NextPaymentDue: finance.NextPaymentDue(t),
		Countdown:      finance.CountdownText(t.StartDate, now),
	}
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	created, err := s.trips.Create(r.Context(), req.toDomain(middleware.UserIDFrom(r.Context())))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationFailed(w, err)
			return
		}
		internalError(w)
		return
	}

	respondJSON(w, http.StatusCreated, s.toResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := s.trips.ListPaged(r.Context(), middleware.UserIDFrom(r.Context()), params)
	if err != nil {
		internalError(w)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = s.toResponse(t)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"data": data,
		"pagination": map[string]int{
			"page":  params.Page,
			"limit": params.Limit,
			"total": int(total),
		},
	})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), middleware.UserIDFrom(r.Context()), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w)
		return
	}

	respondJSON(w, http.StatusOK, s.toResponse(trip))
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	trip := req.toDomain(middleware.UserIDFrom(r.Context()))
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			validationFailed(w, err)
			return
		}
		internalError(w)
		return
	}

	respondJSON(w, http.StatusOK, s.toResponse(updated))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), middleware.UserIDFrom(r.Context()), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// setPaymentPaidRequest is the PATCH /trips/{id}/payments payload.
type setPaymentPaidRequest struct {
	Kind  domain.PaymentKind `json:"kind"`
	Index int                `json:"index"`
	Paid  bool               `json:"paid"`
}

// SetPaymentPaid handles PATCH /trips/{id}/payments.
// It toggles one paid flag (deposit, installment, or ad hoc payment) and
// returns the updated trip with recomputed financials.
func (s *Server) SetPaymentPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req setPaymentPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	updated, err := s.trips.SetPaymentPaid(r.Context(), middleware.UserIDFrom(r.Context()), id, req.Kind, req.Index, req.Paid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			validationFailed(w, err)
			return
		}
		internalError(w)
		return
	}

	respondJSON(w, http.StatusOK, s.toResponse(updated))
}

// ---- helpers ---------------------------------------------------------------

// tripID parses the {id} path parameter, writing a 400 when it is not a UUID.
func tripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, nil when absent or
// malformed.
func queryInt(r *http.Request, name string) *int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// dateFromWire converts an optional wire date into a domain.Date.
func dateFromWire(d *openapi_types.Date) domain.Date {
	if d == nil {
		return domain.Date{}
	}
	return domain.Date{Time: d.Time}
}
