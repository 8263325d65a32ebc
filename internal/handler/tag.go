package handler

import (
	"net/http"

	"github.com/mglover/tripwise/internal/middleware"
)

// ListTags handles GET /tags.
// It returns the distinct tags across the user's trips, for form suggestions.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tags.List(r.Context(), middleware.UserIDFrom(r.Context()))
	if err != nil {
		internalError(w)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"tags": tags})
}
