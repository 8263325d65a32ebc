package handler

import (
	"net/http"

	"github.com/mglover/tripwise/spec"
)

// GetOpenAPISpec handles GET /openapi.yaml.
// Serving the embedded spec from the binary keeps the documented API and
// the running code in sync.
func (s *Server) GetOpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	//nolint:errcheck
	w.Write(spec.OpenAPI)
}
