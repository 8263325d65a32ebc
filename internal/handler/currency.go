package handler

import (
	"net/http"
	"strconv"

	"github.com/mglover/tripwise/internal/currency"
)

// GetCurrencyRates handles GET /currency/rates.
// It returns the static USD-relative rate table and the supported codes.
func (s *Server) GetCurrencyRates(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"base":  "USD",
		"rates": currency.Rates(),
		"codes": currency.Codes(),
	})
}

// ConvertCurrency handles GET /currency/convert?amount=&from=&to=.
// Unsupported codes return the amount unchanged, mirroring how the client
// shows the original figure when it cannot convert.
func (s *Server) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil {
		badRequest(w, "amount must be a number")
		return
	}

	from := q.Get("from")
	to := q.Get("to")
	if from == "" || to == "" {
		badRequest(w, "from and to currency codes are required")
		return
	}

	converted := currency.Convert(amount, from, to)
	respondJSON(w, http.StatusOK, map[string]any{
		"amount":    amount,
		"from":      from,
		"to":        to,
		"converted": converted,
		"formatted": currency.Format(converted, to),
	})
}
