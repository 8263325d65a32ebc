package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mglover/tripwise/internal/domain"
)

func TestAmount_UnmarshalLenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.Amount
	}{
		{"number", `1200.5`, 1200.5},
		{"numeric string", `"1200.50"`, 1200.5},
		{"string with trailing junk", `"450 approx"`, 450},
		{"negative string", `"-50"`, -50},
		{"empty string", `""`, 0},
		{"garbage string", `"tbd"`, 0},
		{"null", `null`, 0},
		{"wrong type", `{"v":1}`, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a domain.Amount
			require.NoError(t, json.Unmarshal([]byte(tc.in), &a))
			assert.Equal(t, tc.want, a)
		})
	}
}

func TestDate_UnmarshalLenient(t *testing.T) {
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15"`), &d))
	assert.Equal(t, domain.NewDate(2026, 3, 15), d)

	// RFC 3339 timestamps from older records keep only the date part.
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15T18:30:00Z"`), &d))
	assert.Equal(t, domain.NewDate(2026, 3, 15), d)

	for _, in := range []string{`""`, `null`, `"not a date"`, `"15/03/2026"`, `42`} {
		require.NoError(t, json.Unmarshal([]byte(in), &d), in)
		assert.True(t, d.IsZero(), in)
	}
}

func TestDate_MarshalRoundTrip(t *testing.T) {
	b, err := json.Marshal(domain.NewDate(2026, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(b))

	b, err = json.Marshal(domain.Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

// A malformed field must never poison its siblings: the rest of the trip
// still decodes and partial sums still accumulate.
func TestTrip_UnmarshalPartialRecord(t *testing.T) {
	raw := `{
		"name": "Morocco",
		"destination": "Marrakech",
		"baseCost": "900",
		"flights": [{"cost": "not sure yet"}, {"cost": 210}],
		"deposit": "150",
		"depositPaid": true,
		"monthlyPayments": [{"amount": "100", "dueDate": "2026-05-01"}],
		"startDate": "2026-06-01",
		"endDate": "garbage"
	}`

	var trip domain.Trip
	require.NoError(t, json.Unmarshal([]byte(raw), &trip))

	assert.Equal(t, domain.Amount(900), trip.BaseCost)
	assert.Equal(t, domain.Amount(0), trip.Flights[0].Cost)
	assert.Equal(t, domain.Amount(210), trip.Flights[1].Cost)
	assert.Equal(t, domain.Amount(150), trip.Deposit)
	assert.True(t, trip.DepositPaid)
	assert.Equal(t, domain.NewDate(2026, 5, 1), trip.MonthlyPayments[0].DueDate)
	assert.Equal(t, domain.NewDate(2026, 6, 1), trip.StartDate)
	assert.True(t, trip.EndDate.IsZero())
}

func TestTrip_EffectiveCurrency(t *testing.T) {
	assert.Equal(t, "USD", domain.Trip{}.EffectiveCurrency())
	assert.Equal(t, "JPY", domain.Trip{Currency: "JPY"}.EffectiveCurrency())
}
