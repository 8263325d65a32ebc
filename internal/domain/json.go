package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Amount is a monetary value parsed leniently from JSON.
//
// Records written by older clients store amounts as strings ("1200",
// "1200.50"), newer ones as numbers. Unparseable or missing values decode
// to 0 instead of failing, so one bad field never aborts decoding of the
// rest of the trip. Derived sums simply treat such fields as zero.
type Amount float64

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
// Anything else decodes to 0 without error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*a = Amount(parseLenientFloat(s))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	*a = Amount(f)
	return nil
}

// MarshalJSON always writes a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// Float64 returns the amount as a plain float64.
func (a Amount) Float64() float64 { return float64(a) }

// parseLenientFloat parses the longest leading numeric prefix of s,
// matching how the web client's parseFloat treated form input.
// "1200.50" -> 1200.5, "450 approx" -> 450, "abc" -> 0.
func parseLenientFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	end := 0
	seenDigit := false
	seenDot := false
loop:
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' && !seenDot:
			seenDot = true
		case (r == '+' || r == '-') && i == 0:
			// leading sign is fine
		default:
			break loop
		}
		end = i + 1
	}
	if !seenDigit {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimRight(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return f
}

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day or timezone component.
//
// It decodes from "2006-01-02" (the trip form's format) and tolerates full
// RFC 3339 timestamps from records that were saved with one. Empty, null,
// or unparseable values decode to the zero Date, which every consumer
// treats as "absent": excluded from scheduling, alerts, and grouping.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON decodes a calendar date, treating malformed input as absent.
func (d *Date) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		// Keep only the calendar date part.
		d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return nil
}

// MarshalJSON writes "2006-01-02", or null for the zero Date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(dateLayout))
}

// String returns the "2006-01-02" form, or "" for the zero Date.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}
