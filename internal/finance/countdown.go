package finance

import (
	"strconv"
	"time"

	"github.com/mglover/tripwise/internal/domain"
)

// DaysUntilTrip returns how many whole or partial days remain until the
// trip's start date, floored at zero once the date has arrived.
// ok is false when the trip has no start date.
func DaysUntilTrip(start domain.Date, now time.Time) (days int, ok bool) {
	if start.IsZero() {
		return 0, false
	}
	d := daysUntil(start.Time, now)
	if d < 0 {
		d = 0
	}
	return d, true
}

// CountdownText renders the start-date countdown the way the dashboard
// shows it: "Today!", "1 day", or "N days". Empty when there is no date.
func CountdownText(start domain.Date, now time.Time) string {
	days, ok := DaysUntilTrip(start, now)
	if !ok {
		return ""
	}
	switch days {
	case 0:
		return "Today!"
	case 1:
		return "1 day"
	default:
		return strconv.Itoa(days) + " days"
	}
}
