package service

import "time"

const (
	openingHour = 9  // bookings may not start before 09:00
	closingHour = 18 // bookings must end by 18:00 sharp

	minDurationMinutes = 30
	maxDurationMinutes = 240
)

// validateBookingTime checks a candidate window against the booking policy.
// Pure decision function; rules run in order and the first failure wins.
// A window ending exactly at 18:00 is allowed.
//
// Wall-clock rules are evaluated in the clock's zone, so the decision for an
// instant never depends on the offset the client serialized it with.
func validateBookingTime(start, end, now time.Time) error {
	start = start.In(now.Location())
	end = end.In(now.Location())
	if start.Before(now) {
		return ErrPastTimeSlot
	}
	if !end.After(start) {
		return ErrInvalidDuration
	}
	minutes := int(end.Sub(start) / time.Minute)
	if minutes < minDurationMinutes || minutes > maxDurationMinutes {
		return ErrInvalidDuration
	}
	if start.Hour() < openingHour {
		return ErrOutsideBusinessHours
	}
	if end.Hour() > closingHour ||
		(end.Hour() == closingHour && (end.Minute() != 0 || end.Second() != 0 || end.Nanosecond() != 0)) {
		return ErrOutsideBusinessHours
	}
	if !sameDay(start, now) {
		return ErrNotSameDay
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// startOfDay is the calendar-day key stored on a booking, local midnight of
// its start time.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
