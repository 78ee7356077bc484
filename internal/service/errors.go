package service

import (
	"errors"
	"fmt"
)

// Booking rejections. These are expected outcomes, not failures; handlers
// match on them to pick a status code and a machine-readable code string.
// Anything else bubbling out of the services is a storage-level error.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrPastTimeSlot         = errors.New("cannot book for past time slots")
	ErrInvalidDuration      = errors.New("booking must be between 30 minutes and 4 hours")
	ErrOutsideBusinessHours = errors.New("bookings are only allowed between 9 AM and 6 PM")
	ErrNotSameDay           = errors.New("bookings are only allowed for the current day")

	ErrSlotConflict = errors.New("room is already booked for this time slot")
	ErrNotOwner     = errors.New("you can only cancel your own bookings")

	ErrInvalidRoom = errors.New("invalid room")
)

// CapacityError rejects an attendee count over the room's capacity. It
// carries the capacity so callers can report the actual limit.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("room capacity (%d) exceeded", e.Capacity)
}
