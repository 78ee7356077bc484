package models

import "time"

// BookingStatus is the lifecycle state of a booking. The only transition is
// active -> cancelled; completion is inferred by comparing EndTime to now.
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool { return s == StatusActive || s == StatusCancelled }

type User struct {
	ID      string `json:"id"` // hex ObjectID
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type Room struct {
	ID        string   `json:"id"` // hex ObjectID
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment"`
	IsActive  bool     `json:"is_active"`
	Location  string   `json:"location"`
}

// Booking carries a snapshot of the user name/email and room name taken at
// creation time. The snapshot is never re-synced if the user or room is
// edited later.
type Booking struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	UserName          string        `json:"user_name"`
	UserEmail         string        `json:"user_email"`
	RoomID            string        `json:"room_id"`
	RoomName          string        `json:"room_name"`
	Title             string        `json:"title"`
	Date              time.Time     `json:"date"` // midnight of StartTime's day
	StartTime         time.Time     `json:"start_time"`
	EndTime           time.Time     `json:"end_time"`
	Duration          int           `json:"duration"` // minutes
	AttendeeCount     int           `json:"attendee_count"`
	RequiredEquipment []string      `json:"required_equipment"`
	Status            BookingStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
}
