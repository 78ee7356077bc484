package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Rev0212/meeting/internal/models"
	"github.com/Rev0212/meeting/internal/repo"
)

// Notifier delivers booking emails. Delivery is best effort: the service
// dispatches off the request path and only logs failures.
type Notifier interface {
	SendBookingConfirmation(b *models.Booking) error
	SendCancellationNotification(b *models.Booking) error
}

type CreateBookingInput struct {
	UserID            string
	RoomID            string
	Title             string
	StartTime         time.Time
	EndTime           time.Time
	AttendeeCount     int
	RequiredEquipment []string
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID string) (*models.Booking, error)
	BookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
	BookingsByRoom(ctx context.Context, roomID string, day time.Time) ([]models.Booking, error)
	BookingsByDay(ctx context.Context, day time.Time) ([]models.Booking, error)

	CreateRoom(ctx context.Context, room *models.Room) (string, error)
	UpdateRoom(ctx context.Context, id string, room *models.Room) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
}

type bookingService struct {
	users  repo.UserRepo
	rooms  repo.RoomRepo
	book   repo.BookingRepo
	locks  repo.RoomLocker
	notify Notifier
	now    func() time.Time
}

func NewBookingService(u repo.UserRepo, r repo.RoomRepo, b repo.BookingRepo, l repo.RoomLocker, n Notifier) BookingService {
	return &bookingService{users: u, rooms: r, book: b, locks: l, notify: n, now: time.Now}
}

// CreateBooking runs the admission checks in order and commits the booking
// only if all of them pass. Nothing is written on any rejection.
func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	user, err := s.users.GetByID(ctx, in.UserID)
	if errors.Is(err, repo.ErrNotFound) { return nil, ErrUserNotFound }
	if err != nil { return nil, err }

	room, err := s.rooms.GetByID(ctx, in.RoomID)
	if errors.Is(err, repo.ErrNotFound) { return nil, ErrRoomNotFound }
	if err != nil { return nil, err }

	// Clients may submit any RFC3339 offset; the booking is evaluated and
	// stored in the service clock's zone so the same instant always gets
	// the same decision and the same Date midnight.
	now := s.now()
	start := in.StartTime.In(now.Location())
	end := in.EndTime.In(now.Location())

	if err := validateBookingTime(start, end, now); err != nil {
		return nil, err
	}
	if in.AttendeeCount > room.Capacity {
		return nil, &CapacityError{Capacity: room.Capacity}
	}

	// The conflict check and the insert must act as one unit per room, so
	// the lock spans both. Requests for other rooms are not serialized.
	release, err := s.locks.Acquire(ctx, in.RoomID)
	if err != nil { return nil, err }
	defer release()

	conflict, err := s.book.HasConflict(ctx, in.RoomID, start, end, "")
	if err != nil { return nil, err }
	if conflict { return nil, ErrSlotConflict }

	equipment := in.RequiredEquipment
	if equipment == nil { equipment = []string{} }

	b := &models.Booking{
		UserID:            user.ID,
		UserName:          user.Name,
		UserEmail:         user.Email,
		RoomID:            room.ID,
		RoomName:          room.Name,
		Title:             strings.TrimSpace(in.Title),
		Date:              startOfDay(start),
		StartTime:         start,
		EndTime:           end,
		Duration:          int(end.Sub(start) / time.Minute),
		AttendeeCount:     in.AttendeeCount,
		RequiredEquipment: equipment,
		Status:            models.StatusActive,
		CreatedAt:         now.UTC(),
	}
	id, err := s.book.Insert(ctx, b)
	if err != nil { return nil, err }
	b.ID = id

	s.dispatch("confirmation", b, s.notify.SendBookingConfirmation)
	return b, nil
}

// CancelBooking flips a booking to cancelled. Only the owner may cancel;
// cancelling an already-cancelled booking succeeds as a no-op re-flip.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*models.Booking, error) {
	b, err := s.book.GetByID(ctx, bookingID)
	if errors.Is(err, repo.ErrNotFound) { return nil, ErrBookingNotFound }
	if err != nil { return nil, err }

	if b.UserID != userID { return nil, ErrNotOwner }

	if err := s.book.SetStatus(ctx, bookingID, models.StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = models.StatusCancelled

	s.dispatch("cancellation", b, s.notify.SendCancellationNotification)
	return b, nil
}

func (s *bookingService) BookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.book.ListByUser(ctx, userID)
}

func (s *bookingService) BookingsByRoom(ctx context.Context, roomID string, day time.Time) ([]models.Booking, error) {
	dayStart := startOfDay(day)
	return s.book.ListByRoomAndDay(ctx, roomID, dayStart, dayStart.Add(24*time.Hour))
}

func (s *bookingService) BookingsByDay(ctx context.Context, day time.Time) ([]models.Booking, error) {
	dayStart := startOfDay(day)
	return s.book.ListByDay(ctx, dayStart, dayStart.Add(24*time.Hour))
}

func (s *bookingService) CreateRoom(ctx context.Context, room *models.Room) (string, error) {
	if strings.TrimSpace(room.Name) == "" || room.Capacity < 1 { return "", ErrInvalidRoom }
	if room.Equipment == nil { room.Equipment = []string{} }
	room.IsActive = true
	return s.rooms.Create(ctx, room)
}

func (s *bookingService) UpdateRoom(ctx context.Context, id string, room *models.Room) error {
	if strings.TrimSpace(room.Name) == "" || room.Capacity < 1 { return ErrInvalidRoom }
	if room.Equipment == nil { room.Equipment = []string{} }
	err := s.rooms.Update(ctx, id, room)
	if errors.Is(err, repo.ErrNotFound) { return ErrRoomNotFound }
	return err
}

func (s *bookingService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) { return nil, ErrRoomNotFound }
	return room, err
}

func (s *bookingService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.rooms.List(ctx)
}

// dispatch sends a notification on its own goroutine, after the commit.
// A failed send never affects the caller's result.
func (s *bookingService) dispatch(kind string, b *models.Booking, send func(*models.Booking) error) {
	go func() {
		if err := send(b); err != nil {
			log.Printf("booking %s email for %s failed: %v", kind, b.ID, err)
		}
	}()
}
