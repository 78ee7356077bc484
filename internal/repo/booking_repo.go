package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rev0212/meeting/internal/models"
)

type BookingRepo interface {
	Insert(ctx context.Context, b *models.Booking) (id string, err error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	SetStatus(ctx context.Context, id string, status models.BookingStatus) error
	// HasConflict reports whether any active booking on the room overlaps the
	// half-open window [start, end). excludeID, when non-empty, leaves one
	// booking out of the check (for reschedules).
	HasConflict(ctx context.Context, roomID string, start, end time.Time, excludeID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByRoomAndDay(ctx context.Context, roomID string, dayStart, dayEnd time.Time) ([]models.Booking, error)
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Booking, error)
}

type bookingRepoMongo struct{ d *mongo.Database }

func NewBookingRepoMongo(d *mongo.Database) BookingRepo { return &bookingRepoMongo{d: d} }

type bookingDoc struct {
	ID                primitive.ObjectID `bson:"_id"`
	UserID            primitive.ObjectID `bson:"user_id"`
	UserName          string             `bson:"user_name"`
	UserEmail         string             `bson:"user_email"`
	RoomID            primitive.ObjectID `bson:"room_id"`
	RoomName          string             `bson:"room_name"`
	Title             string             `bson:"title"`
	Date              time.Time          `bson:"date"`
	StartTime         time.Time          `bson:"start_time"`
	EndTime           time.Time          `bson:"end_time"`
	Duration          int                `bson:"duration"`
	AttendeeCount     int                `bson:"attendee_count"`
	RequiredEquipment []string           `bson:"required_equipment"`
	Status            string             `bson:"status"`
	CreatedAt         time.Time          `bson:"created_at"`
}

func (d bookingDoc) toModel() models.Booking {
	eq := d.RequiredEquipment
	if eq == nil { eq = []string{} }
	return models.Booking{
		ID:                oidHex(d.ID),
		UserID:            oidHex(d.UserID),
		UserName:          d.UserName,
		UserEmail:         d.UserEmail,
		RoomID:            oidHex(d.RoomID),
		RoomName:          d.RoomName,
		Title:             d.Title,
		Date:              d.Date,
		StartTime:         d.StartTime,
		EndTime:           d.EndTime,
		Duration:          d.Duration,
		AttendeeCount:     d.AttendeeCount,
		RequiredEquipment: eq,
		Status:            models.BookingStatus(d.Status),
		CreatedAt:         d.CreatedAt,
	}
}

func (r *bookingRepoMongo) Insert(ctx context.Context, b *models.Booking) (string, error) {
	roid, err := mustOID(b.RoomID); if err != nil { return "", err }
	uid, err := mustOID(b.UserID); if err != nil { return "", err }
	res, err := r.d.Collection("bookings").InsertOne(ctx, bson.M{
		"user_id":            uid,
		"user_name":          b.UserName,
		"user_email":         b.UserEmail,
		"room_id":            roid,
		"room_name":          b.RoomName,
		"title":              b.Title,
		"date":               b.Date,
		"start_time":         b.StartTime,
		"end_time":           b.EndTime,
		"duration":           b.Duration,
		"attendee_count":     b.AttendeeCount,
		"required_equipment": b.RequiredEquipment,
		"status":             string(b.Status),
		"created_at":         b.CreatedAt,
	})
	if err != nil { return "", err }
	return oidHex(res.InsertedID.(primitive.ObjectID)), nil
}

func (r *bookingRepoMongo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bid, err := mustOID(id); if err != nil { return nil, ErrNotFound }
	var doc bookingDoc
	err = r.d.Collection("bookings").FindOne(ctx, bson.M{"_id": bid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) { return nil, ErrNotFound }
	if err != nil { return nil, err }
	b := doc.toModel()
	return &b, nil
}

func (r *bookingRepoMongo) SetStatus(ctx context.Context, id string, status models.BookingStatus) error {
	bid, err := mustOID(id); if err != nil { return ErrNotFound }
	res, err := r.d.Collection("bookings").UpdateOne(ctx,
		bson.M{"_id": bid},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil { return err }
	if res.MatchedCount == 0 { return ErrNotFound }
	return nil
}

func (r *bookingRepoMongo) HasConflict(ctx context.Context, roomID string, start, end time.Time, excludeID string) (bool, error) {
	roid, err := mustOID(roomID); if err != nil { return false, err }
	// Overlap of half-open intervals: existing.start < end AND existing.end > start.
	// Touching endpoints are not a conflict.
	filter := bson.M{
		"room_id":    roid,
		"status":     string(models.StatusActive),
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
	}
	if excludeID != "" {
		xid, err := mustOID(excludeID); if err != nil { return false, err }
		filter["_id"] = bson.M{"$ne": xid}
	}
	cnt, err := r.d.Collection("bookings").CountDocuments(ctx, filter)
	return cnt > 0, err
}

func (r *bookingRepoMongo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	uid, err := mustOID(userID); if err != nil { return nil, err }
	return r.list(ctx, bson.M{"user_id": uid, "status": string(models.StatusActive)})
}

func (r *bookingRepoMongo) ListByRoomAndDay(ctx context.Context, roomID string, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	roid, err := mustOID(roomID); if err != nil { return nil, err }
	return r.list(ctx, bson.M{
		"room_id": roid,
		"status":  string(models.StatusActive),
		"date":    bson.M{"$gte": dayStart, "$lt": dayEnd},
	})
}

func (r *bookingRepoMongo) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	return r.list(ctx, bson.M{
		"status": string(models.StatusActive),
		"date":   bson.M{"$gte": dayStart, "$lt": dayEnd},
	})
}

func (r *bookingRepoMongo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cur, err := r.d.Collection("bookings").Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil { return nil, err }
	defer cur.Close(ctx)
	var out []models.Booking
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil { return nil, err }
		out = append(out, doc.toModel())
	}
	return out, cur.Err()
}
