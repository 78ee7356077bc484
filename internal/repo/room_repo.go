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

type RoomRepo interface {
	Create(ctx context.Context, room *models.Room) (id string, err error)
	Update(ctx context.Context, id string, room *models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	FindAvailable(ctx context.Context, minCapacity int, start, end time.Time) ([]models.Room, error)
}

type roomRepoMongo struct{ d *mongo.Database }

func NewRoomRepoMongo(d *mongo.Database) RoomRepo { return &roomRepoMongo{d: d} }

type roomDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Capacity  int                `bson:"capacity"`
	Equipment []string           `bson:"equipment"`
	IsActive  bool               `bson:"is_active"`
	Location  string             `bson:"location"`
}

func (d roomDoc) toModel() models.Room {
	eq := d.Equipment
	if eq == nil { eq = []string{} }
	return models.Room{ID: oidHex(d.ID), Name: d.Name, Capacity: d.Capacity, Equipment: eq, IsActive: d.IsActive, Location: d.Location}
}

func (r *roomRepoMongo) Create(ctx context.Context, room *models.Room) (string, error) {
	res, err := r.d.Collection("rooms").InsertOne(ctx, bson.M{
		"name":      room.Name,
		"capacity":  room.Capacity,
		"equipment": room.Equipment,
		"is_active": room.IsActive,
		"location":  room.Location,
	})
	if err != nil { return "", err }
	return oidHex(res.InsertedID.(primitive.ObjectID)), nil
}

func (r *roomRepoMongo) Update(ctx context.Context, id string, room *models.Room) error {
	oid, err := mustOID(id); if err != nil { return ErrNotFound }
	res, err := r.d.Collection("rooms").UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":      room.Name,
		"capacity":  room.Capacity,
		"equipment": room.Equipment,
		"is_active": room.IsActive,
		"location":  room.Location,
	}})
	if err != nil { return err }
	if res.MatchedCount == 0 { return ErrNotFound }
	return nil
}

func (r *roomRepoMongo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	oid, err := mustOID(id); if err != nil { return nil, ErrNotFound }
	var doc roomDoc
	err = r.d.Collection("rooms").FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) { return nil, ErrNotFound }
	if err != nil { return nil, err }
	room := doc.toModel()
	return &room, nil
}

func (r *roomRepoMongo) List(ctx context.Context) ([]models.Room, error) {
	cur, err := r.d.Collection("rooms").Find(ctx, bson.M{"is_active": true},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil { return nil, err }
	defer cur.Close(ctx)
	var out []models.Room
	for cur.Next(ctx) {
		var doc roomDoc
		if err := cur.Decode(&doc); err != nil { return nil, err }
		out = append(out, doc.toModel())
	}
	return out, cur.Err()
}

// FindAvailable returns active rooms with at least minCapacity seats and no
// active booking overlapping [start, end).
func (r *roomRepoMongo) FindAvailable(ctx context.Context, minCapacity int, start, end time.Time) ([]models.Room, error) {
	cur, err := r.d.Collection("rooms").Find(ctx, bson.M{
		"is_active": true,
		"capacity":  bson.M{"$gte": minCapacity},
	})
	if err != nil { return nil, err }
	defer cur.Close(ctx)

	var out []models.Room
	for cur.Next(ctx) {
		var doc roomDoc
		if err := cur.Decode(&doc); err != nil { return nil, err }

		cnt, err := r.d.Collection("bookings").CountDocuments(ctx, bson.M{
			"room_id":    doc.ID,
			"status":     string(models.StatusActive),
			"start_time": bson.M{"$lt": end},
			"end_time":   bson.M{"$gt": start},
		})
		if err != nil { return nil, err }
		if cnt > 0 { continue }

		out = append(out, doc.toModel())
	}
	return out, cur.Err()
}
