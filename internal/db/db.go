package db

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	// users: unique email
	if _, err := d.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil { return err }

	// sessions: token unique
	if _, err := d.Collection("sessions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil { return err }

	// rooms: unique name
	if _, err := d.Collection("rooms").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil { return err }

	// bookings: room/time range for the conflict query, plus the read paths
	if _, err := d.Collection("bookings").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "status", Value: 1}, {Key: "start_time", Value: 1}, {Key: "end_time", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}}},
	}); err != nil { return err }

	return nil
}

func SeedAdminMongo(ctx context.Context, d *mongo.Database, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 { return nil }
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil { return err }
	_, err = d.Collection("users").UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"name": "Administrator", "email": email, "password_hash": hash, "is_admin": true, "created_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

type seedRoom struct {
	name      string
	capacity  int
	equipment []string
	location  string
}

var sampleRooms = []seedRoom{
	{"Conference Room A", 20, []string{"projector", "whiteboard", "video conferencing"}, "Building 1, Floor 3"},
	{"Meeting Room B", 10, []string{"whiteboard", "TV screen"}, "Building 1, Floor 2"},
	{"Boardroom", 15, []string{"projector", "whiteboard", "video conferencing", "coffee machine"}, "Building 2, Floor 4"},
	{"Small Meeting Room C", 5, []string{"whiteboard"}, "Building 1, Floor 1"},
}

// SeedRooms upserts the sample rooms by name, so re-running it is harmless.
func SeedRooms(ctx context.Context, d *mongo.Database) error {
	for _, r := range sampleRooms {
		_, err := d.Collection("rooms").UpdateOne(
			ctx,
			bson.M{"name": r.name},
			bson.M{"$set": bson.M{
				"name":      r.name,
				"capacity":  r.capacity,
				"equipment": r.equipment,
				"is_active": true,
				"location":  r.location,
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil { return err }
	}
	return nil
}
