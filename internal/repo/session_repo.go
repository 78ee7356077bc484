package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepo interface {
	Create(ctx context.Context, token string, userID string, expiresRFC3339 string) error
	Delete(ctx context.Context, token string) error
	Lookup(ctx context.Context, token string) (userID string, expiresRFC3339 string, err error)
}

// Mongo-backed sessions; the Redis implementation is preferred in production
// wiring, this one keeps the service runnable without Redis.
type sessionRepoMongo struct{ d *mongo.Database }

func NewSessionRepoMongo(d *mongo.Database) SessionRepo { return &sessionRepoMongo{d: d} }

func (r *sessionRepoMongo) Create(ctx context.Context, token string, userID string, expires string) error {
	oid, err := mustOID(userID); if err != nil { return err }
	_, err = r.d.Collection("sessions").InsertOne(ctx, bson.M{
		"token":      token,
		"user_id":    oid,
		"expires_at": expires,
		"created_at": time.Now().UTC(),
	})
	return err
}

func (r *sessionRepoMongo) Delete(ctx context.Context, token string) error {
	_, err := r.d.Collection("sessions").DeleteOne(ctx, bson.M{"token": token})
	return err
}

func (r *sessionRepoMongo) Lookup(ctx context.Context, token string) (string, string, error) {
	var doc struct {
		UserID    primitive.ObjectID `bson:"user_id"`
		ExpiresAt string             `bson:"expires_at"`
	}
	err := r.d.Collection("sessions").FindOne(ctx, bson.M{"token": token}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) { return "", "", ErrNotFound }
	if err != nil { return "", "", err }
	return oidHex(doc.UserID), doc.ExpiresAt, nil
}
