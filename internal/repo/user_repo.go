package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rev0212/meeting/internal/models"
)

type UserRepo interface {
	Create(ctx context.Context, name, email string, passwordHash []byte) (id string, err error)
	GetByEmail(ctx context.Context, email string) (u *models.User, pwHash []byte, err error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type userRepoMongo struct{ d *mongo.Database }

func NewUserRepoMongo(d *mongo.Database) UserRepo { return &userRepoMongo{d: d} }

type userDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Hash  []byte             `bson:"password_hash"`
	Admin bool               `bson:"is_admin"`
}

func (r *userRepoMongo) Create(ctx context.Context, name, email string, passwordHash []byte) (string, error) {
	res, err := r.d.Collection("users").InsertOne(ctx, bson.M{
		"name":          name,
		"email":         email,
		"password_hash": passwordHash,
		"is_admin":      false,
	})
	if err != nil { return "", err }
	return oidHex(res.InsertedID.(primitive.ObjectID)), nil
}

func (r *userRepoMongo) GetByEmail(ctx context.Context, email string) (*models.User, []byte, error) {
	var doc userDoc
	err := r.d.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) { return nil, nil, ErrNotFound }
	if err != nil { return nil, nil, err }
	return &models.User{ID: oidHex(doc.ID), Name: doc.Name, Email: doc.Email, IsAdmin: doc.Admin}, doc.Hash, nil
}

func (r *userRepoMongo) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := mustOID(id); if err != nil { return nil, ErrNotFound }
	var doc userDoc
	err = r.d.Collection("users").FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) { return nil, ErrNotFound }
	if err != nil { return nil, err }
	return &models.User{ID: oidHex(doc.ID), Name: doc.Name, Email: doc.Email, IsAdmin: doc.Admin}, nil
}
