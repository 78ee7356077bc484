package repo

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a looked-up document does not exist. Services
// translate it into the entity-specific rejection for their call site.
var ErrNotFound = errors.New("not found")

func mustOID(hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, errors.New("empty id")
	}
	return primitive.ObjectIDFromHex(hex)
}

func oidHex(id primitive.ObjectID) string {
	return id.Hex()
}
