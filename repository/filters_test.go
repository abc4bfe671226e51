package repository_test

import (
	"testing"

	"parcel-service/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParcelIDFilter_ObjectIDHex(t *testing.T) {
	oid := primitive.NewObjectID()
	filter := repository.ParcelIDFilter(oid.Hex())

	clauses, ok := filter["$or"].([]bson.M)
	assert.True(t, ok, "hex id should produce an $or filter")
	assert.Len(t, clauses, 2)
	assert.Equal(t, oid, clauses[0]["_id"])
	assert.Equal(t, oid.Hex(), clauses[1]["_id"])
}

func TestParcelIDFilter_LegacyString(t *testing.T) {
	filter := repository.ParcelIDFilter("P1")

	assert.Equal(t, bson.M{"_id": "P1"}, filter)
	_, hasOr := filter["$or"]
	assert.False(t, hasOr, "legacy id should collapse to a single clause")
}

func TestCanonicalParcelID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid, repository.CanonicalParcelID(oid.Hex()))
	assert.Equal(t, "legacy-42", repository.CanonicalParcelID("legacy-42"))
}
