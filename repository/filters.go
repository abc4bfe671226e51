package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParcelIDFilter builds the lookup predicate for a caller-supplied parcel id.
//
// Parcels written before ObjectIDs were adopted carry their original opaque
// string as _id, so when the id parses as ObjectID hex the filter matches
// either representation. Otherwise it collapses to the literal string match.
func ParcelIDFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$or": []bson.M{
			{"_id": oid},
			{"_id": id},
		}}
	}
	return bson.M{"_id": id}
}

// CanonicalParcelID normalizes a parcel id to its ObjectID form when the
// string is valid ObjectID hex; legacy ids pass through unchanged. Used when
// recording the parcel reference on a ledger entry.
func CanonicalParcelID(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}
