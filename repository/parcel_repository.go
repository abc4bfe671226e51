package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcel-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound = errors.New("parcel not found")
)

// ParcelRepository defines data-access operations for parcels.
// Filters are bson predicates so callers can match either _id form.
type ParcelRepository interface {
	Insert(ctx context.Context, parcel *models.Parcel) error
	FindOne(ctx context.Context, filter bson.M) (*models.Parcel, error)
	Find(ctx context.Context, filter bson.M, page, limit int) ([]models.Parcel, int64, error)
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error)
	Delete(ctx context.Context, filter bson.M) (int64, error)
	PushTracking(ctx context.Context, filter bson.M, entry models.TrackingEntry) (int64, error)
}

// MongoParcelRepository implements ParcelRepository on the "parcels" collection.
type MongoParcelRepository struct {
	collection *mongo.Collection
}

// NewMongoParcelRepository creates a new MongoParcelRepository.
func NewMongoParcelRepository(db *mongo.Database) *MongoParcelRepository {
	return &MongoParcelRepository{collection: db.Collection("parcels")}
}

func (r *MongoParcelRepository) Insert(ctx context.Context, parcel *models.Parcel) error {
	if _, err := r.collection.InsertOne(ctx, parcel); err != nil {
		return fmt.Errorf("insert parcel: %w", err)
	}
	return nil
}

func (r *MongoParcelRepository) FindOne(ctx context.Context, filter bson.M) (*models.Parcel, error) {
	var parcel models.Parcel
	err := r.collection.FindOne(ctx, filter).Decode(&parcel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find parcel: %w", err)
	}
	return &parcel, nil
}

func (r *MongoParcelRepository) Find(ctx context.Context, filter bson.M, page, limit int) ([]models.Parcel, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count parcels: %w", err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("find parcels: %w", err)
	}
	defer cursor.Close(ctx)

	var parcels []models.Parcel
	if err := cursor.All(ctx, &parcels); err != nil {
		return nil, 0, fmt.Errorf("decode parcels: %w", err)
	}
	return parcels, total, nil
}

// UpdateOne applies a $set update to the first parcel matching filter and
// returns the matched count. The update timestamp is always refreshed.
func (r *MongoParcelRepository) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	set["updated_at"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update parcel: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *MongoParcelRepository) Delete(ctx context.Context, filter bson.M) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete parcel: %w", err)
	}
	return res.DeletedCount, nil
}

// PushTracking appends a tracking entry to the parcel's embedded history.
// The append is a single document-level update, so concurrent appends
// interleave without loss.
func (r *MongoParcelRepository) PushTracking(ctx context.Context, filter bson.M, entry models.TrackingEntry) (int64, error) {
	update := bson.M{
		"$push": bson.M{"tracking": entry},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("push tracking entry: %w", err)
	}
	return res.MatchedCount, nil
}
