package repository

import (
	"context"
	"errors"
	"fmt"

	"parcel-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrPaymentNotFound = errors.New("payment record not found")
)

// PaymentRepository is the ledger store: one record per payment intent id.
type PaymentRepository interface {
	// UpsertByIntentID writes the ledger entry for a payment intent in a
	// single round trip. setOnInsert fields are written only when the entry
	// is first created; alwaysSet fields are refreshed on every call.
	UpsertByIntentID(ctx context.Context, intentID string, setOnInsert bson.M, alwaysSet bson.M) error
	FindByIntentID(ctx context.Context, intentID string) (*models.PaymentRecord, error)
	EnsureIndexes(ctx context.Context) error
}

// MongoPaymentRepository implements PaymentRepository on the "payments" collection.
type MongoPaymentRepository struct {
	collection *mongo.Collection
}

// NewMongoPaymentRepository creates a new MongoPaymentRepository.
func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{collection: db.Collection("payments")}
}

// EnsureIndexes creates the unique index on payment_intent_id. The upsert is
// the primary duplicate guard; the constraint makes a two-writer race fail
// loudly instead of producing duplicate ledger rows.
func (r *MongoPaymentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "payment_intent_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create payment_intent_id index: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepository) UpsertByIntentID(ctx context.Context, intentID string, setOnInsert bson.M, alwaysSet bson.M) error {
	filter := bson.M{"payment_intent_id": intentID}
	update := bson.M{
		"$set":         alwaysSet,
		"$setOnInsert": setOnInsert,
	}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert payment record: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepository) FindByIntentID(ctx context.Context, intentID string) (*models.PaymentRecord, error) {
	var record models.PaymentRecord
	err := r.collection.FindOne(ctx, bson.M{"payment_intent_id": intentID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment record: %w", err)
	}
	return &record, nil
}
