package services_test

import (
	"context"
	"testing"

	"parcel-service/models"
	"parcel-service/services"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestParcelService(repo *fakeParcelRepo) services.ParcelService {
	logger, _ := zap.NewDevelopment()
	return services.NewParcelService(repo, nil, logger)
}

func TestCreateParcel(t *testing.T) {
	repo := &fakeParcelRepo{}
	svc := newTestParcelService(repo)

	parcel, svcErr := svc.CreateParcel(context.Background(), &models.CreateParcelRequest{
		CreatedBy:    "sender@example.com",
		ReceiverName: "Jane Doe",
		ParcelType:   "box",
		WeightKg:     2.5,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, models.PaymentStatusUnpaid, parcel.PaymentStatus)
	assert.IsType(t, primitive.ObjectID{}, parcel.ID)
	assert.False(t, parcel.CreatedAt.IsZero())
	assert.Len(t, repo.parcels, 1)
}

func TestGetParcel_NotFound(t *testing.T) {
	svc := newTestParcelService(&fakeParcelRepo{})

	_, svcErr := svc.GetParcel(context.Background(), "missing")

	assert.NotNil(t, svcErr)
	assert.Equal(t, services.KindParcelNotFound, svcErr.Kind)
}

func TestGetParcel_ByEitherIDForm(t *testing.T) {
	oid := primitive.NewObjectID()
	repo := &fakeParcelRepo{parcels: []*models.Parcel{
		unpaidParcel(oid),
		unpaidParcel("legacy-7"),
	}}
	svc := newTestParcelService(repo)

	byHex, svcErr := svc.GetParcel(context.Background(), oid.Hex())
	assert.Nil(t, svcErr)
	assert.Equal(t, oid, byHex.ID)

	byLegacy, svcErr := svc.GetParcel(context.Background(), "legacy-7")
	assert.Nil(t, svcErr)
	assert.Equal(t, "legacy-7", byLegacy.ID)
}

func TestAddTracking_NotFound(t *testing.T) {
	svc := newTestParcelService(&fakeParcelRepo{})

	_, svcErr := svc.AddTracking(context.Background(), "missing", &models.AddTrackingRequest{Status: "in_transit"})

	assert.NotNil(t, svcErr)
	assert.Equal(t, services.KindParcelNotFound, svcErr.Kind)
}

func TestGetTracking_EmptyHistory(t *testing.T) {
	repo := &fakeParcelRepo{parcels: []*models.Parcel{unpaidParcel("P1")}}
	svc := newTestParcelService(repo)

	entries, svcErr := svc.GetTracking(context.Background(), "P1")

	assert.Nil(t, svcErr)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
