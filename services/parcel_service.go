package services

import (
	"context"
	"errors"
	"time"

	"parcel-service/models"
	"parcel-service/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ParcelService is the business logic for the parcel CRUD and tracking
// surface.
type ParcelService interface {
	CreateParcel(ctx context.Context, req *models.CreateParcelRequest) (*models.Parcel, *ServiceError)
	ListParcels(ctx context.Context, email string, page, limit int) ([]models.Parcel, int64, *ServiceError)
	GetParcel(ctx context.Context, id string) (*models.Parcel, *ServiceError)
	DeleteParcel(ctx context.Context, id string) *ServiceError
	AddTracking(ctx context.Context, id string, req *models.AddTrackingRequest) (*models.TrackingEntry, *ServiceError)
	GetTracking(ctx context.Context, id string) ([]models.TrackingEntry, *ServiceError)
}

type parcelServiceImpl struct {
	repo   repository.ParcelRepository
	cache  *ParcelCache
	logger *zap.Logger
}

// NewParcelService creates a new ParcelService.
func NewParcelService(repo repository.ParcelRepository, cache *ParcelCache, logger *zap.Logger) ParcelService {
	return &parcelServiceImpl{repo: repo, cache: cache, logger: logger}
}

func (s *parcelServiceImpl) CreateParcel(ctx context.Context, req *models.CreateParcelRequest) (*models.Parcel, *ServiceError) {
	now := time.Now().UTC()
	parcel := &models.Parcel{
		ID:            primitive.NewObjectID(),
		CreatedBy:     req.CreatedBy,
		PaymentStatus: models.PaymentStatusUnpaid,
		SenderName:    req.SenderName,
		SenderPhone:   req.SenderPhone,
		ReceiverName:  req.ReceiverName,
		ReceiverPhone: req.ReceiverPhone,
		FromAddress:   req.FromAddress,
		ToAddress:     req.ToAddress,
		ParcelType:    req.ParcelType,
		WeightKg:      req.WeightKg,
		PriceInCents:  req.PriceInCents,
		Extra:         req.Extra,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, parcel); err != nil {
		s.logger.Error("Failed to insert parcel", zap.Error(err))
		return nil, errStoreUnavailable("Failed to save parcel")
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("Parcel created", zap.Any("parcel_id", parcel.ID), zap.String("created_by", parcel.CreatedBy))
	return parcel, nil
}

func (s *parcelServiceImpl) ListParcels(ctx context.Context, email string, page, limit int) ([]models.Parcel, int64, *ServiceError) {
	if parcels, total, ok := s.cache.GetList(ctx, email, page, limit); ok {
		return parcels, total, nil
	}

	filter := bson.M{}
	if email != "" {
		filter["created_by"] = email
	}

	parcels, total, err := s.repo.Find(ctx, filter, page, limit)
	if err != nil {
		s.logger.Error("Failed to list parcels", zap.Error(err))
		return nil, 0, errStoreUnavailable("Failed to list parcels")
	}

	s.cache.SetList(email, page, limit, parcels, total)
	return parcels, total, nil
}

func (s *parcelServiceImpl) GetParcel(ctx context.Context, id string) (*models.Parcel, *ServiceError) {
	parcel, err := s.repo.FindOne(ctx, repository.ParcelIDFilter(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errParcelNotFound("No parcel found for id " + id)
		}
		s.logger.Error("Failed to fetch parcel", zap.String("parcel_id", id), zap.Error(err))
		return nil, errStoreUnavailable("Failed to fetch parcel")
	}
	return parcel, nil
}

func (s *parcelServiceImpl) DeleteParcel(ctx context.Context, id string) *ServiceError {
	deleted, err := s.repo.Delete(ctx, repository.ParcelIDFilter(id))
	if err != nil {
		s.logger.Error("Failed to delete parcel", zap.String("parcel_id", id), zap.Error(err))
		return errStoreUnavailable("Failed to delete parcel")
	}
	if deleted == 0 {
		return errParcelNotFound("No parcel found for id " + id)
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("Parcel deleted", zap.String("parcel_id", id))
	return nil
}

func (s *parcelServiceImpl) AddTracking(ctx context.Context, id string, req *models.AddTrackingRequest) (*models.TrackingEntry, *ServiceError) {
	entry := models.TrackingEntry{
		ID:        uuid.NewString(),
		Status:    req.Status,
		Location:  req.Location,
		Note:      req.Note,
		Timestamp: time.Now().UTC(),
	}

	matched, err := s.repo.PushTracking(ctx, repository.ParcelIDFilter(id), entry)
	if err != nil {
		s.logger.Error("Failed to append tracking entry", zap.String("parcel_id", id), zap.Error(err))
		return nil, errStoreUnavailable("Failed to append tracking entry")
	}
	if matched == 0 {
		return nil, errParcelNotFound("No parcel found for id " + id)
	}

	s.logger.Info("Tracking entry appended", zap.String("parcel_id", id), zap.String("status", entry.Status))
	return &entry, nil
}

func (s *parcelServiceImpl) GetTracking(ctx context.Context, id string) ([]models.TrackingEntry, *ServiceError) {
	parcel, svcErr := s.GetParcel(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if parcel.Tracking == nil {
		return []models.TrackingEntry{}, nil
	}
	return parcel.Tracking, nil
}
