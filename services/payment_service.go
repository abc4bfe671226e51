package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"parcel-service/models"
	"parcel-service/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// PaymentService handles payment intent creation and the confirmation /
// reconciliation flow.
type PaymentService interface {
	CreateIntent(ctx context.Context, req *models.CreateIntentRequest) (*IntentResult, *ServiceError)
	ConfirmPayment(ctx context.Context, req *models.ConfirmPaymentRequest) (*models.Parcel, *ServiceError)
}

// IntentResult carries what the frontend needs to complete a charge.
type IntentResult struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
}

// StripeGateway is the full gateway surface the payment service needs:
// intent creation plus the verification read used by confirmation.
type StripeGateway interface {
	PaymentVerifier
	CreatePaymentIntent(ctx context.Context, amount int64, currency, parcelID string) (string, string, error)
}

type paymentServiceImpl struct {
	parcels  repository.ParcelRepository
	payments repository.PaymentRepository
	gateway  StripeGateway
	events   EventPublisher // nil when no topic is configured
	cache    *ParcelCache
	logger   *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	parcels repository.ParcelRepository,
	payments repository.PaymentRepository,
	gateway StripeGateway,
	events EventPublisher,
	cache *ParcelCache,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		parcels:  parcels,
		payments: payments,
		gateway:  gateway,
		events:   events,
		cache:    cache,
		logger:   logger,
	}
}

// CreateIntent creates a Stripe payment intent for an existing parcel.
func (s *paymentServiceImpl) CreateIntent(ctx context.Context, req *models.CreateIntentRequest) (*IntentResult, *ServiceError) {
	filter := repository.ParcelIDFilter(req.ParcelID)
	if _, err := s.parcels.FindOne(ctx, filter); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errParcelNotFound("No parcel found for id " + req.ParcelID)
		}
		s.logger.Error("Parcel lookup failed", zap.Error(err))
		return nil, errStoreUnavailable("Failed to look up parcel")
	}

	intentID, clientSecret, err := s.gateway.CreatePaymentIntent(ctx, req.Amount, strings.ToLower(req.Currency), req.ParcelID)
	if err != nil {
		s.logger.Error("Stripe CreatePaymentIntent failed", zap.Error(err))
		return nil, errGatewayUnreachable("Failed to create payment intent")
	}

	s.logger.Info("Payment intent created",
		zap.String("parcel_id", req.ParcelID),
		zap.String("payment_intent_id", intentID),
	)
	return &IntentResult{PaymentIntentID: intentID, ClientSecret: clientSecret}, nil
}

// ConfirmPayment verifies a client-reported payment against Stripe and
// durably applies it: the parcel is marked Paid first, then the ledger
// entry is upserted keyed by payment intent id.
//
// Ordering matters: if the process dies between the two writes, the parcel
// is already Paid and the missing ledger entry is recovered by replaying the
// same confirmation. The whole operation is idempotent per intent id, so
// callers may retry on timeout without double effects.
func (s *paymentServiceImpl) ConfirmPayment(ctx context.Context, req *models.ConfirmPaymentRequest) (*models.Parcel, *ServiceError) {
	if req.ParcelID == "" || req.PaymentIntentID == "" {
		return nil, errMissingField("parcelId and paymentIntentId are required")
	}

	// Authoritative gateway state; the client's claim of success is never
	// trusted on its own.
	pi, err := s.gateway.RetrievePaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		s.logger.Error("Payment intent retrieval failed",
			zap.String("payment_intent_id", req.PaymentIntentID), zap.Error(err))
		return nil, errGatewayUnreachable("Failed to retrieve payment intent from gateway")
	}
	if !pi.Succeeded() {
		return nil, errPaymentNotSucceeded("Payment intent status is " + pi.Status + ", expected succeeded")
	}

	if req.AmountInCents != nil && *req.AmountInCents != pi.Amount {
		return nil, errAmountMismatch("Supplied amount does not match the verified payment amount")
	}
	if req.Currency != "" && !strings.EqualFold(req.Currency, pi.Currency) {
		return nil, errCurrencyMismatch("Supplied currency does not match the verified payment currency")
	}
	if req.AmountInCents == nil && req.Currency == "" {
		s.logger.Warn("Confirmation without amount/currency cross-check",
			zap.String("payment_intent_id", req.PaymentIntentID))
	}

	filter := repository.ParcelIDFilter(req.ParcelID)
	matched, err := s.parcels.UpdateOne(ctx, filter, bson.M{"payment_status": models.PaymentStatusPaid})
	if err != nil {
		s.logger.Error("Parcel status update failed",
			zap.String("parcel_id", req.ParcelID), zap.Error(err))
		return nil, errStoreUnavailable("Failed to update parcel payment status")
	}
	if matched == 0 {
		// Verified charge against a parcel we don't have. Surface it; a
		// silent success here would hide a data-integrity gap, and the
		// ledger must never reference a nonexistent parcel.
		s.logger.Warn("Verified payment references unknown parcel",
			zap.String("parcel_id", req.ParcelID),
			zap.String("payment_intent_id", req.PaymentIntentID))
		return nil, errParcelNotFound("No parcel found for id " + req.ParcelID)
	}

	now := time.Now().UTC()
	setOnInsert := bson.M{
		"parcel_id":  repository.CanonicalParcelID(req.ParcelID),
		"created_at": now,
	}
	if req.Payer != nil {
		setOnInsert["payer_name"] = req.Payer.Name
		setOnInsert["payer_email"] = req.Payer.Email
	}
	alwaysSet := bson.M{
		"status":     pi.Status,
		"amount":     pi.Amount,
		"currency":   pi.Currency,
		"updated_at": now,
	}
	if err := s.payments.UpsertByIntentID(ctx, req.PaymentIntentID, setOnInsert, alwaysSet); err != nil {
		// The parcel update above has committed and is not rolled back: a
		// Paid parcel with a missing ledger entry is repaired by retrying
		// this same confirmation.
		s.logger.Error("Ledger upsert failed after parcel update",
			zap.String("payment_intent_id", req.PaymentIntentID), zap.Error(err))
		return nil, errStoreUnavailable("Failed to record payment; retry the confirmation")
	}

	parcel, err := s.parcels.FindOne(ctx, filter)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errParcelNotFound("No parcel found for id " + req.ParcelID)
		}
		s.logger.Error("Parcel re-read failed", zap.String("parcel_id", req.ParcelID), zap.Error(err))
		return nil, errStoreUnavailable("Failed to load updated parcel")
	}

	s.logger.Info("Payment confirmed",
		zap.String("parcel_id", req.ParcelID),
		zap.String("payment_intent_id", req.PaymentIntentID),
		zap.Int64("amount", pi.Amount),
		zap.String("currency", pi.Currency),
	)

	s.cache.Invalidate(ctx)
	s.publishConfirmed(ctx, req.ParcelID, pi)

	return parcel, nil
}

func (s *paymentServiceImpl) publishConfirmed(ctx context.Context, parcelID string, pi *PaymentIntentState) {
	if s.events == nil {
		return
	}
	event := models.PaymentConfirmedEvent{
		Type:            "payment_confirmed",
		ParcelID:        parcelID,
		PaymentIntentID: pi.ID,
		Amount:          pi.Amount,
		Currency:        pi.Currency,
		Timestamp:       time.Now().UTC(),
	}
	if err := s.events.PublishPaymentConfirmed(ctx, event); err != nil {
		s.logger.Warn("Failed to publish payment_confirmed event", zap.Error(err))
	}
}
