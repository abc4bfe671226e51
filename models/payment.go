package models

import (
	"time"
)

// PaymentRecord is the ledger entry for one Stripe payment intent, stored
// in the "payments" collection with a unique index on payment_intent_id.
//
// ParcelID, PayerName, PayerEmail and CreatedAt are written only on first
// insert; Status, Amount, Currency and UpdatedAt are refreshed on every
// confirmation. The two field sets are disjoint so a retried confirmation
// can never rewrite origin metadata.
type PaymentRecord struct {
	PaymentIntentID string      `bson:"payment_intent_id" json:"paymentIntentId"`
	ParcelID        interface{} `bson:"parcel_id" json:"parcelId"`
	PayerName       string      `bson:"payer_name,omitempty" json:"payerName,omitempty"`
	PayerEmail      string      `bson:"payer_email,omitempty" json:"payerEmail,omitempty"`
	Status          string      `bson:"status" json:"status"`
	Amount          int64       `bson:"amount" json:"amount"`
	Currency        string      `bson:"currency" json:"currency"`
	CreatedAt       time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updatedAt"`
}

// PayerInfo identifies who paid; recorded on the ledger entry at first insert.
type PayerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ConfirmPaymentRequest is the body for POST /payments/confirm.
// AmountInCents and Currency are an optional cross-check against the
// gateway-verified values.
type ConfirmPaymentRequest struct {
	ParcelID        string     `json:"parcelId"`
	PaymentIntentID string     `json:"paymentIntentId"`
	AmountInCents   *int64     `json:"amountInCents"`
	Currency        string     `json:"currency"`
	Payer           *PayerInfo `json:"payer"`
}

// CreateIntentRequest is the body for POST /payments/create-intent.
type CreateIntentRequest struct {
	ParcelID string `json:"parcelId" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,min=1"`
	Currency string `json:"currency" binding:"required"`
}

// PaymentConfirmedEvent is published to SNS after a confirmation commits.
type PaymentConfirmedEvent struct {
	Type            string    `json:"type"`
	ParcelID        string    `json:"parcel_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Timestamp       time.Time `json:"timestamp"`
}
