package services

import (
	"context"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

// PaymentIntentState is the authoritative gateway view of one payment intent.
type PaymentIntentState struct {
	ID       string
	Status   string
	Amount   int64
	Currency string
	Metadata map[string]string
}

// Succeeded reports whether the intent reached the terminal success status.
func (p *PaymentIntentState) Succeeded() bool {
	return p.Status == string(stripe.PaymentIntentStatusSucceeded)
}

// PaymentVerifier retrieves the current gateway state of a payment intent.
// Confirmation never trusts a client-reported success without this call.
type PaymentVerifier interface {
	RetrievePaymentIntent(ctx context.Context, intentID string) (*PaymentIntentState, error)
}

// StripeService wraps the Stripe payment intent API.
type StripeService struct {
	SecretKey string
}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey}
}

// CreatePaymentIntent creates a new payment intent for a parcel, recording
// the parcel id in the intent metadata. Returns the intent id and the client
// secret the frontend needs to complete the charge.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, amount int64, currency, parcelID string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.AddMetadata("parcel_id", parcelID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", err
	}
	return pi.ID, pi.ClientSecret, nil
}

// RetrievePaymentIntent fetches the intent's current state from Stripe.
func (s *StripeService) RetrievePaymentIntent(ctx context.Context, intentID string) (*PaymentIntentState, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(intentID, params)
	if err != nil {
		return nil, err
	}

	return &PaymentIntentState{
		ID:       pi.ID,
		Status:   string(pi.Status),
		Amount:   pi.Amount,
		Currency: string(pi.Currency),
		Metadata: pi.Metadata,
	}, nil
}
