package models

import (
	"time"
)

// Payment status values for a parcel. A parcel only ever moves
// Unpaid -> Paid, and only through the payment confirmation flow.
const (
	PaymentStatusUnpaid = "Unpaid"
	PaymentStatusPaid   = "Paid"
)

// Parcel represents a shipment record stored in the "parcels" collection.
//
// ID is either a canonical ObjectID or a legacy opaque string: records
// written before ObjectIDs were adopted keep their string _id, and both
// forms must stay resolvable. The driver decodes whichever form is stored.
type Parcel struct {
	ID            interface{}            `bson:"_id,omitempty" json:"id"`
	CreatedBy     string                 `bson:"created_by" json:"createdBy"`
	PaymentStatus string                 `bson:"payment_status" json:"paymentStatus"`
	SenderName    string                 `bson:"sender_name,omitempty" json:"senderName,omitempty"`
	SenderPhone   string                 `bson:"sender_phone,omitempty" json:"senderPhone,omitempty"`
	ReceiverName  string                 `bson:"receiver_name,omitempty" json:"receiverName,omitempty"`
	ReceiverPhone string                 `bson:"receiver_phone,omitempty" json:"receiverPhone,omitempty"`
	FromAddress   string                 `bson:"from_address,omitempty" json:"fromAddress,omitempty"`
	ToAddress     string                 `bson:"to_address,omitempty" json:"toAddress,omitempty"`
	ParcelType    string                 `bson:"parcel_type,omitempty" json:"parcelType,omitempty"`
	WeightKg      float64                `bson:"weight_kg,omitempty" json:"weightKg,omitempty"`
	PriceInCents  int64                  `bson:"price_in_cents,omitempty" json:"priceInCents,omitempty"`
	Tracking      []TrackingEntry        `bson:"tracking,omitempty" json:"tracking,omitempty"`
	Extra         map[string]interface{} `bson:"extra,omitempty" json:"extra,omitempty"`
	CreatedAt     time.Time              `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time              `bson:"updated_at" json:"updatedAt"`
}

// TrackingEntry is one append-only entry in a parcel's tracking history.
type TrackingEntry struct {
	ID        string    `bson:"id" json:"id"`
	Status    string    `bson:"status" json:"status"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// CreateParcelRequest is the body for POST /parcels.
type CreateParcelRequest struct {
	CreatedBy     string                 `json:"createdBy" binding:"required,email"`
	SenderName    string                 `json:"senderName"`
	SenderPhone   string                 `json:"senderPhone"`
	ReceiverName  string                 `json:"receiverName"`
	ReceiverPhone string                 `json:"receiverPhone"`
	FromAddress   string                 `json:"fromAddress"`
	ToAddress     string                 `json:"toAddress"`
	ParcelType    string                 `json:"parcelType"`
	WeightKg      float64                `json:"weightKg"`
	PriceInCents  int64                  `json:"priceInCents"`
	Extra         map[string]interface{} `json:"extra"`
}

// AddTrackingRequest is the body for POST /parcels/:id/tracking.
type AddTrackingRequest struct {
	Status   string `json:"status" binding:"required"`
	Location string `json:"location"`
	Note     string `json:"note"`
}
