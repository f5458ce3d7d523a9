package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses as reported by the provider.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Payment is a tuition or exam fee payment ingested from the provider.
type Payment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProviderID  string             `json:"provider_id" bson:"provider_id"`
	StudentID   primitive.ObjectID `json:"student_id,omitempty" bson:"student_id,omitempty"`
	Amount      float64            `json:"amount" bson:"amount"`
	Currency    string             `json:"currency" bson:"currency"`
	Status      string             `json:"status" bson:"status"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	PaidAt      time.Time          `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// WebhookEvent is the provider's payment notification payload.
type WebhookEvent struct {
	EventID     string    `json:"event_id" validate:"required"`
	StudentID   string    `json:"student_id"`
	Amount      float64   `json:"amount" validate:"gt=0"`
	Currency    string    `json:"currency" validate:"required,len=3"`
	Status      string    `json:"status" validate:"required,oneof=pending approved rejected"`
	Description string    `json:"description"`
	PaidAt      time.Time `json:"paid_at"`
}

// StatusCount is one bucket of the payments-by-status aggregation.
type StatusCount struct {
	Status string `json:"status" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

// MonthSum is one bucket of the approved-revenue-by-month aggregation.
type MonthSum struct {
	Month string  `json:"month" bson:"_id"`
	Total float64 `json:"total" bson:"total"`
}
