package promotion

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Promotion records a student's belt promotion.
type Promotion struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID     primitive.ObjectID `json:"student_id" bson:"student_id"`
	CoachID       primitive.ObjectID `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	DojaangID     primitive.ObjectID `json:"dojaang_id,omitempty" bson:"dojaang_id,omitempty"`
	FromRank      string             `json:"from_rank" bson:"from_rank"`
	ToRank        string             `json:"to_rank" bson:"to_rank"`
	PromotionDate time.Time          `json:"promotion_date" bson:"promotion_date"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

type PromotionInput struct {
	StudentID     string    `json:"student_id" validate:"required"`
	CoachID       string    `json:"coach_id"`
	DojaangID     string    `json:"dojaang_id"`
	FromRank      string    `json:"from_rank" validate:"required"`
	ToRank        string    `json:"to_rank" validate:"required"`
	PromotionDate time.Time `json:"promotion_date"`
	Notes         string    `json:"notes" validate:"max=1000"`
}

// MonthCount is one bucket of the promotions-per-month aggregation.
type MonthCount struct {
	Month string `json:"month" bson:"_id"` // "2025-09"
	Count int64  `json:"count" bson:"count"`
}
