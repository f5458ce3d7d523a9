package dojaang

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dojaang is a school branch.
type Dojaang struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	KoreanName string             `json:"korean_name,omitempty" bson:"korean_name,omitempty"`
	Address    string             `json:"address" bson:"address"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`
	CoachID    primitive.ObjectID `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	IsActive   bool               `json:"is_active" bson:"is_active"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

type DojaangInput struct {
	Name       string `json:"name" validate:"required,max=120"`
	KoreanName string `json:"korean_name" validate:"max=120"`
	Address    string `json:"address" validate:"required,max=300"`
	Phone      string `json:"phone" validate:"max=40"`
	Email      string `json:"email" validate:"omitempty,email"`
	CoachID    string `json:"coach_id"`
}
