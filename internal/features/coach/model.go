package coach

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coach is an instructor, possibly managing one or more dojaangs.
type Coach struct {
	ID                primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	FirstName         string               `json:"first_name" bson:"first_name"`
	LastName          string               `json:"last_name" bson:"last_name"`
	Email             string               `json:"email,omitempty" bson:"email,omitempty"`
	Phone             string               `json:"phone,omitempty" bson:"phone,omitempty"`
	Rank              string               `json:"rank" bson:"rank"`
	ManagedDojaangIDs []primitive.ObjectID `json:"managed_dojaang_ids,omitempty" bson:"managed_dojaang_ids,omitempty"`
	IsActive          bool                 `json:"is_active" bson:"is_active"`
	CreatedAt         time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at" bson:"updated_at"`
}

type CoachInput struct {
	FirstName         string   `json:"first_name" validate:"required,max=80"`
	LastName          string   `json:"last_name" validate:"required,max=80"`
	Email             string   `json:"email" validate:"omitempty,email"`
	Phone             string   `json:"phone" validate:"max=40"`
	Rank              string   `json:"rank" validate:"required"`
	ManagedDojaangIDs []string `json:"managed_dojaang_ids"`
}
