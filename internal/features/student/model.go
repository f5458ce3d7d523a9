package student

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Belt ranks in promotion order. Gups count down to black belt, then dans up.
var Ranks = []string{
	"White", "Yellow Stripe", "Yellow", "Green Stripe", "Green",
	"Blue Stripe", "Blue", "Red Stripe", "Red", "Black Stripe",
	"1st Dan", "2nd Dan", "3rd Dan", "4th Dan", "5th Dan",
}

// RankOrder returns the position of a rank in the promotion ladder, or -1.
func RankOrder(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return -1
}

// Student is an enrolled practitioner.
type Student struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName   string             `json:"first_name" bson:"first_name"`
	LastName    string             `json:"last_name" bson:"last_name"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	DateOfBirth time.Time          `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	Rank        string             `json:"rank" bson:"rank"`
	DojaangID   primitive.ObjectID `json:"dojaang_id,omitempty" bson:"dojaang_id,omitempty"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type StudentInput struct {
	FirstName   string    `json:"first_name" validate:"required,max=80"`
	LastName    string    `json:"last_name" validate:"required,max=80"`
	Email       string    `json:"email" validate:"omitempty,email"`
	Phone       string    `json:"phone" validate:"max=40"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Rank        string    `json:"rank" validate:"required"`
	DojaangID   string    `json:"dojaang_id"`
}

// RankCount is one bucket of the rank distribution aggregation.
type RankCount struct {
	Rank  string `json:"rank" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}
