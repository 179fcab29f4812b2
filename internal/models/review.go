package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user rating for a car. Only approved reviews are shown on the
// public car page.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CarID     primitive.ObjectID `json:"car_id" bson:"car_id" validate:"required"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	Rating    int                `json:"rating" bson:"rating" validate:"required,rating_value"`
	Comment   string             `json:"comment" bson:"comment" validate:"required"`
	Approved  bool               `json:"approved" bson:"approved"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
