package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile extends the external identity record with rental-side details.
// Authentication itself lives with the identity provider; the profile only
// carries what this service owns.
type UserProfile struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	Email       string             `json:"email" bson:"email"`
	PhoneNumber string             `json:"phone_number,omitempty" bson:"phone_number,omitempty" validate:"omitempty,phone_number"`
	AvatarKey   string             `json:"avatar_key,omitempty" bson:"avatar_key,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
