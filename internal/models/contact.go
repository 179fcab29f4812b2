package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactSubmission stores a message sent through the public contact form.
type ContactSubmission struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName   string             `json:"first_name" bson:"first_name" validate:"required"`
	LastName    string             `json:"last_name" bson:"last_name" validate:"required"`
	Email       string             `json:"email" bson:"email" validate:"required,email"`
	Subject     string             `json:"subject" bson:"subject" validate:"required"`
	Message     string             `json:"message" bson:"message" validate:"required"`
	SubmittedAt time.Time          `json:"submitted_at" bson:"submitted_at"`
}
