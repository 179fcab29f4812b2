package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CancellationRequest is a user's request to cancel a booking. Approval is an
// admin action and triggers the refund flow.
type CancellationRequest struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BookingID   primitive.ObjectID `json:"booking_id" bson:"booking_id" validate:"required"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	Reason      string             `json:"reason" bson:"reason" validate:"required"`
	Approved    bool               `json:"approved" bson:"approved"`
	RequestDate time.Time          `json:"request_date" bson:"request_date"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
