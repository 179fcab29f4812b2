package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
	PaymentStatusCanceled PaymentStatus = "Canceled"
)

const PaymentMethodStripe = "stripe"

// Payment is the shadow record tracking the monetary side of a booking. It is
// created Pending alongside the booking and only mutated by the processor
// reconciliation and the cancellation/refund flow.
type Payment struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	BookingID     primitive.ObjectID `json:"booking_id" bson:"booking_id" validate:"required"`
	Amount        Money              `json:"amount" bson:"amount"`
	PaymentMethod string             `json:"payment_method" bson:"payment_method"`
	PaymentIntent string             `json:"payment_intent,omitempty" bson:"payment_intent,omitempty"`
	Status        PaymentStatus      `json:"status" bson:"status"`
	PaymentDate   time.Time          `json:"payment_date" bson:"payment_date"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// ReconcileProcessorStatus maps the processor's authoritative intent status
// onto the local payment/booking state pair:
//
//	succeeded  -> Paid, Confirmed
//	processing -> Pending, Pending
//	other      -> Failed, Canceled
//
// The mapping writes absolute states, so replaying a redirect callback with
// the same upstream status cannot corrupt anything.
func ReconcileProcessorStatus(processorStatus string) (PaymentStatus, BookingStatus) {
	switch processorStatus {
	case "succeeded":
		return PaymentStatusPaid, BookingStatusConfirmed
	case "processing":
		return PaymentStatusPending, BookingStatusPending
	default:
		return PaymentStatusFailed, BookingStatusCanceled
	}
}
