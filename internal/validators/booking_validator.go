package validators

import (
	"time"
)

type CreateBookingRequest struct {
	CarID      string     `json:"car_id" validate:"required,object_id"`
	RentalDate time.Time  `json:"rental_date" validate:"required"`
	ReturnDate *time.Time `json:"return_date" validate:"omitempty"`
}

type CheckoutRequest struct {
	BookingID string `json:"booking_id" validate:"required,object_id"`
}

type ConfirmPaymentRequest struct {
	PaymentIntent string `json:"payment_intent" validate:"required"`
}

type CancellationRequestInput struct {
	Reason string `json:"reason" validate:"required,min=5,max=1000"`
}

func ValidateCreateBookingRequest(req *CreateBookingRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.ReturnDate != nil && !req.ReturnDate.After(req.RentalDate) {
		errors = append(errors, ValidationError{
			Field:   "return_date",
			Tag:     "after",
			Message: "return date must be after the rental date",
		})
	}

	return errors
}

func ValidateCancellationRequest(req *CancellationRequestInput) ValidationErrors {
	return ValidateStruct(req)
}
