package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP status codes; repositories never return them directly.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidDateRange = errors.New("invalid rental date range")
	ErrPastRentalDate   = errors.New("rental date cannot be in the past")
	ErrCarUnavailable   = errors.New("car is not available")
	ErrBookingConflict  = errors.New("car is already booked for the requested dates")
	ErrBookingNotOwned  = errors.New("booking does not belong to this user")
	ErrBookingNotActive = errors.New("booking is no longer active")
	ErrAlreadyPaid      = errors.New("booking has already been paid")
	ErrNotPaid          = errors.New("booking has not been paid")
	ErrPaymentProcessor = errors.New("payment processor error")
	ErrDuplicatePlate   = errors.New("license plate already registered")
	ErrCacheMiss        = errors.New("cache miss")
)

// RefundProcessingError carries the processor failure out of the
// cancellation flow. The local state is deliberately left untouched when the
// refund fails, so the admin can retry after the upstream problem clears.
type RefundProcessingError struct {
	BookingID string
	IntentRef string
	Err       error
}

func (e *RefundProcessingError) Error() string {
	return fmt.Sprintf("refund for booking %s (intent %s) failed: %v", e.BookingID, e.IntentRef, e.Err)
}

func (e *RefundProcessingError) Unwrap() error {
	return e.Err
}
