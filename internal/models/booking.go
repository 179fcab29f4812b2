package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCanceled  BookingStatus = "Canceled"
)

// Booking reserves one car for one user over a date range. TotalCost is
// always derived from the range and the car's daily rate; callers must
// recalculate it before every write rather than trusting the stored value.
type Booking struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	CarID      primitive.ObjectID `json:"car_id" bson:"car_id" validate:"required"`
	RentalDate time.Time          `json:"rental_date" bson:"rental_date" validate:"required"`
	ReturnDate *time.Time         `json:"return_date,omitempty" bson:"return_date,omitempty"`
	TotalCost  Money              `json:"total_cost" bson:"total_cost"`
	Status     BookingStatus      `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// CalculateTotalCost derives a booking's cost: whole days between the two
// dates, floored at one day, times the daily rate. A booking with no return
// date yet costs nothing.
func CalculateTotalCost(rentalDate time.Time, returnDate *time.Time, dailyRate Money) Money {
	if returnDate == nil {
		return ZeroMoney()
	}

	days := int64(returnDate.Sub(rentalDate) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}

	return dailyRate.MulInt(days)
}

// Recalculate refreshes the derived cost from the car's current rate.
func (b *Booking) Recalculate(dailyRate Money) {
	b.TotalCost = CalculateTotalCost(b.RentalDate, b.ReturnDate, dailyRate)
}

// CompleteIfElapsed lazily promotes a Confirmed booking whose return date has
// passed to Completed. Returns true when the transition fired, in which case
// the caller must persist the booking and re-flag the car available.
func (b *Booking) CompleteIfElapsed(now time.Time) bool {
	if b.Status != BookingStatusConfirmed {
		return false
	}
	if b.ReturnDate == nil || !b.ReturnDate.Before(now) {
		return false
	}

	b.Status = BookingStatusCompleted
	return true
}

// Overlaps reports whether the booking's range intersects [from, to].
func (b *Booking) Overlaps(from time.Time, to time.Time) bool {
	end := b.RentalDate
	if b.ReturnDate != nil {
		end = *b.ReturnDate
	}
	return !b.RentalDate.After(to) && !end.Before(from)
}

// IsActive reports whether the booking still blocks its car's calendar.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
