package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/internal/utils"
	"autorent/pkg/logger"
	"autorent/pkg/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingService owns the booking lifecycle: reservation, checkout against
// the payment processor, reconciliation after the hosted payment page
// redirects back, and the cancellation/refund flow.
type BookingService interface {
	CreateBooking(ctx context.Context, userID primitive.ObjectID, request *CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID primitive.ObjectID) (*UserBookings, error)
	BookedDates(ctx context.Context, carID primitive.ObjectID) ([]string, error)

	Checkout(ctx context.Context, userID, bookingID primitive.ObjectID) (*CheckoutSession, error)
	ConfirmPayment(ctx context.Context, userID, bookingID primitive.ObjectID, intentRef string) (*PaymentOutcome, error)

	RequestCancellation(ctx context.Context, userID, bookingID primitive.ObjectID, reason string) (*models.CancellationRequest, error)
	ApproveCancellation(ctx context.Context, requestID primitive.ObjectID) error
	ListPendingCancellations(ctx context.Context) ([]*models.CancellationRequest, error)
	ListUserCancellations(ctx context.Context, userID primitive.ObjectID) ([]*models.CancellationRequest, error)

	ListAllBookings(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error)
}

type CreateBookingRequest struct {
	CarID      primitive.ObjectID
	RentalDate time.Time
	ReturnDate *time.Time
}

// CheckoutSession carries everything the client needs to drive the hosted
// payment form for a booking.
type CheckoutSession struct {
	BookingID    primitive.ObjectID `json:"booking_id"`
	PaymentID    primitive.ObjectID `json:"payment_id"`
	IntentRef    string             `json:"intent_ref"`
	ClientSecret string             `json:"client_secret"`
	Amount       models.Money       `json:"amount"`
	Currency     string             `json:"currency"`
}

type PaymentOutcome struct {
	BookingStatus models.BookingStatus `json:"booking_status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}

// UserBookings splits a user's history the way the account page renders it.
type UserBookings struct {
	Current []*models.Booking `json:"current"`
	Past    []*models.Booking `json:"past"`
}

type bookingService struct {
	bookingRepo      interfaces.BookingRepository
	carRepo          interfaces.CarRepository
	paymentRepo      interfaces.PaymentRepository
	cancellationRepo interfaces.CancellationRepository
	payments         payment.Provider
	cache            CacheService
	logger           *logger.Logger
	currency         string
	now              func() time.Time
}

func NewBookingService(
	bookingRepo interfaces.BookingRepository,
	carRepo interfaces.CarRepository,
	paymentRepo interfaces.PaymentRepository,
	cancellationRepo interfaces.CancellationRepository,
	payments payment.Provider,
	cache CacheService,
	log *logger.Logger,
	currency string,
) BookingService {
	return &bookingService{
		bookingRepo:      bookingRepo,
		carRepo:          carRepo,
		paymentRepo:      paymentRepo,
		cancellationRepo: cancellationRepo,
		payments:         payments,
		cache:            cache,
		logger:           log,
		currency:         currency,
		now:              time.Now,
	}
}

// CreateBooking reserves a car for the date range. The overlap check and the
// insert run inside one transaction so two racing requests for the same car
// cannot both succeed.
func (s *bookingService) CreateBooking(ctx context.Context, userID primitive.ObjectID, request *CreateBookingRequest) (*models.Booking, error) {
	now := s.now()

	if request.RentalDate.Before(now.Truncate(24 * time.Hour)) {
		return nil, ErrPastRentalDate
	}
	if request.ReturnDate != nil && !request.ReturnDate.After(request.RentalDate) {
		return nil, ErrInvalidDateRange
	}

	car, err := s.carRepo.GetByID(ctx, request.CarID)
	if err != nil {
		return nil, err
	}
	if !car.IsAvailable {
		return nil, ErrCarUnavailable
	}

	booking := &models.Booking{
		UserID:     userID,
		CarID:      car.ID,
		RentalDate: request.RentalDate,
		ReturnDate: request.ReturnDate,
		Status:     models.BookingStatusPending,
	}
	booking.Recalculate(car.DailyRate)

	rangeEnd := request.RentalDate
	if request.ReturnDate != nil {
		rangeEnd = *request.ReturnDate
	}

	err = s.bookingRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		overlapping, err := s.bookingRepo.FindActiveOverlapping(txCtx, car.ID, request.RentalDate, rangeEnd)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return ErrBookingConflict
		}

		if err := s.bookingRepo.Create(txCtx, booking); err != nil {
			return err
		}

		paymentRecord := &models.Payment{
			UserID:        userID,
			BookingID:     booking.ID,
			Amount:        booking.TotalCost,
			PaymentMethod: models.PaymentMethodStripe,
			Status:        models.PaymentStatusPending,
		}
		return s.paymentRepo.Create(txCtx, paymentRecord)
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogBookingEvent(booking.ID, "booking_created", map[string]interface{}{
		"user_id":    userID.Hex(),
		"car_id":     car.ID.Hex(),
		"total_cost": booking.TotalCost.String(),
	})

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotOwned
	}

	if err := s.completeIfElapsed(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID primitive.ObjectID) (*UserBookings, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	result := &UserBookings{
		Current: []*models.Booking{},
		Past:    []*models.Booking{},
	}

	for _, booking := range bookings {
		if err := s.completeIfElapsed(ctx, booking); err != nil {
			return nil, err
		}

		if booking.IsActive() {
			result.Current = append(result.Current, booking)
		} else {
			result.Past = append(result.Past, booking)
		}
	}

	return result, nil
}

// BookedDates returns every day blocked on the car's calendar, formatted for
// the date picker.
func (s *bookingService) BookedDates(ctx context.Context, carID primitive.ObjectID) ([]string, error) {
	bookings, err := s.bookingRepo.ListByCar(ctx, carID, []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
	})
	if err != nil {
		return nil, err
	}

	dates := []string{}
	seen := map[string]bool{}
	for _, booking := range bookings {
		end := booking.RentalDate
		if booking.ReturnDate != nil {
			end = *booking.ReturnDate
		}
		for day := booking.RentalDate; !day.After(end); day = day.Add(24 * time.Hour) {
			formatted := day.Format(utils.BookedDatesFormat)
			if !seen[formatted] {
				seen[formatted] = true
				dates = append(dates, formatted)
			}
		}
	}

	return dates, nil
}

// Checkout creates a payment intent for the booking's total and hands the
// client secret back to the caller. The intent ref is stored immediately so
// the redirect callback can find the payment again.
func (s *bookingService) Checkout(ctx context.Context, userID, bookingID primitive.ObjectID) (*CheckoutSession, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotOwned
	}
	if !booking.IsActive() {
		return nil, ErrBookingNotActive
	}

	paymentRecord, err := s.paymentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if paymentRecord.Status == models.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}

	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		return nil, err
	}

	intent, err := s.payments.CreateIntent(ctx, &payment.IntentRequest{
		AmountMinor: booking.TotalCost.MinorUnits(),
		Currency:    s.currency,
		Description: fmt.Sprintf("Rental of %s", car.DisplayName()),
		Metadata: map[string]string{
			"booking_id": booking.ID.Hex(),
			"user_id":    userID.Hex(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProcessor, err)
	}

	err = s.paymentRepo.Update(ctx, paymentRecord.ID, map[string]interface{}{
		"payment_intent": intent.IntentRef,
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogPaymentEvent(paymentRecord.ID, "checkout_started", booking.TotalCost.String(), s.currency)

	return &CheckoutSession{
		BookingID:    booking.ID,
		PaymentID:    paymentRecord.ID,
		IntentRef:    intent.IntentRef,
		ClientSecret: intent.ClientSecret,
		Amount:       booking.TotalCost,
		Currency:     s.currency,
	}, nil
}

// ConfirmPayment reconciles local state against the processor's authoritative
// intent status. The write is absolute, so replaying the redirect callback is
// harmless.
func (s *bookingService) ConfirmPayment(ctx context.Context, userID, bookingID primitive.ObjectID, intentRef string) (*PaymentOutcome, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotOwned
	}

	paymentRecord, err := s.paymentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	status, err := s.payments.GetIntentStatus(ctx, intentRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProcessor, err)
	}

	paymentStatus, bookingStatus := models.ReconcileProcessorStatus(string(status))

	paymentUpdates := map[string]interface{}{
		"status": paymentStatus,
	}
	// A failed attempt keeps the record detached from the intent so a fresh
	// checkout starts clean.
	if paymentStatus == models.PaymentStatusFailed {
		paymentUpdates["payment_intent"] = ""
	} else {
		paymentUpdates["payment_intent"] = intentRef
	}

	if err := s.paymentRepo.Update(ctx, paymentRecord.ID, paymentUpdates); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, booking.ID, map[string]interface{}{"status": bookingStatus}); err != nil {
		return nil, err
	}

	switch bookingStatus {
	case models.BookingStatusConfirmed:
		if err := s.carRepo.SetAvailability(ctx, booking.CarID, false); err != nil {
			return nil, err
		}
	case models.BookingStatusCanceled:
		if err := s.carRepo.SetAvailability(ctx, booking.CarID, true); err != nil {
			return nil, err
		}
	}

	s.logger.LogPaymentEvent(paymentRecord.ID, "payment_reconciled_"+string(status), booking.TotalCost.String(), s.currency)

	return &PaymentOutcome{
		BookingStatus: bookingStatus,
		PaymentStatus: paymentStatus,
	}, nil
}

func (s *bookingService) RequestCancellation(ctx context.Context, userID, bookingID primitive.ObjectID, reason string) (*models.CancellationRequest, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotOwned
	}
	if !booking.IsActive() {
		return nil, ErrBookingNotActive
	}

	// One open request per booking.
	if existing, err := s.cancellationRepo.FindPendingByBooking(ctx, bookingID); err == nil && existing != nil {
		return existing, nil
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	request := &models.CancellationRequest{
		BookingID: bookingID,
		UserID:    userID,
		Reason:    reason,
	}
	if err := s.cancellationRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.LogBookingEvent(bookingID, "cancellation_requested", map[string]interface{}{
		"request_id": request.ID.Hex(),
	})

	return request, nil
}

// ApproveCancellation executes an approved cancellation. Paid bookings are
// refunded through the processor first; if the refund fails nothing local
// changes and the error surfaces so the admin can retry.
func (s *bookingService) ApproveCancellation(ctx context.Context, requestID primitive.ObjectID) error {
	request, err := s.cancellationRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	booking, err := s.bookingRepo.GetByID(ctx, request.BookingID)
	if err != nil {
		return err
	}

	paymentRecord, err := s.paymentRepo.GetByBookingID(ctx, request.BookingID)
	if err != nil {
		return err
	}

	finalPaymentStatus := models.PaymentStatusCanceled
	if paymentRecord.Status == models.PaymentStatusPaid {
		_, err := s.payments.RefundIntent(ctx, &payment.RefundRequest{
			IntentRef: paymentRecord.PaymentIntent,
			Reason:    "requested_by_customer",
		})
		if err != nil {
			return &RefundProcessingError{
				BookingID: booking.ID.Hex(),
				IntentRef: paymentRecord.PaymentIntent,
				Err:       err,
			}
		}
		finalPaymentStatus = models.PaymentStatusRefunded
	}

	if err := s.bookingRepo.Update(ctx, booking.ID, map[string]interface{}{"status": models.BookingStatusCanceled}); err != nil {
		return err
	}
	if err := s.paymentRepo.Update(ctx, paymentRecord.ID, map[string]interface{}{"status": finalPaymentStatus}); err != nil {
		return err
	}
	if err := s.carRepo.SetAvailability(ctx, booking.CarID, true); err != nil {
		return err
	}
	if err := s.cancellationRepo.Update(ctx, request.ID, map[string]interface{}{"approved": true}); err != nil {
		return err
	}

	s.logger.LogBookingEvent(booking.ID, "cancellation_approved", map[string]interface{}{
		"request_id":     request.ID.Hex(),
		"payment_status": string(finalPaymentStatus),
	})

	return nil
}

func (s *bookingService) ListPendingCancellations(ctx context.Context) ([]*models.CancellationRequest, error) {
	return s.cancellationRepo.ListPending(ctx)
}

func (s *bookingService) ListUserCancellations(ctx context.Context, userID primitive.ObjectID) ([]*models.CancellationRequest, error) {
	return s.cancellationRepo.ListPendingByUser(ctx, userID)
}

func (s *bookingService) ListAllBookings(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	bookings, total, err := s.bookingRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	for _, booking := range bookings {
		if err := s.completeIfElapsed(ctx, booking); err != nil {
			return nil, 0, err
		}
	}

	return bookings, total, nil
}

// completeIfElapsed persists the lazy Confirmed -> Completed transition and
// puts the car back on the market.
func (s *bookingService) completeIfElapsed(ctx context.Context, booking *models.Booking) error {
	if !booking.CompleteIfElapsed(s.now()) {
		return nil
	}

	if err := s.bookingRepo.Update(ctx, booking.ID, map[string]interface{}{"status": models.BookingStatusCompleted}); err != nil {
		return err
	}
	if err := s.carRepo.SetAvailability(ctx, booking.CarID, true); err != nil {
		return err
	}

	s.logger.LogBookingEvent(booking.ID, "booking_completed", nil)
	return nil
}
