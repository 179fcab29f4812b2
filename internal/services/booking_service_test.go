package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"autorent/internal/models"
	"autorent/pkg/payment"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fixedNow() time.Time {
	return time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)
}

func mustMoneyT(t *testing.T, value string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func newTestBookingService(
	bookings *mockBookingRepo,
	cars *mockCarRepo,
	payments *mockPaymentRepo,
	cancellations *mockCancellationRepo,
	provider *mockPaymentProvider,
) *bookingService {
	svc := NewBookingService(bookings, cars, payments, cancellations, provider, NoopCacheService{}, testLogger(), "EUR").(*bookingService)
	svc.now = fixedNow
	return svc
}

func testCar(t *testing.T, rate string) *models.Car {
	return &models.Car{
		ID:           primitive.NewObjectID(),
		Make:         "Volkswagen",
		Model:        "Golf",
		Year:         2021,
		LicensePlate: "AB21CDE",
		DailyRate:    mustMoneyT(t, rate),
		IsAvailable:  true,
	}
}

func TestCreateBookingRejectsPastRentalDate(t *testing.T) {
	svc := newTestBookingService(&mockBookingRepo{}, &mockCarRepo{}, &mockPaymentRepo{}, &mockCancellationRepo{}, &mockPaymentProvider{})

	past := fixedNow().Add(-48 * time.Hour)
	ret := past.Add(72 * time.Hour)
	_, err := svc.CreateBooking(context.Background(), primitive.NewObjectID(), &CreateBookingRequest{
		CarID:      primitive.NewObjectID(),
		RentalDate: past,
		ReturnDate: &ret,
	})

	require.ErrorIs(t, err, ErrPastRentalDate)
}

func TestCreateBookingRejectsInvertedRange(t *testing.T) {
	svc := newTestBookingService(&mockBookingRepo{}, &mockCarRepo{}, &mockPaymentRepo{}, &mockCancellationRepo{}, &mockPaymentProvider{})

	start := fixedNow().Add(48 * time.Hour)
	ret := start.Add(-24 * time.Hour)
	_, err := svc.CreateBooking(context.Background(), primitive.NewObjectID(), &CreateBookingRequest{
		CarID:      primitive.NewObjectID(),
		RentalDate: start,
		ReturnDate: &ret,
	})

	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	car := testCar(t, "100.00")

	cars := &mockCarRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
			return car, nil
		},
	}
	bookings := &mockBookingRepo{
		FindActiveOverlappingFn: func(ctx context.Context, carID primitive.ObjectID, from, to time.Time) ([]*models.Booking, error) {
			return []*models.Booking{{ID: primitive.NewObjectID(), Status: models.BookingStatusConfirmed}}, nil
		},
	}

	svc := newTestBookingService(bookings, cars, &mockPaymentRepo{}, &mockCancellationRepo{}, &mockPaymentProvider{})

	start := fixedNow().Add(48 * time.Hour)
	ret := start.Add(96 * time.Hour)
	_, err := svc.CreateBooking(context.Background(), primitive.NewObjectID(), &CreateBookingRequest{
		CarID:      car.ID,
		RentalDate: start,
		ReturnDate: &ret,
	})

	require.ErrorIs(t, err, ErrBookingConflict)
}

func TestCreateBookingComputesCostAndCreatesPayment(t *testing.T) {
	car := testCar(t, "100.00")
	userID := primitive.NewObjectID()

	var createdBooking *models.Booking
	var createdPayment *models.Payment

	cars := &mockCarRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
			return car, nil
		},
	}
	bookings := &mockBookingRepo{
		FindActiveOverlappingFn: func(ctx context.Context, carID primitive.ObjectID, from, to time.Time) ([]*models.Booking, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, booking *models.Booking) error {
			booking.ID = primitive.NewObjectID()
			createdBooking = booking
			return nil
		},
	}
	payments := &mockPaymentRepo{
		CreateFn: func(ctx context.Context, p *models.Payment) error {
			createdPayment = p
			return nil
		},
	}

	svc := newTestBookingService(bookings, cars, payments, &mockCancellationRepo{}, &mockPaymentProvider{})

	start := time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)
	ret := time.Date(2023, 7, 5, 12, 0, 0, 0, time.UTC)
	booking, err := svc.CreateBooking(context.Background(), userID, &CreateBookingRequest{
		CarID:      car.ID,
		RentalDate: start,
		ReturnDate: &ret,
	})
	require.NoError(t, err)

	require.Equal(t, models.BookingStatusPending, booking.Status)
	require.True(t, booking.TotalCost.Equal(mustMoneyT(t, "400.00")), "got %s", booking.TotalCost.String())

	require.NotNil(t, createdBooking)
	require.NotNil(t, createdPayment)
	require.Equal(t, createdBooking.ID, createdPayment.BookingID)
	require.Equal(t, models.PaymentStatusPending, createdPayment.Status)
	require.True(t, createdPayment.Amount.Equal(booking.TotalCost))
}

func TestCreateBookingRejectsUnavailableCar(t *testing.T) {
	car := testCar(t, "100.00")
	car.IsAvailable = false

	cars := &mockCarRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
			return car, nil
		},
	}

	svc := newTestBookingService(&mockBookingRepo{}, cars, &mockPaymentRepo{}, &mockCancellationRepo{}, &mockPaymentProvider{})

	start := fixedNow().Add(48 * time.Hour)
	ret := start.Add(48 * time.Hour)
	_, err := svc.CreateBooking(context.Background(), primitive.NewObjectID(), &CreateBookingRequest{
		CarID:      car.ID,
		RentalDate: start,
		ReturnDate: &ret,
	})

	require.ErrorIs(t, err, ErrCarUnavailable)
}

func TestCheckoutCreatesIntentAndStoresRef(t *testing.T) {
	car := testCar(t, "100.00")
	userID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()
	paymentID := primitive.NewObjectID()

	booking := &models.Booking{
		ID:        bookingID,
		UserID:    userID,
		CarID:     car.ID,
		Status:    models.BookingStatusPending,
		TotalCost: mustMoneyT(t, "400.00"),
	}

	var storedUpdates map[string]interface{}

	bookings := &mockBookingRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
			return booking, nil
		},
	}
	cars := &mockCarRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
			return car, nil
		},
	}
	payments := &mockPaymentRepo{
		GetByBookingIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
			return &models.Payment{ID: paymentID, BookingID: bookingID, Status: models.PaymentStatusPending}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			storedUpdates = updates
			return nil
		},
	}
	provider := &mockPaymentProvider{
		CreateIntentFn: func(ctx context.Context, request *payment.IntentRequest) (*payment.IntentResponse, error) {
			require.Equal(t, int64(40000), request.AmountMinor)
			require.Equal(t, "EUR", request.Currency)
			return &payment.IntentResponse{
				IntentRef:    "test_intent",
				ClientSecret: "test_intent_secret",
				Status:       payment.IntentStatusProcessing,
			}, nil
		},
	}

	svc := newTestBookingService(bookings, cars, payments, &mockCancellationRepo{}, provider)

	session, err := svc.Checkout(context.Background(), userID, bookingID)
	require.NoError(t, err)
	require.Equal(t, "test_intent", session.IntentRef)
	require.Equal(t, "test_intent_secret", session.ClientSecret)
	require.Equal(t, "test_intent", storedUpdates["payment_intent"])
}

func TestCheckoutRejectsForeignBooking(t *testing.T) {
	bookings := &mockBookingRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: primitive.NewObjectID(), Status: models.BookingStatusPending}, nil
		},
	}

	svc := newTestBookingService(bookings, &mockCarRepo{}, &mockPaymentRepo{}, &mockCancellationRepo{}, &mockPaymentProvider{})

	_, err := svc.Checkout(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrBookingNotOwned)
}

func TestCheckoutRejectsAlreadyPaid(t *testing.T) {
	userID := primitive.NewObjectID()
	bookings := &mockBookingRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: userID, Status: models.BookingStatusConfirmed}, nil
		},
	}
	payments := &mockPaymentRepo{
		GetByBookingIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
			return &models.Payment{ID: primitive.NewObjectID(), Status: models.PaymentStatusPaid}, nil
		},
	}

	svc := newTestBookingService(bookings, &mockCarRepo{}, payments, &mockCancellationRepo{}, &mockPaymentProvider{})

	_, err := svc.Checkout(context.Background(), userID, primitive.NewObjectID())
	require.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestConfirmPaymentReconciliation(t *testing.T) {
	tests := []struct {
		name            string
		processorStatus payment.IntentStatus
		wantPayment     models.PaymentStatus
		wantBooking     models.BookingStatus
		wantAvailable   *bool
		wantIntentRef   string
	}{
		{
			name:            "succeeded confirms and takes car off market",
			processorStatus: payment.IntentStatusSucceeded,
			wantPayment:     models.PaymentStatusPaid,
			wantBooking:     models.BookingStatusConfirmed,
			wantAvailable:   boolPtr(false),
			wantIntentRef:   "test_intent",
		},
		{
			name:            "processing stays pending",
			processorStatus: payment.IntentStatusProcessing,
			wantPayment:     models.PaymentStatusPending,
			wantBooking:     models.BookingStatusPending,
			wantAvailable:   nil,
			wantIntentRef:   "test_intent",
		},
		{
			name:            "failure cancels and releases the car",
			processorStatus: payment.IntentStatus("requires_payment_method"),
			wantPayment:     models.PaymentStatusFailed,
			wantBooking:     models.BookingStatusCanceled,
			wantAvailable:   boolPtr(true),
			wantIntentRef:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := primitive.NewObjectID()
			bookingID := primitive.NewObjectID()
			carID := primitive.NewObjectID()

			var paymentUpdates map[string]interface{}
			var bookingUpdates map[string]interface{}
			var availability *bool

			bookings := &mockBookingRepo{
				GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
					return &models.Booking{ID: bookingID, UserID: userID, CarID: carID, Status: models.BookingStatusPending, TotalCost: mustMoneyT(t, "400.00")}, nil
				},
				UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
					bookingUpdates = updates
					return nil
				},
			}
			cars := &mockCarRepo{
				SetAvailabilityFn: func(ctx context.Context, id primitive.ObjectID, available bool) error {
					availability = &available
					return nil
				},
			}
			payments := &mockPaymentRepo{
				GetByBookingIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
					return &models.Payment{ID: primitive.NewObjectID(), BookingID: bookingID, Status: models.PaymentStatusPending}, nil
				},
				UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
					paymentUpdates = updates
					return nil
				},
			}
			provider := &mockPaymentProvider{
				GetIntentStatusFn: func(ctx context.Context, intentRef string) (payment.IntentStatus, error) {
					return tt.processorStatus, nil
				},
			}

			svc := newTestBookingService(bookings, cars, payments, &mockCancellationRepo{}, provider)

			outcome, err := svc.ConfirmPayment(context.Background(), userID, bookingID, "test_intent")
			require.NoError(t, err)

			require.Equal(t, tt.wantPayment, outcome.PaymentStatus)
			require.Equal(t, tt.wantBooking, outcome.BookingStatus)
			require.Equal(t, tt.wantPayment, paymentUpdates["status"])
			require.Equal(t, tt.wantBooking, bookingUpdates["status"])
			require.Equal(t, tt.wantIntentRef, paymentUpdates["payment_intent"])

			if tt.wantAvailable == nil {
				require.Nil(t, availability)
			} else {
				require.NotNil(t, availability)
				require.Equal(t, *tt.wantAvailable, *availability)
			}
		})
	}
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	userID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()
	carID := primitive.NewObjectID()

	status := models.BookingStatusPending
	paymentStatus := models.PaymentStatusPending

	bookings := &mockBookingRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
			return &models.Booking{ID: bookingID, UserID: userID, CarID: carID, Status: status, TotalCost: mustMoneyT(t, "100.00")}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			status = updates["status"].(models.BookingStatus)
			return nil
		},
	}
	cars := &mockCarRepo{
		SetAvailabilityFn: func(ctx context.Context, id primitive.ObjectID, available bool) error {
			return nil
		},
	}
	payments := &mockPaymentRepo{
		GetByBookingIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
			return &models.Payment{ID: primitive.NewObjectID(), BookingID: bookingID, Status: paymentStatus}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			paymentStatus = updates["status"].(models.PaymentStatus)
			return nil
		},
	}
	provider := &mockPaymentProvider{
		GetIntentStatusFn: func(ctx context.Context, intentRef string) (payment.IntentStatus, error) {
			return payment.IntentStatusSucceeded, nil
		},
	}

	svc := newTestBookingService(bookings, cars, payments, &mockCancellationRepo{}, provider)

	for i := 0; i < 3; i++ {
		outcome, err := svc.ConfirmPayment(context.Background(), userID, bookingID, "test_intent")
		require.NoError(t, err)
		require.Equal(t, models.BookingStatusConfirmed, outcome.BookingStatus)
		require.Equal(t, models.PaymentStatusPaid, outcome.PaymentStatus)
	}

	require.Equal(t, models.BookingStatusConfirmed, status)
	require.Equal(t, models.PaymentStatusPaid, paymentStatus)
}

func TestApproveCancellationUnpaidSkipsRefund(t *testing.T) {
	requestID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()
	carID := primitive.NewObjectID()

	refundCalled := false
	var bookingStatus models.BookingStatus
	var paymentStatus models.PaymentStatus
	var carAvailable *bool
	approvedRequest := false

	cancellations := &mockCancellationRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.CancellationRequest, error) {
			return &models.CancellationRequest{ID: requestID, BookingID: bookingID}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			approvedRequest = updates["approved"].(bool)
			return nil
		},
	}
	bookings := &mockBookingRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
			return &models.Booking{ID: bookingID, CarID: carID, Status: models.BookingStatusPending}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			bookingStatus = updates["status"].(models.BookingStatus)
			return nil
		},
	}
	payments := &mockPaymentRepo{
		GetByBookingIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
			return &models.Payment{ID: primitive.NewObjectID(), BookingID: bookingID, Status: models.PaymentStatusPending}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			paymentStatus = updates["status"].(models.PaymentStatus)
			return nil
		},
	}
	cars := &mockCarRepo{
		SetAvailabilityFn: func(ctx context.Context, id primitive.ObjectID, available bool) error {
			carAvailable = &available
			return nil
		},
	}
	provider := &mockPaymentProvider{
		RefundIntentFn: func(ctx context.Context, request *payment.RefundRequest) (*payment.RefundResponse, error) {
			refundCalled = true
			return &payment.RefundResponse{}, nil
		},
	}

	svc := newTestBookingService(bookings, cars, payments, cancellations, provider)

	require.NoError(t, svc.ApproveCancellation(context.Background(), requestID))

	require.False(t, refundCalled)
	require.Equal(t, models.BookingStatusCanceled, bookingStatus)
	require.Equal(t, models.PaymentStatusCanceled, paymentStatus)
	require.NotNil(t, carAvailable)
	require.True(t, *carAvailable)
	require.True(t, approvedRequest)
}

func TestApproveCancellationPaidRefundsIntent(t *testing.T) {
	requestID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()
	carID := primitive.NewObjectID()

	var refundedIntent string
	var paymentStatus models.PaymentStatus

	cancellations := &mockCancellationRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.CancellationRequest, error) {
			return &models.CancellationRequest{ID: requestID, BookingID: bookingID}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			return nil
		},
	}
	bookings := &mockBookingRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
			return &models.Booking{ID: bookingID, CarID: carID, Status: models.BookingStatusConfirmed}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			return nil
		},
	}
	payments := &mockPaymentRepo{
		GetByBookingIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
			return &models.Payment{ID: primitive.NewObjectID(), BookingID: bookingID, Status: models.PaymentStatusPaid, PaymentIntent: "test_intent"}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			paymentStatus = updates["status"].(models.PaymentStatus)
			return nil
		},
	}
	cars := &mockCarRepo{
		SetAvailabilityFn: func(ctx context.Context, id primitive.ObjectID, available bool) error {
			return nil
		},
	}
	provider := &mockPaymentProvider{
		RefundIntentFn: func(ctx context.Context, request *payment.RefundRequest) (*payment.RefundResponse, error) {
			refundedIntent = request.IntentRef
			return &payment.RefundResponse{RefundID: "re_1", Status: "succeeded"}, nil
		},
	}

	svc := newTestBookingService(bookings, cars, payments, cancellations, provider)

	require.NoError(t, svc.ApproveCancellation(context.Background(), requestID))
	require.Equal(t, "test_intent", refundedIntent)
	require.Equal(t, models.PaymentStatusRefunded, paymentStatus)
}

func TestApproveCancellationRefundFailureLeavesStateUntouched(t *testing.T) {
	requestID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	stateTouched := false

	cancellations := &mockCancellationRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.CancellationRequest, error) {
			return &models.CancellationRequest{ID: requestID, BookingID: bookingID}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			stateTouched = true
			return nil
		},
	}
	bookings := &mockBookingRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
			return &models.Booking{ID: bookingID, CarID: primitive.NewObjectID(), Status: models.BookingStatusConfirmed}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			stateTouched = true
			return nil
		},
	}
	payments := &mockPaymentRepo{
		GetByBookingIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
			return &models.Payment{ID: primitive.NewObjectID(), BookingID: bookingID, Status: models.PaymentStatusPaid, PaymentIntent: "test_intent"}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			stateTouched = true
			return nil
		},
	}
	cars := &mockCarRepo{
		SetAvailabilityFn: func(ctx context.Context, id primitive.ObjectID, available bool) error {
			stateTouched = true
			return nil
		},
	}
	provider := &mockPaymentProvider{
		RefundIntentFn: func(ctx context.Context, request *payment.RefundRequest) (*payment.RefundResponse, error) {
			return nil, errors.New("processor unavailable")
		},
	}

	svc := newTestBookingService(bookings, cars, payments, cancellations, provider)

	err := svc.ApproveCancellation(context.Background(), requestID)

	var refundErr *RefundProcessingError
	require.ErrorAs(t, err, &refundErr)
	require.Equal(t, "test_intent", refundErr.IntentRef)
	require.False(t, stateTouched)
}

func TestGetBookingLazilyCompletesElapsedBooking(t *testing.T) {
	userID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()
	carID := primitive.NewObjectID()

	ret := fixedNow().Add(-24 * time.Hour)

	var bookingStatus models.BookingStatus
	var carAvailable *bool

	bookings := &mockBookingRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
			return &models.Booking{
				ID:         bookingID,
				UserID:     userID,
				CarID:      carID,
				Status:     models.BookingStatusConfirmed,
				RentalDate: ret.Add(-72 * time.Hour),
				ReturnDate: &ret,
			}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			bookingStatus = updates["status"].(models.BookingStatus)
			return nil
		},
	}
	cars := &mockCarRepo{
		SetAvailabilityFn: func(ctx context.Context, id primitive.ObjectID, available bool) error {
			carAvailable = &available
			return nil
		},
	}

	svc := newTestBookingService(bookings, cars, &mockPaymentRepo{}, &mockCancellationRepo{}, &mockPaymentProvider{})

	booking, err := svc.GetBooking(context.Background(), userID, bookingID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusCompleted, booking.Status)
	require.Equal(t, models.BookingStatusCompleted, bookingStatus)
	require.NotNil(t, carAvailable)
	require.True(t, *carAvailable)
}

func TestRequestCancellationReturnsExistingPendingRequest(t *testing.T) {
	userID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()
	existing := &models.CancellationRequest{ID: primitive.NewObjectID(), BookingID: bookingID, UserID: userID}

	created := false

	bookings := &mockBookingRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
			return &models.Booking{ID: bookingID, UserID: userID, Status: models.BookingStatusConfirmed}, nil
		},
	}
	cancellations := &mockCancellationRepo{
		FindPendingByBookingFn: func(ctx context.Context, id primitive.ObjectID) (*models.CancellationRequest, error) {
			return existing, nil
		},
		CreateFn: func(ctx context.Context, request *models.CancellationRequest) error {
			created = true
			return nil
		},
	}

	svc := newTestBookingService(bookings, &mockCarRepo{}, &mockPaymentRepo{}, cancellations, &mockPaymentProvider{})

	request, err := svc.RequestCancellation(context.Background(), userID, bookingID, "change of plans")
	require.NoError(t, err)
	require.Equal(t, existing.ID, request.ID)
	require.False(t, created)
}

func boolPtr(b bool) *bool { return &b }
