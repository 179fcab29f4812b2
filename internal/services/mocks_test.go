package services

import (
	"context"
	"io"
	"time"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/internal/utils"
	"autorent/pkg/logger"
	"autorent/pkg/maps"
	"autorent/pkg/payment"
	"autorent/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logger.Logger {
	log, _ := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	log.SetOutput(io.Discard)
	return log
}

type mockBookingRepo struct {
	CreateFn                func(ctx context.Context, booking *models.Booking) error
	GetByIDFn               func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	UpdateFn                func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	FindActiveOverlappingFn func(ctx context.Context, carID primitive.ObjectID, from, to time.Time) ([]*models.Booking, error)
	CountByStatusFn         func(ctx context.Context) (map[models.BookingStatus]int64, error)
	ListByUserFn            func(ctx context.Context, userID primitive.ObjectID, statuses []models.BookingStatus) ([]*models.Booking, error)
	ListByCarFn             func(ctx context.Context, carID primitive.ObjectID, statuses []models.BookingStatus) ([]*models.Booking, error)
	ListFn                  func(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return m.CreateFn(ctx, booking)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockBookingRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return m.UpdateFn(ctx, id, updates)
}

func (m *mockBookingRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockBookingRepo) FindActiveOverlapping(ctx context.Context, carID primitive.ObjectID, from, to time.Time) ([]*models.Booking, error) {
	return m.FindActiveOverlappingFn(ctx, carID, from, to)
}

func (m *mockBookingRepo) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	return m.CountByStatusFn(ctx)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID primitive.ObjectID, statuses []models.BookingStatus) ([]*models.Booking, error) {
	return m.ListByUserFn(ctx, userID, statuses)
}

func (m *mockBookingRepo) ListByCar(ctx context.Context, carID primitive.ObjectID, statuses []models.BookingStatus) ([]*models.Booking, error) {
	return m.ListByCarFn(ctx, carID, statuses)
}

func (m *mockBookingRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	return m.ListFn(ctx, params)
}

type mockCarRepo struct {
	CreateFn               func(ctx context.Context, car *models.Car) error
	GetByIDFn              func(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	GetByLicensePlateFn    func(ctx context.Context, licensePlate string) (*models.Car, error)
	UpdateFn               func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeleteFn               func(ctx context.Context, id primitive.ObjectID) error
	ListFn                 func(ctx context.Context, filter *interfaces.CarFilter, params *utils.PaginationParams) ([]*models.Car, int64, error)
	ListAllFn              func(ctx context.Context) ([]*models.Car, error)
	UpsertByLicensePlateFn func(ctx context.Context, car *models.Car) error
	SetAvailabilityFn      func(ctx context.Context, id primitive.ObjectID, available bool) error
	DistinctStringsFn      func(ctx context.Context, field string, match map[string]interface{}) ([]string, error)
	DistinctYearsFn        func(ctx context.Context, match map[string]interface{}) ([]int, error)
}

func (m *mockCarRepo) Create(ctx context.Context, car *models.Car) error {
	return m.CreateFn(ctx, car)
}

func (m *mockCarRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockCarRepo) GetByLicensePlate(ctx context.Context, licensePlate string) (*models.Car, error) {
	return m.GetByLicensePlateFn(ctx, licensePlate)
}

func (m *mockCarRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return m.UpdateFn(ctx, id, updates)
}

func (m *mockCarRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockCarRepo) List(ctx context.Context, filter *interfaces.CarFilter, params *utils.PaginationParams) ([]*models.Car, int64, error) {
	return m.ListFn(ctx, filter, params)
}

func (m *mockCarRepo) ListAll(ctx context.Context) ([]*models.Car, error) {
	return m.ListAllFn(ctx)
}

func (m *mockCarRepo) UpsertByLicensePlate(ctx context.Context, car *models.Car) error {
	return m.UpsertByLicensePlateFn(ctx, car)
}

func (m *mockCarRepo) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	return m.SetAvailabilityFn(ctx, id, available)
}

func (m *mockCarRepo) DistinctStrings(ctx context.Context, field string, match map[string]interface{}) ([]string, error) {
	return m.DistinctStringsFn(ctx, field, match)
}

func (m *mockCarRepo) DistinctYears(ctx context.Context, match map[string]interface{}) ([]int, error) {
	return m.DistinctYearsFn(ctx, match)
}

type mockPaymentRepo struct {
	CreateFn         func(ctx context.Context, payment *models.Payment) error
	GetByIDFn        func(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	GetByBookingIDFn func(ctx context.Context, bookingID primitive.ObjectID) (*models.Payment, error)
	GetByIntentRefFn func(ctx context.Context, intentRef string) (*models.Payment, error)
	UpdateFn         func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	return m.CreateFn(ctx, payment)
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockPaymentRepo) GetByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Payment, error) {
	return m.GetByBookingIDFn(ctx, bookingID)
}

func (m *mockPaymentRepo) GetByIntentRef(ctx context.Context, intentRef string) (*models.Payment, error) {
	return m.GetByIntentRefFn(ctx, intentRef)
}

func (m *mockPaymentRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return m.UpdateFn(ctx, id, updates)
}

type mockCancellationRepo struct {
	CreateFn               func(ctx context.Context, request *models.CancellationRequest) error
	GetByIDFn              func(ctx context.Context, id primitive.ObjectID) (*models.CancellationRequest, error)
	UpdateFn               func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	ListPendingFn          func(ctx context.Context) ([]*models.CancellationRequest, error)
	ListPendingByUserFn    func(ctx context.Context, userID primitive.ObjectID) ([]*models.CancellationRequest, error)
	FindPendingByBookingFn func(ctx context.Context, bookingID primitive.ObjectID) (*models.CancellationRequest, error)
}

func (m *mockCancellationRepo) Create(ctx context.Context, request *models.CancellationRequest) error {
	return m.CreateFn(ctx, request)
}

func (m *mockCancellationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CancellationRequest, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockCancellationRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return m.UpdateFn(ctx, id, updates)
}

func (m *mockCancellationRepo) ListPending(ctx context.Context) ([]*models.CancellationRequest, error) {
	return m.ListPendingFn(ctx)
}

func (m *mockCancellationRepo) ListPendingByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.CancellationRequest, error) {
	return m.ListPendingByUserFn(ctx, userID)
}

func (m *mockCancellationRepo) FindPendingByBooking(ctx context.Context, bookingID primitive.ObjectID) (*models.CancellationRequest, error) {
	return m.FindPendingByBookingFn(ctx, bookingID)
}

type mockReviewRepo struct {
	CreateFn      func(ctx context.Context, review *models.Review) error
	GetByIDFn     func(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	UpdateFn      func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeleteFn      func(ctx context.Context, id primitive.ObjectID) error
	ListByCarFn   func(ctx context.Context, carID primitive.ObjectID, approvedOnly bool) ([]*models.Review, error)
	ListByUserFn  func(ctx context.Context, userID primitive.ObjectID) ([]*models.Review, error)
	ListPendingFn func(ctx context.Context) ([]*models.Review, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	return m.CreateFn(ctx, review)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockReviewRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return m.UpdateFn(ctx, id, updates)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockReviewRepo) ListByCar(ctx context.Context, carID primitive.ObjectID, approvedOnly bool) ([]*models.Review, error) {
	return m.ListByCarFn(ctx, carID, approvedOnly)
}

func (m *mockReviewRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Review, error) {
	return m.ListByUserFn(ctx, userID)
}

func (m *mockReviewRepo) ListPending(ctx context.Context) ([]*models.Review, error) {
	return m.ListPendingFn(ctx)
}

type mockPaymentProvider struct {
	CreateIntentFn    func(ctx context.Context, request *payment.IntentRequest) (*payment.IntentResponse, error)
	GetIntentStatusFn func(ctx context.Context, intentRef string) (payment.IntentStatus, error)
	RefundIntentFn    func(ctx context.Context, request *payment.RefundRequest) (*payment.RefundResponse, error)
}

func (m *mockPaymentProvider) CreateIntent(ctx context.Context, request *payment.IntentRequest) (*payment.IntentResponse, error) {
	return m.CreateIntentFn(ctx, request)
}

func (m *mockPaymentProvider) GetIntentStatus(ctx context.Context, intentRef string) (payment.IntentStatus, error) {
	return m.GetIntentStatusFn(ctx, intentRef)
}

func (m *mockPaymentProvider) RefundIntent(ctx context.Context, request *payment.RefundRequest) (*payment.RefundResponse, error) {
	return m.RefundIntentFn(ctx, request)
}

type mockGeocoder struct {
	ReverseGeocodeFn func(ctx context.Context, lat, lng float64) (*maps.GeocodeResult, error)
}

func (m *mockGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*maps.GeocodeResult, error) {
	return m.ReverseGeocodeFn(ctx, lat, lng)
}

type mockStorage struct {
	UploadFn     func(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error)
	DownloadFn   func(ctx context.Context, key string) (*storage.DownloadResponse, error)
	DeleteFn     func(ctx context.Context, key string) error
	GetURLFn     func(ctx context.Context, key string, expiration time.Duration) (string, error)
	FileExistsFn func(ctx context.Context, key string) (bool, error)
}

func (m *mockStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	return m.UploadFn(ctx, request)
}

func (m *mockStorage) Download(ctx context.Context, key string) (*storage.DownloadResponse, error) {
	return m.DownloadFn(ctx, key)
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	return m.DeleteFn(ctx, key)
}

func (m *mockStorage) GetURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return m.GetURLFn(ctx, key, expiration)
}

func (m *mockStorage) FileExists(ctx context.Context, key string) (bool, error) {
	return m.FileExistsFn(ctx, key)
}
