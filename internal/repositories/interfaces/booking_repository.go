package interfaces

import (
	"context"
	"time"

	"autorent/internal/models"
	"autorent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// WithTransaction runs fn in a single multi-document transaction so the
	// overlap check and the insert cannot interleave with a racing request.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// FindActiveOverlapping returns Pending/Confirmed bookings for the car
	// whose range intersects [from, to].
	FindActiveOverlapping(ctx context.Context, carID primitive.ObjectID, from, to time.Time) ([]*models.Booking, error)

	// CountByStatus feeds the admin dashboard.
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)

	ListByUser(ctx context.Context, userID primitive.ObjectID, statuses []models.BookingStatus) ([]*models.Booking, error)
	ListByCar(ctx context.Context, carID primitive.ObjectID, statuses []models.BookingStatus) ([]*models.Booking, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error)
}
