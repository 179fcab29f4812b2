package interfaces

import (
	"context"

	"autorent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CancellationRepository interface {
	Create(ctx context.Context, request *models.CancellationRequest) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.CancellationRequest, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	ListPending(ctx context.Context) ([]*models.CancellationRequest, error)
	ListPendingByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.CancellationRequest, error)
	FindPendingByBooking(ctx context.Context, bookingID primitive.ObjectID) (*models.CancellationRequest, error)
}
