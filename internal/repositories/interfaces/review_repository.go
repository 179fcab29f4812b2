package interfaces

import (
	"context"

	"autorent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByCar(ctx context.Context, carID primitive.ObjectID, approvedOnly bool) ([]*models.Review, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Review, error)
	ListPending(ctx context.Context) ([]*models.Review, error)
}
