package interfaces

import (
	"context"

	"autorent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	GetByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Payment, error)
	GetByIntentRef(ctx context.Context, intentRef string) (*models.Payment, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
}
