package interfaces

import (
	"context"

	"autorent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
	Update(ctx context.Context, userID primitive.ObjectID, updates map[string]interface{}) error
}
