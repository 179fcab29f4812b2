package mongodb

import (
	"context"
	"fmt"
	"time"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/internal/services"
	"autorent/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type contactRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewContactRepository(db *mongo.Database, cache services.CacheService) interfaces.ContactRepository {
	return &contactRepository{
		collection: db.Collection("contact_submissions"),
		cache:      cache,
	}
}

func (r *contactRepository) Create(ctx context.Context, submission *models.ContactSubmission) error {
	submission.ID = primitive.NewObjectID()
	submission.SubmittedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, submission)
	if err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}

	return nil
}

func (r *contactRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.ContactSubmission, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contact submissions: %w", err)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var submissions []*models.ContactSubmission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, 0, fmt.Errorf("failed to decode contact submissions: %w", err)
	}

	return submissions, total, nil
}
