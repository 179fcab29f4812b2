package mongodb

import (
	"context"
	"fmt"
	"time"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cancellationRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewCancellationRepository(db *mongo.Database, cache services.CacheService) interfaces.CancellationRepository {
	return &cancellationRepository{
		collection: db.Collection("cancellation_requests"),
		cache:      cache,
	}
}

func (r *cancellationRepository) Create(ctx context.Context, request *models.CancellationRequest) error {
	request.ID = primitive.NewObjectID()
	request.RequestDate = time.Now()
	request.UpdatedAt = request.RequestDate

	_, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to create cancellation request: %w", err)
	}

	return nil
}

func (r *cancellationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CancellationRequest, error) {
	var request models.CancellationRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cancellation request: %w", err)
	}

	return &request, nil
}

func (r *cancellationRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update cancellation request: %w", err)
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func (r *cancellationRepository) ListPending(ctx context.Context) ([]*models.CancellationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "request_date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"approved": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending cancellations: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.CancellationRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode cancellation requests: %w", err)
	}

	return requests, nil
}

func (r *cancellationRepository) ListPendingByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.CancellationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "request_date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID, "approved": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list user cancellations: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.CancellationRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode cancellation requests: %w", err)
	}

	return requests, nil
}

func (r *cancellationRepository) FindPendingByBooking(ctx context.Context, bookingID primitive.ObjectID) (*models.CancellationRequest, error) {
	var request models.CancellationRequest
	err := r.collection.FindOne(ctx, bson.M{"booking_id": bookingID, "approved": false}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pending cancellation: %w", err)
	}

	return &request, nil
}
