package services

import (
	"context"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewService handles car reviews and their moderation queue. A review is
// hidden from the public car page until an admin approves it.
type ReviewService interface {
	CreateReview(ctx context.Context, userID primitive.ObjectID, carID primitive.ObjectID, rating int, comment string) (*models.Review, error)
	ListCarReviews(ctx context.Context, carID primitive.ObjectID) ([]*models.Review, error)
	ListUserReviews(ctx context.Context, userID primitive.ObjectID) ([]*models.Review, error)
	CarRating(ctx context.Context, carID primitive.ObjectID) (*CarRating, error)

	ListPendingReviews(ctx context.Context) ([]*models.Review, error)
	ApproveReview(ctx context.Context, reviewID primitive.ObjectID) error
	RejectReview(ctx context.Context, reviewID primitive.ObjectID) error
}

type CarRating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type reviewService struct {
	reviewRepo interfaces.ReviewRepository
	carRepo    interfaces.CarRepository
	logger     *logger.Logger
}

func NewReviewService(reviewRepo interfaces.ReviewRepository, carRepo interfaces.CarRepository, log *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		carRepo:    carRepo,
		logger:     log,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID primitive.ObjectID, carID primitive.ObjectID, rating int, comment string) (*models.Review, error) {
	if _, err := s.carRepo.GetByID(ctx, carID); err != nil {
		return nil, err
	}

	review := &models.Review{
		CarID:    carID,
		UserID:   userID,
		Rating:   rating,
		Comment:  comment,
		Approved: false,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.WithCarID(carID).WithUserID(userID).Info("review submitted for moderation")
	return review, nil
}

func (s *reviewService) ListCarReviews(ctx context.Context, carID primitive.ObjectID) ([]*models.Review, error) {
	return s.reviewRepo.ListByCar(ctx, carID, true)
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID primitive.ObjectID) ([]*models.Review, error) {
	return s.reviewRepo.ListByUser(ctx, userID)
}

func (s *reviewService) CarRating(ctx context.Context, carID primitive.ObjectID) (*CarRating, error) {
	reviews, err := s.reviewRepo.ListByCar(ctx, carID, true)
	if err != nil {
		return nil, err
	}

	rating := &CarRating{Count: len(reviews)}
	if rating.Count == 0 {
		return rating, nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	rating.Average = float64(sum) / float64(rating.Count)

	return rating, nil
}

func (s *reviewService) ListPendingReviews(ctx context.Context) ([]*models.Review, error) {
	return s.reviewRepo.ListPending(ctx)
}

func (s *reviewService) ApproveReview(ctx context.Context, reviewID primitive.ObjectID) error {
	return s.reviewRepo.Update(ctx, reviewID, map[string]interface{}{"approved": true})
}

// RejectReview removes the review outright. There is no rejected state to
// keep around.
func (s *reviewService) RejectReview(ctx context.Context, reviewID primitive.ObjectID) error {
	return s.reviewRepo.Delete(ctx, reviewID)
}
