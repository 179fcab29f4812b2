package handlers

import (
	"autorent/internal/middleware"
	"autorent/internal/services"
	"autorent/internal/utils"
	"autorent/internal/validators"
	"autorent/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	logger        *logger.Logger
}

func NewReviewHandler(reviewService services.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        log,
	}
}

// CreateReview handles POST /reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateCreateReviewRequest(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	carID, err := primitive.ObjectIDFromHex(req.CarID)
	if err != nil {
		utils.BadRequestResponse(c, "invalid car_id")
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), userID, carID, req.Rating, req.Comment)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Review submitted for moderation", review)
}

// ListMyReviews handles GET /reviews.
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	reviews, err := h.reviewService.ListUserReviews(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Reviews retrieved", reviews)
}
