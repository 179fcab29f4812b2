package handlers

import (
	"errors"
	"net/http"

	"autorent/internal/services"
	"autorent/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// handleServiceError maps service-layer errors onto HTTP responses. Unknown
// errors become a 500 without leaking detail.
func handleServiceError(c *gin.Context, err error) {
	var refundErr *services.RefundProcessingError

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "Resource")
	case errors.Is(err, services.ErrBookingNotOwned):
		utils.ForbiddenResponse(c)
	case errors.Is(err, services.ErrBookingConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrDuplicatePlate):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrPastRentalDate),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrCarUnavailable),
		errors.Is(err, services.ErrBookingNotActive),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrNotPaid):
		utils.BadRequestResponse(c, err.Error())
	case errors.As(err, &refundErr):
		utils.ErrorResponse(c, http.StatusBadGateway, "REFUND_FAILED", refundErr.Error())
	case errors.Is(err, services.ErrPaymentProcessor):
		utils.ErrorResponse(c, http.StatusBadGateway, "PAYMENT_PROCESSOR_ERROR", "Payment processor error")
	default:
		utils.InternalServerErrorResponse(c)
	}
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}
