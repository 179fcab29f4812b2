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

// BookingHandler drives the customer booking lifecycle.
type BookingHandler struct {
	bookingService services.BookingService
	logger         *logger.Logger
}

func NewBookingHandler(bookingService services.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         log,
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateCreateBookingRequest(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	carID, err := primitive.ObjectIDFromHex(req.CarID)
	if err != nil {
		utils.BadRequestResponse(c, "invalid car_id")
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), userID, &services.CreateBookingRequest{
		CarID:      carID,
		RentalDate: req.RentalDate,
		ReturnDate: req.ReturnDate,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Booking created", booking)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Booking retrieved", booking)
}

// ListMyBookings handles GET /bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookings, err := h.bookingService.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Bookings retrieved", bookings)
}

// Checkout handles POST /bookings/:id/checkout.
func (h *BookingHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.bookingService.Checkout(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Checkout session created", session)
}

// ConfirmPayment handles POST /bookings/:id/confirm-payment, hit by the
// client after the processor redirects back.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	outcome, err := h.bookingService.ConfirmPayment(c.Request.Context(), userID, id, req.PaymentIntent)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment reconciled", outcome)
}

// RequestCancellation handles POST /bookings/:id/cancel.
func (h *BookingHandler) RequestCancellation(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.CancellationRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateCancellationRequest(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	request, err := h.bookingService.RequestCancellation(c.Request.Context(), userID, id, req.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Cancellation requested", request)
}

// ListMyCancellations handles GET /bookings/cancellations.
func (h *BookingHandler) ListMyCancellations(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	requests, err := h.bookingService.ListUserCancellations(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Cancellation requests retrieved", requests)
}
