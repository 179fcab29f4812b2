package handlers

import (
	"fmt"
	"net/http"
	"time"

	"autorent/internal/models"
	"autorent/internal/services"
	"autorent/internal/utils"
	"autorent/internal/validators"
	"autorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the back-office operations: fleet CRUD, bulk
// import/export, moderation queues and the dashboard.
type AdminHandler struct {
	carService       services.CarService
	bookingService   services.BookingService
	reviewService    services.ReviewService
	contactService   services.ContactService
	dashboardService services.DashboardService
	logger           *logger.Logger
}

func NewAdminHandler(
	carService services.CarService,
	bookingService services.BookingService,
	reviewService services.ReviewService,
	contactService services.ContactService,
	dashboardService services.DashboardService,
	log *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		carService:       carService,
		bookingService:   bookingService,
		reviewService:    reviewService,
		contactService:   contactService,
		dashboardService: dashboardService,
		logger:           log,
	}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	overview, err := h.dashboardService.Overview(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved", overview)
}

// CreateCar handles POST /admin/cars.
func (h *AdminHandler) CreateCar(c *gin.Context) {
	var req validators.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateCreateCarRequest(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	rate, err := models.NewMoneyFromString(req.DailyRate)
	if err != nil {
		utils.BadRequestResponse(c, "invalid daily_rate")
		return
	}

	carType := models.CarType(req.CarType)
	if !carType.Valid() {
		utils.BadRequestResponse(c, "unknown car_type")
		return
	}
	fuelType := models.FuelType(req.FuelType)
	if !fuelType.Valid() {
		utils.BadRequestResponse(c, "unknown fuel_type")
		return
	}

	car := &models.Car{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		DailyRate:    rate,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Features:     req.Features,
		CarType:      carType,
		FuelType:     fuelType,
	}
	if err := h.carService.CreateCar(c.Request.Context(), car); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Car created", car)
}

// UpdateCar handles PUT /admin/cars/:id.
func (h *AdminHandler) UpdateCar(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateUpdateCarRequest(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	updates := map[string]interface{}{}
	if req.Make != "" {
		updates["make"] = req.Make
	}
	if req.Model != "" {
		updates["model"] = req.Model
	}
	if req.Year != 0 {
		updates["year"] = req.Year
	}
	if req.DailyRate != "" {
		rate, err := models.NewMoneyFromString(req.DailyRate)
		if err != nil {
			utils.BadRequestResponse(c, "invalid daily_rate")
			return
		}
		updates["daily_rate"] = rate
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Features != "" {
		updates["features"] = req.Features
	}
	if req.CarType != "" {
		carType := models.CarType(req.CarType)
		if !carType.Valid() {
			utils.BadRequestResponse(c, "unknown car_type")
			return
		}
		updates["car_type"] = carType
	}
	if req.FuelType != "" {
		fuelType := models.FuelType(req.FuelType)
		if !fuelType.Valid() {
			utils.BadRequestResponse(c, "unknown fuel_type")
			return
		}
		updates["fuel_type"] = fuelType
	}
	if len(updates) == 0 {
		utils.BadRequestResponse(c, "no fields to update")
		return
	}

	if err := h.carService.UpdateCar(c.Request.Context(), id, updates); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Car updated", nil)
}

// DeleteCar handles DELETE /admin/cars/:id.
func (h *AdminHandler) DeleteCar(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.carService.DeleteCar(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Car deleted", nil)
}

// UploadCarImage handles POST /admin/cars/:id/image.
func (h *AdminHandler) UploadCarImage(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "image file is required")
		return
	}
	if fileHeader.Size > utils.MaxImageSize {
		utils.BadRequestResponse(c, "image file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	defer file.Close()

	key, err := h.carService.UploadCarImage(c.Request.Context(), id, file, fileHeader.Filename)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Car image updated", gin.H{"image_key": key})
}

// ImportCarsCSV handles POST /admin/cars/import as a multipart upload.
func (h *AdminHandler) ImportCarsCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "CSV file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	defer file.Close()

	result, err := h.carService.ImportCSV(c.Request.Context(), file)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Fleet import finished", result)
}

// ExportCarsCSV handles GET /admin/cars/export and streams the fleet as CSV.
func (h *AdminHandler) ExportCarsCSV(c *gin.Context) {
	filename := fmt.Sprintf("fleet-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := h.carService.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		h.logger.WithError(err).Error("fleet CSV export failed")
	}
}

// RefreshLocations handles POST /admin/cars/refresh-locations.
func (h *AdminHandler) RefreshLocations(c *gin.Context) {
	result, err := h.carService.RefreshLocations(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Location refresh finished", result)
}

// ListBookings handles GET /admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	bookings, total, err := h.bookingService.ListAllBookings(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved", bookings, &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
		Total:      total,
		Count:      len(bookings),
	})
}

// ListCancellations handles GET /admin/cancellations.
func (h *AdminHandler) ListCancellations(c *gin.Context) {
	requests, err := h.bookingService.ListPendingCancellations(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Pending cancellations retrieved", requests)
}

// ApproveCancellation handles POST /admin/cancellations/:id/approve.
func (h *AdminHandler) ApproveCancellation(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.ApproveCancellation(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Cancellation approved", nil)
}

// ListPendingReviews handles GET /admin/reviews.
func (h *AdminHandler) ListPendingReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListPendingReviews(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Pending reviews retrieved", reviews)
}

// ApproveReview handles POST /admin/reviews/:id/approve.
func (h *AdminHandler) ApproveReview(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.ApproveReview(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Review approved", nil)
}

// RejectReview handles DELETE /admin/reviews/:id.
func (h *AdminHandler) RejectReview(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.RejectReview(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Review rejected", nil)
}

// ListContactMessages handles GET /admin/contact-messages.
func (h *AdminHandler) ListContactMessages(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	messages, total, err := h.contactService.ListMessages(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Contact messages retrieved", messages, &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
		Total:      total,
		Count:      len(messages),
	})
}
