package handlers

import (
	"strconv"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/internal/services"
	"autorent/internal/utils"
	"autorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CarHandler serves the public catalog.
type CarHandler struct {
	carService     services.CarService
	reviewService  services.ReviewService
	bookingService services.BookingService
	logger         *logger.Logger
}

func NewCarHandler(
	carService services.CarService,
	reviewService services.ReviewService,
	bookingService services.BookingService,
	log *logger.Logger,
) *CarHandler {
	return &CarHandler{
		carService:     carService,
		reviewService:  reviewService,
		bookingService: bookingService,
		logger:         log,
	}
}

// ListCars handles GET /cars with the catalog filters as query params.
func (h *CarHandler) ListCars(c *gin.Context) {
	filter := carFilterFromQuery(c)
	params := utils.GetPaginationParams(c)

	cars, total, err := h.carService.ListCars(c.Request.Context(), filter, params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Cars retrieved", cars, &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
		Total:      total,
		Count:      len(cars),
	})
}

// CatalogFacets handles GET /cars/facets.
func (h *CarHandler) CatalogFacets(c *gin.Context) {
	filter := carFilterFromQuery(c)

	facets, err := h.carService.CatalogFacets(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Catalog facets retrieved", facets)
}

// GetCar handles GET /cars/:id. The detail page bundles the car, its approved
// reviews, the aggregate rating, booked dates and a short-lived image URL.
func (h *CarHandler) GetCar(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	car, err := h.carService.GetCar(ctx, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	reviews, err := h.reviewService.ListCarReviews(ctx, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rating, err := h.reviewService.CarRating(ctx, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bookedDates, err := h.bookingService.BookedDates(ctx, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	imageURL, err := h.carService.CarImageURL(ctx, car)
	if err != nil {
		h.logger.WithCarID(id).WithError(err).Warn("failed to sign car image URL")
	}

	utils.SuccessResponse(c, "Car retrieved", gin.H{
		"car":          car,
		"reviews":      reviews,
		"rating":       rating,
		"booked_dates": bookedDates,
		"image_url":    imageURL,
	})
}

// BookedDates handles GET /cars/:id/booked-dates for the date picker.
func (h *CarHandler) BookedDates(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	dates, err := h.bookingService.BookedDates(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Booked dates retrieved", dates)
}

func carFilterFromQuery(c *gin.Context) *interfaces.CarFilter {
	year, _ := strconv.Atoi(c.Query("year"))

	return &interfaces.CarFilter{
		Make:          c.Query("make"),
		Model:         c.Query("model"),
		Year:          year,
		LocationCity:  c.Query("city"),
		CarType:       models.CarType(c.Query("car_type")),
		FuelType:      models.FuelType(c.Query("fuel_type")),
		OnlyAvailable: c.DefaultQuery("available", "false") == "true",
	}
}
