package routes

import (
	"autorent/internal/handlers"
	"autorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Setup wires every route group onto the API router.
func Setup(
	r *gin.RouterGroup,
	jwtSecret string,
	carHandler *handlers.CarHandler,
	bookingHandler *handlers.BookingHandler,
	reviewHandler *handlers.ReviewHandler,
	profileHandler *handlers.ProfileHandler,
	contactHandler *handlers.ContactHandler,
	adminHandler *handlers.AdminHandler,
) {
	SetupCatalogRoutes(r, carHandler, contactHandler)
	SetupBookingRoutes(r, jwtSecret, bookingHandler)
	SetupAccountRoutes(r, jwtSecret, reviewHandler, profileHandler)
	SetupAdminRoutes(r, jwtSecret, adminHandler)
}

// SetupCatalogRoutes registers the public, unauthenticated surface.
func SetupCatalogRoutes(r *gin.RouterGroup, carHandler *handlers.CarHandler, contactHandler *handlers.ContactHandler) {
	cars := r.Group("/cars")
	{
		cars.GET("", carHandler.ListCars)
		cars.GET("/facets", carHandler.CatalogFacets)
		cars.GET("/:id", carHandler.GetCar)
		cars.GET("/:id/booked-dates", carHandler.BookedDates)
	}

	r.POST("/contact", contactHandler.SubmitMessage)
}

func SetupBookingRoutes(r *gin.RouterGroup, jwtSecret string, bookingHandler *handlers.BookingHandler) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthRequired(jwtSecret))
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListMyBookings)
		bookings.GET("/cancellations", bookingHandler.ListMyCancellations)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.POST("/:id/checkout", bookingHandler.Checkout)
		bookings.POST("/:id/confirm-payment", bookingHandler.ConfirmPayment)
		bookings.POST("/:id/cancel", bookingHandler.RequestCancellation)
	}
}

func SetupAccountRoutes(r *gin.RouterGroup, jwtSecret string, reviewHandler *handlers.ReviewHandler, profileHandler *handlers.ProfileHandler) {
	reviews := r.Group("/reviews")
	reviews.Use(middleware.AuthRequired(jwtSecret))
	{
		reviews.POST("", reviewHandler.CreateReview)
		reviews.GET("", reviewHandler.ListMyReviews)
	}

	profile := r.Group("/profile")
	profile.Use(middleware.AuthRequired(jwtSecret))
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
		profile.POST("/avatar", profileHandler.UploadAvatar)
		profile.DELETE("/avatar", profileHandler.RemoveAvatar)
	}
}

func SetupAdminRoutes(r *gin.RouterGroup, jwtSecret string, adminHandler *handlers.AdminHandler) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.POST("/cars", adminHandler.CreateCar)
		admin.PUT("/cars/:id", adminHandler.UpdateCar)
		admin.DELETE("/cars/:id", adminHandler.DeleteCar)
		admin.POST("/cars/:id/image", adminHandler.UploadCarImage)
		admin.POST("/cars/import", adminHandler.ImportCarsCSV)
		admin.GET("/cars/export", adminHandler.ExportCarsCSV)
		admin.POST("/cars/refresh-locations", adminHandler.RefreshLocations)

		admin.GET("/bookings", adminHandler.ListBookings)

		admin.GET("/cancellations", adminHandler.ListCancellations)
		admin.POST("/cancellations/:id/approve", adminHandler.ApproveCancellation)

		admin.GET("/reviews", adminHandler.ListPendingReviews)
		admin.POST("/reviews/:id/approve", adminHandler.ApproveReview)
		admin.DELETE("/reviews/:id", adminHandler.RejectReview)

		admin.GET("/contact-messages", adminHandler.ListContactMessages)
	}
}
