package utils

import "time"

// Application Constants
const (
	AppName    = "AutoRent"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "EUR"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 8
	MaxPageSize     = 100
	MinPageSize     = 1

	// Booking Constants
	MinRentalDays     = 1
	MaxRentalDays     = 90
	BookedDatesFormat = "02-01-2006"

	// Review Constants
	MinRating = 1
	MaxRating = 5

	// File Upload
	MaxImageSize    = 5 * 1024 * 1024 // 5MB
	AvatarMaxWidth  = 512
	AvatarMaxHeight = 512
	CarImageWidth   = 1280
	CarImageHeight  = 960

	// Cache TTLs
	CarCacheTTL     = 10 * time.Minute
	CatalogCacheTTL = 5 * time.Minute

	// Response status
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Authentication required"
	ErrForbidden        = "Insufficient permissions"
)

// User roles carried in the auth token
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)
