package interfaces

import (
	"context"

	"autorent/internal/models"
	"autorent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarFilter narrows catalog queries. Zero values mean "any".
type CarFilter struct {
	Make          string
	Model         string
	Year          int
	LocationCity  string
	CarType       models.CarType
	FuelType      models.FuelType
	OnlyAvailable bool
}

type CarRepository interface {
	Create(ctx context.Context, car *models.Car) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	GetByLicensePlate(ctx context.Context, licensePlate string) (*models.Car, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter *CarFilter, params *utils.PaginationParams) ([]*models.Car, int64, error)
	ListAll(ctx context.Context) ([]*models.Car, error)

	// UpsertByLicensePlate inserts or replaces car attributes keyed by the
	// unique license plate. Used by the CSV import.
	UpsertByLicensePlate(ctx context.Context, car *models.Car) error

	SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error

	// DistinctStrings powers the dependent filter dropdowns on the catalog
	// page (makes, models for a make, cities, ...).
	DistinctStrings(ctx context.Context, field string, match map[string]interface{}) ([]string, error)
	DistinctYears(ctx context.Context, match map[string]interface{}) ([]int, error)
}
