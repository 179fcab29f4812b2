package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarType string
type FuelType string

const (
	CarTypeHatchback CarType = "Hatchback"
	CarTypeSaloon    CarType = "Saloon"
	CarTypeEstate    CarType = "Estate"
	CarTypeMPV       CarType = "MPV"
	CarTypeSUV       CarType = "SUV"
	CarTypeSports    CarType = "Sports_Car"

	FuelTypePetrol   FuelType = "Petrol"
	FuelTypeDiesel   FuelType = "Diesel"
	FuelTypeHybrid   FuelType = "Hybrid"
	FuelTypeElectric FuelType = "Electric"
)

func CarTypes() []CarType {
	return []CarType{CarTypeHatchback, CarTypeSaloon, CarTypeEstate, CarTypeMPV, CarTypeSUV, CarTypeSports}
}

func FuelTypes() []FuelType {
	return []FuelType{FuelTypePetrol, FuelTypeDiesel, FuelTypeHybrid, FuelTypeElectric}
}

func (t CarType) Valid() bool {
	for _, known := range CarTypes() {
		if t == known {
			return true
		}
	}
	return false
}

func (t FuelType) Valid() bool {
	for _, known := range FuelTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Car is a rental unit. Cars are created by admins (manually or via CSV
// import) and never hard-deleted by the booking flow; only the availability
// flag moves.
type Car struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Make            string             `json:"make" bson:"make" validate:"required"`
	Model           string             `json:"model" bson:"model" validate:"required"`
	Year            int                `json:"year" bson:"year" validate:"required,min=1950"`
	LicensePlate    string             `json:"license_plate" bson:"license_plate" validate:"required,license_plate"`
	DailyRate       Money              `json:"daily_rate" bson:"daily_rate"`
	IsAvailable     bool               `json:"is_available" bson:"is_available"`
	Latitude        float64            `json:"latitude" bson:"latitude"`
	Longitude       float64            `json:"longitude" bson:"longitude"`
	LocationCity    string             `json:"location_city" bson:"location_city"`
	LocationAddress string             `json:"location_address" bson:"location_address"`
	ImageKey        string             `json:"image_key" bson:"image_key"`
	Features        string             `json:"features" bson:"features"`
	CarType         CarType            `json:"car_type" bson:"car_type"`
	FuelType        FuelType           `json:"fuel_type" bson:"fuel_type"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

func (c *Car) DisplayName() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
}
