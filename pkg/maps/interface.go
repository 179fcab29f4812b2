package maps

import (
	"context"
)

// Geocoder resolves coordinates to a human-readable location. Used by the
// admin tooling to refresh a car's city and address from its lat/long.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResult, error)
}

type GeocodeResult struct {
	City        string   `json:"city"`
	Address     string   `json:"address"`
	PlaceID     string   `json:"place_id"`
	Coordinates Location `json:"coordinates"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
