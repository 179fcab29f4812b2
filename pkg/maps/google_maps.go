package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

type GoogleMapsGeocoder struct {
	client *maps.Client
}

func NewGoogleMapsGeocoder(apiKey string) (*GoogleMapsGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleMapsGeocoder{
		client: client,
	}, nil
}

func (g *GoogleMapsGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResult, error) {
	req := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	}

	resp, err := g.client.ReverseGeocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding failed: %w", err)
	}

	if len(resp) == 0 {
		return nil, fmt.Errorf("no geocoding result for %f,%f", lat, lng)
	}

	best := resp[0]

	return &GeocodeResult{
		City:    extractCity(best.AddressComponents),
		Address: best.FormattedAddress,
		PlaceID: best.PlaceID,
		Coordinates: Location{
			Latitude:  best.Geometry.Location.Lat,
			Longitude: best.Geometry.Location.Lng,
		},
	}, nil
}

func extractCity(components []maps.AddressComponent) string {
	// Prefer locality; fall back to the wider administrative areas some
	// regions use instead.
	precedence := []string{"locality", "postal_town", "administrative_area_level_2"}

	for _, wanted := range precedence {
		for _, component := range components {
			for _, t := range component.Types {
				if t == wanted {
					return component.LongName
				}
			}
		}
	}
	return ""
}
