package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/pkg/maps"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCarService(cars *mockCarRepo, geocoder *mockGeocoder, store *mockStorage) CarService {
	return NewCarService(cars, geocoder, store, NoopCacheService{}, testLogger())
}

func TestImportCSVUpsertsRowsAndSkipsBadOnes(t *testing.T) {
	input := strings.Join([]string{
		"make,model,year,license_plate,daily_rate,latitude,longitude,location_city,location_address,features,car_type,fuel_type",
		"Ford,Fiesta,2020,ab12 cde,45.50,51.5,-0.12,London,1 High St,Bluetooth,Hatchback,Petrol",
		"Tesla,Model 3,notayear,EF34GHI,80.00,,,,,,Saloon,Electric",
		"BMW,X5,2022,JK56LMN,120.00,,,,,,SUV,Diesel",
	}, "\n")

	var upserted []*models.Car
	cars := &mockCarRepo{
		UpsertByLicensePlateFn: func(ctx context.Context, car *models.Car) error {
			upserted = append(upserted, car)
			return nil
		},
	}

	svc := newTestCarService(cars, &mockGeocoder{}, &mockStorage{})

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 2, result.Imported)
	require.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "line 3")

	require.Len(t, upserted, 2)
	require.Equal(t, "AB12CDE", upserted[0].LicensePlate)
	require.Equal(t, models.CarTypeHatchback, upserted[0].CarType)
	require.True(t, upserted[0].DailyRate.Equal(mustMoneyT(t, "45.50")))
	require.Equal(t, "JK56LMN", upserted[1].LicensePlate)
}

func TestImportCSVRejectsUnknownEnumValues(t *testing.T) {
	input := strings.Join([]string{
		"make,model,year,license_plate,daily_rate,car_type,fuel_type",
		"Ford,Focus,2019,AA11AAA,40.00,Spaceship,Petrol",
	}, "\n")

	cars := &mockCarRepo{
		UpsertByLicensePlateFn: func(ctx context.Context, car *models.Car) error {
			t.Fatal("row with unknown car type must not be upserted")
			return nil
		},
	}

	svc := newTestCarService(cars, &mockGeocoder{}, &mockStorage{})

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 0, result.Imported)
	require.Equal(t, 1, result.Skipped)
}

func TestExportCSVWritesAllCars(t *testing.T) {
	cars := &mockCarRepo{
		ListAllFn: func(ctx context.Context) ([]*models.Car, error) {
			return []*models.Car{
				{
					Make:         "Ford",
					Model:        "Fiesta",
					Year:         2020,
					LicensePlate: "AB12CDE",
					DailyRate:    mustMoneyT(t, "45.50"),
					LocationCity: "London",
					CarType:      models.CarTypeHatchback,
					FuelType:     models.FuelTypePetrol,
				},
			}, nil
		},
	}

	svc := newTestCarService(cars, &mockGeocoder{}, &mockStorage{})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, csvHeader, records[0])
	require.Equal(t, "AB12CDE", records[1][3])
	require.Equal(t, "45.5", records[1][4])
}

func TestCatalogFacetsNarrowByPriorSelections(t *testing.T) {
	var matches []map[string]interface{}
	cars := &mockCarRepo{
		DistinctStringsFn: func(ctx context.Context, field string, match map[string]interface{}) ([]string, error) {
			copied := map[string]interface{}{}
			for k, v := range match {
				copied[k] = v
			}
			matches = append(matches, copied)
			switch field {
			case "make":
				return []string{"Ford", "Tesla"}, nil
			case "model":
				return []string{"Fiesta", "Focus"}, nil
			case "car_type":
				return []string{"Hatchback"}, nil
			case "fuel_type":
				return []string{"Petrol"}, nil
			default:
				return []string{"London"}, nil
			}
		},
		DistinctYearsFn: func(ctx context.Context, match map[string]interface{}) ([]int, error) {
			require.Equal(t, map[string]interface{}{"make": "Ford", "model": "Fiesta"}, match)
			return []int{2019, 2020}, nil
		},
	}

	svc := newTestCarService(cars, &mockGeocoder{}, &mockStorage{})

	facets, err := svc.CatalogFacets(context.Background(), &interfaces.CarFilter{Make: "Ford", Model: "Fiesta"})
	require.NoError(t, err)

	require.Equal(t, []string{"Ford", "Tesla"}, facets.Makes)
	require.Equal(t, []string{"Fiesta", "Focus"}, facets.Models)
	require.Equal(t, []int{2019, 2020}, facets.Years)
	require.Equal(t, []string{"Hatchback"}, facets.CarTypes)
	require.Equal(t, []string{"Petrol"}, facets.FuelTypes)

	// models narrowed by make, car types by make+model.
	require.Contains(t, matches, map[string]interface{}{"make": "Ford"})
	require.Contains(t, matches, map[string]interface{}{"make": "Ford", "model": "Fiesta"})
}

func TestRefreshLocationsOnlyTouchesUnresolvedCars(t *testing.T) {
	resolved := &models.Car{ID: primitive.NewObjectID(), LocationCity: "Leeds", Latitude: 53.8, Longitude: -1.5}
	unresolved := &models.Car{ID: primitive.NewObjectID(), Latitude: 51.5, Longitude: -0.12}
	noCoords := &models.Car{ID: primitive.NewObjectID()}

	var geocoded []primitive.ObjectID
	var updated map[string]interface{}

	cars := &mockCarRepo{
		ListAllFn: func(ctx context.Context) ([]*models.Car, error) {
			return []*models.Car{resolved, unresolved, noCoords}, nil
		},
		UpdateFn: func(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
			require.Equal(t, unresolved.ID, id)
			updated = updates
			return nil
		},
	}
	geocoder := &mockGeocoder{
		ReverseGeocodeFn: func(ctx context.Context, lat, lng float64) (*maps.GeocodeResult, error) {
			geocoded = append(geocoded, unresolved.ID)
			return &maps.GeocodeResult{City: "London", Address: "1 High St, London"}, nil
		},
	}

	svc := newTestCarService(cars, geocoder, &mockStorage{})

	result, err := svc.RefreshLocations(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, result.Updated)
	require.Equal(t, 0, result.Failed)
	require.Len(t, geocoded, 1)
	require.Equal(t, "London", updated["location_city"])
}
