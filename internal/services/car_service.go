package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/internal/utils"
	"autorent/internal/validators"
	"autorent/pkg/logger"
	"autorent/pkg/maps"
	"autorent/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarService manages the fleet: the public catalog with its filter facets,
// admin CRUD, bulk CSV import/export, location refresh and photo uploads.
type CarService interface {
	GetCar(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	ListCars(ctx context.Context, filter *interfaces.CarFilter, params *utils.PaginationParams) ([]*models.Car, int64, error)
	CatalogFacets(ctx context.Context, filter *interfaces.CarFilter) (*CatalogFacets, error)

	CreateCar(ctx context.Context, car *models.Car) error
	UpdateCar(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeleteCar(ctx context.Context, id primitive.ObjectID) error

	ImportCSV(ctx context.Context, reader io.Reader) (*ImportResult, error)
	ExportCSV(ctx context.Context, writer io.Writer) error
	RefreshLocations(ctx context.Context) (*RefreshResult, error)

	UploadCarImage(ctx context.Context, id primitive.ObjectID, reader io.Reader, filename string) (string, error)
	CarImageURL(ctx context.Context, car *models.Car) (string, error)
}

// CatalogFacets feed the dependent dropdowns on the catalog page. Each list
// is narrowed by the selections before it in the chain
// make -> model -> year -> car type -> fuel type; cities stay fleet-wide.
type CatalogFacets struct {
	Makes     []string `json:"makes"`
	Models    []string `json:"models"`
	Years     []int    `json:"years"`
	Cities    []string `json:"cities"`
	CarTypes  []string `json:"car_types"`
	FuelTypes []string `json:"fuel_types"`
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

type RefreshResult struct {
	Updated int      `json:"updated"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

var csvHeader = []string{
	"make", "model", "year", "license_plate", "daily_rate",
	"latitude", "longitude", "location_city", "location_address",
	"features", "car_type", "fuel_type",
}

type carService struct {
	carRepo  interfaces.CarRepository
	geocoder maps.Geocoder
	storage  storage.Provider
	cache    CacheService
	logger   *logger.Logger
}

func NewCarService(
	carRepo interfaces.CarRepository,
	geocoder maps.Geocoder,
	storageProvider storage.Provider,
	cache CacheService,
	log *logger.Logger,
) CarService {
	return &carService{
		carRepo:  carRepo,
		geocoder: geocoder,
		storage:  storageProvider,
		cache:    cache,
		logger:   log,
	}
}

func (s *carService) GetCar(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) ListCars(ctx context.Context, filter *interfaces.CarFilter, params *utils.PaginationParams) ([]*models.Car, int64, error) {
	return s.carRepo.List(ctx, filter, params)
}

func (s *carService) CatalogFacets(ctx context.Context, filter *interfaces.CarFilter) (*CatalogFacets, error) {
	cacheKey := facetsCacheKey(filter)

	var cached CatalogFacets
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	makes, err := s.carRepo.DistinctStrings(ctx, "make", nil)
	if err != nil {
		return nil, err
	}

	// Each dropdown narrows by everything chosen before it:
	// make -> model -> year -> car type -> fuel type.
	match := map[string]interface{}{}
	if filter != nil && filter.Make != "" {
		match["make"] = filter.Make
	}
	carModels, err := s.carRepo.DistinctStrings(ctx, "model", match)
	if err != nil {
		return nil, err
	}

	if filter != nil && filter.Model != "" {
		match["model"] = filter.Model
	}
	years, err := s.carRepo.DistinctYears(ctx, match)
	if err != nil {
		return nil, err
	}

	if filter != nil && filter.Year != 0 {
		match["year"] = filter.Year
	}
	carTypes := typeStrings(models.CarTypes())
	if len(match) > 0 {
		if carTypes, err = s.carRepo.DistinctStrings(ctx, "car_type", match); err != nil {
			return nil, err
		}
	}

	if filter != nil && filter.CarType != "" {
		match["car_type"] = string(filter.CarType)
	}
	fuelTypes := typeStrings(models.FuelTypes())
	if len(match) > 0 {
		if fuelTypes, err = s.carRepo.DistinctStrings(ctx, "fuel_type", match); err != nil {
			return nil, err
		}
	}

	cities, err := s.carRepo.DistinctStrings(ctx, "location_city", nil)
	if err != nil {
		return nil, err
	}

	facets := &CatalogFacets{
		Makes:     makes,
		Models:    carModels,
		Years:     years,
		Cities:    cities,
		CarTypes:  carTypes,
		FuelTypes: fuelTypes,
	}

	s.cache.Set(ctx, cacheKey, facets, utils.CatalogCacheTTL)
	return facets, nil
}

func (s *carService) CreateCar(ctx context.Context, car *models.Car) error {
	car.LicensePlate = validators.NormalizeLicensePlate(car.LicensePlate)
	car.IsAvailable = true

	if err := s.carRepo.Create(ctx, car); err != nil {
		return err
	}

	s.logger.WithCarID(car.ID).Infof("car created: %s", car.DisplayName())
	return nil
}

func (s *carService) UpdateCar(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return s.carRepo.Update(ctx, id, updates)
}

func (s *carService) DeleteCar(ctx context.Context, id primitive.ObjectID) error {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if car.ImageKey != "" {
		if err := s.storage.Delete(ctx, car.ImageKey); err != nil {
			s.logger.WithCarID(id).WithError(err).Warn("failed to delete car image")
		}
	}

	return s.carRepo.Delete(ctx, id)
}

// ImportCSV upserts fleet rows keyed by license plate. Bad rows are skipped
// and reported, good rows still land.
func (s *carService) ImportCSV(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := indexColumns(header)

	result := &ImportResult{}
	line := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		car, err := carFromRecord(record, columns)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		if err := s.carRepo.UpsertByLicensePlate(ctx, car); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Imported++
	}

	s.logger.Infof("fleet CSV import finished: %d imported, %d skipped", result.Imported, result.Skipped)
	return result, nil
}

func (s *carService) ExportCSV(ctx context.Context, writer io.Writer) error {
	cars, err := s.carRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	w := csv.NewWriter(writer)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, car := range cars {
		record := []string{
			car.Make,
			car.Model,
			strconv.Itoa(car.Year),
			car.LicensePlate,
			car.DailyRate.String(),
			strconv.FormatFloat(car.Latitude, 'f', -1, 64),
			strconv.FormatFloat(car.Longitude, 'f', -1, 64),
			car.LocationCity,
			car.LocationAddress,
			car.Features,
			string(car.CarType),
			string(car.FuelType),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// RefreshLocations reverse-geocodes every car that has coordinates but no
// resolved city yet. Failures are counted, not fatal.
func (s *carService) RefreshLocations(ctx context.Context) (*RefreshResult, error) {
	cars, err := s.carRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &RefreshResult{}
	for _, car := range cars {
		if car.LocationCity != "" {
			continue
		}
		if car.Latitude == 0 && car.Longitude == 0 {
			continue
		}

		location, err := s.geocoder.ReverseGeocode(ctx, car.Latitude, car.Longitude)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("car %s: %v", car.ID.Hex(), err))
			continue
		}

		err = s.carRepo.Update(ctx, car.ID, map[string]interface{}{
			"location_city":    location.City,
			"location_address": location.Address,
		})
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("car %s: %v", car.ID.Hex(), err))
			continue
		}
		result.Updated++
	}

	s.logger.Infof("location refresh finished: %d updated, %d failed", result.Updated, result.Failed)
	return result, nil
}

func (s *carService) UploadCarImage(ctx context.Context, id primitive.ObjectID, reader io.Reader, filename string) (string, error) {
	if !utils.IsValidImageFormat(filename) {
		return "", fmt.Errorf("unsupported image format: %s", filename)
	}

	if _, err := s.carRepo.GetByID(ctx, id); err != nil {
		return "", err
	}

	data, contentType, err := utils.ResizeImageToBytes(reader, filename, utils.CarImageWidth, utils.CarImageHeight)
	if err != nil {
		return "", fmt.Errorf("failed to process car image: %w", err)
	}

	key := fmt.Sprintf("cars/%s%s", id.Hex(), extensionFor(contentType))
	_, err = s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload car image: %w", err)
	}

	if err := s.carRepo.Update(ctx, id, map[string]interface{}{"image_key": key}); err != nil {
		return "", err
	}

	return key, nil
}

func (s *carService) CarImageURL(ctx context.Context, car *models.Car) (string, error) {
	if car.ImageKey == "" {
		return "", nil
	}
	return s.storage.GetURL(ctx, car.ImageKey, 1*time.Hour)
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	return columns
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func carFromRecord(record []string, columns map[string]int) (*models.Car, error) {
	plate := validators.NormalizeLicensePlate(field(record, columns, "license_plate"))
	if plate == "" {
		return nil, errors.New("missing license plate")
	}

	year, err := strconv.Atoi(field(record, columns, "year"))
	if err != nil {
		return nil, fmt.Errorf("invalid year: %w", err)
	}

	rate, err := models.NewMoneyFromString(field(record, columns, "daily_rate"))
	if err != nil {
		return nil, err
	}

	carType := models.CarType(field(record, columns, "car_type"))
	if carType != "" && !carType.Valid() {
		return nil, fmt.Errorf("unknown car type %q", carType)
	}
	fuelType := models.FuelType(field(record, columns, "fuel_type"))
	if fuelType != "" && !fuelType.Valid() {
		return nil, fmt.Errorf("unknown fuel type %q", fuelType)
	}

	lat, _ := strconv.ParseFloat(field(record, columns, "latitude"), 64)
	lng, _ := strconv.ParseFloat(field(record, columns, "longitude"), 64)

	return &models.Car{
		Make:            field(record, columns, "make"),
		Model:           field(record, columns, "model"),
		Year:            year,
		LicensePlate:    plate,
		DailyRate:       rate,
		Latitude:        lat,
		Longitude:       lng,
		LocationCity:    field(record, columns, "location_city"),
		LocationAddress: field(record, columns, "location_address"),
		Features:        field(record, columns, "features"),
		CarType:         carType,
		FuelType:        fuelType,
	}, nil
}

func facetsCacheKey(filter *interfaces.CarFilter) string {
	if filter == nil {
		return "catalog:facets"
	}
	return fmt.Sprintf("catalog:facets:%s:%s:%d:%s", filter.Make, filter.Model, filter.Year, filter.CarType)
}

func typeStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func extensionFor(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
