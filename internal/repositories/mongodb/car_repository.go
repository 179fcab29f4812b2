package mongodb

import (
	"context"
	"fmt"
	"time"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/internal/services"
	"autorent/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type carRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewCarRepository(db *mongo.Database, cache services.CacheService) interfaces.CarRepository {
	return &carRepository{
		collection: db.Collection("cars"),
		cache:      cache,
	}
}

func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	car.ID = primitive.NewObjectID()
	car.CreatedAt = time.Now()
	car.UpdatedAt = car.CreatedAt

	_, err := r.collection.InsertOne(ctx, car)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return services.ErrDuplicatePlate
		}
		return fmt.Errorf("failed to create car: %w", err)
	}

	r.invalidateListCache(ctx)
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	var cached models.Car
	if err := r.cache.Get(ctx, carCacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	var car models.Car
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&car)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	r.cache.Set(ctx, carCacheKey(id), &car, utils.CarCacheTTL)
	return &car, nil
}

func (r *carRepository) GetByLicensePlate(ctx context.Context, licensePlate string) (*models.Car, error) {
	var car models.Car
	err := r.collection.FindOne(ctx, bson.M{"license_plate": licensePlate}).Decode(&car)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get car by license plate: %w", err)
	}

	return &car, nil
}

func (r *carRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return services.ErrDuplicatePlate
		}
		return fmt.Errorf("failed to update car: %w", err)
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}

	r.invalidateCarCache(ctx, id)
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}

	r.invalidateCarCache(ctx, id)
	return nil
}

func (r *carRepository) List(ctx context.Context, filter *interfaces.CarFilter, params *utils.PaginationParams) ([]*models.Car, int64, error) {
	query := buildCarQuery(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count cars: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []*models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, 0, fmt.Errorf("failed to decode cars: %w", err)
	}

	return cars, total, nil
}

func (r *carRepository) ListAll(ctx context.Context) ([]*models.Car, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []*models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode cars: %w", err)
	}

	return cars, nil
}

func (r *carRepository) UpsertByLicensePlate(ctx context.Context, car *models.Car) error {
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"make":             car.Make,
			"model":            car.Model,
			"year":             car.Year,
			"daily_rate":       car.DailyRate,
			"latitude":         car.Latitude,
			"longitude":        car.Longitude,
			"location_city":    car.LocationCity,
			"location_address": car.LocationAddress,
			"features":         car.Features,
			"car_type":         car.CarType,
			"fuel_type":        car.FuelType,
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{
			"license_plate": car.LicensePlate,
			"is_available":  true,
			"created_at":    now,
		},
	}

	opts := options.Update().SetUpsert(true)
	result, err := r.collection.UpdateOne(ctx, bson.M{"license_plate": car.LicensePlate}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert car %s: %w", car.LicensePlate, err)
	}

	if result.UpsertedID != nil {
		if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
			car.ID = id
		}
	}

	r.invalidateListCache(ctx)
	return nil
}

func (r *carRepository) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	return r.Update(ctx, id, map[string]interface{}{"is_available": available})
}

func (r *carRepository) DistinctStrings(ctx context.Context, field string, match map[string]interface{}) ([]string, error) {
	values, err := r.collection.Distinct(ctx, field, toBSON(match))
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct %s: %w", field, err)
	}

	strs := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			strs = append(strs, s)
		}
	}
	return strs, nil
}

func (r *carRepository) DistinctYears(ctx context.Context, match map[string]interface{}) ([]int, error) {
	values, err := r.collection.Distinct(ctx, "year", toBSON(match))
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct years: %w", err)
	}

	years := make([]int, 0, len(values))
	for _, v := range values {
		switch n := v.(type) {
		case int32:
			years = append(years, int(n))
		case int64:
			years = append(years, int(n))
		case float64:
			years = append(years, int(n))
		}
	}
	return years, nil
}

func buildCarQuery(filter *interfaces.CarFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	if filter.Make != "" {
		query["make"] = filter.Make
	}
	if filter.Model != "" {
		query["model"] = filter.Model
	}
	if filter.Year != 0 {
		query["year"] = filter.Year
	}
	if filter.LocationCity != "" {
		query["location_city"] = filter.LocationCity
	}
	if filter.CarType != "" {
		query["car_type"] = filter.CarType
	}
	if filter.FuelType != "" {
		query["fuel_type"] = filter.FuelType
	}
	if filter.OnlyAvailable {
		query["is_available"] = true
	}

	return query
}

func toBSON(match map[string]interface{}) bson.M {
	query := bson.M{}
	for k, v := range match {
		query[k] = v
	}
	return query
}

func carCacheKey(id primitive.ObjectID) string {
	return "car:" + id.Hex()
}

func (r *carRepository) invalidateCarCache(ctx context.Context, id primitive.ObjectID) {
	r.cache.Delete(ctx, carCacheKey(id))
	r.invalidateListCache(ctx)
}

func (r *carRepository) invalidateListCache(ctx context.Context) {
	r.cache.DeletePattern(ctx, "catalog:*")
}
