package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. Safe to run on
// every startup; Mongo treats an existing identical index as a no-op.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		"cars": {
			{
				Keys:    bson.D{{Key: "license_plate", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "make", Value: 1}, {Key: "model", Value: 1}}},
			{Keys: bson.D{{Key: "location_city", Value: 1}}},
			{Keys: bson.D{{Key: "is_available", Value: 1}}},
		},
		"bookings": {
			{Keys: bson.D{{Key: "car_id", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "return_date", Value: 1}}},
		},
		"payments": {
			{Keys: bson.D{{Key: "booking_id", Value: 1}}},
			{
				Keys: bson.D{{Key: "payment_intent", Value: 1}},
				// Unique only for real refs; empty/missing refs (failed or
				// not-yet-checked-out payments) are excluded.
				Options: options.Index().SetUnique(true).SetPartialFilterExpression(
					bson.D{{Key: "payment_intent", Value: bson.D{{Key: "$gt", Value: ""}}}},
				),
			},
		},
		"cancellation_requests": {
			{Keys: bson.D{{Key: "booking_id", Value: 1}}},
			{Keys: bson.D{{Key: "approved", Value: 1}}},
		},
		"reviews": {
			{Keys: bson.D{{Key: "car_id", Value: 1}, {Key: "approved", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		"user_profiles": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collection, models := range indexes {
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}

	return nil
}
