package db

import (
	"context"
	"fmt"
	"time"

	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceHistoryCollection implements ServiceHistoryCollection for MongoDB
type MongoServiceHistoryCollection struct {
	Collection *mongo.Collection
}

// InsertRecord appends a service record to the vehicle's history.
func (c *MongoServiceHistoryCollection) InsertRecord(ctx context.Context, record models.ServiceRecord) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := c.Collection.InsertOne(ctx, record)
	return err
}

// FindRecordsByVehicle returns a vehicle's history, newest first.
func (c *MongoServiceHistoryCollection) FindRecordsByVehicle(ctx context.Context, vehicleID string) ([]models.ServiceRecord, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := c.Collection.Find(ctx, bson.M{"vehicle_id": vehicleID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ServiceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindRecordByID finds a service record by its ID.
func (c *MongoServiceHistoryCollection) FindRecordByID(ctx context.Context, id string) (*models.ServiceRecord, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid record ID: %w", err)
	}

	var record models.ServiceRecord
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// DeleteRecord deletes a service record by its ID.
func (c *MongoServiceHistoryCollection) DeleteRecord(ctx context.Context, id string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid record ID: %w", err)
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRecordsByVehicle removes a vehicle's entire history. Used by the
// vehicle-deletion cascade.
func (c *MongoServiceHistoryCollection) DeleteRecordsByVehicle(ctx context.Context, vehicleID string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}
