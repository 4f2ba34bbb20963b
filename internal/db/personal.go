package db

import (
	"context"
	"fmt"
	"time"

	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPersonalScheduleCollection implements PersonalScheduleCollection for MongoDB
type MongoPersonalScheduleCollection struct {
	Collection *mongo.Collection
}

// InsertPersonalRule inserts an owner-defined rule into the collection.
func (c *MongoPersonalScheduleCollection) InsertPersonalRule(ctx context.Context, rule models.PersonalRule) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	rule.CreatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, rule)
	return err
}

// FindPersonalRulesByVehicle returns all personal rules for one vehicle.
func (c *MongoPersonalScheduleCollection) FindPersonalRulesByVehicle(ctx context.Context, vehicleID string) ([]models.PersonalRule, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{"vehicle_id": vehicleID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.PersonalRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// FindPersonalRuleByID finds a personal rule by its ID.
func (c *MongoPersonalScheduleCollection) FindPersonalRuleByID(ctx context.Context, id string) (*models.PersonalRule, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID: %w", err)
	}

	var rule models.PersonalRule
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&rule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rule, nil
}

// DeletePersonalRule deletes a personal rule by its ID.
func (c *MongoPersonalScheduleCollection) DeletePersonalRule(ctx context.Context, id string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid schedule ID: %w", err)
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

// DeletePersonalRulesByVehicle removes every personal rule belonging to a
// vehicle. Used by the vehicle-deletion cascade.
func (c *MongoPersonalScheduleCollection) DeletePersonalRulesByVehicle(ctx context.Context, vehicleID string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}
