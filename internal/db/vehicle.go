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

// MongoVehicleCollection implements VehicleCollection for MongoDB
type MongoVehicleCollection struct {
	Collection *mongo.Collection
}

// InsertVehicle inserts a vehicle record into the collection.
func (c *MongoVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, vehicle)
	return err
}

// FindVehiclesByUser returns all vehicles owned by userID.
func (c *MongoVehicleCollection) FindVehiclesByUser(ctx context.Context, userID string) ([]models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindVehicleByID finds a vehicle by its ID.
func (c *MongoVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID: %w", err)
	}

	var vehicle models.Vehicle
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// UpdateVehicle updates a vehicle by its ID.
func (c *MongoVehicleCollection) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid vehicle ID: %w", err)
	}

	vehicle.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":        vehicle.Name,
		"make":        vehicle.Make,
		"model":       vehicle.Model,
		"year":        vehicle.Year,
		"template_id": vehicle.TemplateID,
		"updated_at":  vehicle.UpdatedAt,
	}}
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateOdometer sets a vehicle's current odometer. The odometer is
// monotonically non-decreasing; a lower reading than the stored value is
// rejected with ErrOdometerRegression.
func (c *MongoVehicleCollection) UpdateOdometer(ctx context.Context, id string, odometer int) (*models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID: %w", err)
	}

	filter := bson.M{"_id": objectID, "current_odo": bson.M{"$lte": odometer}}
	update := bson.M{"$set": bson.M{"current_odo": odometer, "updated_at": time.Now()}}
	result, err := c.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		// Either the vehicle is missing or the reading moved backwards.
		var existing models.Vehicle
		err := c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrOdometerRegression
	}

	return c.FindVehicleByID(ctx, id)
}

// SetRuleOverride upserts a per-vehicle override for one template rule.
func (c *MongoVehicleCollection) SetRuleOverride(ctx context.Context, id string, ruleID string, override models.RuleOverride) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid vehicle ID: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"custom_rules." + ruleID: override,
		"updated_at":             time.Now(),
	}}
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveRuleOverride removes a per-vehicle override, restoring the template
// values for that rule.
func (c *MongoVehicleCollection) RemoveRuleOverride(ctx context.Context, id string, ruleID string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid vehicle ID: %w", err)
	}

	update := bson.M{
		"$unset": bson.M{"custom_rules." + ruleID: ""},
		"$set":   bson.M{"updated_at": time.Now()},
	}
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteVehicle deletes a vehicle by its ID.
func (c *MongoVehicleCollection) DeleteVehicle(ctx context.Context, id string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid vehicle ID: %w", err)
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
