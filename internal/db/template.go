package db

import (
	"context"
	"fmt"

	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTemplateCollection implements TemplateCollection for MongoDB
type MongoTemplateCollection struct {
	Collection *mongo.Collection
}

// InsertTemplate inserts a manufacturer template into the collection.
func (c *MongoTemplateCollection) InsertTemplate(ctx context.Context, template models.Template) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.InsertOne(ctx, template)
	return err
}

// FindTemplates returns all manufacturer templates.
func (c *MongoTemplateCollection) FindTemplates(ctx context.Context) ([]models.Template, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []models.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// FindTemplateByID finds a template by its ID.
func (c *MongoTemplateCollection) FindTemplateByID(ctx context.Context, id string) (*models.Template, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid template ID: %w", err)
	}

	var template models.Template
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}
