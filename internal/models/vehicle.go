package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Vehicle represents a user-owned vehicle and its odometer state.
type Vehicle struct {
	ID          primitive.ObjectID      `bson:"_id,omitempty" json:"id"`
	UserID      string                  `bson:"user_id" json:"user_id"`
	Name        string                  `bson:"name" json:"name"`
	Make        string                  `bson:"make" json:"make"`
	Model       string                  `bson:"model" json:"model"`
	Year        int                     `bson:"year" json:"year"`
	CurrentOdo  int                     `bson:"current_odo" json:"current_odo"` // in kilometers
	TemplateID  string                  `bson:"template_id,omitempty" json:"template_id,omitempty"`
	CustomRules map[string]RuleOverride `bson:"custom_rules,omitempty" json:"custom_rules,omitempty"`
	CreatedAt   time.Time               `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time               `bson:"updated_at" json:"updated_at"`
}

// RuleOverride is a per-vehicle customization of one template rule.
// A zero field means "keep the template value".
type RuleOverride struct {
	PartName   string `bson:"part_name,omitempty" json:"part_name,omitempty"`
	IntervalKm int    `bson:"interval_km,omitempty" json:"interval_km,omitempty"`
}

// OdometerUpdateRequest is the body of an odometer update call.
type OdometerUpdateRequest struct {
	Odometer int `json:"odometer"`
}

// VehicleRequest is the body for creating or updating a vehicle.
type VehicleRequest struct {
	Name       string `json:"name"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	CurrentOdo int    `json:"current_odo"`
	TemplateID string `json:"template_id,omitempty"`
}
