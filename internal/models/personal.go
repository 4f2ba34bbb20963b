package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// PersonalRule is a free-form maintenance rule created by the vehicle owner.
// It is always distance-based and is deleted together with its vehicle.
type PersonalRule struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID   string             `bson:"vehicle_id" json:"vehicle_id"`
	ServiceName string             `bson:"service_name" json:"service_name"`
	IntervalKm  int                `bson:"interval_km" json:"interval_km"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// PersonalRuleRequest is the body for creating a personal rule.
type PersonalRuleRequest struct {
	ServiceName string `json:"service_name"`
	IntervalKm  int    `json:"interval_km"`
}
