package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// ServiceRecord represents one completed maintenance entry in a vehicle's
// history. At most one of ServiceRuleID and PersonalScheduleID is set; a
// record with neither is an unclassified cost in reporting.
type ServiceRecord struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID          string             `bson:"vehicle_id" json:"vehicle_id"`
	ServiceRuleID      string             `bson:"service_rule_id,omitempty" json:"service_rule_id,omitempty"`
	PersonalScheduleID string             `bson:"personal_schedule_id,omitempty" json:"personal_schedule_id,omitempty"`
	PerformedAtOdo     int                `bson:"performed_at_odo" json:"performed_at_odo"` // in kilometers
	Cost               float64            `bson:"cost" json:"cost"`
	Notes              string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}

// ServiceRecordRequest is the body for logging a completed service.
type ServiceRecordRequest struct {
	ServiceRuleID      string  `json:"service_rule_id,omitempty"`
	PersonalScheduleID string  `json:"personal_schedule_id,omitempty"`
	PerformedAtOdo     int     `json:"performed_at_odo"`
	Cost               float64 `json:"cost"`
	Notes              string  `json:"notes,omitempty"`
}

// RuleRef returns the rule identifier this record is attached to, template or
// personal, and false when the record is unclassified.
func (r *ServiceRecord) RuleRef() (string, bool) {
	if r.ServiceRuleID != "" {
		return r.ServiceRuleID, true
	}
	if r.PersonalScheduleID != "" {
		return r.PersonalScheduleID, true
	}
	return "", false
}
