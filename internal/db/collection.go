package db

import (
	"context"

	"github.com/ukydev/moto-maintenance/internal/models"
)

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) error
	FindVehiclesByUser(ctx context.Context, userID string) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error
	UpdateOdometer(ctx context.Context, id string, odometer int) (*models.Vehicle, error)
	SetRuleOverride(ctx context.Context, id string, ruleID string, override models.RuleOverride) error
	RemoveRuleOverride(ctx context.Context, id string, ruleID string) error
	DeleteVehicle(ctx context.Context, id string) error
}

// TemplateCollection defines the interface for manufacturer template reads.
// Templates are reference data; the service never writes them outside seeding.
type TemplateCollection interface {
	InsertTemplate(ctx context.Context, template models.Template) error
	FindTemplates(ctx context.Context) ([]models.Template, error)
	FindTemplateByID(ctx context.Context, id string) (*models.Template, error)
}

// PersonalScheduleCollection defines the interface for owner-defined rules.
type PersonalScheduleCollection interface {
	InsertPersonalRule(ctx context.Context, rule models.PersonalRule) error
	FindPersonalRulesByVehicle(ctx context.Context, vehicleID string) ([]models.PersonalRule, error)
	FindPersonalRuleByID(ctx context.Context, id string) (*models.PersonalRule, error)
	DeletePersonalRule(ctx context.Context, id string) error
	DeletePersonalRulesByVehicle(ctx context.Context, vehicleID string) error
}

// ServiceHistoryCollection defines the interface for service records.
type ServiceHistoryCollection interface {
	InsertRecord(ctx context.Context, record models.ServiceRecord) error
	FindRecordsByVehicle(ctx context.Context, vehicleID string) ([]models.ServiceRecord, error)
	FindRecordByID(ctx context.Context, id string) (*models.ServiceRecord, error)
	DeleteRecord(ctx context.Context, id string) error
	DeleteRecordsByVehicle(ctx context.Context, vehicleID string) error
}
