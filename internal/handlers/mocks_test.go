package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ukydev/moto-maintenance/internal/models"
)

// MockVehicleCollection is a mock implementation of db.VehicleCollection
type MockVehicleCollection struct {
	mock.Mock
}

func (m *MockVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) FindVehiclesByUser(ctx context.Context, userID string) ([]models.Vehicle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	args := m.Called(ctx, id, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) UpdateOdometer(ctx context.Context, id string, odometer int) (*models.Vehicle, error) {
	args := m.Called(ctx, id, odometer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) SetRuleOverride(ctx context.Context, id string, ruleID string, override models.RuleOverride) error {
	args := m.Called(ctx, id, ruleID, override)
	return args.Error(0)
}

func (m *MockVehicleCollection) RemoveRuleOverride(ctx context.Context, id string, ruleID string) error {
	args := m.Called(ctx, id, ruleID)
	return args.Error(0)
}

func (m *MockVehicleCollection) DeleteVehicle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTemplateCollection is a mock implementation of db.TemplateCollection
type MockTemplateCollection struct {
	mock.Mock
}

func (m *MockTemplateCollection) InsertTemplate(ctx context.Context, template models.Template) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateCollection) FindTemplates(ctx context.Context) ([]models.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Template), args.Error(1)
}

func (m *MockTemplateCollection) FindTemplateByID(ctx context.Context, id string) (*models.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

// MockPersonalScheduleCollection is a mock implementation of db.PersonalScheduleCollection
type MockPersonalScheduleCollection struct {
	mock.Mock
}

func (m *MockPersonalScheduleCollection) InsertPersonalRule(ctx context.Context, rule models.PersonalRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockPersonalScheduleCollection) FindPersonalRulesByVehicle(ctx context.Context, vehicleID string) ([]models.PersonalRule, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PersonalRule), args.Error(1)
}

func (m *MockPersonalScheduleCollection) FindPersonalRuleByID(ctx context.Context, id string) (*models.PersonalRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PersonalRule), args.Error(1)
}

func (m *MockPersonalScheduleCollection) DeletePersonalRule(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPersonalScheduleCollection) DeletePersonalRulesByVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

// MockServiceHistoryCollection is a mock implementation of db.ServiceHistoryCollection
type MockServiceHistoryCollection struct {
	mock.Mock
}

func (m *MockServiceHistoryCollection) InsertRecord(ctx context.Context, record models.ServiceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockServiceHistoryCollection) FindRecordsByVehicle(ctx context.Context, vehicleID string) ([]models.ServiceRecord, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceRecord), args.Error(1)
}

func (m *MockServiceHistoryCollection) FindRecordByID(ctx context.Context, id string) (*models.ServiceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRecord), args.Error(1)
}

func (m *MockServiceHistoryCollection) DeleteRecord(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceHistoryCollection) DeleteRecordsByVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

// MockUserCollection is a mock implementation of db.UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
