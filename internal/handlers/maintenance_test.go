package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maintenanceFixture wires one vehicle, its template, personal rules and
// history into mocked collections.
type maintenanceFixture struct {
	userID    primitive.ObjectID
	vehicleID primitive.ObjectID
	handler   *MaintenanceHandler
}

func newMaintenanceFixture(vehicleOdo int, overrides map[string]models.RuleOverride, personal []models.PersonalRule, history []models.ServiceRecord) *maintenanceFixture {
	userID := primitive.NewObjectID()
	vehicleID := primitive.NewObjectID()
	templateID := primitive.NewObjectID()

	vehicle := &models.Vehicle{
		ID:          vehicleID,
		UserID:      userID.Hex(),
		Name:        "Commuter",
		CurrentOdo:  vehicleOdo,
		TemplateID:  templateID.Hex(),
		CustomRules: overrides,
	}
	template := &models.Template{
		ID: templateID,
		Items: []models.TemplateRule{
			{ID: "oil", PartName: "Engine oil", IntervalKm: 3000},
			{ID: "chain", PartName: "Drive chain", IntervalKm: 800},
			{ID: "coolant", PartName: "Coolant", Note: "Every two years"},
		},
	}

	vehicles := new(MockVehicleCollection)
	templates := new(MockTemplateCollection)
	schedules := new(MockPersonalScheduleCollection)
	records := new(MockServiceHistoryCollection)
	vehicles.On("FindVehicleByID", mock.Anything, vehicleID.Hex()).Return(vehicle, nil)
	templates.On("FindTemplateByID", mock.Anything, templateID.Hex()).Return(template, nil)
	schedules.On("FindPersonalRulesByVehicle", mock.Anything, vehicleID.Hex()).Return(personal, nil)
	records.On("FindRecordsByVehicle", mock.Anything, vehicleID.Hex()).Return(history, nil)

	return &maintenanceFixture{
		userID:    userID,
		vehicleID: vehicleID,
		handler:   NewMaintenanceHandler(vehicles, templates, schedules, records),
	}
}

func (f *maintenanceFixture) request(path string) (*http.Request, *httptest.ResponseRecorder) {
	req := authedRequest(http.MethodGet, "/api/vehicles/"+f.vehicleID.Hex()+path, nil, ownerClaims(f.userID))
	req.SetPathValue("id", f.vehicleID.Hex())
	return req, httptest.NewRecorder()
}

func TestMaintenanceHandler_GetAlerts(t *testing.T) {
	t.Run("overdue chain surfaces first", func(t *testing.T) {
		// Chain serviced at 2000, interval 800 -> due 2800, overdue by 200 at
		// 3000. Oil never serviced, interval 3000 -> due 6000, not alerting.
		history := []models.ServiceRecord{
			{ID: primitive.NewObjectID(), ServiceRuleID: "chain", PerformedAtOdo: 2000, CreatedAt: time.Now()},
		}
		f := newMaintenanceFixture(3000, nil, nil, history)
		req, w := f.request("/alerts")

		f.handler.GetAlerts(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			VehicleID  string         `json:"vehicle_id"`
			CurrentOdo int            `json:"current_odo"`
			Alerts     []models.Alert `json:"alerts"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3000, resp.CurrentOdo)
		assert.Len(t, resp.Alerts, 1)
		assert.Equal(t, "chain", resp.Alerts[0].RuleID)
		assert.Equal(t, models.SeverityOverdue, resp.Alerts[0].Severity)
		assert.Equal(t, -200, resp.Alerts[0].RemainingKm)
	})

	t.Run("override shortens the interval", func(t *testing.T) {
		// Oil overridden to 2000 km; never serviced at odo 1900 the ceiling
		// baseline puts next due at 2000, 100 km out -> warning.
		overrides := map[string]models.RuleOverride{
			"oil": {IntervalKm: 2000},
		}
		f := newMaintenanceFixture(1900, overrides, nil, nil)
		req, w := f.request("/alerts")

		f.handler.GetAlerts(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Alerts []models.Alert `json:"alerts"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		found := false
		for _, alert := range resp.Alerts {
			if alert.RuleID == "oil" {
				found = true
				assert.Equal(t, models.SeverityWarning, alert.Severity)
				assert.Equal(t, 100, alert.RemainingKm)
			}
		}
		assert.True(t, found, "expected an oil alert")
	})

	t.Run("quiet vehicle has no alerts", func(t *testing.T) {
		f := newMaintenanceFixture(100, nil, nil, nil)
		req, w := f.request("/alerts")

		f.handler.GetAlerts(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Alerts []models.Alert `json:"alerts"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Alerts)
	})
}

func TestMaintenanceHandler_GetSchedule(t *testing.T) {
	personal := []models.PersonalRule{
		{ID: primitive.NewObjectID(), ServiceName: "Wax chain", IntervalKm: 500},
	}
	history := []models.ServiceRecord{
		{ID: primitive.NewObjectID(), ServiceRuleID: "oil", PerformedAtOdo: 3000, CreatedAt: time.Now()},
	}
	f := newMaintenanceFixture(3500, nil, personal, history)
	req, w := f.request("/schedule")

	f.handler.GetSchedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Items []models.ScheduleItem `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	byID := map[string]models.ScheduleItem{}
	for _, item := range resp.Items {
		byID[item.Rule.ID] = item
	}

	// Serviced at 3000 with a 3000 km interval: next due 6000.
	oil := byID["oil"]
	assert.Equal(t, models.OriginTemplate, oil.Rule.Origin)
	assert.Equal(t, 6000, oil.Due.NextDueOdo)
	assert.Equal(t, 2500, oil.Due.RemainingKm)
	assert.False(t, oil.Due.NeverServiced)

	wax := byID[personal[0].ID.Hex()]
	assert.Equal(t, models.OriginPersonal, wax.Rule.Origin)
	assert.True(t, wax.Due.NeverServiced)

	// The untracked coolant rule sorts after every tracked rule.
	assert.Equal(t, "coolant", resp.Items[len(resp.Items)-1].Rule.ID)

	// Tracked items come back most urgent first.
	lastRemaining := -1 << 31
	for _, item := range resp.Items {
		if item.Rule.ID == "coolant" {
			continue
		}
		assert.GreaterOrEqual(t, item.Due.RemainingKm, lastRemaining)
		lastRemaining = item.Due.RemainingKm
	}
}

func TestMaintenanceHandler_GetStats(t *testing.T) {
	personal := []models.PersonalRule{
		{ID: primitive.NewObjectID(), ServiceName: "Wax chain", IntervalKm: 500},
	}
	history := []models.ServiceRecord{
		{ID: primitive.NewObjectID(), ServiceRuleID: "oil", PerformedAtOdo: 3000, Cost: 120, CreatedAt: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{ID: primitive.NewObjectID(), PersonalScheduleID: personal[0].ID.Hex(), PerformedAtOdo: 3200, Cost: 30, CreatedAt: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)},
		{ID: primitive.NewObjectID(), PerformedAtOdo: 3400, Cost: 50, CreatedAt: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)},
	}
	f := newMaintenanceFixture(3500, nil, personal, history)
	req, w := f.request("/stats")

	f.handler.GetStats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Report models.CostReport `json:"report"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 200.0, resp.Report.TotalCost)
	assert.Equal(t, 3, resp.Report.RecordCount)
	assert.Equal(t, 150.0, resp.Report.ByMonth[time.March])
	assert.Equal(t, 50.0, resp.Report.ByMonth[time.April])

	names := map[string]float64{}
	for _, category := range resp.Report.ByCategory {
		names[category.Name] = category.Total
	}
	assert.Equal(t, 120.0, names["Engine oil"])
	assert.Equal(t, 30.0, names["Wax chain"])
	assert.Equal(t, 50.0, names["Unscheduled repair"])
}
