package handlers

import (
	"net/http"

	"github.com/ukydev/moto-maintenance/internal/db"
	"github.com/ukydev/moto-maintenance/internal/engine"
	"github.com/ukydev/moto-maintenance/internal/models"
)

// MaintenanceHandler serves the computed views: home alerts, the full
// schedule and the cost report. All computation happens in the engine
// package against a snapshot fetched here; the handlers thread the vehicle
// through explicitly.
type MaintenanceHandler struct {
	vehicles  db.VehicleCollection
	templates db.TemplateCollection
	schedules db.PersonalScheduleCollection
	history   db.ServiceHistoryCollection
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(vehicles db.VehicleCollection, templates db.TemplateCollection, schedules db.PersonalScheduleCollection, history db.ServiceHistoryCollection) *MaintenanceHandler {
	return &MaintenanceHandler{
		vehicles:  vehicles,
		templates: templates,
		schedules: schedules,
		history:   history,
	}
}

// snapshot is one consistent read of everything the engine needs.
type snapshot struct {
	vehicle        *models.Vehicle
	effectiveRules []models.EffectiveRule
	personalRules  []models.PersonalRule
	history        []models.ServiceRecord
}

// loadSnapshot fetches the vehicle, resolves its effective rules and reads
// its personal rules and history. Writes the error response itself on
// failure.
func (h *MaintenanceHandler) loadSnapshot(w http.ResponseWriter, r *http.Request) *snapshot {
	claims, ok := callerClaims(w, r)
	if !ok {
		return nil
	}
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), r.PathValue("id"))
	if err != nil {
		storageError(w, err)
		return nil
	}
	if !canAccessVehicle(claims, vehicle) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil
	}

	var effective []models.EffectiveRule
	if vehicle.TemplateID != "" {
		template, err := h.templates.FindTemplateByID(r.Context(), vehicle.TemplateID)
		if err != nil {
			storageError(w, err)
			return nil
		}
		effective = engine.Resolve(template.Items, vehicle.CustomRules)
	}

	personal, err := h.schedules.FindPersonalRulesByVehicle(r.Context(), vehicle.ID.Hex())
	if err != nil {
		storageError(w, err)
		return nil
	}
	records, err := h.history.FindRecordsByVehicle(r.Context(), vehicle.ID.Hex())
	if err != nil {
		storageError(w, err)
		return nil
	}

	return &snapshot{
		vehicle:        vehicle,
		effectiveRules: effective,
		personalRules:  personal,
		history:        records,
	}
}

// GetAlerts returns the home-screen alerts for one vehicle.
func (h *MaintenanceHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	snap := h.loadSnapshot(w, r)
	if snap == nil {
		return
	}

	alerts, err := engine.BuildAlerts(snap.effectiveRules, snap.history, snap.vehicle.CurrentOdo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicle_id":  snap.vehicle.ID.Hex(),
		"current_odo": snap.vehicle.CurrentOdo,
		"alerts":      alerts,
	})
}

// GetSchedule returns the full schedule view for one vehicle.
func (h *MaintenanceHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	snap := h.loadSnapshot(w, r)
	if snap == nil {
		return
	}

	items, err := engine.BuildSchedule(snap.effectiveRules, snap.personalRules, snap.history, snap.vehicle.CurrentOdo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicle_id":  snap.vehicle.ID.Hex(),
		"current_odo": snap.vehicle.CurrentOdo,
		"items":       items,
	})
}

// GetStats returns the cost report for one vehicle.
func (h *MaintenanceHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snap := h.loadSnapshot(w, r)
	if snap == nil {
		return
	}

	// Personal rules take part in cost categorization by name.
	rules := snap.effectiveRules
	for _, personal := range snap.personalRules {
		rules = append(rules, engine.FromPersonal(personal))
	}
	report := engine.AggregateCosts(snap.history, rules)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicle_id": snap.vehicle.ID.Hex(),
		"report":     report,
	})
}
