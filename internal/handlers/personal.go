package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ukydev/moto-maintenance/internal/db"
	"github.com/ukydev/moto-maintenance/internal/engine"
	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalHandler handles owner-defined maintenance rules.
type PersonalHandler struct {
	vehicles  db.VehicleCollection
	schedules db.PersonalScheduleCollection
}

// NewPersonalHandler creates a new personal-rule handler
func NewPersonalHandler(vehicles db.VehicleCollection, schedules db.PersonalScheduleCollection) *PersonalHandler {
	return &PersonalHandler{vehicles: vehicles, schedules: schedules}
}

func (h *PersonalHandler) loadOwnedVehicle(w http.ResponseWriter, r *http.Request, vehicleID string) *models.Vehicle {
	claims, ok := callerClaims(w, r)
	if !ok {
		return nil
	}
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), vehicleID)
	if err != nil {
		storageError(w, err)
		return nil
	}
	if !canAccessVehicle(claims, vehicle) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil
	}
	return vehicle
}

// List returns a vehicle's personal rules.
func (h *PersonalHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwnedVehicle(w, r, r.PathValue("id"))
	if vehicle == nil {
		return
	}
	rules, err := h.schedules.FindPersonalRulesByVehicle(r.Context(), vehicle.ID.Hex())
	if err != nil {
		storageError(w, err)
		return
	}
	if rules == nil {
		rules = []models.PersonalRule{}
	}
	writeJSON(w, http.StatusOK, rules)
}

// Create adds a personal rule to a vehicle.
func (h *PersonalHandler) Create(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwnedVehicle(w, r, r.PathValue("id"))
	if vehicle == nil {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	var req models.PersonalRuleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ServiceName == "" {
		http.Error(w, "Service name is required", http.StatusBadRequest)
		return
	}
	// Personal rules are always distance based.
	if !engine.IsDistanceTracked(req.IntervalKm) {
		http.Error(w, "Interval must be a positive distance in km", http.StatusBadRequest)
		return
	}

	rule := models.PersonalRule{
		ID:          primitive.NewObjectID(),
		VehicleID:   vehicle.ID.Hex(),
		ServiceName: req.ServiceName,
		IntervalKm:  req.IntervalKm,
	}
	if err := h.schedules.InsertPersonalRule(r.Context(), rule); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rule)
}

// Delete removes one personal rule.
func (h *PersonalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rule, err := h.schedules.FindPersonalRuleByID(r.Context(), r.PathValue("scheduleID"))
	if err != nil {
		storageError(w, err)
		return
	}
	if h.loadOwnedVehicle(w, r, rule.VehicleID) == nil {
		return
	}

	if err := h.schedules.DeletePersonalRule(r.Context(), rule.ID.Hex()); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "schedule deleted"})
}
