package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/moto-maintenance/internal/db"
	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleHandler handles vehicle CRUD, odometer updates and rule overrides.
type VehicleHandler struct {
	vehicles  db.VehicleCollection
	templates db.TemplateCollection
	schedules db.PersonalScheduleCollection
	history   db.ServiceHistoryCollection
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicles db.VehicleCollection, templates db.TemplateCollection, schedules db.PersonalScheduleCollection, history db.ServiceHistoryCollection) *VehicleHandler {
	return &VehicleHandler{
		vehicles:  vehicles,
		templates: templates,
		schedules: schedules,
		history:   history,
	}
}

// loadOwned fetches the vehicle in the {id} path segment and verifies the
// caller may access it. Writes the error response itself on failure.
func (h *VehicleHandler) loadOwned(w http.ResponseWriter, r *http.Request) *models.Vehicle {
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
	return vehicle
}

// List returns the caller's vehicles.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	vehicles, err := h.vehicles.FindVehiclesByUser(r.Context(), claims.UserID)
	if err != nil {
		storageError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Create registers a new vehicle for the caller.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	var req models.VehicleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Vehicle name is required", http.StatusBadRequest)
		return
	}
	if req.CurrentOdo < 0 {
		http.Error(w, "Odometer must be non-negative", http.StatusBadRequest)
		return
	}
	if req.TemplateID != "" {
		if _, err := h.templates.FindTemplateByID(r.Context(), req.TemplateID); err != nil {
			http.Error(w, "Unknown template", http.StatusBadRequest)
			return
		}
	}

	vehicle := models.Vehicle{
		ID:         primitive.NewObjectID(),
		UserID:     claims.UserID,
		Name:       req.Name,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		CurrentOdo: req.CurrentOdo,
		TemplateID: req.TemplateID,
	}
	if err := h.vehicles.InsertVehicle(r.Context(), vehicle); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

// Get returns one vehicle.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwned(w, r)
	if vehicle == nil {
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// Update edits a vehicle's descriptive fields.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwned(w, r)
	if vehicle == nil {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	var req models.VehicleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Vehicle name is required", http.StatusBadRequest)
		return
	}
	if req.TemplateID != "" && req.TemplateID != vehicle.TemplateID {
		if _, err := h.templates.FindTemplateByID(r.Context(), req.TemplateID); err != nil {
			http.Error(w, "Unknown template", http.StatusBadRequest)
			return
		}
	}

	vehicle.Name = req.Name
	vehicle.Make = req.Make
	vehicle.Model = req.Model
	vehicle.Year = req.Year
	vehicle.TemplateID = req.TemplateID
	if err := h.vehicles.UpdateVehicle(r.Context(), vehicle.ID.Hex(), *vehicle); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// Delete removes a vehicle and cascades to its personal rules and history.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwned(w, r)
	if vehicle == nil {
		return
	}
	id := vehicle.ID.Hex()

	if err := h.history.DeleteRecordsByVehicle(r.Context(), id); err != nil {
		storageError(w, err)
		return
	}
	if err := h.schedules.DeletePersonalRulesByVehicle(r.Context(), id); err != nil {
		storageError(w, err)
		return
	}
	if err := h.vehicles.DeleteVehicle(r.Context(), id); err != nil {
		storageError(w, err)
		return
	}

	log.WithFields(log.Fields{"vehicle_id": id}).Info("vehicle deleted")
	writeJSON(w, http.StatusOK, map[string]string{"message": "vehicle deleted"})
}

// UpdateOdometer sets a vehicle's current odometer reading.
func (h *VehicleHandler) UpdateOdometer(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwned(w, r)
	if vehicle == nil {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	var req models.OdometerUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Odometer < 0 {
		http.Error(w, "Odometer must be non-negative", http.StatusBadRequest)
		return
	}

	updated, err := h.vehicles.UpdateOdometer(r.Context(), vehicle.ID.Hex(), req.Odometer)
	if err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SetOverride upserts a per-vehicle customization of one template rule.
func (h *VehicleHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwned(w, r)
	if vehicle == nil {
		return
	}
	ruleID := r.PathValue("ruleID")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	var override models.RuleOverride
	if err := json.Unmarshal(body, &override); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if override.PartName == "" && override.IntervalKm == 0 {
		http.Error(w, "Override must set a name or an interval", http.StatusBadRequest)
		return
	}
	if override.IntervalKm < 0 {
		http.Error(w, "Interval must be non-negative", http.StatusBadRequest)
		return
	}
	if !h.templateHasRule(w, r, vehicle, ruleID) {
		return
	}

	if err := h.vehicles.SetRuleOverride(r.Context(), vehicle.ID.Hex(), ruleID, override); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "override saved"})
}

// RemoveOverride restores the template defaults for one rule.
func (h *VehicleHandler) RemoveOverride(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwned(w, r)
	if vehicle == nil {
		return
	}
	ruleID := r.PathValue("ruleID")

	if err := h.vehicles.RemoveRuleOverride(r.Context(), vehicle.ID.Hex(), ruleID); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "override removed"})
}

// templateHasRule checks that ruleID exists in the vehicle's template.
// Writes the error response itself on failure.
func (h *VehicleHandler) templateHasRule(w http.ResponseWriter, r *http.Request, vehicle *models.Vehicle, ruleID string) bool {
	if vehicle.TemplateID == "" {
		http.Error(w, "Vehicle has no template", http.StatusBadRequest)
		return false
	}
	template, err := h.templates.FindTemplateByID(r.Context(), vehicle.TemplateID)
	if err != nil {
		storageError(w, err)
		return false
	}
	for _, rule := range template.Items {
		if rule.ID == ruleID {
			return true
		}
	}
	http.Error(w, "Unknown rule", http.StatusNotFound)
	return false
}
