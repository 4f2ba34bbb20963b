package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ukydev/moto-maintenance/internal/db"
	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HistoryHandler handles service-record reads and writes.
type HistoryHandler struct {
	vehicles db.VehicleCollection
	history  db.ServiceHistoryCollection
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(vehicles db.VehicleCollection, history db.ServiceHistoryCollection) *HistoryHandler {
	return &HistoryHandler{vehicles: vehicles, history: history}
}

func (h *HistoryHandler) loadOwnedVehicle(w http.ResponseWriter, r *http.Request, vehicleID string) *models.Vehicle {
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

// List returns a vehicle's service history, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwnedVehicle(w, r, r.PathValue("id"))
	if vehicle == nil {
		return
	}
	records, err := h.history.FindRecordsByVehicle(r.Context(), vehicle.ID.Hex())
	if err != nil {
		storageError(w, err)
		return
	}
	if records == nil {
		records = []models.ServiceRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// Create appends a service record to a vehicle's history.
func (h *HistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	vehicle := h.loadOwnedVehicle(w, r, r.PathValue("id"))
	if vehicle == nil {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	var req models.ServiceRecordRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.PerformedAtOdo < 0 {
		http.Error(w, "Odometer must be non-negative", http.StatusBadRequest)
		return
	}
	if req.Cost < 0 {
		http.Error(w, "Cost must be non-negative", http.StatusBadRequest)
		return
	}
	// A record belongs to at most one rule.
	if req.ServiceRuleID != "" && req.PersonalScheduleID != "" {
		http.Error(w, "Record may reference only one rule", http.StatusBadRequest)
		return
	}

	record := models.ServiceRecord{
		ID:                 primitive.NewObjectID(),
		VehicleID:          vehicle.ID.Hex(),
		ServiceRuleID:      req.ServiceRuleID,
		PersonalScheduleID: req.PersonalScheduleID,
		PerformedAtOdo:     req.PerformedAtOdo,
		Cost:               req.Cost,
		Notes:              req.Notes,
	}
	if err := h.history.InsertRecord(r.Context(), record); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// Delete removes one service record.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	record, err := h.history.FindRecordByID(r.Context(), r.PathValue("recordID"))
	if err != nil {
		storageError(w, err)
		return
	}
	if h.loadOwnedVehicle(w, r, record.VehicleID) == nil {
		return
	}

	if err := h.history.DeleteRecord(r.Context(), record.ID.Hex()); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "record deleted"})
}
