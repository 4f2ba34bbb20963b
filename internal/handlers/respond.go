package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ukydev/moto-maintenance/internal/db"
	"github.com/ukydev/moto-maintenance/internal/middleware"
	"github.com/ukydev/moto-maintenance/internal/models"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// storageError maps db-layer errors to HTTP status responses.
func storageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, db.ErrOdometerRegression):
		http.Error(w, "Odometer reading lower than current value", http.StatusConflict)
	default:
		http.Error(w, "Storage error", http.StatusInternalServerError)
	}
}

// callerClaims pulls the authenticated user's claims out of the request, or
// writes a 401 and returns false.
func callerClaims(w http.ResponseWriter, r *http.Request) (*models.Claims, bool) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return nil, false
	}
	return claims, true
}

// canAccessVehicle reports whether the caller may read or mutate a vehicle.
func canAccessVehicle(claims *models.Claims, vehicle *models.Vehicle) bool {
	if claims.Role == models.RoleAdmin {
		return true
	}
	return claims.UserID == vehicle.UserID
}
