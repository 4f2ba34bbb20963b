package handlers

import (
	"net/http"

	"github.com/ukydev/moto-maintenance/internal/auth"
	"github.com/ukydev/moto-maintenance/internal/db"
	"github.com/ukydev/moto-maintenance/internal/middleware"
	"github.com/ukydev/moto-maintenance/internal/models"
)

// NewRouter builds the API route table.
func NewRouter(authService *auth.Service, collections *db.Collections) *http.ServeMux {
	authHandler := NewAuthHandler(authService, collections.Users)
	vehicleHandler := NewVehicleHandler(collections.Vehicles, collections.Templates, collections.Schedules, collections.History)
	maintenanceHandler := NewMaintenanceHandler(collections.Vehicles, collections.Templates, collections.Schedules, collections.History)
	historyHandler := NewHistoryHandler(collections.Vehicles, collections.History)
	personalHandler := NewPersonalHandler(collections.Vehicles, collections.Schedules)
	templateHandler := NewTemplateHandler(collections.Templates)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)

	mux.HandleFunc("GET /api/vehicles", vehicleHandler.List)
	mux.HandleFunc("POST /api/vehicles", vehicleHandler.Create)
	mux.HandleFunc("GET /api/vehicles/{id}", vehicleHandler.Get)
	mux.HandleFunc("PUT /api/vehicles/{id}", vehicleHandler.Update)
	mux.HandleFunc("DELETE /api/vehicles/{id}", vehicleHandler.Delete)
	mux.HandleFunc("PUT /api/vehicles/{id}/odometer", vehicleHandler.UpdateOdometer)
	mux.HandleFunc("PUT /api/vehicles/{id}/rules/{ruleID}", vehicleHandler.SetOverride)
	mux.HandleFunc("DELETE /api/vehicles/{id}/rules/{ruleID}", vehicleHandler.RemoveOverride)

	mux.HandleFunc("GET /api/vehicles/{id}/alerts", maintenanceHandler.GetAlerts)
	mux.HandleFunc("GET /api/vehicles/{id}/schedule", maintenanceHandler.GetSchedule)
	mux.HandleFunc("GET /api/vehicles/{id}/stats", maintenanceHandler.GetStats)

	mux.HandleFunc("GET /api/vehicles/{id}/history", historyHandler.List)
	mux.HandleFunc("POST /api/vehicles/{id}/history", historyHandler.Create)
	mux.HandleFunc("DELETE /api/history/{recordID}", historyHandler.Delete)

	mux.HandleFunc("GET /api/vehicles/{id}/schedules", personalHandler.List)
	mux.HandleFunc("POST /api/vehicles/{id}/schedules", personalHandler.Create)
	mux.HandleFunc("DELETE /api/schedules/{scheduleID}", personalHandler.Delete)

	mux.HandleFunc("GET /api/templates", templateHandler.List)
	mux.HandleFunc("GET /api/templates/{id}", templateHandler.Get)
	adminOnly := middleware.NewAuthMiddleware(authService).RequireRole(models.RoleAdmin)
	mux.Handle("POST /api/templates", adminOnly(http.HandlerFunc(templateHandler.Create)))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
