package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ukydev/moto-maintenance/internal/db"
	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateHandler serves the manufacturer templates (read-only reference data).
type TemplateHandler struct {
	templates db.TemplateCollection
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templates db.TemplateCollection) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// List returns all templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.FindTemplates(r.Context())
	if err != nil {
		storageError(w, err)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}
	writeJSON(w, http.StatusOK, templates)
}

// Get returns one template.
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	template, err := h.templates.FindTemplateByID(r.Context(), r.PathValue("id"))
	if err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, template)
}

// Create adds a template. The route is admin-only.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	var template models.Template
	if err := json.Unmarshal(body, &template); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if template.Make == "" || template.Model == "" {
		http.Error(w, "Make and model are required", http.StatusBadRequest)
		return
	}
	seen := make(map[string]bool, len(template.Items))
	for _, rule := range template.Items {
		if rule.ID == "" || rule.PartName == "" {
			http.Error(w, "Every rule needs an id and a part name", http.StatusBadRequest)
			return
		}
		if seen[rule.ID] {
			http.Error(w, "Duplicate rule id: "+rule.ID, http.StatusBadRequest)
			return
		}
		seen[rule.ID] = true
		if rule.IntervalKm < 0 {
			http.Error(w, "Interval must be non-negative", http.StatusBadRequest)
			return
		}
	}

	template.ID = primitive.NewObjectID()
	if err := h.templates.InsertTemplate(r.Context(), template); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, template)
}
