package handler

import (
	"net/http"

	"github.com/pixelsmith/contactrelay/internal/content"
)

// ListServices handles GET /api/v1/services
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, content.Services())
}

// GetService handles GET /api/v1/services/{slug}
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, content.ServiceBySlug(r.PathValue("slug")))
}

// ListFAQs handles GET /api/v1/faqs
func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, content.FAQs())
}

// ListProjects handles GET /api/v1/projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, content.Projects())
}

// GetProject handles GET /api/v1/projects/{slug}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, content.ProjectBySlug(r.PathValue("slug")))
}
