package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crucial707/portfolio-api/internal/portfolio"
)

// ==========================
// Portfolio Handler
// ==========================
// All portfolio endpoints are public reads over the static dataset.
type PortfolioHandler struct {
	Data *portfolio.Data
}

// ==========================
// All portfolio data
// ==========================
func (h *PortfolioHandler) All(w http.ResponseWriter, r *http.Request) {
	JSON(w, h.Data, http.StatusOK)
}

// ==========================
// Profile
// ==========================
func (h *PortfolioHandler) Profile(w http.ResponseWriter, r *http.Request) {
	JSON(w, h.Data.Profile, http.StatusOK)
}

// ==========================
// Skills
// ==========================
func (h *PortfolioHandler) Skills(w http.ResponseWriter, r *http.Request) {
	JSON(w, h.Data.Skills, http.StatusOK)
}

// ==========================
// Projects
// ==========================
func (h *PortfolioHandler) Projects(w http.ResponseWriter, r *http.Request) {
	JSON(w, h.Data.Projects, http.StatusOK)
}

// ==========================
// Project by ID
// ==========================
func (h *PortfolioHandler) ProjectByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "Project not found", http.StatusNotFound)
		return
	}

	project, ok := h.Data.ProjectByID(id)
	if !ok {
		JSONError(w, "Project not found", http.StatusNotFound)
		return
	}
	JSON(w, project, http.StatusOK)
}

// ==========================
// Social links
// ==========================
func (h *PortfolioHandler) Social(w http.ResponseWriter, r *http.Request) {
	JSON(w, h.Data.SocialLinks, http.StatusOK)
}

// ==========================
// Preferences (placeholder)
// ==========================
func (h *PortfolioHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	JSON(w, map[string]string{
		"theme":       "light",
		"language":    "en",
		"colorScheme": "blue",
	}, http.StatusOK)
}
