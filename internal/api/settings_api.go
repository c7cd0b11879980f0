package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"dugunsalon/internal/metrics"
	"dugunsalon/internal/models"
)

// handleSalons lists active salons or creates a new one.
// GET|POST /api/salons
func (s *HTTPServer) handleSalons(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("salons")
	switch r.Method {
	case http.MethodGet:
		salons, err := s.settings.ActiveSalons(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("salon list failed")
			writeError(w, http.StatusInternalServerError, "failed to load salons")
			return
		}
		if salons == nil {
			salons = []models.Salon{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": salons})

	case http.MethodPost:
		var salon models.Salon
		if err := json.NewDecoder(r.Body).Decode(&salon); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		salon.Name = strings.TrimSpace(salon.Name)
		if salon.Name == "" {
			writeError(w, http.StatusBadRequest, "Salon adı zorunludur.")
			return
		}
		if salon.PriceFactor <= 0 {
			salon.PriceFactor = 1.0
		}
		id, err := s.settings.CreateSalon(r.Context(), &salon)
		if err != nil {
			s.log.Error().Err(err).Str("name", salon.Name).Msg("salon create failed")
			writeError(w, http.StatusInternalServerError, "failed to create salon")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Salon eklendi.",
			"id":      id,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleSalonByID deactivates a salon. Rows are never deleted so past
// reservations keep their salon name.
// DELETE /api/salons/{id}
func (s *HTTPServer) handleSalonByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("salon_by_id")
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/salons/"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}

	if err := s.settings.DeactivateSalon(r.Context(), id); err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("salon deactivate failed")
		writeError(w, http.StatusInternalServerError, "failed to delete salon")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Salon silindi."})
}
