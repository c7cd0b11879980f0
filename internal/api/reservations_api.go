package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dugunsalon/internal/booking"
	"dugunsalon/internal/metrics"
	"dugunsalon/internal/models"
)

// handleReservations dispatches GET (list by date) and POST (create).
func (s *HTTPServer) handleReservations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listReservations(w, r)
	case http.MethodPost:
		s.createReservation(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// listReservations returns full reservation records for a date.
// GET /api/reservations?date=YYYY-MM-DD
func (s *HTTPServer) listReservations(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("reservations_list")

	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	type listResponse struct {
		Items []models.Reservation `json:"items"`
	}

	isoDate, err := booking.EnsureISODate(date, "Rezervasyon tarihi", true)
	if err == nil {
		var cached listResponse
		if s.respCache.read(r.Context(), dayKey(isoDate), &cached) {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	records, err := s.scheduler.GetReservationsForDate(r.Context(), date)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		s.log.Error().Err(err).Str("date", date).Msg("list reservations failed")
		writeError(w, http.StatusInternalServerError, "failed to load reservations")
		return
	}
	if records == nil {
		records = []models.Reservation{}
	}

	resp := listResponse{Items: records}
	if isoDate != "" {
		s.respCache.write(r.Context(), dayKey(isoDate), resp)
	}
	writeJSON(w, http.StatusOK, resp)
}

// createReservation validates and persists a reservation.
// POST /api/reservations
func (s *HTTPServer) createReservation(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("reservations_create")

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.scheduler.CreateReservation(r.Context(), raw)
	if err != nil {
		var verr *booking.ValidationError
		var cerr *booking.ConflictError
		var serr *booking.StorageError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Message)
		case errors.As(err, &cerr):
			writeError(w, http.StatusConflict, cerr.Error())
		case errors.As(err, &serr):
			s.log.Error().Err(serr.Err).Msg("reservation insert failed")
			writeError(w, http.StatusInternalServerError, serr.Error())
		default:
			s.log.Error().Err(err).Msg("reservation create failed")
			writeError(w, http.StatusInternalServerError, "unexpected error")
		}
		return
	}

	s.respCache.invalidateDate(r.Context(), result.EventDate)

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Rezervasyon başarıyla kaydedildi.",
		"reservation": result,
	})
}

// handleUnavailableSlots returns blocked slot starts and busy ranges.
// GET /api/reservations/unavailable?date=YYYY-MM-DD&salon=Salon+A
func (s *HTTPServer) handleUnavailableSlots(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("reservations_unavailable")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	date := r.URL.Query().Get("date")
	salon := r.URL.Query().Get("salon")
	if date == "" || salon == "" {
		writeError(w, http.StatusBadRequest, "date and salon are required")
		return
	}

	result, err := s.scheduler.GetUnavailableSlots(r.Context(), date, salon)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		s.log.Error().Err(err).Str("date", date).Str("salon", salon).Msg("unavailable slots failed")
		writeError(w, http.StatusInternalServerError, "failed to compute slots")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleCalendar returns the month's reservations grouped by date.
// GET /api/calendar?year=2025&month=6
func (s *HTTPServer) handleCalendar(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("calendar")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		writeError(w, http.StatusBadRequest, "year must be between 2000 and 2100")
		return
	}
	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		writeError(w, http.StatusBadRequest, "month must be between 1 and 12")
		return
	}
	month := time.Month(monthNum)

	type calendarResponse struct {
		Data map[string][]models.CalendarEvent `json:"data"`
	}

	var cached calendarResponse
	if s.respCache.read(r.Context(), calendarKey(year, month), &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	data, err := s.scheduler.GetCalendarData(r.Context(), year, month)
	if err != nil {
		s.log.Error().Err(err).Int("year", year).Int("month", monthNum).Msg("calendar load failed")
		writeError(w, http.StatusInternalServerError, "failed to load calendar")
		return
	}

	resp := calendarResponse{Data: data}
	s.respCache.write(r.Context(), calendarKey(year, month), resp)
	writeJSON(w, http.StatusOK, resp)
}
