package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"dugunsalon/internal/auth"
	"dugunsalon/internal/metrics"
)

// handleLogin verifies credentials.
// POST /api/login
func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("login")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		s.log.Error().Err(err).Str("username", req.Username).Msg("login failed")
		writeError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Giriş başarılı.",
		"user":    user,
	})
}

// handleRegister creates a staff account.
// POST /api/register
func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("register")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var in auth.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.auth.Register(r.Context(), in)
	if err != nil {
		var rerr *auth.RegisterError
		if errors.As(err, &rerr) {
			writeError(w, http.StatusBadRequest, rerr.Message)
			return
		}
		s.log.Error().Err(err).Str("username", in.Username).Msg("register failed")
		writeError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Kayıt başarıyla oluşturuldu.",
		"id":      id,
	})
}
