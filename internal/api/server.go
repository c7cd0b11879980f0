// Package api exposes the scheduling facade over HTTP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"dugunsalon/internal/auth"
	"dugunsalon/internal/database"
	"dugunsalon/internal/models"
	"dugunsalon/internal/reports"
	"dugunsalon/internal/service"
)

// SettingsStore provides salon settings persistence.
type SettingsStore interface {
	ActiveSalons(ctx context.Context) ([]models.Salon, error)
	CreateSalon(ctx context.Context, s *models.Salon) (int64, error)
	DeactivateSalon(ctx context.Context, id int64) error
}

// ExpenseStore provides expense persistence.
type ExpenseStore interface {
	Expenses(ctx context.Context, filter database.ExpenseFilter) ([]models.Expense, error)
	InsertExpense(ctx context.Context, e *models.Expense) (int64, error)
	DeleteExpense(ctx context.Context, id int64) error
}

// HTTPServer serves the reservation API.
type HTTPServer struct {
	scheduler *service.Scheduler
	auth      *auth.Service
	reports   *reports.Service
	settings  SettingsStore
	expenses  ExpenseStore
	log       *zerolog.Logger

	respCache *ResponseCache
	server    *http.Server
}

// Options configures optional server behavior.
type Options struct {
	// RequestsPerSecond/Burst drive the per-client rate limiter.
	RequestsPerSecond float64
	Burst             int
}

// NewHTTPServer assembles the API server on the given port.
func NewHTTPServer(
	port int,
	scheduler *service.Scheduler,
	authSvc *auth.Service,
	reportSvc *reports.Service,
	settings SettingsStore,
	expenses ExpenseStore,
	opts Options,
	logger *zerolog.Logger,
) *HTTPServer {
	s := &HTTPServer{
		scheduler: scheduler,
		auth:      authSvc,
		reports:   reportSvc,
		settings:  settings,
		expenses:  expenses,
		log:       logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/login", s.handleLogin)
	mux.HandleFunc("/api/register", s.handleRegister)
	mux.HandleFunc("/api/reservations", s.handleReservations)
	mux.HandleFunc("/api/reservations/unavailable", s.handleUnavailableSlots)
	mux.HandleFunc("/api/calendar", s.handleCalendar)
	mux.HandleFunc("/api/salons", s.handleSalons)
	mux.HandleFunc("/api/salons/", s.handleSalonByID)
	mux.HandleFunc("/api/expenses", s.handleExpenses)
	mux.HandleFunc("/api/expenses/", s.handleExpenseByID)
	mux.HandleFunc("/api/reports/revenue", s.handleRevenue)
	mux.HandleFunc("/api/reports/profitloss", s.handleProfitLoss)
	mux.HandleFunc("/api/reports/monthly", s.handleMonthly)
	mux.HandleFunc("/api/reports/export", s.handleExport)

	handler := withRequestID(withRateLimit(opts.RequestsPerSecond, opts.Burst, mux))

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// UseRedisCache configures optional Redis caching for GET endpoints.
func (s *HTTPServer) UseRedisCache(cache *ResponseCache) {
	s.respCache = cache
}

// Handler returns the assembled handler, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *HTTPServer) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.server.Shutdown(ctxShutdown)
	}()

	s.log.Info().Str("addr", s.server.Addr).Msg("API server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
