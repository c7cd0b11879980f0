package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dugunsalon/internal/database"
	"dugunsalon/internal/metrics"
	"dugunsalon/internal/models"
	"dugunsalon/internal/reports"
)

// handleExpenses lists expenses or records a new one.
// GET /api/expenses?start_date=&end_date=&category=
// POST /api/expenses
func (s *HTTPServer) handleExpenses(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("expenses")
	switch r.Method {
	case http.MethodGet:
		filter := database.ExpenseFilter{
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
			Category:  r.URL.Query().Get("category"),
		}
		items, err := s.expenses.Expenses(r.Context(), filter)
		if err != nil {
			s.log.Error().Err(err).Msg("expense list failed")
			writeError(w, http.StatusInternalServerError, "failed to load expenses")
			return
		}
		if items == nil {
			items = []models.Expense{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var e models.Expense
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if strings.TrimSpace(e.Date) == "" || strings.TrimSpace(e.Category) == "" {
			writeError(w, http.StatusBadRequest, "Tarih ve kategori zorunludur.")
			return
		}
		if e.Amount <= 0 {
			writeError(w, http.StatusBadRequest, "Tutar sıfırdan büyük olmalıdır.")
			return
		}
		id, err := s.expenses.InsertExpense(r.Context(), &e)
		if err != nil {
			s.log.Error().Err(err).Msg("expense insert failed")
			writeError(w, http.StatusInternalServerError, "failed to record expense")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Gider kaydedildi.",
			"id":      id,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleExpenseByID removes an expense record.
// DELETE /api/expenses/{id}
func (s *HTTPServer) handleExpenseByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("expense_by_id")
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/expenses/"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid expense id")
		return
	}

	if err := s.expenses.DeleteExpense(r.Context(), id); err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("expense delete failed")
		writeError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Gider silindi."})
}

// handleRevenue returns total reservation revenue over a date range.
// GET /api/reports/revenue?start_date=&end_date=
func (s *HTTPServer) handleRevenue(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("report_revenue")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	summary, err := s.reports.Revenue(r.Context(), r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		s.log.Error().Err(err).Msg("revenue report failed")
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleProfitLoss returns revenue vs expenses over a date range.
// GET /api/reports/profitloss?start_date=&end_date=
func (s *HTTPServer) handleProfitLoss(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("report_profitloss")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	summary, err := s.reports.ProfitLoss(r.Context(), r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		s.log.Error().Err(err).Msg("profit-loss report failed")
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleMonthly returns a per-month breakdown for a year.
// GET /api/reports/monthly?year=2025
func (s *HTTPServer) handleMonthly(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("report_monthly")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		writeError(w, http.StatusBadRequest, "year must be between 2000 and 2100")
		return
	}

	items, err := s.reports.MonthlyBreakdown(r.Context(), year)
	if err != nil {
		s.log.Error().Err(err).Int("year", year).Msg("monthly report failed")
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// handleExport streams the month's reservations as an xlsx workbook.
// GET /api/reports/export?year=2025&month=6
func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("report_export")
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

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reports.ExportFilename(year, month)))

	if err := s.reports.ExportMonth(r.Context(), year, month, w); err != nil {
		s.log.Error().Err(err).Int("year", year).Int("month", monthNum).Msg("export failed")
	}
}
