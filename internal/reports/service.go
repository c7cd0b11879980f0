// Package reports aggregates revenue and expense figures and exports
// monthly reservation workbooks.
package reports

import (
	"context"
	"fmt"
	"time"

	"dugunsalon/internal/database"
	"dugunsalon/internal/models"
)

// Store provides the aggregates and rows the report module reads.
type Store interface {
	RevenueSummary(ctx context.Context, startDate, endDate string) (float64, int, error)
	ExpenseTotal(ctx context.Context, startDate, endDate string) (float64, error)
	Expenses(ctx context.Context, filter database.ExpenseFilter) ([]models.Expense, error)
	ReservationsByMonth(ctx context.Context, year int, month time.Month) ([]models.Reservation, error)
}

// RevenueSummary totals reservation revenue over a period.
type RevenueSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	EventCount   int     `json:"event_count"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

// ProfitLossSummary totals revenue against expenses over a period.
type ProfitLossSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
}

// MonthlySummaryItem is one month's figures in a yearly breakdown.
type MonthlySummaryItem struct {
	Month    string  `json:"month"` // "YYYY-MM"
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// Service computes report aggregates.
type Service struct {
	store Store
}

// NewService creates a report service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Revenue returns the revenue summary for an inclusive date range. Empty
// bounds mean unbounded and are echoed back as "all".
func (s *Service) Revenue(ctx context.Context, startDate, endDate string) (*RevenueSummary, error) {
	total, count, err := s.store.RevenueSummary(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return &RevenueSummary{
		TotalRevenue: total,
		EventCount:   count,
		StartDate:    orAll(startDate),
		EndDate:      orAll(endDate),
	}, nil
}

// ProfitLoss returns revenue minus expenses for an inclusive date range.
func (s *Service) ProfitLoss(ctx context.Context, startDate, endDate string) (*ProfitLossSummary, error) {
	revenue, _, err := s.store.RevenueSummary(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ExpenseTotal(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return &ProfitLossSummary{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetProfit:     revenue - expenses,
		StartDate:     orAll(startDate),
		EndDate:       orAll(endDate),
	}, nil
}

// MonthlyBreakdown returns per-month revenue, expenses and profit for a
// calendar year.
func (s *Service) MonthlyBreakdown(ctx context.Context, year int) ([]MonthlySummaryItem, error) {
	items := make([]MonthlySummaryItem, 0, 12)
	for month := time.January; month <= time.December; month++ {
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		startStr := start.Format("2006-01-02")
		endStr := end.Format("2006-01-02")

		revenue, _, err := s.store.RevenueSummary(ctx, startStr, endStr)
		if err != nil {
			return nil, fmt.Errorf("revenue for %04d-%02d: %w", year, month, err)
		}
		expenses, err := s.store.ExpenseTotal(ctx, startStr, endStr)
		if err != nil {
			return nil, fmt.Errorf("expenses for %04d-%02d: %w", year, month, err)
		}

		items = append(items, MonthlySummaryItem{
			Month:    fmt.Sprintf("%04d-%02d", year, month),
			Revenue:  revenue,
			Expenses: expenses,
			Profit:   revenue - expenses,
		})
	}
	return items, nil
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}
