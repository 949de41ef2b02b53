package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// analyticsService aggregates a user's expenses on every call.
type analyticsService struct {
	db      *gorm.DB
	budgets BudgetServicer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db, budgets: NewBudgetService(db)}
}

type bucketTotal struct {
	Bucket string
	Total  decimal.Decimal
}

// ComputeReport totals spending per category (alphabetical) and per
// YYYY-MM month (chronological), plus the overall total and budget.
func (s *analyticsService) ComputeReport(userID uint) (*AnalyticsReport, error) {
	report := &AnalyticsReport{
		Categories:      []string{},
		CategoryAmounts: []decimal.Decimal{},
		Months:          []string{},
		MonthlyAmounts:  []decimal.Decimal{},
		TotalSpent:      decimal.Zero,
		Budget:          decimal.Zero,
	}

	byCategory, err := s.totals(userID, "category")
	if err != nil {
		return nil, err
	}
	for _, row := range byCategory {
		report.Categories = append(report.Categories, row.Bucket)
		report.CategoryAmounts = append(report.CategoryAmounts, row.Total.Round(2))
	}

	byMonth, err := s.totals(userID, "SUBSTR(date, 1, 7)")
	if err != nil {
		return nil, err
	}
	for _, row := range byMonth {
		report.Months = append(report.Months, row.Bucket)
		report.MonthlyAmounts = append(report.MonthlyAmounts, row.Total.Round(2))
	}

	var total decimal.Decimal
	err = s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Row().
		Scan(&total)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	report.TotalSpent = total.Round(2)

	budget, err := s.budgets.GetBudget(userID)
	if err != nil {
		return nil, err
	}
	report.Budget = budget

	return report, nil
}

// totals sums amounts grouped by expr, ordered by the group key.
func (s *analyticsService) totals(userID uint, expr string) ([]bucketTotal, error) {
	var rows []bucketTotal
	err := s.db.Model(&models.Expense{}).
		Select(expr+" AS bucket, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Group(expr).
		Order("bucket").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}
