package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// budgetService handles the single budget figure of each user.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetBudget returns the stored budget, or zero when none was set.
func (s *budgetService) GetBudget(userID uint) (decimal.Decimal, error) {
	var budget models.Budget
	if err := s.db.Where("user_id = ?", userID).Take(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget.Amount, nil
}

// SetBudget replaces the user's budget. It returns the stored amount.
func (s *budgetService) SetBudget(userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount, "budget cannot be negative")
	}
	amount, ok := models.NormalizeAmount(amount)
	if !ok {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount, "budget must not exceed "+models.MaxAmount.StringFixed(2))
	}

	budget := &models.Budget{
		UserID:    userID,
		Amount:    amount,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return decimal.Zero, apperrors.ErrUserNotFound
		}
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return amount, nil
}
