package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// expenseService handles the expense ledger.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// ListExpenses returns all of the user's expenses, newest date first.
func (s *expenseService) ListExpenses(userID uint) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if err := s.db.Where("user_id = ?", userID).Order("date DESC, id ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// CreateExpense records a new expense. The amount is rounded to cents and
// must stay above zero and within MaxAmount. An empty date means today.
func (s *expenseService) CreateExpense(userID uint, title string, amount decimal.Decimal, category, date string) (*models.Expense, error) {
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	if title == "" || category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and category are required")
	}

	amount, ok := models.NormalizeAmount(amount)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must not exceed "+models.MaxAmount.StringFixed(2))
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must be greater than zero")
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date = models.Today()
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be formatted as YYYY-MM-DD")
	}

	expense := &models.Expense{
		UserID:   userID,
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
	if err := s.db.Create(expense).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense removes the expense only if the user owns it. It reports
// whether a row was deleted; a foreign or missing id is not an error.
func (s *expenseService) DeleteExpense(userID, expenseID uint) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected > 0, nil
}
