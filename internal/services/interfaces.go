package services

import (
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// UserServicer defines the contract for account-related business logic.
type UserServicer interface {
	Register(username, email, password string) (*models.User, error)
	Authenticate(identifier, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, email, password string) (*models.User, error)
	DeleteAccount(userID uint) error
}

// SessionServicer defines the contract for login sessions.
type SessionServicer interface {
	Start(userID uint) (token string, expiresAt time.Time, err error)
	Resolve(token string) (*models.User, error)
	End(token string) error
	PurgeExpired() (int64, error)
}

// ExpenseServicer defines the contract for the expense ledger.
type ExpenseServicer interface {
	ListExpenses(userID uint) ([]models.Expense, error)
	CreateExpense(userID uint, title string, amount decimal.Decimal, category, date string) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) (bool, error)
}

// BudgetServicer defines the contract for the per-user budget.
type BudgetServicer interface {
	GetBudget(userID uint) (decimal.Decimal, error)
	SetBudget(userID uint, amount decimal.Decimal) (decimal.Decimal, error)
}

// AnalyticsReport summarizes a user's spending. Categories and Months are
// parallel to CategoryAmounts and MonthlyAmounts.
type AnalyticsReport struct {
	Categories      []string          `json:"categories"`
	CategoryAmounts []decimal.Decimal `json:"category_amounts"`
	Months          []string          `json:"months"`
	MonthlyAmounts  []decimal.Decimal `json:"monthly_amounts"`
	TotalSpent      decimal.Decimal   `json:"total_spent"`
	Budget          decimal.Decimal   `json:"budget"`
}

// AnalyticsServicer defines the contract for spending analytics.
type AnalyticsServicer interface {
	ComputeReport(userID uint) (*AnalyticsReport, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any)
}
