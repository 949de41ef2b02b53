package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"spendwise/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and a unique
// username and email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWith(t, db, fmt.Sprintf("user%d", n), fmt.Sprintf("user%d@test.com", n))
}

// CreateTestUserWith creates a user with the given username and email. An
// empty email leaves the column NULL.
func CreateTestUserWith(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if email != "" {
		lower := strings.ToLower(email)
		user.Email = &lower
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense. amount is a decimal string such as
// "4.50".
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, title, amount, category, date string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    title,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget stores a budget for userID.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, amount string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID: userID,
		Amount: decimal.RequireFromString(amount),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
