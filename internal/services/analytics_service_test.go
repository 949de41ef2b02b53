package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"spendwise/internal/testutil"
)

func assertAmounts(t *testing.T, got []decimal.Decimal, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d amounts, got %v", len(want), got)
	}
	for i := range want {
		if !got[i].Equal(dec(want[i])) {
			t.Errorf("amount %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func assertStrings(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestComputeReport(t *testing.T) {
	t.Run("empty_ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalyticsService(db)
		user := testutil.CreateTestUser(t, db)

		report, err := svc.ComputeReport(user.ID)
		testutil.AssertNoError(t, err)

		if report.Categories == nil || report.CategoryAmounts == nil || report.Months == nil || report.MonthlyAmounts == nil {
			t.Fatal("sequences must be empty, not nil")
		}
		if len(report.Categories) != 0 || len(report.Months) != 0 {
			t.Errorf("expected no buckets, got %v / %v", report.Categories, report.Months)
		}
		if !report.TotalSpent.IsZero() || !report.Budget.IsZero() {
			t.Errorf("expected zero total and budget, got %s / %s", report.TotalSpent, report.Budget)
		}
	})

	t.Run("coffee_and_bus", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalyticsService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, user.ID, "Coffee", "4.50", "Food", "2024-01-05")
		testutil.CreateTestExpense(t, db, user.ID, "Bus", "2.00", "Transport", "2024-02-01")
		testutil.CreateTestBudget(t, db, user.ID, "100")

		report, err := svc.ComputeReport(user.ID)
		testutil.AssertNoError(t, err)

		assertStrings(t, report.Categories, "Food", "Transport")
		assertAmounts(t, report.CategoryAmounts, "4.50", "2.00")
		assertStrings(t, report.Months, "2024-01", "2024-02")
		assertAmounts(t, report.MonthlyAmounts, "4.50", "2.00")
		if !report.TotalSpent.Equal(dec("6.50")) {
			t.Errorf("expected total 6.50, got %s", report.TotalSpent)
		}
		if !report.Budget.Equal(dec("100")) {
			t.Errorf("expected budget 100, got %s", report.Budget)
		}
	})

	t.Run("groups_and_sorts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalyticsService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, user.ID, "Rent", "800", "Housing", "2023-12-01")
		testutil.CreateTestExpense(t, db, user.ID, "Lunch", "0.10", "Food", "2024-01-10")
		testutil.CreateTestExpense(t, db, user.ID, "Snack", "0.20", "Food", "2024-01-20")
		testutil.CreateTestExpense(t, db, other.ID, "Other", "99", "Food", "2024-01-20")

		report, err := svc.ComputeReport(user.ID)
		testutil.AssertNoError(t, err)

		assertStrings(t, report.Categories, "Food", "Housing")
		assertAmounts(t, report.CategoryAmounts, "0.30", "800")
		assertStrings(t, report.Months, "2023-12", "2024-01")
		assertAmounts(t, report.MonthlyAmounts, "800", "0.30")
		if !report.TotalSpent.Equal(dec("800.30")) {
			t.Errorf("expected total 800.30, got %s", report.TotalSpent)
		}
	})
}
