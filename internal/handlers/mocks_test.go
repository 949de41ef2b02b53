package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	registerFn      func(username, email, password string) (*models.User, error)
	authenticateFn  func(identifier, password string) (*models.User, error)
	getUserByIDFn   func(id uint) (*models.User, error)
	updateProfileFn func(userID uint, email, password string) (*models.User, error)
	deleteAccountFn func(userID uint) error
}

var _ services.UserServicer = (*mockUserService)(nil)

func (m *mockUserService) Register(username, email, password string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(username, email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) Authenticate(identifier, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(identifier, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) UpdateProfile(userID uint, email, password string) (*models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(userID, email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) DeleteAccount(userID uint) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(userID)
	}
	return nil
}

type mockSessionService struct {
	startFn   func(userID uint) (string, time.Time, error)
	resolveFn func(token string) (*models.User, error)
	endFn     func(token string) error
}

var _ services.SessionServicer = (*mockSessionService)(nil)

func (m *mockSessionService) Start(userID uint) (string, time.Time, error) {
	if m.startFn != nil {
		return m.startFn(userID)
	}
	return "test-token", time.Now().Add(time.Hour), nil
}

func (m *mockSessionService) Resolve(token string) (*models.User, error) {
	if m.resolveFn != nil {
		return m.resolveFn(token)
	}
	return &models.User{}, nil
}

func (m *mockSessionService) End(token string) error {
	if m.endFn != nil {
		return m.endFn(token)
	}
	return nil
}

func (m *mockSessionService) PurgeExpired() (int64, error) { return 0, nil }

type mockExpenseService struct {
	listExpensesFn  func(userID uint) ([]models.Expense, error)
	createExpenseFn func(userID uint, title string, amount decimal.Decimal, category, date string) (*models.Expense, error)
	deleteExpenseFn func(userID, expenseID uint) (bool, error)
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func (m *mockExpenseService) ListExpenses(userID uint) ([]models.Expense, error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(userID)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) CreateExpense(userID uint, title string, amount decimal.Decimal, category, date string) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, title, amount, category, date)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID uint) (bool, error) {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return true, nil
}

type mockBudgetService struct {
	getBudgetFn func(userID uint) (decimal.Decimal, error)
	setBudgetFn func(userID uint, amount decimal.Decimal) (decimal.Decimal, error)
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func (m *mockBudgetService) GetBudget(userID uint) (decimal.Decimal, error) {
	if m.getBudgetFn != nil {
		return m.getBudgetFn(userID)
	}
	return decimal.Zero, nil
}

func (m *mockBudgetService) SetBudget(userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	if m.setBudgetFn != nil {
		return m.setBudgetFn(userID, amount)
	}
	return amount, nil
}

type mockAnalyticsService struct {
	computeReportFn func(userID uint) (*services.AnalyticsReport, error)
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

func (m *mockAnalyticsService) ComputeReport(userID uint) (*services.AnalyticsReport, error) {
	if m.computeReportFn != nil {
		return m.computeReportFn(userID)
	}
	return &services.AnalyticsReport{}, nil
}

type mockAuditService struct {
	actions []string
}

var _ services.AuditServicer = (*mockAuditService)(nil)

func (m *mockAuditService) Log(_ uint, action, _ string, _ uint, _ string, _ map[string]any) {
	m.actions = append(m.actions, action)
}

// --- test helpers ---

var testCookies = middleware.CookieConfig{MaxAge: time.Hour}

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uid)
		c.Set(middleware.ContextUser, &models.User{Base: models.Base{ID: uid}, Username: "alice", JoinedDate: "2024-01-01"})
		c.Set(middleware.ContextSessionToken, "current-token")
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}
