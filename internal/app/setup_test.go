package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spendwise/internal/auth"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/testutil"
)

// testApp holds the full application stack for end-to-end tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
}

// setupApp builds the real router on an isolated, migrated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	router := NewRouter(db, Options{
		Signer:             auth.NewSigner("integration-secret", time.Hour),
		CORSAllowedOrigins: []string{"http://frontend.test"},
	})
	return &testApp{DB: db, Router: router}
}

// request sends body to path, carrying the session token as a cookie when
// one is given.
func (app *testApp) request(method, path, body, session string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: session})
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseList parses a JSON array response body.
func parseList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// sessionFrom returns the session cookie value set on the response.
func sessionFrom(rec *httptest.ResponseRecorder) string {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.MaxAge >= 0 {
			return c.Value
		}
	}
	return ""
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// signup registers a user and returns the session token.
func (app *testApp) signup(t *testing.T, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request(http.MethodPost, "/api/signup", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}
	token := sessionFrom(rec)
	if token == "" {
		t.Fatal("signup did not set a session cookie")
	}
	return token
}

// login authenticates and returns the session token.
func (app *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request(http.MethodPost, "/api/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return sessionFrom(rec)
}

func (app *testApp) addExpense(t *testing.T, session, title, amount, category, date string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"amount":%s,"category":%q,"date":%q}`, title, amount, category, date)
	rec := app.request(http.MethodPost, "/api/expenses", body, session)
	if rec.Code != http.StatusOK {
		t.Fatalf("add expense failed: %d %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	return expense["id"].(float64)
}

func newPreflight(origin string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, "/api/expenses", http.NoBody)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	return req
}

func serve(app *testApp, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}
