// Package app assembles the spendwise HTTP surface: services, handlers,
// middleware and routes.
package app

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"spendwise/internal/auth"
	"spendwise/internal/middleware"
	"spendwise/internal/services"
	"spendwise/internal/validator"
	"spendwise/internal/web"

	_ "spendwise/internal/docs" // Import swagger docs
)

// Options carries the settings the router needs beyond the database.
type Options struct {
	Signer             *auth.Signer
	CookieSecure       bool
	CORSAllowedOrigins []string
	// Ping reports database health. Defaults to a ping through db.
	Ping func() error
}

// Services bundles the service layer so callers such as cmd/api can reuse
// it outside HTTP handling.
type Services struct {
	Users     services.UserServicer
	Sessions  services.SessionServicer
	Expenses  services.ExpenseServicer
	Budgets   services.BudgetServicer
	Analytics services.AnalyticsServicer
	Audit     services.AuditServicer
}

// NewServices builds every service on top of db.
func NewServices(db *gorm.DB, signer *auth.Signer) *Services {
	return &Services{
		Users:     services.NewUserService(db),
		Sessions:  services.NewSessionService(db, signer),
		Expenses:  services.NewExpenseService(db),
		Budgets:   services.NewBudgetService(db),
		Analytics: services.NewAnalyticsService(db),
		Audit:     services.NewAuditService(db),
	}
}

// NewRouter returns the fully wired gin engine.
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	svc := NewServices(db, opts.Signer)

	ping := opts.Ping
	if ping == nil {
		ping = func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		}
	}

	cookies := middleware.CookieConfig{Secure: opts.CookieSecure, MaxAge: opts.Signer.TTL()}

	validator.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Tracing())
	router.Use(middleware.ErrorHandler())
	if len(opts.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.SetHTMLTemplate(web.Templates())

	registerAPIRoutes(router, svc, cookies, ping)
	registerPageRoutes(router, svc, cookies)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
