package app

import (
	"github.com/gin-gonic/gin"

	"spendwise/internal/handlers"
	"spendwise/internal/middleware"
)

func registerAPIRoutes(router *gin.Engine, svc *Services, cookies middleware.CookieConfig, ping func() error) {
	authHandler := handlers.NewAuthHandler(svc.Users, svc.Sessions, svc.Audit, cookies)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses, svc.Audit)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets, svc.Audit)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.Analytics)
	healthHandler := handlers.NewHealthHandler(ping)

	api := router.Group("/api")

	// Public routes
	api.GET("/health", healthHandler.Health)
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.RequireSession(svc.Sessions, middleware.GuardAPI, cookies))

	protected.POST("/logout", authHandler.Logout)
	protected.DELETE("/delete_account", authHandler.DeleteAccount)
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)

	protected.GET("/expenses", expenseHandler.ListExpenses)
	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

	protected.GET("/budget", budgetHandler.GetBudget)
	protected.PUT("/budget", budgetHandler.SetBudget)

	protected.GET("/analytics", analyticsHandler.GetAnalytics)
}

func registerPageRoutes(router *gin.Engine, svc *Services, cookies middleware.CookieConfig) {
	pageHandler := handlers.NewPageHandler(svc.Sessions, svc.Expenses, svc.Budgets, svc.Analytics)

	router.GET("/", pageHandler.Root)
	router.GET("/login", pageHandler.Login)

	pages := router.Group("/")
	pages.Use(middleware.RequireSession(svc.Sessions, middleware.GuardPage, cookies))
	pages.GET("/dashboard", pageHandler.Dashboard)
	pages.GET("/expenses", pageHandler.Expenses)
	pages.GET("/analytics", pageHandler.Analytics)
	pages.GET("/budget", pageHandler.Budget)
	pages.GET("/profile", pageHandler.Profile)
}
