package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// PageHandler renders the server-side HTML pages. Forms on the pages call
// the JSON API.
type PageHandler struct {
	sessionService   services.SessionServicer
	expenseService   services.ExpenseServicer
	budgetService    services.BudgetServicer
	analyticsService services.AnalyticsServicer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(
	sessionService services.SessionServicer,
	expenseService services.ExpenseServicer,
	budgetService services.BudgetServicer,
	analyticsService services.AnalyticsServicer,
) *PageHandler {
	return &PageHandler{
		sessionService:   sessionService,
		expenseService:   expenseService,
		budgetService:    budgetService,
		analyticsService: analyticsService,
	}
}

// Root sends visitors to the login page.
func (h *PageHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// Login renders the login form, or skips it when a session is active.
func (h *PageHandler) Login(c *gin.Context) {
	if token := middleware.SessionToken(c); token != "" {
		if _, err := h.sessionService.Resolve(token); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Log in"})
}

// Dashboard renders the spending overview.
func (h *PageHandler) Dashboard(c *gin.Context) {
	user := currentUser(c)
	report, err := h.analyticsService.ComputeReport(user.ID)
	if err != nil {
		renderPageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"Title": "Dashboard", "User": user, "Report": report})
}

// Expenses renders the expense list and the add form.
func (h *PageHandler) Expenses(c *gin.Context) {
	user := currentUser(c)
	expenses, err := h.expenseService.ListExpenses(user.ID)
	if err != nil {
		renderPageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "expenses.html", gin.H{"Title": "Expenses", "User": user, "Expenses": expenses, "Today": models.Today()})
}

// Analytics renders the category and month breakdowns.
func (h *PageHandler) Analytics(c *gin.Context) {
	user := currentUser(c)
	report, err := h.analyticsService.ComputeReport(user.ID)
	if err != nil {
		renderPageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "analytics.html", gin.H{"Title": "Analytics", "User": user, "Report": report})
}

// Budget renders the budget form.
func (h *PageHandler) Budget(c *gin.Context) {
	user := currentUser(c)
	amount, err := h.budgetService.GetBudget(user.ID)
	if err != nil {
		renderPageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "budget.html", gin.H{"Title": "Budget", "User": user, "Amount": amount.StringFixed(2)})
}

// Profile renders the account settings.
func (h *PageHandler) Profile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile.html", gin.H{"Title": "Profile", "User": currentUser(c)})
}

// currentUser returns the user set by the page guard.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.ContextUser).(*models.User)
}

func renderPageError(c *gin.Context, err error) {
	logger.Get().Errorw("page render failed", "error", err, "path", c.Request.URL.Path)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
}
