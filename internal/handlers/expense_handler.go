package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/models"
	"spendwise/internal/services"
)

// ExpenseHandler handles expense ledger requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for adding an expense.
// Date defaults to today when omitted.
type CreateExpenseRequest struct {
	Title    string         `json:"title" binding:"required,max=255"`
	Amount   *models.Amount `json:"amount" binding:"required,max_amount,positive_amount" swaggertype:"number"`
	Category string         `json:"category" binding:"required,max=100"`
	Date     string         `json:"date" binding:"omitempty,iso_date"`
}

// ExpenseResponse is returned after adding an expense.
type ExpenseResponse struct {
	Message string         `json:"message"`
	Expense models.Expense `json:"expense"`
}

// DeleteExpenseResponse reports whether an expense was removed.
type DeleteExpenseResponse struct {
	Message string `json:"message"`
	Deleted bool   `json:"deleted"`
}

// ListExpenses returns every expense of the user
// @Summary     List expenses
// @Description All expenses of the authenticated user, newest date first
// @Tags        expenses
// @Produce     json
// @Security    SessionCookie
// @Success     200 {array}  models.Expense "Expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateExpense records a new expense
// @Summary     Add an expense
// @Description Record an expense; the amount must be greater than zero and at most 999999999999.99
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     200 {object} ExpenseResponse "Expense added"
// @Failure     400 {object} ErrorResponse "Invalid amount or fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, req.Title, req.Amount.Decimal, req.Category, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreateExpense, services.AuditResourceExpense, expense.ID, c.ClientIP(),
		map[string]any{"title": expense.Title, "amount": expense.Amount.StringFixed(2), "category": expense.Category})

	c.JSON(http.StatusOK, ExpenseResponse{Message: "Added", Expense: *expense})
}

// DeleteExpense removes one of the user's expenses
// @Summary     Delete an expense
// @Description Delete an expense owned by the user; other ids are a no-op
// @Tags        expenses
// @Produce     json
// @Security    SessionCookie
// @Param       id path int true "Expense ID"
// @Success     200 {object} DeleteExpenseResponse "deleted is false when nothing matched"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.expenseService.DeleteExpense(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if deleted {
		h.auditService.Log(userID, services.AuditActionDeleteExpense, services.AuditResourceExpense, expenseID, c.ClientIP(), nil)
	}

	c.JSON(http.StatusOK, DeleteExpenseResponse{Message: "Deleted", Deleted: deleted})
}
