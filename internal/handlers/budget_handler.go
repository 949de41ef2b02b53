package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"spendwise/internal/models"
	"spendwise/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// SetBudgetRequest represents the request payload for setting the budget.
type SetBudgetRequest struct {
	Amount *models.Amount `json:"amount" binding:"required,max_amount,nonnegative_amount" swaggertype:"number"`
}

// BudgetResponse carries the current budget.
type BudgetResponse struct {
	Message string          `json:"message,omitempty"`
	Amount  decimal.Decimal `json:"amount" swaggertype:"number"`
}

// GetBudget returns the user's budget
// @Summary     Get budget
// @Description The user's budget, or 0 when none was set
// @Tags        budget
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} BudgetResponse "Budget"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	amount, err := h.budgetService.GetBudget(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Amount: amount})
}

// SetBudget replaces the user's budget
// @Summary     Set budget
// @Description Overwrite the budget; negative amounts are rejected
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body SetBudgetRequest true "New budget"
// @Success     200 {object} BudgetResponse "Budget updated"
// @Failure     400 {object} ErrorResponse "Negative, too large or non-numeric amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	amount, err := h.budgetService.SetBudget(userID, req.Amount.Decimal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionSetBudget, services.AuditResourceBudget, userID, c.ClientIP(),
		map[string]any{"amount": amount.StringFixed(2)})

	c.JSON(http.StatusOK, BudgetResponse{Message: "Budget updated", Amount: amount})
}
