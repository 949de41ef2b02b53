package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// AnalyticsHandler serves spending summaries.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalytics returns totals per category and per month
// @Summary     Spending analytics
// @Description Totals by category and by YYYY-MM month, overall total and budget
// @Tags        analytics
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} services.AnalyticsReport "Report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.analyticsService.ComputeReport(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
