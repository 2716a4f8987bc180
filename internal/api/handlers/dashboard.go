package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/finboardhq/finboard/internal/utils"
)

// DashboardCards returns the four summary card values for the overview page.
func (h *Handlers) DashboardCards(c *gin.Context) {
	cards, err := h.dashboardSvc.CardData(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "dashboard")
		return
	}
	utils.Success(c, cards)
}

// RevenueChart returns the monthly revenue series with precomputed Y-axis labels.
func (h *Handlers) RevenueChart(c *gin.Context) {
	chart, err := h.dashboardSvc.Revenue(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "revenue")
		return
	}
	utils.Success(c, chart)
}
