package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/finboardhq/finboard/internal/utils"
)

// ListCustomers returns the customer table with per-customer invoice
// aggregates, filtered by the free-text query.
func (h *Handlers) ListCustomers(c *gin.Context) {
	query := utils.GetSearchParam(c)

	rows, err := h.customerSvc.FilteredCustomers(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err, "customers")
		return
	}
	utils.Success(c, rows)
}

// ListCustomerNames returns all customers as id/name pairs for select inputs.
func (h *Handlers) ListCustomerNames(c *gin.Context) {
	names, err := h.customerSvc.CustomerNames(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "customers")
		return
	}
	utils.Success(c, names)
}
