package handlers

import (
	"math"

	"github.com/gin-gonic/gin"

	"github.com/finboardhq/finboard/internal/format"
	"github.com/finboardhq/finboard/internal/services"
	"github.com/finboardhq/finboard/internal/utils"
)

// InvoiceRequest represents the request structure for creating/updating invoices.
// Amount is in dollars and converted to cents at this boundary.
type InvoiceRequest struct {
	CustomerID string  `json:"customer_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Status     string  `json:"status" binding:"required,oneof=pending paid"`
}

// ListInvoices returns one page of the invoice table filtered by the
// free-text query, together with the pagination window for the controls.
func (h *Handlers) ListInvoices(c *gin.Context) {
	query := utils.GetSearchParam(c)
	page := utils.GetPageParam(c)

	totalPages, err := h.invoiceSvc.InvoicePages(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err, "invoices")
		return
	}

	rows, err := h.invoiceSvc.FilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		handleServiceError(c, err, "invoices")
		return
	}

	utils.Paginated(c, rows, page, totalPages, format.Pagination(page, totalPages))
}

// LatestInvoices returns the five most recent invoices for the dashboard.
func (h *Handlers) LatestInvoices(c *gin.Context) {
	invoices, err := h.invoiceSvc.LatestInvoices(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "invoices")
		return
	}
	utils.Success(c, invoices)
}

// GetInvoice returns a single invoice prepared for the edit form.
func (h *Handlers) GetInvoice(c *gin.Context) {
	id, ok := utils.GetUUIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "invoice")
		return
	}
	utils.Success(c, invoice)
}

// CreateInvoice creates a new invoice dated today.
func (h *Handlers) CreateInvoice(c *gin.Context) {
	var req InvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	invoice, err := h.invoiceSvc.Create(c.Request.Context(), &services.InvoiceWriteData{
		CustomerID: req.CustomerID,
		Amount:     dollarsToCents(req.Amount),
		Status:     req.Status,
	})
	if err != nil {
		handleServiceError(c, err, "invoice")
		return
	}

	utils.CreatedWithLocation(c, invoice.ID, "/api/v1/invoices", "Invoice created successfully")
}

// UpdateInvoice updates the customer, amount and status of an invoice.
func (h *Handlers) UpdateInvoice(c *gin.Context) {
	id, ok := utils.GetUUIDParam(c, "id")
	if !ok {
		return
	}

	var req InvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	err := h.invoiceSvc.Update(c.Request.Context(), id, &services.InvoiceWriteData{
		CustomerID: req.CustomerID,
		Amount:     dollarsToCents(req.Amount),
		Status:     req.Status,
	})
	if err != nil {
		handleServiceError(c, err, "invoice")
		return
	}

	utils.Success(c, utils.MessageResponse{Message: "Invoice updated successfully"})
}

// DeleteInvoice removes an invoice.
func (h *Handlers) DeleteInvoice(c *gin.Context) {
	id, ok := utils.GetUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "invoice")
		return
	}

	utils.NoContent(c)
}

// dollarsToCents converts a dollar amount to whole cents.
// Rounding guards against float representation noise (e.g. 19.99*100).
func dollarsToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
