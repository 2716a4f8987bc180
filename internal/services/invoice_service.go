// Package services provides business logic for the finboard API.
//
// Services wrap repository calls and translate every failure into an
// apperrors.Error carrying a fixed user-facing message. The original error
// is chained as the wrapped cause so it stays available for logging without
// ever reaching a client.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/finboardhq/finboard/internal/apperrors"
	"github.com/finboardhq/finboard/internal/format"
	"github.com/finboardhq/finboard/internal/models"
	"github.com/finboardhq/finboard/internal/repository"
)

// InvoicesPerPage is the fixed page size for invoice listings.
const InvoicesPerPage = 6

// latestInvoiceCount is how many invoices the dashboard overview shows.
const latestInvoiceCount = 5

// InvoiceDetail is an invoice prepared for an edit form: the amount is
// converted from cents to dollars at this boundary.
type InvoiceDetail struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

// InvoiceWriteData carries validated input for create and update operations.
// Amount is in cents.
type InvoiceWriteData struct {
	CustomerID string
	Amount     int64
	Status     string
}

// InvoiceService handles invoice-related business logic
type InvoiceService struct {
	repo repository.InvoiceRepository
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService(repo repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{repo: repo}
}

// FilteredInvoices returns one page of invoices matching the free-text
// query. Pages are 1-based; anything lower is clamped to the first page.
func (s *InvoiceService) FilteredInvoices(ctx context.Context, query string, page int) ([]models.InvoiceTableRow, error) {
	const op = "InvoiceService.FilteredInvoices"

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * InvoicesPerPage

	rows, err := s.repo.ListFiltered(ctx, query, InvoicesPerPage, offset)
	if err != nil {
		return nil, apperrors.Database("Failed to fetch invoices.").
			Wrap(err).
			WithInternal("%s: query=%q page=%d", op, query, page)
	}

	return rows, nil
}

// InvoicePages returns the number of pages of invoices matching the query.
func (s *InvoiceService) InvoicePages(ctx context.Context, query string) (int, error) {
	const op = "InvoiceService.InvoicePages"

	count, err := s.repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, apperrors.Database("Failed to fetch total number of invoices.").
			Wrap(err).
			WithInternal("%s: query=%q", op, query)
	}

	return format.TotalPages(count, InvoicesPerPage), nil
}

// LatestInvoices returns the most recent invoices with formatted amounts.
func (s *InvoiceService) LatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	const op = "InvoiceService.LatestInvoices"

	invoices, err := s.repo.Latest(ctx, latestInvoiceCount)
	if err != nil {
		return nil, apperrors.Database("Failed to fetch the latest invoices.").
			Wrap(err).
			WithInternal("%s", op)
	}

	for i := range invoices {
		invoices[i].FormattedAmount = format.Currency(invoices[i].Amount)
	}

	return invoices, nil
}

// GetByID retrieves a single invoice with its amount converted to dollars.
func (s *InvoiceService) GetByID(ctx context.Context, id string) (*InvoiceDetail, error) {
	const op = "InvoiceService.GetByID"

	invoice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Invoice not found.").Wrap(err)
		}
		return nil, apperrors.Database("Failed to fetch invoice.").
			Wrap(err).
			WithInternal("%s: id=%s", op, id)
	}

	return &InvoiceDetail{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
	}, nil
}

// Create inserts a new invoice dated today.
func (s *InvoiceService) Create(ctx context.Context, data *InvoiceWriteData) (*models.Invoice, error) {
	const op = "InvoiceService.Create"

	if err := validateStatus(data.Status); err != nil {
		return nil, err
	}

	invoice, err := s.repo.Create(ctx, &repository.InvoiceCreateData{
		CustomerID: data.CustomerID,
		Amount:     data.Amount,
		Status:     data.Status,
		Date:       today(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, apperrors.InvalidInput("Customer does not exist.").Wrap(err)
		}
		return nil, apperrors.Database("Failed to create invoice.").
			Wrap(err).
			WithInternal("%s: customer=%s", op, data.CustomerID)
	}

	return invoice, nil
}

// Update changes an invoice's customer, amount and status.
func (s *InvoiceService) Update(ctx context.Context, id string, data *InvoiceWriteData) error {
	const op = "InvoiceService.Update"

	if err := validateStatus(data.Status); err != nil {
		return err
	}

	err := s.repo.Update(ctx, id, &repository.InvoiceUpdateData{
		CustomerID: data.CustomerID,
		Amount:     data.Amount,
		Status:     data.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return apperrors.NotFound("Invoice not found.").Wrap(err)
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return apperrors.InvalidInput("Customer does not exist.").Wrap(err)
		}
		return apperrors.Database("Failed to update invoice.").
			Wrap(err).
			WithInternal("%s: id=%s", op, id)
	}

	return nil
}

// Delete removes an invoice.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	const op = "InvoiceService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Invoice not found.").Wrap(err)
		}
		return apperrors.Database("Failed to delete invoice.").
			Wrap(err).
			WithInternal("%s: id=%s", op, id)
	}

	return nil
}

// today returns the current date truncated to midnight UTC, matching the
// DATE column new invoices are stamped with.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// validateStatus rejects anything outside the closed status set.
func validateStatus(status string) error {
	if status != models.InvoiceStatusPending && status != models.InvoiceStatusPaid {
		return apperrors.InvalidInput("Status must be pending or paid.")
	}
	return nil
}
