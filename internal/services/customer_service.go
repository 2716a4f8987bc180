package services

import (
	"context"

	"github.com/finboardhq/finboard/internal/apperrors"
	"github.com/finboardhq/finboard/internal/format"
	"github.com/finboardhq/finboard/internal/models"
	"github.com/finboardhq/finboard/internal/repository"
)

// CustomerService handles customer-related business logic
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// FilteredCustomers returns the customer table with invoice aggregates.
// Pending and paid totals are formatted to currency at this boundary; a
// customer with no invoices carries "$0.00" for both.
func (s *CustomerService) FilteredCustomers(ctx context.Context, query string) ([]models.CustomerTableRow, error) {
	const op = "CustomerService.FilteredCustomers"

	rows, err := s.repo.ListWithTotals(ctx, query)
	if err != nil {
		return nil, apperrors.Database("Failed to fetch customer table.").
			Wrap(err).
			WithInternal("%s: query=%q", op, query)
	}

	for i := range rows {
		rows[i].FormattedPending = format.Currency(rows[i].TotalPending)
		rows[i].FormattedPaid = format.Currency(rows[i].TotalPaid)
	}

	return rows, nil
}

// CustomerNames returns all customers as id/name pairs for select inputs.
func (s *CustomerService) CustomerNames(ctx context.Context) ([]models.CustomerName, error) {
	const op = "CustomerService.CustomerNames"

	names, err := s.repo.Names(ctx)
	if err != nil {
		return nil, apperrors.Database("Failed to fetch all customers.").
			Wrap(err).
			WithInternal("%s", op)
	}

	return names, nil
}
