package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/finboardhq/finboard/internal/models"
)

// customerSearchFields are the expressions matched by the customer filter.
var customerSearchFields = []string{
	"LOWER(c.name)",
	"LOWER(c.email)",
}

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	// ListWithTotals returns every customer matching the filter together
	// with invoice aggregates. Customers without invoices are included.
	ListWithTotals(ctx context.Context, query string) ([]models.CustomerTableRow, error)

	// Names returns the id/name projection for select inputs.
	Names(ctx context.Context) ([]models.CustomerName, error)

	// Count returns the total number of customers.
	Count(ctx context.Context) (int64, error)
}

// customerRepository implements CustomerRepository.
type customerRepository struct {
	*BaseRepository[models.Customer]
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *sqlx.DB) CustomerRepository {
	return &customerRepository{
		BaseRepository: NewBaseRepository[models.Customer](db, "customers"),
	}
}

// ListWithTotals aggregates invoice counts and per-status amount sums for
// each matching customer. The LEFT JOIN keeps customers with zero invoices
// in the result, with aggregates defaulting to zero.
func (r *customerRepository) ListWithTotals(ctx context.Context, query string) ([]models.CustomerTableRow, error) {
	q := r.getQueryable(ctx)

	sqlQuery := `
        SELECT
            c.id, c.name, c.email, c.image_url,
            COUNT(i.id) AS total_invoices,
            COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending,
            COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0) AS total_paid
        FROM customers c
        LEFT JOIN invoices i ON c.id = i.customer_id`

	var args []interface{}
	if condition := searchCondition(query, customerSearchFields, &args); condition != "" {
		sqlQuery += " WHERE " + condition
	}
	sqlQuery += " GROUP BY c.id, c.name, c.email, c.image_url ORDER BY c.name ASC"

	var rows []models.CustomerTableRow
	if err := q.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, ParseDBError(err)
	}

	return rows, nil
}

// Names returns all customers as id/name pairs ordered by name.
func (r *customerRepository) Names(ctx context.Context) ([]models.CustomerName, error) {
	q := r.getQueryable(ctx)

	var names []models.CustomerName
	query := "SELECT id, name FROM customers ORDER BY name ASC"

	if err := q.SelectContext(ctx, &names, query); err != nil {
		return nil, ParseDBError(err)
	}

	return names, nil
}
