package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finboardhq/finboard/internal/models"
)

// invoiceWithCustomerQuery joins invoices with their customer for listing views.
const invoiceWithCustomerQuery = `
        SELECT i.id, i.customer_id, c.name, c.email, c.image_url, i.amount, i.status, i.date
        FROM invoices i
        JOIN customers c ON i.customer_id = c.id`

// invoiceSearchFields are the expressions matched by the free-text filter.
// Matching is case-insensitive substring over name, email, the stringified
// amount and date, and the status.
var invoiceSearchFields = []string{
	"LOWER(c.name)",
	"LOWER(c.email)",
	"CAST(i.amount AS CHAR)",
	"CAST(i.date AS CHAR)",
	"LOWER(i.status)",
}

// InvoiceCreateData contains the data for creating an invoice.
type InvoiceCreateData struct {
	CustomerID string
	Amount     int64
	Status     string
	Date       time.Time
}

// InvoiceUpdateData contains the data for updating an invoice.
type InvoiceUpdateData struct {
	CustomerID string
	Amount     int64
	Status     string
}

// InvoiceRepository defines the interface for invoice data access.
type InvoiceRepository interface {
	// Filtered listing
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]models.InvoiceTableRow, error)
	CountFiltered(ctx context.Context, query string) (int64, error)

	// Point lookups
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	Latest(ctx context.Context, limit int) ([]models.LatestInvoice, error)

	// Aggregates
	Count(ctx context.Context) (int64, error)
	StatusTotals(ctx context.Context) (*models.StatusTotals, error)

	// Mutations
	Create(ctx context.Context, data *InvoiceCreateData) (*models.Invoice, error)
	Update(ctx context.Context, id string, data *InvoiceUpdateData) error
	Delete(ctx context.Context, id string) error
}

// invoiceRepository implements InvoiceRepository.
type invoiceRepository struct {
	*BaseRepository[models.Invoice]
}

// NewInvoiceRepository creates a new invoice repository.
func NewInvoiceRepository(db *sqlx.DB) InvoiceRepository {
	return &invoiceRepository{
		BaseRepository: NewBaseRepository[models.Invoice](db, "invoices"),
	}
}

// searchCondition builds the OR-combined LIKE condition for a free-text
// query and appends the bound pattern arguments. Empty queries produce no
// condition so the listing degrades to a plain page.
func searchCondition(query string, fields []string, args *[]interface{}) string {
	if query == "" {
		return ""
	}

	pattern := "%" + strings.ToLower(query) + "%"
	conditions := make([]string, 0, len(fields))
	for _, field := range fields {
		conditions = append(conditions, field+" LIKE ?")
		*args = append(*args, pattern)
	}

	return "(" + strings.Join(conditions, " OR ") + ")"
}

// ListFiltered returns one page of invoices matching the free-text query,
// newest invoice date first. Offset is expected to be a non-negative
// multiple of the page size.
func (r *invoiceRepository) ListFiltered(ctx context.Context, query string, limit, offset int) ([]models.InvoiceTableRow, error) {
	q := r.getQueryable(ctx)

	sqlQuery := invoiceWithCustomerQuery
	var args []interface{}
	if condition := searchCondition(query, invoiceSearchFields, &args); condition != "" {
		sqlQuery += " WHERE " + condition
	}
	sqlQuery += " ORDER BY i.date DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	var rows []models.InvoiceTableRow
	if err := q.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, ParseDBError(err)
	}

	return rows, nil
}

// CountFiltered returns the total number of invoices matching the query.
func (r *invoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	q := r.getQueryable(ctx)

	sqlQuery := `SELECT COUNT(*) FROM invoices i JOIN customers c ON i.customer_id = c.id`
	var args []interface{}
	if condition := searchCondition(query, invoiceSearchFields, &args); condition != "" {
		sqlQuery += " WHERE " + condition
	}

	var count int64
	if err := q.GetContext(ctx, &count, sqlQuery, args...); err != nil {
		return 0, ParseDBError(err)
	}

	return count, nil
}

// GetByID retrieves a single invoice by its identifier.
func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	q := r.getQueryable(ctx)

	var invoice models.Invoice
	query := "SELECT id, customer_id, amount, status, date FROM invoices WHERE id = ?"

	if err := q.GetContext(ctx, &invoice, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ParseDBError(err)
	}

	return &invoice, nil
}

// Latest returns the most recent invoices with customer details.
func (r *invoiceRepository) Latest(ctx context.Context, limit int) ([]models.LatestInvoice, error) {
	q := r.getQueryable(ctx)

	query := `
        SELECT i.id, c.name, c.email, c.image_url, i.amount
        FROM invoices i
        JOIN customers c ON i.customer_id = c.id
        ORDER BY i.date DESC
        LIMIT ?`

	var invoices []models.LatestInvoice
	if err := q.SelectContext(ctx, &invoices, query, limit); err != nil {
		return nil, ParseDBError(err)
	}

	return invoices, nil
}

// StatusTotals sums invoice amounts per status in a single pass.
func (r *invoiceRepository) StatusTotals(ctx context.Context) (*models.StatusTotals, error) {
	q := r.getQueryable(ctx)

	query := `
        SELECT
            COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
            COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
        FROM invoices`

	var totals models.StatusTotals
	if err := q.GetContext(ctx, &totals, query); err != nil {
		return nil, ParseDBError(err)
	}

	return &totals, nil
}

// Create inserts a new invoice and returns the created record.
func (r *invoiceRepository) Create(ctx context.Context, data *InvoiceCreateData) (*models.Invoice, error) {
	q := r.getQueryable(ctx)

	id := uuid.NewString()
	query := "INSERT INTO invoices (id, customer_id, amount, status, date) VALUES (?, ?, ?, ?, ?)"

	if _, err := q.ExecContext(ctx, query, id, data.CustomerID, data.Amount, data.Status, data.Date); err != nil {
		return nil, ParseDBError(err)
	}

	return r.GetByID(ctx, id)
}

// Update updates an existing invoice's customer, amount and status.
func (r *invoiceRepository) Update(ctx context.Context, id string, data *InvoiceUpdateData) error {
	q := r.getQueryable(ctx)

	query := "UPDATE invoices SET customer_id = ?, amount = ?, status = ? WHERE id = ?"
	result, err := q.ExecContext(ctx, query, data.CustomerID, data.Amount, data.Status, id)
	if err != nil {
		return ParseDBError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return ParseDBError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an invoice by ID.
func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	q := r.getQueryable(ctx)

	result, err := q.ExecContext(ctx, "DELETE FROM invoices WHERE id = ?", id)
	if err != nil {
		return ParseDBError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return ParseDBError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
