// Package models contains the data models for the finboard API.
package models

import (
	"time"
)

// Invoice status values. The status column is constrained to exactly these two.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Customer represents a billing customer
type Customer struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	ImageURL string `db:"image_url" json:"image_url"`
}

// Invoice represents an invoice row. Amount is stored in minor currency
// units (cents) and converted to dollars only at the formatting boundary.
type Invoice struct {
	ID         string    `db:"id" json:"id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	Amount     int64     `db:"amount" json:"amount"`
	Status     string    `db:"status" json:"status"` // pending, paid
	Date       time.Time `db:"date" json:"date"`
}

// InvoiceTableRow is an invoice joined with its customer for listing views.
type InvoiceTableRow struct {
	ID         string    `db:"id" json:"id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	ImageURL   string    `db:"image_url" json:"image_url"`
	Amount     int64     `db:"amount" json:"amount"`
	Status     string    `db:"status" json:"status"`
	Date       time.Time `db:"date" json:"date"`
}

// LatestInvoice is a recent invoice with a display-formatted amount.
type LatestInvoice struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	ImageURL string `db:"image_url" json:"image_url"`
	Amount   int64  `db:"amount" json:"-"`

	// Computed at the formatting boundary
	FormattedAmount string `json:"amount"`
}

// CustomerTableRow is a customer with invoice aggregates from a left join.
// Customers without invoices appear with zero aggregates.
type CustomerTableRow struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Email         string `db:"email" json:"email"`
	ImageURL      string `db:"image_url" json:"image_url"`
	TotalInvoices int64  `db:"total_invoices" json:"total_invoices"`
	TotalPending  int64  `db:"total_pending" json:"-"`
	TotalPaid     int64  `db:"total_paid" json:"-"`

	// Computed at the formatting boundary
	FormattedPending string `json:"total_pending"`
	FormattedPaid    string `json:"total_paid"`
}

// CustomerName is the minimal projection used by select inputs.
type CustomerName struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Revenue represents one month of revenue
type Revenue struct {
	Month   string `db:"month" json:"month"`
	Revenue int64  `db:"revenue" json:"revenue"`
}

// StatusTotals holds the summed invoice amounts per status, in cents.
type StatusTotals struct {
	Paid    int64 `db:"paid" json:"paid"`
	Pending int64 `db:"pending" json:"pending"`
}

// User represents a dashboard user for authentication
type User struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
}
