// Package repository provides data access abstractions for the finboard API.
package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// BaseRepository provides common read operations shared by all repositories.
// It uses Go generics to work with any model type.
type BaseRepository[T any] struct {
	db        *sqlx.DB
	tableName string
}

// NewBaseRepository creates a new base repository for the given table.
func NewBaseRepository[T any](db *sqlx.DB, tableName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:        db,
		tableName: tableName,
	}
}

// getQueryable returns the transaction from context if present, otherwise the db.
func (r *BaseRepository[T]) getQueryable(ctx context.Context) Queryable {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// DB returns the underlying database connection.
func (r *BaseRepository[T]) DB() *sqlx.DB {
	return r.db
}

// TableName returns the table name for this repository.
func (r *BaseRepository[T]) TableName() string {
	return r.tableName
}

// Count returns the total number of records.
func (r *BaseRepository[T]) Count(ctx context.Context) (int64, error) {
	q := r.getQueryable(ctx)

	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.tableName)

	if err := q.GetContext(ctx, &count, query); err != nil {
		return 0, ParseDBError(err)
	}

	return count, nil
}

// ExistsBy checks if any record matches the given condition.
// The condition should be a valid SQL WHERE clause fragment (e.g., "email = ?").
func (r *BaseRepository[T]) ExistsBy(ctx context.Context, condition string, args ...interface{}) (bool, error) {
	q := r.getQueryable(ctx)

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s)", r.tableName, condition)

	if err := q.GetContext(ctx, &exists, query, args...); err != nil {
		return false, ParseDBError(err)
	}

	return exists, nil
}

// CountBy counts records matching a condition.
// The condition should be a valid SQL WHERE clause fragment.
func (r *BaseRepository[T]) CountBy(ctx context.Context, condition string, args ...interface{}) (int64, error) {
	q := r.getQueryable(ctx)

	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", r.tableName, condition)

	if err := q.GetContext(ctx, &count, query, args...); err != nil {
		return 0, ParseDBError(err)
	}

	return count, nil
}
