package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/finboardhq/finboard/internal/models"
)

// RevenueRepository defines the interface for revenue data access.
type RevenueRepository interface {
	// All returns every monthly revenue row in calendar order.
	All(ctx context.Context) ([]models.Revenue, error)
}

// revenueRepository implements RevenueRepository.
type revenueRepository struct {
	*BaseRepository[models.Revenue]
}

// NewRevenueRepository creates a new revenue repository.
func NewRevenueRepository(db *sqlx.DB) RevenueRepository {
	return &revenueRepository{
		BaseRepository: NewBaseRepository[models.Revenue](db, "revenue"),
	}
}

// All returns the twelve monthly revenue rows. Month labels are stored as
// three-letter abbreviations, so ordering falls back to FIELD.
func (r *revenueRepository) All(ctx context.Context) ([]models.Revenue, error) {
	q := r.getQueryable(ctx)

	query := `
        SELECT month, revenue
        FROM revenue
        ORDER BY FIELD(month, 'Jan','Feb','Mar','Apr','May','Jun','Jul','Aug','Sep','Oct','Nov','Dec')`

	var rows []models.Revenue
	if err := q.SelectContext(ctx, &rows, query); err != nil {
		return nil, ParseDBError(err)
	}

	return rows, nil
}
