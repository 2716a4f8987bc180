package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/finboardhq/finboard/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// userRepository implements UserRepository.
type userRepository struct {
	*BaseRepository[models.User]
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{
		BaseRepository: NewBaseRepository[models.User](db, "users"),
	}
}

// GetByEmail retrieves a user by email address.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	q := r.getQueryable(ctx)

	var user models.User
	query := "SELECT id, name, email, password_hash FROM users WHERE email = ?"

	if err := q.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ParseDBError(err)
	}

	return &user, nil
}
