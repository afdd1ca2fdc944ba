package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, role
FROM users
WHERE email = $1
`, email)

	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrNotFound, "get user", fmt.Errorf("email %s", email))
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
