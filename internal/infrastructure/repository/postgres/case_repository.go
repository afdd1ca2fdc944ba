package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

type CaseRepository struct {
	db *sql.DB
}

func NewCaseRepository(db *sql.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) Insert(ctx context.Context, c *domain.Case) error {
	err := r.db.QueryRowContext(ctx, `
INSERT INTO cases (name, status)
VALUES ($1, $2)
RETURNING id
`, c.Name, c.Status).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

func (r *CaseRepository) List(ctx context.Context) ([]domain.Case, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, status
FROM cases
ORDER BY id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}
	defer rows.Close()

	var cases []domain.Case
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(&c.ID, &c.Name, &c.Status); err != nil {
			return nil, fmt.Errorf("scan case row: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate case rows: %w", err)
	}
	return cases, nil
}
