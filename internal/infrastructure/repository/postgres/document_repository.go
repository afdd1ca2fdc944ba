package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Insert(ctx context.Context, doc *domain.Document) error {
	err := r.db.QueryRowContext(ctx, `
INSERT INTO documents (title, content, status, case_id)
VALUES ($1, $2, $3, $4)
RETURNING id
`, doc.Title, doc.Content, doc.Status, caseIDValue(doc.CaseID)).Scan(&doc.ID)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, content, status, case_id
FROM documents
WHERE id = $1
`, id)

	var doc domain.Document
	var caseID sql.NullInt64
	if err := row.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Status, &caseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrNotFound, "get document", fmt.Errorf("id %d", id))
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	if caseID.Valid {
		doc.CaseID = &caseID.Int64
	}
	return &doc, nil
}

// ListRecent returns newest-first document metadata. Content is excluded from
// the listing shape.
func (r *DocumentRepository) ListRecent(ctx context.Context, limit int) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, status, case_id
FROM documents
ORDER BY id DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		var caseID sql.NullInt64
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Status, &caseID); err != nil {
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		if caseID.Valid {
			doc.CaseID = &caseID.Int64
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate document rows: %w", err)
	}
	return docs, nil
}

func caseIDValue(caseID *int64) any {
	if caseID == nil {
		return nil
	}
	return *caseID
}
