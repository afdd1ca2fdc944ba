package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

func TestGetByEmailReturnsUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()
	repo := &UserRepository{db: db}

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "role"}).
		AddRow(int64(1), "admin@caseflow.ai", "$2a$10$hash", "admin")
	mock.ExpectQuery("SELECT id, email, password_hash, role").
		WithArgs("admin@caseflow.ai").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "admin@caseflow.ai")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if user.ID != 1 || user.Role != "admin" {
		t.Fatalf("unexpected user %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByEmailReturnsDomainNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()
	repo := &UserRepository{db: db}

	mock.ExpectQuery("SELECT id, email, password_hash, role").
		WithArgs("ghost@caseflow.ai").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByEmail(context.Background(), "ghost@caseflow.ai")
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
