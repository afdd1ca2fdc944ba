package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

func TestCaseInsertAssignsReturnedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()
	repo := &CaseRepository{db: db}

	mock.ExpectQuery("INSERT INTO cases").
		WithArgs("Acme vs Globex", "open").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	c := &domain.Case{Name: "Acme vs Globex", Status: "open"}
	if err := repo.Insert(context.Background(), c); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if c.ID != 4 {
		t.Fatalf("expected assigned id 4, got %d", c.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCaseListPreservesRowOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()
	repo := &CaseRepository{db: db}

	rows := sqlmock.NewRows([]string{"id", "name", "status"}).
		AddRow(int64(2), "In re: Example", "open").
		AddRow(int64(1), "Acme vs Globex", "closed")
	mock.ExpectQuery("SELECT id, name, status").WillReturnRows(rows)

	cases, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(cases) != 2 || cases[0].ID != 2 || cases[1].Status != "closed" {
		t.Fatalf("unexpected cases %v", cases)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
