package usecase

import (
	"context"
	"errors"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/ports"
)

type CaseUseCase struct {
	cases ports.CaseRepository
}

func NewCaseUseCase(cases ports.CaseRepository) *CaseUseCase {
	return &CaseUseCase{cases: cases}
}

func (uc *CaseUseCase) CreateCase(ctx context.Context, name, status string) (*domain.Case, error) {
	if name == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create case", errors.New("name is required"))
	}
	if status == "" {
		status = domain.CaseStatusOpen
	}

	c := &domain.Case{Name: name, Status: status}
	if err := uc.cases.Insert(ctx, c); err != nil {
		return nil, domain.WrapError(domain.ErrStore, "insert case", err)
	}
	return c, nil
}

func (uc *CaseUseCase) ListCases(ctx context.Context) ([]domain.Case, error) {
	cases, err := uc.cases.List(ctx)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStore, "list cases", err)
	}
	if cases == nil {
		cases = []domain.Case{}
	}
	return cases, nil
}
