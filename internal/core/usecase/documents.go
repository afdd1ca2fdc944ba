package usecase

import (
	"context"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/ports"
)

const recentDocumentsLimit = 50

// ListDocumentsUseCase is the read model for the document listing endpoint.
type ListDocumentsUseCase struct {
	repo ports.DocumentRepository
}

func NewListDocumentsUseCase(repo ports.DocumentRepository) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{repo: repo}
}

func (uc *ListDocumentsUseCase) ListRecent(ctx context.Context) ([]domain.Document, error) {
	docs, err := uc.repo.ListRecent(ctx, recentDocumentsLimit)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStore, "list documents", err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}
