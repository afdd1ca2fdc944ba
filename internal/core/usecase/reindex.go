package usecase

import (
	"context"
	"time"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/ports"
)

// ReindexUseCase replays an authoritative document row into the search mirror.
// It is driven by the worker consuming reconciliation events published after
// failed mirror writes.
type ReindexUseCase struct {
	repo    ports.DocumentRepository
	mirror  ports.SearchMirror
	timeout time.Duration
}

func NewReindexUseCase(repo ports.DocumentRepository, mirror ports.SearchMirror, timeout time.Duration) *ReindexUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ReindexUseCase{repo: repo, mirror: mirror, timeout: timeout}
}

func (uc *ReindexUseCase) ReindexByID(ctx context.Context, documentID int64) error {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return domain.WrapError(domain.ErrStore, "fetch document for reindex", err)
	}

	mirrorCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	err = uc.mirror.Index(mirrorCtx, domain.MirrorEntry{
		ID:      doc.ID,
		Title:   doc.Title,
		Content: doc.Content,
		Status:  doc.Status,
		CaseID:  doc.CaseID,
	})
	if err != nil {
		return domain.WrapError(domain.ErrMirrorWrite, "reindex document", err)
	}
	return nil
}
