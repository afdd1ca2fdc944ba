package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/ports"
)

// IngestDocumentUseCase orchestrates document creation: classify, persist,
// mirror. Classify always precedes persist, persist always precedes mirror.
type IngestDocumentUseCase struct {
	repo       ports.DocumentRepository
	classifier ports.ContentClassifier
	mirror     ports.SearchMirror
	queue      ports.ReindexQueue

	classifierTimeout time.Duration
	mirrorTimeout     time.Duration
}

// NewIngestDocumentUseCase wires the ingestion coordinator. queue may be nil;
// mirror-write failures are then only logged.
func NewIngestDocumentUseCase(
	repo ports.DocumentRepository,
	classifier ports.ContentClassifier,
	mirror ports.SearchMirror,
	queue ports.ReindexQueue,
	classifierTimeout, mirrorTimeout time.Duration,
) *IngestDocumentUseCase {
	if classifierTimeout <= 0 {
		classifierTimeout = 30 * time.Second
	}
	if mirrorTimeout <= 0 {
		mirrorTimeout = 10 * time.Second
	}
	return &IngestDocumentUseCase{
		repo:              repo,
		classifier:        classifier,
		mirror:            mirror,
		queue:             queue,
		classifierTimeout: classifierTimeout,
		mirrorTimeout:     mirrorTimeout,
	}
}

func (uc *IngestDocumentUseCase) CreateDocument(
	ctx context.Context,
	title, content string,
	caseID *int64,
) (*domain.Document, error) {
	if title == "" || content == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create document", errors.New("title and content are required"))
	}

	classifyCtx, cancel := context.WithTimeout(ctx, uc.classifierTimeout)
	analysis, err := uc.classifier.Analyze(classifyCtx, content)
	cancel()
	if err != nil {
		return nil, domain.WrapError(domain.ErrClassifier, "classify content", err)
	}

	status := analysis.Classification
	if status == "" {
		status = domain.StatusUnclassified
	}

	doc := &domain.Document{
		Title:   title,
		Content: content,
		Status:  status,
		CaseID:  caseID,
	}
	if err := uc.repo.Insert(ctx, doc); err != nil {
		return nil, domain.WrapError(domain.ErrStore, "insert document", err)
	}

	// The row is authoritative from here on. A failed mirror write must not
	// fail the request; the entry stays absent until the reindex worker
	// replays it.
	if err := uc.mirrorDocument(ctx, doc); err != nil {
		slog.Warn("mirror_write_failed",
			"document_id", doc.ID,
			"error", domain.WrapError(domain.ErrMirrorWrite, "mirror document", err),
		)
		uc.scheduleReindex(ctx, doc.ID)
	}

	return doc, nil
}

func (uc *IngestDocumentUseCase) mirrorDocument(ctx context.Context, doc *domain.Document) error {
	mirrorCtx, cancel := context.WithTimeout(ctx, uc.mirrorTimeout)
	defer cancel()
	return uc.mirror.Index(mirrorCtx, domain.MirrorEntry{
		ID:      doc.ID,
		Title:   doc.Title,
		Content: doc.Content,
		Status:  doc.Status,
		CaseID:  doc.CaseID,
	})
}

func (uc *IngestDocumentUseCase) scheduleReindex(ctx context.Context, documentID int64) {
	if uc.queue == nil {
		return
	}
	if err := uc.queue.PublishReindex(ctx, documentID); err != nil {
		slog.Error("reindex_publish_failed", "document_id", documentID, "error", err)
	}
}
