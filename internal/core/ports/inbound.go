package ports

import (
	"context"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

// DocumentIngestor is the inbound contract for the classify-persist-mirror flow.
type DocumentIngestor interface {
	CreateDocument(ctx context.Context, title, content string, caseID *int64) (*domain.Document, error)
}

// DocumentSearcher is the inbound contract for free-text search over the mirror.
type DocumentSearcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchHit, error)
}

// ContentAnalyzer runs the classifier directly, bypassing persistence.
type ContentAnalyzer interface {
	Analyze(ctx context.Context, content string) (domain.Analysis, error)
}

// Authenticator exchanges credentials for a signed session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

// CaseService manages case records.
type CaseService interface {
	CreateCase(ctx context.Context, name, status string) (*domain.Case, error)
	ListCases(ctx context.Context) ([]domain.Case, error)
}

// DocumentReader is the inbound read model for stored documents.
type DocumentReader interface {
	ListRecent(ctx context.Context) ([]domain.Document, error)
}

// DocumentReindexer replays an authoritative row into the search mirror.
type DocumentReindexer interface {
	ReindexByID(ctx context.Context, documentID int64) error
}
