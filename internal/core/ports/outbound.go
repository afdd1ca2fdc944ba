package ports

import (
	"context"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

// DocumentRepository persists and reads authoritative document rows.
type DocumentRepository interface {
	Insert(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Document, error)
}

// CaseRepository persists and reads case rows.
type CaseRepository interface {
	Insert(ctx context.Context, c *domain.Case) error
	List(ctx context.Context) ([]domain.Case, error)
}

// UserRepository reads user credentials for login.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SearchMirror is the denormalized text index queried at search time.
type SearchMirror interface {
	EnsureIndex(ctx context.Context) error
	Index(ctx context.Context, entry domain.MirrorEntry) error
	Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
}

// ContentClassifier produces an Analysis from raw text. Implementations are
// selected once at bootstrap, not per call.
type ContentClassifier interface {
	Analyze(ctx context.Context, content string) (domain.Analysis, error)
}

// ReindexQueue publishes/consumes mirror reconciliation events.
type ReindexQueue interface {
	PublishReindex(ctx context.Context, documentID int64) error
	SubscribeReindex(ctx context.Context, handler func(context.Context, int64) error) error
}
