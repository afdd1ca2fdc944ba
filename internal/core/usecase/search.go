package usecase

import (
	"context"
	"strings"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/ports"
)

const searchResultLimit = 20

// SearchUseCase forwards free-text queries to the search mirror and flattens
// hits into the uniform result shape.
type SearchUseCase struct {
	mirror ports.SearchMirror
}

func NewSearchUseCase(mirror ports.SearchMirror) *SearchUseCase {
	return &SearchUseCase{mirror: mirror}
}

func (uc *SearchUseCase) Search(ctx context.Context, query string) ([]domain.SearchHit, error) {
	// A blank query would return an unranked full-index dump; short-circuit
	// before touching the mirror.
	if strings.TrimSpace(query) == "" {
		return []domain.SearchHit{}, nil
	}

	hits, err := uc.mirror.Search(ctx, query, searchResultLimit)
	if err != nil {
		return nil, domain.WrapError(domain.ErrSearchUnavailable, "search mirror", err)
	}
	if hits == nil {
		hits = []domain.SearchHit{}
	}
	return hits, nil
}
