package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

type searchMirrorFake struct {
	hits      []domain.SearchHit
	err       error
	calls     int
	lastQuery string
	lastLimit int
}

func (f *searchMirrorFake) EnsureIndex(context.Context) error { return nil }

func (f *searchMirrorFake) Index(context.Context, domain.MirrorEntry) error {
	return errors.New("not implemented")
}

func (f *searchMirrorFake) Search(_ context.Context, query string, limit int) ([]domain.SearchHit, error) {
	f.calls++
	f.lastQuery = query
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

func TestSearchBlankQueryShortCircuits(t *testing.T) {
	for _, query := range []string{"", "   "} {
		mirror := &searchMirrorFake{}
		uc := NewSearchUseCase(mirror)

		hits, err := uc.Search(context.Background(), query)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", query, err)
		}
		if hits == nil || len(hits) != 0 {
			t.Fatalf("Search(%q) expected empty non-nil result, got %v", query, hits)
		}
		if mirror.calls != 0 {
			t.Fatalf("Search(%q) expected no mirror call", query)
		}
	}
}

func TestSearchForwardsQueryAndLimit(t *testing.T) {
	mirror := &searchMirrorFake{hits: []domain.SearchHit{
		{ID: "1", Score: 2.5, Title: "NDA Contract"},
		{ID: "2", Score: 1.1, Title: "Motion to Dismiss"},
	}}
	uc := NewSearchUseCase(mirror)

	hits, err := uc.Search(context.Background(), "nda")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if mirror.lastQuery != "nda" || mirror.lastLimit != 20 {
		t.Fatalf("expected query nda with limit 20, got %q/%d", mirror.lastQuery, mirror.lastLimit)
	}
	if len(hits) != 2 || hits[0].Title != "NDA Contract" {
		t.Fatalf("expected ordered passthrough, got %v", hits)
	}
}

func TestSearchMirrorErrorIsSearchUnavailable(t *testing.T) {
	mirror := &searchMirrorFake{err: errors.New("connection refused")}
	uc := NewSearchUseCase(mirror)

	_, err := uc.Search(context.Background(), "nda")
	if !domain.IsKind(err, domain.ErrSearchUnavailable) {
		t.Fatalf("expected ErrSearchUnavailable, got %v", err)
	}
}

func TestSearchNilHitsBecomeEmptySlice(t *testing.T) {
	uc := NewSearchUseCase(&searchMirrorFake{})

	hits, err := uc.Search(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if hits == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}
