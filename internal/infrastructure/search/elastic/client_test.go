package elastic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

func TestEnsureIndexCreatesMappingWhenMissing(t *testing.T) {
	var createdBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodHead && r.URL.Path == "/caseflow_docs":
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPut && r.URL.Path == "/caseflow_docs":
			createdBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := New(server.URL, "caseflow_docs")
	if err := client.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("EnsureIndex() error = %v", err)
	}
	if !strings.Contains(string(createdBody), `"keyword"`) {
		t.Fatalf("expected keyword mapping for status, got %s", createdBody)
	}
	if !strings.Contains(string(createdBody), `"case_id"`) {
		t.Fatalf("expected case_id mapping, got %s", createdBody)
	}
}

func TestEnsureIndexSkipsCreateWhenPresent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	client := New(server.URL, "caseflow_docs")
	if err := client.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("EnsureIndex() error = %v", err)
	}
}

func TestIndexWritesKeyedEntryWithRefresh(t *testing.T) {
	var gotPath, gotQuery string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	}))
	defer server.Close()

	caseID := int64(1)
	client := New(server.URL, "caseflow_docs")
	err := client.Index(context.Background(), domain.MirrorEntry{
		ID: 7, Title: "NDA Contract", Content: "This agreement...", Status: "contract", CaseID: &caseID,
	})
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	if gotPath != "/caseflow_docs/_doc/7" {
		t.Fatalf("expected path keyed by document id, got %s", gotPath)
	}
	if !strings.Contains(gotQuery, "refresh=wait_for") {
		t.Fatalf("expected refresh=wait_for, got %s", gotQuery)
	}
	if gotBody["title"] != "NDA Contract" || gotBody["status"] != "contract" {
		t.Fatalf("unexpected entry body %v", gotBody)
	}
	if _, hasID := gotBody["id"]; hasID {
		t.Fatalf("id must be the document key, not a source field: %v", gotBody)
	}
}

func TestSearchBuildsBoostedMultiMatch(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/caseflow_docs/_search" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{
			"hits": {"hits": [
				{"_id": "7", "_score": 2.4, "_source": {"title": "NDA Contract", "content": "This agreement...", "status": "contract", "case_id": 1}},
				{"_id": "2", "_score": 0.8, "_source": {"title": "Motion to Dismiss", "content": "Comes now...", "status": "motion", "case_id": null}}
			]}
		}`))
	}))
	defer server.Close()

	client := New(server.URL, "caseflow_docs")
	hits, err := client.Search(context.Background(), "nda", 20)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotBody["size"] != float64(20) {
		t.Fatalf("expected size 20, got %v", gotBody["size"])
	}
	raw, _ := json.Marshal(gotBody["query"])
	if !strings.Contains(string(raw), `"title^2"`) || !strings.Contains(string(raw), `"content"`) {
		t.Fatalf("expected boosted multi_match fields, got %s", raw)
	}

	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].ID != "7" || hits[0].Title != "NDA Contract" || hits[0].Score != 2.4 {
		t.Fatalf("unexpected first hit %+v", hits[0])
	}
	if hits[0].CaseID == nil || *hits[0].CaseID != 1 {
		t.Fatalf("expected case_id 1 on first hit")
	}
	if hits[1].CaseID != nil {
		t.Fatalf("expected nil case_id on second hit")
	}
}

func TestSearchSurfacesStatusErrorWithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "index_not_found_exception", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL, "caseflow_docs")
	_, err := client.Search(context.Background(), "nda", 20)
	if err == nil || !strings.Contains(err.Error(), "index_not_found_exception") {
		t.Fatalf("expected error with response body, got %v", err)
	}
}
