package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

// Client talks to the Elasticsearch REST API and holds the mirror index for
// document projections.
type Client struct {
	baseURL    string
	index      string
	httpClient *http.Client
}

func New(baseURL, index string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		index:      index,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// EnsureIndex creates the mirror index with its field mappings when missing.
func (c *Client) EnsureIndex(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/"+c.index, nil)
	if err != nil {
		return fmt.Errorf("create index check request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("elasticsearch index check: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	if resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("elasticsearch index check status: %s", resp.Status)
	}

	mapping := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"title":   map[string]any{"type": "text"},
				"content": map[string]any{"type": "text"},
				"status":  map[string]any{"type": "keyword"},
				"case_id": map[string]any{"type": "integer"},
			},
		},
	}
	body, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("marshal index mapping: %w", err)
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/"+c.index, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create index request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err = c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("elasticsearch create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return statusError("create index", resp)
	}
	return nil
}

// Index writes one document projection, keyed by the textual document id.
// refresh=wait_for makes the entry searchable before returning.
func (c *Client) Index(ctx context.Context, entry domain.MirrorEntry) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal mirror entry: %w", err)
	}

	url := fmt.Sprintf("%s/%s/_doc/%s?refresh=wait_for", c.baseURL, c.index, strconv.FormatInt(entry.ID, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create index document request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("elasticsearch index document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return statusError("index document", resp)
	}
	return nil
}

// Search runs a multi_match over title (2x boost) and content, size-capped,
// and flattens the hit wrapper into SearchHit records in relevance order.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	reqBody := map[string]any{
		"size": limit,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"title^2", "content"},
			},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	url := fmt.Sprintf("%s/%s/_search", c.baseURL, c.index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, statusError("search", resp)
	}

	var searchResp struct {
		Hits struct {
			Hits []struct {
				ID     string             `json:"_id"`
				Score  float64            `json:"_score"`
				Source domain.MirrorEntry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]domain.SearchHit, 0, len(searchResp.Hits.Hits))
	for _, h := range searchResp.Hits.Hits {
		out = append(out, domain.SearchHit{
			ID:      h.ID,
			Score:   h.Score,
			Title:   h.Source.Title,
			Content: h.Source.Content,
			Status:  h.Source.Status,
			CaseID:  h.Source.CaseID,
		})
	}
	return out, nil
}

func statusError(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return fmt.Errorf("elasticsearch %s status: %s: %s", operation, resp.Status, msg)
	}
	return fmt.Errorf("elasticsearch %s status: %s", operation, resp.Status)
}
