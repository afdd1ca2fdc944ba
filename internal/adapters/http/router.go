package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sumaiyashah27/caseflow-ai/internal/config"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/ports"
	"github.com/sumaiyashah27/caseflow-ai/internal/observability/metrics"
)

const serviceName = "caseflow-api"

type Router struct {
	ingestor   ports.DocumentIngestor
	reader     ports.DocumentReader
	searcher   ports.DocumentSearcher
	analyzer   ports.ContentAnalyzer
	auth       ports.Authenticator
	cases      ports.CaseService
	appMetrics *metrics.HTTPServerMetrics
	cfg        config.Config
}

func NewRouter(
	ingestor ports.DocumentIngestor,
	reader ports.DocumentReader,
	searcher ports.DocumentSearcher,
	analyzer ports.ContentAnalyzer,
	auth ports.Authenticator,
	cases ports.CaseService,
	appMetrics *metrics.HTTPServerMetrics,
	cfg config.Config,
) *Router {
	return &Router{
		ingestor:   ingestor,
		reader:     reader,
		searcher:   searcher,
		analyzer:   analyzer,
		auth:       auth,
		cases:      cases,
		appMetrics: appMetrics,
		cfg:        cfg,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", rt.health)
	mux.HandleFunc("/api/auth/login", rt.login)
	mux.HandleFunc("/api/documents", rt.documents)
	mux.HandleFunc("/api/cases", rt.casesEndpoint)
	mux.HandleFunc("/api/search", rt.search)
	mux.HandleFunc("/api/ai/analyze", rt.analyze)
	if rt.appMetrics != nil {
		mux.Handle("/metrics", rt.appMetrics.Handler())
	}

	var handler http.Handler = mux
	if rt.appMetrics != nil {
		handler = rt.appMetrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (rt *Router) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		return
	}

	session, err := rt.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (rt *Router) documents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		rt.listDocuments(w, r)
	case http.MethodPost:
		rt.createDocument(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := rt.reader.ListRecent(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (rt *Router) createDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		CaseID  *int64 `json:"caseId"`
		// Older clients send the column name instead of the camelCase field.
		CaseIDAlias *int64 `json:"case_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	caseID := req.CaseID
	if caseID == nil {
		caseID = req.CaseIDAlias
	}

	doc, err := rt.ingestor.CreateDocument(r.Context(), req.Title, req.Content, caseID)
	if err != nil {
		rt.recordIngest(outcomeFor(err))
		writeError(w, err)
		return
	}
	rt.recordIngest("ok")
	writeJSON(w, http.StatusCreated, doc)
}

func (rt *Router) casesEndpoint(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cases, err := rt.cases.ListCases(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cases)
	case http.MethodPost:
		var req struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		created, err := rt.cases.CreateCase(r.Context(), req.Name, req.Status)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	hits, err := rt.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		rt.recordSearch(outcomeFor(err), 0)
		writeError(w, err)
		return
	}
	rt.recordSearch("ok", len(hits))
	writeJSON(w, http.StatusOK, hits)
}

func (rt *Router) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	analysis, err := rt.analyzer.Analyze(r.Context(), req.Content)
	if err != nil {
		rt.recordAnalyze(outcomeFor(err))
		writeError(w, err)
		return
	}
	rt.recordAnalyze("ok")
	writeJSON(w, http.StatusOK, analysis)
}

func (rt *Router) recordIngest(outcome string) {
	if rt.appMetrics != nil {
		rt.appMetrics.RecordIngest(serviceName, outcome)
	}
}

func (rt *Router) recordSearch(outcome string, hits int) {
	if rt.appMetrics != nil {
		rt.appMetrics.RecordSearch(serviceName, outcome, hits)
	}
}

func (rt *Router) recordAnalyze(outcome string) {
	if rt.appMetrics != nil {
		rt.appMetrics.RecordAnalyze(serviceName, outcome)
	}
}

func outcomeFor(err error) string {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return "invalid"
	case domain.IsKind(err, domain.ErrClassifier):
		return "classifier_error"
	case domain.IsKind(err, domain.ErrSearchUnavailable):
		return "unavailable"
	case domain.IsKind(err, domain.ErrStore):
		return "store_error"
	default:
		return "error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
