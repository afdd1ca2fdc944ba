package offline

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
)

const summaryLimit = 160

// Classifier is the deterministic fallback used when no hosted-model
// credential is configured. Content-only heuristics, no network calls.
type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

func (*Classifier) Analyze(_ context.Context, content string) (domain.Analysis, error) {
	summary := content
	if len(summary) > summaryLimit {
		summary = truncateRunes(summary, summaryLimit) + "..."
	}

	lower := strings.ToLower(content)
	classification := domain.ClassMemo
	switch {
	case strings.Contains(lower, "agreement"):
		classification = domain.ClassContract
	case strings.Contains(lower, "motion"):
		classification = domain.ClassMotion
	}

	return domain.Analysis{
		Summary:        summary,
		Entities:       []string{"Client", "Date", "Amount"},
		Classification: classification,
		Risk:           domain.RiskLow,
	}, nil
}

// truncateRunes cuts at most limit bytes without splitting a multi-byte rune.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
