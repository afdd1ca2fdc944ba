package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/ports"
)

// AnalyzeUseCase runs the classifier directly, without persistence.
type AnalyzeUseCase struct {
	classifier ports.ContentClassifier
	timeout    time.Duration
}

func NewAnalyzeUseCase(classifier ports.ContentClassifier, timeout time.Duration) *AnalyzeUseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AnalyzeUseCase{classifier: classifier, timeout: timeout}
}

func (uc *AnalyzeUseCase) Analyze(ctx context.Context, content string) (domain.Analysis, error) {
	if content == "" {
		return domain.Analysis{}, domain.WrapError(domain.ErrInvalidInput, "analyze content", errors.New("content is required"))
	}

	analyzeCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	analysis, err := uc.classifier.Analyze(analyzeCtx, content)
	if err != nil {
		return domain.Analysis{}, domain.WrapError(domain.ErrClassifier, "analyze content", err)
	}
	return analysis, nil
}
