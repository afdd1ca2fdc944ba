package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
	"github.com/sumaiyashah27/caseflow-ai/internal/infrastructure/resilience"
)

const systemPrompt = "You are a legal document analysis assistant. " +
	"Extract entities, summarize, classify (contract, motion, judgment, memo), and estimate risk low/medium/high."

const summaryLimit = 400

// Classifier is the hosted-model variant, selected at bootstrap when an API
// key is configured.
type Classifier struct {
	client   *openai.Client
	model    string
	executor *resilience.Executor
}

// NewClassifier builds the hosted classifier. executor may be nil to run
// completions without retry/breaker protection.
func NewClassifier(apiKey, model string, executor *resilience.Executor) *Classifier {
	return &Classifier{
		client:   openai.NewClient(apiKey),
		model:    model,
		executor: executor,
	}
}

func (c *Classifier) Analyze(ctx context.Context, content string) (domain.Analysis, error) {
	var text string
	call := func(callCtx context.Context) error {
		resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: "Analyze this document:\n" + content},
			},
			Temperature: 0.2,
		})
		if err != nil {
			return fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return errors.New("empty completion response")
		}
		text = resp.Choices[0].Message.Content
		return nil
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "openai.analyze", call, classifyCompletionError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return domain.Analysis{}, err
	}
	return parseAnalysis(text), nil
}

// parseAnalysis derives the structured fields from the free-text completion
// by substring matching. Risk is fixed at medium pending structured model
// output; the offline variant is the deterministic reference.
func parseAnalysis(text string) domain.Analysis {
	lower := strings.ToLower(text)
	classification := domain.ClassMemo
	switch {
	case strings.Contains(lower, "contract"):
		classification = domain.ClassContract
	case strings.Contains(lower, "motion"):
		classification = domain.ClassMotion
	}

	summary := text
	if len(summary) > summaryLimit {
		cut := summaryLimit
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = summary[:cut]
	}

	return domain.Analysis{
		Summary:        summary,
		Entities:       []string{},
		Classification: classification,
		Risk:           domain.RiskMedium,
	}
}

func classifyCompletionError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}
	if resilience.IsCircuitOpen(err) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 408, 429, 500, 502, 503, 504:
			return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
		default:
			return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
		}
	}

	// Transport-level failures (refused connection, reset, DNS) are worth a
	// retry and count against the breaker.
	return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
}
