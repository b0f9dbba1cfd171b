package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/minsukang/ytcoach/internal/domain"
)

// DefaultBaseURL is Gemini's OpenAI-compatible endpoint
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// DefaultModel is the generation model used when config does not override it
const DefaultModel = "gemini-2.5-flash"

// Generator produces coaching reports through the Gemini API
type Generator struct {
	baseURL        string
	model          string
	reportLanguage string
}

// NewGenerator creates a generator. Empty arguments fall back to defaults.
func NewGenerator(baseURL, model, reportLanguage string) *Generator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if reportLanguage == "" {
		reportLanguage = "Korean (한국어)"
	}
	return &Generator{
		baseURL:        baseURL,
		model:          model,
		reportLanguage: reportLanguage,
	}
}

// Generate submits one generation request and returns the raw markdown.
// The client is built per call from the per-run key so no credential outlives
// the run. Guard failures return before any network traffic.
func (g *Generator) Generate(ctx context.Context, transcriptBlob, apiKey string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", domain.ErrMissingCredential
	}
	if strings.TrimSpace(transcriptBlob) == "" {
		return "", domain.ErrEmptyTranscript
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = g.baseURL
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: g.systemPrompt(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "**Video Transcripts:**\n" + transcriptBlob,
			},
		},
	})
	if err != nil {
		return "", describeAPIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("generation API returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// systemPrompt is the fixed coaching instruction sent with every request
func (g *Generator) systemPrompt() string {
	return fmt.Sprintf(`You are an expert Lifestyle Coach and Productivity Consultant.
The user shares YouTube videos they found inspiring.
Your task is to analyze the video transcripts and provide a structured coaching plan.

**Language Requirement:** The final response MUST be written in %s.

**Output Structure:**
1. **핵심 통찰 (Core Insight):** What is the one key philosophy or lesson from these videos? (1 sentence)
2. **주요 요약 (Key Takeaways):** Summarize 3 major points relevant to lifestyle or mindset.
3. **실천 가이드 (Action Plan):** Provide 3 concrete, actionable steps the user can do tomorrow to apply this knowledge.
4. **동기 부여 (Motivation):** A short, encouraging quote or message based on the content.`, g.reportLanguage)
}

// describeAPIError converts transport and API faults into human-readable
// reasons without leaking the credential.
func describeAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("generation API rejected the API key: %s", apiErr.Message)
		case http.StatusTooManyRequests:
			return fmt.Errorf("generation API quota exceeded: %s", apiErr.Message)
		default:
			return fmt.Errorf("generation API error (status %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
	}
	return fmt.Errorf("generation request failed: %w", err)
}
