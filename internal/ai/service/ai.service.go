package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"draftai/internal/ai/llm"
	"draftai/pkg/logger"
)

const (
	defaultMaxTokens = 150
	defaultModel     = "gpt-3.5-turbo"

	// Keys still carrying the sample value from .env.example count as absent.
	placeholderAPIKey = "your_openai_api_key_here"

	systemPrompt = "You are a helpful writing assistant. Generate creative and engaging content based on the user's prompt."
)

// Source tells tests and callers which path produced the text. The HTTP
// handler collapses all three into the same success response.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceMock      Source = "mock"
	SourceFallback  Source = "fallback"
)

type Result struct {
	Text   string
	Source Source
}

// GenerationService proxies prompts to a completion backend. A nil Client
// means mock mode: deterministic placeholder text, no network.
type GenerationService struct {
	Client llm.Client
}

func NewGenerationService(client llm.Client) *GenerationService {
	return &GenerationService{Client: client}
}

func NewGenerationServiceFromEnv() *GenerationService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" || apiKey == placeholderAPIKey {
		logger.Sugar.Info("OPENAI_API_KEY not configured, AI generation runs in mock mode")
		return &GenerationService{}
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &GenerationService{Client: llm.NewOpenAI(apiKey, model)}
}

// Generate never fails: a broken or unreachable completion backend yields a
// fallback result so the writing flow is not interrupted.
func (s *GenerationService) Generate(ctx context.Context, prompt string, maxTokens int) Result {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	if s.Client == nil {
		return Result{
			Text:   fmt.Sprintf("Mock AI response for: '%s'. Please configure OpenAI API key for real AI generation.", prompt),
			Source: SourceMock,
		}
	}

	text, err := s.Client.Complete(ctx, systemPrompt, prompt, maxTokens)
	if err != nil {
		logger.Sugar.Errorf("Error generating AI content: %v", err)
		return Result{
			Text:   fmt.Sprintf("AI service temporarily unavailable. Here's a placeholder response for: '%s'", prompt),
			Source: SourceFallback,
		}
	}

	return Result{Text: strings.TrimSpace(text), Source: SourceGenerated}
}
