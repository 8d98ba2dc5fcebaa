// Package healthinfo generates patient-facing health information via
// the Gemini API, with Redis-backed caching of generated answers.
package healthinfo

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"healthcost-assistant/internal/common/config"
)

// Generator abstracts the upstream language model behind a single call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls Google Gemini through langchaingo.
type GeminiGenerator struct {
	llm         *googleai.GoogleAI
	temperature float64
}

func NewGeminiGenerator(ctx context.Context, cfg config.GenAIConfig) (*GeminiGenerator, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}

	return &GeminiGenerator{llm: llm, temperature: cfg.Temperature}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(g.temperature),
	)
}
