package llm

import (
	"context"

	"github.com/naeemahmed/doodlesolve/internal/config"
	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

// NewChatModel creates the hosted chat completion client.
func NewChatModel(ctx context.Context, cfg *config.GroqConfig) core.ChatModel {
	log.FromCtx(ctx).Info().
		Str("provider", "groq").
		Str("model", cfg.Model).
		Msg("starting chat model client")

	return NewGroq(cfg.APIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens)
}

// NewVisionModel creates the hosted multimodal client.
func NewVisionModel(ctx context.Context, cfg *config.GeminiConfig) core.VisionModel {
	log.FromCtx(ctx).Info().
		Str("provider", "gemini").
		Str("model", cfg.Model).
		Msg("starting vision model client")

	return NewGemini(cfg.APIKey, cfg.Model)
}
