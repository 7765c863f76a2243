package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

// GeminiConfig drives the multimodal vision provider.
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY,required,notEmpty"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}
