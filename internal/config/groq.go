package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

// GroqConfig drives the chat completion provider. Model identity and
// generation parameters are fixed configuration, never negotiated at
// runtime.
type GroqConfig struct {
	APIKey      string  `env:"GROQ_API_KEY,required,notEmpty"`
	Model       string  `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`
	Temperature float64 `env:"GROQ_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int     `env:"GROQ_MAX_TOKENS" envDefault:"1000"`
}

func NewGroqConfig(ctx context.Context) *GroqConfig {
	c := &GroqConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Groq config")
	}
	return c
}
