package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

const (
	// PipelineTwoStage interprets the drawing first and solves the
	// transcription in a second call.
	PipelineTwoStage = "two-stage"
	// PipelineCombined interprets and solves in a single vision call.
	PipelineCombined = "combined"
)

type AppConfig struct {
	RuntimePath string `env:"DOODLE_RUNTIME_PATH" envDefault:".doodlesolve"`

	// Pipeline shape for the solve flow
	PipelineVariant string `env:"DOODLE_PIPELINE_VARIANT" envDefault:"two-stage"`

	// Transport Flags
	EnableTelegram bool `env:"DOODLE_ENABLE_TELEGRAM" envDefault:"false"`

	// Solve cache (sqlite, keyed by image hash)
	EnableCache bool `env:"DOODLE_ENABLE_CACHE" envDefault:"true"`

	// Upper bound on chat prompt size, counted with tiktoken. 0 disables.
	PromptTokenBudget int `env:"DOODLE_PROMPT_TOKEN_BUDGET" envDefault:"2048"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "doodlesolve.db")
}
