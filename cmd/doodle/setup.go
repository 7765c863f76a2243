package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/naeemahmed/doodlesolve/internal/config"
	"github.com/naeemahmed/doodlesolve/internal/knowledge"
	"github.com/naeemahmed/doodlesolve/internal/providers/llm"
	"github.com/naeemahmed/doodlesolve/internal/service/chat"
	"github.com/naeemahmed/doodlesolve/internal/service/session"
	"github.com/naeemahmed/doodlesolve/internal/service/solve"
	"github.com/naeemahmed/doodlesolve/internal/storage/sqlite"
	"github.com/naeemahmed/doodlesolve/internal/transport/cli"
	"github.com/naeemahmed/doodlesolve/internal/transport/telegram"
	"github.com/naeemahmed/doodlesolve/pkg/log"
	"github.com/naeemahmed/doodlesolve/pkg/srv"
)

// App holds the wired core services shared by every command.
type App struct {
	Cfg       *config.AppConfig
	Responder *chat.Responder
	Pipeline  solve.Pipeline
	History   *session.Log

	cleanups []srv.Service
}

func NewApp(ctx context.Context) *App {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Model providers
	chatModel := llm.NewChatModel(ctx, config.NewGroqConfig(ctx))
	visionModel := llm.NewVisionModel(ctx, config.NewGeminiConfig(ctx))

	// 3. Chat responder with the static knowledge table
	responder := chat.NewResponder(knowledge.Default(), chatModel, appCfg.PromptTokenBudget)

	// 4. Solve pipeline
	interpreter := solve.NewInterpreter(visionModel)
	solver := solve.NewSolver(visionModel)
	orchestrator, err := solve.NewOrchestrator(appCfg.PipelineVariant, interpreter, solver)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build solve pipeline")
	}

	app := &App{
		Cfg:       appCfg,
		Responder: responder,
		Pipeline:  orchestrator,
		History:   session.NewLog(),
	}

	// 5. Optional solve cache
	if appCfg.EnableCache {
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize storage")
		}
		app.cleanups = append(app.cleanups, srv.NewCleanup(db.Close))
		app.Pipeline = solve.NewCachedPipeline(orchestrator, sqlite.NewSolutionsRepo(db))
	}

	return app
}

// NewServices assembles the long-running services for `doodle start`.
func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	app := NewApp(ctx)
	services := append([]srv.Service{}, app.cleanups...)

	if app.Cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, app.Responder, app.Pipeline)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
		}
		services = append(services, bot)
		return services
	}

	// Without Telegram the interactive prompt is the transport.
	rl, err := cli.NewReadLine(app.Responder, app.Pipeline, app.History, app.Cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize readline")
	}
	services = append(services, rl)
	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
