package telegram

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/naeemahmed/doodlesolve/internal/config"
	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/internal/service/chat"
	"github.com/naeemahmed/doodlesolve/internal/service/solve"
	"github.com/naeemahmed/doodlesolve/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	responder *chat.Responder
	pipeline  solve.Pipeline
	sender    *sender
	ownerID   int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	responder *chat.Responder,
	pipeline solve.Pipeline,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		responder: responder,
		pipeline:  pipeline,
		sender:    newSender(b),
		ownerID:   cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: restrict to the owner when one is configured
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if bot.ownerID != 0 && c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleText)
	b.Handle(tele.OnPhoto, bot.handlePhoto)
	b.Handle(tele.OnDocument, bot.handleDocument)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleText(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	_ = c.Notify(tele.Typing)

	answer := b.responder.Respond(ctx, c.Text())
	return b.sender.sendMarkdown(ctx, c.Chat(), answer, false)
}

func (b *Bot) handlePhoto(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return nil
	}
	// Telegram re-encodes photo uploads as JPEG
	return b.solveFile(c, &photo.File, "image/jpeg")
}

func (b *Bot) handleDocument(c tele.Context) error {
	doc := c.Message().Document
	if doc == nil || !core.IsSupportedImageMIME(doc.MIME) {
		return nil
	}
	return b.solveFile(c, &doc.File, doc.MIME)
}

func (b *Bot) solveFile(c tele.Context, file *tele.File, mime string) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	_ = c.Notify(tele.Typing)

	rc, err := b.bot.File(file)
	if err != nil {
		logger.Error().Err(err).Msg("failed to download telegram file")
		return c.Send("Could not download the image. Please try again.")
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read telegram file")
		return c.Send("Could not download the image. Please try again.")
	}

	result := b.pipeline.Solve(ctx, core.Image{MIME: mime, Data: data})
	return b.sender.sendMarkdown(ctx, c.Chat(), formatSolution(result), false)
}

// formatSolution renders a solve result as Markdown for the chat reply.
func formatSolution(sol core.Solution) string {
	if sol.Failed() {
		return sol.Err
	}
	if sol.Interpreted == "" {
		return sol.Answer
	}
	return fmt.Sprintf("**Equation:** %s\n\n%s", sol.Interpreted, sol.Answer)
}
