package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/naeemahmed/doodlesolve/internal/config"
	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/internal/service/chat"
	"github.com/naeemahmed/doodlesolve/internal/service/session"
	"github.com/naeemahmed/doodlesolve/internal/service/solve"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

const defaultSessionID = "cli-local"

type ReadLine struct {
	cfg       *config.AppConfig
	responder *chat.Responder
	pipeline  solve.Pipeline
	history   *session.Log
	rl        *readline.Instance
}

func NewReadLine(
	responder *chat.Responder,
	pipeline solve.Pipeline,
	history *session.Log,
	cfg *config.AppConfig,
) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:       cfg,
		responder: responder,
		pipeline:  pipeline,
		history:   history,
		rl:        rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("Interactive session started. Type '/help' for commands, 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		r.dispatch(ctx, line)
	}
}

func (r *ReadLine) dispatch(ctx context.Context, line string) {
	switch {
	case line == "/help":
		fmt.Fprint(r.rl.Stdout(), helpText)

	case line == "/clear":
		r.history.Clear(defaultSessionID)
		fmt.Fprintln(r.rl.Stdout(), "Session history cleared.")

	case line == "/history":
		for _, msg := range r.history.Messages(defaultSessionID) {
			fmt.Fprintf(r.rl.Stdout(), "[%s] %s\n", msg.Role, msg.Content)
		}

	case strings.HasPrefix(line, "/solve "):
		path := strings.TrimSpace(strings.TrimPrefix(line, "/solve "))
		r.solveFile(ctx, path)

	default:
		r.ask(ctx, line)
	}
}

func (r *ReadLine) ask(ctx context.Context, message string) {
	r.history.Append(defaultSessionID, core.Message{Role: core.RoleUser, Content: message})

	answer := r.responder.Respond(ctx, message)

	r.history.Append(defaultSessionID, core.Message{Role: core.RoleAssistant, Content: answer})
	fmt.Fprintf(r.rl.Stdout(), "%s\n", MarkdownToTerminal(answer))
}

func (r *ReadLine) solveFile(ctx context.Context, path string) {
	img, err := LoadImage(path)
	if err != nil {
		fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
		return
	}

	result := r.pipeline.Solve(ctx, img)
	if result.Failed() {
		fmt.Fprintf(r.rl.Stdout(), "%s\n", result.Err)
		return
	}

	r.history.Append(defaultSessionID, core.Message{
		Role:    core.RoleUser,
		Content: fmt.Sprintf("solve drawing %s", path),
	})
	r.history.Append(defaultSessionID, core.Message{
		Role:    core.RoleAssistant,
		Content: result.Answer,
	})

	if result.Interpreted != "" {
		fmt.Fprintf(r.rl.Stdout(), "Equation: %s\n", result.Interpreted)
	}
	fmt.Fprintf(r.rl.Stdout(), "%s\n", MarkdownToTerminal(result.Answer))
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

const helpText = `Commands:
  /solve <path>   interpret and solve a drawing or photo of an equation
  /history        show this session's transcript
  /clear          forget this session's transcript
  /help           show this help
  exit            quit
Anything else is sent to the chat assistant.
`
