package mcpsrv

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/internal/service/chat"
	"github.com/naeemahmed/doodlesolve/internal/service/solve"
	"github.com/naeemahmed/doodlesolve/pkg/log"
)

// Server exposes the chat assistant and the solve pipeline as MCP tools
// over stdio, so editor agents can call them without the bot or REPL.
type Server struct {
	mcp       *server.MCPServer
	responder *chat.Responder
	pipeline  solve.Pipeline
	loadImage func(path string) (core.Image, error)
}

func NewServer(
	responder *chat.Responder,
	pipeline solve.Pipeline,
	loadImage func(path string) (core.Image, error),
) *Server {
	s := &Server{
		responder: responder,
		pipeline:  pipeline,
		loadImage: loadImage,
	}

	s.mcp = server.NewMCPServer(
		core.AppName,
		core.AppVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.mcp.AddTool(
		mcp.NewTool("solve_drawing",
			mcp.WithDescription("Interpret a hand-drawn math equation and solve it. Accepts either a file path or a base64 data URI."),
			mcp.WithString("path",
				mcp.Description("Path to an image file containing the drawing"),
			),
			mcp.WithString("data_uri",
				mcp.Description("Drawing as a data:<mime>;base64,... URI"),
			),
		),
		s.handleSolveDrawing,
	)

	s.mcp.AddTool(
		mcp.NewTool("ask",
			mcp.WithDescription("Ask the assistant a free-text question"),
			mcp.WithString("message",
				mcp.Required(),
				mcp.Description("The question to ask"),
			),
		),
		s.handleAsk,
	)

	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting mcp stdio server")
	return server.ServeStdio(s.mcp)
}

func (s *Server) Shutdown(ctx context.Context) error {
	// ServeStdio returns when stdin closes; nothing to tear down.
	return nil
}

func (s *Server) handleSolveDrawing(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	img, err := s.imageFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.pipeline.Solve(ctx, img)
	if result.Failed() {
		return mcp.NewToolResultError(result.Err), nil
	}

	if result.Interpreted != "" {
		return mcp.NewToolResultText(fmt.Sprintf("Equation: %s\n\n%s", result.Interpreted, result.Answer)), nil
	}
	return mcp.NewToolResultText(result.Answer), nil
}

func (s *Server) handleAsk(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.responder.Respond(ctx, message)), nil
}

func (s *Server) imageFromRequest(req mcp.CallToolRequest) (core.Image, error) {
	if uri := req.GetString("data_uri", ""); uri != "" {
		img, err := core.ParseDataURI(uri)
		if err != nil {
			return core.Image{}, fmt.Errorf("invalid data_uri: %w", err)
		}
		return img, nil
	}

	if path := req.GetString("path", ""); path != "" {
		return s.loadImage(path)
	}

	return core.Image{}, fmt.Errorf("either path or data_uri must be provided")
}
