package main

import (
	"github.com/spf13/cobra"

	"github.com/naeemahmed/doodlesolve/internal/transport/cli"
	"github.com/naeemahmed/doodlesolve/internal/transport/mcpsrv"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the solver and assistant as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		app := NewApp(ctx)

		server := mcpsrv.NewServer(app.Responder, app.Pipeline, cli.LoadImage)
		return server.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
