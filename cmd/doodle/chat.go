package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/naeemahmed/doodlesolve/internal/transport/cli"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask a question, or open the interactive prompt",
	Long:  `With a message argument, prints a single answer and exits. Without one, opens the interactive prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		app := NewApp(ctx)

		if len(args) > 0 {
			answer := app.Responder.Respond(ctx, strings.Join(args, " "))
			fmt.Println(cli.MarkdownToTerminal(answer))
			return nil
		}

		rl, err := cli.NewReadLine(app.Responder, app.Pipeline, app.History, app.Cfg)
		if err != nil {
			return err
		}
		defer rl.Shutdown(ctx)
		return rl.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
