package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/naeemahmed/doodlesolve/pkg/log"
	"github.com/naeemahmed/doodlesolve/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the configured transports",
	Long:  `Starts the Telegram bot when enabled, or the interactive prompt otherwise, plus supporting services.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting doodlesolve")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("doodlesolve has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
