package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naeemahmed/doodlesolve/internal/transport/cli"
)

var solveCmd = &cobra.Command{
	Use:   "solve <image>",
	Short: "Interpret and solve a drawing of an equation",
	Long:  `Reads an image of a hand-drawn equation, transcribes it with the vision model and prints the solution.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		app := NewApp(ctx)

		img, err := cli.LoadImage(args[0])
		if err != nil {
			return err
		}

		result := app.Pipeline.Solve(ctx, img)
		if result.Failed() {
			fmt.Println(result.Err)
			return nil
		}

		if result.Interpreted != "" {
			fmt.Printf("Equation: %s\n", result.Interpreted)
		}
		fmt.Println(cli.MarkdownToTerminal(result.Answer))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
