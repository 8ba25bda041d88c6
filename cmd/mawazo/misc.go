package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/mawazo/internal/app/ai"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print a journaling prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		// prompts never touch the host, so no wiring is needed
		fmt.Fprintln(cmd.OutOrStdout(), ai.NewGateway(nil).GenerateJournalPrompt())
		return nil
	},
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Print the current writing streak in days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			n, err := a.journal.CalculateStreak(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d day streak\n", n)
			return nil
		})
	},
}

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Inspect the AI host",
}

var aiStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report which AI surfaces answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "available: %t\n", a.gateway.IsAvailable())

			probe := a.gateway.Probe(cmd.Context())
			if probe.Available {
				fmt.Fprintf(out, "probe: ok via %s (%q)\n", probe.API, probe.Result)
			} else {
				fmt.Fprintf(out, "probe: %s\n", probe.Error)
			}
			return nil
		})
	},
}

func init() {
	aiCmd.AddCommand(aiStatusCmd)
	rootCmd.AddCommand(promptCmd, streakCmd, aiCmd)
}
