package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/mawazo/internal/config"
	"github.com/PabloGalante/mawazo/internal/observability"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "mawazo",
	Short:         "Journal service with on-device style AI assistance",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if err := observability.Init(loaded.LogLevel, loaded.LogFormat); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		observability.Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
