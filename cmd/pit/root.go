package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depositodopitty/pit/internal/config"
	"github.com/depositodopitty/pit/internal/logger"
)

var version = "1.0.0"

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pit",
	Short: "Depósito do Pitty admin dashboard",
	Long: `pit serves the Depósito do Pitty admin dashboard and, for local
development, a reference implementation of the REST API it consumes.

Configuration comes from the environment (a .env file is loaded when present).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if err := logger.Setup(c.GetLoggerConfig()); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		cfg = c
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		l := logger.WithComponent("cmd")
		l.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
