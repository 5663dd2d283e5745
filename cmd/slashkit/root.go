package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/sglre6355/slashkit/internal/bot"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slashkit",
	Short: "Runs a Discord bot built from slash command modules",
	Long: `slashkit connects to Discord, serves the slash commands, buttons and select
menus declared by its modules and deploys them to the configured guilds.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	RunE:         runBot,
}

func init() {
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(schemaCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and installs the default logger.
func setup() (*bot.Config, error) {
	return setupWith(bot.LoadConfig)
}

func setupWith(load func() (*bot.Config, error)) (*bot.Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return cfg, nil
}

// newLogger builds a slog logger backed by charmbracelet/log.
func newLogger(cfg bot.LogConfig) (*slog.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}

	opts := log.Options{
		Level:           level,
		ReportTimestamp: true,
	}
	if cfg.Format == "json" {
		opts.Formatter = log.JSONFormatter
	}

	return slog.New(log.NewWithOptions(os.Stderr, opts)), nil
}

func runBot(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	slog.Info("starting slashkit", "version", version)

	b := bot.NewBot(cfg)
	b.LoadModules()

	if err := b.Start(); err != nil {
		// Close whatever was opened before the failure
		_ = b.Stop()
		return fmt.Errorf("failed to start bot: %w", err)
	}

	// Wait for shutdown signal
	<-cmd.Context().Done()

	slog.Info("received termination signal, shutting down")
	if err := b.Stop(); err != nil {
		slog.Error("failed to shutdown", "error", err)
	}

	slog.Info("completed bot shutdown")
	return nil
}
