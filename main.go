package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/briangreenhill/ftracker/internal/activity"
	"github.com/briangreenhill/ftracker/internal/config"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		slog.Error("Error loading settings", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel}))

	if err := run(os.Stdout, os.Args[1:], logger, settings); err != nil {
		logger.Error("Error running ftracker", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, logger *slog.Logger, settings config.Settings) error {
	cli := activity.NewCLI(w, logger, settings)

	if err := cli.Run(args); err != nil {
		return err
	}

	return nil
}
