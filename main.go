package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-deluxe/internal"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. The terminal UI owns stdout, so without a log file its logs are dropped.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var out io.Writer = os.Stdout
	closeLog := func() {}

	switch {
	case conf.LogFile != "":
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		out = file
		closeLog = func() { _ = file.Close() }
	case conf.Frontend == config.FrontendTUI:
		out = io.Discard
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog
}
