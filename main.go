package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-sim/internal"
	"github.com/rocketscienceinc/tictactoe-sim/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the simulation.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config, command line flags override the file.
func initConfig() *config.Config {
	path := flag.String("config", "./config.yml", "path to the config file")
	gameName := flag.String("game", "", "game variant to simulate (tictactoe, gomoku)")
	iterations := flag.Int("n", -1, "number of games to play")
	workers := flag.Int("workers", 0, "number of simulation goroutines")
	flag.Parse()

	conf := config.MustLoad(*path)

	if *gameName != "" {
		conf.Simulation.Game = *gameName
	}
	if *iterations >= 0 {
		conf.Simulation.Iterations = *iterations
	}
	if *workers > 0 {
		conf.Simulation.Workers = *workers
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
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

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
