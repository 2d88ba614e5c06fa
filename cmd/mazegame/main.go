package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/mazegame/internal/builder"
	"github.com/lawnchairsociety/mazegame/internal/config"
	"github.com/lawnchairsociety/mazegame/internal/game"
	"github.com/lawnchairsociety/mazegame/internal/logger"
	"github.com/lawnchairsociety/mazegame/internal/text"
)

func main() {
	configFile := flag.String("config", "data/mazegame.yaml", "Path to game config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	textFile := flag.String("text", "", "Path to text YAML file (overrides the config file)")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, err := logger.LoadConfig(*loggingConfig)
	if initErr := logger.Initialize(logConfig); initErr != nil {
		logConfig.FileEnabled = false
		logger.Initialize(logConfig)
		logger.Warning("Log file disabled", "path", logConfig.FilePath, "error", initErr)
	}
	if err != nil {
		logger.Warning("Using default logging config", "path", *loggingConfig, "error", err)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Using default game config", "path", *configFile, "error", err)
	}

	textPath := cfg.TextFile
	if *textFile != "" {
		textPath = *textFile
	}
	if textPath != "" {
		if _, statErr := os.Stat(textPath); statErr == nil {
			if err := text.Initialize(textPath); err != nil {
				logger.Warning("Using default messages", "path", textPath, "error", err)
			}
		}
	}

	if err := run(cfg); err != nil {
		logger.Error("Maze demo failed", "error", err)
		fmt.Fprintf(os.Stderr, "mazegame: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.GameConfig) error {
	m, err := game.CreateMaze(builder.NewStandardBuilder())
	if err != nil {
		return err
	}
	return game.Tour(m, game.NewNarrator(os.Stdout, cfg.Output.Color))
}
