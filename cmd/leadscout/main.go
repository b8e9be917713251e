// Command leadscout runs lead searches from the terminal.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/octobees/leadscout/internal/config"
	"github.com/octobees/leadscout/internal/llm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	root := newRootCmd(cfg, llm.NewGenAIFactory(llm.WithTimeout(cfg.Models.Timeout)), logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
