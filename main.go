package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, err := NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Close()

	repo, err := NewRepo(cfg.DBPath())
	if err != nil {
		logger.WithError(err).Errorw("failed to open storage", "path", cfg.DBPath())
		return 1
	}
	defer repo.Close()

	store := NewStore(repo, logger.WithComponent("store"))
	app := NewApp(store, NewTerminalPrompter(os.Stdin, os.Stdout), os.Stdout, cfg.Year)

	if err := SetupCommands(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
