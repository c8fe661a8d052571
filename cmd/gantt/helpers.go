package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/driftboard/gantt"
)

// getWorkspaceDir returns the --workspace flag or the current directory.
func getWorkspaceDir() (string, error) {
	if workspaceFlag != "" {
		return filepath.Abs(workspaceFlag)
	}
	return os.Getwd()
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the host's structured logger. Sink failures and ingest
// activity go here; board state itself reports through errors and events.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		l = slog.LevelDebug
	case "WARN":
		l = slog.LevelWarn
	case "ERROR":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return slog.New(handler)
}

// openBoard loads config and board for the current workspace.
func openBoard() (*gantt.Board, *Config, *slog.Logger) {
	workspaceDir, err := getWorkspaceDir()
	if err != nil {
		fatal("Failed to get workspace directory: %v", err)
	}

	cfg, err := LoadConfig(workspaceDir)
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	policy, err := cfg.Policy()
	if err != nil {
		fatal("Bad calendar config: %v", err)
	}

	board, err := gantt.NewBoardWithPersistence(workspaceDir, policy)
	if err != nil {
		fatal("Failed to open board: %v", err)
	}
	board.SetCollaborators(cfg.Directory())

	return board, cfg, newLogger(cfg.Logging.Level)
}

// checkMutation handles the outcome of a board mutation: snapshot-save
// failures are logged and tolerated (the in-memory state is authoritative
// until the next successful save), anything else is fatal.
func checkMutation(logger *slog.Logger, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gantt.ErrSnapshotSave) {
		logger.Warn("snapshot save failed", "error", err)
		return
	}
	fatal("%v", err)
}
