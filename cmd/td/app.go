package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jacksmith/td/internal/logging"
	"github.com/jacksmith/td/internal/model"
	"github.com/jacksmith/td/internal/ops"
	"github.com/jacksmith/td/internal/storage"
)

// closeTimeout bounds the final flush of pending writes.
const closeTimeout = 5 * time.Second

// app wires the store, config, logger and session for one invocation.
type app struct {
	store   *storage.Storage
	cfg     *storage.Config
	logger  *logging.FileLogger
	session *ops.Session
	writer  *ops.Writer
}

// resolveDataDir returns --dir, else $TD_DIR, else ~/.td.
func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	if dir := os.Getenv("TD_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate data directory: %w", err)
	}
	return filepath.Join(home, ".td"), nil
}

// openApp loads the task list and starts the background writer.
// A missing, unreadable or malformed list starts empty.
func openApp() (*app, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	opts := logging.DefaultOptions()
	opts.Level, err = logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if debug {
		opts.Level = log.DebugLevel
	}
	logger, err := logging.OpenFile(dir, opts)
	if err != nil {
		return nil, err
	}

	ids, err := model.NewIDGenerator(cfg.IDScheme)
	if err != nil {
		logger.Close()
		return nil, err
	}

	tasks, err := ops.LoadTasks(store, cfg.StorageKey)
	if err != nil {
		logger.Warn("starting with an empty list", "key", cfg.StorageKey, "err", err)
	} else {
		logger.Debug("loaded", "key", cfg.StorageKey, "tasks", len(tasks))
	}

	session := ops.NewSession(tasks, ops.SessionOptions{
		IDs:              ids,
		RejectBlankEdits: cfg.RejectBlankEdits,
		Logger:           logger.Logger,
	})
	writer := ops.NewWriter(store, cfg.StorageKey, logger.Logger)
	session.Subscribe(writer.Schedule)

	return &app{
		store:   store,
		cfg:     cfg,
		logger:  logger,
		session: session,
		writer:  writer,
	}, nil
}

// Close flushes pending writes and closes the log. It returns the error of
// the last write, if that write failed.
func (a *app) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	err := a.writer.Close(ctx)
	if err == nil {
		if werr := a.writer.Err(); werr != nil {
			err = fmt.Errorf("failed to save tasks: %w", werr)
		}
	}
	a.logger.Close()
	return err
}
