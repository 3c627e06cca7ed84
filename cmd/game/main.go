package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/minigolf/internal/config"
	"github.com/tomz197/minigolf/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so that main can exit non-zero after
// the terminal is restored and the log file is closed.
func run() error {
	params, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := openLogger(config.GetEnv("GOLF_LOG_FILE", ""))
	if err != nil {
		return err
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, params, loop.Options{Logger: logger}); err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}
	return nil
}

// openLogger returns a debug logger appending to path, or a discarding one
// when path is empty; the terminal belongs to the game. The returned func
// closes the file.
func openLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "golf",
	})
	return logger, f.Close, nil
}
