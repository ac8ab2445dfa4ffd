// Package main — терминальная витрина Saya.
//
// Задержки оплаты берутся из конфига, если задан CONFIG_PATH; иначе
// используются значения по умолчанию. Лог пишется в файл SAYA_TUI_LOG.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/magabrotheeeer/saya-shop/internal/config"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/tui"
)

func main() {
	logger, closeLog, err := setupLogger(os.Getenv("SAYA_TUI_LOG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	opts := tui.Options{Log: logger}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			logger.Warn("config is not loaded, using defaults", sl.Err(err))
		} else {
			opts.ProcessingDelay = cfg.ProcessingDelay
			opts.SuccessDelay = cfg.SuccessDelay
		}
	}

	if _, err := tea.NewProgram(tui.New(opts), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("tui stopped with error", sl.Err(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "saya-tui")
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
