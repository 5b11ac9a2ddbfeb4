package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taxcollection/internal/adapters"
	"taxcollection/internal/adapters/sink"
	"taxcollection/internal/adapters/tui"
	"taxcollection/internal/config"
	"taxcollection/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalogFlag := flag.String("catalog", cfg.CatalogPath, "catalog file (.json, .yaml)")
	dbFlag := flag.String("db", cfg.DatabasePath, "SQLite catalog database")
	flag.Parse()
	cfg.CatalogPath = config.ExpandHome(*catalogFlag)
	cfg.DatabasePath = config.ExpandHome(*dbFlag)

	// The alternate screen owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	source, closeSource, err := adapters.OpenCatalogSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeSource()

	var clipboard ports.PayloadSink
	if clip := sink.NewClipboard(); clip.Available() {
		clipboard = clip
	}

	app := tui.NewApp(source, sink.NewLog(slog.Default()), clipboard)
	slog.Info("tax form started", "catalog", source.Describe())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	payload := app.Payload()
	if payload == nil {
		return
	}
	fmt.Fprintln(os.Stderr, app.Result())
	if err := sink.NewWriter(os.Stdout).Submit(context.Background(), *payload); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
