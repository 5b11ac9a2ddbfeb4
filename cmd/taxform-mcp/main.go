package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taxcollection/internal/adapters"
	mcpadapter "taxcollection/internal/adapters/mcp"
	"taxcollection/internal/adapters/sink"
	"taxcollection/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("taxform-mcp: %v", err)
	}

	catalogFlag := flag.String("catalog", cfg.CatalogPath, "catalog file (.json, .yaml)")
	dbFlag := flag.String("db", cfg.DatabasePath, "SQLite catalog database")
	flag.Parse()
	cfg.CatalogPath = config.ExpandHome(*catalogFlag)
	cfg.DatabasePath = config.ExpandHome(*dbFlag)

	// stdout carries the protocol
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	source, closeSource, err := adapters.OpenCatalogSource(cfg)
	if err != nil {
		log.Fatalf("taxform-mcp: %v", err)
	}
	defer closeSource()

	mcpServer := server.NewMCPServer(
		"taxform-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, source)
	mcpadapter.RegisterWriteTools(mcpServer, source, sink.NewLog(slog.Default()))

	slog.Info("serving tax tools", "catalog", source.Describe())
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("taxform-mcp: %v", err)
	}
}
