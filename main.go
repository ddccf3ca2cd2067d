// go_transcript: YouTube transcript MCP server.
//
// Exposes two MCP tools: youtube_transcript and youtube_video_id.
// The same lookup is available as a web form (cmd/transcript-web) and a
// terminal form (cmd/transcript-tui).
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_transcript/internal/app"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/toolserver"
)

var version = "dev"

func main() {
	app.LoadDotEnv()
	app.SetupLogging(os.Stderr)
	mcpPort := env.Str("MCP_PORT", "8893")

	controller, err := app.Build(app.ConfigFromEnv())
	if err != nil {
		slog.Error("init failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("starting go_transcript", slog.String("port", mcpPort))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_transcript",
		Version: version,
	}, nil)

	toolserver.RegisterTools(server, controller)
	slog.Info("tools registered", slog.Int("count", toolserver.ToolCount))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_transcript",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 300 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}
