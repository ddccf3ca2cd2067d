// transcript-tui runs the transcript form in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/anatolykoptev/go-kit/env"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anatolykoptev/go_transcript/internal/app"
	"github.com/anatolykoptev/go_transcript/internal/tui"
)

func main() {
	app.LoadDotEnv()

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := env.Str("TUI_LOG_FILE", ""); path != "" {
		f, err := tea.LogToFile(path, "transcript-tui")
		if err != nil {
			fmt.Fprintln(os.Stderr, "log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	app.SetupLogging(logOut)

	controller, err := app.Build(app.ConfigFromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, "init failed:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(tui.NewModel(ctx, controller), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("tui failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
