package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// submitCmd runs one form submission off the UI loop.
func submitCmd(ctx context.Context, f Submitter, raw string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{Result: f.Submit(ctx, raw)}
	}
}
