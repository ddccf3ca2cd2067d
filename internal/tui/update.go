package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anatolykoptev/go_transcript/internal/form"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil
	case resultMsg:
		return m.handleResult(msg), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		raw := m.input.Value()
		if strings.TrimSpace(raw) != "" {
			m.busy = true
			m.pending = []form.Banner{{Level: form.LevelInfo, Text: form.MsgFetching}}
		}
		return m, submitCmd(m.ctx, m.form, raw)
	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 10)
	m.output.Width = max(msg.Width-4, 10)
	m.output.Height = max(msg.Height-chromeHeight, 3)
	return m
}

func (m Model) handleResult(msg resultMsg) Model {
	m.busy = false
	m.pending = nil
	res := msg.Result
	m.result = &res
	if res.HasTranscript {
		m.output.SetContent(res.Transcript)
		m.output.GotoTop()
	}
	return m
}
