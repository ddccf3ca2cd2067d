// Package tui renders the transcript form in a terminal with bubbletea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anatolykoptev/go_transcript/internal/form"
)

const (
	textTitle   = "YouTube Transcript Extractor"
	textCaption = "Paste a YouTube link and press Enter to get its transcript."
	textHelp    = "enter: get transcript | pgup/pgdn: scroll | esc/ctrl+c: quit"

	defaultWidth  = 80
	defaultHeight = 24
	// rows used by everything except the transcript viewport
	chromeHeight = 14
)

// Submitter is the form controller the model drives.
type Submitter interface {
	Submit(ctx context.Context, rawURL string) form.Result
	OutputLabel() string
}

// Model is the terminal form state.
type Model struct {
	form    Submitter
	ctx     context.Context
	input   textinput.Model
	output  viewport.Model
	busy    bool
	pending []form.Banner // shown while a lookup runs
	result  *form.Result
	width   int
}

// NewModel creates the terminal form. ctx bounds every lookup.
func NewModel(ctx context.Context, f Submitter) Model {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=..."
	ti.Prompt = "Enter YouTube Video URL: "
	ti.CharLimit = 512
	ti.Width = defaultWidth - len(ti.Prompt) - 2
	ti.Focus()

	vp := viewport.New(defaultWidth-4, defaultHeight-chromeHeight)

	return Model{form: f, ctx: ctx, input: ti, output: vp, width: defaultWidth}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
