package tui

import (
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/form"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(textTitle))
	b.WriteString("\n")
	b.WriteString(CaptionStyle.Render(textCaption))
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for _, bn := range m.banners() {
		b.WriteString(bannerStyle(string(bn.Level)).Render(bn.Text))
		b.WriteString("\n")
	}

	if !m.busy && m.result != nil && m.result.HasTranscript {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render(m.form.OutputLabel()))
		b.WriteString("\n")
		b.WriteString(BoxStyle.Render(m.output.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(textHelp))
	b.WriteString("\n")
	return b.String()
}

func (m Model) banners() []form.Banner {
	if m.busy {
		return m.pending
	}
	if m.result != nil {
		return m.result.Banners
	}
	return nil
}
