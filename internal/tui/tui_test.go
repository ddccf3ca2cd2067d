package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_transcript/internal/engine/resolver"
	"github.com/anatolykoptev/go_transcript/internal/form"
)

type stubResolver struct {
	out   resolver.Outcome
	calls []string
}

func (s *stubResolver) Resolve(_ context.Context, id string) resolver.Outcome {
	s.calls = append(s.calls, id)
	return s.out
}

func typeURL(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

// press sends Enter and runs the returned command synchronously.
func press(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	next, _ = next.Update(cmd())
	return next.(Model)
}

func TestSubmitShowsTranscript(t *testing.T) {
	s := &stubResolver{out: resolver.Outcome{Kind: resolver.KindPrimary, Text: "a\nb", Language: "gu"}}
	m := NewModel(context.Background(), form.New(s, "gu", form.Options{}))

	m = typeURL(t, m, "https://youtu.be/XYZ?t=5")
	m = press(t, m)

	assert.Equal(t, []string{"XYZ"}, s.calls)
	assert.False(t, m.busy)
	view := m.View()
	assert.Contains(t, view, "Gujarati Transcript:")
	assert.Contains(t, view, "a")
	assert.Contains(t, view, form.MsgFetching)
}

func TestSubmitEmptyShowsWarning(t *testing.T) {
	s := &stubResolver{}
	m := NewModel(context.Background(), form.New(s, "gu", form.Options{}))

	m = press(t, m)

	assert.Empty(t, s.calls)
	view := m.View()
	assert.Contains(t, view, form.MsgEmptyURL)
	assert.False(t, strings.Contains(view, "Transcript:"))
}

func TestSubmitInvalidShowsError(t *testing.T) {
	s := &stubResolver{}
	m := NewModel(context.Background(), form.New(s, "gu", form.Options{}))

	m = typeURL(t, m, "not a url")
	m = press(t, m)

	assert.Empty(t, s.calls)
	assert.Contains(t, m.View(), form.MsgInvalidURL)
}

func TestEnterWhileBusyIsIgnored(t *testing.T) {
	m := NewModel(context.Background(), form.New(&stubResolver{}, "gu", form.Options{}))
	m = typeURL(t, m, "https://youtu.be/XYZ")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m = next.(Model)
	assert.True(t, m.busy)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(context.Background(), form.New(&stubResolver{}, "gu", form.Options{}))
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
