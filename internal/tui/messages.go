package tui

import "github.com/anatolykoptev/go_transcript/internal/form"

// resultMsg carries a finished submission back to Update.
type resultMsg struct {
	Result form.Result
}
