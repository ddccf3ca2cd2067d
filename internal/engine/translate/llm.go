package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const llmSystemPrompt = `You are a professional translator of video transcripts.
Translate the user's text from %s to %s.
Keep the line structure: one output line per input line, same order.
Output only the translation, no commentary, no code fences.`

// LLM translates with an OpenAI-compatible chat model through go-kit/llm.
type LLM struct {
	complete func(ctx context.Context, system, prompt string) (string, error)
}

// NewLLM wraps a configured go-kit LLM client.
func NewLLM(c *llm.Client) *LLM {
	return &LLM{complete: func(ctx context.Context, system, prompt string) (string, error) {
		return c.Complete(ctx, system, prompt)
	}}
}

// Translate implements engine.Translator.
func (l *LLM) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	engine.IncrTranslateCalls()

	system := fmt.Sprintf(llmSystemPrompt, languageLabel(src), languageLabel(dst))
	out, err := l.complete(ctx, system, text)
	if err != nil {
		engine.IncrTranslateErrors()
		return "", fmt.Errorf("llm translate: %w", err)
	}
	out = stripFences(out)
	if out == "" {
		engine.IncrTranslateErrors()
		return "", errors.New("llm translate: empty response")
	}
	return out, nil
}

// languageLabel renders "Hindi (hi)" for prompts.
func languageLabel(code string) string {
	name := engine.LanguageName(code)
	if name == code {
		return code
	}
	return name + " (" + code + ")"
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], " \t") {
		s = s[nl+1:] // language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
