package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAI translates with the OpenAI chat completions API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a translator. baseURL may point at any compatible server.
func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	conf := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	conf.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAI{client: openai.NewClientWithConfig(conf), model: model}
}

// Translate implements engine.Translator.
func (o *OpenAI) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	engine.IncrTranslateCalls()

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(llmSystemPrompt, languageLabel(src), languageLabel(dst)),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		engine.IncrTranslateErrors()
		return "", fmt.Errorf("openai translate: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		engine.IncrTranslateErrors()
		return "", errors.New("openai translate: empty response")
	}
	slog.Debug("openai translation done",
		slog.String("model", o.model),
		slog.Duration("duration", time.Since(start)),
		slog.Int("total_tokens", resp.Usage.TotalTokens))
	return stripFences(resp.Choices[0].Message.Content), nil
}
