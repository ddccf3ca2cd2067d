package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

func TestOpenAITranslate(t *testing.T) {
	var req struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"નમસ્તે"},"finish_reason":"stop"}],"usage":{"total_tokens":12}}`)
	}))
	defer srv.Close()

	o := NewOpenAI("test-key", srv.URL+"/v1", "")
	out, err := o.Translate(context.Background(), "नमस्ते", "hi", "gu")
	require.NoError(t, err)
	assert.Equal(t, "નમસ્તે", out)
	assert.Equal(t, defaultOpenAIModel, req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "नमस्ते", req.Messages[1].Content)
}

func TestOpenAITranslate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"x","choices":[]}`)
	}))
	defer srv.Close()

	_, err := NewOpenAI("k", srv.URL+"/v1", "m").Translate(context.Background(), "x", "hi", "gu")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     engine.Config
		wantErr bool
	}{
		{"default google", engine.Config{}, false},
		{"google", engine.Config{Translator: engine.TranslatorGoogle}, false},
		{"llm without client", engine.Config{Translator: engine.TranslatorLLM}, true},
		{"openai without key", engine.Config{Translator: engine.TranslatorOpenAI}, true},
		{"openai", engine.Config{Translator: engine.TranslatorOpenAI, OpenAIAPIKey: "k"}, false},
		{"unknown", engine.Config{Translator: "deepl"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, tr)
		})
	}
}
