package webui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_transcript/internal/engine/resolver"
	"github.com/anatolykoptev/go_transcript/internal/form"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubResolver struct {
	out   resolver.Outcome
	calls []string
}

func (s *stubResolver) Resolve(_ context.Context, id string) resolver.Outcome {
	s.calls = append(s.calls, id)
	return s.out
}

func postForm(t *testing.T, h http.Handler, raw string) *httptest.ResponseRecorder {
	t.Helper()
	body := url.Values{"url": {raw}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGetForm(t *testing.T) {
	r := NewRouter(form.New(&stubResolver{}, "gu", form.Options{}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "YouTube Transcript Extractor")
	assert.Contains(t, body, "Get Transcript")
	assert.NotContains(t, body, "<textarea")
	assert.NotContains(t, body, `class="banner`)
}

func TestPostForm(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantBanner   string
		wantOutput   bool
		wantResolved []string
	}{
		{"empty", "", "banner-warning\">Please enter a valid YouTube URL.", false, nil},
		{"invalid", "https://example.com/x", "banner-error\">Invalid YouTube URL. Please check and try again.", false, nil},
		{"ok", "https://www.youtube.com/watch?v=ABC123&t=5", "banner-info\">Fetching transcript... Please wait.", true, []string{"ABC123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &stubResolver{out: resolver.Outcome{Kind: resolver.KindPrimary, Text: "a\nb <i>", Language: "gu"}}
			w := postForm(t, NewRouter(form.New(s, "gu", form.Options{})), tt.input)

			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, tt.wantBanner)
			assert.Equal(t, tt.wantResolved, s.calls)
			if tt.wantOutput {
				assert.Contains(t, body, "Gujarati Transcript:")
				assert.Contains(t, body, "a\nb &lt;i&gt;</textarea>")
			} else {
				assert.NotContains(t, body, "<textarea")
			}
		})
	}
}

func TestHealth(t *testing.T) {
	r := NewRouter(form.New(&stubResolver{}, "gu", form.Options{}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
