package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const (
	googleTranslateURL = "https://translate.googleapis.com/translate_a/single"
	// googleChunkLimit keeps each request under the endpoint's ~5000 char input cap.
	googleChunkLimit = 4500
)

// Google translates through the keyless web endpoint used by browser extensions.
type Google struct {
	endpoint   string
	chunkLimit int
}

// NewGoogle returns a Google translator. Empty endpoint selects the public one.
func NewGoogle(endpoint string) *Google {
	if endpoint == "" {
		endpoint = googleTranslateURL
	}
	return &Google{endpoint: endpoint, chunkLimit: googleChunkLimit}
}

// Translate implements engine.Translator. Long input is sent in line-aligned chunks.
func (g *Google) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	engine.IncrTranslateCalls()

	var sb strings.Builder
	for _, chunk := range splitChunks(text, g.chunkLimit) {
		out, err := g.translateChunk(ctx, chunk, src, dst)
		if err != nil {
			engine.IncrTranslateErrors()
			return "", err
		}
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

func (g *Google) translateChunk(ctx context.Context, text, src, dst string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", src)
	q.Set("tl", dst)
	q.Set("dt", "t")
	form := url.Values{"q": {text}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"?"+q.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")
	req.Header.Set("User-Agent", engine.UserAgentChrome)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("google translate: HTTP %d: %s", resp.StatusCode, snippet)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		return "", fmt.Errorf("google translate: read: %w", err)
	}
	return parseGoogleResponse(body)
}

// parseGoogleResponse concatenates the translated sentences of a
// translate_a/single response: [[["dst","src",...],...],null,"src-lang",...].
func parseGoogleResponse(body []byte) (string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("google translate: decode: %w", err)
	}
	if len(raw) == 0 {
		return "", errors.New("google translate: empty response")
	}
	var sentences [][]any
	if err := json.Unmarshal(raw[0], &sentences); err != nil {
		return "", fmt.Errorf("google translate: decode sentences: %w", err)
	}
	var sb strings.Builder
	for _, s := range sentences {
		if len(s) == 0 {
			continue
		}
		if part, ok := s[0].(string); ok {
			sb.WriteString(part)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("google translate: no translated text in response")
	}
	return sb.String(), nil
}

// splitChunks splits text at line boundaries into pieces of at most limit bytes.
// Lines longer than limit are cut at rune boundaries.
func splitChunks(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	var chunks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
	}
	for _, line := range strings.Split(text, "\n") {
		for len(line) > limit {
			flush()
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		extra := len(line)
		if cur.Len() > 0 {
			extra++
		}
		if cur.Len()+extra > limit {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	flush()
	return chunks
}
