package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Re-export stealth types and functions for engine consumers.
type BrowserClient = stealth.BrowserClient

func ChromeHeaders() map[string]string { return stealth.ChromeHeaders() }
func RandomUserAgent() string          { return stealth.RandomUserAgent() }

// GetPage fetches a page body, preferring the stealth BrowserClient when one is
// configured. YouTube serves consent walls and captcha pages more readily to
// non-browser TLS fingerprints. Non-200 responses are returned as errors.
func GetPage(ctx context.Context, pageURL string, headers map[string]string) ([]byte, error) {
	if cfg.BrowserClient != nil {
		h := ChromeHeaders()
		for k, v := range headers {
			h[k] = v
		}
		data, _, status, err := cfg.BrowserClient.Do(http.MethodGet, pageURL, h, nil)
		if err != nil {
			return nil, fmt.Errorf("browser fetch: %w", err)
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("browser fetch: HTTP %d", status)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", RandomUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
}
