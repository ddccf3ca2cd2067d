// Package toolutil provides shared helper functions for go_transcript MCP tools.
package toolutil

import (
	"errors"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
)

var (
	ErrURLRequired = errors.New("url is required")
	ErrInvalidURL  = errors.New("invalid YouTube URL: expected watch?v=, youtu.be/ or youtube.com/live/")
)

// VideoID trims rawURL and extracts the video ID, failing the same way the
// form does for empty and unrecognised input.
func VideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrURLRequired
	}
	id, ok := sources.ExtractVideoID(rawURL)
	if !ok {
		return "", ErrInvalidURL
	}
	return id, nil
}
