package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Segment is one timed caption unit. Start and Duration are in seconds.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// JoinSegments concatenates segment texts in order, one per line.
func JoinSegments(segs []Segment) string {
	lines := make([]string, len(segs))
	for i, s := range segs {
		lines[i] = s.Text
	}
	return strings.Join(lines, "\n")
}

// TranscriptFetcher retrieves the caption segments of a video in the first
// available language of langs.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string, langs []string) ([]Segment, error)
}

// Translator translates text from src to dst language codes.
type Translator interface {
	Translate(ctx context.Context, text, src, dst string) (string, error)
}

// TitleFetcher looks up a video's title.
type TitleFetcher interface {
	VideoTitle(ctx context.Context, videoID string) (string, error)
}

// Provider failure conditions the resolver distinguishes.
var (
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrNoTranscriptFound   = errors.New("no transcript found")
)

// NoTranscriptFoundError reports that none of the requested languages has a
// caption track. It matches ErrNoTranscriptFound with errors.Is.
type NoTranscriptFoundError struct {
	VideoID   string
	Requested []string
	Available []string
}

func (e *NoTranscriptFoundError) Error() string {
	return fmt.Sprintf("no transcript found for %s in %v (available: %v)",
		e.VideoID, e.Requested, e.Available)
}

func (e *NoTranscriptFoundError) Is(target error) bool {
	return target == ErrNoTranscriptFound
}
