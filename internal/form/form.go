// Package form implements the single-page "paste a URL, press the button"
// flow shared by the web, terminal and MCP surfaces.
package form

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/resolver"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
)

// Banner messages.
const (
	MsgEmptyURL   = "Please enter a valid YouTube URL."
	MsgInvalidURL = "Invalid YouTube URL. Please check and try again."
	MsgFetching   = "Fetching transcript... Please wait."

	unknownTitle    = "Unknown_Video"
	titleMaxRunes   = 25
	savedFileSuffix = "_transcript.txt"
)

// Level is a banner severity.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Banner is a transient status line shown above the output.
type Banner struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Result is what a surface renders after one submission.
type Result struct {
	Banners       []Banner
	VideoID       string
	Transcript    string // Outcome.Message(); shown in the read-only output
	HasTranscript bool   // output area is shown
	Outcome       *resolver.Outcome
	SavedPath     string
}

// Resolver is the transcript lookup the controller drives.
type Resolver interface {
	Resolve(ctx context.Context, videoID string) resolver.Outcome
}

// Options configures the optional save step.
type Options struct {
	Save    bool
	SaveDir string
	Titles  engine.TitleFetcher // nil = every file is named Unknown_Video
}

// Controller validates input, runs the resolver and optionally saves the result.
type Controller struct {
	resolver Resolver
	primary  string
	opts     Options
}

// New creates a controller. primary labels the output area and save banner.
func New(r Resolver, primary string, opts Options) *Controller {
	if opts.SaveDir == "" {
		opts.SaveDir = "."
	}
	return &Controller{resolver: r, primary: primary, opts: opts}
}

// OutputLabel is the caption above the transcript area.
func (c *Controller) OutputLabel() string {
	return engine.LanguageName(c.primary) + " Transcript:"
}

// Submit handles one button press.
func (c *Controller) Submit(ctx context.Context, rawURL string) Result {
	engine.IncrFormSubmissions()

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		engine.IncrFormRejected()
		return Result{Banners: []Banner{{LevelWarning, MsgEmptyURL}}}
	}
	id, ok := sources.ExtractVideoID(rawURL)
	if !ok {
		engine.IncrFormRejected()
		return Result{Banners: []Banner{{LevelError, MsgInvalidURL}}}
	}

	res := Result{
		Banners: []Banner{{LevelInfo, MsgFetching}},
		VideoID: id,
	}
	var out resolver.Outcome
	_ = engine.TrackOperation(ctx, "resolve_transcript", func(ctx context.Context) error {
		out = c.resolver.Resolve(ctx, id)
		return out.Err
	})
	res.Outcome = &out
	res.Transcript = out.Message()
	res.HasTranscript = true

	if c.opts.Save {
		path, err := c.save(ctx, id, res.Transcript)
		if err != nil {
			slog.Warn("save transcript failed", slog.String("id", id), slog.Any("error", err))
			res.Banners = append(res.Banners, Banner{LevelError, "Could not save transcript: " + err.Error()})
		} else {
			res.SavedPath = path
			res.Banners = append(res.Banners, Banner{LevelSuccess,
				fmt.Sprintf("%s transcript saved as: %s", engine.LanguageName(c.primary), filepath.Base(path))})
		}
	}
	return res
}

// save writes text to <title>_transcript.txt in the save dir.
func (c *Controller) save(ctx context.Context, videoID, text string) (string, error) {
	title := unknownTitle
	if c.opts.Titles != nil {
		t, err := c.opts.Titles.VideoTitle(ctx, videoID)
		if err != nil {
			slog.Debug("video title lookup failed", slog.String("id", videoID), slog.Any("error", err))
		} else if t = engine.SanitizeFilename(t, titleMaxRunes); t != "" {
			title = t
		}
	}
	path := filepath.Join(c.opts.SaveDir, title+savedFileSuffix)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	engine.IncrTranscriptsSaved()
	slog.Info("transcript saved", slog.String("id", videoID), slog.String("path", path))
	return path, nil
}
