package sources

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// YouTube transcript fetching.
// Primary:  scrape watch page ytInitialPlayerResponse → captionTracks → timedtext XML
// Fallback: ANDROID Innertube /player → captionTracks, used when the watch page
//           cannot be read at all. Classified failures (disabled, not found,
//           unavailable) are final.

// ErrTooManyRequests means YouTube answered with a captcha page instead of the video.
var ErrTooManyRequests = errors.New("youtube is receiving too many requests from this IP and requires a captcha")

// VideoUnavailableError is returned when the player reports a non-playable video.
type VideoUnavailableError struct {
	VideoID string
	Status  string
	Reason  string
}

func (e *VideoUnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("video %s is unavailable: %s", e.VideoID, e.Reason)
	}
	return fmt.Sprintf("video %s is unavailable (%s)", e.VideoID, e.Status)
}

// YouTube fetches captions from youtube.com. The zero value is not usable;
// call NewYouTube.
type YouTube struct {
	watchURL  string // prefix, video ID is appended
	playerURL string
}

// NewYouTube returns a provider talking to the public youtube.com endpoints.
func NewYouTube() *YouTube {
	return &YouTube{watchURL: ytWatchURL, playerURL: ytInnertubeURL}
}

// ytInitialPlayerResponseMarker marks the start of the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

// Fetch implements engine.TranscriptFetcher.
func (y *YouTube) Fetch(ctx context.Context, videoID string, langs []string) ([]engine.Segment, error) {
	engine.IncrTranscriptRequests()

	pr, err := y.playerFromWatchPage(ctx, videoID)
	if err != nil {
		slog.Warn("youtube: watch page failed, trying android player",
			slog.String("id", videoID), slog.Any("err", err))
		engine.IncrPlayerFallbacks()

		var perr error
		pr, perr = y.playerFromAndroid(ctx, videoID)
		if perr != nil {
			return nil, errors.Join(err, perr)
		}
	}

	tracks, err := captionTracks(videoID, pr)
	if err != nil {
		return nil, err
	}
	track, err := findTrack(videoID, tracks, langs)
	if err != nil {
		return nil, err
	}
	slog.Debug("youtube: caption track selected",
		slog.String("id", videoID),
		slog.String("lang", track.LanguageCode),
		slog.String("kind", track.Kind))
	return fetchTimedText(ctx, track.BaseURL)
}

// watchPage loads the raw watch page HTML.
func (y *YouTube) watchPage(ctx context.Context, videoID string) ([]byte, error) {
	body, err := engine.GetPage(ctx, y.watchURL+videoID, nil)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	return body, nil
}

// playerFromWatchPage extracts ytInitialPlayerResponse from the watch page.
func (y *YouTube) playerFromWatchPage(ctx context.Context, videoID string) (*playerResp, error) {
	body, err := y.watchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return parseWatchPage(body)
}

func parseWatchPage(body []byte) (*playerResp, error) {
	idx := strings.Index(string(body), ytInitialPlayerResponseMarker)
	if idx < 0 {
		if strings.Contains(string(body), `class="g-recaptcha"`) {
			return nil, ErrTooManyRequests
		}
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}
	var pr playerResp
	if err := json.Unmarshal(jsonData, &pr); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &pr, nil
}

// playerFromAndroid uses the ANDROID Innertube /player endpoint.
func (y *YouTube) playerFromAndroid(ctx context.Context, videoID string) (*playerResp, error) {
	data, err := postPlayerANDROID(ctx, y.playerURL, videoID)
	if err != nil {
		return nil, err
	}
	var pr playerResp
	if err := json.Unmarshal(data, &pr); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &pr, nil
}

// captionTracks classifies a player response into its tracks or a provider error.
func captionTracks(videoID string, pr *playerResp) ([]captionTrack, error) {
	var tracks []captionTrack
	if pr.Captions != nil {
		tracks = pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	}
	if len(tracks) > 0 {
		return tracks, nil
	}
	if ps := pr.PlayabilityStatus; ps != nil && ps.Status != "" && ps.Status != "OK" {
		return nil, &VideoUnavailableError{VideoID: videoID, Status: ps.Status, Reason: ps.Reason}
	}
	return nil, engine.ErrTranscriptsDisabled
}

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// findTrack picks the caption track for the first requested language that has one,
// preferring manually created tracks over auto-generated ("asr") ones.
func findTrack(videoID string, tracks []captionTrack, langs []string) (captionTrack, error) {
	blocked := false
	for _, lang := range langs {
		var manual, asr *captionTrack
		for i := range tracks {
			t := &tracks[i]
			if t.LanguageCode != lang {
				continue
			}
			if needsPoToken(t.BaseURL) {
				blocked = true
				continue
			}
			if t.Kind == "asr" {
				if asr == nil {
					asr = t
				}
			} else if manual == nil {
				manual = t
			}
		}
		if manual != nil {
			return *manual, nil
		}
		if asr != nil {
			return *asr, nil
		}
	}
	if blocked {
		return captionTrack{}, errors.New("caption tracks for the requested language require PoToken")
	}

	available := make([]string, 0, len(tracks))
	for _, t := range tracks {
		available = append(available, t.LanguageCode)
	}
	return captionTrack{}, &engine.NoTranscriptFoundError{
		VideoID:   videoID,
		Requested: langs,
		Available: available,
	}
}

// fetchTimedText fetches and parses a YouTube timedtext XML caption URL.
func fetchTimedText(ctx context.Context, baseURL string) ([]engine.Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)
	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch timedtext: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

func parseTimedText(body []byte) ([]engine.Segment, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}
	segs := make([]engine.Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := engine.CleanHTML(line.Text)
		if text == "" {
			continue
		}
		segs = append(segs, engine.Segment{Text: text, Start: line.Start, Duration: line.Dur})
	}
	return segs, nil
}

// extractJSON returns the leading balanced JSON object of b, or nil.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}
