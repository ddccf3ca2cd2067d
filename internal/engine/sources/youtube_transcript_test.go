package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const timedTextGU = `<?xml version="1.0" encoding="utf-8" ?><transcript>` +
	`<text start="0.5" dur="1.2">નમસ્તે</text>` +
	`<text start="1.7" dur="2">it&amp;#39;s &lt;i&gt;live&lt;/i&gt;</text>` +
	`<text start="3.7" dur="1"> </text>` +
	`</transcript>`

// fakeYouTube serves a watch page whose ytInitialPlayerResponse is built by player.
type fakeYouTube struct {
	srv         *httptest.Server
	watchStatus int
	watchBody   func(base string) string
	playerBody  func(base string) string
	playerCalls int
}

func newFakeYouTube(t *testing.T) *fakeYouTube {
	t.Helper()
	f := &fakeYouTube{watchStatus: http.StatusOK}
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		if f.watchStatus != http.StatusOK {
			w.WriteHeader(f.watchStatus)
			return
		}
		fmt.Fprint(w, f.watchBody(f.srv.URL))
	})
	mux.HandleFunc("/player", func(w http.ResponseWriter, r *http.Request) {
		f.playerCalls++
		if f.playerBody == nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, f.playerBody(f.srv.URL))
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, timedTextGU)
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)

	engine.Init(engine.Config{HTTPClient: &http.Client{Timeout: 5 * time.Second}})
	return f
}

func (f *fakeYouTube) provider() *YouTube {
	return &YouTube{watchURL: f.srv.URL + "/watch?v=", playerURL: f.srv.URL + "/player"}
}

func watchPage(playerJSON string) string {
	return `<html><head><title>Demo - YouTube</title></head><body><script>var ytInitialPlayerResponse = ` +
		playerJSON + `;var meta = {};</script></body></html>`
}

func tracksJSON(base string, tracks ...string) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		lang, kind, _ := strings.Cut(t, ":")
		parts[i] = fmt.Sprintf(`{"baseUrl":"%s/timedtext?lang=%s","languageCode":"%s","kind":"%s"}`, base, lang, lang, kind)
	}
	return `{"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[` +
		strings.Join(parts, ",") + `]}},"videoDetails":{"title":"Demo \"quoted\" {braces}"}}`
}

func TestFetch_WatchPage(t *testing.T) {
	f := newFakeYouTube(t)
	f.watchBody = func(base string) string { return watchPage(tracksJSON(base, "gu:asr", "hi:")) }

	segs, err := f.provider().Fetch(context.Background(), "vid1", []string{"gu"})
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, "નમસ્તે", segs[0].Text)
	assert.Equal(t, 0.5, segs[0].Start)
	assert.Equal(t, 1.2, segs[0].Duration)
	assert.Equal(t, "it's live", segs[1].Text)
	assert.Equal(t, 0, f.playerCalls)
}

func TestFetch_Disabled(t *testing.T) {
	f := newFakeYouTube(t)
	f.watchBody = func(string) string { return watchPage(`{"playabilityStatus":{"status":"OK"}}`) }

	_, err := f.provider().Fetch(context.Background(), "vid1", []string{"gu"})
	assert.ErrorIs(t, err, engine.ErrTranscriptsDisabled)
}

func TestFetch_NotFound(t *testing.T) {
	f := newFakeYouTube(t)
	f.watchBody = func(base string) string { return watchPage(tracksJSON(base, "en:asr", "hi:")) }

	_, err := f.provider().Fetch(context.Background(), "vid1", []string{"gu"})
	require.ErrorIs(t, err, engine.ErrNoTranscriptFound)

	var nf *engine.NoTranscriptFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, []string{"en", "hi"}, nf.Available)
}

func TestFetch_Unavailable(t *testing.T) {
	f := newFakeYouTube(t)
	f.watchBody = func(string) string {
		return watchPage(`{"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}}`)
	}

	_, err := f.provider().Fetch(context.Background(), "vid1", []string{"gu"})
	var vu *VideoUnavailableError
	require.True(t, errors.As(err, &vu))
	assert.Equal(t, "Video unavailable", vu.Reason)
	assert.NotErrorIs(t, err, engine.ErrTranscriptsDisabled)
}

func TestFetch_FallsBackToPlayer(t *testing.T) {
	f := newFakeYouTube(t)
	f.watchStatus = http.StatusServiceUnavailable
	f.playerBody = func(base string) string { return tracksJSON(base, "gu:") }

	segs, err := f.provider().Fetch(context.Background(), "vid1", []string{"gu"})
	require.NoError(t, err)
	assert.Len(t, segs, 2)
	assert.Equal(t, 1, f.playerCalls)
}

func TestFetch_BothPathsFail(t *testing.T) {
	f := newFakeYouTube(t)
	f.watchStatus = http.StatusServiceUnavailable

	_, err := f.provider().Fetch(context.Background(), "vid1", []string{"gu"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, engine.ErrNoTranscriptFound)
	assert.NotErrorIs(t, err, engine.ErrTranscriptsDisabled)
}

func TestParseWatchPage_Captcha(t *testing.T) {
	_, err := parseWatchPage([]byte(`<html><div class="g-recaptcha"></div></html>`))
	assert.ErrorIs(t, err, ErrTooManyRequests)
}

func TestParseWatchPage_EscapedQuotes(t *testing.T) {
	pr, err := parseWatchPage([]byte(watchPage(tracksJSON("http://x", "gu:"))))
	require.NoError(t, err)
	require.NotNil(t, pr.VideoDetails)
	assert.Equal(t, `Demo "quoted" {braces}`, pr.VideoDetails.Title)
}

func TestFindTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "gu", Kind: "asr"},
		{BaseURL: "u2", LanguageCode: "gu"},
		{BaseURL: "u3&exp=xpe", LanguageCode: "hi"},
		{BaseURL: "u4", LanguageCode: "en", Kind: "asr"},
	}

	tests := []struct {
		name    string
		langs   []string
		wantURL string
		wantErr error
	}{
		{"manual preferred over asr", []string{"gu"}, "u2", nil},
		{"first language wins", []string{"en", "gu"}, "u4", nil},
		{"skips missing language", []string{"fr", "en"}, "u4", nil},
		{"not found", []string{"fr"}, "", engine.ErrNoTranscriptFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findTrack("vid", tracks, tt.langs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, got.BaseURL)
		})
	}

	t.Run("potoken only", func(t *testing.T) {
		_, err := findTrack("vid", tracks, []string{"hi"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, engine.ErrNoTranscriptFound)
	})
}

func TestParseTimedText_Invalid(t *testing.T) {
	_, err := parseTimedText([]byte("not xml <"))
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1};rest`, `{"a":1}`},
		{`{"a":"}"}x`, `{"a":"}"}`},
		{`{"a":"\\"}x`, `{"a":"\\"}`},
		{`{"a":{"b":"\"}"}}tail`, `{"a":{"b":"\"}"}}`},
		{`[1]`, ``},
		{`{"open":`, ``},
	}
	for _, tt := range tests {
		if got := string(extractJSON([]byte(tt.in))); got != tt.want {
			t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVideoTitle(t *testing.T) {
	f := newFakeYouTube(t)
	f.watchBody = func(string) string {
		return `<html><head><title>Fallback title - YouTube</title><meta name="title" content="Real Title"></head></html>`
	}
	title, err := f.provider().VideoTitle(context.Background(), "vid1")
	require.NoError(t, err)
	assert.Equal(t, "Real Title", title)
}

func TestParseVideoTitle(t *testing.T) {
	title, err := parseVideoTitle([]byte(`<html><head><title>Only Title - YouTube</title></head></html>`))
	require.NoError(t, err)
	assert.Equal(t, "Only Title", title)

	_, err = parseVideoTitle([]byte(`<html><head></head></html>`))
	assert.Error(t, err)
}
