package sources

import "strings"

// ExtractVideoID pulls the video identifier out of a YouTube URL.
// Recognised shapes, first match wins:
//
//	...?v=ID&...                 (watch URLs, any host)
//	https://youtu.be/ID?...      (share links)
//	https://youtube.com/live/ID?...
//
// The result is not validated; ok is false only when no shape matches.
func ExtractVideoID(rawURL string) (id string, ok bool) {
	if _, after, found := strings.Cut(rawURL, "v="); found {
		id, _, _ = strings.Cut(after, "&")
		return id, true
	}
	if _, after, found := strings.Cut(rawURL, "youtu.be/"); found {
		id, _, _ = strings.Cut(after, "?")
		return id, true
	}
	if strings.Contains(rawURL, "youtube.com/live/") {
		_, after, _ := strings.Cut(rawURL, "/live/")
		id, _, _ = strings.Cut(after, "?")
		return id, true
	}
	return "", false
}
