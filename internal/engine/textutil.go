package engine

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/net/html"
)

// User-Agent strings used across HTTP clients.
const (
	UserAgentBot    = "GoTranscript/1.0"
	UserAgentChrome = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

// CleanHTML strips HTML tags, decodes entities and trims whitespace.
// Caption text arrives entity-encoded twice (XML, then HTML) and may carry
// <font> or <i> markup.
func CleanHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

var unsafeFilenameRe = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename replaces characters that are invalid in file names with '_'
// and caps the result at maxRunes runes.
func SanitizeFilename(name string, maxRunes int) string {
	name = unsafeFilenameRe.ReplaceAllString(strings.TrimSpace(name), "_")
	return TruncateRunes(name, maxRunes, "")
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Devanagari, Gujarati, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}
