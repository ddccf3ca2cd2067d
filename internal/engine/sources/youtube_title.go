package sources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// VideoTitle implements engine.TitleFetcher by reading the watch page head.
func (y *YouTube) VideoTitle(ctx context.Context, videoID string) (string, error) {
	body, err := y.watchPage(ctx, videoID)
	if err != nil {
		return "", err
	}
	return parseVideoTitle(body)
}

func parseVideoTitle(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("goquery parse: %w", err)
	}
	if title, ok := doc.Find(`meta[name="title"]`).First().Attr("content"); ok {
		if title = strings.TrimSpace(title); title != "" {
			return title, nil
		}
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	title = strings.TrimSpace(strings.TrimSuffix(title, "- YouTube"))
	if title == "" {
		return "", errors.New("video title not found in watch page")
	}
	return title, nil
}
