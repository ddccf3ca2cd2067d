// Package resolver implements the language-fallback transcript lookup: primary
// language first, then the secondary language translated into the primary one.
// Every path ends in an Outcome that renders to a displayable message.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Kind tags how a lookup ended.
type Kind int

const (
	KindPrimary    Kind = iota // transcript found in the primary language
	KindTranslated             // secondary transcript translated into the primary language
	KindNotFound               // neither language has a transcript
	KindDisabled               // the video has transcripts turned off
	KindFailed                 // any other error
)

// DisabledMessage is shown when a video has transcripts turned off.
const DisabledMessage = "Transcripts are disabled for this video."

func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindTranslated:
		return "translated"
	case KindNotFound:
		return "not_found"
	case KindDisabled:
		return "disabled"
	default:
		return "failed"
	}
}

// Outcome is the result of one Resolve call.
type Outcome struct {
	Kind     Kind
	Text     string // transcript in Language; empty unless OK
	Language string // language code of Text
	Source   string // caption language actually fetched
	Err      error  // set for KindFailed

	primary, secondary string
}

// OK reports whether the outcome carries a transcript.
func (o Outcome) OK() bool {
	return o.Kind == KindPrimary || o.Kind == KindTranslated
}

// Message returns the text to display: the transcript, or a fixed message
// describing why there is none.
func (o Outcome) Message() string {
	switch o.Kind {
	case KindPrimary, KindTranslated:
		return o.Text
	case KindNotFound:
		return fmt.Sprintf("No transcript found in %s or %s.",
			engine.LanguageName(o.primary), engine.LanguageName(o.secondary))
	case KindDisabled:
		return DisabledMessage
	default:
		return fmt.Sprintf("Error: %v", o.Err)
	}
}

// Resolver holds the two collaborators and the language pair.
type Resolver struct {
	fetcher    engine.TranscriptFetcher
	translator engine.Translator
	primary    string
	secondary  string
}

// New returns a resolver fetching primary first and falling back to secondary.
func New(f engine.TranscriptFetcher, t engine.Translator, primary, secondary string) *Resolver {
	return &Resolver{fetcher: f, translator: t, primary: primary, secondary: secondary}
}

// Primary returns the language transcripts are shown in.
func (r *Resolver) Primary() string { return r.primary }

// Resolve runs the fallback chain for videoID. It never returns an error;
// failures are folded into the Outcome.
func (r *Resolver) Resolve(ctx context.Context, videoID string) Outcome {
	out := r.resolve(ctx, videoID)
	engine.IncrOutcome(out.Kind.String())
	if out.Kind == KindFailed {
		slog.Warn("transcript lookup failed", slog.String("id", videoID), slog.Any("error", out.Err))
	} else {
		slog.Debug("transcript lookup done", slog.String("id", videoID), slog.String("outcome", out.Kind.String()))
	}
	return out
}

func (r *Resolver) resolve(ctx context.Context, videoID string) Outcome {
	base := Outcome{primary: r.primary, secondary: r.secondary}

	segs, err := r.fetcher.Fetch(ctx, videoID, []string{r.primary})
	if err == nil {
		base.Kind = KindPrimary
		base.Text = engine.JoinSegments(segs)
		base.Language = r.primary
		base.Source = r.primary
		return base
	}
	if k, ok := terminal(err); ok {
		base.Kind, base.Err = k, err
		return base
	}

	engine.IncrSecondaryFallbacks()
	segs, err = r.fetcher.Fetch(ctx, videoID, []string{r.secondary})
	if err != nil {
		if errors.Is(err, engine.ErrNoTranscriptFound) {
			base.Kind = KindNotFound
			return base
		}
		if errors.Is(err, engine.ErrTranscriptsDisabled) {
			base.Kind = KindDisabled
			return base
		}
		base.Kind, base.Err = KindFailed, err
		return base
	}

	text, err := r.translator.Translate(ctx, engine.JoinSegments(segs), r.secondary, r.primary)
	if err != nil {
		base.Kind, base.Err = KindFailed, err
		return base
	}
	base.Kind = KindTranslated
	base.Text = text
	base.Language = r.primary
	base.Source = r.secondary
	return base
}

// terminal classifies a primary-language error. Only "not found" continues
// to the secondary language.
func terminal(err error) (Kind, bool) {
	switch {
	case errors.Is(err, engine.ErrNoTranscriptFound):
		return 0, false
	case errors.Is(err, engine.ErrTranscriptsDisabled):
		return KindDisabled, true
	default:
		return KindFailed, true
	}
}
