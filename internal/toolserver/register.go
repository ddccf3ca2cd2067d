// Package toolserver exposes the transcript lookup as MCP tools.
package toolserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/form"
	"github.com/anatolykoptev/go_transcript/internal/toolutil"
)

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 2

// RegisterTools registers youtube_transcript and youtube_video_id on server.
func RegisterTools(server *mcp.Server, c *form.Controller) {
	registerTranscript(server, c)
	registerVideoID(server)
}

func registerTranscript(server *mcp.Server, c *form.Controller) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript",
		Description: "Get the transcript of a YouTube video in the configured primary language. If the video has no captions in that language, captions in the secondary language are machine-translated. Returns the outcome (primary, translated, not_found, disabled, failed) and the transcript text or an explanatory message.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, engine.TranscriptOutput, error) {
		return transcript(ctx, c, input)
	})
}

func transcript(ctx context.Context, c *form.Controller, input engine.TranscriptInput) (*mcp.CallToolResult, engine.TranscriptOutput, error) {
	if _, err := toolutil.VideoID(input.URL); err != nil {
		return nil, engine.TranscriptOutput{}, err
	}
	res := c.Submit(ctx, input.URL)
	out := engine.TranscriptOutput{
		VideoID:    res.VideoID,
		Transcript: res.Transcript,
		SavedPath:  res.SavedPath,
	}
	if o := res.Outcome; o != nil {
		out.Outcome = o.Kind.String()
		out.Language = o.Language
		out.Source = o.Source
	}
	slog.Info("youtube_transcript",
		slog.String("id", out.VideoID),
		slog.String("outcome", out.Outcome),
		slog.Int("chars", len(out.Transcript)))
	return nil, out, nil
}

func registerVideoID(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_video_id",
		Description: "Extract the video ID from a YouTube URL (watch?v=, youtu.be/ or youtube.com/live/) without fetching anything.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.VideoIDInput) (*mcp.CallToolResult, engine.VideoIDOutput, error) {
		id, err := toolutil.VideoID(input.URL)
		if err != nil {
			return nil, engine.VideoIDOutput{}, err
		}
		return nil, engine.VideoIDOutput{VideoID: id}, nil
	})
}
