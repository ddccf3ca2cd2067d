package engine

// --- MCP tool inputs ---

type TranscriptInput struct {
	URL string `json:"url" jsonschema:"YouTube video URL (watch?v=, youtu.be/ or youtube.com/live/)"`
}

type VideoIDInput struct {
	URL string `json:"url" jsonschema:"YouTube video URL"`
}

// --- MCP tool outputs ---

// TranscriptOutput is the structured result of youtube_transcript.
// Transcript holds the transcript, or the message explaining why there is none.
type TranscriptOutput struct {
	VideoID    string `json:"video_id"`
	Outcome    string `json:"outcome"` // primary, translated, not_found, disabled, failed
	Language   string `json:"language,omitempty"`
	Source     string `json:"source_language,omitempty"`
	Transcript string `json:"transcript"`
	SavedPath  string `json:"saved_path,omitempty"`
}

type VideoIDOutput struct {
	VideoID string `json:"video_id"`
}
