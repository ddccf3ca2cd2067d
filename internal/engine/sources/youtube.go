package sources

// YouTube implementation is split across files by responsibility:
//   youtube_url.go       : video ID extraction from user-supplied URLs
//   youtube_innertube.go : Innertube API types, constants, and low-level HTTP primitives
//   youtube_transcript.go: transcript fetching (watch page + ANDROID player fallback)
//   youtube_title.go     : video title lookup for saved transcript file names
