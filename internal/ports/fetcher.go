package ports

import "context"

// TranscriptFetcher retrieves transcript text for a video.
type TranscriptFetcher interface {
	// Fetch tries each language code in ranked order and returns the first
	// transcript found, in full. One outbound call per attempted language,
	// no retries. Failures map onto the domain error taxonomy.
	Fetch(ctx context.Context, videoID string, languages []string) (string, error)
}
