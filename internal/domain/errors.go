package domain

import "errors"

var (
	// URL parsing errors
	ErrInvalidURL = errors.New("not a valid YouTube URL or video ID")

	// Transcript retrieval errors
	ErrTranscriptsDisabled = errors.New("video has no transcript track")
	ErrVideoNotFound       = errors.New("video not found or is private")

	// Report generation errors
	ErrMissingCredential = errors.New("API key is required")
	ErrEmptyTranscript   = errors.New("no transcript text to analyze")
	ErrNoTranscripts     = errors.New("no transcripts could be retrieved")
)

// Stable reason codes surfaced to the user next to each failed URL.
const (
	ReasonInvalidURL          = "invalid_url"
	ReasonTranscriptsDisabled = "transcript_disabled"
	ReasonNotFound            = "not_found"
	ReasonMissingCredential   = "missing_credential"
	ReasonEmptyTranscript     = "empty_transcript"
)

// Reason converts an error into its stable reason code. Errors outside the
// known taxonomy keep their detail message for diagnostics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidURL):
		return ReasonInvalidURL
	case errors.Is(err, ErrTranscriptsDisabled):
		return ReasonTranscriptsDisabled
	case errors.Is(err, ErrVideoNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrMissingCredential):
		return ReasonMissingCredential
	case errors.Is(err, ErrEmptyTranscript):
		return ReasonEmptyTranscript
	default:
		return "unknown: " + err.Error()
	}
}
