package domain

import (
	"fmt"
	"strings"
)

// TranscriptSection is one successfully fetched transcript within a batch
type TranscriptSection struct {
	VideoID string
	Text    string
}

// Header returns the source line that prefixes this section in the combined blob
func (s *TranscriptSection) Header() string {
	return fmt.Sprintf("--- Video ID: %s ---", s.VideoID)
}

// FetchFailure records why a single input line produced no transcript.
// Ref is the video ID when one could be parsed, otherwise the raw input line.
type FetchFailure struct {
	Ref    string
	Reason string
}

// BatchOutcome aggregates every per-URL result of one run. Sections and
// Failures each preserve input order; a line appears in exactly one of them.
type BatchOutcome struct {
	Sections []TranscriptSection
	Failures []FetchFailure
}

// HasTranscripts reports whether at least one fetch succeeded
func (o *BatchOutcome) HasTranscripts() bool {
	return len(o.Sections) > 0
}

// Blob concatenates all sections in input order, each prefixed with its
// source header and separated by a blank line. Empty iff no fetch succeeded.
func (o *BatchOutcome) Blob() string {
	var sb strings.Builder
	for i, sec := range o.Sections {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(sec.Header())
		sb.WriteString("\n")
		sb.WriteString(strings.TrimSpace(sec.Text))
	}
	return sb.String()
}
