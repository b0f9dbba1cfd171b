package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_formatters"

	"github.com/minsukang/ytcoach/internal/domain"
)

// transcriptClient is the slice of the yt_transcript client we depend on
type transcriptClient interface {
	GetFormattedTranscripts(videoID string, languages []string, preserveFormatting bool) (string, error)
}

// Fetcher retrieves YouTube transcripts with a ranked language fallback
type Fetcher struct {
	client transcriptClient
}

// NewFetcher creates a fetcher producing plain transcript text
func NewFetcher() *Fetcher {
	formatter := yt_transcript_formatters.NewTextFormatter(
		yt_transcript_formatters.WithTimestamps(false),
		yt_transcript_formatters.WithLanguageCode(false),
	)
	return &Fetcher{
		client: yt_transcript.NewClient(yt_transcript.WithFormatter(formatter)),
	}
}

// Fetch tries each language in order and returns the first transcript found.
// A language miss falls through to the next language; disabled transcripts and
// unresolvable videos fail immediately since no other language can succeed.
func (f *Fetcher) Fetch(ctx context.Context, videoID string, languages []string) (string, error) {
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	var lastErr error
	for _, lang := range languages {
		text, err := f.fetchLanguage(ctx, videoID, lang)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
		if err != nil {
			lastErr = classifyError(err)
			if errors.Is(lastErr, domain.ErrTranscriptsDisabled) ||
				errors.Is(lastErr, domain.ErrVideoNotFound) ||
				errors.Is(lastErr, context.Canceled) ||
				errors.Is(lastErr, context.DeadlineExceeded) {
				return "", lastErr
			}
		}
	}

	if lastErr == nil {
		lastErr = domain.ErrTranscriptsDisabled
	}
	return "", lastErr
}

// fetchLanguage races the library call against the context, since the
// underlying client does not accept one.
func (f *Fetcher) fetchLanguage(ctx context.Context, videoID, language string) (string, error) {
	type result struct {
		text string
		err  error
	}

	resultCh := make(chan result, 1)

	go func() {
		text, err := f.client.GetFormattedTranscripts(videoID, []string{language}, false)
		resultCh <- result{text, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultCh:
		return res.text, res.err
	}
}

// classifyError maps library errors onto the domain taxonomy. The transcript
// client reports faults as plain error strings, so matching is by message.
func classifyError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "disabled"),
		strings.Contains(msg, "no transcripts"),
		strings.Contains(msg, "captions"):
		return fmt.Errorf("%w: %s", domain.ErrTranscriptsDisabled, err)
	case strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "not found"),
		strings.Contains(msg, "invalid video"),
		strings.Contains(msg, "private"):
		return fmt.Errorf("%w: %s", domain.ErrVideoNotFound, err)
	default:
		return err
	}
}
