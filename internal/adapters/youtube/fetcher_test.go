package youtube

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/minsukang/ytcoach/internal/domain"
)

// fakeClient returns canned responses per language and records calls
type fakeClient struct {
	texts map[string]string // language -> transcript
	errs  map[string]error  // language -> error
	delay time.Duration
	calls [][]string
}

func (c *fakeClient) GetFormattedTranscripts(videoID string, languages []string, preserveFormatting bool) (string, error) {
	c.calls = append(c.calls, languages)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	lang := languages[0]
	if err, ok := c.errs[lang]; ok {
		return "", err
	}
	return c.texts[lang], nil
}

func newTestFetcher(client *fakeClient) *Fetcher {
	return &Fetcher{client: client}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Run("first language wins", func(t *testing.T) {
		client := &fakeClient{texts: map[string]string{"ko": "한국어 자막"}}
		f := newTestFetcher(client)

		text, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"ko", "en"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "한국어 자막" {
			t.Errorf("unexpected text: %q", text)
		}
		if len(client.calls) != 1 {
			t.Errorf("expected 1 outbound call, got %d", len(client.calls))
		}
	})

	t.Run("language miss falls through to the next language", func(t *testing.T) {
		client := &fakeClient{
			texts: map[string]string{"en": "english captions"},
			errs:  map[string]error{"ko": errors.New("no transcript found for language ko")},
		}
		f := newTestFetcher(client)

		text, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"ko", "en"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "english captions" {
			t.Errorf("unexpected text: %q", text)
		}
		if len(client.calls) != 2 {
			t.Errorf("expected 2 outbound calls, got %d", len(client.calls))
		}
	})

	t.Run("disabled transcripts fail without trying other languages", func(t *testing.T) {
		client := &fakeClient{
			errs: map[string]error{"ko": errors.New("transcripts are disabled for this video")},
		}
		f := newTestFetcher(client)

		_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"ko", "en"})
		if !errors.Is(err, domain.ErrTranscriptsDisabled) {
			t.Fatalf("expected ErrTranscriptsDisabled, got %v", err)
		}
		if len(client.calls) != 1 {
			t.Errorf("expected 1 outbound call, got %d", len(client.calls))
		}
	})

	t.Run("unavailable video maps to not found", func(t *testing.T) {
		client := &fakeClient{
			errs: map[string]error{"ko": errors.New("video is unavailable")},
		}
		f := newTestFetcher(client)

		_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"ko"})
		if !errors.Is(err, domain.ErrVideoNotFound) {
			t.Fatalf("expected ErrVideoNotFound, got %v", err)
		}
	})

	t.Run("unrecognized fault keeps its detail", func(t *testing.T) {
		client := &fakeClient{
			errs: map[string]error{
				"ko": errors.New("connection reset by peer"),
				"en": errors.New("connection reset by peer"),
			},
		}
		f := newTestFetcher(client)

		_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"ko", "en"})
		if err == nil {
			t.Fatal("expected an error")
		}
		reason := domain.Reason(err)
		if !strings.HasPrefix(reason, "unknown: ") || !strings.Contains(reason, "connection reset") {
			t.Errorf("expected unknown reason with detail, got %q", reason)
		}
	})

	t.Run("empty transcripts for every language count as disabled", func(t *testing.T) {
		client := &fakeClient{texts: map[string]string{"ko": "   ", "en": ""}}
		f := newTestFetcher(client)

		_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"ko", "en"})
		if !errors.Is(err, domain.ErrTranscriptsDisabled) {
			t.Fatalf("expected ErrTranscriptsDisabled, got %v", err)
		}
	})

	t.Run("classification is stable across calls", func(t *testing.T) {
		client := &fakeClient{
			errs: map[string]error{"ko": errors.New("transcripts are disabled for this video")},
		}
		f := newTestFetcher(client)

		_, first := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"ko"})
		_, second := f.Fetch(context.Background(), "dQw4w9WgXcQ", []string{"ko"})
		if domain.Reason(first) != domain.Reason(second) {
			t.Errorf("classification changed between identical calls: %q vs %q",
				domain.Reason(first), domain.Reason(second))
		}
	})

	t.Run("cancelled context stops the fetch", func(t *testing.T) {
		client := &fakeClient{
			texts: map[string]string{"ko": "text"},
			delay: 100 * time.Millisecond,
		}
		f := newTestFetcher(client)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Fetch(ctx, "dQw4w9WgXcQ", []string{"ko"})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"disabled", "Transcripts are Disabled", domain.ErrTranscriptsDisabled},
		{"no transcripts", "no transcripts available", domain.ErrTranscriptsDisabled},
		{"unavailable", "this video is unavailable", domain.ErrVideoNotFound},
		{"not found", "video not found", domain.ErrVideoNotFound},
		{"private", "video is private", domain.ErrVideoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(errors.New(tt.msg))
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyError(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}

	t.Run("unknown passes through", func(t *testing.T) {
		in := errors.New("some odd failure")
		if got := classifyError(in); got != in {
			t.Errorf("expected passthrough, got %v", got)
		}
	})
}
