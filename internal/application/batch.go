package application

import (
	"context"
	"strings"
	"sync"

	"github.com/minsukang/ytcoach/internal/domain"
	"github.com/minsukang/ytcoach/internal/ports"
)

// BatchOptions configures a batch run
type BatchOptions struct {
	Languages   []string
	Concurrency int
	// OnResult is called once per finished line with its 1-based position,
	// the total line count and the failure reason (empty on success).
	OnResult func(done, total int, ref, reason string)
}

// lineResult holds the outcome for one input line, keyed by its position so
// the final blob follows input order regardless of fetch completion order.
type lineResult struct {
	video *domain.Video
	raw   string
	text  string
	err   error
}

// BatchService runs the per-URL transcript fetch loop
type BatchService struct {
	fetcher ports.TranscriptFetcher
}

// NewBatchService creates a new batch runner
func NewBatchService(fetcher ports.TranscriptFetcher) *BatchService {
	return &BatchService{fetcher: fetcher}
}

// Run splits rawInput on line breaks and fetches a transcript per non-empty
// line. Lines keep their input order, duplicates are fetched independently,
// and every failure is captured as data. Run itself never fails.
func (s *BatchService) Run(ctx context.Context, rawInput string, opts BatchOptions) *domain.BatchOutcome {
	lines := splitLines(rawInput)
	total := len(lines)

	results := make([]lineResult, total)
	for i, line := range lines {
		results[i].raw = line
		results[i].video, results[i].err = domain.ParseVideoInput(line)
	}

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		done   int
		doneMu sync.Mutex
	)
	report := func(i int) {
		if opts.OnResult == nil {
			return
		}
		doneMu.Lock()
		done++
		n := done
		doneMu.Unlock()
		opts.OnResult(n, total, results[i].ref(), domain.Reason(results[i].err))
	}

	// Worker pool using semaphore pattern
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i := range results {
		if results[i].err != nil {
			// Unparseable line, recorded without invoking the fetcher
			report(i)
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			text, err := s.fetcher.Fetch(ctx, results[i].video.ID, opts.Languages)
			results[i].text = text
			results[i].err = err
			report(i)
		}(i)
	}

	wg.Wait()

	outcome := &domain.BatchOutcome{}
	for i := range results {
		if results[i].err != nil {
			outcome.Failures = append(outcome.Failures, domain.FetchFailure{
				Ref:    results[i].ref(),
				Reason: domain.Reason(results[i].err),
			})
			continue
		}
		outcome.Sections = append(outcome.Sections, domain.TranscriptSection{
			VideoID: results[i].video.ID,
			Text:    results[i].text,
		})
	}
	return outcome
}

// ref identifies the line in failure listings: the video ID when one parsed,
// the raw line otherwise.
func (r *lineResult) ref() string {
	if r.video != nil {
		return r.video.ID
	}
	return r.raw
}

// splitLines trims every line and drops empty ones, preserving order
func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
