package tui

import (
	"fmt"
	"strings"
	"sync"
)

// FetchResult is one finished line of a batch, success or failure
type FetchResult struct {
	Ref    string
	Reason string // empty on success
}

// FetchProgress renders batch fetch progress, one line per finished video
type FetchProgress struct {
	total    int
	results  []FetchResult
	quiet    bool
	mu       sync.Mutex
	rendered bool
}

// NewFetchProgress creates a progress display for total input lines
func NewFetchProgress(total int, quiet bool) *FetchProgress {
	if total < 0 {
		total = 0
	}
	return &FetchProgress{total: total, quiet: quiet}
}

// AddResult records one finished line and redraws the display
func (fp *FetchProgress) AddResult(ref, reason string) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	fp.results = append(fp.results, FetchResult{Ref: ref, Reason: reason})
	fp.render()
}

func (fp *FetchProgress) render() {
	if fp.quiet {
		return
	}

	linesToClear := 1 + len(fp.results) - 1
	if fp.rendered && linesToClear > 0 {
		fmt.Printf("\033[%dA", linesToClear)
		fmt.Print("\033[J")
	}

	completed := len(fp.results)
	percent := 0
	if fp.total > 0 {
		percent = (completed * 100) / fp.total
	}
	fmt.Printf("Fetching transcripts %d/%d %s %d%%\n",
		completed, fp.total, renderBar(completed, fp.total, 20), percent)

	for _, r := range fp.results {
		if r.Reason == "" {
			fmt.Printf("✓ %s\n", r.Ref)
		} else {
			fmt.Printf("✗ %s: %s\n", r.Ref, r.Reason)
		}
	}

	fp.rendered = true
}

// renderBar creates a text progress bar like [=====>    ]
func renderBar(current, total, width int) string {
	if total <= 0 || current <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}
	if current >= total {
		return "[" + strings.Repeat("=", width) + "]"
	}

	head := current * width / total
	if head < 1 {
		head = 1
	}
	if head > width-1 {
		head = width - 1
	}
	return "[" + strings.Repeat("=", head-1) + ">" + strings.Repeat(" ", width-head) + "]"
}
