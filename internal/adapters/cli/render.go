package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/minsukang/ytcoach/internal/domain"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// RenderReport renders the markdown coaching report for the terminal.
// Falls back to the raw markdown when the renderer cannot be built.
func RenderReport(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// PrintFailures lists every failed URL with its reason
func PrintFailures(failures []domain.FetchFailure) {
	if len(failures) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Skipped videos:"))
	for _, f := range failures {
		fmt.Println(failureStyle.Render(fmt.Sprintf("  ✗ %s: %s", f.Ref, f.Reason)))
	}
}

// PrintSummary prints the per-run success/failure counts
func PrintSummary(outcome *domain.BatchOutcome) {
	fmt.Println()
	fmt.Println(okStyle.Render(fmt.Sprintf("Transcripts retrieved: %d, failed: %d",
		len(outcome.Sections), len(outcome.Failures))))
}
