package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minsukang/ytcoach/internal/adapters/cli/tui"
	"github.com/minsukang/ytcoach/internal/application"
	"github.com/minsukang/ytcoach/internal/domain"
)

var (
	// Global flags
	apiKeyFlag      string
	fileFlag        string
	languagesFlag   string
	concurrencyFlag int
	outputFlag      string
	quietFlag       bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ytcoach [urls...]",
		Short: "Turn YouTube videos into a lifestyle coaching report",
		Long: `ytcoach fetches the transcripts of the YouTube videos you found
inspiring and asks Gemini for a structured coaching report: core insight,
key takeaways, an action plan and a bit of motivation.

Provide video URLs as arguments and/or via --file, or run without
arguments for an interactive form. The API key is held in memory for the
duration of one run and never stored.`,
		RunE: runRoot,
	}

	rootCmd.PersistentFlags().StringVarP(&apiKeyFlag, "api-key", "k", "", "Google API key (prompted interactively when omitted)")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "File with URLs (one per line)")
	rootCmd.PersistentFlags().StringVarP(&languagesFlag, "languages", "l", "", "Ranked transcript language codes (e.g. ko,en)")
	rootCmd.PersistentFlags().IntVarP(&concurrencyFlag, "concurrency", "c", 0, "Max concurrent transcript fetches")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Write the raw markdown report to a file")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	apiKey := apiKeyFlag
	rawInput, err := CollectRawInput(args, fileFlag)
	if err != nil {
		return fmt.Errorf("failed to collect inputs: %w", err)
	}

	// No URLs on the command line: collect everything interactively
	if strings.TrimSpace(rawInput) == "" {
		form, err := tui.RunForm(apiKey == "")
		if err != nil {
			return err
		}
		if !form.Submitted {
			fmt.Println("Cancelled")
			return nil
		}
		if apiKey == "" {
			apiKey = form.APIKey
		}
		rawInput = form.URLs
	}

	if strings.TrimSpace(apiKey) == "" {
		return domain.ErrMissingCredential
	}
	if strings.TrimSpace(rawInput) == "" {
		return errors.New("no YouTube URLs provided")
	}

	return runCoaching(cmd.Context(), app, rawInput, apiKey)
}

func runCoaching(ctx context.Context, app *App, rawInput, apiKey string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	languages := app.Config.LanguageList()
	if languagesFlag != "" {
		languages = splitFlagList(languagesFlag)
	}

	concurrency := app.Config.Defaults.Concurrency
	if concurrencyFlag > 0 {
		concurrency = concurrencyFlag
	}

	total := countInputLines(rawInput)
	progress := tui.NewFetchProgress(total, quietFlag)

	result, err := app.CoachSvc.Run(ctx, rawInput, application.CoachOptions{
		APIKey: apiKey,
		Batch: application.BatchOptions{
			Languages:   languages,
			Concurrency: concurrency,
			OnResult: func(done, total int, ref, reason string) {
				progress.AddResult(ref, reason)
			},
		},
	})

	if err != nil {
		if errors.Is(err, domain.ErrNoTranscripts) {
			PrintFailures(result.Outcome.Failures)
			return fmt.Errorf("no transcripts could be retrieved — check the URLs and whether the videos have captions")
		}
		return err
	}

	PrintSummary(result.Outcome)
	PrintFailures(result.Outcome.Failures)

	fmt.Println()
	fmt.Print(RenderReport(result.Report))

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(result.Report), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if !quietFlag {
			fmt.Printf("\nReport saved to %s\n", outputFlag)
		}
	}

	return nil
}

// splitFlagList splits a comma-separated flag value, dropping empties
func splitFlagList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// countInputLines counts the non-empty lines of the raw URL block
func countInputLines(raw string) int {
	count := 0
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
