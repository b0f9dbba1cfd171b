package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minsukang/ytcoach/internal/config"
)

// NewConfigCmd creates the config subcommand
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change defaults",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE:  runConfigShow,
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save it to ` + config.ConfigPath() + `.

Keys:
  languages        ranked transcript language codes (e.g. ko,en)
  report_language  language the coaching report is written in
  concurrency      max concurrent transcript fetches
  model            generation model name
  base_url         generation API base URL

The API key is never part of the configuration; it is supplied per run.`,
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	}

	cmd.AddCommand(showCmd, setCmd)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  languages:        %s\n", cfg.Defaults.Languages)
	fmt.Printf("  report_language:  %s\n", cfg.Defaults.ReportLanguage)
	fmt.Printf("  concurrency:      %d\n", cfg.Defaults.Concurrency)
	fmt.Printf("  model:            %s\n", cfg.API.Model)
	fmt.Printf("  base_url:         %s\n", cfg.API.BaseURL)
	fmt.Println()

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	switch key {
	case "languages":
		cfg.Defaults.Languages = value
	case "report_language":
		cfg.Defaults.ReportLanguage = value
	case "concurrency":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("concurrency must be a positive number, got %q", value)
		}
		cfg.Defaults.Concurrency = n
	case "model":
		cfg.API.Model = value
	case "base_url":
		cfg.API.BaseURL = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := cfg.SaveDefault(); err != nil {
		return err
	}

	fmt.Printf("%s set to %s\n", key, value)
	return nil
}
