package cli

import (
	"os"
	"strings"
)

// CollectRawInput assembles the newline-separated URL block for one run from
// command-line arguments and an optional file. Lines are kept as-is: the
// batch runner owns trimming, ordering and duplicate handling, so a URL that
// appears twice is fetched twice.
func CollectRawInput(args []string, filePath string) (string, error) {
	var lines []string
	lines = append(lines, args...)

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		for _, line := range strings.Split(string(data), "\n") {
			// Comment lines are a file-only convenience
			if strings.HasPrefix(strings.TrimSpace(line), "#") {
				continue
			}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n"), nil
}
