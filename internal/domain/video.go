package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Video references a YouTube video to fetch a transcript for
type Video struct {
	ID  string
	URL string
}

// WatchURL builds the canonical YouTube URL for a video
func (v *Video) WatchURL() string {
	if v.URL != "" {
		return v.URL
	}
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.ID)
}

var (
	// Matches watch?v=ID, youtu.be/ID, /embed/ID and /shorts/ID forms
	videoURLPattern = regexp.MustCompile(`(?:v=|youtu\.be/|/embed/|/shorts/)([0-9A-Za-z_-]{11})`)
	// Bare 11-character video ID
	videoIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
)

// ParseVideoInput extracts a Video from a URL or ID string
func ParseVideoInput(input string) (*Video, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	if matches := videoURLPattern.FindStringSubmatch(input); len(matches) > 1 {
		return &Video{
			ID:  matches[1],
			URL: input,
		}, nil
	}

	if videoIDPattern.MatchString(input) {
		return &Video{
			ID: input,
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidURL, input)
}
