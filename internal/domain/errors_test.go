package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"invalid URL", ErrInvalidURL, ReasonInvalidURL},
		{"transcripts disabled", ErrTranscriptsDisabled, ReasonTranscriptsDisabled},
		{"video not found", ErrVideoNotFound, ReasonNotFound},
		{"missing credential", ErrMissingCredential, ReasonMissingCredential},
		{"empty transcript", ErrEmptyTranscript, ReasonEmptyTranscript},
		{"wrapped sentinel", fmt.Errorf("fetch: %w", ErrTranscriptsDisabled), ReasonTranscriptsDisabled},
		{"unknown error keeps detail", errors.New("connection reset"), "unknown: connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reason(tt.err); got != tt.want {
				t.Errorf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
