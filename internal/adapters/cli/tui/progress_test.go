package tui

import "testing"

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{"empty", 0, 10, "[          ]"},
		{"zero total", 3, 0, "[          ]"},
		{"complete", 10, 10, "[==========]"},
		{"over complete", 12, 10, "[==========]"},
		{"halfway", 5, 10, "[====>     ]"},
		{"barely started", 1, 100, "[>         ]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderBar(tt.current, tt.total, 10); got != tt.want {
				t.Errorf("renderBar(%d, %d, 10) = %q, want %q", tt.current, tt.total, got, tt.want)
			}
		})
	}
}

func TestFetchProgress_Quiet(t *testing.T) {
	// Quiet mode must still record results without panicking
	fp := NewFetchProgress(2, true)
	fp.AddResult("AAAAAAAAAAA", "")
	fp.AddResult("not-a-url", "invalid_url")

	if len(fp.results) != 2 {
		t.Errorf("expected 2 recorded results, got %d", len(fp.results))
	}
}
