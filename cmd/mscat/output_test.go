package main

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
	}

	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	short := "fits on one line"
	if got := wrapText(short, 60, "  "); got != short {
		t.Errorf("wrapText(short) = %q, want unchanged", got)
	}

	long := "alpha beta gamma delta epsilon zeta eta theta"
	got := wrapText(long, 20, "    ")
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("wrapText did not wrap: %q", got)
	}
	for i, line := range lines {
		if i > 0 && !strings.HasPrefix(line, "    ") {
			t.Errorf("continuation line %d not indented: %q", i, line)
		}
		if len(strings.TrimPrefix(line, "    ")) > 20 {
			t.Errorf("line %d exceeds width: %q", i, line)
		}
	}
}
