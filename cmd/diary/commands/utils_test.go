// ABOUTME: Tests for shared CLI helpers
// ABOUTME: Covers string truncation, time formatting, and log rendering

package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/harper/diary-standalone/internal/models"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"unicode", "日本語のテキストです", 6, "日本語..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-48 * time.Hour), "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTime(tt.t); got != tt.want {
				t.Errorf("formatTime = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderLogs(t *testing.T) {
	var buf bytes.Buffer
	renderLogs(&buf, []models.LogEntry{
		{Tag: "RAW_TEXT_IN", Input: "transcript", Output: "raw_text", Note: "cleaned"},
	})

	got := buf.String()
	if !strings.Contains(got, "[RAW_TEXT_IN]") {
		t.Errorf("Missing tag: %q", got)
	}
	if !strings.Contains(got, "input=<transcript> | output=<raw_text> | note=<cleaned>") {
		t.Errorf("Wrong format: %q", got)
	}
}

func TestRenderProfile(t *testing.T) {
	profile := models.NewEmptyProfile()
	profile.EntryCount = 3
	profile.DominantVibe = "driven"
	profile.TopThemes = []string{"productivity", "health"}

	var buf bytes.Buffer
	renderProfile(&buf, profile)

	got := buf.String()
	for _, want := range []string{"Entry Count: 3", `Dominant Vibe: "driven"`, "productivity, health"} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}
}
