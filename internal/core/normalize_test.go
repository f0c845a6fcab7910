// ABOUTME: Tests for transcript validation and normalization
// ABOUTME: Covers trimming, empty rejection, and the length cap

package core

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeTranscript_Trims(t *testing.T) {
	got, err := NormalizeTranscript("  hello world  \n")
	if err != nil {
		t.Fatalf("NormalizeTranscript() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("NormalizeTranscript() = %q, want %q", got, "hello world")
	}
}

func TestNormalizeTranscript_RejectsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"tabs and newlines", "\t\n\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeTranscript(tt.input)
			if err == nil {
				t.Fatal("Expected error for empty transcript")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestNormalizeTranscript_LengthCap(t *testing.T) {
	atLimit := strings.Repeat("a", MaxTranscriptLength)
	if _, err := NormalizeTranscript(atLimit); err != nil {
		t.Errorf("Transcript at the limit should pass, got %v", err)
	}

	over := strings.Repeat("a", MaxTranscriptLength+1)
	if _, err := NormalizeTranscript(over); err == nil {
		t.Error("Expected error for oversized transcript")
	}
}

func TestNormalizeTranscript_LengthCapCountsRunes(t *testing.T) {
	// Multi-byte characters count once each
	text := strings.Repeat("中", MaxTranscriptLength)
	if _, err := NormalizeTranscript(text); err != nil {
		t.Errorf("Multi-byte transcript at the limit should pass, got %v", err)
	}
}
