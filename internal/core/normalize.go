// ABOUTME: Transcript validation and normalization, the first pipeline step
// ABOUTME: Rejects empty or oversized input before any external call happens
package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTranscriptLength is the hard cap on transcript size in characters
const MaxTranscriptLength = 5000

// ValidationError marks input rejection; it happens before any external call
// and is fatal to the run.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid transcript: " + e.Reason
}

// NormalizeTranscript trims the transcript and validates length bounds
func NormalizeTranscript(transcript string) (string, error) {
	rawText := strings.TrimSpace(transcript)

	if rawText == "" {
		return "", &ValidationError{Reason: "empty after trimming"}
	}
	if n := utf8.RuneCountInString(rawText); n > MaxTranscriptLength {
		return "", &ValidationError{Reason: fmt.Sprintf("too long: %d characters (max %d)", n, MaxTranscriptLength)}
	}

	return rawText, nil
}
