// ABOUTME: Tests for emotion-flip detection against the dominant vibe
// ABOUTME: Covers cold-start, neutral, contrast pairs, and unknown vibes

package core

import (
	"testing"

	"github.com/harper/diary-standalone/internal/models"
)

func profileWith(dominant string, entries int) *models.UserProfile {
	p := models.NewEmptyProfile()
	p.DominantVibe = dominant
	p.EntryCount = entries
	return p
}

func TestDetectEmotionFlip_ColdStart(t *testing.T) {
	dec := DetectEmotionFlip([]string{"sad"}, models.NewEmptyProfile())
	if dec.EmotionFlip {
		t.Error("First entry can never flip")
	}

	dec = DetectEmotionFlip([]string{"sad"}, nil)
	if dec.EmotionFlip {
		t.Error("Nil profile can never flip")
	}
}

func TestDetectEmotionFlip_NeutralDominant(t *testing.T) {
	dec := DetectEmotionFlip([]string{"sad"}, profileWith("neutral", 5))
	if dec.EmotionFlip {
		t.Error("Neutral dominant vibe never flips")
	}
}

func TestDetectEmotionFlip_Contrasts(t *testing.T) {
	tests := []struct {
		name     string
		dominant string
		vibes    []string
		want     bool
	}{
		{"happy to sad", "happy", []string{"sad"}, true},
		{"happy to anxious", "happy", []string{"anxious"}, true},
		{"happy stays happy", "happy", []string{"happy"}, false},
		{"anxious to confident", "anxious", []string{"confident"}, true},
		{"driven to exhausted", "driven", []string{"exhausted"}, true},
		{"grateful to resentful", "grateful", []string{"resentful"}, true},
		{"excited to exhausted", "excited", []string{"exhausted"}, true},
		{"second vibe triggers", "happy", []string{"happy", "frustrated"}, true},
		{"unrelated vibe", "happy", []string{"curious"}, false},
		{"unknown dominant", "wistful", []string{"sad"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := DetectEmotionFlip(tt.vibes, profileWith(tt.dominant, 10))
			if dec.EmotionFlip != tt.want {
				t.Errorf("EmotionFlip = %t, want %t (%s)", dec.EmotionFlip, tt.want, dec.Reason)
			}
		})
	}
}
