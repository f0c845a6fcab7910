// ABOUTME: Emotion-flip detection against the profile's dominant vibe
// ABOUTME: Uses a fixed table of contrasting vibes per dominant vibe
package core

import (
	"fmt"

	"github.com/harper/diary-standalone/internal/models"
)

// contrastPairs maps a dominant vibe to the vibes that count as its
// emotional opposites
var contrastPairs = map[string][]string{
	"happy":      {"sad", "frustrated", "anxious"},
	"sad":        {"happy", "excited", "confident"},
	"excited":    {"exhausted", "sad", "frustrated"},
	"exhausted":  {"excited", "energetic", "driven"},
	"confident":  {"anxious", "insecure", "worried"},
	"anxious":    {"confident", "calm", "relaxed"},
	"driven":     {"exhausted", "unmotivated", "lazy"},
	"frustrated": {"happy", "content", "satisfied"},
	"curious":    {"bored", "disinterested", "apathetic"},
	"grateful":   {"ungrateful", "resentful", "bitter"},
}

// FlipDecision is the outcome of the contrast check
type FlipDecision struct {
	EmotionFlip bool
	Reason      string
}

// DetectEmotionFlip reports whether any of the entry's vibes contradicts the
// profile's established dominant vibe. A fresh or neutral profile can never
// flip.
func DetectEmotionFlip(vibes []string, profile *models.UserProfile) FlipDecision {
	if profile == nil || profile.EntryCount == 0 {
		return FlipDecision{EmotionFlip: false, Reason: "No baseline profile yet"}
	}
	if profile.DominantVibe == models.DefaultVibe {
		return FlipDecision{EmotionFlip: false, Reason: "Dominant vibe is neutral"}
	}

	opposites, ok := contrastPairs[profile.DominantVibe]
	if !ok {
		return FlipDecision{
			EmotionFlip: false,
			Reason:      fmt.Sprintf("No contrast table for %q", profile.DominantVibe),
		}
	}

	for _, vibe := range vibes {
		for _, opp := range opposites {
			if vibe == opp {
				return FlipDecision{
					EmotionFlip: true,
					Reason:      fmt.Sprintf("%q contrasts with dominant %q", vibe, profile.DominantVibe),
				}
			}
		}
	}

	return FlipDecision{
		EmotionFlip: false,
		Reason:      fmt.Sprintf("No contrast with dominant %q", profile.DominantVibe),
	}
}
