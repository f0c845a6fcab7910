// ABOUTME: Carry-in detection: does the entry continue a recent thread?
// ABOUTME: Cosine similarity first, then theme overlap, then vibe overlap
package core

import (
	"fmt"
	"strings"

	"github.com/harper/diary-standalone/internal/models"
)

// DefaultCarryInThreshold is the cosine similarity above which an entry
// counts as a continuation regardless of label overlap
const DefaultCarryInThreshold = 0.86

// CarryInDecision is the outcome of the carry-in check with its reason and
// the max similarity computed for diagnostics
type CarryInDecision struct {
	CarryIn       bool
	Reason        string
	MaxSimilarity float64
}

// DetectCarryIn decides thematic or emotional continuity against the recent
// window. The priority is fixed: history presence, similarity threshold,
// theme overlap, vibe overlap.
func DetectCarryIn(parsed models.ParsedEntry, embedding []float64, recent []models.DiaryEntry, threshold float64) CarryInDecision {
	if len(recent) == 0 {
		return CarryInDecision{CarryIn: false, Reason: "No recent entries"}
	}

	recentEmbeddings := make([][]float64, 0, len(recent))
	var recentThemes, recentVibes []string
	for _, e := range recent {
		recentEmbeddings = append(recentEmbeddings, e.Embedding)
		recentThemes = append(recentThemes, e.Parsed.Theme...)
		recentVibes = append(recentVibes, e.Parsed.Vibe...)
	}

	maxSim := maxCosineSimilarity(embedding, recentEmbeddings)
	if maxSim > threshold {
		return CarryInDecision{
			CarryIn:       true,
			Reason:        fmt.Sprintf("High cosine similarity: %.3f", maxSim),
			MaxSimilarity: maxSim,
		}
	}

	if themes := overlap(parsed.Theme, recentThemes); len(themes) > 0 {
		return CarryInDecision{
			CarryIn:       true,
			Reason:        fmt.Sprintf("Theme overlap: [%s]", strings.Join(themes, ", ")),
			MaxSimilarity: maxSim,
		}
	}

	if vibes := overlap(parsed.Vibe, recentVibes); len(vibes) > 0 {
		return CarryInDecision{
			CarryIn:       true,
			Reason:        fmt.Sprintf("Vibe overlap: [%s]", strings.Join(vibes, ", ")),
			MaxSimilarity: maxSim,
		}
	}

	return CarryInDecision{
		CarryIn:       false,
		Reason:        fmt.Sprintf("No significant overlap (max similarity: %.3f)", maxSim),
		MaxSimilarity: maxSim,
	}
}
