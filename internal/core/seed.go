// ABOUTME: Synthetic history seeding for simulations and demos
// ABOUTME: Deterministic per seed so simulation runs are reproducible
package core

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/harper/diary-standalone/internal/models"
	"github.com/harper/diary-standalone/internal/storage"
)

var (
	seedThemes  = []string{"work-life balance", "productivity", "startup culture", "intern management", "personal growth"}
	seedVibes   = []string{"driven", "curious", "overwhelmed", "excited", "anxious", "confident"}
	seedTraits  = []string{"organiser", "builder", "mentor", "analytical", "creative"}
	seedBuckets = []string{"Goal", "Thought", "Hobby", "Value", "Reflection"}
)

// SeedHistory populates the store with count synthetic prior entries for the
// user and the matching aggregated profile, one entry per day counting back
// from now. The rng seed makes a given run reproducible.
func SeedHistory(store storage.Store, userID string, count int, seed int64) (*models.UserProfile, error) {
	rng := rand.New(rand.NewSource(seed))
	profile := models.NewEmptyProfile()
	now := time.Now().UTC()

	for i := 0; i < count; i++ {
		theme := seedThemes[rng.Intn(len(seedThemes))]
		vibe := seedVibes[rng.Intn(len(seedVibes))]
		rawText := fmt.Sprintf("Mock diary entry %d about %s. Feeling %s today.", i+1, theme, vibe)

		parsed := models.ParsedEntry{
			Theme:        models.StringList{theme},
			Vibe:         models.StringList{vibe},
			Intent:       fmt.Sprintf("Mock intent for %s", theme),
			Subtext:      fmt.Sprintf("Mock subtext about %s feelings", vibe),
			PersonaTrait: models.StringList{seedTraits[rng.Intn(len(seedTraits))]},
			Bucket:       models.StringList{seedBuckets[rng.Intn(len(seedBuckets))]},
		}

		entry := &models.DiaryEntry{
			ID:          fmt.Sprintf("mock-entry-%d", i+1),
			RawText:     rawText,
			Embedding:   MockEmbedding(rawText, DefaultVectorDimension),
			MetaData:    ExtractMetaData(rawText),
			Parsed:      parsed,
			Timestamp:   now.Add(-time.Duration(count-i) * 24 * time.Hour),
			CarryIn:     rng.Float64() > 0.7,
			EmotionFlip: rng.Float64() > 0.8,
		}
		if err := store.SaveEntry(entry, userID); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i+1, err)
		}

		profile = AggregateProfile(profile, parsed)
	}

	if err := store.SaveProfile(profile, userID); err != nil {
		return nil, fmt.Errorf("seed profile: %w", err)
	}
	return profile, nil
}
