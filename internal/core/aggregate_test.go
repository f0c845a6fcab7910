// ABOUTME: Tests for profile aggregation
// ABOUTME: Covers counter growth, trait pool cap, ranking, and immutability

package core

import (
	"fmt"
	"testing"

	"github.com/harper/diary-standalone/internal/models"
)

func parsedWith(themes, vibes, traits []string) models.ParsedEntry {
	p := models.ParsedEntry{
		Theme:        themes,
		Vibe:         vibes,
		PersonaTrait: traits,
		Bucket:       models.StringList{"Thought"},
	}
	p.Normalize()
	return p
}

func TestAggregateProfile_FirstEntry(t *testing.T) {
	parsed := parsedWith([]string{"health"}, []string{"sad"}, []string{"reflective"})
	got := AggregateProfile(models.NewEmptyProfile(), parsed)

	if got.EntryCount != 1 {
		t.Errorf("EntryCount = %d, want 1", got.EntryCount)
	}
	if got.DominantVibe != "sad" {
		t.Errorf("DominantVibe = %q, want sad", got.DominantVibe)
	}
	if got.ThemeCount["health"] != 1 {
		t.Errorf("ThemeCount = %v", got.ThemeCount)
	}
	if len(got.TopThemes) != 1 || got.TopThemes[0] != "health" {
		t.Errorf("TopThemes = %v", got.TopThemes)
	}
	if got.LastTheme != "health" {
		t.Errorf("LastTheme = %q", got.LastTheme)
	}
}

func TestAggregateProfile_NilProfile(t *testing.T) {
	got := AggregateProfile(nil, parsedWith([]string{"health"}, []string{"sad"}, nil))
	if got.EntryCount != 1 {
		t.Errorf("EntryCount = %d, want 1", got.EntryCount)
	}
}

func TestAggregateProfile_DoesNotMutateInput(t *testing.T) {
	before := models.NewEmptyProfile()
	_ = AggregateProfile(before, parsedWith([]string{"health"}, []string{"sad"}, []string{"reflective"}))

	if before.EntryCount != 0 || len(before.ThemeCount) != 0 || len(before.TraitPool) != 0 {
		t.Errorf("Input profile mutated: %+v", before)
	}
}

func TestAggregateProfile_CountersOnlyGrow(t *testing.T) {
	profile := models.NewEmptyProfile()
	profile = AggregateProfile(profile, parsedWith([]string{"health"}, []string{"sad"}, nil))
	profile = AggregateProfile(profile, parsedWith([]string{"technology"}, []string{"happy"}, nil))

	if profile.ThemeCount["health"] != 1 {
		t.Errorf("Earlier counter shrank: %v", profile.ThemeCount)
	}
	if profile.EntryCount != 2 {
		t.Errorf("EntryCount = %d, want 2", profile.EntryCount)
	}
}

func TestAggregateProfile_DominantVibeByCount(t *testing.T) {
	profile := models.NewEmptyProfile()
	profile = AggregateProfile(profile, parsedWith(nil, []string{"sad"}, nil))
	profile = AggregateProfile(profile, parsedWith(nil, []string{"happy"}, nil))
	profile = AggregateProfile(profile, parsedWith(nil, []string{"happy"}, nil))

	if profile.DominantVibe != "happy" {
		t.Errorf("DominantVibe = %q, want happy", profile.DominantVibe)
	}
}

func TestAggregateProfile_DominantVibeTieFirstSeen(t *testing.T) {
	profile := models.NewEmptyProfile()
	profile = AggregateProfile(profile, parsedWith(nil, []string{"sad"}, nil))
	profile = AggregateProfile(profile, parsedWith(nil, []string{"happy"}, nil))

	// 1-1 tie resolves to the vibe seen first
	if profile.DominantVibe != "sad" {
		t.Errorf("DominantVibe = %q, want sad (first seen)", profile.DominantVibe)
	}
}

func TestAggregateProfile_TopThemesCapAndOrder(t *testing.T) {
	profile := models.NewEmptyProfile()
	for i := 0; i < 3; i++ {
		profile = AggregateProfile(profile, parsedWith([]string{"alpha"}, nil, nil))
	}
	for i := 0; i < 2; i++ {
		profile = AggregateProfile(profile, parsedWith([]string{"beta"}, nil, nil))
	}
	for _, theme := range []string{"gamma", "delta", "epsilon"} {
		profile = AggregateProfile(profile, parsedWith([]string{theme}, nil, nil))
	}

	if len(profile.TopThemes) != maxTopThemes {
		t.Fatalf("len(TopThemes) = %d, want %d", len(profile.TopThemes), maxTopThemes)
	}
	if profile.TopThemes[0] != "alpha" || profile.TopThemes[1] != "beta" {
		t.Errorf("TopThemes = %v, want alpha then beta first", profile.TopThemes)
	}
	// The 1-count themes tie; first seen ranks ahead
	if profile.TopThemes[2] != "gamma" || profile.TopThemes[3] != "delta" {
		t.Errorf("TopThemes = %v, want gamma then delta after", profile.TopThemes)
	}
}

func TestAggregateProfile_TraitPoolUniqueAndCapped(t *testing.T) {
	profile := models.NewEmptyProfile()
	profile = AggregateProfile(profile, parsedWith(nil, nil, []string{"builder", "builder", "mentor"}))

	if len(profile.TraitPool) != 2 {
		t.Fatalf("TraitPool = %v, want 2 unique traits", profile.TraitPool)
	}

	for i := 0; i < 15; i++ {
		profile = AggregateProfile(profile, parsedWith(nil, nil, []string{fmt.Sprintf("trait-%d", i)}))
	}
	if len(profile.TraitPool) != maxTraitPool {
		t.Errorf("len(TraitPool) = %d, want %d", len(profile.TraitPool), maxTraitPool)
	}
	// Earliest traits survive the cap
	if profile.TraitPool[0] != "builder" || profile.TraitPool[1] != "mentor" {
		t.Errorf("TraitPool = %v, want builder and mentor first", profile.TraitPool)
	}
}

func TestAggregateProfile_TieOrderStableAcrossClone(t *testing.T) {
	profile := models.NewEmptyProfile()
	profile = AggregateProfile(profile, parsedWith([]string{"alpha"}, []string{"sad"}, nil))
	profile = AggregateProfile(profile, parsedWith([]string{"beta"}, []string{"happy"}, nil))

	clone := profile.Clone()
	after := AggregateProfile(clone, parsedWith([]string{"gamma"}, []string{"excited"}, nil))

	// First-seen order persists through the clone, so ties stay stable
	if after.TopThemes[0] != "alpha" {
		t.Errorf("TopThemes = %v, want alpha first on tie", after.TopThemes)
	}
	if after.DominantVibe != "sad" {
		t.Errorf("DominantVibe = %q, want sad on tie", after.DominantVibe)
	}
}
