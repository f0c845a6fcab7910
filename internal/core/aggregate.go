// ABOUTME: Profile aggregation: fold one parsed entry into the user profile
// ABOUTME: Pure clone-and-fold, never mutates the input profile
package core

import (
	"sort"

	"github.com/harper/diary-standalone/internal/models"
)

const (
	maxTopThemes = 4
	maxTraitPool = 10
)

// AggregateProfile folds a parsed entry into a copy of the profile. Counters
// only ever grow; top themes and dominant vibe are recomputed from the full
// counters with first-seen order breaking ties.
func AggregateProfile(profile *models.UserProfile, parsed models.ParsedEntry) *models.UserProfile {
	if profile == nil {
		profile = models.NewEmptyProfile()
	}
	next := profile.Clone()

	for _, theme := range parsed.Theme {
		if next.ThemeCount[theme] == 0 {
			next.ThemeOrder = append(next.ThemeOrder, theme)
		}
		next.ThemeCount[theme]++
	}
	for _, vibe := range parsed.Vibe {
		if next.VibeCount[vibe] == 0 {
			next.VibeOrder = append(next.VibeOrder, vibe)
		}
		next.VibeCount[vibe]++
	}
	for _, bucket := range parsed.Bucket {
		next.BucketCount[bucket]++
	}

	for _, trait := range parsed.PersonaTrait {
		if !contains(next.TraitPool, trait) {
			next.TraitPool = append(next.TraitPool, trait)
		}
	}
	if len(next.TraitPool) > maxTraitPool {
		next.TraitPool = next.TraitPool[:maxTraitPool]
	}

	next.TopThemes = rankByCount(next.ThemeCount, next.ThemeOrder, maxTopThemes)
	if top := rankByCount(next.VibeCount, next.VibeOrder, 1); len(top) > 0 {
		next.DominantVibe = top[0]
	}

	if len(parsed.Theme) > 0 {
		next.LastTheme = parsed.Theme[0]
	}
	next.EntryCount++

	return next
}

// rankByCount orders keys by descending count, breaking ties by first-seen
// position, and keeps at most limit entries
func rankByCount(counts map[string]int, order []string, limit int) []string {
	pos := make(map[string]int, len(order))
	for i, k := range order {
		pos[k] = i
	}
	keys := append([]string{}, order...)
	sort.SliceStable(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return pos[keys[i]] < pos[keys[j]]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
