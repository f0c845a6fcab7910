// ABOUTME: UserProfile rolling aggregate of a user's diary history
// ABOUTME: One live snapshot per user, replaced wholesale on every pipeline run
package models

// UserProfile is the rolling aggregate state for one user.
// ThemeOrder and VibeOrder record the first-seen order of counter keys; ties
// in top_themes and dominant_vibe resolve by first-seen order, and Go maps
// carry no iteration order of their own.
type UserProfile struct {
	TopThemes    []string       `json:"top_themes"`
	ThemeCount   map[string]int `json:"theme_count"`
	ThemeOrder   []string       `json:"theme_order"`
	DominantVibe string         `json:"dominant_vibe"`
	VibeCount    map[string]int `json:"vibe_count"`
	VibeOrder    []string       `json:"vibe_order"`
	BucketCount  map[string]int `json:"bucket_count"`
	TraitPool    []string       `json:"trait_pool"`
	LastTheme    string         `json:"last_theme"`
	EntryCount   int            `json:"entry_count"`
}

// NewEmptyProfile returns the cold-start profile for a first-time user.
// DominantVibe starts at the "neutral" sentinel so the contrast check knows
// to skip until real history accumulates.
func NewEmptyProfile() *UserProfile {
	return &UserProfile{
		TopThemes:    []string{},
		ThemeCount:   map[string]int{},
		ThemeOrder:   []string{},
		DominantVibe: DefaultVibe,
		VibeCount:    map[string]int{},
		VibeOrder:    []string{},
		BucketCount:  map[string]int{},
		TraitPool:    []string{},
		LastTheme:    "",
		EntryCount:   0,
	}
}

// Clone returns a deep copy sharing no mutable state with the receiver
func (up *UserProfile) Clone() *UserProfile {
	out := &UserProfile{
		TopThemes:    append([]string{}, up.TopThemes...),
		ThemeCount:   make(map[string]int, len(up.ThemeCount)),
		ThemeOrder:   append([]string{}, up.ThemeOrder...),
		DominantVibe: up.DominantVibe,
		VibeCount:    make(map[string]int, len(up.VibeCount)),
		VibeOrder:    append([]string{}, up.VibeOrder...),
		BucketCount:  make(map[string]int, len(up.BucketCount)),
		TraitPool:    append([]string{}, up.TraitPool...),
		LastTheme:    up.LastTheme,
		EntryCount:   up.EntryCount,
	}
	for k, v := range up.ThemeCount {
		out.ThemeCount[k] = v
	}
	for k, v := range up.VibeCount {
		out.VibeCount[k] = v
	}
	for k, v := range up.BucketCount {
		out.BucketCount[k] = v
	}
	return out
}
