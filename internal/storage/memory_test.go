// ABOUTME: Tests for the in-memory Store implementation
// ABOUTME: Verifies ordering, isolation between users, and clone semantics

package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/harper/diary-standalone/internal/models"
)

func testEntry(id string) *models.DiaryEntry {
	return &models.DiaryEntry{
		ID:        id,
		RawText:   "entry " + id,
		Embedding: []float64{0.1, 0.2},
		Parsed: models.ParsedEntry{
			Theme: models.StringList{"general"},
			Vibe:  models.StringList{"neutral"},
		},
		Timestamp: time.Now().UTC(),
	}
}

func TestMemoryStore_EmptyUser(t *testing.T) {
	store := NewMemoryStore()

	entries, err := store.GetRecentEntries("nobody", 5)
	if err != nil {
		t.Fatalf("GetRecentEntries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}

	profile, err := store.GetProfile("nobody")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile != nil {
		t.Error("Expected nil profile for unknown user")
	}
}

func TestMemoryStore_RecentNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	for i := 1; i <= 7; i++ {
		if err := store.SaveEntry(testEntry(fmt.Sprintf("e%d", i)), "u1"); err != nil {
			t.Fatalf("SaveEntry() error = %v", err)
		}
	}

	entries, err := store.GetRecentEntries("u1", 5)
	if err != nil {
		t.Fatalf("GetRecentEntries() error = %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("len = %d, want 5", len(entries))
	}
	if entries[0].ID != "e7" || entries[4].ID != "e3" {
		t.Errorf("Order wrong: first=%s last=%s, want e7..e3", entries[0].ID, entries[4].ID)
	}
}

func TestMemoryStore_UsersIsolated(t *testing.T) {
	store := NewMemoryStore()
	if err := store.SaveEntry(testEntry("a1"), "alice"); err != nil {
		t.Fatalf("SaveEntry() error = %v", err)
	}

	entries, err := store.GetRecentEntries("bob", 5)
	if err != nil {
		t.Fatalf("GetRecentEntries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("bob sees alice's entries: %v", entries)
	}
}

func TestMemoryStore_ProfileCloneIsolation(t *testing.T) {
	store := NewMemoryStore()

	profile := models.NewEmptyProfile()
	profile.EntryCount = 3
	profile.ThemeCount["health"] = 3
	if err := store.SaveProfile(profile, "u1"); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	// Mutating the caller's copy must not leak into the store
	profile.ThemeCount["health"] = 99

	got, err := store.GetProfile("u1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got.ThemeCount["health"] != 3 {
		t.Errorf("Stored profile leaked caller mutation: %v", got.ThemeCount)
	}

	// Mutating the returned copy must not leak either
	got.ThemeCount["health"] = 42
	again, _ := store.GetProfile("u1")
	if again.ThemeCount["health"] != 3 {
		t.Errorf("Stored profile leaked reader mutation: %v", again.ThemeCount)
	}
}

func TestMemoryStore_NilRejected(t *testing.T) {
	store := NewMemoryStore()
	if err := store.SaveEntry(nil, "u1"); err == nil {
		t.Error("Expected error for nil entry")
	}
	if err := store.SaveProfile(nil, "u1"); err == nil {
		t.Error("Expected error for nil profile")
	}
}

func TestMemoryStore_EntrySliceIsolation(t *testing.T) {
	store := NewMemoryStore()

	entry := testEntry("e1")
	if err := store.SaveEntry(entry, "u1"); err != nil {
		t.Fatalf("SaveEntry() error = %v", err)
	}

	// Mutating the caller's entry after save must not leak into the store
	entry.Embedding[0] = 99
	entry.Parsed.Theme[0] = "mutated"

	got, err := store.GetRecentEntries("u1", 1)
	if err != nil {
		t.Fatalf("GetRecentEntries() error = %v", err)
	}
	if got[0].Embedding[0] != 0.1 {
		t.Errorf("Embedding[0] = %v, want 0.1 after caller mutation", got[0].Embedding[0])
	}
	if got[0].Parsed.Theme[0] != "general" {
		t.Errorf("Theme[0] = %q, want %q after caller mutation", got[0].Parsed.Theme[0], "general")
	}

	// Mutating a returned entry must not leak back either
	got[0].Embedding[1] = 99
	got[0].Parsed.Vibe[0] = "mutated"

	again, err := store.GetRecentEntries("u1", 1)
	if err != nil {
		t.Fatalf("GetRecentEntries() error = %v", err)
	}
	if again[0].Embedding[1] != 0.2 {
		t.Errorf("Embedding[1] = %v, want 0.2 after reader mutation", again[0].Embedding[1])
	}
	if again[0].Parsed.Vibe[0] != "neutral" {
		t.Errorf("Vibe[0] = %q, want %q after reader mutation", again[0].Parsed.Vibe[0], "neutral")
	}
}
