// ABOUTME: Tests for the SQLite-backed Store implementation
// ABOUTME: Uses temp-dir databases, covers round-trips and ordering

package sqlite

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/harper/diary-standalone/internal/models"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := NewStorageWithPath(filepath.Join(t.TempDir(), "diary.db"))
	if err != nil {
		t.Fatalf("NewStorageWithPath() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleEntry(id string, ts time.Time) *models.DiaryEntry {
	return &models.DiaryEntry{
		ID:        id,
		RawText:   "sample text for " + id,
		Embedding: []float64{0.25, -0.5, 0.75},
		MetaData: models.MetaData{
			WordCount: 4,
			CharCount: 20,
			TopWords:  []string{"sampl"},
		},
		Parsed: models.ParsedEntry{
			Theme:        models.StringList{"health"},
			Vibe:         models.StringList{"exhausted"},
			Intent:       "Get more sleep",
			Subtext:      "Worried about burnout",
			PersonaTrait: models.StringList{"reflective"},
			Bucket:       models.StringList{"Thought"},
		},
		Timestamp:   ts,
		CarryIn:     true,
		EmotionFlip: false,
	}
}

func TestStorage_EntryRoundTrip(t *testing.T) {
	store := testStorage(t)

	want := sampleEntry("entry_1", time.Now().UTC())
	if err := store.SaveEntry(want, "u1"); err != nil {
		t.Fatalf("SaveEntry() error = %v", err)
	}

	entries, err := store.GetRecentEntries("u1", 5)
	if err != nil {
		t.Fatalf("GetRecentEntries() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}

	got := entries[0]
	if got.ID != want.ID || got.RawText != want.RawText {
		t.Errorf("Entry = %+v, want %+v", got, want)
	}
	if len(got.Embedding) != 3 || got.Embedding[1] != -0.5 {
		t.Errorf("Embedding = %v", got.Embedding)
	}
	if got.Parsed.Intent != "Get more sleep" {
		t.Errorf("Parsed.Intent = %q", got.Parsed.Intent)
	}
	if !got.CarryIn || got.EmotionFlip {
		t.Errorf("Flags: carry_in=%t emotion_flip=%t", got.CarryIn, got.EmotionFlip)
	}
}

func TestStorage_RecentNewestFirst(t *testing.T) {
	store := testStorage(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 1; i <= 7; i++ {
		entry := sampleEntry(fmt.Sprintf("entry_%d", i), base.Add(time.Duration(i)*time.Minute))
		if err := store.SaveEntry(entry, "u1"); err != nil {
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
	if entries[0].ID != "entry_7" || entries[4].ID != "entry_3" {
		t.Errorf("Order wrong: first=%s last=%s", entries[0].ID, entries[4].ID)
	}
}

func TestStorage_UsersIsolated(t *testing.T) {
	store := testStorage(t)

	if err := store.SaveEntry(sampleEntry("a1", time.Now().UTC()), "alice"); err != nil {
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

func TestStorage_ProfileMissIsNil(t *testing.T) {
	store := testStorage(t)

	profile, err := store.GetProfile("nobody")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile != nil {
		t.Errorf("Expected nil, got %+v", profile)
	}
}

func TestStorage_ProfileUpsert(t *testing.T) {
	store := testStorage(t)

	first := models.NewEmptyProfile()
	first.EntryCount = 1
	first.DominantVibe = "sad"
	first.VibeCount["sad"] = 1
	first.VibeOrder = []string{"sad"}
	if err := store.SaveProfile(first, "u1"); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	second := first.Clone()
	second.EntryCount = 2
	second.DominantVibe = "happy"
	if err := store.SaveProfile(second, "u1"); err != nil {
		t.Fatalf("SaveProfile() second error = %v", err)
	}

	got, err := store.GetProfile("u1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got.EntryCount != 2 || got.DominantVibe != "happy" {
		t.Errorf("Profile = %+v, want replaced snapshot", got)
	}
	if len(got.VibeOrder) != 1 || got.VibeOrder[0] != "sad" {
		t.Errorf("VibeOrder = %v, first-seen order must survive the round trip", got.VibeOrder)
	}
}

func TestStorage_DuplicateEntryIDRejected(t *testing.T) {
	store := testStorage(t)

	entry := sampleEntry("dup", time.Now().UTC())
	if err := store.SaveEntry(entry, "u1"); err != nil {
		t.Fatalf("SaveEntry() error = %v", err)
	}
	if err := store.SaveEntry(entry, "u1"); err == nil {
		t.Error("Expected primary key violation for duplicate ID")
	}
}
