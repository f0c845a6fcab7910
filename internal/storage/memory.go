// ABOUTME: In-memory Store implementation for tests, demos, and simulations
// ABOUTME: Guards all maps with a single mutex; profile writes are serialized
package storage

import (
	"fmt"
	"sync"

	"github.com/harper/diary-standalone/internal/models"
)

// MemoryStore keeps all entries and profiles in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	entries  map[string][]models.DiaryEntry // per user, oldest first
	profiles map[string]*models.UserProfile
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:  make(map[string][]models.DiaryEntry),
		profiles: make(map[string]*models.UserProfile),
	}
}

// GetRecentEntries returns up to limit entries for the user, newest first
func (s *MemoryStore) GetRecentEntries(userID string, limit int) ([]models.DiaryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.entries[userID]
	if limit > len(all) {
		limit = len(all)
	}

	out := make([]models.DiaryEntry, 0, limit)
	for i := len(all) - 1; i >= len(all)-limit; i-- {
		out = append(out, copyEntry(all[i]))
	}
	return out, nil
}

// GetProfile returns the user's profile or nil when absent
func (s *MemoryStore) GetProfile(userID string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

// SaveEntry appends the entry to the user's history
func (s *MemoryStore) SaveEntry(entry *models.DiaryEntry, userID string) error {
	if entry == nil {
		return fmt.Errorf("entry is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[userID] = append(s.entries[userID], copyEntry(*entry))
	return nil
}

// SaveProfile replaces the user's profile snapshot
func (s *MemoryStore) SaveProfile(profile *models.UserProfile, userID string) error {
	if profile == nil {
		return fmt.Errorf("profile is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[userID] = profile.Clone()
	return nil
}

// copyEntry duplicates an entry's slice fields so stored state and returned
// values share no backing arrays with callers
func copyEntry(e models.DiaryEntry) models.DiaryEntry {
	e.Embedding = append([]float64{}, e.Embedding...)
	e.MetaData.TopWords = append([]string{}, e.MetaData.TopWords...)
	e.Parsed.Theme = append(models.StringList{}, e.Parsed.Theme...)
	e.Parsed.Vibe = append(models.StringList{}, e.Parsed.Vibe...)
	e.Parsed.PersonaTrait = append(models.StringList{}, e.Parsed.PersonaTrait...)
	e.Parsed.Bucket = append(models.StringList{}, e.Parsed.Bucket...)
	return e
}

// EntryCount returns the number of stored entries for the user
func (s *MemoryStore) EntryCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries[userID])
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
