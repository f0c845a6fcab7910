// ABOUTME: SQLite-backed Store implementation for diary entries and profiles
// ABOUTME: Serializes profile writes with a mutex; WAL handles concurrent reads
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/harper/diary-standalone/internal/models"
)

// Storage implements storage.Store on SQLite
type Storage struct {
	db *DB
	mu sync.Mutex // serializes profile read-modify-write across goroutines
}

// NewStorage opens the default database path
func NewStorage() (*Storage, error) {
	return NewStorageWithPath(DefaultDBPath())
}

// NewStorageWithPath opens a database at a custom path
func NewStorageWithPath(dbPath string) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Storage{db: db}, nil
}

// GetRecentEntries returns up to limit entries for the user, newest first
func (s *Storage) GetRecentEntries(userID string, limit int) ([]models.DiaryEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, raw_text, embedding, meta_data, parsed, carry_in, emotion_flip, created_at
		FROM entries
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []models.DiaryEntry{}
	for rows.Next() {
		var entry models.DiaryEntry
		var embJSON, metaJSON, parsedJSON string
		var carryIn, emotionFlip int
		if err := rows.Scan(&entry.ID, &entry.RawText, &embJSON, &metaJSON, &parsedJSON, &carryIn, &emotionFlip, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if err := json.Unmarshal([]byte(embJSON), &entry.Embedding); err != nil {
			return nil, fmt.Errorf("decoding embedding for %s: %w", entry.ID, err)
		}
		if err := json.Unmarshal([]byte(metaJSON), &entry.MetaData); err != nil {
			return nil, fmt.Errorf("decoding meta_data for %s: %w", entry.ID, err)
		}
		if err := json.Unmarshal([]byte(parsedJSON), &entry.Parsed); err != nil {
			return nil, fmt.Errorf("decoding parsed for %s: %w", entry.ID, err)
		}
		entry.CarryIn = carryIn != 0
		entry.EmotionFlip = emotionFlip != 0
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetProfile returns the user's profile or nil when absent
func (s *Storage) GetProfile(userID string) (*models.UserProfile, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM profiles WHERE user_id = ?`, userID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &profile, nil
}

// SaveEntry durably appends a completed entry to the user's history
func (s *Storage) SaveEntry(entry *models.DiaryEntry, userID string) error {
	if entry == nil {
		return fmt.Errorf("entry is required")
	}

	embJSON, err := json.Marshal(entry.Embedding)
	if err != nil {
		return fmt.Errorf("encoding embedding: %w", err)
	}
	metaJSON, err := json.Marshal(entry.MetaData)
	if err != nil {
		return fmt.Errorf("encoding meta_data: %w", err)
	}
	parsedJSON, err := json.Marshal(entry.Parsed)
	if err != nil {
		return fmt.Errorf("encoding parsed: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO entries (id, user_id, raw_text, embedding, meta_data, parsed, carry_in, emotion_flip, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, userID, entry.RawText, string(embJSON), string(metaJSON), string(parsedJSON),
		boolToInt(entry.CarryIn), boolToInt(entry.EmotionFlip), entry.Timestamp)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

// SaveProfile replaces the user's profile snapshot
func (s *Storage) SaveProfile(profile *models.UserProfile, userID string) error {
	if profile == nil {
		return fmt.Errorf("profile is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO profiles (user_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, userID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
