// ABOUTME: Store interface for diary entry and profile persistence
// ABOUTME: Injected into the pipeline so backends are substitutable in tests
package storage

import "github.com/harper/diary-standalone/internal/models"

// Store is the persistence collaborator for the pipeline. Implementations
// must serialize per-user profile writes or accept last-write-wins; the
// pipeline itself performs an unguarded read-modify-write per run.
type Store interface {
	// GetRecentEntries returns up to limit entries for the user, newest first.
	// Unknown users get an empty slice, not an error.
	GetRecentEntries(userID string, limit int) ([]models.DiaryEntry, error)

	// GetProfile returns the user's profile, or nil without error when the
	// user has none yet. A miss must not create persistent state.
	GetProfile(userID string) (*models.UserProfile, error)

	// SaveEntry durably appends a completed entry to the user's history
	SaveEntry(entry *models.DiaryEntry, userID string) error

	// SaveProfile replaces the user's profile snapshot
	SaveProfile(profile *models.UserProfile, userID string) error

	// Close releases backend resources
	Close() error
}
