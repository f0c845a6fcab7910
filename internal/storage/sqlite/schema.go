// ABOUTME: SQLite database schema for diary storage
// ABOUTME: Creates entry and profile tables with JSON columns for structured fields
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Diary entries table (immutable, append-only per user)
CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    raw_text TEXT NOT NULL,
    embedding TEXT NOT NULL,
    meta_data TEXT NOT NULL,
    parsed TEXT NOT NULL,
    carry_in INTEGER NOT NULL DEFAULT 0,
    emotion_flip INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL
);

-- Profiles table (one live snapshot per user, replaced on every run)
CREATE TABLE IF NOT EXISTS profiles (
    user_id TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_entries_user ON entries(user_id, created_at DESC);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
