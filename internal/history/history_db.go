package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studiowebux/addressbook/internal/migrations"
)

const timestampLayout = "2006-01-02 15:04:05.000"

type Manager struct {
	db *sql.DB
}

func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	// Run database migrations
	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Manager{db: db}, nil
}

// Record appends an entry to the journal
func (m *Manager) Record(entry Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	query := `
		INSERT INTO activity (timestamp, session_id, kind, record_id, field, value)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := m.db.Exec(query,
		entry.Timestamp.UTC().Format(timestampLayout),
		entry.SessionID,
		entry.Kind,
		nullString(entry.RecordID),
		nullString(entry.Field),
		nullString(entry.Value),
	)
	if err != nil {
		return fmt.Errorf("failed to save activity entry: %w", err)
	}

	return nil
}

// Load returns the newest entries first. A limit <= 0 returns everything.
func (m *Manager) Load(limit int) ([]Entry, error) {
	query := `
		SELECT id, timestamp, session_id, kind,
		       COALESCE(record_id, ''), COALESCE(field, ''), COALESCE(value, '')
		FROM activity
		ORDER BY timestamp DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := m.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// LoadForSession returns one session's entries, oldest first
func (m *Manager) LoadForSession(sessionID string) ([]Entry, error) {
	query := `
		SELECT id, timestamp, session_id, kind,
		       COALESCE(record_id, ''), COALESCE(field, ''), COALESCE(value, '')
		FROM activity
		WHERE session_id = ?
		ORDER BY timestamp ASC, id ASC
	`

	rows, err := m.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session activity: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry

	for rows.Next() {
		var entry Entry
		var timestamp string

		err := rows.Scan(
			&entry.ID,
			&timestamp,
			&entry.SessionID,
			&entry.Kind,
			&entry.RecordID,
			&entry.Field,
			&entry.Value,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}

		// Timestamps are stored in UTC; the driver may hand DATETIME columns back as RFC3339
		parsedTime, err := time.ParseInLocation(timestampLayout, timestamp, time.UTC)
		if err != nil {
			parsedTime, err = time.Parse(time.RFC3339Nano, timestamp)
			if err != nil {
				parsedTime = time.Time{}
			}
		}
		entry.Timestamp = parsedTime.Local()

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (m *Manager) Clear() error {
	_, err := m.db.Exec("DELETE FROM activity")
	if err != nil {
		return fmt.Errorf("failed to clear activity: %w", err)
	}
	return nil
}

func (m *Manager) GetCount() (int, error) {
	var count int
	err := m.db.QueryRow("SELECT COUNT(*) FROM activity").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get activity count: %w", err)
	}
	return count, nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
