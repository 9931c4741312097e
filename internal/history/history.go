// Package history persists the REPL's input lines across sessions. It
// enriches the line-oriented history file described in §6 with a small
// SQLite-backed store keyed by session, so a future `history` command
// could filter by session without parsing a flat text file.
package history

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store is an append-only log of submitted lines and their outcome.
type Store struct {
	db        *sql.DB
	sessionID uuid.UUID
	limit     int
}

// Entry is one recorded line.
type Entry struct {
	SessionID uuid.UUID
	Line      string
	Result    string
	IsError   bool
	At        time.Time
}

// Open creates (if absent) and opens the SQLite database at path, starting
// a fresh session id for this process. limit <= 0 means unbounded.
func Open(path string, limit int) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, sessionID: uuid.New(), limit: limit}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT    NOT NULL,
	line       TEXT    NOT NULL,
	result     TEXT    NOT NULL,
	is_error   INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
`

// Append records one processed line. Failures to write history never
// surface as a line-processing error (§5: the core does not depend on this
// collaborator), so callers should log, not fail, on a non-nil error.
func (s *Store) Append(line, result string, isError bool) error {
	_, err := s.db.Exec(
		`INSERT INTO history (session_id, line, result, is_error, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.sessionID.String(), line, result, boolToInt(isError), time.Now(),
	)
	if err != nil {
		return err
	}
	return s.trim()
}

func (s *Store) trim() error {
	if s.limit <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		`DELETE FROM history WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)`,
		s.limit,
	)
	return err
}

// Recent returns the n most recent entries across all sessions, oldest
// first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT session_id, line, result, is_error, created_at FROM history ORDER BY id DESC LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var sid string
		if err := rows.Scan(&sid, &e.Line, &e.Result, &e.IsError, &e.At); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(sid)
		if err != nil {
			return nil, err
		}
		e.SessionID = parsed
		out = append(out, e)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
