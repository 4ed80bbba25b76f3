package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one run of a frontend against a cube.
type Session struct {
	SessionID string
	StartedAt time.Time
	EndedAt   *time.Time
	Frontend  string
	MoveCount int
}

// SessionRepository provides access to sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a new session and returns its ID.
func (r *SessionRepository) Create(frontend string) (string, error) {
	id := uuid.New().String()
	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, frontend)
		VALUES (?, ?, ?)
	`, id, time.Now().UTC().Format(timeLayout), frontend)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// End marks a session as finished.
func (r *SessionRepository) End(sessionID string) error {
	res, err := r.db.Exec(`
		UPDATE sessions SET ended_at = ? WHERE session_id = ?
	`, time.Now().UTC().Format(timeLayout), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to end session: %s not found", sessionID)
	}
	return nil
}

const sessionColumns = `
	s.session_id, s.started_at, s.ended_at, s.frontend,
	(SELECT COUNT(*) FROM moves m WHERE m.session_id = s.session_id)`

// Get retrieves a session by ID. It returns nil if there is none.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+`
		FROM sessions s
		WHERE s.session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List retrieves the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`SELECT `+sessionColumns+`
		FROM sessions s
		ORDER BY s.started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// Delete removes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var startedAt string
	var endedAt sql.NullString
	if err := row.Scan(&s.SessionID, &startedAt, &endedAt, &s.Frontend, &s.MoveCount); err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(timeLayout, startedAt)
	if endedAt.Valid {
		t, _ := time.Parse(timeLayout, endedAt.String)
		s.EndedAt = &t
	}
	return &s, nil
}
