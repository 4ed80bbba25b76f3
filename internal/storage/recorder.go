package storage

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cub3r/internal/logger"
	"github.com/Faultbox/cub3r/internal/puzzle"
)

// Recorder writes every completed move of a cube into a new session.
type Recorder struct {
	sessions  *SessionRepository
	moves     *MoveRepository
	sessionID string
	seq       int
	now       func() time.Time
}

// NewRecorder creates a session for frontend and returns a recorder for it.
func NewRecorder(db *DB, frontend string) (*Recorder, error) {
	r := &Recorder{
		sessions: NewSessionRepository(db),
		moves:    NewMoveRepository(db),
		now:      time.Now,
	}
	id, err := r.sessions.Create(frontend)
	if err != nil {
		return nil, err
	}
	r.sessionID = id
	logger.Info("session started", zap.String("session", id), zap.String("frontend", frontend))
	return r, nil
}

// SessionID returns the ID of the session being recorded.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Attach registers the recorder as a move listener on cube.
func (r *Recorder) Attach(cube *puzzle.Cube) {
	cube.OnMoveComplete(func(m puzzle.Move) {
		if err := r.Record(m); err != nil {
			logger.Warn("failed to record move", zap.Stringer("move", m), zap.Error(err))
		}
	})
}

// Record appends one move.
func (r *Recorder) Record(m puzzle.Move) error {
	if _, err := r.moves.Append(r.sessionID, r.seq, m, r.now()); err != nil {
		return fmt.Errorf("session %s: %w", r.sessionID, err)
	}
	r.seq++
	return nil
}

// RecordBatch appends a whole sequence in one transaction.
func (r *Recorder) RecordBatch(moves []puzzle.Move) error {
	if err := r.moves.AppendBatch(r.sessionID, r.seq, moves, r.now()); err != nil {
		return fmt.Errorf("session %s: %w", r.sessionID, err)
	}
	r.seq += len(moves)
	return nil
}

// Close ends the session.
func (r *Recorder) Close() error {
	logger.Info("session ended", zap.String("session", r.sessionID), zap.Int("moves", r.seq))
	return r.sessions.End(r.sessionID)
}
