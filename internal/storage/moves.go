package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Faultbox/cub3r/internal/puzzle"
)

// MoveRecord is a completed move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	Seq       int
	Notation  string
	TsMs      int64
}

// Move parses the stored notation.
func (m MoveRecord) Move() (puzzle.Move, error) {
	return puzzle.ParseMove(m.Notation)
}

// MoveRepository provides access to moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Append stores a move and returns its ID.
func (r *MoveRepository) Append(sessionID string, seq int, move puzzle.Move, at time.Time) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, seq, notation, ts_ms)
		VALUES (?, ?, ?, ?)
	`, sessionID, seq, move.String(), at.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to append move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}
	return id, nil
}

// AppendBatch stores several moves in a single transaction, numbering
// them from startSeq.
func (r *MoveRepository) AppendBatch(sessionID string, startSeq int, moves []puzzle.Move, at time.Time) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, m := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, seq, notation, ts_ms)
				VALUES (?, ?, ?, ?)
			`, sessionID, startSeq+i, m.String(), at.UnixMilli())
			if err != nil {
				return fmt.Errorf("failed to append move %d: %w", startSeq+i, err)
			}
		}
		return nil
	})
}

// ListBySession retrieves a session's moves in order.
func (r *MoveRepository) ListBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, seq, notation, ts_ms
		FROM moves
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.Seq, &m.Notation, &m.TsMs); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}
