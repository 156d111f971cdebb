package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubeengine"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	SessionID string
	MoveIndex int
	Notation  string
	AppliedAt time.Time
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	q  querier
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{q: db.DB, db: db}
}

// WithTx returns a repository bound to tx.
func (r *MoveRepository) WithTx(tx *sql.Tx) *MoveRepository {
	return &MoveRepository{q: tx}
}

// CreateBatch stores moves at consecutive indexes starting at startIndex.
// Outside a transaction the batch runs in its own.
func (r *MoveRepository) CreateBatch(sessionID string, moves []cubeengine.Move, startIndex int) error {
	if r.db != nil {
		return r.db.Transaction(func(tx *sql.Tx) error {
			return r.WithTx(tx).CreateBatch(sessionID, moves, startIndex)
		})
	}

	now := time.Now().UTC().Format(timeFormat)
	for i, move := range moves {
		_, err := r.q.Exec(`
			INSERT INTO moves (session_id, move_index, notation, applied_at)
			VALUES (?, ?, ?, ?)
		`, sessionID, startIndex+i, move.Notation(), now)
		if err != nil {
			return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
		}
	}
	return nil
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.q.Query(`
		SELECT session_id, move_index, notation, applied_at
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var appliedAt string
		if err := rows.Scan(&m.SessionID, &m.MoveIndex, &m.Notation, &appliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.AppliedAt, _ = time.Parse(timeFormat, appliedAt)
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// TruncateFrom deletes every move at index >= index.
func (r *MoveRepository) TruncateFrom(sessionID string, index int) error {
	_, err := r.q.Exec("DELETE FROM moves WHERE session_id = ? AND move_index >= ?", sessionID, index)
	if err != nil {
		return fmt.Errorf("failed to truncate moves: %w", err)
	}
	return nil
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.q.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves parses stored notations back into moves.
func ToMoves(records []MoveRecord) ([]cubeengine.Move, error) {
	moves := make([]cubeengine.Move, len(records))
	for i, r := range records {
		m, err := cubeengine.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("stored move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}
