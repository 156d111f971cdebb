package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// PhaseEvent records the moment a session reached a detected phase.
type PhaseEvent struct {
	EventID   int64
	SessionID string
	MoveIndex int
	Phase     string
	ReachedAt time.Time
}

// PhaseRepository stores phase transitions.
type PhaseRepository struct {
	q querier
}

// NewPhaseRepository creates a new phase repository.
func NewPhaseRepository(db *DB) *PhaseRepository {
	return &PhaseRepository{q: db.DB}
}

// WithTx returns a repository bound to tx.
func (r *PhaseRepository) WithTx(tx *sql.Tx) *PhaseRepository {
	return &PhaseRepository{q: tx}
}

// Create records that sessionID reached phase after moveIndex moves.
func (r *PhaseRepository) Create(sessionID string, moveIndex int, phase string) (int64, error) {
	result, err := r.q.Exec(`
		INSERT INTO phase_events (session_id, move_index, phase, reached_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, moveIndex, phase, time.Now().UTC().Format(timeFormat))
	if err != nil {
		return 0, fmt.Errorf("failed to create phase event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get phase event ID: %w", err)
	}
	return id, nil
}

// GetBySession retrieves a session's phase events in order.
func (r *PhaseRepository) GetBySession(sessionID string) ([]PhaseEvent, error) {
	rows, err := r.q.Query(`
		SELECT event_id, session_id, move_index, phase, reached_at
		FROM phase_events
		WHERE session_id = ?
		ORDER BY event_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase events: %w", err)
	}
	defer rows.Close()

	var events []PhaseEvent
	for rows.Next() {
		var e PhaseEvent
		var reachedAt string
		if err := rows.Scan(&e.EventID, &e.SessionID, &e.MoveIndex, &e.Phase, &reachedAt); err != nil {
			return nil, fmt.Errorf("failed to scan phase event: %w", err)
		}
		e.ReachedAt, _ = time.Parse(timeFormat, reachedAt)
		events = append(events, e)
	}

	return events, rows.Err()
}

// TruncateFrom deletes phase events reached after more than moveIndex moves.
func (r *PhaseRepository) TruncateFrom(sessionID string, moveIndex int) error {
	_, err := r.q.Exec("DELETE FROM phase_events WHERE session_id = ? AND move_index > ?", sessionID, moveIndex)
	if err != nil {
		return fmt.Errorf("failed to truncate phase events: %w", err)
	}
	return nil
}
