package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a stored cube in the database.
type Session struct {
	SessionID string
	Dim       int
	StateJSON string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	q querier
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{q: db.DB}
}

// WithTx returns a repository bound to tx.
func (r *SessionRepository) WithTx(tx *sql.Tx) *SessionRepository {
	return &SessionRepository{q: tx}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(dim int, stateJSON, notes string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(timeFormat)

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.q.Exec(`
		INSERT INTO sessions (session_id, dim, state_json, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, dim, stateJSON, notesPtr, now, now)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Get retrieves a session by ID. It returns nil, nil when no session matches.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.q.QueryRow(`
		SELECT session_id, dim, state_json, notes, created_at, updated_at
		FROM sessions
		WHERE session_id = ?
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

// List retrieves the most recently updated sessions.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.q.Query(`
		SELECT session_id, dim, state_json, notes, created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC
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

// UpdateState replaces the stored sticker state of a session.
func (r *SessionRepository) UpdateState(sessionID, stateJSON string) error {
	result, err := r.q.Exec(`
		UPDATE sessions
		SET state_json = ?, updated_at = ?
		WHERE session_id = ?
	`, stateJSON, time.Now().UTC().Format(timeFormat), sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return requireRow(result, sessionID)
}

// Delete removes a session and, through the foreign keys, its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	result, err := r.q.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return requireRow(result, sessionID)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var createdAt, updatedAt string
	if err := row.Scan(&s.SessionID, &s.Dim, &s.StateJSON, &s.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	s.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return &s, nil
}

func requireRow(result sql.Result, sessionID string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}
