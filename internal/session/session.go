// Package session stores cubes in SQLite and applies engine operations to
// them one request at a time.
package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeengine"
	"github.com/SeamusWaldron/cubeengine/internal/storage"
)

var (
	// ErrNotFound is returned for unknown session IDs.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidDocument is returned by Import for malformed documents.
	ErrInvalidDocument = errors.New("invalid session document")
)

// State is a loaded session.
type State struct {
	ID        string                `json:"id"`
	Dim       int                   `json:"dim"`
	Stickers  []cubeengine.Sticker  `json:"stickers"`
	History   []string              `json:"history"`
	Solved    bool                  `json:"solved"`
	Phase     string                `json:"phase"`
	Notes     string                `json:"notes,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	cube      *cubeengine.Cube
}

// Cube returns the engine rebuilt from the stored state.
func (s *State) Cube() *cubeengine.Cube {
	return s.cube
}

// Result is the outcome of a mutating operation.
type Result struct {
	State   *State   `json:"state"`
	Applied []string `json:"applied"`
}

// Service round-trips cubes through storage. A fresh engine is built for
// every call; writes to the same session are serialised.
type Service struct {
	db       *storage.DB
	sessions *storage.SessionRepository
	moves    *storage.MoveRepository
	phases   *storage.PhaseRepository
	log      *zap.Logger
	opts     []cubeengine.Option

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a session service over db. Engine options apply to
// every cube the service builds.
func NewService(db *storage.DB, log *zap.Logger, opts ...cubeengine.Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:       db,
		sessions: storage.NewSessionRepository(db),
		moves:    storage.NewMoveRepository(db),
		phases:   storage.NewPhaseRepository(db),
		log:      log,
		opts:     append([]cubeengine.Option{cubeengine.WithLogger(log)}, opts...),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *Service) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// forget drops the lock of a session that no longer exists.
func (s *Service) forget(id string) {
	s.mu.Lock()
	delete(s.locks, id)
	s.mu.Unlock()
}

// Create stores a new solved cube.
func (s *Service) Create(dim int, notes string) (*State, error) {
	if err := checkDim(dim); err != nil {
		return nil, err
	}
	c, err := cubeengine.New(dim, s.opts...)
	if err != nil {
		return nil, err
	}
	stateJSON, err := encodeStickers(c.Export())
	if err != nil {
		return nil, err
	}

	id, err := s.sessions.Create(dim, stateJSON, notes)
	if err != nil {
		return nil, err
	}
	s.log.Info("session created", zap.String("session", id), zap.Int("dim", dim))
	return s.Get(id)
}

// Get loads a session.
func (s *Service) Get(id string) (*State, error) {
	row, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	records, err := s.moves.GetBySession(id)
	if err != nil {
		return nil, err
	}
	history, err := storage.ToMoves(records)
	if err != nil {
		return nil, err
	}
	stickers, err := decodeStickers(row.StateJSON)
	if err != nil {
		return nil, err
	}

	c, err := cubeengine.New(row.Dim, s.opts...)
	if err != nil {
		return nil, err
	}
	c.Load(stickers)
	c.LoadHistory(history)

	st := &State{
		ID:        row.SessionID,
		Dim:       row.Dim,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		cube:      c,
	}
	if row.Notes != nil {
		st.Notes = *row.Notes
	}
	st.refresh()
	return st, nil
}

// refresh recomputes the derived fields from the cube.
func (st *State) refresh() {
	st.Stickers = st.cube.Export()
	st.History = notations(st.cube.History())
	st.Solved = st.cube.IsSolved()
	st.Phase = st.cube.DetectPhase().String()
}

// List returns the most recently used sessions without their stickers.
func (s *Service) List(limit int) ([]storage.Session, error) {
	return s.sessions.List(limit)
}

// Delete removes a session and its history.
func (s *Service) Delete(id string) error {
	unlock := s.lock(id)
	defer unlock()

	err := s.sessions.Delete(id)
	if err == nil || errors.Is(err, storage.ErrSessionNotFound) {
		s.forget(id)
	}
	if errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}

// Phases returns the phase transitions recorded for a session.
func (s *Service) Phases(id string) ([]storage.PhaseEvent, error) {
	return s.phases.GetBySession(id)
}

// Rotate applies comma-separated moves.
func (s *Service) Rotate(id, notation string) (*Result, error) {
	return s.mutate(id, "rotate", func(c *cubeengine.Cube) ([]cubeengine.Move, error) {
		return c.Rotate(notation)
	})
}

// Apply applies already parsed moves.
func (s *Service) Apply(id string, moves ...cubeengine.Move) (*Result, error) {
	return s.mutate(id, "rotate", func(c *cubeengine.Cube) ([]cubeengine.Move, error) {
		return c.Apply(moves...)
	})
}

// Scramble applies n random moves.
func (s *Service) Scramble(id string, n int, opts ...cubeengine.ScrambleOption) (*Result, error) {
	return s.mutate(id, "scramble", func(c *cubeengine.Cube) ([]cubeengine.Move, error) {
		return c.Scramble(n, opts...)
	})
}

// RevertTo keeps the first i history moves.
func (s *Service) RevertTo(id string, i int) (*Result, error) {
	return s.mutate(id, "revert", func(c *cubeengine.Cube) ([]cubeengine.Move, error) {
		return []cubeengine.Move{}, c.RevertTo(i)
	})
}

// Undo reverts the last move.
func (s *Service) Undo(id string) (*Result, error) {
	return s.mutate(id, "undo", func(c *cubeengine.Cube) ([]cubeengine.Move, error) {
		return []cubeengine.Move{}, c.Undo()
	})
}

// Solve runs the daisy step.
func (s *Service) Solve(id string) (*Result, error) {
	return s.mutate(id, "solve", func(c *cubeengine.Cube) ([]cubeengine.Move, error) {
		return c.Solve()
	})
}

// mutate loads a session, runs fn on its cube and persists the new state
// together with the history diff in one transaction. Nothing is written
// when fn fails.
func (s *Service) mutate(id, op string, fn func(*cubeengine.Cube) ([]cubeengine.Move, error)) (*Result, error) {
	unlock := s.lock(id)
	defer unlock()

	st, err := s.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.forget(id)
		}
		return nil, err
	}
	c := st.cube
	before := c.History()

	tracker := cubeengine.NewTracker(c)
	var reached []cubeengine.Phase
	tracker.SetPhaseCallback(func(p cubeengine.Phase) {
		reached = append(reached, p)
	})

	applied, err := fn(c)
	if err != nil {
		return nil, err
	}
	tracker.Sync()

	after := c.History()
	keep := commonPrefix(before, after)
	stateJSON, err := encodeStickers(c.Export())
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *sql.Tx) error {
		moves := s.moves.WithTx(tx)
		phases := s.phases.WithTx(tx)
		if keep < len(before) {
			if err := moves.TruncateFrom(id, keep); err != nil {
				return err
			}
			if err := phases.TruncateFrom(id, len(after)); err != nil {
				return err
			}
		}
		if err := moves.CreateBatch(id, after[keep:], keep); err != nil {
			return err
		}
		for _, p := range reached {
			if _, err := phases.Create(id, len(after), p.String()); err != nil {
				return err
			}
		}
		return s.sessions.WithTx(tx).UpdateState(id, stateJSON)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.log.Debug("session updated",
		zap.String("session", id),
		zap.String("op", op),
		zap.Int("applied", len(applied)),
		zap.Int("history", len(after)),
	)

	st.UpdatedAt = time.Now().UTC()
	st.refresh()
	return &Result{State: st, Applied: notations(applied)}, nil
}

// commonPrefix returns how many leading moves a and b share.
func commonPrefix(a, b []cubeengine.Move) int {
	n := 0
	for n < len(a) && n < len(b) && a[n].Notation() == b[n].Notation() {
		n++
	}
	return n
}

func notations(moves []cubeengine.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

func encodeStickers(stickers []cubeengine.Sticker) (string, error) {
	data, err := json.Marshal(stickers)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	return string(data), nil
}

func decodeStickers(stateJSON string) ([]cubeengine.Sticker, error) {
	var stickers []cubeengine.Sticker
	if err := json.Unmarshal([]byte(stateJSON), &stickers); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return stickers, nil
}
