package session

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeengine"
)

// Document is the portable form of a session used by export and import.
type Document struct {
	Dim      int                  `json:"dim"`
	Stickers []cubeengine.Sticker `json:"stickers"`
	History  []string             `json:"history"`
	Notes    string               `json:"notes,omitempty"`
}

// Export returns the portable form of a session.
func (s *Service) Export(id string) (*Document, error) {
	st, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return &Document{
		Dim:      st.Dim,
		Stickers: st.Stickers,
		History:  st.History,
		Notes:    st.Notes,
	}, nil
}

// MaxDim is the largest stored cube. Notation has one digit per layer, so
// layers past 9 cannot be written.
const MaxDim = 9

func checkDim(dim int) error {
	if dim < 1 || dim > MaxDim {
		return fmt.Errorf("%w: %d not in 1..%d", cubeengine.ErrInvalidDimension, dim, MaxDim)
	}
	return nil
}

// Validate checks the shape of a document before it is stored. The history
// must replay on a cube of the document's dimension.
func (d *Document) Validate() ([]cubeengine.Move, error) {
	if err := checkDim(d.Dim); err != nil {
		return nil, err
	}
	if want := 6 * d.Dim * d.Dim; len(d.Stickers) != want {
		return nil, fmt.Errorf("%w: %d stickers, want %d for dim %d", ErrInvalidDocument, len(d.Stickers), want, d.Dim)
	}
	moves := make([]cubeengine.Move, len(d.History))
	for i, n := range d.History {
		m, err := cubeengine.ParseMove(n)
		if err != nil {
			return nil, fmt.Errorf("history move %d: %w", i, err)
		}
		moves[i] = m
	}

	scratch, err := cubeengine.New(d.Dim, cubeengine.WithMoveHistory(false))
	if err != nil {
		return nil, err
	}
	if _, err := scratch.Apply(moves...); err != nil {
		return nil, fmt.Errorf("%w: history does not replay: %w", ErrInvalidDocument, err)
	}
	return moves, nil
}

// Import stores a document as a new session and returns it.
func (s *Service) Import(d *Document) (*State, error) {
	moves, err := d.Validate()
	if err != nil {
		return nil, err
	}
	stateJSON, err := encodeStickers(d.Stickers)
	if err != nil {
		return nil, err
	}

	var id string
	err = s.db.Transaction(func(tx *sql.Tx) error {
		var err error
		id, err = s.sessions.WithTx(tx).Create(d.Dim, stateJSON, d.Notes)
		if err != nil {
			return err
		}
		return s.moves.WithTx(tx).CreateBatch(id, moves, 0)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import session: %w", err)
	}

	s.log.Info("session imported", zap.String("session", id), zap.Int("moves", len(moves)))
	return s.Get(id)
}
