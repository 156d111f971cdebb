package cubeengine

import (
	"fmt"

	"go.uber.org/zap"
)

// Rotate parses a comma-separated move string and applies it.
// It returns the canonical moves that were applied, in order.
func (c *Cube) Rotate(notation string) ([]Move, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return nil, err
	}
	return c.Apply(moves...)
}

// Apply applies a sequence of moves left to right. The whole batch is
// validated before anything is applied, so a bad move leaves both state
// and history untouched.
func (c *Cube) Apply(moves ...Move) ([]Move, error) {
	canonical := make([]Move, len(moves))
	for i, m := range moves {
		cm, err := c.validate(m)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		canonical[i] = cm
	}

	for _, m := range canonical {
		c.applyOne(m)
	}

	if len(canonical) > 0 {
		c.log.Debug("applied moves",
			zap.String("moves", FormatMoves(canonical)),
			zap.Int("history", len(c.history)),
		)
	}
	return canonical, nil
}

// validate canonicalizes m and checks it against the cube dimension.
func (c *Cube) validate(m Move) (Move, error) {
	face, ok := parseFace(faceLetter(m.Face))
	if !ok {
		return Move{}, fmt.Errorf("%w: invalid face %q", ErrInvalidMoveSyntax, m.Face)
	}
	if m.Turns < 0 {
		return Move{}, fmt.Errorf("%w: negative turn count %d", ErrInvalidMoveSyntax, m.Turns)
	}
	cm := m.Canonical()
	cm.Face = face
	for _, l := range cm.Layers {
		if l < 1 || l > c.dim {
			return Move{}, fmt.Errorf("%w: layer %d outside 1..%d", ErrInvalidMoveSyntax, l, c.dim)
		}
	}
	return cm, nil
}

func faceLetter(f Face) byte {
	if len(f) != 1 {
		return 0
	}
	return f[0]
}

// applyOne turns the selected layers and records the move.
func (c *Cube) applyOne(m Move) {
	if turns := m.NetTurns(); turns != 0 {
		rot := RotationMatrix(m.Face, turns)
		for i := range c.stickers {
			if inLayers(c.stickers[i].Pos(), m.Face, m.Layers, c.dim) {
				c.stickers[i].setPos(rot.Apply(c.stickers[i].Pos()))
			}
		}
	}

	if c.cfg.moveHistory {
		c.history = append(c.history, m)
	}
}

// inLayers reports whether position p belongs to any of the given layers
// counted inward from face f. Layer k covers the sign-adjusted axis
// coordinates dim-2k, dim-2k+1 and dim-2k+2: its own slice plus the face
// plane when k is 1 or dim.
func inLayers(p Vec, f Face, layers []int, dim int) bool {
	v := f.Sign() * p.get(f.Axis())
	for _, k := range layers {
		center := dim - 2*k + 1
		if v >= center-1 && v <= center+1 {
			return true
		}
	}
	return false
}

// Selected returns copies of the stickers a move would turn, without
// applying it.
func (c *Cube) Selected(m Move) ([]Sticker, error) {
	cm, err := c.validate(m)
	if err != nil {
		return nil, err
	}
	var out []Sticker
	for _, s := range c.stickers {
		if inLayers(s.Pos(), cm.Face, cm.Layers, c.dim) {
			out = append(out, s)
		}
	}
	return out, nil
}
