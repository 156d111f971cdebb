package cubeengine

import (
	"fmt"

	"go.uber.org/zap"
)

// ScrambleOption configures a Scramble call.
type ScrambleOption func(*scrambleConfig)

type scrambleConfig struct {
	randomLayers bool
	randomTurns  bool
}

// WithRandomLayers draws each move's layer uniformly from 1..dim (default).
// When disabled every move turns the outer layer.
func WithRandomLayers(enabled bool) ScrambleOption {
	return func(c *scrambleConfig) {
		c.randomLayers = enabled
	}
}

// WithRandomTurns draws each move's turn count uniformly from {1,2,3}
// (default). When disabled every move is a single quarter turn.
func WithRandomTurns(enabled bool) ScrambleOption {
	return func(c *scrambleConfig) {
		c.randomTurns = enabled
	}
}

// Scramble generates n random moves, applies them and returns them.
// Consecutive moves on the same face are not filtered out.
func (c *Cube) Scramble(n int, opts ...ScrambleOption) ([]Move, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScrambleLength, n)
	}

	cfg := scrambleConfig{randomLayers: true, randomTurns: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	moves := make([]Move, n)
	for i := range moves {
		m := Move{Layers: []int{1}, Face: Faces[c.rng.IntN(len(Faces))], Turns: 1}
		if cfg.randomTurns {
			m.Turns = 1 + c.rng.IntN(3)
		}
		if cfg.randomLayers {
			m.Layers[0] = 1 + c.rng.IntN(c.dim)
		}
		moves[i] = m
	}

	applied, err := c.Apply(moves...)
	if err != nil {
		return nil, err
	}
	c.log.Debug("scrambled", zap.Int("moves", n))
	return applied, nil
}
