package cubeengine

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	moveHistory bool
	rng         *rand.Rand
	logger      *zap.Logger
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		logger:      zap.NewNop(),
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), every applied move is stored and RevertTo works.
// Disable this for long-running simulations to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithRand sets the random source used by Scramble.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed makes Scramble deterministic.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLogger sets the logger used for debug tracing of moves and solver steps.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
