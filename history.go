package cubeengine

import (
	"fmt"

	"go.uber.org/zap"
)

// RevertTo rewinds the cube so that only the first i history moves remain
// applied. The state is rebuilt from a solved cube by replaying them, which
// keeps multi-layer and multi-turn moves exact without tracking inverses.
func (c *Cube) RevertTo(i int) error {
	if !c.cfg.moveHistory {
		return ErrHistoryDisabled
	}
	if i < 0 || i > len(c.history) {
		return fmt.Errorf("%w: %d not in 0..%d", ErrHistoryIndex, i, len(c.history))
	}

	// Replay into a copy so a history that no longer applies leaves c untouched
	replay := c.history[:i:i]
	next := c.Clone()
	next.Reset()
	if _, err := next.Apply(replay...); err != nil {
		return fmt.Errorf("failed to replay history: %w", err)
	}
	c.stickers, c.history = next.stickers, next.history

	c.log.Debug("reverted", zap.Int("index", i))
	return nil
}

// Undo reverts the most recent move. It is a no-op on an empty history.
func (c *Cube) Undo() error {
	if !c.cfg.moveHistory {
		return ErrHistoryDisabled
	}
	if len(c.history) == 0 {
		return nil
	}
	return c.RevertTo(len(c.history) - 1)
}
