package cubeengine

// Tracker wraps a Cube and provides phase change detection.
type Tracker struct {
	cube          *Cube
	lastPhase     Phase
	highestPhase  Phase // Monotonic - never goes backwards until Reset
	phaseCallback func(phase Phase)
}

// NewTracker creates a tracker around an existing cube.
func NewTracker(c *Cube) *Tracker {
	p := c.DetectPhase()
	return &Tracker{
		cube:         c,
		lastPhase:    p,
		highestPhase: p,
	}
}

// SetPhaseCallback sets a callback that fires whenever the detected phase changes.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// Reset resets the cube to solved and restarts phase tracking.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.lastPhase = PhaseSolved
	t.highestPhase = PhaseScrambled // Start at lowest phase
}

// Apply applies moves and checks for a phase transition.
func (t *Tracker) Apply(moves ...Move) ([]Move, error) {
	applied, err := t.cube.Apply(moves...)
	if err != nil {
		return nil, err
	}
	t.checkPhaseTransition()
	return applied, nil
}

// Rotate parses and applies moves and checks for a phase transition.
func (t *Tracker) Rotate(notation string) ([]Move, error) {
	applied, err := t.cube.Rotate(notation)
	if err != nil {
		return nil, err
	}
	t.checkPhaseTransition()
	return applied, nil
}

// Sync re-reads the phase after the cube was changed directly
// (Scramble, Solve, RevertTo).
func (t *Tracker) Sync() {
	t.checkPhaseTransition()
}

func (t *Tracker) checkPhaseTransition() {
	current := t.cube.DetectPhase()
	if current > t.highestPhase {
		t.highestPhase = current
	}
	if current != t.lastPhase {
		t.lastPhase = current
		if t.phaseCallback != nil {
			t.phaseCallback(current)
		}
	}
}

// CurrentPhase returns the current detected phase.
func (t *Tracker) CurrentPhase() Phase {
	return t.lastPhase
}

// HighestPhase returns the highest phase reached since the last Reset.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
