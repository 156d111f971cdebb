package cubeengine

// Phase represents how far the layer-by-layer method has progressed.
// Phases are ordered, allowing comparison with < and >.
type Phase int

const (
	// PhaseScrambled indicates no recognised phase is complete.
	PhaseScrambled Phase = iota

	// PhaseDaisy indicates the reference center is up with four petal
	// edges around it.
	PhaseDaisy

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseDaisy:
		return "daisy"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseDaisy:
		return "Daisy"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// DetectPhase returns the furthest phase the cube currently satisfies.
func (c *Cube) DetectPhase() Phase {
	if c.IsSolved() {
		return PhaseSolved
	}
	if c.IsDaisyComplete() {
		return PhaseDaisy
	}
	return PhaseScrambled
}

// IsDaisyComplete checks that the ReferenceColor center is on U and the
// four U edges around it are PetalColor. Only 3x3 cubes have a daisy.
func (c *Cube) IsDaisyComplete() bool {
	if c.dim != 3 {
		return false
	}
	center, ok := c.CenterOf(ReferenceColor)
	if !ok || center != FaceU.Center(c.dim) {
		return false
	}
	for _, f := range sideFaces {
		s, ok := c.StickerAt(c.topEdgeNextTo(f))
		if !ok || s.Color != PetalColor {
			return false
		}
	}
	return true
}

// BottomPetals returns the D-face edge positions holding PetalColor.
// Solve leaves this empty on a 3x3 cube.
func (c *Cube) BottomPetals() []Vec {
	if c.dim != 3 {
		return nil
	}
	var out []Vec
	for _, f := range sideFaces {
		p := c.bottomEdgeNextTo(f)
		if s, ok := c.StickerAt(p); ok && s.Color == PetalColor {
			out = append(out, p)
		}
	}
	return out
}
