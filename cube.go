package cubeengine

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Sticker is one colored unit square on the cube's surface.
// Exactly one coordinate has absolute value equal to the cube dimension.
type Sticker struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Z     int   `json:"z"`
	Color Color `json:"color"`
}

// Pos returns the sticker position.
func (s Sticker) Pos() Vec {
	return Vec{s.X, s.Y, s.Z}
}

func (s *Sticker) setPos(v Vec) {
	s.X, s.Y, s.Z = v.X, v.Y, v.Z
}

// Cube represents an N×N×N cube as a flat collection of stickers in a
// body-centered integer frame. Face planes sit at ±dim and in-plane
// coordinates run 1-dim, 3-dim, ..., dim-1.
//
// A Cube is not safe for concurrent use.
type Cube struct {
	dim      int
	stickers []Sticker
	history  []Move

	cfg *config
	rng *rand.Rand
	log *zap.Logger
}

// New creates a solved cube of the given dimension with standard
// orientation: White on top, Green in front.
func New(dim int, opts ...Option) (*Cube, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	c := &Cube{
		dim: dim,
		cfg: cfg,
		rng: rng,
		log: cfg.logger.With(zap.Int("dim", dim)),
	}
	c.stickers = solvedStickers(dim)
	return c, nil
}

// solvedStickers builds the 6*dim*dim stickers of a solved cube.
func solvedStickers(dim int) []Sticker {
	stickers := make([]Sticker, 0, 6*dim*dim)
	for _, f := range Faces {
		color := solvedColor(f)
		axis := f.Axis()
		u, v := (axis+1)%3, (axis+2)%3
		for i := 1 - dim; i < dim; i += 2 {
			for j := 1 - dim; j < dim; j += 2 {
				var p Vec
				p.set(axis, f.Sign()*dim)
				p.set(u, i)
				p.set(v, j)
				stickers = append(stickers, Sticker{X: p.X, Y: p.Y, Z: p.Z, Color: color})
			}
		}
	}
	return stickers
}

// Dim returns the cube dimension.
func (c *Cube) Dim() int {
	return c.dim
}

// Len returns the number of stickers in the current state.
func (c *Cube) Len() int {
	return len(c.stickers)
}

// Export returns a copy of all stickers.
func (c *Cube) Export() []Sticker {
	return slices.Clone(c.stickers)
}

// Load replaces the state with a copy of stickers. The input is trusted:
// it is expected to come from a previous Export and is not validated.
func (c *Cube) Load(stickers []Sticker) {
	c.stickers = slices.Clone(stickers)
}

// History returns a copy of the applied moves, oldest first.
func (c *Cube) History() []Move {
	return slices.Clone(c.history)
}

// LoadHistory replaces the move history. It does not touch the state.
func (c *Cube) LoadHistory(moves []Move) {
	c.history = make([]Move, len(moves))
	for i, m := range moves {
		c.history[i] = m.Canonical()
	}
}

// Reset returns the cube to the solved state and clears the history.
func (c *Cube) Reset() {
	c.stickers = solvedStickers(c.dim)
	c.history = nil
}

// Clone creates a deep copy of the cube sharing no stickers or history.
func (c *Cube) Clone() *Cube {
	clone := *c
	clone.stickers = slices.Clone(c.stickers)
	clone.history = slices.Clone(c.history)
	return &clone
}

// IsSolved reports whether every color lies on a single face plane.
func (c *Cube) IsSolved() bool {
	for _, color := range Colors {
		if !c.colorOnOnePlane(color) {
			return false
		}
	}
	return true
}

func (c *Cube) colorOnOnePlane(color Color) bool {
	var planes [3]int
	uniform := [3]bool{true, true, true}
	seen := false

	for _, s := range c.stickers {
		if s.Color != color {
			continue
		}
		p := s.Pos()
		for a := AxisX; a <= AxisZ; a++ {
			v := p.get(a)
			if !seen {
				planes[a] = v
			} else if planes[a] != v {
				uniform[a] = false
			}
		}
		seen = true
	}
	if !seen {
		return true
	}

	for a := range planes {
		if uniform[a] && (planes[a] == c.dim || planes[a] == -c.dim) {
			return true
		}
	}
	return false
}

// StickerAt returns the sticker at position p.
func (c *Cube) StickerAt(p Vec) (Sticker, bool) {
	for _, s := range c.stickers {
		if s.Pos() == p {
			return s, true
		}
	}
	return Sticker{}, false
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	var b strings.Builder
	pad := strings.Repeat("  ", c.dim)

	writeRow := func(row []Color) {
		for _, color := range row {
			b.WriteString(color.String())
			b.WriteString(" ")
		}
	}

	// U face (indented)
	for _, row := range c.FaceGrid(FaceU) {
		b.WriteString(pad)
		writeRow(row)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	sides := [4][][]Color{c.FaceGrid(FaceL), c.FaceGrid(FaceF), c.FaceGrid(FaceR), c.FaceGrid(FaceB)}
	for row := 0; row < c.dim; row++ {
		for _, grid := range sides {
			writeRow(grid[row])
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for _, row := range c.FaceGrid(FaceD) {
		b.WriteString(pad)
		writeRow(row)
		b.WriteString("\n")
	}

	return b.String()
}
