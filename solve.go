package cubeengine

import (
	"fmt"

	"go.uber.org/zap"
)

// Daisy colors. The reference color is turned to face up and petals of the
// opposite color are gathered around it.
const (
	ReferenceColor = Yellow
	PetalColor     = White
)

// sideFaces are the four faces around the U/D axis.
var sideFaces = []Face{FaceF, FaceR, FaceB, FaceL}

// SolveSupported reports whether Solve handles cubes of dimension dim.
func SolveSupported(dim int) bool {
	return dim == 1 || dim == 3
}

// Solve runs the first phase of the layer-by-layer method: the cube is
// oriented with ReferenceColor up, then every PetalColor edge sticker on
// the D face is lifted to the top layer. It returns the applied moves,
// or an empty list when the cube is already solved.
//
// The middle and last layer phases are not implemented, so the result is
// a partially solved cube.
func (c *Cube) Solve() ([]Move, error) {
	if !SolveSupported(c.dim) {
		return nil, fmt.Errorf("%w: %d", ErrNotSupportedDimension, c.dim)
	}
	if c.IsSolved() {
		return []Move{}, nil
	}

	moves, err := c.alignColorToFace(ReferenceColor, FaceU)
	if err != nil {
		return moves, err
	}

	daisy, err := c.solveDaisyBottomLayer(PetalColor)
	moves = append(moves, daisy...)
	if err != nil {
		return moves, err
	}

	c.log.Debug("daisy step complete", zap.Int("moves", len(moves)))
	return moves, nil
}

// CenterOf returns the position of the center sticker of the given color:
// the sticker whose two in-plane coordinates are zero. Only odd-dimension
// cubes have centers.
func (c *Cube) CenterOf(color Color) (Vec, bool) {
	for _, s := range c.stickers {
		if s.Color != color {
			continue
		}
		p := s.Pos()
		f := faceAt(p, c.dim)
		if f == "" {
			continue
		}
		if p.Sub(f.Center(c.dim)) == (Vec{}) {
			return p, true
		}
	}
	return Vec{}, false
}

// CenterColor returns the color of the center sticker of face f.
func (c *Cube) CenterColor(f Face) (Color, bool) {
	s, ok := c.StickerAt(f.Center(c.dim))
	return s.Color, ok
}

// alignColorToFace turns the whole cube until the center of color sits at
// the center of target. Opposite centers take one half turn; otherwise one
// quarter turn about the remaining axis lines them up.
func (c *Cube) alignColorToFace(color Color, target Face) ([]Move, error) {
	var moves []Move
	want := target.Center(c.dim)

	for step := 0; step < 3; step++ {
		center, ok := c.CenterOf(color)
		if !ok {
			return moves, fmt.Errorf("%w: no %s center on a cube of dim %d", ErrNotSupportedDimension, color.Name(), c.dim)
		}
		if center == want {
			return moves, nil
		}

		var m Move
		if center == want.Neg() {
			m = WholeCube(perpendicularFace(target), 2, c.dim)
		} else {
			m = c.quarterTurnOnto(center, want)
		}

		applied, err := c.Apply(m)
		if err != nil {
			return moves, err
		}
		moves = append(moves, applied...)
		c.log.Debug("aligned center",
			zap.String("color", color.Name()),
			zap.String("move", m.Notation()),
		)
	}

	return moves, fmt.Errorf("cubeengine: could not align %s center to %s", color.Name(), target)
}

// quarterTurnOnto returns the whole-cube quarter turn that carries the
// center at from onto the perpendicular center position to.
func (c *Cube) quarterTurnOnto(from, to Vec) Move {
	fa := faceAt(from, c.dim).Axis()
	ta := faceAt(to, c.dim).Axis()
	axis := Axis(3 - int(fa) - int(ta))

	for _, f := range Faces {
		if f.Axis() != axis || f.Sign() < 0 {
			continue
		}
		for _, turns := range []int{1, 3} {
			if RotationMatrix(f, turns).Apply(from) == to {
				return WholeCube(f, turns, c.dim)
			}
		}
	}
	// Unreachable for perpendicular face centers.
	return WholeCube(FaceU, 0, c.dim)
}

// perpendicularFace returns a face whose axis is perpendicular to f's.
func perpendicularFace(f Face) Face {
	if f.Axis() == AxisY {
		return FaceR
	}
	return FaceU
}

// topEdgeNextTo returns the U-face edge position adjacent to side face f.
func (c *Cube) topEdgeNextTo(f Face) Vec {
	return FaceU.Center(c.dim).Add(f.Normal().Scale(c.dim - 1))
}

// bottomEdgeNextTo returns the D-face edge position adjacent to side face f.
func (c *Cube) bottomEdgeNextTo(f Face) Vec {
	return FaceD.Center(c.dim).Add(f.Normal().Scale(c.dim - 1))
}

// clearTopEdgeOf turns U until the top edge next to f no longer holds a
// petal, so lifting a petal through f cannot knock one down.
func (c *Cube) clearTopEdgeOf(f Face, petal Color) ([]Move, error) {
	var moves []Move
	pos := c.topEdgeNextTo(f)

	for i := 0; i < 4; i++ {
		s, ok := c.StickerAt(pos)
		if !ok || s.Color != petal {
			return moves, nil
		}
		applied, err := c.Apply(U)
		if err != nil {
			return moves, err
		}
		moves = append(moves, applied...)
	}
	return moves, nil
}

// solveDaisyBottomLayer lifts every petal-colored D-face edge sticker to the
// top layer with a half turn of the adjoining side face.
func (c *Cube) solveDaisyBottomLayer(petal Color) ([]Move, error) {
	var moves []Move

	for _, f := range sideFaces {
		s, ok := c.StickerAt(c.bottomEdgeNextTo(f))
		if !ok || s.Color != petal {
			continue
		}

		cleared, err := c.clearTopEdgeOf(f, petal)
		moves = append(moves, cleared...)
		if err != nil {
			return moves, err
		}

		applied, err := c.Apply(Move{Layers: []int{1}, Face: f, Turns: 2})
		if err != nil {
			return moves, err
		}
		moves = append(moves, applied...)
		c.log.Debug("lifted petal", zap.String("face", string(f)))
	}

	return moves, nil
}
