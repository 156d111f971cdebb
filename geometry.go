package cubeengine

// Geometry derived from the sticker state for external renderers. All
// outputs are plain numeric data; nothing here depends on a UI toolkit.

// stickerHalf is half the drawn sticker size. Grid spacing is 2, so
// values below 1 leave a visible gap between neighbouring stickers.
const stickerHalf = 0.95

// Vertex is a point in renderer space.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Wireframe holds one closed outline per sticker. The first vertex of
// each outline is repeated at the end.
type Wireframe struct {
	Outlines [][5]Vertex `json:"outlines"`
	Colors   []Color     `json:"colors"`
}

// Mesh is an indexed triangle mesh with two triangles per sticker quad.
// Exactly one of TriangleColors and VertexColors is populated.
type Mesh struct {
	Vertices       []Vertex `json:"vertices"`
	Triangles      [][3]int `json:"triangles"`
	TriangleColors []Color  `json:"triangle_colors,omitempty"`
	VertexColors   []Color  `json:"vertex_colors,omitempty"`
}

// Label marks a face for display.
type Label struct {
	Face     Face   `json:"face"`
	Color    Color  `json:"color"`
	Position Vertex `json:"position"`
}

// corners returns the four corners of a sticker quad, counter-clockwise in
// the face's in-plane axes.
func (c *Cube) corners(s Sticker) [4]Vertex {
	p := s.Pos()
	f := faceAt(p, c.dim)
	axis := f.Axis()
	u, v := (axis+1)%3, (axis+2)%3

	var out [4]Vertex
	signs := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i, sg := range signs {
		pt := [3]float64{float64(p.X), float64(p.Y), float64(p.Z)}
		pt[u] += sg[0] * stickerHalf
		pt[v] += sg[1] * stickerHalf
		out[i] = Vertex{pt[0], pt[1], pt[2]}
	}
	return out
}

// Wireframe returns sticker outlines for line rendering.
func (c *Cube) Wireframe() Wireframe {
	w := Wireframe{
		Outlines: make([][5]Vertex, 0, len(c.stickers)),
		Colors:   make([]Color, 0, len(c.stickers)),
	}
	for _, s := range c.stickers {
		q := c.corners(s)
		w.Outlines = append(w.Outlines, [5]Vertex{q[0], q[1], q[2], q[3], q[0]})
		w.Colors = append(w.Colors, s.Color)
	}
	return w
}

// Mesh returns a triangle mesh of all stickers. With colorPerQuad each
// triangle carries its sticker's color; otherwise each vertex does.
func (c *Cube) Mesh(colorPerQuad bool) Mesh {
	n := len(c.stickers)
	m := Mesh{
		Vertices:  make([]Vertex, 0, 4*n),
		Triangles: make([][3]int, 0, 2*n),
	}

	for _, s := range c.stickers {
		base := len(m.Vertices)
		q := c.corners(s)
		m.Vertices = append(m.Vertices, q[:]...)
		m.Triangles = append(m.Triangles,
			[3]int{base, base + 1, base + 2},
			[3]int{base, base + 2, base + 3},
		)
		if colorPerQuad {
			m.TriangleColors = append(m.TriangleColors, s.Color, s.Color)
		} else {
			m.VertexColors = append(m.VertexColors, s.Color, s.Color, s.Color, s.Color)
		}
	}
	return m
}

// FaceLabels returns one label per face, one unit outside its center.
// Color is the center sticker's color, or the first sticker found on the
// face for even dimensions.
func (c *Cube) FaceLabels() []Label {
	labels := make([]Label, 0, len(Faces))
	for _, f := range Faces {
		p := f.Center(c.dim + 1)
		color, ok := c.CenterColor(f)
		if !ok {
			color = c.FaceGrid(f)[0][0]
		}
		labels = append(labels, Label{
			Face:     f,
			Color:    color,
			Position: Vertex{float64(p.X), float64(p.Y), float64(p.Z)},
		})
	}
	return labels
}

// faceView returns the in-plane right and down directions of a face as
// seen from outside, with U viewed front-edge-down and D front-edge-up.
func faceView(f Face) (right, down Vec) {
	switch f {
	case FaceF:
		return Vec{X: 1}, Vec{Y: -1}
	case FaceB:
		return Vec{X: -1}, Vec{Y: -1}
	case FaceR:
		return Vec{Z: -1}, Vec{Y: -1}
	case FaceL:
		return Vec{Z: 1}, Vec{Y: -1}
	case FaceU:
		return Vec{X: 1}, Vec{Z: 1}
	default:
		return Vec{X: 1}, Vec{Z: -1}
	}
}

// FaceGrid returns the dim×dim colors on face f as seen from outside,
// rows top to bottom.
func (c *Cube) FaceGrid(f Face) [][]Color {
	grid := make([][]Color, c.dim)
	for i := range grid {
		grid[i] = make([]Color, c.dim)
	}

	right, down := faceView(f)
	plane := f.Sign() * c.dim
	for _, s := range c.stickers {
		p := s.Pos()
		if p.get(f.Axis()) != plane {
			continue
		}
		col := (p.Dot(right) + c.dim - 1) / 2
		row := (p.Dot(down) + c.dim - 1) / 2
		if row >= 0 && row < c.dim && col >= 0 && col < c.dim {
			grid[row][col] = s.Color
		}
	}
	return grid
}
