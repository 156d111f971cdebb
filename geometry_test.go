package cubeengine

import (
	"math"
	"testing"
)

func TestWireframe(t *testing.T) {
	c := newCube(t, 3)
	w := c.Wireframe()
	if len(w.Outlines) != 54 || len(w.Colors) != 54 {
		t.Fatalf("got %d outlines and %d colors, want 54", len(w.Outlines), len(w.Colors))
	}
	for i, o := range w.Outlines {
		if o[0] != o[4] {
			t.Errorf("outline %d is not closed", i)
		}
	}

	// Outline of the U center lies in the y=3 plane
	for i, s := range c.Export() {
		if s.Pos() != (Vec{0, 3, 0}) {
			continue
		}
		for _, v := range w.Outlines[i] {
			if v.Y != 3 || math.Abs(v.X) != stickerHalf || math.Abs(v.Z) != stickerHalf {
				t.Errorf("U center outline vertex %+v", v)
			}
		}
	}
}

func TestMesh(t *testing.T) {
	c := newCube(t, 2)

	perQuad := c.Mesh(true)
	if len(perQuad.Vertices) != 4*24 || len(perQuad.Triangles) != 2*24 {
		t.Fatalf("got %d vertices and %d triangles", len(perQuad.Vertices), len(perQuad.Triangles))
	}
	if len(perQuad.TriangleColors) != len(perQuad.Triangles) || perQuad.VertexColors != nil {
		t.Error("colorPerQuad should color triangles only")
	}
	for _, tri := range perQuad.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(perQuad.Vertices) {
				t.Fatalf("triangle index %d out of range", idx)
			}
		}
	}

	perVertex := c.Mesh(false)
	if len(perVertex.VertexColors) != len(perVertex.Vertices) || perVertex.TriangleColors != nil {
		t.Error("per-vertex mode should color vertices only")
	}
}

func TestFaceLabels(t *testing.T) {
	c := newCube(t, 3)
	labels := c.FaceLabels()
	if len(labels) != 6 {
		t.Fatalf("got %d labels, want 6", len(labels))
	}
	for _, l := range labels {
		if l.Color != solvedColor(l.Face) {
			t.Errorf("label %s color = %s, want %s", l.Face, l.Color.Name(), solvedColor(l.Face).Name())
		}
		n := l.Face.Normal()
		want := Vertex{float64(4 * n.X), float64(4 * n.Y), float64(4 * n.Z)}
		if l.Position != want {
			t.Errorf("label %s at %+v, want %+v", l.Face, l.Position, want)
		}
	}

	// Labels follow the centers around
	if _, err := c.Apply(WholeCube(FaceF, 1, 3)); err != nil {
		t.Fatal(err)
	}
	for _, l := range c.FaceLabels() {
		if l.Face == FaceR && l.Color != White {
			t.Errorf("after whole-cube F, R label = %s, want white", l.Color.Name())
		}
	}
}

func TestFaceGridAfterR(t *testing.T) {
	c := newCube(t, 3)
	if _, err := c.Rotate("R"); err != nil {
		t.Fatal(err)
	}
	// The right column of the front face now shows the old D stickers
	grid := c.FaceGrid(FaceF)
	for row := 0; row < 3; row++ {
		if grid[row][2] != Yellow {
			t.Errorf("F[%d][2] = %s, want yellow", row, grid[row][2].Name())
		}
		if grid[row][0] != Green {
			t.Errorf("F[%d][0] = %s, want green", row, grid[row][0].Name())
		}
	}
	// The right column of U shows the old F stickers
	up := c.FaceGrid(FaceU)
	for row := 0; row < 3; row++ {
		if up[row][2] != Green {
			t.Errorf("U[%d][2] = %s, want green", row, up[row][2].Name())
		}
	}
}
