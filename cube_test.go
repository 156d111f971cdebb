package cubeengine

import (
	"errors"
	"sort"
	"testing"
)

func newCube(t *testing.T, dim int, opts ...Option) *Cube {
	t.Helper()
	c, err := New(dim, opts...)
	if err != nil {
		t.Fatalf("New(%d) error = %v", dim, err)
	}
	return c
}

// stickerSet sorts stickers so two states compare independent of order.
func stickerSet(stickers []Sticker) []Sticker {
	out := append([]Sticker(nil), stickers...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.Color < b.Color
	})
	return out
}

func sameState(a, b []Sticker) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := stickerSet(a), stickerSet(b)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func TestNewCubeIsSolved(t *testing.T) {
	for dim := 1; dim <= 6; dim++ {
		c := newCube(t, dim)
		if !c.IsSolved() {
			t.Errorf("New %dx%dx%d cube should be solved", dim, dim, dim)
		}
		if got, want := c.Len(), 6*dim*dim; got != want {
			t.Errorf("dim %d: got %d stickers, want %d", dim, got, want)
		}
	}
}

func TestNewInvalidDimension(t *testing.T) {
	for _, dim := range []int{0, -1, -7} {
		if _, err := New(dim); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("New(%d) error = %v, want ErrInvalidDimension", dim, err)
		}
	}
}

func TestSolvedLayoutInvariants(t *testing.T) {
	for dim := 1; dim <= 5; dim++ {
		c := newCube(t, dim)
		perColor := map[Color]int{}
		perFace := map[Face]int{}
		for _, s := range c.Export() {
			perColor[s.Color]++
			f := faceAt(s.Pos(), dim)
			if f == "" {
				t.Fatalf("dim %d: sticker %+v is not on the surface", dim, s)
			}
			perFace[f]++
			if s.Color != solvedColor(f) {
				t.Errorf("dim %d: sticker %+v on %s, want color %s", dim, s, f, solvedColor(f))
			}
		}
		for _, color := range Colors {
			if perColor[color] != dim*dim {
				t.Errorf("dim %d: %s has %d stickers, want %d", dim, color.Name(), perColor[color], dim*dim)
			}
		}
		for _, f := range Faces {
			if perFace[f] != dim*dim {
				t.Errorf("dim %d: face %s has %d stickers, want %d", dim, f, perFace[f], dim*dim)
			}
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := newCube(t, 3)
	if _, err := c.Apply(R); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range Faces {
		c := newCube(t, 3)
		m := Move{Face: face, Turns: 1}
		if _, err := c.Apply(m, m, m, m); err != nil {
			t.Fatal(err)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	c := newCube(t, 3)
	if _, err := c.Rotate("R2"); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after R2")
	}
	if _, err := c.Rotate("R2"); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := newCube(t, 3)
	for i := 0; i < 6; i++ {
		if _, err := c.Apply(SexyMove...); err != nil {
			t.Fatal(err)
		}
		if i < 5 && c.IsSolved() {
			t.Errorf("Cube should not be solved after %d sexy moves", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	c := newCube(t, 3)
	if _, err := c.Apply(TPerm...); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after one T-perm")
	}
	if _, err := c.Apply(TPerm...); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
		t.Log(c.String())
	}
}

func TestMoveThenInverse(t *testing.T) {
	for dim := 1; dim <= 4; dim++ {
		for _, face := range Faces {
			for layer := 1; layer <= dim; layer++ {
				for turns := 0; turns <= 5; turns++ {
					c := newCube(t, dim)
					// Start from a non-trivial state
					if _, err := c.Rotate("R,U3,F2"); err != nil {
						t.Fatal(err)
					}
					before := c.Export()
					m := Move{Layers: []int{layer}, Face: face, Turns: turns}
					if _, err := c.Apply(m, m.Inverse()); err != nil {
						t.Fatal(err)
					}
					if !sameState(before, c.Export()) {
						t.Errorf("dim %d: %s then %s changed the state", dim, m.Notation(), m.Inverse().Notation())
					}
				}
			}
		}
	}
}

func TestFrontMoveOnSolved3x3(t *testing.T) {
	c := newCube(t, 3)
	before := c.Export()
	applied, err := c.Rotate("F")
	if err != nil {
		t.Fatal(err)
	}
	if len(applied) != 1 || applied[0].Notation() != "1F1" {
		t.Errorf("applied = %v, want [1F1]", applied)
	}

	after := c.Export()
	moved := 0
	for i := range before {
		if before[i].Pos() != after[i].Pos() {
			moved++
		}
	}
	// 8 front stickers around the fixed center plus 12 side stickers
	if moved != 20 {
		t.Errorf("F moved %d stickers, want 20", moved)
	}

	// The front face still holds the same nine green stickers
	for _, row := range c.FaceGrid(FaceF) {
		for _, color := range row {
			if color != Green {
				t.Errorf("front face has %s after F, want all green", color.Name())
			}
		}
	}

	// Nothing behind the front layer moved
	for i := range before {
		if before[i].Z < 1 && before[i] != after[i] {
			t.Errorf("sticker %+v behind the front layer moved to %+v", before[i], after[i])
		}
	}
}

func TestFourTurnsIsIdentity(t *testing.T) {
	c := newCube(t, 3)
	before := c.Export()
	applied, err := c.Rotate("F4")
	if err != nil {
		t.Fatal(err)
	}
	if !sameState(before, c.Export()) {
		t.Error("F4 should leave the state unchanged")
	}
	if len(c.History()) != 1 || applied[0].Notation() != "1F4" {
		t.Errorf("history = %v, want [1F4]", c.History())
	}
}

func TestMoveDirections(t *testing.T) {
	// A U-face sticker next to each side shows where a clockwise turn sends it
	tests := []struct {
		move string
		from Vec
		to   Vec
	}{
		{"R", Vec{2, 3, 0}, Vec{2, 0, -3}},   // R: U -> B
		{"L", Vec{-2, 3, 0}, Vec{-2, 0, 3}},  // L: U -> F
		{"F", Vec{0, 3, 2}, Vec{3, 0, 2}},    // F: U -> R
		{"B", Vec{0, 3, -2}, Vec{-3, 0, -2}}, // B: U -> L
		{"U", Vec{0, 2, 3}, Vec{-3, 2, 0}},   // U: F -> L
		{"D", Vec{0, -2, 3}, Vec{3, -2, 0}},  // D: F -> R
	}
	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			c := newCube(t, 3)
			want, ok := c.StickerAt(tt.from)
			if !ok {
				t.Fatalf("no sticker at %v", tt.from)
			}
			if _, err := c.Rotate(tt.move); err != nil {
				t.Fatal(err)
			}
			got, ok := c.StickerAt(tt.to)
			if !ok || got.Color != want.Color {
				t.Errorf("%s: sticker at %v = %+v, want color %s", tt.move, tt.to, got, want.Color.Name())
			}
		})
	}
}

func TestInnerLayerSelection(t *testing.T) {
	c := newCube(t, 4)
	tests := []struct {
		move string
		want int
	}{
		{"1R", 4*4 + 4*4},    // face plus one ring
		{"2R", 4 * 4},        // inner slice: ring only
		{"3R", 4 * 4},        // inner slice: ring only
		{"4R", 4*4 + 4*4},    // opposite face plus its ring
		{"1234R", 6 * 4 * 4}, // whole cube
		{"12R", 4*4 + 2*4*4}, // face plus two rings
	}
	for _, tt := range tests {
		m, err := ParseMove(tt.move)
		if err != nil {
			t.Fatal(err)
		}
		sel, err := c.Selected(m)
		if err != nil {
			t.Fatal(err)
		}
		if len(sel) != tt.want {
			t.Errorf("%s selects %d stickers, want %d", tt.move, len(sel), tt.want)
		}
	}
}

func TestWholeCubeRotationStaysSolved(t *testing.T) {
	for dim := 1; dim <= 4; dim++ {
		c := newCube(t, dim)
		for _, f := range Faces {
			if _, err := c.Apply(WholeCube(f, 1, dim)); err != nil {
				t.Fatal(err)
			}
			if !c.IsSolved() {
				t.Errorf("dim %d: whole-cube turn about %s should keep the cube solved", dim, f)
			}
		}
	}
}

func TestOneByOneAlwaysSolved(t *testing.T) {
	c := newCube(t, 1, WithSeed(7))
	if _, err := c.Scramble(25); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("a 1x1x1 cube is solved in every orientation")
	}
}

func TestRotateEmpty(t *testing.T) {
	c := newCube(t, 3)
	for _, s := range []string{"", "   "} {
		applied, err := c.Rotate(s)
		if err != nil {
			t.Fatalf("Rotate(%q) error = %v", s, err)
		}
		if len(applied) != 0 {
			t.Errorf("Rotate(%q) = %v, want []", s, applied)
		}
	}
	applied, err := c.Apply()
	if err != nil || len(applied) != 0 {
		t.Errorf("Apply() = %v, %v, want [], nil", applied, err)
	}
	if len(c.History()) != 0 {
		t.Error("empty rotations should not touch history")
	}
}

func TestRotateInvalidAbortsBatch(t *testing.T) {
	c := newCube(t, 3)
	before := c.Export()

	for _, s := range []string{"Q", "R,Q", "R,4U", "R,,U", "xR", "R1x"} {
		if _, err := c.Rotate(s); !errors.Is(err, ErrInvalidMoveSyntax) {
			t.Errorf("Rotate(%q) error = %v, want ErrInvalidMoveSyntax", s, err)
		}
	}
	if _, err := c.Apply(R, Move{Face: "Q", Turns: 1}); !errors.Is(err, ErrInvalidMoveSyntax) {
		t.Errorf("Apply with face Q error = %v, want ErrInvalidMoveSyntax", err)
	}
	if _, err := c.Apply(Move{Face: FaceR, Turns: -1}); !errors.Is(err, ErrInvalidMoveSyntax) {
		t.Errorf("Apply with negative turns error = %v, want ErrInvalidMoveSyntax", err)
	}

	if !sameState(before, c.Export()) {
		t.Error("a failed batch must not change the state")
	}
	if len(c.History()) != 0 {
		t.Errorf("history = %v after failed batches, want empty", c.History())
	}
}

func TestExportLoadRoundTrip(t *testing.T) {
	c := newCube(t, 3, WithSeed(1))
	if _, err := c.Scramble(30); err != nil {
		t.Fatal(err)
	}
	exported := c.Export()

	other := newCube(t, 3)
	other.Load(exported)
	if !sameState(exported, other.Export()) {
		t.Error("Load(Export()) should reproduce the state")
	}

	// Exports are copies
	exported[0].Color = Orange
	exported[0].X = 99
	if got := other.Export(); got[0].X == 99 {
		t.Error("Load must copy its input")
	}
	if got := c.Export(); got[0].X == 99 {
		t.Error("Export must return a copy")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := newCube(t, 3)
	clone := c.Clone()
	if _, err := clone.Rotate("R"); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("rotating a clone should not affect the original")
	}
	if len(c.History()) != 0 {
		t.Error("clone history should be independent")
	}
}

func TestStringNet(t *testing.T) {
	c := newCube(t, 3)
	want := "" +
		"      W W W \n" +
		"      W W W \n" +
		"      W W W \n" +
		"O O O G G G R R R B B B \n" +
		"O O O G G G R R R B B B \n" +
		"O O O G G G R R R B B B \n" +
		"      Y Y Y \n" +
		"      Y Y Y \n" +
		"      Y Y Y \n"
	if got := c.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
