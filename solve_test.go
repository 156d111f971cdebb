package cubeengine

import (
	"errors"
	"testing"
)

func TestSolveSolvedCube(t *testing.T) {
	for _, dim := range []int{1, 3} {
		c := newCube(t, dim)
		moves, err := c.Solve()
		if err != nil {
			t.Fatalf("dim %d: Solve error = %v", dim, err)
		}
		if moves == nil || len(moves) != 0 {
			t.Errorf("dim %d: Solve on solved cube = %v, want []", dim, moves)
		}
	}
}

func TestSolveUnsupportedDimension(t *testing.T) {
	for _, dim := range []int{2, 4, 5} {
		c := newCube(t, dim)
		if _, err := c.Solve(); !errors.Is(err, ErrNotSupportedDimension) {
			t.Errorf("dim %d: Solve error = %v, want ErrNotSupportedDimension", dim, err)
		}
	}
}

func TestSolveDaisyStep(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		c := newCube(t, 3, WithSeed(seed))
		if _, err := c.Scramble(25); err != nil {
			t.Fatal(err)
		}
		before := len(c.History())

		moves, err := c.Solve()
		if err != nil {
			t.Fatalf("seed %d: Solve error = %v", seed, err)
		}

		center, ok := c.CenterOf(ReferenceColor)
		if !ok || center != FaceU.Center(3) {
			t.Errorf("seed %d: yellow center at %v, want %v", seed, center, FaceU.Center(3))
		}
		if petals := c.BottomPetals(); len(petals) != 0 {
			t.Errorf("seed %d: white edges left on D at %v", seed, petals)
			t.Log(c.String())
		}
		if got := len(c.History()) - before; got != len(moves) {
			t.Errorf("seed %d: history grew by %d, Solve returned %d moves", seed, got, len(moves))
		}
	}
}

func TestSolveMovesReplay(t *testing.T) {
	c := newCube(t, 3, WithSeed(9))
	scramble, err := c.Scramble(30)
	if err != nil {
		t.Fatal(err)
	}
	moves, err := c.Solve()
	if err != nil {
		t.Fatal(err)
	}

	replay := newCube(t, 3)
	if _, err := replay.Apply(scramble...); err != nil {
		t.Fatal(err)
	}
	if _, err := replay.Apply(moves...); err != nil {
		t.Fatal(err)
	}
	if !sameState(c.Export(), replay.Export()) {
		t.Error("replaying scramble and solve moves should reproduce the solved state")
	}
}

func TestAlignColorToFace(t *testing.T) {
	// Each start position for the yellow center needs at most two whole-cube turns
	for _, f := range Faces {
		c := newCube(t, 3)
		if _, err := c.alignColorToFace(ReferenceColor, f); err != nil {
			t.Fatal(err)
		}
		moves, err := c.alignColorToFace(ReferenceColor, FaceU)
		if err != nil {
			t.Fatal(err)
		}
		if len(moves) > 1 {
			t.Errorf("from %s: %d alignment moves, want at most 1", f, len(moves))
		}
		if !c.IsSolved() {
			t.Error("whole-cube alignment must not change the solved state")
		}
		if color, _ := c.CenterColor(FaceU); color != ReferenceColor {
			t.Errorf("from %s: U center is %s, want yellow", f, color.Name())
		}
	}
}

func TestCenterOf(t *testing.T) {
	c := newCube(t, 3)
	tests := []struct {
		color Color
		want  Vec
	}{
		{White, Vec{0, 3, 0}},
		{Yellow, Vec{0, -3, 0}},
		{Green, Vec{0, 0, 3}},
		{Blue, Vec{0, 0, -3}},
		{Red, Vec{3, 0, 0}},
		{Orange, Vec{-3, 0, 0}},
	}
	for _, tt := range tests {
		got, ok := c.CenterOf(tt.color)
		if !ok || got != tt.want {
			t.Errorf("CenterOf(%s) = %v, %v, want %v", tt.color.Name(), got, ok, tt.want)
		}
	}

	even := newCube(t, 4)
	if _, ok := even.CenterOf(White); ok {
		t.Error("a 4x4 cube has no center stickers")
	}
}
