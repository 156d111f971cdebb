package cubeengine

// Predefined outer-layer moves for convenience.
// Primes are written as three clockwise quarter turns.
//
// Example:
//
//	cube.Apply(cubeengine.R, cubeengine.U, cubeengine.RPrime, cubeengine.UPrime)
var (
	// Right face moves
	R      = Move{Layers: []int{1}, Face: FaceR, Turns: 1} // Right clockwise
	RPrime = Move{Layers: []int{1}, Face: FaceR, Turns: 3} // Right counter-clockwise
	R2     = Move{Layers: []int{1}, Face: FaceR, Turns: 2} // Right 180

	// Left face moves
	L      = Move{Layers: []int{1}, Face: FaceL, Turns: 1} // Left clockwise
	LPrime = Move{Layers: []int{1}, Face: FaceL, Turns: 3} // Left counter-clockwise
	L2     = Move{Layers: []int{1}, Face: FaceL, Turns: 2} // Left 180

	// Up face moves
	U      = Move{Layers: []int{1}, Face: FaceU, Turns: 1} // Up clockwise
	UPrime = Move{Layers: []int{1}, Face: FaceU, Turns: 3} // Up counter-clockwise
	U2     = Move{Layers: []int{1}, Face: FaceU, Turns: 2} // Up 180

	// Down face moves
	D      = Move{Layers: []int{1}, Face: FaceD, Turns: 1} // Down clockwise
	DPrime = Move{Layers: []int{1}, Face: FaceD, Turns: 3} // Down counter-clockwise
	D2     = Move{Layers: []int{1}, Face: FaceD, Turns: 2} // Down 180

	// Front face moves
	F      = Move{Layers: []int{1}, Face: FaceF, Turns: 1} // Front clockwise
	FPrime = Move{Layers: []int{1}, Face: FaceF, Turns: 3} // Front counter-clockwise
	F2     = Move{Layers: []int{1}, Face: FaceF, Turns: 2} // Front 180

	// Back face moves
	B      = Move{Layers: []int{1}, Face: FaceB, Turns: 1} // Back clockwise
	BPrime = Move{Layers: []int{1}, Face: FaceB, Turns: 3} // Back counter-clockwise
	B2     = Move{Layers: []int{1}, Face: FaceB, Turns: 2} // Back 180
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// WholeCube returns the move that turns every layer of a cube of dim
// about face f, re-orienting the cube without changing its state.
func WholeCube(f Face, turns, dim int) Move {
	layers := make([]int, dim)
	for i := range layers {
		layers[i] = i + 1
	}
	return Move{Layers: layers, Face: f, Turns: turns}
}
