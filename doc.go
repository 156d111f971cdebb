// Package cubeengine models an N×N×N Rubik's Cube as a set of colored
// stickers in integer 3-D space.
//
// # Coordinates
//
// A cube of dimension n keeps its six face planes at ±n. Sticker centers
// inside a face use the in-plane coordinates 1-n, 3-n, ..., n-1, which have
// the opposite parity to n. Only the face-plane coordinate ±n shares the
// parity of n. Everything is an integer, so quarter turns stay exact matrix
// products. Each face letter is bound to a signed axis:
//
//	L x-   R x+   U y+   D y-   F z+   B z-
//
// # Quick Start
//
//	cube, err := cubeengine.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(cubeengine.R, cubeengine.U, cubeengine.RPrime, cubeengine.UPrime)
//
//	// Or from notation: <layers><FACE><turns>, comma separated
//	cube.Rotate("R, 2U3, 123F2")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cube)
//
// # Notation
//
// Layer digits count inward from the named face and default to 1; each digit
// is a separate layer. Turns are clockwise quarter turns as seen from outside
// the face and default to 1, so "F" is "1F1" and "12R3" turns the two right
// layers counter-clockwise. A batch is validated before any move is applied.
//
// # History
//
// Every applied move is recorded in canonical form. RevertTo rebuilds the
// cube from solved and replays a prefix of the history; Undo drops the last
// move.
//
// # Solving
//
// Solve runs the first-layer daisy step on 1x1x1 and 3x3x3 cubes: yellow is
// rotated to U and every white edge is lifted off D. Tracker reports
// DetectPhase changes as moves are applied.
//
// # Geometry
//
// Wireframe, Mesh and FaceLabels derive render-ready vertices from the
// sticker state without any UI dependency.
package cubeengine
