package cubeengine

// Vec is an integer position in the cube's body-centered frame.
type Vec struct {
	X, Y, Z int
}

func (v Vec) get(a Axis) int {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func (v *Vec) set(a Axis, n int) {
	switch a {
	case AxisX:
		v.X = n
	case AxisY:
		v.Y = n
	default:
		v.Z = n
	}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * k.
func (v Vec) Scale(k int) Vec {
	return Vec{v.X * k, v.Y * k, v.Z * k}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) int {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y, -v.Z}
}

// Matrix is a 3x3 integer rotation matrix. Quarter-turn rotations have
// entries in {-1, 0, 1}, so no rounding is ever needed.
type Matrix [3][3]int

// Identity is the identity rotation.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// quarter-turn cosines and sines, indexed by counter-clockwise quarter turns.
var (
	quarterCos = [4]int{1, 0, -1, 0}
	quarterSin = [4]int{0, 1, 0, -1}
)

// RotationMatrix returns the transform for turning face f clockwise (as
// seen from outside that face) by turns quarter turns.
//
// Clockwise from outside is a negative right-hand rotation about the
// outward normal, so the angle about the positive axis is -sign*turns*90.
func RotationMatrix(f Face, turns int) Matrix {
	k := ((-f.Sign()*turns)%4 + 4) % 4
	c, s := quarterCos[k], quarterSin[k]

	switch f.Axis() {
	case AxisX:
		return Matrix{
			{1, 0, 0},
			{0, c, -s},
			{0, s, c},
		}
	case AxisY:
		return Matrix{
			{c, 0, s},
			{0, 1, 0},
			{-s, 0, c},
		}
	default:
		return Matrix{
			{c, -s, 0},
			{s, c, 0},
			{0, 0, 1},
		}
	}
}

// Apply returns m * v.
func (m Matrix) Apply(v Vec) Vec {
	return Vec{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
