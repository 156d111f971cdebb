package cubeengine

// Face represents a cube face in move notation.
// Each face is permanently bound to one signed axis of the cube frame;
// the binding never follows the colors around.
type Face string

const (
	FaceL Face = "L" // Left, x-
	FaceR Face = "R" // Right, x+
	FaceU Face = "U" // Up, y+
	FaceD Face = "D" // Down, y-
	FaceF Face = "F" // Front, z+
	FaceB Face = "B" // Back, z-
)

// Faces lists the six faces in notation order.
var Faces = []Face{FaceL, FaceR, FaceU, FaceD, FaceF, FaceB}

// Axis indexes into a Vec.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// parseFace maps a notation letter (either case) to its Face.
func parseFace(ch byte) (Face, bool) {
	switch ch {
	case 'L', 'l':
		return FaceL, true
	case 'R', 'r':
		return FaceR, true
	case 'U', 'u':
		return FaceU, true
	case 'D', 'd':
		return FaceD, true
	case 'F', 'f':
		return FaceF, true
	case 'B', 'b':
		return FaceB, true
	default:
		return "", false
	}
}

// Axis returns the axis the face is perpendicular to.
func (f Face) Axis() Axis {
	switch f {
	case FaceL, FaceR:
		return AxisX
	case FaceU, FaceD:
		return AxisY
	default:
		return AxisZ
	}
}

// Sign returns +1 for faces on the positive side of their axis, -1 otherwise.
func (f Face) Sign() int {
	switch f {
	case FaceR, FaceU, FaceF:
		return 1
	default:
		return -1
	}
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() Vec {
	var v Vec
	v.set(f.Axis(), f.Sign())
	return v
}

// Center returns the position of the face's center point on a cube of dim.
func (f Face) Center(dim int) Vec {
	return f.Normal().Scale(dim)
}

// Opposite returns the face on the other side of the same axis.
func (f Face) Opposite() Face {
	switch f {
	case FaceL:
		return FaceR
	case FaceR:
		return FaceL
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	default:
		return FaceF
	}
}

// faceOfNormal returns the face whose outward normal points along v.
// v must be non-zero on exactly one axis.
func faceOfNormal(v Vec) (Face, bool) {
	for _, f := range Faces {
		d := v.Dot(f.Normal())
		if d > 0 && d*d == v.Dot(v) {
			return f, true
		}
	}
	return "", false
}

// faceAt returns the face whose plane holds a surface position on a cube of dim.
func faceAt(p Vec, dim int) Face {
	for _, f := range Faces {
		if p.get(f.Axis()) == f.Sign()*dim {
			return f
		}
	}
	return ""
}

// solvedColor returns the color a face carries on a solved cube.
func solvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	default:
		return Orange
	}
}
