package particles

import "github.com/go-gl/mathgl/mgl32"

// VertexFloats is the number of floats in one uploaded vertex:
// position, velocity, offset, color and birth time.
const VertexFloats = 13

type Kind int

const (
	KindPoint Kind = iota
	KindSegment
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// Record is a single slot of a Ring. Put writes Vertices()*VertexFloats
// floats into dst.
type Record interface {
	Kind() Kind
	Vertices() int
	Put(dst []float32)
}

type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Offset   mgl32.Vec3
	Color    mgl32.Vec3
	Birth    float32
}

func (Particle) Kind() Kind    { return KindPoint }
func (Particle) Vertices() int { return 1 }

func (p Particle) Put(dst []float32) {
	putVertex(dst, p.Position, p.Velocity, p.Offset, p.Color, p.Birth)
}

// Segment is a line-mode record. It is uploaded as two vertices that
// share everything but their position.
type Segment struct {
	Start    mgl32.Vec3
	End      mgl32.Vec3
	Velocity mgl32.Vec3
	Offset   mgl32.Vec3
	Color    mgl32.Vec3
	Birth    float32
}

func (Segment) Kind() Kind    { return KindSegment }
func (Segment) Vertices() int { return 2 }

func (s Segment) Put(dst []float32) {
	putVertex(dst[:VertexFloats], s.Start, s.Velocity, s.Offset, s.Color, s.Birth)
	putVertex(dst[VertexFloats:], s.End, s.Velocity, s.Offset, s.Color, s.Birth)
}

func putVertex(dst []float32, pos, vel, off, col mgl32.Vec3, birth float32) {
	copy(dst[0:3], pos[:])
	copy(dst[3:6], vel[:])
	copy(dst[6:9], off[:])
	copy(dst[9:12], col[:])
	dst[12] = birth
}
