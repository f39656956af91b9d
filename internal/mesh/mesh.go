// Package mesh builds the static geometry used by both programs.
package mesh

import "math"

// Mesh is an indexed triangle mesh. Positions are xyz, Colors rgba; a mesh
// without per-vertex color leaves Colors nil.
type Mesh struct {
	Positions []float32
	Colors    []float32
	Indices   []uint32
}

func (m Mesh) VertexCount() int { return len(m.Positions) / 3 }
func (m Mesh) IndexCount() int  { return len(m.Indices) }

const (
	ConeSegments = 50
	ConeRadius   = 100
	ConeHeight   = -0.5
)

// Cone builds a triangle fan with its apex at (0, 0, 1) and a rim of
// segments+1 vertices at radius/2 on the plane z = height. The first and
// last rim vertices coincide so the fan closes.
func Cone(segments int, radius, height float32) Mesh {
	positions := make([]float32, 0, (segments+2)*3)
	positions = append(positions, 0, 0, 1)

	step := 2 * math.Pi / float64(segments)
	for i := 0; i <= segments; i++ {
		angle := float64(i) * step
		positions = append(positions,
			float32(math.Cos(angle))/2*radius,
			float32(math.Sin(angle))/2*radius,
			height,
		)
	}

	indices := make([]uint32, 0, segments*3)
	for i := range segments {
		indices = append(indices, 0, uint32(i+1), uint32(i+2))
	}

	return Mesh{Positions: positions, Indices: indices}
}

// Cube is centered on the origin with half-extent 1 and one color per face.
func Cube() Mesh {
	faces := []struct {
		corners [4][3]float32
		color   [4]float32
	}{
		{[4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}, [4]float32{1.0, 0.0, 0.0, 1}},
		{[4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, [4]float32{0.0, 1.0, 0.0, 1}},
		{[4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}, [4]float32{0.0, 0.0, 1.0, 1}},
		{[4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, [4]float32{1.0, 1.0, 0.0, 1}},
		{[4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, [4]float32{1.0, 0.0, 1.0, 1}},
		{[4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, [4]float32{0.0, 1.0, 1.0, 1}},
	}

	var m Mesh
	for f, face := range faces {
		for _, c := range face.corners {
			m.Positions = append(m.Positions, c[:]...)
			m.Colors = append(m.Colors, face.color[:]...)
		}
		base := uint32(f * 4)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

const (
	FloorHalfSize = 10
	floorTiles    = 20
)

// Floor is a checkered square on y = 0 spanning [-FloorHalfSize,
// FloorHalfSize] on x and z. It is built in world space.
func Floor() Mesh {
	var m Mesh
	tile := float32(2*FloorHalfSize) / floorTiles
	for row := range floorTiles {
		for col := range floorTiles {
			x0 := -FloorHalfSize + float32(col)*tile
			z0 := -FloorHalfSize + float32(row)*tile
			shade := float32(0.55)
			if (row+col)%2 == 0 {
				shade = 0.75
			}

			base := uint32(m.VertexCount())
			m.Positions = append(m.Positions,
				x0, 0, z0,
				x0+tile, 0, z0,
				x0+tile, 0, z0+tile,
				x0, 0, z0+tile,
			)
			for range 4 {
				m.Colors = append(m.Colors, shade, shade, shade, 1)
			}
			m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
		}
	}
	return m
}
