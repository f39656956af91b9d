package particles

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upload struct {
	offset int
	data   []float32
}

type recordingSink struct {
	uploads []upload
}

func (s *recordingSink) Upload(offset int, data []float32) {
	s.uploads = append(s.uploads, upload{offset: offset, data: append([]float32(nil), data...)})
}

func particleAt(i int) Particle {
	f := float32(i)
	return Particle{
		Position: mgl32.Vec3{f, f + 1, f + 2},
		Velocity: mgl32.Vec3{0, -1, 0},
		Color:    mgl32.Vec3{1, 1, 1},
		Birth:    f,
	}
}

func TestRingCursorWrapsModCapacity(t *testing.T) {
	tests := []struct {
		capacity int
		emits    int
	}{
		{capacity: 1, emits: 0},
		{capacity: 1, emits: 5},
		{capacity: 7, emits: 6},
		{capacity: 7, emits: 7},
		{capacity: 7, emits: 50},
		{capacity: 100, emits: 1234},
	}

	for _, tt := range tests {
		r := NewRing[Particle](tt.capacity)
		for i := range tt.emits {
			r.Emit(particleAt(i))
		}
		assert.Equal(t, tt.emits%tt.capacity, r.Cursor(), "capacity %d emits %d", tt.capacity, tt.emits)
		assert.Equal(t, uint64(tt.emits), r.Emitted())
	}
}

func TestRingOverwritesOldestSlot(t *testing.T) {
	r := NewRing[Particle](10000)
	r.Initialize(10001, particleAt)

	assert.Equal(t, 1, r.Cursor())
	assert.Equal(t, particleAt(10000), r.At(0))
	assert.Equal(t, particleAt(1), r.At(1))
	assert.Equal(t, float32(10000), r.Floats()[0])
	assert.Equal(t, float32(10000), r.Floats()[12])
}

func TestRingStartsZeroed(t *testing.T) {
	r := NewRing[Segment](16)
	assert.Equal(t, 16*2*VertexFloats, len(r.Floats()))
	for _, f := range r.Floats() {
		require.Zero(t, f)
	}
}

func TestRingReemitIsIdempotent(t *testing.T) {
	a := NewRing[Particle](4)
	b := NewRing[Particle](4)
	for i := range 4 {
		a.Emit(particleAt(i))
		b.Emit(particleAt(i))
	}
	// b writes the same records again, wrapping back to the same slots
	for i := range 4 {
		b.Emit(particleAt(i))
	}

	assert.Equal(t, a.Cursor(), b.Cursor())
	assert.Equal(t, a.Floats(), b.Floats())
}

func TestRingUploadsChangedRange(t *testing.T) {
	sink := &recordingSink{}
	r := NewRing[Particle](3)
	r.SetSink(sink)

	for i := range 4 {
		r.Emit(particleAt(i))
	}

	require.Len(t, sink.uploads, 4)
	offsets := []int{0, 13, 26, 0}
	for i, u := range sink.uploads {
		assert.Equal(t, offsets[i], u.offset)
		assert.Len(t, u.data, VertexFloats)
		assert.Equal(t, float32(i), u.data[12])
	}
}

func TestSegmentOccupiesTwoVertices(t *testing.T) {
	r := NewRing[Segment](2)
	assert.Equal(t, KindSegment, r.Kind())
	assert.Equal(t, 4, r.VertexCount())

	r.Emit(Segment{
		Start:    mgl32.Vec3{1, 2, 3},
		End:      mgl32.Vec3{4, 5, 6},
		Velocity: mgl32.Vec3{0, -10, 0},
		Color:    mgl32.Vec3{0.5, 0.5, 1},
		Birth:    2.5,
	})

	f := r.Floats()
	assert.Equal(t, []float32{1, 2, 3}, f[0:3])
	assert.Equal(t, []float32{4, 5, 6}, f[VertexFloats:VertexFloats+3])
	assert.Equal(t, f[3:VertexFloats], f[VertexFloats+3:2*VertexFloats])
	assert.Equal(t, float32(2.5), f[2*VertexFloats-1])
}

func TestParticleLayout(t *testing.T) {
	p := Particle{
		Position: mgl32.Vec3{1, 2, 3},
		Velocity: mgl32.Vec3{4, 5, 6},
		Offset:   mgl32.Vec3{7, 8, 9},
		Color:    mgl32.Vec3{10, 11, 12},
		Birth:    13,
	}
	dst := make([]float32, VertexFloats)
	p.Put(dst)

	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, dst)
	assert.Equal(t, "point", p.Kind().String())
}

func TestNewRingRejectsEmptyCapacity(t *testing.T) {
	assert.Panics(t, func() { NewRing[Particle](0) })
}
