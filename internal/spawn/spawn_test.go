package spawn

import (
	"math/rand/v2"
	"testing"

	"github.com/hadisv/glcourse/internal/particles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("rain")
	require.NoError(t, err)
	assert.Equal(t, ModeRain, m)

	_, err = ParseMode("hail")
	assert.Error(t, err)
}

func TestNewSelectsVariant(t *testing.T) {
	snow, err := New(ModeSnow, 8, newRNG())
	require.NoError(t, err)
	assert.Equal(t, particles.KindPoint, snow.Kind())
	assert.Equal(t, 8, snow.VertexCount())

	rain, err := New(ModeRain, 8, newRNG())
	require.NoError(t, err)
	assert.Equal(t, particles.KindSegment, rain.Kind())
	assert.Equal(t, 16, rain.VertexCount())

	_, err = New(Mode("fog"), 8, newRNG())
	assert.Error(t, err)
}

func TestSnowPrefillStaysInVolume(t *testing.T) {
	s := NewSnow(500, newRNG())
	s.Prefill(500)

	assert.Equal(t, 0, s.Cursor())
	for i := range s.Cap() {
		p := s.At(i)
		require.GreaterOrEqual(t, p.Position.X(), float32(-HalfWidth))
		require.LessOrEqual(t, p.Position.X(), float32(HalfWidth))
		require.GreaterOrEqual(t, p.Position.Y(), float32(0))
		require.LessOrEqual(t, p.Position.Y(), float32(Ceiling))
		require.Less(t, p.Velocity.Y(), float32(0))
		require.Zero(t, p.Birth)
	}
}

func TestSnowStepEmitsOneAtCeiling(t *testing.T) {
	s := NewSnow(4, newRNG())
	s.Step(1.5)

	assert.Equal(t, 1, s.Cursor())
	p := s.At(0)
	assert.Equal(t, float32(Ceiling), p.Position.Y())
	assert.Equal(t, float32(1.5), p.Birth)
}

func TestRainStepEmitsFallingStreak(t *testing.T) {
	r := NewRain(4, newRNG())
	r.Prefill(3)
	r.Step(2)

	assert.Equal(t, 0, r.Cursor())
	seg := r.At(3)
	assert.Equal(t, float32(Ceiling), seg.Start.Y())
	assert.Less(t, seg.End.Y(), seg.Start.Y())
	assert.InDelta(t, StreakLength, seg.End.Sub(seg.Start).Len(), 1e-5)
	assert.Equal(t, float32(2), seg.Birth)
}

func TestStepUploadsThroughSink(t *testing.T) {
	var got []int
	sys, err := New(ModeRain, 2, newRNG())
	require.NoError(t, err)
	sys.SetSink(sinkFunc(func(offset int, data []float32) {
		got = append(got, offset, len(data))
	}))

	sys.Step(0)
	sys.Step(0)
	sys.Step(0)

	vf := 2 * particles.VertexFloats
	assert.Equal(t, []int{0, vf, vf, vf, 0, vf}, got)
}

type sinkFunc func(offset int, data []float32)

func (f sinkFunc) Upload(offset int, data []float32) { f(offset, data) }
