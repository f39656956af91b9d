package camera

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func TestNewLooksDownNegativeZ(t *testing.T) {
	c := New()
	assert.InDelta(t, 0, c.Forward.X(), eps)
	assert.InDelta(t, 0, c.Forward.Y(), eps)
	assert.InDelta(t, -1, c.Forward.Z(), eps)
	assert.Equal(t, mgl32.Vec3{0, EyeHeight, 0}, c.Position)
}

func TestFirstSampleDoesNotRotate(t *testing.T) {
	c := NewAt(mgl32.Vec3{}, 10, 20)
	before := c.Forward

	c.OnPointerMove(5000, -3000)

	assert.Equal(t, float32(10), c.Yaw)
	assert.Equal(t, float32(20), c.Pitch)
	assert.Equal(t, before, c.Forward)
}

func TestResetRearmsLatch(t *testing.T) {
	c := New()
	c.OnPointerMove(0, 0)
	c.OnPointerMove(10, 0)
	yaw := c.Yaw

	c.Reset()
	c.OnPointerMove(900, 900)
	assert.Equal(t, yaw, c.Yaw)

	c.OnPointerMove(910, 900)
	assert.InDelta(t, yaw+1, c.Yaw, eps)
}

func TestZeroDeltaKeepsForward(t *testing.T) {
	c := NewAt(mgl32.Vec3{}, 0, 0)
	c.OnPointerMove(300, 300)
	c.OnPointerMove(300, 300)

	assert.InDelta(t, 1, c.Forward.X(), eps)
	assert.InDelta(t, 0, c.Forward.Y(), eps)
	assert.InDelta(t, 0, c.Forward.Z(), eps)
}

func TestPointerDeltaScalesBySensitivity(t *testing.T) {
	c := NewAt(mgl32.Vec3{}, 0, 0)
	c.OnPointerMove(100, 100)
	c.OnPointerMove(150, 80)

	assert.InDelta(t, 5, c.Yaw, eps)
	// moving the pointer up the screen raises pitch
	assert.InDelta(t, 2, c.Pitch, eps)
}

func TestPitchClampedExactly(t *testing.T) {
	c := NewAt(mgl32.Vec3{}, 30, 0)
	c.OnPointerMove(0, 0)
	for i := 1; i <= 20; i++ {
		c.OnPointerMove(0, float32(-i*1000))
	}

	assert.Equal(t, float32(MaxPitch), c.Pitch)
	assert.Equal(t, float32(30), c.Yaw)

	c.OnPointerMove(0, 1e6)
	assert.Equal(t, float32(MinPitch), c.Pitch)
}

func TestRandomPointerWalkInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	c := New()
	for range 5000 {
		x := (rng.Float32() - 0.5) * 1e5
		y := (rng.Float32() - 0.5) * 1e5
		c.OnPointerMove(x, y)

		require.GreaterOrEqual(t, c.Pitch, float32(MinPitch))
		require.LessOrEqual(t, c.Pitch, float32(MaxPitch))
		require.InDelta(t, 1, c.Forward.Len(), 1e-4)
	}
}

func TestMovementStaysOnPlane(t *testing.T) {
	c := NewAt(mgl32.Vec3{0, EyeHeight, 0}, 0, 45)

	assert.False(t, c.OnKey(KeyForward, true))
	assert.InDelta(t, DefaultLinearSpeed, c.Position.X(), eps)
	assert.InDelta(t, EyeHeight, c.Position.Y(), eps)
	assert.InDelta(t, 0, c.Position.Z(), eps)

	c.OnKey(KeyBack, true)
	assert.InDelta(t, 0, c.Position.X(), eps)
}

func TestStrafe(t *testing.T) {
	// looking down -Z, right is +X
	c := New()
	c.OnKey(KeyRight, true)
	assert.InDelta(t, DefaultLinearSpeed, c.Position.X(), eps)

	c.OnKey(KeyLeft, true)
	c.OnKey(KeyLeft, true)
	assert.InDelta(t, -DefaultLinearSpeed, c.Position.X(), eps)
	assert.InDelta(t, 0, c.Position.Z(), eps)
}

func TestReleasedKeysAndEscape(t *testing.T) {
	c := New()
	pos := c.Position

	assert.False(t, c.OnKey(KeyForward, false))
	assert.False(t, c.OnKey(KeyEscape, false))
	assert.Equal(t, pos, c.Position)

	assert.True(t, c.OnKey(KeyEscape, true))
}

func TestViewLooksAlongForward(t *testing.T) {
	c := New()
	target := c.Position.Add(c.Forward.Mul(5))
	p := c.View().Mul4x1(target.Vec4(1))

	// view space looks down -Z
	assert.InDelta(t, 0, p.X(), eps)
	assert.InDelta(t, 0, p.Y(), eps)
	assert.InDelta(t, -5, p.Z(), eps)
}
