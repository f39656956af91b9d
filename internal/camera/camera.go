// Package camera implements a first-person free-look camera driven by
// pointer deltas and held movement keys.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MaxPitch = 89.0
	MinPitch = -89.0

	DefaultSensitivity = 0.1
	DefaultLinearSpeed = 0.15
	DefaultFOV         = 70.0
	DefaultYaw         = -90.0
	EyeHeight          = 1.6

	near = 0.01
	far  = 100.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

type Key int

const (
	KeyNone Key = iota
	KeyForward
	KeyBack
	KeyLeft
	KeyRight
	KeyEscape
)

type Camera struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	Yaw      float32
	Pitch    float32

	Sensitivity float32
	LinearSpeed float32
	FOV         float32

	lastX, lastY float32
	latched      bool
}

// New places the camera at eye height on the origin looking down -Z.
func New() *Camera {
	c := &Camera{
		Position:    mgl32.Vec3{0, EyeHeight, 0},
		Yaw:         DefaultYaw,
		Sensitivity: DefaultSensitivity,
		LinearSpeed: DefaultLinearSpeed,
		FOV:         DefaultFOV,
	}
	c.updateForward()
	return c
}

// NewAt builds a camera with explicit orientation. pitch is clamped.
func NewAt(position mgl32.Vec3, yaw, pitch float32) *Camera {
	c := New()
	c.Position = position
	c.Yaw = yaw
	c.Pitch = clampPitch(pitch)
	c.updateForward()
	return c
}

// Reset re-arms the first-sample latch so the next pointer sample does
// not rotate the camera.
func (c *Camera) Reset() {
	c.latched = false
}

func (c *Camera) OnPointerMove(x, y float32) {
	if !c.latched {
		c.lastX, c.lastY = x, y
		c.latched = true
		return
	}

	dx := (x - c.lastX) * c.Sensitivity
	dy := (c.lastY - y) * c.Sensitivity // screen y grows downward
	c.lastX, c.lastY = x, y

	c.Yaw += dx
	c.Pitch = clampPitch(c.Pitch + dy)
	c.updateForward()
}

// OnKey applies one tick of movement for a held key. It reports true when
// the key asks for the render loop to stop.
func (c *Camera) OnKey(key Key, pressed bool) bool {
	if !pressed {
		return false
	}
	if key == KeyEscape {
		return true
	}

	planar := c.PlanarForward()
	if planar.Len() == 0 {
		return false
	}
	right := planar.Cross(worldUp)

	switch key {
	case KeyForward:
		c.Position = c.Position.Add(planar.Mul(c.LinearSpeed))
	case KeyBack:
		c.Position = c.Position.Sub(planar.Mul(c.LinearSpeed))
	case KeyLeft:
		c.Position = c.Position.Sub(right.Mul(c.LinearSpeed))
	case KeyRight:
		c.Position = c.Position.Add(right.Mul(c.LinearSpeed))
	}
	return false
}

// PlanarForward is the forward vector projected on the XZ plane and
// renormalized. It is zero only if forward is vertical.
func (c *Camera) PlanarForward() mgl32.Vec3 {
	v := mgl32.Vec3{c.Forward.X(), 0, c.Forward.Z()}
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward), worldUp)
}

func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, near, far)
}

// ViewProjection composes projection * view.
func (c *Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

func (c *Camera) updateForward() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	c.Forward = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

func clampPitch(p float32) float32 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < MinPitch {
		return MinPitch
	}
	return p
}
