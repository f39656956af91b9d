// Package voronoi keeps the cones placed by the user. Each cone is drawn
// with its apex towards the viewer; the depth test keeps the nearest cone
// per pixel, which is the Voronoi diagram of the cone centers.
package voronoi

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Shader int

const (
	ShaderColor Shader = iota
	ShaderDistance
	ShaderDistanceColor
	shaderCount
)

func (s Shader) String() string {
	switch s {
	case ShaderColor:
		return "color"
	case ShaderDistance:
		return "distance"
	case ShaderDistanceColor:
		return "distance_color"
	default:
		return "unknown"
	}
}

// Shaders lists every shader in key order.
func Shaders() []Shader {
	out := make([]Shader, 0, shaderCount)
	for s := range shaderCount {
		out = append(out, s)
	}
	return out
}

type Cone struct {
	ID     uuid.UUID
	Color  mgl32.Vec3
	Offset mgl32.Vec2
}

type Diagram struct {
	Cones  []Cone
	Active Shader
	rng    *rand.Rand
}

func New(rng *rand.Rand) *Diagram {
	return &Diagram{rng: rng}
}

// Place adds a cone under the screen position (x, y) of a w×h window.
func (d *Diagram) Place(x, y float64, w, h int) Cone {
	cone := Cone{
		ID:     uuid.New(),
		Color:  mgl32.Vec3{d.rng.Float32(), d.rng.Float32(), d.rng.Float32()},
		Offset: ScreenToNDC(x, y, w, h),
	}
	d.Cones = append(d.Cones, cone)
	return cone
}

// Select switches the active shader for the digit keys '1' to '3' and
// reports whether the key was one of them.
func (d *Diagram) Select(digit rune) bool {
	s := Shader(digit - '1')
	if s < 0 || s >= shaderCount {
		return false
	}
	d.Active = s
	return true
}

func (d *Diagram) Clear() {
	d.Cones = d.Cones[:0]
}

// ScreenToNDC maps window coordinates (origin top-left, y down) to
// normalized device coordinates (origin center, y up).
func ScreenToNDC(x, y float64, w, h int) mgl32.Vec2 {
	if w <= 0 || h <= 0 {
		return mgl32.Vec2{}
	}
	nx := float32(x)/float32(w)*2 - 1
	ny := float32(y)/float32(h)*2 - 1
	return mgl32.Vec2{nx, -ny}
}
