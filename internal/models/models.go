package models

import (
	"time"

	"github.com/hadisv/glcourse/internal/camera"
	"github.com/hadisv/glcourse/internal/logging"
	"github.com/hadisv/glcourse/internal/spawn"
	"github.com/hadisv/glcourse/internal/voronoi"
)

// SceneObject is an uploaded indexed mesh.
type SceneObject struct {
	VAO        uint32
	IndexCount int32
}

// Weather is the state of the weather program. It is owned by the render
// loop and passed to every update and draw step.
type Weather struct {
	Log logging.Logger

	Camera  *camera.Camera
	Weather spawn.System

	WorldProgram    uint32
	ParticleProgram uint32
	ParticleVAO     uint32
	ParticleVBO     uint32

	Floor SceneObject
	Cube  SceneObject

	StartTime time.Time
	Quit      bool
}

// Now is the time since start in seconds, the clock particle births use.
func (w *Weather) Now() float32 {
	return float32(time.Since(w.StartTime).Seconds())
}

// CubeModels are the world transforms of the scene's cubes.
var CubeModels = []struct {
	X, Y, Z float32
	Yaw     float32
}{
	{2, 1, 2, 90},
	{-2, 1, -2, 45},
}

type Voronoi struct {
	Log logging.Logger

	Diagram *voronoi.Diagram

	// one program per voronoi.Shader, indexed by it
	Programs []uint32
	Cone     SceneObject
}
