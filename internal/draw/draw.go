package draw

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hadisv/glcourse/internal/models"
	"github.com/hadisv/glcourse/internal/opengl"
	"github.com/hadisv/glcourse/internal/particles"
	"github.com/hadisv/glcourse/internal/spawn"
)

const (
	snowPointSize = 40.0
	// rain is drawn as segments; the point size is unused
	rainPointSize = 1.0
)

var weatherBox = mgl32.Vec3{2 * spawn.HalfWidth, spawn.Ceiling, 2 * spawn.HalfWidth}

type App struct {
	app *models.Weather
}

func New(app *models.Weather) *App {
	return &App{app: app}
}

func (a *App) Draw(aspect, currentTime float32) {
	gl.ClearColor(0.3, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProjection := a.app.Camera.ViewProjection(aspect)

	a.drawWorld(viewProjection)
	a.drawWeather(viewProjection, currentTime)
}

func (a *App) drawWorld(viewProjection mgl32.Mat4) {
	gl.UseProgram(a.app.WorldProgram)
	modelLoc := opengl.UniformLocation(a.app.WorldProgram, "model")

	// the floor is built in world space
	gl.UniformMatrix4fv(modelLoc, 1, false, &viewProjection[0])
	drawSceneObject(a.app.Floor)

	for _, c := range models.CubeModels {
		model := viewProjection.
			Mul4(mgl32.Translate3D(c.X, c.Y, c.Z)).
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Yaw)))
		gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])
		drawSceneObject(a.app.Cube)
	}
}

// drawWeather submits every slot of the ring, stale ones included; the
// vertex shader decides where an old record ends up.
func (a *App) drawWeather(viewProjection mgl32.Mat4, currentTime float32) {
	w := a.app.Weather
	program := a.app.ParticleProgram

	mode := uint32(gl.POINTS)
	pointSize := float32(snowPointSize)
	streak := float32(0)
	if w.Kind() == particles.KindSegment {
		mode = gl.LINES
		pointSize = rainPointSize
		streak = spawn.StreakLength
	}

	gl.UseProgram(program)
	gl.UniformMatrix4fv(opengl.UniformLocation(program, "viewProjection"), 1, false, &viewProjection[0])
	gl.Uniform1f(opengl.UniformLocation(program, "currentTime"), currentTime)
	pos := a.app.Camera.Position
	gl.Uniform3f(opengl.UniformLocation(program, "cameraPosition"), pos.X(), pos.Y(), pos.Z())
	gl.Uniform3f(opengl.UniformLocation(program, "boxSize"), weatherBox.X(), weatherBox.Y(), weatherBox.Z())
	gl.Uniform1f(opengl.UniformLocation(program, "pointSize"), pointSize)
	gl.Uniform1f(opengl.UniformLocation(program, "streakLength"), streak)
	round := int32(0)
	if mode == gl.POINTS {
		round = 1
	}
	gl.Uniform1i(opengl.UniformLocation(program, "roundPoints"), round)

	// particles are translucent; keep them out of the depth buffer
	gl.DepthMask(false)
	gl.BindVertexArray(a.app.ParticleVAO)
	gl.DrawArrays(mode, 0, int32(w.VertexCount()))
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

func drawSceneObject(obj models.SceneObject) {
	gl.BindVertexArray(obj.VAO)
	gl.DrawElements(gl.TRIANGLES, obj.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}
