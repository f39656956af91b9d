package draw

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/hadisv/glcourse/internal/models"
	"github.com/hadisv/glcourse/internal/opengl"
)

type VoronoiApp struct {
	app *models.Voronoi
}

func NewVoronoi(app *models.Voronoi) *VoronoiApp {
	return &VoronoiApp{app: app}
}

func (a *VoronoiApp) Draw() {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	program := a.app.Programs[a.app.Diagram.Active]
	gl.UseProgram(program)
	offsetLoc := opengl.UniformLocation(program, "positionOffset")
	colorLoc := opengl.UniformLocation(program, "coneColor")

	gl.BindVertexArray(a.app.Cone.VAO)
	for _, cone := range a.app.Diagram.Cones {
		gl.Uniform2f(offsetLoc, cone.Offset.X(), cone.Offset.Y())
		gl.Uniform3f(colorLoc, cone.Color.X(), cone.Color.Y(), cone.Color.Z())
		gl.DrawElements(gl.TRIANGLES, a.app.Cone.IndexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}
