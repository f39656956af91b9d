package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/hadisv/glcourse/internal/mesh"
	"github.com/hadisv/glcourse/internal/models"
	"github.com/hadisv/glcourse/internal/particles"
	"github.com/hadisv/glcourse/internal/shaders"
	"github.com/hadisv/glcourse/internal/voronoi"
)

const sizeOfFloat = 4

type App struct {
	app *models.Weather
}

func New(app *models.Weather) *App {
	return &App{app: app}
}

// InitGL builds the world and particle programs, uploads the static meshes
// and allocates the zeroed particle buffer. The weather system must be set.
func (a *App) InitGL() error {
	var err error
	a.app.WorldProgram, err = NewProgram("world", shaders.WorldVertex, shaders.WorldFragment)
	if err != nil {
		return err
	}
	a.app.ParticleProgram, err = NewProgram("particle", shaders.ParticleVertex, shaders.ParticleFragment)
	if err != nil {
		return err
	}

	a.app.Floor = UploadMesh(mesh.Floor())
	a.app.Cube = UploadMesh(mesh.Cube())

	a.createParticleBuffer()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return nil
}

func (a *App) createParticleBuffer() {
	gl.GenVertexArrays(1, &a.app.ParticleVAO)
	gl.GenBuffers(1, &a.app.ParticleVBO)

	gl.BindVertexArray(a.app.ParticleVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.app.ParticleVBO)

	data := a.app.Weather.Floats()
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*sizeOfFloat, gl.Ptr(data), gl.DYNAMIC_DRAW)

	stride := int32(particles.VertexFloats * sizeOfFloat)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*sizeOfFloat)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 6*sizeOfFloat)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, 9*sizeOfFloat)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(4, 1, gl.FLOAT, false, stride, 12*sizeOfFloat)
	gl.EnableVertexAttribArray(4)

	gl.BindVertexArray(0)

	a.app.Weather.SetSink(&BufferSink{VBO: a.app.ParticleVBO})
}

// UploadMesh creates a VAO with positions at location 0, colors (if any)
// at location 1 and an element buffer.
func UploadMesh(m mesh.Mesh) models.SceneObject {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	createArrayBuffer(m.Positions)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(0)

	if len(m.Colors) > 0 {
		createArrayBuffer(m.Colors)
		gl.VertexAttribPointer(1, 4, gl.FLOAT, false, 0, nil)
		gl.EnableVertexAttribArray(1)
	}

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return models.SceneObject{VAO: vao, IndexCount: int32(m.IndexCount())}
}

func createArrayBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*sizeOfFloat, gl.Ptr(data), gl.STATIC_DRAW)
	return vbo
}

// BufferSink writes ring-buffer changes into a GL array buffer.
type BufferSink struct {
	VBO uint32
}

func (s *BufferSink) Upload(offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, s.VBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*sizeOfFloat, len(data)*sizeOfFloat, gl.Ptr(data))
}

// InitVoronoi builds one program per voronoi shader and uploads the shared
// cone mesh.
func InitVoronoi(app *models.Voronoi) error {
	fragments := map[voronoi.Shader]string{
		voronoi.ShaderColor:         shaders.ColorFragment,
		voronoi.ShaderDistance:      shaders.DistanceFragment,
		voronoi.ShaderDistanceColor: shaders.DistanceColorFragment,
	}

	app.Programs = app.Programs[:0]
	for _, s := range voronoi.Shaders() {
		program, err := NewProgram(s.String(), shaders.ConeVertex, fragments[s])
		if err != nil {
			return err
		}
		app.Programs = append(app.Programs, program)
	}

	app.Cone = UploadMesh(mesh.Cone(mesh.ConeSegments, mesh.ConeRadius, mesh.ConeHeight))

	// Larger NDC z is nearer, so the cone apex wins the depth test.
	gl.DepthRange(1, 0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return nil
}
