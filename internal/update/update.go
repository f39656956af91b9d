package update

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hadisv/glcourse/internal/camera"
	"github.com/hadisv/glcourse/internal/models"
	"github.com/hadisv/glcourse/internal/window"
)

var heldKeys = []struct {
	glfw   glfw.Key
	camera camera.Key
}{
	{glfw.KeyW, camera.KeyForward},
	{glfw.KeyS, camera.KeyBack},
	{glfw.KeyA, camera.KeyLeft},
	{glfw.KeyD, camera.KeyRight},
	{glfw.KeyEscape, camera.KeyEscape},
}

type App struct {
	app *models.Weather
}

func New(app *models.Weather) *App {
	return &App{app: app}
}

// OnCursorMove forwards a pointer sample to the camera.
func (a *App) OnCursorMove(x, y float64) {
	a.app.Camera.OnPointerMove(float32(x), float32(y))
}

// UpdateCamera applies one tick of movement for every held key and flags
// the app to quit on escape.
func (a *App) UpdateCamera(window *window.Window) {
	for _, k := range heldKeys {
		if a.app.Camera.OnKey(k.camera, window.KeyDown(k.glfw)) && !a.app.Quit {
			a.app.Log.Infof("escape pressed, closing")
			a.app.Quit = true
		}
	}
	if a.app.Quit {
		window.SetShouldClose(true)
	}
}

// UpdateWeather emits the single fresh record of this frame.
func (a *App) UpdateWeather(now float32) {
	a.app.Weather.Step(now)
}
