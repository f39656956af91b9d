package update

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hadisv/glcourse/internal/models"
	"github.com/hadisv/glcourse/internal/window"
)

type VoronoiApp struct {
	app    *models.Voronoi
	window *window.Window
}

func NewVoronoi(app *models.Voronoi, window *window.Window) *VoronoiApp {
	return &VoronoiApp{app: app, window: window}
}

func (a *VoronoiApp) OnMouseButton(button glfw.MouseButton, action glfw.Action) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	x, y := a.window.GetCursorPos()
	w, h := a.window.GetSize()
	cone := a.app.Diagram.Place(x, y, w, h)
	a.app.Log.Debugf("placed cone %s at (%.3f, %.3f)", cone.ID, cone.Offset.X(), cone.Offset.Y())
}

func (a *VoronoiApp) OnKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}
	switch {
	case key == glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case key == glfw.KeyC:
		a.app.Diagram.Clear()
		a.app.Log.Debugf("cleared diagram")
	case key >= glfw.Key1 && key <= glfw.Key9:
		if a.app.Diagram.Select(rune('1' + key - glfw.Key1)) {
			a.app.Log.Infof("shader: %s", a.app.Diagram.Active)
		}
	}
}
