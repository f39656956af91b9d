package cmd

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/hadisv/glcourse/internal/config"
	"github.com/hadisv/glcourse/internal/draw"
	"github.com/hadisv/glcourse/internal/logging"
	"github.com/hadisv/glcourse/internal/models"
	"github.com/hadisv/glcourse/internal/opengl"
	"github.com/hadisv/glcourse/internal/update"
	"github.com/hadisv/glcourse/internal/voronoi"
	"github.com/hadisv/glcourse/internal/window"
	"github.com/spf13/cobra"
)

var voronoiCmd = &cobra.Command{
	Use:   "voronoi",
	Short: "Click to place cones; keys 1-3 switch shaders, C clears",
	Args:  cobra.NoArgs,
	Run:   runVoronoi,
}

func init() {
	rootCmd.AddCommand(voronoiCmd)
}

func runVoronoi(cmd *cobra.Command, args []string) {
	logger := logging.New("voronoi", debug)

	settings, err := config.LoadSettings(logger)
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}

	win, err := window.New(settings.Width, settings.Height, "Voronoi Diagram")
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	app := &models.Voronoi{
		Log:     logger,
		Diagram: voronoi.New(rng),
	}

	if err := opengl.InitVoronoi(app); err != nil {
		win.Destroy()
		log.Fatal("Failed to initialize OpenGL:", err)
	}

	updater := update.NewVoronoi(app, win)
	win.OnMouseButton(updater.OnMouseButton)
	win.OnKey(updater.OnKey)

	drawer := draw.NewVoronoi(app)
	for !win.ShouldClose() {
		drawer.Draw()
		win.SwapBuffers()
		win.PollEvents()
	}
	logger.Infof("closed with %d cones", len(app.Diagram.Cones))
}
