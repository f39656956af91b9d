package cmd

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/hadisv/glcourse/internal/camera"
	"github.com/hadisv/glcourse/internal/config"
	"github.com/hadisv/glcourse/internal/draw"
	"github.com/hadisv/glcourse/internal/logging"
	"github.com/hadisv/glcourse/internal/models"
	"github.com/hadisv/glcourse/internal/opengl"
	"github.com/hadisv/glcourse/internal/pacing"
	"github.com/hadisv/glcourse/internal/spawn"
	"github.com/hadisv/glcourse/internal/update"
	"github.com/hadisv/glcourse/internal/window"
	"github.com/spf13/cobra"
)

var (
	weatherMode      string
	weatherParticles int
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Fly through a small world in rain or snow",
	Args:  cobra.NoArgs,
	Run:   runWeather,
}

func init() {
	rootCmd.AddCommand(weatherCmd)
	weatherCmd.Flags().StringVar(&weatherMode, "mode", "", "weather to simulate: snow or rain (default from settings)")
	weatherCmd.Flags().IntVar(&weatherParticles, "particles", 0, "ring buffer capacity (default from settings)")
}

func runWeather(cmd *cobra.Command, args []string) {
	logger := logging.New("weather", debug)

	settings, err := config.LoadSettings(logger)
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}
	if cmd.Flags().Changed("mode") {
		settings.Mode = weatherMode
	}
	if cmd.Flags().Changed("particles") && weatherParticles > 0 {
		settings.ParticleCount = weatherParticles
	}

	mode, err := spawn.ParseMode(settings.Mode)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	system, err := spawn.New(mode, settings.ParticleCount, rng)
	if err != nil {
		log.Fatal(err)
	}
	system.Prefill(settings.ParticleCount)

	win, err := window.New(settings.Width, settings.Height, "Weather")
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()

	cam := camera.New()
	cam.Sensitivity = settings.MouseSensitivity
	cam.LinearSpeed = settings.LinearSpeed
	cam.FOV = settings.FOVDegrees

	app := &models.Weather{
		Log:       logger,
		Camera:    cam,
		Weather:   system,
		StartTime: time.Now(),
	}

	if err := opengl.New(app).InitGL(); err != nil {
		win.Destroy()
		log.Fatal("Failed to initialize OpenGL:", err)
	}
	logger.Infof("%s with %d records, %d vertices per frame", mode, settings.ParticleCount, system.VertexCount())

	updater := update.New(app)
	drawer := draw.New(app)

	win.CaptureCursor()
	win.OnCursorMove(updater.OnCursorMove)

	limiter := pacing.New(time.Duration(settings.FrameIntervalMs) * time.Millisecond)
	var frames int
	for !win.ShouldClose() {
		frameStart := limiter.Now()
		now := app.Now()

		updater.UpdateCamera(win)
		updater.UpdateWeather(now)
		drawer.Draw(win.Aspect(), now)

		win.SwapBuffers()
		win.PollEvents()

		elapsed := limiter.Wait(frameStart)
		frames++
		if logger.DebugEnabled() && frames%250 == 0 {
			logger.Debugf("frame %d took %s, camera at %v", frames, elapsed, app.Camera.Position)
		}
	}
}
