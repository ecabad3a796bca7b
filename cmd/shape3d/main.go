// Command shape3d shows one of six built-in shapes in a window and lets the mouse orbit,
// roll, pan and zoom the camera around it.
//
// Usage:
//
//	shape3d [-config viewer.toml] [-shape cone] [-width 1280] [-height 720] [-profile]
//
// Keys: 1-6 select the triangle, square, circle, cube, sphere or cone; H resets the camera;
// Q and E roll it; arrow keys and -/= reshape the cone; [ and ] change the spin rate and
// , and . the brightness of the flat shapes; V toggles vsync; P toggles the profiler; Esc quits.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/dleeaw/my3dObject/engine"
	"github.com/dleeaw/my3dObject/engine/camera"
	"github.com/dleeaw/my3dObject/engine/config"
	"github.com/dleeaw/my3dObject/engine/input"
	"github.com/dleeaw/my3dObject/engine/light"
	"github.com/dleeaw/my3dObject/engine/renderer"
	"github.com/dleeaw/my3dObject/engine/scene"
	"github.com/dleeaw/my3dObject/engine/window"
)

func main() {
	flags, err := config.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	if err := cfg.ApplyFlags(flags); err != nil {
		log.Fatalf("[Config] %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("[Engine] %v", err)
	}
}

// run builds the window, renderer, scene and controller from cfg and blocks until the
// window closes. cfg must be valid.
func run(cfg config.Config) error {
	shape, err := cfg.Shape()
	if err != nil {
		return err
	}
	interval, err := cfg.ProfileInterval()
	if err != nil {
		return err
	}
	controllerOptions, err := cfg.ControllerOptions()
	if err != nil {
		return err
	}

	// ── Window ──────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)

	// ── Renderer ────────────────────────────────────────────────────
	presentMode := renderer.PresentModeVSync
	if !cfg.Render.VSync {
		presentMode = renderer.PresentModeUncapped
	}
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.Render.MSAA)),
		renderer.WithForceSoftwareRenderer(cfg.Render.Software),
	)
	if err != nil {
		win.Close()
		return err
	}

	// ── Scene ───────────────────────────────────────────────────────
	home := cfg.HomeCamera()
	home.AspectRatio = float32(win.Width()) / float32(win.Height())
	tb := camera.NewTrackball(home, cfg.TrackballOptions()...)
	s, err := scene.NewScene("shape3d", tb,
		scene.WithLight(light.NewLight(cfg.LightOptions()...)),
		scene.WithShape(shape),
		scene.WithConeParameters(cfg.ConeParameters()),
		scene.WithSpinRate(cfg.Scene.SpinRate),
		scene.WithBrightness(cfg.Scene.Brightness),
		scene.WithClearColor(cfg.Scene.ClearColor),
		scene.WithViewport(win.Width(), win.Height()),
	)
	if err != nil {
		r.Release()
		win.Close()
		return err
	}

	// ── Input ───────────────────────────────────────────────────────
	ctrl := input.NewController(tb, append(controllerOptions, input.WithSceneControl(s))...)

	// ── Engine ──────────────────────────────────────────────────────
	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithScene(s),
		engine.WithController(ctrl),
		engine.WithPresentMode(presentMode),
		engine.WithTickRate(cfg.Render.TickRate),
		engine.WithRenderFrameLimit(cfg.Render.FrameLimit),
		engine.WithProfiling(cfg.Profile.Enabled),
		engine.WithProfilerInterval(interval),
	)
	if err != nil {
		r.Release()
		win.Close()
		return err
	}

	log.Printf("[Engine] showing %s at %dx%d", shape, win.Width(), win.Height())
	return eng.Run()
}
