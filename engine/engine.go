package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dleeaw/my3dObject/common"
	"github.com/dleeaw/my3dObject/engine/input"
	"github.com/dleeaw/my3dObject/engine/profiler"
	"github.com/dleeaw/my3dObject/engine/renderer"
	"github.com/dleeaw/my3dObject/engine/scene"
	"github.com/dleeaw/my3dObject/engine/window"
)

// ErrMissingComponent is returned by NewEngine when the window, renderer or scene is not set.
var ErrMissingComponent = errors.New("engine: missing component")

// engine implements the Engine interface.
// Coordinates the tick, render and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window     window.Window
	renderer   renderer.Renderer
	scene      scene.Scene
	controller input.Controller

	profiler         *profiler.Profiler
	profilerInterval time.Duration
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(dt time.Duration)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// presentMode is only touched on the window thread.
	presentMode renderer.PresentMode
}

// Engine runs one scene: a tick goroutine advancing it at a fixed rate, a render goroutine
// drawing its frames as fast as the present mode allows, and the window message loop
// forwarding input to the controller. Keys handled by the engine itself are V (toggle vsync)
// and P (toggle the profiler); the rest go to the controller.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene being drawn.
	Scene() scene.Scene

	// Controller returns the controller receiving window input.
	Controller() input.Controller

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ProfilerEnabled reports whether profiling output is enabled.
	ProfilerEnabled() bool

	// SetTickRate sets the scene tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called after every scene tick.
	//
	// Parameters:
	//   - callback: function receiving the time elapsed since the previous tick
	SetTickCallback(callback func(dt time.Duration))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the tick and render goroutines and runs the window message loop on the
	// calling goroutine until the window closes or Quit is called. On return the goroutines
	// have stopped, the renderer is released and the window is closed.
	//
	// Returns:
	//   - error: error if the window could not be closed
	Run() error

	// Quit signals all engine goroutines to stop and asks the window to close.
	// Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates an Engine from the components set through options and connects the
// window callbacks to the renderer, scene and controller. The window, renderer and scene
// options are required; a controller driving the scene's trackball is created when none is
// given.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrMissingComponent if a required component is absent
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		engineTickRate:   time.Second / 60,
		profilerInterval: profiler.DefaultInterval,
		presentMode:      renderer.PresentModeVSync,
	}

	for _, opt := range options {
		opt(e)
	}

	switch {
	case e.window == nil:
		return nil, fmt.Errorf("%w: window", ErrMissingComponent)
	case e.renderer == nil:
		return nil, fmt.Errorf("%w: renderer", ErrMissingComponent)
	case e.scene == nil:
		return nil, fmt.Errorf("%w: scene", ErrMissingComponent)
	}

	width, height := e.window.Width(), e.window.Height()
	if e.controller == nil {
		e.controller = input.NewController(e.scene.Trackball(),
			input.WithSceneControl(e.scene),
			input.WithViewport(width, height),
		)
	}
	e.profiler = profiler.NewProfiler(profiler.WithInterval(e.profilerInterval))
	e.scene.SetViewport(width, height)
	e.controller.Resize(width, height)

	e.window.SetResizeCallback(e.handleResize)
	e.window.SetMouseButtonCallback(e.controller.MouseButton)
	e.window.SetCursorMoveCallback(e.controller.CursorMoved)
	e.window.SetScrollCallback(e.controller.Scroll)
	e.window.SetKeyDownCallback(e.handleKeyDown)

	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Controller() input.Controller {
	return e.controller
}

func (e *engine) Run() error {
	e.running.Store(true)
	e.handle()
	e.window.ProcessMessages()

	e.signalQuit()
	e.wg.Wait()
	e.running.Store(false)

	e.renderer.Release()
	return e.window.Close()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit and stops the window
// message loop. Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
		e.window.RequestClose()
	})
}

// handle launches the tick and render goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()
}

// handleEngine runs the fixed-rate scene tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick)
			lastTick = now

			e.scene.Tick(dt)
			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	// lastErr suppresses repeats of the same failure, e.g. an outdated surface while the
	// window is minimized.
	var lastErr string

	for {
		select {
		case <-e.quitChannel:
			return
		default:
		}

		frameStart := time.Now()
		if err := e.renderer.Render(e.scene.Frame()); err != nil {
			if msg := err.Error(); msg != lastErr {
				log.Printf("[Engine] render: %v", err)
				lastErr = msg
			}
		} else {
			lastErr = ""
		}

		if e.profilingEnabled.Load() {
			e.profiler.Tick()
		}

		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

// handleResize propagates a framebuffer resize to the surface, the camera aspect and the
// pointer normalization.
func (e *engine) handleResize(width, height int) {
	e.renderer.Resize(width, height)
	e.scene.SetViewport(width, height)
	e.controller.Resize(width, height)
}

func (e *engine) handleKeyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyV:
		if e.presentMode == renderer.PresentModeVSync {
			e.presentMode = renderer.PresentModeUncapped
		} else {
			e.presentMode = renderer.PresentModeVSync
		}
		e.renderer.SetPresentMode(e.presentMode, e.window.Width(), e.window.Height())
		log.Printf("[Engine] present mode: %s", e.presentMode)
	case common.KeyP:
		if e.ProfilerEnabled() {
			e.DisableProfiler()
		} else {
			e.EnableProfiler()
		}
	default:
		e.controller.KeyDown(keyCode)
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	if !e.profilingEnabled.Swap(true) {
		log.Printf("[Engine] profiler enabled, reporting every %s", e.profiler.Interval())
	}
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	if e.profilingEnabled.Swap(false) {
		log.Printf("[Engine] profiler disabled")
	}
}

func (e *engine) ProfilerEnabled() bool {
	return e.profilingEnabled.Load()
}

// SetTickRate sets the scene tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}

	// Non-blocking send; a pending update is replaced by the newer value.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(dt time.Duration)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameLimit(fps)
}

// tickInterval converts a tick rate to a ticker period, defaulting to 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// frameLimit converts a frame cap to a minimum frame duration; 0 means uncapped.
func frameLimit(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
