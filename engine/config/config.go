package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dleeaw/my3dObject/common"
	"github.com/dleeaw/my3dObject/engine/camera"
	"github.com/dleeaw/my3dObject/engine/input"
	"github.com/dleeaw/my3dObject/engine/light"
	"github.com/dleeaw/my3dObject/engine/mesh"
	"github.com/dleeaw/my3dObject/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidConfig is wrapped by every error Validate reports.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete viewer configuration. Every field has a default (see Default), so
// a configuration file only needs the keys it changes.
type Config struct {
	Window    WindowConfig    `toml:"window" yaml:"window"`
	Camera    CameraConfig    `toml:"camera" yaml:"camera"`
	Trackball TrackballConfig `toml:"trackball" yaml:"trackball"`
	Scene     SceneConfig     `toml:"scene" yaml:"scene"`
	Cone      ConeConfig      `toml:"cone" yaml:"cone"`
	Light     LightConfig     `toml:"light" yaml:"light"`
	Input     InputConfig     `toml:"input" yaml:"input"`
	Render    RenderConfig    `toml:"render" yaml:"render"`
	Profile   ProfileConfig   `toml:"profile" yaml:"profile"`
}

// WindowConfig sizes the viewer window.
type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

// CameraConfig describes the home camera. The aspect ratio always comes from the window.
type CameraConfig struct {
	Eye         [3]float32 `toml:"eye" yaml:"eye"`
	At          [3]float32 `toml:"at" yaml:"at"`
	Up          [3]float32 `toml:"up" yaml:"up"`
	FovYDegrees float32    `toml:"fov_y_degrees" yaml:"fov_y_degrees"`
	Near        float32    `toml:"near" yaml:"near"`
	Far         float32    `toml:"far" yaml:"far"`
	Zoom        float32    `toml:"zoom" yaml:"zoom"`
}

// TrackballConfig tunes the trackball response.
type TrackballConfig struct {
	Deadzone    float32 `toml:"deadzone" yaml:"deadzone"`
	RotateScale float32 `toml:"rotate_scale" yaml:"rotate_scale"`
	ZoomBase    float32 `toml:"zoom_base" yaml:"zoom_base"`
}

// SceneConfig selects the initial shape and the scene animation.
type SceneConfig struct {
	Shape      string     `toml:"shape" yaml:"shape"`
	SpinRate   float32    `toml:"spin_rate" yaml:"spin_rate"`
	Brightness float32    `toml:"brightness" yaml:"brightness"`
	ClearColor [4]float64 `toml:"clear_color" yaml:"clear_color"`
}

// ConeConfig holds the initial cone parameters.
type ConeConfig struct {
	Radius   float32 `toml:"radius" yaml:"radius"`
	Height   float32 `toml:"height" yaml:"height"`
	Segments int     `toml:"segments" yaml:"segments"`
}

// LightConfig holds the point light used for shading.
type LightConfig struct {
	Position  [3]float32 `toml:"position" yaml:"position"`
	Color     [3]float32 `toml:"color" yaml:"color"`
	Intensity float32    `toml:"intensity" yaml:"intensity"`
	Ambient   float32    `toml:"ambient" yaml:"ambient"`
	Specular  float32    `toml:"specular" yaml:"specular"`
	Shininess float32    `toml:"shininess" yaml:"shininess"`
}

// InputConfig maps mouse buttons to trackball mode names ("rotate", "roll", "pan", "zoom"
// or "none") and sets the step sizes of scroll and keyboard input.
type InputConfig struct {
	Left       string  `toml:"left" yaml:"left"`
	ShiftLeft  string  `toml:"shift_left" yaml:"shift_left"`
	Right      string  `toml:"right" yaml:"right"`
	Middle     string  `toml:"middle" yaml:"middle"`
	ScrollStep float32 `toml:"scroll_step" yaml:"scroll_step"`
	ConeStep   float32 `toml:"cone_step" yaml:"cone_step"`
}

// RenderConfig controls presentation and the loop rates. MSAA is the sample count, 1 or 4.
// FrameLimit caps the render loop in frames per second; 0 leaves it uncapped.
type RenderConfig struct {
	VSync      bool    `toml:"vsync" yaml:"vsync"`
	MSAA       int     `toml:"msaa" yaml:"msaa"`
	Software   bool    `toml:"software" yaml:"software"`
	TickRate   float64 `toml:"tick_rate" yaml:"tick_rate"`
	FrameLimit float64 `toml:"frame_limit" yaml:"frame_limit"`
}

// ProfileConfig controls the frame profiler. Interval is a time.ParseDuration string.
type ProfileConfig struct {
	Enabled  bool   `toml:"enabled" yaml:"enabled"`
	Interval string `toml:"interval" yaml:"interval"`
}

// Default returns the stock viewer configuration: a 1280x720 window showing the
// cube from (0, 0, 5) with a 120° field of view.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	home := camera.NewCamera()
	cone := mesh.DefaultConeParameters()
	return Config{
		Window: WindowConfig{
			Title:  "Hello Shape3D",
			Width:  1280,
			Height: 720,
		},
		Camera: CameraConfig{
			Eye:         home.Eye,
			At:          home.At,
			Up:          home.Up,
			FovYDegrees: mgl32.RadToDeg(home.FovY),
			Near:        home.Near,
			Far:         home.Far,
			Zoom:        home.ZoomFactor,
		},
		Trackball: TrackballConfig{
			Deadzone:    0.01,
			RotateScale: mgl32.DegToRad(90),
			ZoomBase:    1.2,
		},
		Scene: SceneConfig{
			Shape:      mesh.ShapeCube.String(),
			SpinRate:   0.10,
			Brightness: 1,
			ClearColor: [4]float64{0.1, 0.1, 0.12, 1},
		},
		Cone: ConeConfig{
			Radius:   cone.Radius,
			Height:   cone.Height,
			Segments: cone.Segments,
		},
		Light: LightConfig{
			Position:  [3]float32{1, 1, 1},
			Color:     [3]float32{1, 1, 1},
			Intensity: 1,
			Ambient:   0.4,
			Specular:  0.3,
			Shininess: 32,
		},
		Input: InputConfig{
			Left:       camera.ModeRotate.String(),
			ShiftLeft:  camera.ModeRoll.String(),
			Right:      camera.ModePan.String(),
			Middle:     camera.ModeZoom.String(),
			ScrollStep: 0.25,
			ConeStep:   0.1,
		},
		Render: RenderConfig{
			VSync:    true,
			MSAA:     4,
			TickRate: 60,
		},
		Profile: ProfileConfig{
			Enabled:  false,
			Interval: "5s",
		},
	}
}

// Validate checks every section and reports all problems at once.
//
// Returns:
//   - error: the joined problems, each wrapping ErrInvalidConfig, or nil
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if err := c.HomeCamera().Validate(); err != nil {
		invalid("camera: %w", err)
	}
	if c.Trackball.Deadzone < 0 {
		invalid("trackball deadzone %g must not be negative", c.Trackball.Deadzone)
	}
	if c.Trackball.RotateScale <= 0 {
		invalid("trackball rotate_scale %g must be positive", c.Trackball.RotateScale)
	}
	if c.Trackball.ZoomBase <= 1 {
		invalid("trackball zoom_base %g must be greater than 1", c.Trackball.ZoomBase)
	}
	if _, err := c.Shape(); err != nil {
		invalid("scene: %w", err)
	}
	if c.Scene.SpinRate < 0 || c.Scene.SpinRate > scene.MaxSpinRate {
		invalid("scene spin_rate %g must be in [0, %g]", c.Scene.SpinRate, scene.MaxSpinRate)
	}
	if c.Scene.Brightness < 0 || c.Scene.Brightness > 1 {
		invalid("scene brightness %g must be in [0, 1]", c.Scene.Brightness)
	}
	if err := c.ConeParameters().Validate(); err != nil {
		invalid("cone: %w", err)
	}
	if c.Light.Intensity < 0 || c.Light.Specular < 0 {
		invalid("light intensity and specular must not be negative")
	}
	if c.Light.Ambient < 0 || c.Light.Ambient > 1 {
		invalid("light ambient %g must be in [0, 1]", c.Light.Ambient)
	}
	if c.Light.Shininess <= 0 {
		invalid("light shininess %g must be positive", c.Light.Shininess)
	}
	if _, err := c.Bindings(); err != nil {
		invalid("input: %w", err)
	}
	if c.Input.ScrollStep <= 0 || c.Input.ConeStep <= 0 {
		invalid("input scroll_step and cone_step must be positive")
	}
	if c.Render.MSAA != 1 && c.Render.MSAA != 4 {
		invalid("render msaa %d must be 1 or 4", c.Render.MSAA)
	}
	if c.Render.TickRate <= 0 || c.Render.FrameLimit < 0 {
		invalid("render tick_rate must be positive and frame_limit not negative")
	}
	if _, err := c.ProfileInterval(); err != nil {
		invalid("profile: %w", err)
	}
	return errors.Join(errs...)
}

// HomeCamera builds the camera the trackball starts from and resets to.
//
// Returns:
//   - camera.Camera: the home camera with the window's aspect ratio
func (c Config) HomeCamera() camera.Camera {
	aspect := float32(1)
	if c.Window.Width > 0 && c.Window.Height > 0 {
		aspect = float32(c.Window.Width) / float32(c.Window.Height)
	}
	return camera.NewCamera(
		camera.WithEye(c.Camera.Eye),
		camera.WithAt(c.Camera.At),
		camera.WithUp(c.Camera.Up),
		camera.WithFovY(mgl32.DegToRad(c.Camera.FovYDegrees)),
		camera.WithAspectRatio(aspect),
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
		camera.WithZoomFactor(c.Camera.Zoom),
	)
}

// TrackballOptions returns the trackball tunables as functional options.
func (c Config) TrackballOptions() []camera.TrackballOption {
	return []camera.TrackballOption{
		camera.WithDeadzone(c.Trackball.Deadzone),
		camera.WithRotateScale(c.Trackball.RotateScale),
		camera.WithZoomBase(c.Trackball.ZoomBase),
	}
}

// Shape parses the initially selected shape.
func (c Config) Shape() (mesh.Shape, error) {
	return mesh.ParseShape(c.Scene.Shape)
}

// ConeParameters returns the initial cone parameters.
func (c Config) ConeParameters() mesh.ConeParameters {
	return mesh.ConeParameters{
		Radius:   c.Cone.Radius,
		Height:   c.Cone.Height,
		Segments: c.Cone.Segments,
	}
}

// LightOptions returns the light section as functional options for light.NewLight.
func (c Config) LightOptions() []light.LightBuilderOption {
	p, col := c.Light.Position, c.Light.Color
	return []light.LightBuilderOption{
		light.WithPosition(p[0], p[1], p[2]),
		light.WithColor(col[0], col[1], col[2]),
		light.WithIntensity(c.Light.Intensity),
		light.WithAmbient(c.Light.Ambient),
		light.WithSpecular(c.Light.Specular),
		light.WithShininess(c.Light.Shininess),
	}
}

// Bindings parses the input section into button bindings. Buttons mapped to "none" or
// left empty get no binding.
//
// Returns:
//   - input.Bindings: the parsed bindings in left, shift+left, right, middle order
//   - error: a wrapped camera.ErrUnknownMode for an unrecognized name
func (c Config) Bindings() (input.Bindings, error) {
	slots := []struct {
		name    string
		binding input.Binding
	}{
		{c.Input.Left, input.Binding{Button: common.MouseButtonLeft}},
		{c.Input.ShiftLeft, input.Binding{Button: common.MouseButtonLeft, Mods: common.ModShift}},
		{c.Input.Right, input.Binding{Button: common.MouseButtonRight}},
		{c.Input.Middle, input.Binding{Button: common.MouseButtonMiddle}},
	}

	var bindings input.Bindings
	for _, slot := range slots {
		if slot.name == "" {
			continue
		}
		mode, err := camera.ParseMode(slot.name)
		if err != nil {
			return nil, err
		}
		if mode == camera.ModeNone {
			continue
		}
		b := slot.binding
		b.Mode = mode
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// ControllerOptions returns the input section as functional options for
// input.NewController.
//
// Returns:
//   - []input.ControllerOption: bindings, scroll step and cone step
//   - error: the error from Bindings, if any
func (c Config) ControllerOptions() ([]input.ControllerOption, error) {
	bindings, err := c.Bindings()
	if err != nil {
		return nil, err
	}
	return []input.ControllerOption{
		input.WithBindings(bindings),
		input.WithScrollStep(c.Input.ScrollStep),
		input.WithConeStep(c.Input.ConeStep),
		input.WithViewport(c.Window.Width, c.Window.Height),
	}, nil
}

// ProfileInterval parses the profiler reporting interval.
//
// Returns:
//   - time.Duration: the interval, always positive on success
//   - error: a parse error, or an error for a non-positive interval
func (c Config) ProfileInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Profile.Interval)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval %s must be positive", d)
	}
	return d, nil
}
