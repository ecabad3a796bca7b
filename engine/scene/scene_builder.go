package scene

import (
	"github.com/dleeaw/my3dObject/engine/light"
	"github.com/dleeaw/my3dObject/engine/mesh"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithLight sets the shading light. Defaults to light.NewLight().
//
// Parameters:
//   - l: the light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.light = l
	}
}

// WithShape sets the initially selected shape. Defaults to the cube.
//
// Parameters:
//   - shape: the shape to draw first
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShape(shape mesh.Shape) SceneBuilderOption {
	return func(s *scene) {
		s.shape = shape
	}
}

// WithConeParameters sets the parameters of the initial cone mesh.
//
// Parameters:
//   - p: radius, height and segment count
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithConeParameters(p mesh.ConeParameters) SceneBuilderOption {
	return func(s *scene) {
		s.cone = p
	}
}

// WithSpinRate sets how fast the flat shapes spin about +Z.
//
// Parameters:
//   - revsPerSecond: revolutions per second in [0, MaxSpinRate] (default 0.10)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSpinRate(revsPerSecond float32) SceneBuilderOption {
	return func(s *scene) {
		s.spinRate = clampSpinRate(revsPerSecond)
	}
}

// WithBrightness sets the initial color multiplier of the flat shapes, clamped to [0, 1].
// Defaults to 1.
func WithBrightness(brightness float32) SceneBuilderOption {
	return func(s *scene) {
		s.brightness = clampBrightness(brightness)
	}
}

// WithClearColor sets the background color.
//
// Parameters:
//   - rgba: red, green, blue and alpha in [0, 1]
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClearColor(rgba [4]float64) SceneBuilderOption {
	return func(s *scene) {
		s.clearColor = rgba
	}
}

// WithBuildWorkers sets the number of worker goroutines used to generate the mesh
// library. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBuildWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.buildWorkers = n
	}
}

// WithViewport sets the initial drawable size used by the flat-shape projection.
//
// Parameters:
//   - width: drawable width in pixels
//   - height: drawable height in pixels
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithViewport(width, height int) SceneBuilderOption {
	return func(s *scene) {
		s.viewportWidth, s.viewportHeight = width, height
	}
}
