package input

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controller)

// WithBindings replaces the default button bindings.
//
// Parameters:
//   - bindings: the button to mode mappings
//
// Returns:
//   - ControllerOption: a function that sets the bindings
func WithBindings(bindings Bindings) ControllerOption {
	return func(c *controller) {
		c.bindings = bindings
	}
}

// WithSceneControl sets the scene driven by the shape and cone keys.
//
// Parameters:
//   - scene: the scene to control
//
// Returns:
//   - ControllerOption: a function that sets the scene
func WithSceneControl(scene SceneControl) ControllerOption {
	return func(c *controller) {
		c.scene = scene
	}
}

// WithScrollStep sets the zoom travel of one scroll notch.
//
// Parameters:
//   - step: normalized vertical travel per notch (default 0.25)
//
// Returns:
//   - ControllerOption: a function that sets the scroll step
func WithScrollStep(step float32) ControllerOption {
	return func(c *controller) {
		c.scrollStep = step
	}
}

// WithConeStep sets how much one arrow key press changes the cone radius or height.
//
// Parameters:
//   - step: change per key press (default 0.1)
//
// Returns:
//   - ControllerOption: a function that sets the cone step
func WithConeStep(step float32) ControllerOption {
	return func(c *controller) {
		c.coneStep = step
	}
}

// WithRollStep sets the roll angle of one Q or E key press.
//
// Parameters:
//   - radians: roll per key press (default pi/12)
//
// Returns:
//   - ControllerOption: a function that sets the roll step
func WithRollStep(radians float32) ControllerOption {
	return func(c *controller) {
		c.rollStep = radians
	}
}

// WithSpinStep sets how much one [ or ] key press changes the spin rate.
func WithSpinStep(revsPerSecond float32) ControllerOption {
	return func(c *controller) {
		c.spinStep = revsPerSecond
	}
}

// WithBrightnessStep sets how much one , or . key press changes the brightness.
func WithBrightnessStep(step float32) ControllerOption {
	return func(c *controller) {
		c.brightnessStep = step
	}
}

// WithViewport sets the initial viewport size used to normalize cursor positions.
//
// Parameters:
//   - width, height: viewport size in pixels
//
// Returns:
//   - ControllerOption: a function that sets the viewport
func WithViewport(width, height int) ControllerOption {
	return func(c *controller) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}
