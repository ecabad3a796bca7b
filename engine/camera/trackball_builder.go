package camera

// TrackballOption is a functional option for configuring a Trackball.
type TrackballOption func(*trackballImpl)

// WithDeadzone sets the squared pointer travel at or below which Update is ignored.
//
// Parameters:
//   - squared: squared travel threshold in normalized pointer units (default 0.01)
//
// Returns:
//   - TrackballOption: functional option to set the deadzone
func WithDeadzone(squared float32) TrackballOption {
	return func(t *trackballImpl) {
		t.deadzone = squared
	}
}

// WithRotateScale sets the orbit angle per unit of pointer travel.
//
// Parameters:
//   - radians: rotation in radians per normalized unit (default π/2)
//
// Returns:
//   - TrackballOption: functional option to set the rotate scale
func WithRotateScale(radians float32) TrackballOption {
	return func(t *trackballImpl) {
		t.params.rotateScale = radians
	}
}

// WithZoomBase sets the base of the exponential zoom response.
//
// Parameters:
//   - base: zoom multiplier per unit of downward travel (default 1.2)
//
// Returns:
//   - TrackballOption: functional option to set the zoom base
func WithZoomBase(base float32) TrackballOption {
	return func(t *trackballImpl) {
		t.params.zoomBase = base
	}
}
