package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraOption is a functional option for configuring a Camera.
type CameraOption func(*Camera)

// WithEye sets the camera's viewpoint position.
//
// Parameters:
//   - eye: world-space eye position
//
// Returns:
//   - CameraOption: a function that sets the camera's eye
func WithEye(eye mgl32.Vec3) CameraOption {
	return func(c *Camera) {
		c.Eye = eye
	}
}

// WithAt sets the camera's look-at target.
//
// Parameters:
//   - at: world-space target position
//
// Returns:
//   - CameraOption: a function that sets the camera's target
func WithAt(at mgl32.Vec3) CameraOption {
	return func(c *Camera) {
		c.At = at
	}
}

// WithUp sets the camera's approximate up vector.
//
// Parameters:
//   - up: up direction, must not be parallel to the view direction
//
// Returns:
//   - CameraOption: a function that sets the camera's up vector
func WithUp(up mgl32.Vec3) CameraOption {
	return func(c *Camera) {
		c.Up = up
	}
}

// WithFovY sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fovY: field of view in radians
//
// Returns:
//   - CameraOption: a function that sets the camera's field of view
func WithFovY(fovY float32) CameraOption {
	return func(c *Camera) {
		c.FovY = fovY
	}
}

// WithAspectRatio sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraOption: a function that sets the camera's aspect ratio
func WithAspectRatio(aspect float32) CameraOption {
	return func(c *Camera) {
		c.AspectRatio = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraOption: a function that sets the near plane
func WithNear(near float32) CameraOption {
	return func(c *Camera) {
		c.Near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraOption: a function that sets the far plane
func WithFar(far float32) CameraOption {
	return func(c *Camera) {
		c.Far = far
	}
}

// WithZoomFactor sets the initial zoom factor.
//
// Parameters:
//   - zoom: zoom factor, 1 for no zoom
//
// Returns:
//   - CameraOption: a function that sets the zoom factor
func WithZoomFactor(zoom float32) CameraOption {
	return func(c *Camera) {
		c.ZoomFactor = zoom
	}
}
