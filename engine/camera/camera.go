package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/dleeaw/my3dObject/common"
	"github.com/go-gl/mathgl/mgl32"
)

// parallelTolerance is the largest |sin| between up and the view direction that
// Validate still reports as parallel.
const parallelTolerance = 1e-6

var (
	// ErrInvalidClipRange is returned by Validate when near <= 0 or near >= far.
	ErrInvalidClipRange = errors.New("camera: clip range requires 0 < near < far")
	// ErrInvalidAspectRatio is returned by Validate when the aspect ratio is not positive.
	ErrInvalidAspectRatio = errors.New("camera: aspect ratio must be positive")
	// ErrInvalidFovY is returned by Validate when the field of view is outside (0, π).
	ErrInvalidFovY = errors.New("camera: vertical field of view must be in (0, π)")
	// ErrInvalidZoomFactor is returned by Validate when the zoom factor is not positive.
	ErrInvalidZoomFactor = errors.New("camera: zoom factor must be positive")
	// ErrDegenerateView is returned by Validate when eye and at coincide or up is parallel to the view direction.
	ErrDegenerateView = errors.New("camera: degenerate view basis")
)

// Camera holds the viewing parameters of a perspective camera and derives its view and
// projection matrices on demand. Camera is a value type: assigning or passing it copies
// every field, so snapshots never alias each other.
//
// Up does not have to be unit length or orthogonal to the view direction; the basis is
// re-orthogonalized on every ViewMatrix call. Up must never be parallel to Dir.
type Camera struct {
	// Eye is the viewpoint position in world space.
	Eye mgl32.Vec3
	// At is the look-at target in world space.
	At mgl32.Vec3
	// Up is the approximate up direction.
	Up mgl32.Vec3

	// FovY is the vertical field of view in radians.
	FovY float32
	// AspectRatio is the viewport width divided by its height.
	AspectRatio float32
	// Near is the near clipping plane distance.
	Near float32
	// Far is the far clipping plane distance.
	Far float32

	// ZoomFactor scales the effective eye position toward At without moving Eye.
	// 1 means no zoom, values below 1 move closer.
	ZoomFactor float32
}

// NewCamera creates a Camera with the default home view (eye at (0, 0, 5) looking at the
// origin with +Y up, 120° vertical field of view, clip range [0.001, 10]) and then
// applies each option in order.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the configured camera value
func NewCamera(options ...CameraOption) Camera {
	c := Camera{
		Eye:         mgl32.Vec3{0, 0, 5},
		At:          mgl32.Vec3{0, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
		FovY:        2.0 * math32.Pi / 3.0,
		AspectRatio: 1.0,
		Near:        0.001,
		Far:         10.0,
		ZoomFactor:  1.0,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// Dir returns the unit view direction from Eye toward At.
//
// Returns:
//   - mgl32.Vec3: normalize(At - Eye)
func (c Camera) Dir() mgl32.Vec3 {
	return c.At.Sub(c.Eye).Normalize()
}

// Distance returns the distance between Eye and At, ignoring ZoomFactor.
//
// Returns:
//   - float32: |Eye - At|
func (c Camera) Distance() float32 {
	return c.Eye.Sub(c.At).Len()
}

// EffectiveEye returns the eye position actually used to build the view matrix:
// Eye pulled toward At by ZoomFactor.
//
// Returns:
//   - mgl32.Vec3: lerp(At, Eye, ZoomFactor)
func (c Camera) EffectiveEye() mgl32.Vec3 {
	return common.Lerp3(c.At, c.Eye, c.ZoomFactor)
}

// movingStep returns the world-space distance a unit of normalized pointer travel pans
// along the horizontal and vertical view axes. It grows with the distance to the target
// and the field of view so on-screen motion stays consistent.
func (c Camera) movingStep() mgl32.Vec2 {
	t := math32.Tan(math32.Min(c.FovY, c.FovY*c.AspectRatio) * 0.5)
	scale := c.Distance() * t
	if c.AspectRatio > 1 {
		return mgl32.Vec2{c.AspectRatio, 1}.Mul(scale)
	}
	return mgl32.Vec2{1, 1 / c.AspectRatio}.Mul(scale)
}

// ViewMatrix builds the right-handed look-at matrix from the effective eye.
// The upper 3x3 holds the right, up and backward basis vectors as rows, and the
// translation column is -(s·e, u·e, -f·e) for the effective eye e.
//
// Returns:
//   - mgl32.Mat4: the column-major view matrix
func (c Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.EffectiveEye(), c.At, c.Up)
}

// ProjectionMatrix builds the right-handed perspective matrix with [0, 1] clip depth.
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func (c Camera) ProjectionMatrix() mgl32.Mat4 {
	return common.Perspective(c.FovY, c.AspectRatio, c.Near, c.Far)
}

// ViewProjectionMatrix returns ProjectionMatrix() * ViewMatrix().
//
// Returns:
//   - mgl32.Mat4: the combined column-major matrix
func (c Camera) ViewProjectionMatrix() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// Frustum returns the world-space view frustum of the camera.
//
// Returns:
//   - common.Frustum: the six normalized frustum planes
func (c Camera) Frustum() common.Frustum {
	return common.ExtractFrustumFromMatrix(c.ViewProjectionMatrix())
}

// Validate reports whether the camera satisfies the preconditions of its matrix
// functions. ViewMatrix and ProjectionMatrix never check these themselves.
//
// Returns:
//   - error: a wrapped Err* sentinel describing the first violated precondition, or nil
func (c Camera) Validate() error {
	if !(c.Near > 0 && c.Near < c.Far) {
		return fmt.Errorf("%w: near=%g far=%g", ErrInvalidClipRange, c.Near, c.Far)
	}
	if !(c.AspectRatio > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidAspectRatio, c.AspectRatio)
	}
	if !(c.FovY > 0 && c.FovY < math32.Pi) {
		return fmt.Errorf("%w: %g", ErrInvalidFovY, c.FovY)
	}
	if !(c.ZoomFactor > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidZoomFactor, c.ZoomFactor)
	}
	if c.Distance() == 0 {
		return fmt.Errorf("%w: eye and at coincide at %v", ErrDegenerateView, c.Eye)
	}
	if common.DirectionsParallel(c.At.Sub(c.Eye), c.Up, parallelTolerance) {
		return fmt.Errorf("%w: up %v is parallel to the view direction", ErrDegenerateView, c.Up)
	}
	return nil
}
