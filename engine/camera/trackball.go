package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/dleeaw/my3dObject/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Trackball converts 2D pointer motion into camera rotations, rolls, pans and zooms.
//
// It keeps three Camera snapshots: home (the reset target), previous (the camera when the
// active interaction began) and current (the live camera handed to the renderer). Every
// Update recomputes current from previous and the total pointer travel since
// BeginInteraction, so repeated updates never accumulate drift and an Update with the
// same pointer is idempotent.
//
// All methods are safe for concurrent use; at most one interaction is active at a time
// and concurrent BeginInteraction calls are last-write-wins.
type Trackball interface {
	// BeginInteraction starts a new interaction: previous becomes a copy of current, the
	// pointer is recorded as the reference position and mode becomes active. Calling it
	// while an interaction is active re-bases that interaction.
	//
	// Parameters:
	//   - pointer: normalized pointer position where the gesture began
	//   - mode: the interaction to perform
	BeginInteraction(pointer mgl32.Vec2, mode Mode)

	// Update applies the active interaction for the pointer's travel from the reference
	// position. It is a no-op when no interaction is active or when the squared travel
	// is within the deadzone.
	//
	// Parameters:
	//   - pointer: current normalized pointer position
	Update(pointer mgl32.Vec2)

	// ZoomStep applies one discrete zoom of the given vertical travel to current, outside
	// any interaction and without the deadzone, so small wheel deltas still zoom. Previous
	// becomes the camera before the step. It is ignored while an interaction is active.
	//
	// Parameters:
	//   - travel: signed vertical travel; positive values zoom in
	ZoomStep(travel float32)

	// EndInteraction deactivates the current interaction. The final current camera becomes
	// the baseline of the next BeginInteraction.
	EndInteraction()

	// ResetToHome sets both previous and current to the home snapshot, regardless of mode.
	ResetToHome()

	// SetAspectRatio applies the aspect ratio to current, previous and home alike so a
	// resize during a gesture does not distort it.
	//
	// Parameters:
	//   - aspect: viewport width divided by height
	SetAspectRatio(aspect float32)

	// SetViewport sets the aspect ratio from a viewport size in pixels. Sizes with a
	// non-positive dimension (minimized windows) are ignored.
	//
	// Parameters:
	//   - width: viewport width
	//   - height: viewport height
	SetViewport(width, height int)

	// Mode returns the active interaction mode, ModeNone when idle.
	Mode() Mode

	// ReferencePointer returns the pointer position recorded by the last BeginInteraction.
	ReferencePointer() mgl32.Vec2

	// Current returns a copy of the live camera.
	Current() Camera

	// Previous returns a copy of the camera at the start of the active interaction.
	Previous() Camera

	// Home returns a copy of the reset target.
	Home() Camera

	// Eye returns the current camera's eye position.
	Eye() mgl32.Vec3

	// At returns the current camera's target.
	At() mgl32.Vec3

	// Up returns the current camera's up vector.
	Up() mgl32.Vec3

	// Dir returns the current camera's unit view direction.
	Dir() mgl32.Vec3

	// Distance returns the current camera's eye-to-target distance.
	Distance() float32

	// ZoomFactor returns the current camera's zoom factor.
	ZoomFactor() float32

	// ViewMatrix returns the current camera's view matrix.
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current camera's projection matrix.
	ProjectionMatrix() mgl32.Mat4
}

// motionParams holds the tunables of the per-mode transforms.
type motionParams struct {
	// rotateScale is the orbit angle in radians per unit of pointer travel.
	rotateScale float32
	// zoomBase is raised to the negated vertical travel to scale the zoom factor.
	zoomBase float32
}

type trackballImpl struct {
	mu *sync.Mutex

	current  Camera
	previous Camera
	home     Camera

	mode             Mode
	referencePointer mgl32.Vec2

	// deadzone is the squared pointer travel at or below which Update is ignored.
	deadzone float32
	params   motionParams
}

var _ Trackball = &trackballImpl{}

// NewTrackball creates a Trackball whose home, previous and current snapshots all start
// as copies of home.
//
// Parameters:
//   - home: the initial and reset camera
//   - options: functional options to configure the trackball
//
// Returns:
//   - Trackball: the newly created trackball
func NewTrackball(home Camera, options ...TrackballOption) Trackball {
	t := &trackballImpl{
		mu:       &sync.Mutex{},
		current:  home,
		previous: home,
		home:     home,
		mode:     ModeNone,
		deadzone: 0.01,
		params: motionParams{
			rotateScale: math32.Pi * 0.5,
			zoomBase:    1.2,
		},
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *trackballImpl) BeginInteraction(pointer mgl32.Vec2, mode Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.previous = t.current
	t.referencePointer = pointer
	t.mode = mode
}

func (t *trackballImpl) Update(pointer mgl32.Vec2) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode == ModeNone {
		return
	}
	d := pointer.Sub(t.referencePointer)
	if d.Dot(d) <= t.deadzone {
		return
	}
	if next, ok := transform(t.params, t.mode, d, t.referencePointer, t.previous); ok {
		t.current = next
	}
}

func (t *trackballImpl) ZoomStep(travel float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode != ModeNone || travel == 0 {
		return
	}
	t.previous = t.current
	t.current = zoom(t.params, mgl32.Vec2{0, travel}, t.previous)
}

func (t *trackballImpl) EndInteraction() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mode = ModeNone
}

func (t *trackballImpl) ResetToHome() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.previous = t.home
	t.current = t.home
}

func (t *trackballImpl) SetAspectRatio(aspect float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current.AspectRatio = aspect
	t.previous.AspectRatio = aspect
	t.home.AspectRatio = aspect
}

func (t *trackballImpl) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	t.SetAspectRatio(float32(width) / float32(height))
}

func (t *trackballImpl) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

func (t *trackballImpl) ReferencePointer() mgl32.Vec2 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.referencePointer
}

func (t *trackballImpl) Current() Camera {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *trackballImpl) Previous() Camera {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.previous
}

func (t *trackballImpl) Home() Camera {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.home
}

func (t *trackballImpl) Eye() mgl32.Vec3 {
	return t.Current().Eye
}

func (t *trackballImpl) At() mgl32.Vec3 {
	return t.Current().At
}

func (t *trackballImpl) Up() mgl32.Vec3 {
	return t.Current().Up
}

func (t *trackballImpl) Dir() mgl32.Vec3 {
	return t.Current().Dir()
}

func (t *trackballImpl) Distance() float32 {
	return t.Current().Distance()
}

func (t *trackballImpl) ZoomFactor() float32 {
	return t.Current().ZoomFactor
}

func (t *trackballImpl) ViewMatrix() mgl32.Mat4 {
	return t.Current().ViewMatrix()
}

func (t *trackballImpl) ProjectionMatrix() mgl32.Mat4 {
	return t.Current().ProjectionMatrix()
}

// transform maps an interaction mode, the pointer travel d since the reference
// position, and the camera at the start of the interaction to the new live camera.
// It reads only its arguments. The boolean is false when the mode produces no camera
// (ModeNone, unknown modes, or a roll with a zero-length pointer ray).
func transform(p motionParams, mode Mode, d, reference mgl32.Vec2, prev Camera) (Camera, bool) {
	switch mode {
	case ModeRotate:
		return rotate(p, d, prev), true
	case ModeRoll:
		return roll(d, reference, prev)
	case ModePan:
		return pan(d, prev), true
	case ModeZoom:
		return zoom(p, d, prev), true
	default:
		return prev, false
	}
}

// rotate orbits the eye and up vector around the target. The screen-space axis
// (-d.y, d.x, 0) is carried into world space by the view basis: the rows of the view
// matrix's upper 3x3 are right, up and backward, so multiplying the axis as a row vector
// from the left (the transpose) applies the inverse rotation.
func rotate(p motionParams, d mgl32.Vec2, prev Camera) Camera {
	basis := prev.ViewMatrix().Mat3()
	screenAxis := mgl32.Vec3{-d[1], d[0], 0}.Normalize()
	axis := basis.Transpose().Mul3x1(screenAxis).Normalize()
	angle := -d.Len() * p.rotateScale

	r := mgl32.HomogRotate3D(angle, axis)
	offset := r.Mul4x1(prev.Eye.Sub(prev.At).Vec4(0)).Vec3()

	next := prev
	next.Eye = offset.Add(prev.At)
	next.Up = r.Mul4x1(prev.Up.Vec4(0)).Vec3()
	return next
}

// roll turns the up vector around the view direction by the signed angle between the
// reference ray and the current ray, both measured from the pointer-space origin.
func roll(d, reference mgl32.Vec2, prev Camera) (Camera, bool) {
	p0 := reference
	p1 := reference.Add(d)
	if p0.Len() == 0 || p1.Len() == 0 {
		return prev, false
	}
	angle := common.OrientedAngle(p0, p1)
	r := mgl32.HomogRotate3D(angle, prev.Dir())

	next := prev
	next.Up = r.Mul4x1(prev.Up.Vec4(0)).Vec3()
	return next, true
}

// pan translates eye and target together along the view plane. The travel is scaled by
// the camera's moving step so on-screen motion tracks the pointer at any distance.
func pan(d mgl32.Vec2, prev Camera) Camera {
	step := prev.movingStep()
	moved := mgl32.Vec2{d[0] * step[0], d[1] * step[1]}

	dir := prev.Dir()
	hori := dir.Cross(prev.Up).Normalize()
	vert := hori.Cross(dir).Normalize()
	offset := hori.Mul(moved[0]).Add(vert.Mul(moved[1]))

	next := prev
	next.Eye = prev.Eye.Sub(offset)
	next.At = prev.At.Sub(offset)
	return next
}

// zoom scales the zoom factor exponentially; dragging up (positive d.y) zooms in.
func zoom(p motionParams, d mgl32.Vec2, prev Camera) Camera {
	next := prev
	next.ZoomFactor = prev.ZoomFactor * math32.Pow(p.zoomBase, -d[1])
	return next
}
