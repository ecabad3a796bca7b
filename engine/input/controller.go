package input

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/dleeaw/my3dObject/common"
	"github.com/dleeaw/my3dObject/engine/camera"
	"github.com/dleeaw/my3dObject/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneControl is the part of the scene the keyboard drives.
type SceneControl interface {
	SelectShape(shape mesh.Shape) error
	ConeParameters() mesh.ConeParameters
	SetConeParameters(p mesh.ConeParameters) error
	SpinRate() float32
	SetSpinRate(revsPerSecond float32)
	Brightness() float32
	SetBrightness(brightness float32)
}

// Controller turns window events into trackball interactions and scene commands.
//
// A mouse drag runs from the press of a bound button to its release; presses of other
// buttons during a drag are ignored. Scroll and rotate gestures are only honoured while no
// drag is active. All methods are safe for concurrent use.
type Controller interface {
	// MouseButton handles a button transition at the last known cursor position.
	//
	// Parameters:
	//   - button: the button
	//   - action: press or release
	//   - mods: modifiers held during the transition
	MouseButton(button common.MouseButton, action common.ButtonAction, mods common.ModifierKey)

	// CursorMoved records the cursor position and updates an active drag.
	//
	// Parameters:
	//   - x, y: cursor position in pixels, origin top-left
	CursorMoved(x, y float64)

	// Scroll zooms by one discrete step of yOffset times the scroll step per event;
	// positive yOffset zooms in. Fractional offsets from smooth-scrolling devices zoom
	// proportionally.
	//
	// Parameters:
	//   - yOffset: vertical scroll amount in notches
	Scroll(yOffset float64)

	// RotateGesture maps a two-finger rotation to a roll. The gesture starts with the
	// reference pointer (1, 0) and each update places the pointer at (cos a, sin a).
	// Hosts with touch input call it directly; the Q and E keys drive it in fixed steps.
	//
	// Parameters:
	//   - angle: accumulated rotation in radians, counter-clockwise positive
	//   - phase: the gesture stage
	RotateGesture(angle float32, phase Phase)

	// KeyDown handles a key press: H resets the camera, Q and E roll it, 1 to 6 select a
	// shape, the arrow keys resize the cone, -/= change its segment count, [ and ] change
	// the spin rate of the flat shapes and , and . change their brightness.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//
	// Returns:
	//   - bool: true if the key was consumed
	KeyDown(keyCode uint32) bool

	// Resize records the viewport size used to normalize cursor positions.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	Resize(width, height int)

	// Dragging reports whether a mouse drag is active.
	//
	// Returns:
	//   - bool: true between the press and release of a bound button
	Dragging() bool

	// Pointer returns the last cursor position in normalized pointer space.
	//
	// Returns:
	//   - mgl32.Vec2: the normalized pointer
	Pointer() mgl32.Vec2
}

type controller struct {
	mu        *sync.Mutex
	trackball camera.Trackball
	scene     SceneControl
	bindings  Bindings

	// scrollStep is the vertical pointer travel of one scroll notch.
	scrollStep float32
	// coneStep is the radius and height change of one arrow key press.
	coneStep float32
	// rollStep is the roll angle in radians of one Q or E press.
	rollStep float32
	// spinStep is the spin rate change in revolutions per second of one [ or ] press.
	spinStep float32
	// brightnessStep is the brightness change of one , or . press.
	brightnessStep float32

	width, height int
	cursorX       float64
	cursorY       float64
	dragging      bool
	dragButton    common.MouseButton
	gestureActive bool
}

var _ Controller = &controller{}

// NewController creates a Controller driving tb with the default bindings.
//
// Parameters:
//   - tb: the trackball to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(tb camera.Trackball, options ...ControllerOption) Controller {
	c := &controller{
		mu:             &sync.Mutex{},
		trackball:      tb,
		bindings:       DefaultBindings(),
		scrollStep:     0.25,
		coneStep:       0.1,
		rollStep:       math32.Pi / 12,
		spinStep:       0.1,
		brightnessStep: 0.1,
		width:          1,
		height:         1,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controller) pointerLocked() mgl32.Vec2 {
	return NormalizePointer(c.cursorX, c.cursorY, c.width, c.height)
}

func (c *controller) MouseButton(button common.MouseButton, action common.ButtonAction, mods common.ModifierKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch action {
	case common.ButtonPress:
		if c.dragging || c.gestureActive {
			return
		}
		mode, ok := c.bindings.Resolve(button, mods)
		if !ok {
			return
		}
		c.dragging, c.dragButton = true, button
		Apply(c.trackball, PhaseBegan, c.pointerLocked(), mode)
	case common.ButtonRelease:
		if !c.dragging || button != c.dragButton {
			return
		}
		c.dragging = false
		Apply(c.trackball, PhaseEnded, c.pointerLocked(), camera.ModeNone)
	}
}

func (c *controller) CursorMoved(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursorX, c.cursorY = x, y
	if c.dragging {
		Apply(c.trackball, PhaseChanged, c.pointerLocked(), camera.ModeNone)
	}
}

func (c *controller) Scroll(yOffset float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dragging || c.gestureActive || yOffset == 0 {
		return
	}
	c.trackball.ZoomStep(float32(yOffset) * c.scrollStep)
}

func (c *controller) RotateGesture(angle float32, phase Phase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotateGestureLocked(angle, phase)
}

func (c *controller) rotateGestureLocked(angle float32, phase Phase) {
	if c.dragging {
		return
	}
	switch phase {
	case PhaseBegan:
		c.gestureActive = true
		Apply(c.trackball, PhaseBegan, mgl32.Vec2{1, 0}, camera.ModeRoll)
	case PhaseChanged:
		if !c.gestureActive {
			return
		}
		Apply(c.trackball, PhaseChanged, mgl32.Vec2{math32.Cos(angle), math32.Sin(angle)}, camera.ModeNone)
	case PhaseEnded:
		if !c.gestureActive {
			return
		}
		c.gestureActive = false
		Apply(c.trackball, PhaseEnded, mgl32.Vec2{}, camera.ModeNone)
	}
}

func (c *controller) KeyDown(keyCode uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case keyCode == common.KeyH:
		c.trackball.ResetToHome()
		return true
	case keyCode == common.KeyQ || keyCode == common.KeyE:
		if c.dragging || c.gestureActive {
			return false
		}
		angle := c.rollStep
		if keyCode == common.KeyE {
			angle = -angle
		}
		c.rotateGestureLocked(0, PhaseBegan)
		c.rotateGestureLocked(angle, PhaseChanged)
		c.rotateGestureLocked(angle, PhaseEnded)
		return true
	case keyCode >= common.Key1 && keyCode <= common.Key6:
		if c.scene == nil {
			return false
		}
		return c.scene.SelectShape(mesh.Shapes()[keyCode-common.Key1]) == nil
	}

	if c.scene == nil {
		return false
	}
	switch keyCode {
	case common.KeyRightBracket:
		c.scene.SetSpinRate(c.scene.SpinRate() + c.spinStep)
		return true
	case common.KeyLeftBracket:
		c.scene.SetSpinRate(c.scene.SpinRate() - c.spinStep)
		return true
	case common.KeyPeriod:
		c.scene.SetBrightness(c.scene.Brightness() + c.brightnessStep)
		return true
	case common.KeyComma:
		c.scene.SetBrightness(c.scene.Brightness() - c.brightnessStep)
		return true
	}

	p := c.scene.ConeParameters()
	switch keyCode {
	case common.KeyUp:
		p.Height += c.coneStep
	case common.KeyDown:
		p.Height -= c.coneStep
	case common.KeyRight:
		p.Radius += c.coneStep
	case common.KeyLeft:
		p.Radius -= c.coneStep
	case common.KeyEqual:
		p.Segments++
	case common.KeyMinus:
		p.Segments--
	default:
		return false
	}
	p.Radius = common.Clamp(p.Radius, mesh.MinConeRadius, mesh.MaxConeRadius)
	p.Height = common.Clamp(p.Height, mesh.MinConeHeight, mesh.MaxConeHeight)
	p.Segments = common.Clamp(p.Segments, mesh.MinConeSegments, mesh.MaxConeSegments)
	return c.scene.SetConeParameters(p) == nil
}

func (c *controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = width, height
}

func (c *controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}

func (c *controller) Pointer() mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pointerLocked()
}
