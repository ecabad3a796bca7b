package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/dleeaw/my3dObject/common"
)

// Window is the viewer's native window. It owns the platform event loop and forwards
// pointer, scroll, key and resize events to the registered callbacks. Callbacks run on the
// goroutine that called ProcessMessages, which is locked to the main OS thread.
type Window interface {
	// SetUpdateCallback sets the function called once per message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving the new framebuffer width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetMouseButtonCallback sets the function called when a mouse button is pressed or
	// released.
	//
	// Parameters:
	//   - callback: function receiving the button, the transition and the held modifiers
	SetMouseButtonCallback(callback func(button common.MouseButton, action common.ButtonAction, mods common.ModifierKey))

	// SetCursorMoveCallback sets the function called when the cursor moves. Positions are
	// in framebuffer pixels with the origin at the top-left corner, matching the sizes
	// passed to the resize callback.
	//
	// Parameters:
	//   - callback: function receiving the cursor position
	SetCursorMoveCallback(callback func(x, y float64))

	// SetScrollCallback sets the function called for vertical scroll wheel motion.
	//
	// Parameters:
	//   - callback: function receiving the scroll offset (positive = away from the user)
	SetScrollCallback(callback func(yOffset float64))

	// SetKeyDownCallback sets the function called when a key is pressed or repeats.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common key constants)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the function called when a key is released.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor for creating a WebGPU surface on
	// this window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform surface descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	IsRunning() bool

	// RequestClose asks the message loop to stop at its next iteration. Safe to call from
	// any goroutine.
	RequestClose()

	// Close destroys the window and releases platform resources. Must be called on the
	// goroutine that created the window.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// ProcessMessages runs the message loop until the window is closed.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	mu *sync.Mutex

	title string

	// Size limits in screen coordinates applied while the user resizes.
	minWidth, minHeight int
	maxWidth, maxHeight int

	// width and height are the framebuffer size in pixels.
	width  int
	height int

	closeRequested bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate      func()
	onResize      func(width, height int)
	onMouseButton func(button common.MouseButton, action common.ButtonAction, mods common.ModifierKey)
	onCursorMove  func(x, y float64)
	onScroll      func(yOffset float64)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows the window. Defaults are a 1280x720 window titled
// "Hello Shape3D" that can be resized between 320x240 and 3840x2160.
//
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		mu:        &sync.Mutex{},
		title:     "Hello Shape3D",
		minWidth:  320,
		minHeight: 240,
		maxWidth:  3840,
		maxHeight: 2160,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetMouseButtonCallback(callback func(button common.MouseButton, action common.ButtonAction, mods common.ModifierKey)) {
	w.onMouseButton = callback
}

func (w *engineWindow) SetCursorMoveCallback(callback func(x, y float64)) {
	w.onCursorMove = callback
}

func (w *engineWindow) SetScrollCallback(callback func(yOffset float64)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	w.mu.Lock()
	requested := w.closeRequested
	w.mu.Unlock()
	return !requested && platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closeRequested = true
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

func (w *engineWindow) setSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width = width
	w.height = height
}
