package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyH   = 72  // H key (ASCII), resets the camera to its home snapshot
	KeyEsc = 256 // Escape key (GLFW), closes the window
	KeyP   = 80  // P key (ASCII), toggles the profiler
	KeyV   = 86  // V key (ASCII), toggles vsync
	KeyQ   = 81  // Q key (ASCII), rolls the camera by a positive step
	KeyE   = 69  // E key (ASCII), rolls the camera by a negative step

	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)

	KeyMinus = 45 // - key (ASCII)
	KeyEqual = 61 // = key (ASCII)

	KeyComma        = 44 // , key (ASCII)
	KeyPeriod       = 46 // . key (ASCII)
	KeyLeftBracket  = 91 // [ key (ASCII)
	KeyRightBracket = 93 // ] key (ASCII)
)

// Arrow keys (GLFW)
const (
	KeyRight = 262
	KeyLeft  = 263
	KeyDown  = 264
	KeyUp    = 265
)

// MouseButton identifies a pointer button. Values match glfw.MouseButton.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// ButtonAction is the transition reported for a mouse button. Values match glfw.Action.
type ButtonAction int

const (
	ButtonRelease ButtonAction = 0
	ButtonPress   ButtonAction = 1
)

// ModifierKey is a bit set of held modifier keys. Values match glfw.ModifierKey.
type ModifierKey int

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)
