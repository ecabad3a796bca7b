package input

import (
	"math/bits"

	"github.com/dleeaw/my3dObject/common"
	"github.com/dleeaw/my3dObject/engine/camera"
)

// Binding maps a mouse button, optionally combined with held modifiers, to a trackball
// mode.
type Binding struct {
	Button common.MouseButton
	Mods   common.ModifierKey
	Mode   camera.Mode
}

// Bindings is an ordered set of button bindings.
type Bindings []Binding

// DefaultBindings returns left drag to rotate, shift+left drag to roll, right drag to
// pan and middle drag to zoom.
func DefaultBindings() Bindings {
	return Bindings{
		{Button: common.MouseButtonLeft, Mode: camera.ModeRotate},
		{Button: common.MouseButtonLeft, Mods: common.ModShift, Mode: camera.ModeRoll},
		{Button: common.MouseButtonRight, Mode: camera.ModePan},
		{Button: common.MouseButtonMiddle, Mode: camera.ModeZoom},
	}
}

// Resolve finds the mode for a button press. Among the bindings of that button whose
// modifiers are all held, the one requiring the most modifiers wins; ties go to the
// earlier binding.
//
// Parameters:
//   - button: the pressed button
//   - mods: the modifiers held during the press
//
// Returns:
//   - camera.Mode: the bound mode
//   - bool: false if no binding matches
func (b Bindings) Resolve(button common.MouseButton, mods common.ModifierKey) (camera.Mode, bool) {
	best, bestCount := camera.ModeNone, -1
	for _, binding := range b {
		if binding.Button != button || mods&binding.Mods != binding.Mods {
			continue
		}
		if n := bits.OnesCount(uint(binding.Mods)); n > bestCount {
			best, bestCount = binding.Mode, n
		}
	}
	return best, bestCount >= 0 && best != camera.ModeNone
}
