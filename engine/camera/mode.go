package camera

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the interaction a Trackball applies to pointer motion.
type Mode int

const (
	// ModeNone means no interaction is active; Update is a no-op.
	ModeNone Mode = iota
	// ModeRotate orbits the eye around the target.
	ModeRotate
	// ModeRoll rotates the up vector around the view direction.
	ModeRoll
	// ModePan translates eye and target together in the view plane.
	ModePan
	// ModeZoom scales the zoom factor exponentially with vertical motion.
	ModeZoom
)

// ErrUnknownMode is returned by ParseMode for names that match no Mode.
var ErrUnknownMode = errors.New("camera: unknown trackball mode")

var modeNames = [...]string{
	ModeNone:   "none",
	ModeRotate: "rotate",
	ModeRoll:   "roll",
	ModePan:    "pan",
	ModeZoom:   "zoom",
}

// Modes returns every interactive mode, excluding ModeNone.
//
// Returns:
//   - []Mode: rotate, roll, pan and zoom in declaration order
func Modes() []Mode {
	return []Mode{ModeRotate, ModeRoll, ModePan, ModeZoom}
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode converts a case-insensitive mode name into a Mode.
// "move" is accepted as an alias of "pan".
//
// Parameters:
//   - name: the mode name
//
// Returns:
//   - Mode: the parsed mode
//   - error: ErrUnknownMode (wrapped) if the name is not recognized
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "move" {
		return ModePan, nil
	}
	for i, s := range modeNames {
		if s == n {
			return Mode(i), nil
		}
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
