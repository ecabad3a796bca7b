package input

import (
	"fmt"

	"github.com/dleeaw/my3dObject/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Phase is the stage of a pointer gesture.
type Phase int

const (
	// PhaseBegan starts a gesture; it maps to Trackball.BeginInteraction.
	PhaseBegan Phase = iota
	// PhaseChanged reports gesture motion; it maps to Trackball.Update.
	PhaseChanged
	// PhaseEnded finishes a gesture; it maps to Trackball.EndInteraction.
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// NormalizePointer converts a window position in pixels (origin top-left, y down) into
// trackball pointer space: origin at the viewport centre, y up, and one unit equal to
// half of the shorter viewport side, so the shorter axis spans [-1, 1].
//
// Parameters:
//   - x, y: cursor position in pixels
//   - width, height: viewport size in pixels
//
// Returns:
//   - mgl32.Vec2: the normalized pointer, zero for an empty viewport
func NormalizePointer(x, y float64, width, height int) mgl32.Vec2 {
	side := float64(min(width, height))
	if side <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		float32((2*x - float64(width)) / side),
		float32((float64(height) - 2*y) / side),
	}
}

// Apply forwards one gesture event to the trackball. The mode is only read for
// PhaseBegan.
//
// Parameters:
//   - tb: the trackball to drive
//   - phase: the gesture stage
//   - pointer: the normalized pointer position
//   - mode: the interaction to start
func Apply(tb camera.Trackball, phase Phase, pointer mgl32.Vec2, mode camera.Mode) {
	switch phase {
	case PhaseBegan:
		tb.BeginInteraction(pointer, mode)
	case PhaseChanged:
		tb.Update(pointer)
	case PhaseEnded:
		tb.EndInteraction()
	}
}
