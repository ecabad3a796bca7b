package mesh

import (
	"errors"
	"fmt"
	"strings"
)

// Shape identifies one of the built-in meshes.
type Shape int

const (
	ShapeTriangle Shape = iota
	ShapeSquare
	ShapeCircle
	ShapeCube
	ShapeSphere
	ShapeCone
)

// ErrUnknownShape is returned for shape names or values outside the built-in set.
var ErrUnknownShape = errors.New("mesh: unknown shape")

var shapeNames = [...]string{
	ShapeTriangle: "triangle",
	ShapeSquare:   "square",
	ShapeCircle:   "circle",
	ShapeCube:     "cube",
	ShapeSphere:   "sphere",
	ShapeCone:     "cone",
}

// Shapes returns every built-in shape in selection order.
func Shapes() []Shape {
	return []Shape{ShapeTriangle, ShapeSquare, ShapeCircle, ShapeCube, ShapeSphere, ShapeCone}
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Valid reports whether s is a built-in shape.
func (s Shape) Valid() bool {
	return s >= ShapeTriangle && s <= ShapeCone
}

// Is3D reports whether the shape is a lit solid viewed through the trackball camera.
// Flat shapes are drawn unlit in normalized device space.
func (s Shape) Is3D() bool {
	return s == ShapeCube || s == ShapeSphere || s == ShapeCone
}

// ParseShape converts a case-insensitive shape name into a Shape.
// "earth" is accepted as an alias of "sphere".
//
// Parameters:
//   - name: the shape name
//
// Returns:
//   - Shape: the parsed shape
//   - error: ErrUnknownShape (wrapped) if the name is not recognized
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "earth" {
		return ShapeSphere, nil
	}
	for i, s := range shapeNames {
		if s == n {
			return Shape(i), nil
		}
	}
	return ShapeTriangle, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
