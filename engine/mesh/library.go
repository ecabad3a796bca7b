package mesh

import "fmt"

// Default sphere tessellation.
const (
	DefaultSphereRadius = 2
	DefaultSphereStacks = 40
	DefaultSphereSlices = 40
)

// Build generates the mesh of a built-in shape. The cone parameters are only read for
// ShapeCone.
//
// Parameters:
//   - shape: the shape to generate
//   - cone: parameters used when shape is ShapeCone
//
// Returns:
//   - *Mesh: the generated mesh
//   - error: ErrUnknownShape or ErrInvalidCone (wrapped) on bad input
func Build(shape Shape, cone ConeParameters) (*Mesh, error) {
	switch shape {
	case ShapeTriangle:
		return Triangle(), nil
	case ShapeSquare:
		return Square(), nil
	case ShapeCircle:
		return Circle(DefaultCircleSegments), nil
	case ShapeCube:
		return Cube(), nil
	case ShapeSphere:
		return Sphere(DefaultSphereRadius, DefaultSphereStacks, DefaultSphereSlices), nil
	case ShapeCone:
		return cone.Mesh()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(shape))
	}
}
