package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cone parameter ranges accepted by ConeParameters.Validate.
const (
	MinConeRadius   float32 = 0.1
	MaxConeRadius   float32 = 5
	MinConeHeight   float32 = 0.1
	MaxConeHeight   float32 = 10
	MinConeSegments         = 3
	MaxConeSegments         = 50
)

// ErrInvalidCone is returned when a cone parameter is outside its accepted range.
var ErrInvalidCone = errors.New("mesh: invalid cone parameters")

// ConeParameters describe a right circular cone standing on the XZ plane with its apex on +Y.
type ConeParameters struct {
	Radius   float32
	Height   float32
	Segments int
}

// DefaultConeParameters returns radius 1, height 2 and 40 segments.
func DefaultConeParameters() ConeParameters {
	return ConeParameters{Radius: 1, Height: 2, Segments: 40}
}

// Validate checks every parameter against its accepted range.
//
// Returns:
//   - error: a wrapped ErrInvalidCone naming the first offending parameter, or nil
func (p ConeParameters) Validate() error {
	if p.Radius < MinConeRadius || p.Radius > MaxConeRadius {
		return fmt.Errorf("%w: radius %g outside [%g, %g]", ErrInvalidCone, p.Radius, MinConeRadius, MaxConeRadius)
	}
	if p.Height < MinConeHeight || p.Height > MaxConeHeight {
		return fmt.Errorf("%w: height %g outside [%g, %g]", ErrInvalidCone, p.Height, MinConeHeight, MaxConeHeight)
	}
	if p.Segments < MinConeSegments || p.Segments > MaxConeSegments {
		return fmt.Errorf("%w: segments %d outside [%d, %d]", ErrInvalidCone, p.Segments, MinConeSegments, MaxConeSegments)
	}
	return nil
}

// ConeOption is a functional option for configuring ConeParameters.
type ConeOption func(*ConeParameters)

// WithConeRadius sets the base radius.
//
// Parameters:
//   - radius: base radius in [0.1, 5]
//
// Returns:
//   - ConeOption: a function that sets the radius
func WithConeRadius(radius float32) ConeOption {
	return func(p *ConeParameters) {
		p.Radius = radius
	}
}

// WithConeHeight sets the apex height above the base.
//
// Parameters:
//   - height: height in [0.1, 10]
//
// Returns:
//   - ConeOption: a function that sets the height
func WithConeHeight(height float32) ConeOption {
	return func(p *ConeParameters) {
		p.Height = height
	}
}

// WithConeSegments sets the number of rim vertices.
//
// Parameters:
//   - segments: segment count in [3, 50]
//
// Returns:
//   - ConeOption: a function that sets the segment count
func WithConeSegments(segments int) ConeOption {
	return func(p *ConeParameters) {
		p.Segments = segments
	}
}

// Cone builds a cone from the default parameters overridden by options.
//
// Parameters:
//   - options: functional options to configure the cone
//
// Returns:
//   - *Mesh: the cone mesh
//   - error: a wrapped ErrInvalidCone if the parameters are out of range
func Cone(options ...ConeOption) (*Mesh, error) {
	p := DefaultConeParameters()
	for _, option := range options {
		option(&p)
	}
	return p.Mesh()
}

// Mesh builds the cone geometry: vertex 0 is the apex, vertex 1 the base centre and the
// remaining vertices trace the rim. Every segment contributes a side triangle
// (apex, rim i, rim i+1) and a base triangle (centre, rim i+1, rim i).
//
// Returns:
//   - *Mesh: the cone mesh
//   - error: a wrapped ErrInvalidCone if the parameters are out of range
func (p ConeParameters) Mesh() (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r, h, n := p.Radius, p.Height, p.Segments

	vertices := make([]Vertex, 0, n+2)
	vertices = append(vertices,
		Vertex{
			Position: [3]float32{0, h, 0},
			Normal:   mgl32.Vec3{0, r, h}.Normalize(),
			TexCoord: [2]float32{0.5, 1},
			Color:    solidColor,
		},
		Vertex{
			Position: [3]float32{0, 0, 0},
			Normal:   [3]float32{0, -1, 0},
			TexCoord: [2]float32{0.5, 0.5},
			Color:    solidColor,
		},
	)
	for i := range n {
		angle := float32(i) / float32(n) * 2 * math32.Pi
		c, s := math32.Cos(angle), math32.Sin(angle)
		x, z := r*c, r*s
		vertices = append(vertices, Vertex{
			Position: [3]float32{x, 0, z},
			Normal:   mgl32.Vec3{x / 2, h / 2, z / 2}.Normalize(),
			TexCoord: [2]float32{c/2 + 0.5, s/2 + 0.5},
			Color:    solidColor,
		})
	}

	indices := make([]uint16, 0, n*6)
	for i := range n {
		now := uint16(2 + i)
		next := uint16(2 + (i+1)%n)
		indices = append(indices, 0, now, next)
		indices = append(indices, 1, next, now)
	}
	return newMesh(ShapeCone.String(), vertices, indices), nil
}
