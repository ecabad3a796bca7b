package mesh

import (
	"github.com/chewxy/math32"
)

// flatExtent is the radius or half-size of the built-in 2D shapes in normalized device units.
const flatExtent = 0.67

var flatNormal = [3]float32{0, 0, 1}

// Triangle builds the RGB triangle: three corners at radius 0.67, the first pointing up,
// coloured red, green and blue.
//
// Returns:
//   - *Mesh: the triangle mesh
func Triangle() *Mesh {
	colors := [3][4]float32{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
	}
	fractions := [3]float32{0, 0.33, 0.67}

	vertices := make([]Vertex, 0, 3)
	for i, f := range fractions {
		angle := (2*f + 0.5) * math32.Pi
		c, s := math32.Cos(angle), math32.Sin(angle)
		vertices = append(vertices, Vertex{
			Position: [3]float32{flatExtent * c, flatExtent * s, 0},
			Normal:   flatNormal,
			TexCoord: [2]float32{c*0.5 + 0.5, 0.5 - s*0.5},
			Color:    colors[i],
		})
	}
	return newMesh(ShapeTriangle.String(), vertices, []uint16{0, 1, 2})
}

// Square builds an axis-aligned square of half-size 0.67 coloured by its texture
// coordinates.
//
// Returns:
//   - *Mesh: the square mesh
func Square() *Mesh {
	corners := [4]struct {
		pos [2]float32
		uv  [2]float32
	}{
		{[2]float32{-flatExtent, +flatExtent}, [2]float32{0, 0}},
		{[2]float32{-flatExtent, -flatExtent}, [2]float32{0, 1}},
		{[2]float32{+flatExtent, +flatExtent}, [2]float32{1, 1}},
		{[2]float32{+flatExtent, -flatExtent}, [2]float32{1, 0}},
	}

	vertices := make([]Vertex, 0, len(corners))
	for _, c := range corners {
		vertices = append(vertices, Vertex{
			Position: [3]float32{c.pos[0], c.pos[1], 0},
			Normal:   flatNormal,
			TexCoord: c.uv,
			Color:    [4]float32{c.uv[0], c.uv[1], 1 - c.uv[0], 1},
		})
	}
	// strip order 0-1-2-3 unrolled into two counter-clockwise triangles
	return newMesh(ShapeSquare.String(), vertices, []uint16{0, 1, 2, 2, 1, 3})
}

// DefaultCircleSegments is the number of fan triangles of the built-in circle.
const DefaultCircleSegments = 32

// Circle builds a triangle fan of radius 0.67: a centre vertex followed by segments+1
// rim vertices, the last one closing the loop on top of the first.
//
// Parameters:
//   - segments: number of fan triangles, values below 3 are raised to 3
//
// Returns:
//   - *Mesh: the circle mesh
func Circle(segments int) *Mesh {
	segments = max(segments, 3)

	vertices := make([]Vertex, 0, segments+2)
	vertices = append(vertices, Vertex{
		Normal:   flatNormal,
		TexCoord: [2]float32{0.5, 0.5},
		Color:    [4]float32{1, 1, 1, 1},
	})
	for i := 0; i <= segments; i++ {
		angle := float32(i) / float32(segments) * 2 * math32.Pi
		c, s := math32.Cos(angle), math32.Sin(angle)
		vertices = append(vertices, Vertex{
			Position: [3]float32{flatExtent * c, flatExtent * s, 0},
			Normal:   flatNormal,
			TexCoord: [2]float32{c*0.5 + 0.5, 0.5 - s*0.5},
			Color:    [4]float32{c*0.5 + 0.5, s*0.5 + 0.5, 0.8, 1},
		})
	}

	indices := make([]uint16, 0, segments*3)
	for i := 1; i <= segments; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	return newMesh(ShapeCircle.String(), vertices, indices)
}
