package mesh

import (
	"github.com/chewxy/math32"
)

var solidColor = [4]float32{1, 1, 1, 1}

// Cube builds a unit cube spanning [-1, 1] on every axis with 24 vertices (four per face,
// so each face has its own normal) and texture coordinates laid out as a 4x2 dice atlas.
//
// Returns:
//   - *Mesh: the cube mesh
func Cube() *Mesh {
	var (
		lln = [3]float32{-1, -1, +1}
		llf = [3]float32{-1, -1, -1}
		uln = [3]float32{-1, +1, +1}
		ulf = [3]float32{-1, +1, -1}
		lrn = [3]float32{+1, -1, +1}
		lrf = [3]float32{+1, -1, -1}
		urn = [3]float32{+1, +1, +1}
		urf = [3]float32{+1, +1, -1}
	)

	// atlas returns the lower-left, upper-left, lower-right and upper-right UVs of atlas
	// cell (col, row) in a grid of quarter-width, half-height cells.
	atlas := func(col, row int) [4][2]float32 {
		u0, u1 := float32(col)*0.25, float32(col+1)*0.25
		v0, v1 := float32(row)*0.5, float32(row+1)*0.5
		return [4][2]float32{{u0, v1}, {u0, v0}, {u1, v1}, {u1, v0}}
	}

	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
		uv      [4][2]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{lln, uln, lrn, urn}, atlas(0, 0)},  // front: 1
		{[3]float32{1, 0, 0}, [4][3]float32{lrn, urn, lrf, urf}, atlas(2, 0)},  // right: 3
		{[3]float32{0, 0, -1}, [4][3]float32{lrf, urf, llf, ulf}, atlas(2, 1)}, // back: 6
		{[3]float32{-1, 0, 0}, [4][3]float32{llf, ulf, lln, uln}, atlas(0, 1)}, // left: 4
		{[3]float32{0, 1, 0}, [4][3]float32{uln, ulf, urn, urf}, atlas(1, 0)},  // up: 2
		{[3]float32{0, -1, 0}, [4][3]float32{llf, lln, lrf, lrn}, atlas(1, 1)}, // down: 5
	}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint16, 0, 36)
	for i, f := range faces {
		for c := range 4 {
			vertices = append(vertices, Vertex{
				Position: f.corners[c],
				Normal:   f.normal,
				TexCoord: f.uv[c],
				Color:    solidColor,
			})
		}
		base := uint16(i * 4)
		indices = append(indices, base, base+2, base+1, base+1, base+2, base+3)
	}
	return newMesh(ShapeCube.String(), vertices, indices)
}

// Sphere builds a latitude/longitude sphere around the Z axis. Latitude lines run from the
// north pole (+Z) to the south pole, longitude lines wrap once around with the seam
// duplicated so texture coordinates stay continuous.
//
// Parameters:
//   - radius: sphere radius
//   - stacks: latitude divisions
//   - slices: longitude divisions
//
// Returns:
//   - *Mesh: the sphere mesh
func Sphere(radius float32, stacks, slices int) *Mesh {
	stacks = max(stacks, 2)
	slices = max(slices, 3)
	cols := slices + 1

	vertices := make([]Vertex, 0, (stacks+1)*cols)
	for lat := 0; lat <= stacks; lat++ {
		phi := math32.Pi/2 - math32.Pi*float32(lat)/float32(stacks)
		for lon := 0; lon <= slices; lon++ {
			theta := 2 * math32.Pi * float32(lon) / float32(slices)
			n := [3]float32{
				math32.Cos(phi) * math32.Cos(theta),
				math32.Cos(phi) * math32.Sin(theta),
				math32.Sin(phi),
			}
			vertices = append(vertices, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{float32(lon) / float32(slices), float32(lat) / float32(stacks)},
				Color:    solidColor,
			})
		}
	}

	indices := make([]uint16, 0, stacks*slices*6)
	for lat := 0; lat < stacks; lat++ {
		for lon := 0; lon < slices; lon++ {
			tl := uint16(lat*cols + lon)
			tr := tl + 1
			bl := uint16((lat+1)*cols + lon)
			br := bl + 1
			indices = append(indices, tl, bl, tr, tr, bl, br)
		}
	}
	return newMesh(ShapeSphere.String(), vertices, indices)
}
