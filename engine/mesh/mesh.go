package mesh

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct of the shading pipeline.
// Size: 48 bytes (no padding required).
type Vertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV coordinate (8 bytes)
	Color    [4]float32 // offset 32: per-vertex RGBA color (16 bytes)
}

// VertexSize is the stride of Vertex in a vertex buffer.
const VertexSize = 48

// Size returns the size of the Vertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *Vertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the Vertex into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (v *Vertex) Marshal() []byte {
	buf := make([]byte, VertexSize)
	v.marshalInto(buf)
	return buf
}

func (v *Vertex) marshalInto(buf []byte) {
	put := func(offset int, f float32) {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(f))
	}
	for i := range 3 {
		put(i*4, v.Position[i])
		put(12+i*4, v.Normal[i])
	}
	put(24, v.TexCoord[0])
	put(28, v.TexCoord[1])
	for i := range 4 {
		put(32+i*4, v.Color[i])
	}
}

// Mesh is an indexed triangle list ready for upload.
type Mesh struct {
	// Name identifies the mesh in logs and GPU labels.
	Name string

	// Vertices are the mesh vertices.
	Vertices []Vertex

	// Indices are the triangle indices, three per triangle, counter-clockwise.
	Indices []uint16

	// BoundingRadius is the radius of the smallest origin-centred sphere enclosing every vertex.
	BoundingRadius float32
}

// newMesh fills in the bounding radius of the generated geometry.
func newMesh(name string, vertices []Vertex, indices []uint16) *Mesh {
	var r float32
	for _, v := range vertices {
		r = max(r, mgl32.Vec3(v.Position).Len())
	}
	return &Mesh{
		Name:           name,
		Vertices:       vertices,
		Indices:        indices,
		BoundingRadius: r,
	}
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexBytes serializes every vertex back to back.
//
// Returns:
//   - []byte: len(Vertices) * VertexSize bytes
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, len(m.Vertices)*VertexSize)
	for i := range m.Vertices {
		m.Vertices[i].marshalInto(buf[i*VertexSize:])
	}
	return buf
}

// IndexBytes serializes the indices as little-endian uint16 values, zero-padded to a
// multiple of 4 bytes as required by queue buffer writes.
//
// Returns:
//   - []byte: the padded index buffer contents
func (m *Mesh) IndexBytes() []byte {
	size := len(m.Indices) * 2
	buf := make([]byte, (size+3)&^3)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}
