package model

import (
	"sync"

	"github.com/dleeaw/my3dObject/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// model is the implementation of the Model interface.
type model struct {
	mu                    *sync.RWMutex
	name                  string
	mesh                  *mesh.Mesh
	revision              uint64
	scale                 float32
	spin                  float32
	shaded                bool
	vertexData, indexData []byte
}

// Model defines the interface for a drawable shape.
// A Model pairs a generated mesh with its placement (uniform scale and a spin about +Z)
// and keeps the GPU-ready vertex and index bytes of the mesh. Every SetMesh call bumps
// Revision so the renderer knows to re-upload its buffers.
//
// Model is safe for concurrent use.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Mesh retrieves the current mesh.
	//
	// Returns:
	//   - *mesh.Mesh: the mesh, nil before the first SetMesh
	Mesh() *mesh.Mesh

	// SetMesh replaces the mesh, re-serializes its buffers and bumps the revision.
	//
	// Parameters:
	//   - m: the new mesh
	SetMesh(m *mesh.Mesh)

	// Revision returns a counter incremented on every mesh change.
	//
	// Returns:
	//   - uint64: the mesh revision, 0 before the first SetMesh
	Revision() uint64

	// VertexData returns the raw vertex data of the mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index data of the mesh, padded to 4 bytes.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices to draw.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the mesh bounding radius scaled by the model scale.
	//
	// Returns:
	//   - float32: the world-space bounding radius
	BoundingRadius() float32

	// Scale returns the uniform model scale.
	//
	// Returns:
	//   - float32: the scale factor
	Scale() float32

	// Spin returns the rotation about +Z in radians.
	//
	// Returns:
	//   - float32: the spin angle
	Spin() float32

	// SetSpin sets the rotation about +Z in radians.
	//
	// Parameters:
	//   - radians: the spin angle
	SetSpin(radians float32)

	// Shaded reports whether the model is lit by the scene light.
	//
	// Returns:
	//   - bool: true for lit solids, false for flat unlit shapes
	Shaded() bool

	// ModelMatrix returns Scale * RotateZ(spin).
	//
	// Returns:
	//   - mgl32.Mat4: the column-major model matrix
	ModelMatrix() mgl32.Mat4
}

var _ Model = &model{}

// NewModel creates a new Model with unit scale, no spin and shading enabled, then
// applies the provided options.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		mu:     &sync.RWMutex{},
		scale:  1.0,
		shaded: true,
	}
	for _, option := range options {
		option(m)
	}
	if m.mesh != nil {
		m.setMeshLocked(m.mesh)
	}
	return m
}

func (m *model) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

func (m *model) Mesh() *mesh.Mesh {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mesh
}

func (m *model) SetMesh(msh *mesh.Mesh) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setMeshLocked(msh)
}

func (m *model) setMeshLocked(msh *mesh.Mesh) {
	m.mesh = msh
	m.vertexData = msh.VertexBytes()
	m.indexData = msh.IndexBytes()
	if m.name == "" {
		m.name = msh.Name
	}
	m.revision++
}

func (m *model) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revision
}

func (m *model) VertexData() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.vertexData
}

func (m *model) IndexData() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexData
}

func (m *model) IndexCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.mesh == nil {
		return 0
	}
	return len(m.mesh.Indices)
}

func (m *model) BoundingRadius() float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.mesh == nil {
		return 0
	}
	return m.mesh.BoundingRadius * m.scale
}

func (m *model) Scale() float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scale
}

func (m *model) Spin() float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.spin
}

func (m *model) SetSpin(radians float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spin = radians
}

func (m *model) Shaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.shaded
}

func (m *model) ModelMatrix() mgl32.Mat4 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return mgl32.Scale3D(m.scale, m.scale, m.scale).Mul4(mgl32.HomogRotate3DZ(m.spin))
}
