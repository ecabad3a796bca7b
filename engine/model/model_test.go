package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/dleeaw/my3dObject/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()

	assert.Nil(t, m.Mesh())
	assert.Equal(t, uint64(0), m.Revision())
	assert.Equal(t, 0, m.IndexCount())
	assert.Equal(t, float32(1), m.Scale())
	assert.True(t, m.Shaded())
	assert.Equal(t, mgl32.Ident4(), m.ModelMatrix())
}

func TestNewModelWithMesh(t *testing.T) {
	cube := mesh.Cube()
	m := NewModel(WithMesh(cube), WithScale(0.67))

	assert.Equal(t, "cube", m.Name())
	assert.Equal(t, uint64(1), m.Revision())
	assert.Equal(t, 36, m.IndexCount())
	assert.Len(t, m.VertexData(), 24*mesh.VertexSize)
	assert.Len(t, m.IndexData(), 72)
	assert.InDelta(t, 0.67*math.Sqrt(3), m.BoundingRadius(), 1e-5)
}

func TestSetMeshBumpsRevision(t *testing.T) {
	m := NewModel(WithName("shape"), WithMesh(mesh.Triangle()))

	m.SetMesh(mesh.Square())

	assert.Equal(t, uint64(2), m.Revision())
	assert.Equal(t, "shape", m.Name())
	assert.Equal(t, "square", m.Mesh().Name)
	assert.Equal(t, 6, m.IndexCount())
}

func TestModelMatrix(t *testing.T) {
	m := NewModel(WithScale(2), WithShaded(false))
	m.SetSpin(math32.Pi / 2)

	p := m.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 2, p[1], 1e-5)
	assert.InDelta(t, math32.Pi/2, m.Spin(), 1e-6)
}

func TestGPUModelLayout(t *testing.T) {
	m := NewModel(WithScale(0.5), WithMesh(mesh.Cube()))
	g := NewGPUModel(m)

	assert.Equal(t, 144, g.Size())
	assert.Equal(t, uint32(1), g.Shaded)
	// inverse transpose of a uniform scale
	assert.InDelta(t, 2, g.Normal[0], 1e-5)
	assert.Equal(t, float32(1), g.Normal[15])

	buf := g.Marshal()
	require.Len(t, buf, 144)
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[128:]))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[132:])))
	assert.Contains(t, GPUModelSource, "brightness: f32")
	assert.Contains(t, GPUModelSource, "struct ModelUniform")
}

func TestGPUModelUnshaded(t *testing.T) {
	g := NewGPUModel(NewModel(WithShaded(false)))

	assert.Equal(t, uint32(0), g.Shaded)
	assert.Equal(t, float32(1), g.Brightness)

	g.Brightness = 0.25
	buf := g.Marshal()
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(buf[132:])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[136:]))
}
