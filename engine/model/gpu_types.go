package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUModelSource is the canonical WGSL definition of the ModelUniform struct.
// Matches GPUModel layout exactly (144 bytes).
//
//go:embed assets/model.wgsl
var GPUModelSource string

// GPUModel is the GPU-aligned representation of the per-draw model uniform.
// Matches the WGSL ModelUniform struct layout exactly (see GPUModelSource).
// Size: 144 bytes (WGSL uniform aligned).
type GPUModel struct {
	Model      [16]float32 // offset   0: model matrix (mat4x4<f32>)
	Normal     [16]float32 // offset  64: inverse-transpose of the model matrix (mat4x4<f32>)
	Shaded     uint32      // offset 128: 1 = lit, 0 = vertex color only
	Brightness float32     // offset 132: vertex color multiplier of unlit draws
	_pad       [2]uint32   // offset 136: padding to 144 bytes
}

// NewGPUModel snapshots a Model into its uniform layout at full brightness.
//
// Parameters:
//   - m: the model to pack
//
// Returns:
//   - GPUModel: the packed uniform
func NewGPUModel(m Model) GPUModel {
	mat := m.ModelMatrix()
	g := GPUModel{
		Model:      [16]float32(mat),
		Normal:     [16]float32(mat.Mat3().Inv().Transpose().Mat4()),
		Brightness: 1,
	}
	if m.Shaded() {
		g.Shaded = 1
	}
	return g
}

// Size returns the size of the GPUModel struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUModel) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUModel struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 144-byte buffer ready for GPU upload.
func (g *GPUModel) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Normal[i]))
	}
	binary.LittleEndian.PutUint32(buf[128:], g.Shaded)
	binary.LittleEndian.PutUint32(buf[132:], math.Float32bits(g.Brightness))
	return buf
}
