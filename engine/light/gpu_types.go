package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightSource is the canonical WGSL definition of the LightUniform struct.
// Matches GPULight layout exactly (48 bytes).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULight is the GPU-aligned representation of the shading light.
// Matches the WGSL LightUniform struct layout exactly (see GPULightSource).
// Size: 48 bytes (WGSL uniform aligned).
type GPULight struct {
	Position  [3]float32 // offset  0: world-space position
	Intensity float32    // offset 12: diffuse multiplier
	Color     [3]float32 // offset 16: RGB color
	Ambient   float32    // offset 28: ambient strength
	Specular  float32    // offset 32: specular strength
	Shininess float32    // offset 36: specular exponent
	_pad      [2]float32 // offset 40: padding to 48 bytes
}

// NewGPULight snapshots a Light into its uniform layout.
//
// Parameters:
//   - l: the light to pack
//
// Returns:
//   - GPULight: the packed uniform
func NewGPULight(l Light) GPULight {
	return GPULight{
		Position:  l.Position(),
		Intensity: l.Intensity(),
		Color:     l.Color(),
		Ambient:   l.Ambient(),
		Specular:  l.Specular(),
		Shininess: l.Shininess(),
	}
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Ambient))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Specular))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Shininess))
	// bytes 40..48 stay zero (padding)
	return buf
}
