package light

import (
	"encoding/binary"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	assert.Equal(t, [3]float32{1, 1, 1}, l.Position())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1), l.Intensity())
	assert.Equal(t, float32(0.4), l.Ambient())
	assert.Equal(t, float32(0.3), l.Specular())
	assert.Equal(t, float32(32), l.Shininess())
}

func TestNewLightOptions(t *testing.T) {
	l := NewLight(
		WithPosition(0, 5, 0),
		WithColor(1, 0.5, 0.25),
		WithIntensity(2),
		WithAmbient(0.1),
		WithSpecular(0.8),
		WithShininess(8),
	)

	assert.Equal(t, [3]float32{0, 5, 0}, l.Position())
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, l.Color())
	assert.Equal(t, float32(2), l.Intensity())
	assert.Equal(t, float32(0.1), l.Ambient())
	assert.Equal(t, float32(0.8), l.Specular())
	assert.Equal(t, float32(8), l.Shininess())
}

func TestSetters(t *testing.T) {
	l := NewLight()
	l.SetPosition(3, 2, 1)
	l.SetColor(0, 1, 0)
	l.SetIntensity(0.5)
	l.SetAmbient(0)
	l.SetSpecular(1)

	assert.Equal(t, [3]float32{3, 2, 1}, l.Position())
	assert.Equal(t, [3]float32{0, 1, 0}, l.Color())
	assert.Equal(t, float32(0.5), l.Intensity())
	assert.Equal(t, float32(0), l.Ambient())
	assert.Equal(t, float32(1), l.Specular())
}

func TestGPULightLayout(t *testing.T) {
	g := NewGPULight(NewLight(WithPosition(1, 2, 3), WithSpecular(0.3)))

	assert.Equal(t, 48, g.Size())
	buf := g.Marshal()
	assert.Len(t, buf, 48)

	f := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	assert.Equal(t, float32(3), f(8))
	assert.Equal(t, float32(1), f(12))
	assert.Equal(t, float32(0.4), f(28))
	assert.Equal(t, float32(0.3), f(32))
	assert.Equal(t, float32(32), f(36))
	assert.Contains(t, GPULightSource, "struct LightUniform")
}

func TestLightConcurrentAccess(t *testing.T) {
	l := NewLight()
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.SetIntensity(float32(i))
		}()
		go func() {
			defer wg.Done()
			_ = NewGPULight(l)
		}()
	}
	wg.Wait()
}
