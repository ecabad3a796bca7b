package light

import "sync"

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu        *sync.RWMutex
	position  [3]float32
	color     [3]float32
	intensity float32
	ambient   float32
	specular  float32
	shininess float32
}

// Light defines the interface for the point light that shades the 3D shapes.
//
// The shading model is Blinn-Phong: a constant ambient term, a Lambert diffuse term
// scaled by intensity, and a specular highlight scaled by the specular strength with
// the given shininess exponent. Flat shapes ignore the light entirely.
//
// Light is safe for concurrent use; the tick and render goroutines read it while input
// handlers may update it.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar multiplier of the diffuse term.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Ambient returns the constant ambient contribution.
	//
	// Returns:
	//   - float32: ambient strength in [0, 1]
	Ambient() float32

	// Specular returns the strength of the specular highlight.
	//
	// Returns:
	//   - float32: specular strength in [0, 1]
	Specular() float32

	// Shininess returns the Blinn-Phong exponent of the specular highlight.
	//
	// Returns:
	//   - float32: the exponent
	Shininess() float32

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar multiplier of the diffuse term.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetAmbient sets the constant ambient contribution.
	//
	// Parameters:
	//   - ambient: ambient strength
	SetAmbient(ambient float32)

	// SetSpecular sets the strength of the specular highlight.
	//
	// Parameters:
	//   - specular: specular strength
	SetSpecular(specular float32)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light with the default shading parameters (white light at
// (1, 1, 1), intensity 1, ambient 0.4, specular 0.3, shininess 32) and any provided
// options applied.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.RWMutex{},
		position:  [3]float32{1, 1, 1},
		color:     [3]float32{1, 1, 1},
		intensity: 1.0,
		ambient:   0.4,
		specular:  0.3,
		shininess: 32.0,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.position
}

func (l *lightImpl) Color() [3]float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.intensity
}

func (l *lightImpl) Ambient() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ambient
}

func (l *lightImpl) Specular() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.specular
}

func (l *lightImpl) Shininess() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.shininess
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) SetAmbient(ambient float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ambient = ambient
}

func (l *lightImpl) SetSpecular(specular float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.specular = specular
}
