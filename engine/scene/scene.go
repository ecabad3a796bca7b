package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/chewxy/math32"
	"github.com/dleeaw/my3dObject/common"
	"github.com/dleeaw/my3dObject/engine/camera"
	"github.com/dleeaw/my3dObject/engine/light"
	"github.com/dleeaw/my3dObject/engine/mesh"
	"github.com/dleeaw/my3dObject/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// solidScale is the model scale of the cube and the sphere.
const solidScale = 0.67

// MaxSpinRate is the fastest spin of the flat shapes in revolutions per second.
const MaxSpinRate = 1.5

// ErrNilTrackball is returned by NewScene when no trackball is supplied.
var ErrNilTrackball = errors.New("scene: trackball is required")

// Frame is the immutable snapshot the renderer draws for one frame.
type Frame struct {
	// Shape is the selected shape.
	Shape mesh.Shape

	// Model is the drawable of the selected shape; its Revision tells the renderer
	// whether the GPU buffers are stale.
	Model model.Model

	// Camera is the camera uniform: the trackball camera for solids, an aspect-correcting
	// orthographic view for flat shapes.
	Camera camera.GPUCameraUniform

	// ModelUniform is the per-draw model uniform.
	ModelUniform model.GPUModel

	// Light is the shading light uniform.
	Light light.GPULight

	// Visible is false when the selected solid's bounding sphere lies entirely outside
	// the camera frustum; the renderer then skips the draw but still clears.
	Visible bool

	// ClearColor is the background color.
	ClearColor [4]float64
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name       string
	trackball  camera.Trackball
	light      light.Light
	models     map[mesh.Shape]model.Model
	shape      mesh.Shape
	cone       mesh.ConeParameters
	spinRate   float32 // revolutions per second of the flat shapes
	spin       float32
	brightness float32 // color multiplier of the flat shapes
	clearColor [4]float64

	viewportWidth, viewportHeight int

	// buildPool generates the mesh library concurrently at start-up.
	buildPool    worker.DynamicWorkerPool
	buildWorkers int
}

// Scene owns everything a frame needs: the trackball camera, the shading light and one
// model per built-in shape, of which exactly one is selected for drawing.
//
// Scene is safe for concurrent use. Input handlers mutate it from the window thread while
// the tick goroutine advances it and the render goroutine snapshots it with Frame.
type Scene interface {
	// Name retrieves the scene name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Trackball retrieves the camera controller of the 3D shapes.
	//
	// Returns:
	//   - camera.Trackball: the trackball
	Trackball() camera.Trackball

	// Light retrieves the shading light.
	//
	// Returns:
	//   - light.Light: the light
	Light() light.Light

	// Model retrieves the drawable of a shape.
	//
	// Parameters:
	//   - shape: the shape to look up
	//
	// Returns:
	//   - model.Model: the model, nil for unknown shapes
	Model(shape mesh.Shape) model.Model

	// Shape returns the selected shape.
	//
	// Returns:
	//   - mesh.Shape: the selected shape
	Shape() mesh.Shape

	// SelectShape changes the selected shape. The trackball state is kept across
	// selections.
	//
	// Parameters:
	//   - shape: the shape to draw
	//
	// Returns:
	//   - error: a wrapped mesh.ErrUnknownShape for shapes outside the built-in set
	SelectShape(shape mesh.Shape) error

	// ConeParameters returns the parameters of the current cone mesh.
	//
	// Returns:
	//   - mesh.ConeParameters: radius, height and segment count
	ConeParameters() mesh.ConeParameters

	// SetConeParameters regenerates the cone mesh, which bumps its model revision.
	// Invalid parameters leave the current cone untouched.
	//
	// Parameters:
	//   - p: the new cone parameters
	//
	// Returns:
	//   - error: a wrapped mesh.ErrInvalidCone if p is out of range
	SetConeParameters(p mesh.ConeParameters) error

	// SpinRate returns the spin rate of the flat shapes.
	//
	// Returns:
	//   - float32: revolutions per second in [0, MaxSpinRate]
	SpinRate() float32

	// SetSpinRate changes how fast the flat shapes spin, clamped to [0, MaxSpinRate].
	// The current spin angle is kept.
	//
	// Parameters:
	//   - revsPerSecond: revolutions per second
	SetSpinRate(revsPerSecond float32)

	// Brightness returns the color multiplier of the flat shapes.
	Brightness() float32

	// SetBrightness scales the vertex colors of the flat shapes, clamped to [0, 1].
	// The lit solids ignore it.
	//
	// Parameters:
	//   - brightness: 0 draws black, 1 draws the mesh colors unchanged
	SetBrightness(brightness float32)

	// SetViewport records the drawable size and forwards it to the trackball.
	// Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width: drawable width in pixels
	//   - height: drawable height in pixels
	SetViewport(width, height int)

	// Tick advances the spin of the flat shapes.
	//
	// Parameters:
	//   - dt: time elapsed since the previous tick
	Tick(dt time.Duration)

	// Frame snapshots the state needed to draw the selected shape.
	//
	// Returns:
	//   - Frame: the frame snapshot
	Frame() Frame
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a Scene around the given trackball and builds one mesh per built-in
// shape on a worker pool.
//
// Parameters:
//   - name: the name of the scene
//   - tb: the trackball camera (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: ErrNilTrackball, or the first mesh generation error
func NewScene(name string, tb camera.Trackball, options ...SceneBuilderOption) (Scene, error) {
	if tb == nil {
		return nil, ErrNilTrackball
	}

	s := &scene{
		mu:           &sync.RWMutex{},
		name:         name,
		trackball:    tb,
		models:       make(map[mesh.Shape]model.Model, len(mesh.Shapes())),
		shape:        mesh.ShapeCube,
		cone:         mesh.DefaultConeParameters(),
		spinRate:     0.10,
		brightness:   1,
		clearColor:   [4]float64{0.1, 0.1, 0.12, 1},
		buildWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(s)
	}
	if s.light == nil {
		s.light = light.NewLight()
	}
	if !s.shape.Valid() {
		return nil, fmt.Errorf("scene: initial shape: %w: %d", mesh.ErrUnknownShape, int(s.shape))
	}

	s.buildPool = worker.NewDynamicWorkerPool(s.buildWorkers, len(mesh.Shapes()), 1*time.Second)
	if err := s.buildModels(); err != nil {
		return nil, err
	}
	return s, nil
}

// buildModels generates every built-in mesh in parallel. A WaitGroup is the barrier;
// the pool's own Wait blocks until the workers idle out.
func (s *scene) buildModels() error {
	shapes := mesh.Shapes()
	meshes := make([]*mesh.Mesh, len(shapes))
	errs := make([]error, len(shapes))

	var wg sync.WaitGroup
	for i, shape := range shapes {
		wg.Add(1)
		s.buildPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				meshes[i], errs[i] = mesh.Build(shape, s.cone)
				return meshes[i], errs[i]
			},
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("scene: failed to build meshes: %w", err)
	}
	for i, shape := range shapes {
		s.models[shape] = newModelFor(shape, meshes[i])
	}
	return nil
}

// newModelFor places a mesh the way its shape is shown: flat shapes unlit at unit
// scale, the cube and sphere scaled down, the cone at its generated size.
func newModelFor(shape mesh.Shape, m *mesh.Mesh) model.Model {
	scale := float32(1)
	if shape == mesh.ShapeCube || shape == mesh.ShapeSphere {
		scale = solidScale
	}
	return model.NewModel(
		model.WithMesh(m),
		model.WithScale(scale),
		model.WithShaded(shape.Is3D()),
	)
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Trackball() camera.Trackball {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trackball
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.light
}

func (s *scene) Model(shape mesh.Shape) model.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.models[shape]
}

func (s *scene) Shape() mesh.Shape {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shape
}

func (s *scene) SelectShape(shape mesh.Shape) error {
	if !shape.Valid() {
		return fmt.Errorf("scene: select: %w: %d", mesh.ErrUnknownShape, int(shape))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shape = shape
	return nil
}

func (s *scene) ConeParameters() mesh.ConeParameters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cone
}

func (s *scene) SetConeParameters(p mesh.ConeParameters) error {
	m, err := p.Mesh()
	if err != nil {
		return fmt.Errorf("scene: cone: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cone = p
	s.models[mesh.ShapeCone].SetMesh(m)
	return nil
}

func (s *scene) SpinRate() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spinRate
}

func (s *scene) SetSpinRate(revsPerSecond float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spinRate = clampSpinRate(revsPerSecond)
}

func (s *scene) Brightness() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brightness
}

func (s *scene) SetBrightness(brightness float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brightness = clampBrightness(brightness)
}

func clampSpinRate(revsPerSecond float32) float32 {
	return common.Clamp(revsPerSecond, 0, MaxSpinRate)
}

func clampBrightness(brightness float32) float32 {
	return common.Clamp(brightness, 0, 1)
}

func (s *scene) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	s.viewportWidth, s.viewportHeight = width, height
	s.mu.Unlock()
	s.trackball.SetViewport(width, height)
}

func (s *scene) Tick(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spin = math32.Mod(s.spin+2*math32.Pi*s.spinRate*float32(dt.Seconds()), 2*math32.Pi)
	for shape, m := range s.models {
		if !shape.Is3D() {
			m.SetSpin(s.spin)
		}
	}
}

func (s *scene) Frame() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.models[s.shape]
	f := Frame{
		Shape:        s.shape,
		Model:        m,
		ModelUniform: model.NewGPUModel(m),
		Light:        light.NewGPULight(s.light),
		Visible:      true,
		ClearColor:   s.clearColor,
	}

	if s.shape.Is3D() {
		cam := s.trackball.Current()
		f.Camera = camera.NewGPUCameraUniform(cam)
		f.Visible = cam.Frustum().ContainsSphere(mgl32.Vec3{}, m.BoundingRadius())
		return f
	}

	f.ModelUniform.Brightness = s.brightness
	f.Camera = camera.GPUCameraUniform{
		View:           [16]float32(mgl32.Ident4()),
		Projection:     [16]float32(flatProjection(s.viewportWidth, s.viewportHeight)),
		CameraPosition: [3]float32{0, 0, 1},
	}
	return f
}

// flatProjection keeps flat shapes undistorted: the shorter viewport axis spans [-1, 1]
// and depth 0 maps to the middle of the clip range.
func flatProjection(width, height int) mgl32.Mat4 {
	p := mgl32.Ident4()
	p[10] = 0.5
	p[14] = 0.5
	if width <= 0 || height <= 0 {
		return p
	}
	aspect := float32(width) / float32(height)
	if aspect > 1 {
		p[0] = 1 / aspect
	} else {
		p[5] = aspect
	}
	return p
}
