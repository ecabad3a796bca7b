package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/dleeaw/my3dObject/engine/renderer/bind_group_provider"
	"github.com/dleeaw/my3dObject/engine/renderer/pipeline"
	"github.com/dleeaw/my3dObject/engine/scene"
	"github.com/dleeaw/my3dObject/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	shading  pipeline.Pipeline
	uniforms bind_group_provider.BindGroupProvider
	// meshes holds the GPU buffers of every model drawn so far, keyed by model name.
	meshes map[string]bind_group_provider.BindGroupProvider

	// Construction settings collected from builder options.
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
}

// Renderer draws scene frames to a window surface.
//
// It owns one shading pipeline and one uniform bind group (camera, model, light). Mesh
// buffers are uploaded the first time a model is drawn and re-uploaded whenever the model's
// revision changes, so regenerating the cone costs one upload and switching shapes none.
type Renderer interface {
	// Render uploads the frame's uniforms, clears to its clear color and draws its model
	// unless the frame is marked invisible, then presents.
	//
	// Parameters:
	//   - frame: the scene snapshot to draw
	//
	// Returns:
	//   - error: an error if the swapchain texture or a mesh buffer could not be acquired
	Render(frame scene.Frame) error

	// Resize reconfigures the surface for a new framebuffer size. Non-positive sizes
	// (minimized windows) are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	//   - width, height: the current surface size
	SetPresentMode(mode PresentMode, width, height int)

	// Release releases every GPU resource. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates the GPU device for the window's surface, configures the surface at
// the window's size and registers the shading pipeline.
//
// Panics like the window does when no GPU adapter or device is available.
//
// Parameters:
//   - backendType: the rendering backend to use
//   - win: the window providing the surface descriptor and initial size
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the ready renderer
//   - error: an error if the shading pipeline or its uniforms could not be created
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		meshes:      make(map[string]bind_group_provider.BindGroupProvider),
		presentMode: PresentModeVSync,
		msaa:        MSAA4x,
	}

	// Options first so the adapter request sees forceFallbackAdapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	}
	r.backend.SetPresentMode(r.presentMode)
	r.backend.ConfigureSurface(win.Width(), win.Height())

	r.shading = newShadingPipeline()
	if err := r.backend.RegisterRenderPipeline(r.shading); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("renderer: register %s pipeline: %w", r.shading.PipelineKey(), err)
	}

	r.uniforms = bind_group_provider.NewBindGroupProvider("Shading",
		bind_group_provider.WithBindGroupLayout(r.shading.BindGroupLayout(0)),
	)
	if err := r.backend.InitBindGroup(r.uniforms, uniformLayout()); err != nil {
		r.shading.Release()
		r.backend.Release()
		return nil, fmt.Errorf("renderer: init uniforms: %w", err)
	}

	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.SetPresentMode(mode)
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Render(frame scene.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if frame.Model == nil {
		return errors.New("renderer: frame has no model")
	}

	meshProvider, err := r.meshFor(frame)
	if err != nil {
		return err
	}

	r.backend.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: r.uniforms, Binding: bindingCamera, Data: frame.Camera.Marshal()},
		{Provider: r.uniforms, Binding: bindingModel, Data: frame.ModelUniform.Marshal()},
		{Provider: r.uniforms, Binding: bindingLight, Data: frame.Light.Marshal()},
	})

	c := frame.ClearColor
	if err := r.backend.BeginFrame(wgpu.Color{R: c[0], G: c[1], B: c[2], A: c[3]}); err != nil {
		return fmt.Errorf("renderer: begin frame: %w", err)
	}
	if frame.Visible && meshProvider.IndexCount() > 0 {
		r.backend.DrawCall(r.shading, meshProvider, []bind_group_provider.BindGroupProvider{r.uniforms})
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

// meshFor returns the GPU buffers of the frame's model, uploading them when they are missing
// or older than the model's revision. Callers hold r.mu.
func (r *renderer) meshFor(frame scene.Frame) (bind_group_provider.BindGroupProvider, error) {
	m := frame.Model
	provider, ok := r.meshes[m.Name()]
	if !ok {
		provider = bind_group_provider.NewBindGroupProvider(m.Name())
		r.meshes[m.Name()] = provider
	}

	// Read the revision before the data so a concurrent SetMesh at worst causes one extra
	// upload on the next frame.
	revision := m.Revision()
	if !provider.Stale(revision) {
		return provider, nil
	}

	provider.ReleaseMesh()
	if err := r.backend.InitMeshBuffers(provider, m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		return nil, fmt.Errorf("renderer: upload %s: %w", m.Name(), err)
	}
	provider.SetRevision(revision)
	return provider, nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, p := range r.meshes {
		p.Release()
		delete(r.meshes, name)
	}
	r.uniforms.Release()
	r.shading.Release()
	r.backend.Release()
}
