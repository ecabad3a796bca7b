package engine

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/dleeaw/my3dObject/common"
	"github.com/dleeaw/my3dObject/engine/camera"
	"github.com/dleeaw/my3dObject/engine/mesh"
	"github.com/dleeaw/my3dObject/engine/renderer"
	"github.com/dleeaw/my3dObject/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow runs a message loop that blocks until RequestClose.
type fakeWindow struct {
	mu            sync.Mutex
	width, height int
	closeCh       chan struct{}
	closeOnce     sync.Once
	closed        bool

	onResize      func(width, height int)
	onMouseButton func(common.MouseButton, common.ButtonAction, common.ModifierKey)
	onCursorMove  func(x, y float64)
	onScroll      func(yOffset float64)
	onKeyDown     func(keyCode uint32)
}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{width: width, height: height, closeCh: make(chan struct{})}
}

func (w *fakeWindow) SetUpdateCallback(func()) {}

func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }

func (w *fakeWindow) SetCursorMoveCallback(cb func(x, y float64)) { w.onCursorMove = cb }

func (w *fakeWindow) SetScrollCallback(cb func(yOffset float64)) { w.onScroll = cb }

func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32)) { w.onKeyDown = cb }

func (w *fakeWindow) SetKeyUpCallback(func(keyCode uint32)) {}

func (w *fakeWindow) SetMouseButtonCallback(cb func(common.MouseButton, common.ButtonAction, common.ModifierKey)) {
	w.onMouseButton = cb
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }

func (w *fakeWindow) IsRunning() bool {
	select {
	case <-w.closeCh:
		return false
	default:
		return true
	}
}

func (w *fakeWindow) RequestClose() { w.closeOnce.Do(func() { close(w.closeCh) }) }

func (w *fakeWindow) ProcessMessages() { <-w.closeCh }

func (w *fakeWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *fakeWindow) Width() int { return w.width }

func (w *fakeWindow) Height() int { return w.height }

// fakeRenderer records the calls made by the engine.
type fakeRenderer struct {
	mu          sync.Mutex
	frames      int
	lastFrame   scene.Frame
	sizes       [][2]int
	presentMode []renderer.PresentMode
	released    bool
	err         error
	onRender    func(frames int)
}

func (r *fakeRenderer) Render(frame scene.Frame) error {
	r.mu.Lock()
	r.frames++
	r.lastFrame = frame
	frames, hook, err := r.frames, r.onRender, r.err
	r.mu.Unlock()
	if hook != nil {
		hook(frames)
	}
	return err
}

func (r *fakeRenderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sizes = append(r.sizes, [2]int{width, height})
}

func (r *fakeRenderer) SetPresentMode(mode renderer.PresentMode, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presentMode = append(r.presentMode, mode)
}

func (r *fakeRenderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released = true
}

func newTestEngine(t *testing.T, options ...EngineBuilderOption) (Engine, *fakeWindow, *fakeRenderer) {
	t.Helper()
	s, err := scene.NewScene("test", camera.NewTrackball(camera.NewCamera()))
	require.NoError(t, err)
	w := newFakeWindow(800, 400)
	r := &fakeRenderer{}
	e, err := NewEngine(append([]EngineBuilderOption{WithWindow(w), WithRenderer(r), WithScene(s)}, options...)...)
	require.NoError(t, err)
	return e, w, r
}

func TestNewEngineRequiresComponents(t *testing.T) {
	s, err := scene.NewScene("test", camera.NewTrackball(camera.NewCamera()))
	require.NoError(t, err)
	w := newFakeWindow(10, 10)
	r := &fakeRenderer{}

	cases := []struct {
		name    string
		options []EngineBuilderOption
	}{
		{"window", []EngineBuilderOption{WithRenderer(r), WithScene(s)}},
		{"renderer", []EngineBuilderOption{WithWindow(w), WithScene(s)}},
		{"scene", []EngineBuilderOption{WithWindow(w), WithRenderer(r)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEngine(tc.options...)
			assert.ErrorIs(t, err, ErrMissingComponent)
			assert.ErrorContains(t, err, tc.name)
		})
	}
}

func TestNewEngineAppliesWindowSize(t *testing.T) {
	e, _, _ := newTestEngine(t)

	assert.InDelta(t, 2.0, e.Scene().Trackball().Current().AspectRatio, 1e-6)
	assert.NotNil(t, e.Controller())
}

func TestResizePropagates(t *testing.T) {
	e, w, r := newTestEngine(t)

	w.onResize(300, 600)

	assert.Equal(t, [][2]int{{300, 600}}, r.sizes)
	assert.InDelta(t, 0.5, e.Scene().Trackball().Current().AspectRatio, 1e-6)
}

func TestKeysReachControllerAndEngine(t *testing.T) {
	e, w, r := newTestEngine(t)

	w.onKeyDown(common.Key5)
	assert.Equal(t, mesh.ShapeSphere, e.Scene().Shape())

	w.onKeyDown(common.KeyV)
	w.onKeyDown(common.KeyV)
	assert.Equal(t, []renderer.PresentMode{renderer.PresentModeUncapped, renderer.PresentModeVSync}, r.presentMode)

	assert.False(t, e.ProfilerEnabled())
	w.onKeyDown(common.KeyP)
	assert.True(t, e.ProfilerEnabled())
	w.onKeyDown(common.KeyP)
	assert.False(t, e.ProfilerEnabled())
}

func TestMouseDragRotatesCamera(t *testing.T) {
	e, w, _ := newTestEngine(t)
	before := e.Scene().Trackball().Current()

	w.onCursorMove(400, 200)
	w.onMouseButton(common.MouseButtonLeft, common.ButtonPress, 0)
	w.onCursorMove(500, 200)
	w.onMouseButton(common.MouseButtonLeft, common.ButtonRelease, 0)

	assert.NotEqual(t, before.Eye, e.Scene().Trackball().Current().Eye)
}

func TestRunRendersAndShutsDown(t *testing.T) {
	e, w, r := newTestEngine(t, WithTickRate(1000))
	r.err = errors.New("surface lost")
	r.onRender = func(frames int) {
		if frames == 3 {
			e.Quit()
		}
	}

	done := make(chan error, 1)
	go func() { done <- e.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}

	assert.GreaterOrEqual(t, r.frames, 3)
	assert.True(t, r.released)
	assert.True(t, w.closed)
	assert.Equal(t, mesh.ShapeCube, r.lastFrame.Shape)

	// A second Quit after shutdown is a no-op.
	assert.NotPanics(t, e.Quit)
}

func TestTickCallbackRuns(t *testing.T) {
	e, _, _ := newTestEngine(t, WithTickRate(500))
	ticks := make(chan time.Duration, 1)
	e.SetTickCallback(func(dt time.Duration) {
		select {
		case ticks <- dt:
		default:
		}
	})

	done := make(chan error, 1)
	go func() { done <- e.Run() }()

	select {
	case dt := <-ticks:
		assert.Greater(t, dt, time.Duration(0))
	case <-time.After(5 * time.Second):
		t.Fatal("no tick")
	}
	e.Quit()
	require.NoError(t, <-done)
}

func TestRateConversions(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(0))
	assert.Equal(t, 10*time.Millisecond, tickInterval(100))
	assert.Equal(t, time.Duration(0), frameLimit(-1))
	assert.Equal(t, 20*time.Millisecond, frameLimit(50))
}
