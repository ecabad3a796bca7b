package input

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/dleeaw/my3dObject/common"
	"github.com/dleeaw/my3dObject/engine/camera"
	"github.com/dleeaw/my3dObject/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-4

type fakeScene struct {
	shape      mesh.Shape
	cone       mesh.ConeParameters
	sets       int
	spinRate   float32
	brightness float32
}

func (f *fakeScene) SpinRate() float32 { return f.spinRate }

func (f *fakeScene) SetSpinRate(revsPerSecond float32) { f.spinRate = revsPerSecond }

func (f *fakeScene) Brightness() float32 { return f.brightness }

func (f *fakeScene) SetBrightness(brightness float32) { f.brightness = brightness }

func (f *fakeScene) SelectShape(shape mesh.Shape) error {
	f.shape = shape
	return nil
}

func (f *fakeScene) ConeParameters() mesh.ConeParameters {
	return f.cone
}

func (f *fakeScene) SetConeParameters(p mesh.ConeParameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	f.cone = p
	f.sets++
	return nil
}

func newTestController(options ...ControllerOption) (Controller, camera.Trackball) {
	tb := camera.NewTrackball(camera.NewCamera())
	c := NewController(tb, append([]ControllerOption{WithViewport(800, 600)}, options...)...)
	return c, tb
}

func assertVec2(t *testing.T, want, got mgl32.Vec2) {
	t.Helper()
	assert.InDelta(t, want[0], got[0], delta)
	assert.InDelta(t, want[1], got[1], delta)
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestNormalizePointer(t *testing.T) {
	assertVec2(t, mgl32.Vec2{0, 0}, NormalizePointer(400, 300, 800, 600))
	assertVec2(t, mgl32.Vec2{-4.0 / 3, 1}, NormalizePointer(0, 0, 800, 600))
	assertVec2(t, mgl32.Vec2{4.0 / 3, -1}, NormalizePointer(800, 600, 800, 600))
	assertVec2(t, mgl32.Vec2{1, 0}, NormalizePointer(700, 300, 800, 600))
	assertVec2(t, mgl32.Vec2{0, -1}, NormalizePointer(300, 600, 600, 600))
	assert.Equal(t, mgl32.Vec2{}, NormalizePointer(10, 10, 0, 600))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "began", PhaseBegan.String())
	assert.Equal(t, "changed", PhaseChanged.String())
	assert.Equal(t, "ended", PhaseEnded.String())
	assert.Equal(t, "Phase(5)", Phase(5).String())
}

func TestApply(t *testing.T) {
	tb := camera.NewTrackball(camera.NewCamera())

	Apply(tb, PhaseBegan, mgl32.Vec2{0.1, 0.2}, camera.ModeZoom)
	assert.Equal(t, camera.ModeZoom, tb.Mode())
	assert.Equal(t, mgl32.Vec2{0.1, 0.2}, tb.ReferencePointer())

	Apply(tb, PhaseChanged, mgl32.Vec2{0.1, 1.2}, camera.ModeNone)
	assert.InDelta(t, 1/1.2, tb.ZoomFactor(), delta)
	assert.Equal(t, camera.ModeZoom, tb.Mode())

	Apply(tb, PhaseEnded, mgl32.Vec2{}, camera.ModeNone)
	assert.Equal(t, camera.ModeNone, tb.Mode())
}

func TestBindingsResolve(t *testing.T) {
	b := DefaultBindings()
	tests := []struct {
		name   string
		button common.MouseButton
		mods   common.ModifierKey
		want   camera.Mode
		ok     bool
	}{
		{"left", common.MouseButtonLeft, 0, camera.ModeRotate, true},
		{"shift left", common.MouseButtonLeft, common.ModShift, camera.ModeRoll, true},
		{"shift ctrl left", common.MouseButtonLeft, common.ModShift | common.ModControl, camera.ModeRoll, true},
		{"ctrl left", common.MouseButtonLeft, common.ModControl, camera.ModeRotate, true},
		{"right", common.MouseButtonRight, 0, camera.ModePan, true},
		{"middle", common.MouseButtonMiddle, common.ModAlt, camera.ModeZoom, true},
		{"unbound", common.MouseButton(4), 0, camera.ModeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Resolve(tt.button, tt.mods)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	none := Bindings{{Button: common.MouseButtonLeft, Mode: camera.ModeNone}}
	_, ok := none.Resolve(common.MouseButtonLeft, 0)
	assert.False(t, ok)
}

func TestControllerDragRotate(t *testing.T) {
	c, tb := newTestController()

	c.CursorMoved(400, 300)
	c.MouseButton(common.MouseButtonLeft, common.ButtonPress, 0)
	require.True(t, c.Dragging())
	assert.Equal(t, camera.ModeRotate, tb.Mode())
	assertVec2(t, mgl32.Vec2{0, 0}, tb.ReferencePointer())

	c.CursorMoved(700, 300)
	assertVec2(t, mgl32.Vec2{1, 0}, c.Pointer())
	assertVec3(t, mgl32.Vec3{-5, 0, 0}, tb.Eye())

	c.MouseButton(common.MouseButtonLeft, common.ButtonRelease, 0)
	assert.False(t, c.Dragging())
	assert.Equal(t, camera.ModeNone, tb.Mode())

	c.CursorMoved(100, 100)
	assertVec3(t, mgl32.Vec3{-5, 0, 0}, tb.Eye())
}

func TestControllerShiftDragRolls(t *testing.T) {
	c, tb := newTestController()

	c.CursorMoved(700, 300)
	c.MouseButton(common.MouseButtonLeft, common.ButtonPress, common.ModShift)
	assert.Equal(t, camera.ModeRoll, tb.Mode())

	c.CursorMoved(400, 0)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, tb.Up())
}

func TestControllerIgnoresSecondButton(t *testing.T) {
	c, tb := newTestController()

	c.MouseButton(common.MouseButtonLeft, common.ButtonPress, 0)
	c.MouseButton(common.MouseButtonRight, common.ButtonPress, 0)
	assert.Equal(t, camera.ModeRotate, tb.Mode())

	c.MouseButton(common.MouseButtonRight, common.ButtonRelease, 0)
	assert.True(t, c.Dragging())

	c.MouseButton(common.MouseButtonLeft, common.ButtonRelease, 0)
	assert.False(t, c.Dragging())
}

func TestControllerUnboundButton(t *testing.T) {
	c, tb := newTestController()

	c.MouseButton(common.MouseButton(5), common.ButtonPress, 0)

	assert.False(t, c.Dragging())
	assert.Equal(t, camera.ModeNone, tb.Mode())
}

func TestControllerCustomBindings(t *testing.T) {
	c, tb := newTestController(WithBindings(Bindings{
		{Button: common.MouseButtonLeft, Mode: camera.ModePan},
	}))

	c.MouseButton(common.MouseButtonLeft, common.ButtonPress, 0)
	assert.Equal(t, camera.ModePan, tb.Mode())
	c.MouseButton(common.MouseButtonLeft, common.ButtonRelease, 0)

	c.MouseButton(common.MouseButtonRight, common.ButtonPress, 0)
	assert.False(t, c.Dragging())
}

func TestControllerScroll(t *testing.T) {
	c, tb := newTestController()

	c.Scroll(1)
	assert.InDelta(t, math32.Pow(1.2, -0.25), tb.ZoomFactor(), delta)
	assert.Equal(t, camera.ModeNone, tb.Mode())

	c.Scroll(-1)
	assert.InDelta(t, 1, tb.ZoomFactor(), delta)

	c.Scroll(0)
	assert.InDelta(t, 1, tb.ZoomFactor(), delta)
}

func TestControllerSmallScrollsAccumulate(t *testing.T) {
	c, tb := newTestController()

	for range 20 {
		c.Scroll(0.2)
	}

	assert.NotEqual(t, float32(1), tb.ZoomFactor())
	assert.InDelta(t, 1/1.2, tb.ZoomFactor(), delta)

	for range 40 {
		c.Scroll(-0.1)
	}
	assert.InDelta(t, 1, tb.ZoomFactor(), delta)
}

func TestControllerScrollDuringDragIgnored(t *testing.T) {
	c, tb := newTestController(WithScrollStep(1))

	c.MouseButton(common.MouseButtonRight, common.ButtonPress, 0)
	c.Scroll(3)

	assert.Equal(t, float32(1), tb.ZoomFactor())
	assert.Equal(t, camera.ModePan, tb.Mode())
}

func TestControllerRotateGesture(t *testing.T) {
	c, tb := newTestController()

	c.RotateGesture(0, PhaseBegan)
	assert.Equal(t, camera.ModeRoll, tb.Mode())
	assert.Equal(t, mgl32.Vec2{1, 0}, tb.ReferencePointer())

	c.RotateGesture(math32.Pi/2, PhaseChanged)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, tb.Up())

	c.MouseButton(common.MouseButtonLeft, common.ButtonPress, 0)
	assert.False(t, c.Dragging())

	c.RotateGesture(math32.Pi/2, PhaseEnded)
	assert.Equal(t, camera.ModeNone, tb.Mode())

	c.RotateGesture(math32.Pi, PhaseChanged)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, tb.Up())
}

func TestControllerRollKeys(t *testing.T) {
	c, tb := newTestController()

	require.True(t, c.KeyDown(common.KeyQ))
	assert.Equal(t, camera.ModeNone, tb.Mode())
	assertVec3(t, mgl32.Vec3{math32.Sin(math32.Pi / 12), math32.Cos(math32.Pi / 12), 0}, tb.Up())

	require.True(t, c.KeyDown(common.KeyE))
	assertVec3(t, mgl32.Vec3{0, 1, 0}, tb.Up())
	assert.Equal(t, tb.Home().Eye, tb.Eye())
}

func TestControllerRollKeysIgnoredDuringDrag(t *testing.T) {
	c, tb := newTestController(WithRollStep(math32.Pi / 2))

	c.MouseButton(common.MouseButtonLeft, common.ButtonPress, 0)
	assert.False(t, c.KeyDown(common.KeyQ))
	assert.Equal(t, camera.ModeRotate, tb.Mode())
	c.MouseButton(common.MouseButtonLeft, common.ButtonRelease, 0)

	require.True(t, c.KeyDown(common.KeyQ))
	assertVec3(t, mgl32.Vec3{1, 0, 0}, tb.Up())
}

func TestControllerKeyReset(t *testing.T) {
	c, tb := newTestController()
	c.MouseButton(common.MouseButtonLeft, common.ButtonPress, 0)
	c.CursorMoved(600, 200)
	c.MouseButton(common.MouseButtonLeft, common.ButtonRelease, 0)
	require.NotEqual(t, tb.Home(), tb.Current())

	assert.True(t, c.KeyDown(common.KeyH))

	assert.Equal(t, tb.Home(), tb.Current())
}

func TestControllerKeySelectsShape(t *testing.T) {
	scene := &fakeScene{cone: mesh.DefaultConeParameters()}
	c, _ := newTestController(WithSceneControl(scene))

	for i, shape := range mesh.Shapes() {
		assert.True(t, c.KeyDown(uint32(common.Key1+i)))
		assert.Equal(t, shape, scene.shape)
	}
	assert.False(t, c.KeyDown(uint32('7')))
}

func TestControllerKeysWithoutScene(t *testing.T) {
	c, _ := newTestController()

	assert.False(t, c.KeyDown(common.Key3))
	assert.False(t, c.KeyDown(common.KeyUp))
	assert.False(t, c.KeyDown(common.KeyRightBracket))
	assert.True(t, c.KeyDown(common.KeyQ))
}

func TestControllerConeKeys(t *testing.T) {
	scene := &fakeScene{cone: mesh.DefaultConeParameters()}
	c, _ := newTestController(WithSceneControl(scene), WithConeStep(0.5))

	require.True(t, c.KeyDown(common.KeyUp))
	assert.InDelta(t, 2.5, scene.cone.Height, 1e-6)

	require.True(t, c.KeyDown(common.KeyLeft))
	assert.InDelta(t, 0.5, scene.cone.Radius, 1e-6)

	require.True(t, c.KeyDown(common.KeyEqual))
	assert.Equal(t, 41, scene.cone.Segments)

	// clamped at the lower bounds
	for range 5 {
		c.KeyDown(common.KeyLeft)
	}
	assert.Equal(t, mesh.MinConeRadius, scene.cone.Radius)

	scene.cone.Segments = mesh.MinConeSegments
	require.True(t, c.KeyDown(common.KeyMinus))
	assert.Equal(t, mesh.MinConeSegments, scene.cone.Segments)

	assert.False(t, c.KeyDown(common.KeyEsc))
}

func TestControllerSpinAndBrightnessKeys(t *testing.T) {
	scene := &fakeScene{cone: mesh.DefaultConeParameters(), spinRate: 0.1, brightness: 1}
	c, _ := newTestController(WithSceneControl(scene), WithSpinStep(0.25), WithBrightnessStep(0.5))

	require.True(t, c.KeyDown(common.KeyRightBracket))
	assert.InDelta(t, 0.35, scene.spinRate, 1e-6)
	require.True(t, c.KeyDown(common.KeyLeftBracket))
	require.True(t, c.KeyDown(common.KeyLeftBracket))
	assert.InDelta(t, -0.15, scene.spinRate, 1e-6)

	require.True(t, c.KeyDown(common.KeyComma))
	assert.InDelta(t, 0.5, scene.brightness, 1e-6)
	require.True(t, c.KeyDown(common.KeyPeriod))
	assert.InDelta(t, 1, scene.brightness, 1e-6)

	assert.Zero(t, scene.sets)
}

func TestControllerResizeIgnoresEmpty(t *testing.T) {
	c, _ := newTestController()
	c.CursorMoved(800, 300)

	c.Resize(0, 0)
	assertVec2(t, mgl32.Vec2{4.0 / 3, 0}, c.Pointer())

	c.Resize(1600, 600)
	assertVec2(t, mgl32.Vec2{0, 0}, c.Pointer())
}
