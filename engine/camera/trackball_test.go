package camera

import (
	"sync"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func drag(tb Trackball, mode Mode, from, to mgl32.Vec2) {
	tb.BeginInteraction(from, mode)
	tb.Update(to)
	tb.EndInteraction()
}

func TestNewTrackballSnapshots(t *testing.T) {
	home := NewCamera()
	tb := NewTrackball(home)

	assert.Equal(t, home, tb.Current())
	assert.Equal(t, home, tb.Previous())
	assert.Equal(t, home, tb.Home())
	assert.Equal(t, ModeNone, tb.Mode())
}

func TestBeginInteractionCopiesCurrent(t *testing.T) {
	tb := NewTrackball(NewCamera())
	drag(tb, ModeRotate, mgl32.Vec2{0, 0}, mgl32.Vec2{0.5, 0})
	rotated := tb.Current()

	tb.BeginInteraction(mgl32.Vec2{0.2, 0.3}, ModeZoom)

	assert.Equal(t, rotated, tb.Previous())
	assert.Equal(t, ModeZoom, tb.Mode())
	assert.Equal(t, mgl32.Vec2{0.2, 0.3}, tb.ReferencePointer())
}

func TestUpdateWithoutInteractionIsNoop(t *testing.T) {
	tb := NewTrackball(NewCamera())

	tb.Update(mgl32.Vec2{1, 1})

	assert.Equal(t, tb.Home(), tb.Current())
}

func TestUpdateWithinDeadzoneIsNoop(t *testing.T) {
	tb := NewTrackball(NewCamera())

	tb.BeginInteraction(mgl32.Vec2{0, 0}, ModeRotate)
	tb.Update(mgl32.Vec2{0.05, 0.05})

	assert.Equal(t, tb.Home(), tb.Current())
}

func TestUpdateDeadzoneBoundary(t *testing.T) {
	cases := []struct {
		name    string
		options []TrackballOption
		pointer mgl32.Vec2
		applied bool
	}{
		{"default just past", nil, mgl32.Vec2{0, 0.11}, true},
		{"default well inside", nil, mgl32.Vec2{0, 0.05}, false},
		{"exactly at", []TrackballOption{WithDeadzone(0.25)}, mgl32.Vec2{0, 0.5}, false},
		{"just past", []TrackballOption{WithDeadzone(0.25)}, mgl32.Vec2{0, 0.51}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tb := NewTrackball(NewCamera(), tc.options...)

			tb.BeginInteraction(mgl32.Vec2{0, 0}, ModeZoom)
			tb.Update(tc.pointer)

			if tc.applied {
				assert.NotEqual(t, tb.Home(), tb.Current())
			} else {
				assert.Equal(t, tb.Home(), tb.Current())
			}
		})
	}
}

func TestZoomStep(t *testing.T) {
	tb := NewTrackball(NewCamera())

	tb.ZoomStep(0.05)
	assert.InDelta(t, math32.Pow(1.2, -0.05), tb.ZoomFactor(), delta)
	assert.InDelta(t, 1, tb.Previous().ZoomFactor, delta)

	for range 19 {
		tb.ZoomStep(0.05)
	}
	assert.InDelta(t, 1/1.2, tb.ZoomFactor(), delta)
	assert.Equal(t, tb.Home().Eye, tb.Eye())
	assert.Equal(t, tb.Home().At, tb.At())
	assert.Equal(t, ModeNone, tb.Mode())
}

func TestZoomStepIgnoredDuringInteraction(t *testing.T) {
	tb := NewTrackball(NewCamera())

	tb.BeginInteraction(mgl32.Vec2{0, 0}, ModeRotate)
	tb.ZoomStep(1)
	assert.Equal(t, tb.Home(), tb.Current())

	tb.EndInteraction()
	tb.ZoomStep(0)
	assert.Equal(t, tb.Home(), tb.Current())
}

func TestUpdateIsIdempotent(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			tb := NewTrackball(NewCamera())
			tb.BeginInteraction(mgl32.Vec2{0.3, 0.1}, mode)

			tb.Update(mgl32.Vec2{0.7, -0.4})
			first := tb.Current()
			tb.Update(mgl32.Vec2{0.7, -0.4})

			assert.Equal(t, first, tb.Current())
		})
	}
}

func TestUpdateDoesNotAccumulate(t *testing.T) {
	tb := NewTrackball(NewCamera())
	tb.BeginInteraction(mgl32.Vec2{0, 0}, ModeRotate)

	tb.Update(mgl32.Vec2{0.9, 0.2})
	tb.Update(mgl32.Vec2{0.4, 0})
	via := tb.Current()

	direct := NewTrackball(NewCamera())
	direct.BeginInteraction(mgl32.Vec2{0, 0}, ModeRotate)
	direct.Update(mgl32.Vec2{0.4, 0})

	assert.Equal(t, direct.Current(), via)
}

func TestRotateQuarterTurn(t *testing.T) {
	tb := NewTrackball(NewCamera())

	drag(tb, ModeRotate, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0})

	assertVec3(t, mgl32.Vec3{-5, 0, 0}, tb.Eye())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, tb.Up())
	assertVec3(t, mgl32.Vec3{0, 0, 0}, tb.At())
}

func TestRotatePreservesDistance(t *testing.T) {
	pointers := []mgl32.Vec2{{1, 0}, {0, 1}, {-0.3, 0.8}, {2.5, -1.7}}
	for _, p := range pointers {
		tb := NewTrackball(NewCamera())
		drag(tb, ModeRotate, mgl32.Vec2{0, 0}, p)

		assert.InDelta(t, 5, tb.Distance(), delta, "pointer %v", p)
		assert.NoError(t, tb.Current().Validate(), "pointer %v", p)
	}
}

func TestRotateScaleOption(t *testing.T) {
	tb := NewTrackball(NewCamera(), WithRotateScale(math32.Pi))

	drag(tb, ModeRotate, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0})

	assertVec3(t, mgl32.Vec3{0, 0, -5}, tb.Eye())
}

func TestZoom(t *testing.T) {
	home := NewCamera()
	tb := NewTrackball(home)

	drag(tb, ModeZoom, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 1})

	assert.InDelta(t, 1/1.2, tb.ZoomFactor(), delta)
	assert.Equal(t, home.Eye, tb.Eye())
	assert.Equal(t, home.At, tb.At())
	assert.Equal(t, home.Up, tb.Up())

	at := tb.ViewMatrix().Mul4x1(tb.At().Vec4(1))
	assert.InDelta(t, -5/1.2, at[2], delta)
}

func TestZoomCompoundsAcrossInteractions(t *testing.T) {
	tb := NewTrackball(NewCamera())

	drag(tb, ModeZoom, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 1})
	drag(tb, ModeZoom, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 1})
	assert.InDelta(t, 1/1.44, tb.ZoomFactor(), delta)

	drag(tb, ModeZoom, mgl32.Vec2{0, 0}, mgl32.Vec2{0, -2})
	assert.InDelta(t, 1, tb.ZoomFactor(), delta)
}

func TestZoomBaseOption(t *testing.T) {
	tb := NewTrackball(NewCamera(), WithZoomBase(2))

	drag(tb, ModeZoom, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 1})

	assert.InDelta(t, 0.5, tb.ZoomFactor(), delta)
}

func TestPan(t *testing.T) {
	tb := NewTrackball(NewCamera())

	drag(tb, ModePan, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0})

	step := 5 * math32.Tan(math32.Pi/3)
	assertVec3(t, mgl32.Vec3{-step, 0, 5}, tb.Eye())
	assertVec3(t, mgl32.Vec3{-step, 0, 0}, tb.At())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, tb.Up())
	assert.InDelta(t, 5, tb.Distance(), delta)
}

func TestPanVertical(t *testing.T) {
	tb := NewTrackball(NewCamera())

	drag(tb, ModePan, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0.5})

	step := 5 * math32.Tan(math32.Pi/3) * 0.5
	assertVec3(t, mgl32.Vec3{0, -step, 0}, tb.At())
	assertVec3(t, tb.Home().Dir(), tb.Dir())
}

func TestRoll(t *testing.T) {
	tb := NewTrackball(NewCamera())

	drag(tb, ModeRoll, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1})

	assertVec3(t, mgl32.Vec3{1, 0, 0}, tb.Up())
	assert.Equal(t, tb.Home().Eye, tb.Eye())
	assert.Equal(t, tb.Home().At, tb.At())
}

func TestRollFromOriginIsNoop(t *testing.T) {
	tb := NewTrackball(NewCamera())

	drag(tb, ModeRoll, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0})

	assert.Equal(t, tb.Home(), tb.Current())
}

func TestResetToHome(t *testing.T) {
	tb := NewTrackball(NewCamera())
	tb.BeginInteraction(mgl32.Vec2{0, 0}, ModeRotate)
	tb.Update(mgl32.Vec2{0.6, 0.2})

	tb.ResetToHome()

	assert.Equal(t, tb.Home(), tb.Current())
	assert.Equal(t, tb.Home(), tb.Previous())
	assert.Equal(t, ModeRotate, tb.Mode())
}

func TestRotateThenZoom(t *testing.T) {
	tb := NewTrackball(NewCamera())

	drag(tb, ModeRotate, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0})
	drag(tb, ModeZoom, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 1})

	assertVec3(t, mgl32.Vec3{-5, 0, 0}, tb.Eye())
	assert.InDelta(t, 1/1.2, tb.ZoomFactor(), delta)
	assertVec3(t, mgl32.Vec3{-5 / 1.2, 0, 0}, tb.Current().EffectiveEye())
}

func TestSetViewport(t *testing.T) {
	tb := NewTrackball(NewCamera())
	tb.BeginInteraction(mgl32.Vec2{0, 0}, ModePan)

	tb.SetViewport(1600, 800)

	assert.Equal(t, float32(2), tb.Current().AspectRatio)
	assert.Equal(t, float32(2), tb.Previous().AspectRatio)
	assert.Equal(t, float32(2), tb.Home().AspectRatio)

	tb.SetViewport(0, 600)
	assert.Equal(t, float32(2), tb.Current().AspectRatio)

	tb.ResetToHome()
	assert.Equal(t, float32(2), tb.Current().AspectRatio)
}

func TestTransformUnknownMode(t *testing.T) {
	prev := NewCamera()
	params := motionParams{rotateScale: 1, zoomBase: 1.2}

	_, ok := transform(params, ModeNone, mgl32.Vec2{1, 1}, mgl32.Vec2{}, prev)
	assert.False(t, ok)
	_, ok = transform(params, Mode(42), mgl32.Vec2{1, 1}, mgl32.Vec2{}, prev)
	assert.False(t, ok)
}

func TestTrackballConcurrentAccess(t *testing.T) {
	tb := NewTrackball(NewCamera())
	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tb.BeginInteraction(mgl32.Vec2{0, 0}, ModeRotate)
			tb.Update(mgl32.Vec2{float32(i) * 0.1, 0.3})
			_ = tb.ViewMatrix()
			tb.EndInteraction()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, ModeNone, tb.Mode())
	assert.InDelta(t, 5, tb.Distance(), delta)
}
