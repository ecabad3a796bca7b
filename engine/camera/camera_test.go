package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-4

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, mgl32.Vec3{0, 0, 5}, c.Eye)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.At)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up)
	assert.InDelta(t, 2*math32.Pi/3, c.FovY, delta)
	assert.Equal(t, float32(1), c.AspectRatio)
	assert.Equal(t, float32(0.001), c.Near)
	assert.Equal(t, float32(10), c.Far)
	assert.Equal(t, float32(1), c.ZoomFactor)
	require.NoError(t, c.Validate())
}

func TestNewCameraOptions(t *testing.T) {
	c := NewCamera(
		WithEye(mgl32.Vec3{1, 2, 3}),
		WithAt(mgl32.Vec3{0, 1, 0}),
		WithUp(mgl32.Vec3{0, 0, 1}),
		WithFovY(1),
		WithAspectRatio(1.5),
		WithNear(0.1),
		WithFar(50),
		WithZoomFactor(0.5),
	)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Eye)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.At)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, c.Up)
	assert.Equal(t, float32(1), c.FovY)
	assert.Equal(t, float32(1.5), c.AspectRatio)
	assert.Equal(t, float32(0.1), c.Near)
	assert.Equal(t, float32(50), c.Far)
	assert.Equal(t, float32(0.5), c.ZoomFactor)
}

func TestDirAndDistance(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{0, 3, 4}))

	assertVec3(t, mgl32.Vec3{0, -0.6, -0.8}, c.Dir())
	assert.InDelta(t, 5, c.Distance(), delta)
}

func TestViewMatrixPlacesTargetAtDistance(t *testing.T) {
	c := NewCamera()

	at := c.ViewMatrix().Mul4x1(c.At.Vec4(1)).Vec3()
	assertVec3(t, mgl32.Vec3{0, 0, -5}, at)

	eye := c.ViewMatrix().Mul4x1(c.Eye.Vec4(1)).Vec3()
	assertVec3(t, mgl32.Vec3{0, 0, 0}, eye)
}

func TestViewMatrixUsesEffectiveEye(t *testing.T) {
	c := NewCamera(WithZoomFactor(0.5))

	assertVec3(t, mgl32.Vec3{0, 0, 2.5}, c.EffectiveEye())
	at := c.ViewMatrix().Mul4x1(c.At.Vec4(1)).Vec3()
	assertVec3(t, mgl32.Vec3{0, 0, -2.5}, at)
}

func TestViewMatrixBasisIsOrthonormal(t *testing.T) {
	c := NewCamera(
		WithEye(mgl32.Vec3{3, 2, 1}),
		WithUp(mgl32.Vec3{0.2, 1, 0.1}),
	)
	basis := c.ViewMatrix().Mat3()

	for i := range 3 {
		row := basis.Row(i)
		assert.InDelta(t, 1, row.Len(), delta)
		for j := i + 1; j < 3; j++ {
			assert.InDelta(t, 0, row.Dot(basis.Row(j)), delta)
		}
	}
	assertVec3(t, c.Dir().Mul(-1), basis.Row(2))
}

func TestProjectionMatrixDepthRange(t *testing.T) {
	c := NewCamera()
	proj := c.ProjectionMatrix()

	nearClip := proj.Mul4x1(mgl32.Vec4{0, 0, -c.Near, 1})
	assert.InDelta(t, 0, nearClip[2]/nearClip[3], delta)

	farClip := proj.Mul4x1(mgl32.Vec4{0, 0, -c.Far, 1})
	assert.InDelta(t, 1, farClip[2]/farClip[3], delta)

	mid := proj.Mul4x1(mgl32.Vec4{0, 0, -5, 1})
	depth := mid[2] / mid[3]
	assert.Greater(t, depth, float32(0))
	assert.Less(t, depth, float32(1))
}

func TestProjectionMatrixAspect(t *testing.T) {
	c := NewCamera(WithAspectRatio(2))
	proj := c.ProjectionMatrix()

	f := 1 / math32.Tan(c.FovY/2)
	assert.InDelta(t, f/2, proj[0], delta)
	assert.InDelta(t, f, proj[5], delta)
	assert.Equal(t, float32(-1), proj[11])
}

func TestFrustumContainsTarget(t *testing.T) {
	c := NewCamera()
	f := c.Frustum()

	assert.True(t, f.ContainsPoint(c.At, 0))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, 6}, 0))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, -6}, 0))
	assert.True(t, f.ContainsSphere(mgl32.Vec3{0, 0, -5.5}, 1))
}

func TestMovingStep(t *testing.T) {
	wide := NewCamera(WithAspectRatio(2)).movingStep()
	scale := 5 * math32.Tan(math32.Pi/3)
	assert.InDelta(t, 2*scale, wide[0], delta)
	assert.InDelta(t, scale, wide[1], delta)

	tall := NewCamera(WithAspectRatio(0.5)).movingStep()
	scale = 5 * math32.Tan(math32.Pi/6)
	assert.InDelta(t, scale, tall[0], delta)
	assert.InDelta(t, 2*scale, tall[1], delta)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		options []CameraOption
		want    error
	}{
		{"zero near", []CameraOption{WithNear(0)}, ErrInvalidClipRange},
		{"near beyond far", []CameraOption{WithNear(20)}, ErrInvalidClipRange},
		{"zero aspect", []CameraOption{WithAspectRatio(0)}, ErrInvalidAspectRatio},
		{"straight fov", []CameraOption{WithFovY(math32.Pi)}, ErrInvalidFovY},
		{"negative zoom", []CameraOption{WithZoomFactor(-1)}, ErrInvalidZoomFactor},
		{"eye on target", []CameraOption{WithEye(mgl32.Vec3{})}, ErrDegenerateView},
		{"up along view", []CameraOption{WithUp(mgl32.Vec3{0, 0, 1})}, ErrDegenerateView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCamera(tt.options...).Validate()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCameraIsValueType(t *testing.T) {
	a := NewCamera()
	b := a
	b.Eye[0] = 42

	assert.Equal(t, float32(0), a.Eye[0])
}
