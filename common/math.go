package common

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Perspective creates a right-handed perspective projection matrix that maps view-space
// depth [-near, -far] to clip depth [0, 1], the WebGPU convention.
// mgl32.Perspective targets OpenGL's [-1, 1] depth range and cannot be used directly.
// Near equal to far yields Inf/NaN entries; callers validate parameters beforehand.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / math32.Tan(fovY*0.5)
	depth := far - near

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = -far / depth
	out[11] = -1.0
	out[14] = -(far * near) / depth
	return out
}

// Lerp3 linearly interpolates between a (t = 0) and b (t = 1). Values of t outside
// [0, 1] extrapolate along the same line.
//
// Parameters:
//   - a: start point
//   - b: end point
//   - t: interpolation factor
//
// Returns:
//   - mgl32.Vec3: a + (b - a) * t
func Lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// OrientedAngle returns the signed angle in radians that rotates direction from onto
// direction to, measured counter-clockwise around +Z. Both vectors are normalized first;
// the result lies in [-π, π]. A zero-length input yields NaN.
//
// Parameters:
//   - from: reference direction
//   - to: target direction
//
// Returns:
//   - float32: signed rotation angle in radians
func OrientedAngle(from, to mgl32.Vec2) float32 {
	a := from.Normalize()
	b := to.Normalize()
	cross := a[0]*b[1] - a[1]*b[0]
	return math32.Atan2(cross, a.Dot(b))
}

// DirectionsParallel reports whether a and b point along the same line (either sense)
// within the given tolerance on the sine of the angle between them.
//
// Parameters:
//   - a, b: direction vectors (need not be unit length)
//   - tolerance: maximum |sin| of the enclosed angle treated as parallel
//
// Returns:
//   - bool: true if the vectors are parallel or either one is zero
func DirectionsParallel(a, b mgl32.Vec3, tolerance float32) bool {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return true
	}
	return a.Cross(b).Len()/(la*lb) <= tolerance
}
