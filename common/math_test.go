package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyPoint transforms the point (x, y, z, 1) by a column-major matrix and
// returns the x/y/z components without perspective division.
func applyPoint(m []float32, x, y, z float32) [3]float32 {
	return [3]float32{
		m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14],
	}
}

// applyVec4 transforms (x, y, z, w) by a column-major matrix and returns the
// full homogeneous result.
func applyVec4(m []float32, x, y, z, w float32) [4]float32 {
	return [4]float32{
		m[0]*x + m[4]*y + m[8]*z + m[12]*w,
		m[1]*x + m[5]*y + m[9]*z + m[13]*w,
		m[2]*x + m[6]*y + m[10]*z + m[14]*w,
		m[3]*x + m[7]*y + m[11]*z + m[15]*w,
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{360, 0},
		{365, 5},
		{-5, 355},
		{720, 0},
		{-360, 0},
		{180, 180},
		{-725, 355},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, WrapDegrees(test.in), 1e-4, "WrapDegrees(%v)", test.in)
	}
}

func TestWrapDegreesTinyNegative(t *testing.T) {
	// A negative input close to zero must not round up to exactly 360.
	for _, deg := range []float32{-1e-7, -1e-6, -1e-5} {
		wrapped := WrapDegrees(deg)
		assert.Less(t, wrapped, float32(360), "WrapDegrees(%v)", deg)
		assert.GreaterOrEqual(t, wrapped, float32(0), "WrapDegrees(%v)", deg)
	}
	assert.Equal(t, float32(0), WrapDegrees(-1e-7))
}

func TestWrapDegreesNonNegative(t *testing.T) {
	for deg := float32(-1000); deg < 1000; deg += 17.3 {
		wrapped := WrapDegrees(deg)
		assert.GreaterOrEqual(t, wrapped, float32(0))
		assert.Less(t, wrapped, float32(360))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(-90), Clamp(-200, -90, 90))
	assert.Equal(t, float32(90), Clamp(200, -90, 90))
	assert.Equal(t, float32(45), Clamp(45, -90, 90))
	assert.Equal(t, float32(-90), Clamp(-90, -90, 90))
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math32.Pi, Radians(180), 1e-6)
	assert.InDelta(t, math32.Pi/2, Radians(90), 1e-6)
	assert.Equal(t, float32(0), Radians(0))
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)

	p := applyPoint(m, 3, -2, 7)
	assert.Equal(t, [3]float32{3, -2, 7}, p)
}

func TestMul4Identity(t *testing.T) {
	a := make([]float32, 16)
	Identity(a)
	Translate(a, a, 1, 2, 3)

	id := make([]float32, 16)
	Identity(id)

	out := make([]float32, 16)
	Mul4(out, a, id)
	assert.Equal(t, a, out)

	Mul4(out, id, a)
	assert.Equal(t, a, out)
}

func TestMul4Aliasing(t *testing.T) {
	a := make([]float32, 16)
	Identity(a)
	Translate(a, a, 5, 0, 0)

	want := make([]float32, 16)
	Mul4(want, a, a)

	// Writing the result into one of the operands must not corrupt it.
	Mul4(a, a, a)
	assert.Equal(t, want, a)
}

func TestTranslate(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	Translate(m, m, 1, -2, 3)

	p := applyPoint(m, 0, 0, 0)
	assert.InDelta(t, 1, p[0], 1e-6)
	assert.InDelta(t, -2, p[1], 1e-6)
	assert.InDelta(t, 3, p[2], 1e-6)
}

func TestRotateY(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	RotateY(m, m, 90)

	p := applyPoint(m, 1, 0, 0)
	assert.InDelta(t, 0, p[0], 1e-6)
	assert.InDelta(t, 0, p[1], 1e-6)
	assert.InDelta(t, -1, p[2], 1e-6)
}

func TestRotateX(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	RotateX(m, m, 90)

	p := applyPoint(m, 0, 1, 0)
	assert.InDelta(t, 0, p[0], 1e-6)
	assert.InDelta(t, 0, p[1], 1e-6)
	assert.InDelta(t, 1, p[2], 1e-6)
}

func TestScale(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	Scale(m, m, 2, 3, 4)

	p := applyPoint(m, 1, 1, 1)
	assert.Equal(t, [3]float32{2, 3, 4}, p)
}

func TestRotateThenTranslateOrbitFrame(t *testing.T) {
	// Rotating 180° around Y and then pushing out along local +X must land
	// the frame origin on the opposite side of the world X axis.
	m := make([]float32, 16)
	Identity(m)
	RotateY(m, m, 180)
	Translate(m, m, 3.5, 0, 0)

	p := applyPoint(m, 0, 0, 0)
	assert.InDelta(t, -3.5, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, 0, p[2], 1e-5)
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, Radians(45), 16.0/9.0, 0.1, 200)

	// A point on the near plane must map to depth 0 after the w divide, a
	// point on the far plane to depth 1.
	nearClip := applyVec4(m, 0, 0, -0.1, 1)
	assert.InDelta(t, 0, nearClip[2]/nearClip[3], 1e-5)

	farClip := applyVec4(m, 0, 0, -200, 1)
	assert.InDelta(t, 1, farClip[2]/farClip[3], 1e-5)
}

func TestLookAt(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 0, 0, 22, 0, 0, 0, 0, 1, 0)

	// The look-at target ends up straight ahead on the -Z view axis.
	origin := applyPoint(m, 0, 0, 0)
	assert.InDelta(t, 0, origin[0], 1e-5)
	assert.InDelta(t, 0, origin[1], 1e-5)
	assert.InDelta(t, -22, origin[2], 1e-5)

	// The eye itself maps to the view-space origin.
	eye := applyPoint(m, 0, 0, 22)
	assert.InDelta(t, 0, eye[0], 1e-5)
	assert.InDelta(t, 0, eye[1], 1e-5)
	assert.InDelta(t, 0, eye[2], 1e-5)
}

func TestInvert4(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	RotateY(m, m, 37)
	Translate(m, m, 1, 2, 3)
	Scale(m, m, 2, 2, 2)

	inv := make([]float32, 16)
	require.True(t, Invert4(inv, m))

	out := make([]float32, 16)
	Mul4(out, m, inv)

	id := make([]float32, 16)
	Identity(id)
	for i := range out {
		assert.InDelta(t, id[i], out[i], 1e-5, "element %d", i)
	}
}

func TestInvert4Singular(t *testing.T) {
	singular := make([]float32, 16)
	out := make([]float32, 16)
	out[3] = 42

	require.False(t, Invert4(out, singular))
	assert.Equal(t, float32(42), out[3], "singular input must leave the output untouched")
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2, 3}
	raw := SliceToBytes(data)
	require.Len(t, raw, 12)

	assert.Nil(t, SliceToBytes([]float32(nil)))
}

func TestStructToBytes(t *testing.T) {
	type packed struct {
		A [16]float32
		B [4]float32
	}
	v := packed{}
	raw := StructToBytes(&v)
	assert.Len(t, raw, 80)
}
