package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerDefaults(t *testing.T) {
	cc := NewCameraController()

	assert.Equal(t, float32(0), cc.Pitch())
	assert.Equal(t, float32(0), cc.Yaw())
	assert.Equal(t, float32(22), cc.Distance())
	assert.Equal(t, float32(0.1), cc.MouseSensitivity())
	assert.Equal(t, float32(2), cc.KeyStep())
}

func TestControllerOptionsNormalized(t *testing.T) {
	cc := NewCameraController(
		WithPitch(150),
		WithYaw(-10),
		WithDistance(5),
	)

	assert.Equal(t, float32(90), cc.Pitch(), "initial pitch clamps to the bounds")
	assert.InDelta(t, 350, cc.Yaw(), 1e-4, "initial yaw wraps into [0, 360)")
	assert.Equal(t, float32(5), cc.Distance())
}

func TestApplyDeltaClampsPitch(t *testing.T) {
	cc := NewCameraController()

	cc.ApplyDelta(200, 0)
	assert.Equal(t, float32(90), cc.Pitch())

	cc.ApplyDelta(-500, 0)
	assert.Equal(t, float32(-90), cc.Pitch())
}

func TestApplyDeltaWrapsYaw(t *testing.T) {
	cc := NewCameraController()

	cc.ApplyDelta(0, 370)
	assert.InDelta(t, 10, cc.Yaw(), 1e-4)

	cc.ApplyDelta(0, -40)
	assert.InDelta(t, 330, cc.Yaw(), 1e-4)
}

func TestApplyDeltaIgnoresNonFinite(t *testing.T) {
	nan := math32.NaN()
	inf := math32.Inf(1)

	cc := NewCameraController(WithPitch(30), WithYaw(40))

	cc.ApplyDelta(nan, 1)
	cc.ApplyDelta(1, nan)
	cc.ApplyDelta(inf, 0)
	cc.ApplyDelta(0, -inf)

	assert.Equal(t, float32(30), cc.Pitch())
	assert.Equal(t, float32(40), cc.Yaw())
}

func TestSetPitchAndYaw(t *testing.T) {
	cc := NewCameraController()

	cc.SetPitch(-135)
	assert.Equal(t, float32(-90), cc.Pitch())

	cc.SetYaw(725)
	assert.InDelta(t, 5, cc.Yaw(), 1e-3)
}

func TestViewEyePlacement(t *testing.T) {
	tests := []struct {
		name       string
		pitch, yaw float32
		wantEye    [3]float32
	}{
		{"origin angles", 0, 0, [3]float32{0, 0, 22}},
		{"quarter turn", 0, 90, [3]float32{22, 0, 0}},
		{"half turn", 0, 180, [3]float32{0, 0, -22}},
		{"straight up", 90, 0, [3]float32{0, 22, 0}},
		{"straight down", -90, 0, [3]float32{0, -22, 0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cc := NewCameraController(WithPitch(test.pitch), WithYaw(test.yaw))
			vs := cc.View()
			assert.InDelta(t, test.wantEye[0], vs.Eye[0], 1e-3)
			assert.InDelta(t, test.wantEye[1], vs.Eye[1], 1e-3)
			assert.InDelta(t, test.wantEye[2], vs.Eye[2], 1e-3)
		})
	}
}

func TestViewEyeDistance(t *testing.T) {
	cc := NewCameraController(WithPitch(33), WithYaw(217))
	vs := cc.View()

	dist := math32.Sqrt(vs.Eye[0]*vs.Eye[0] + vs.Eye[1]*vs.Eye[1] + vs.Eye[2]*vs.Eye[2])
	assert.InDelta(t, 22, dist, 1e-3)
}

func TestUpVectorBelowThreshold(t *testing.T) {
	for _, pitch := range []float32{0, 25, -45, 70, -70} {
		cc := NewCameraController(WithPitch(pitch))
		vs := cc.View()
		assert.Equal(t, [3]float32{0, 1, 0}, vs.Up, "pitch %v", pitch)
	}
}

func TestUpVectorBlendsAboveThreshold(t *testing.T) {
	cc := NewCameraController(WithPitch(80))
	vs := cc.View()

	// Halfway through the blend band the up vector has tipped toward -Z
	// but not collapsed, and stays unit length.
	assert.Equal(t, float32(0), vs.Up[0])
	assert.Greater(t, vs.Up[1], float32(0))
	assert.Less(t, vs.Up[2], float32(0))

	length := math32.Sqrt(vs.Up[1]*vs.Up[1] + vs.Up[2]*vs.Up[2])
	assert.InDelta(t, 1, length, 1e-5)
}

func TestUpVectorAtPoles(t *testing.T) {
	top := NewCameraController(WithPitch(90)).View()
	assert.InDelta(t, 0, top.Up[1], 1e-5)
	assert.InDelta(t, -1, top.Up[2], 1e-5)

	bottom := NewCameraController(WithPitch(-90)).View()
	assert.InDelta(t, 0, bottom.Up[1], 1e-5)
	assert.InDelta(t, 1, bottom.Up[2], 1e-5)
}

func TestViewMatrixFiniteAtPoles(t *testing.T) {
	for _, pitch := range []float32{90, -90, 89.5, -89.5} {
		cc := NewCameraController(WithPitch(pitch))
		vs := cc.View()
		for i, v := range vs.Matrix {
			require.False(t, math32.IsNaN(v) || math32.IsInf(v, 0),
				"pitch %v produced non-finite matrix element %d", pitch, i)
		}
	}
}

func TestCustomPitchBounds(t *testing.T) {
	cc := NewCameraController(WithPitchBounds(-45, 45))

	cc.ApplyDelta(100, 0)
	assert.Equal(t, float32(45), cc.Pitch())

	cc.ApplyDelta(-100, 0)
	assert.Equal(t, float32(-45), cc.Pitch())
}
