package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/helioviz/orrery-go/common"
)

// cameraControllerImpl is the single implementation of CameraController.
// Angles are kept in degrees; the eye position is derived on demand from the
// spherical coordinates rather than stored.
type cameraControllerImpl struct {
	mu *sync.Mutex

	pitch float32 // degrees, clamped to [minPitch, maxPitch]
	yaw   float32 // degrees, wrapped to [0, 360)

	distance float32 // fixed orbit radius of the eye

	minPitch float32
	maxPitch float32

	// poleThreshold is the |pitch| in degrees above which the up vector
	// starts blending from +Y toward the Z axis.
	poleThreshold float32

	mouseSensitivity float32
	keyStep          float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a camera controller with zero angles and
// sensible defaults for an orbit camera around the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		pitch: 0,
		yaw:   0,

		distance: 22.0,

		minPitch: -90.0,
		maxPitch: 90.0,

		poleThreshold: 70.0,

		mouseSensitivity: 0.1,
		keyStep:          2.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.pitch = common.Clamp(cc.pitch, cc.minPitch, cc.maxPitch)
	cc.yaw = common.WrapDegrees(cc.yaw)
	return cc
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.yaw
}

func (cc *cameraControllerImpl) Distance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.distance
}

func (cc *cameraControllerImpl) SetPitch(degrees float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch = common.Clamp(degrees, cc.minPitch, cc.maxPitch)
}

func (cc *cameraControllerImpl) SetYaw(degrees float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw = common.WrapDegrees(degrees)
}

func (cc *cameraControllerImpl) ApplyDelta(pitchDelta, yawDelta float32) {
	if !isFinite(pitchDelta) || !isFinite(yawDelta) {
		return
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch = common.Clamp(cc.pitch+pitchDelta, cc.minPitch, cc.maxPitch)
	cc.yaw = common.WrapDegrees(cc.yaw + yawDelta)
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) KeyStep() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.keyStep
}

func (cc *cameraControllerImpl) View() ViewState {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	pitchRad := common.Radians(cc.pitch)
	yawRad := common.Radians(cc.yaw)

	// Spherical to Cartesian: yaw measured from +Z toward +X, pitch from
	// the horizontal plane.
	var vs ViewState
	vs.Eye = [3]float32{
		cc.distance * math32.Cos(pitchRad) * math32.Sin(yawRad),
		cc.distance * math32.Sin(pitchRad),
		cc.distance * math32.Cos(pitchRad) * math32.Cos(yawRad),
	}
	vs.Up = cc.upVector()

	common.LookAt(vs.Matrix[:],
		vs.Eye[0], vs.Eye[1], vs.Eye[2],
		0, 0, 0,
		vs.Up[0], vs.Up[1], vs.Up[2],
	)
	return vs
}

// upVector derives the pole-corrected up vector for the current pitch.
// Below the threshold it is exactly (0, 1, 0). Above it, the Y component
// ramps linearly down to 0 at ±90° while the Z component ramps up with the
// sign opposite the pitch, so the vector rolls smoothly over the pole instead
// of flipping. The result is renormalized and never degenerates: the Y and Z
// ramps cannot both be zero. Caller must hold the mutex.
func (cc *cameraControllerImpl) upVector() [3]float32 {
	absPitch := math32.Abs(cc.pitch)
	if absPitch <= cc.poleThreshold {
		return [3]float32{0, 1, 0}
	}

	span := 90.0 - cc.poleThreshold
	blend := (90.0 - absPitch) / span
	z := -(1 - blend)
	if cc.pitch < 0 {
		z = -z
	}

	invLen := 1.0 / math32.Sqrt(blend*blend+z*z)
	return [3]float32{0, blend * invLen, z * invLen}
}

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
