package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithDistance sets the fixed orbit radius of the camera eye.
//
// Parameters:
//   - distance: distance from the origin (must be > 0)
//
// Returns:
//   - CameraControllerOption: functional option to set the distance
func WithDistance(distance float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.distance = distance
	}
}

// WithPitch sets the initial pitch in degrees.
//
// Parameters:
//   - degrees: initial pitch (clamped to the pitch bounds)
//
// Returns:
//   - CameraControllerOption: functional option to set the pitch
func WithPitch(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pitch = degrees
	}
}

// WithYaw sets the initial yaw in degrees.
//
// Parameters:
//   - degrees: initial yaw (wrapped into [0, 360))
//
// Returns:
//   - CameraControllerOption: functional option to set the yaw
func WithYaw(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.yaw = degrees
	}
}

// WithPitchBounds sets the minimum and maximum pitch angles.
//
// Parameters:
//   - min: minimum pitch in degrees
//   - max: maximum pitch in degrees
//
// Returns:
//   - CameraControllerOption: functional option to set pitch bounds
func WithPitchBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minPitch = min
		cc.maxPitch = max
	}
}

// WithPoleThreshold sets the |pitch| in degrees above which the up vector
// starts blending toward the Z axis.
//
// Parameters:
//   - degrees: blend threshold (must be < 90)
//
// Returns:
//   - CameraControllerOption: functional option to set the threshold
func WithPoleThreshold(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.poleThreshold = degrees
	}
}

// WithMouseSensitivity sets the mouse drag sensitivity.
//
// Parameters:
//   - sensitivity: degrees of rotation per pixel of mouse movement
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithKeyStep sets the keyboard orbit step.
//
// Parameters:
//   - degrees: rotation per keypress in degrees
//
// Returns:
//   - CameraControllerOption: functional option to set the key step
func WithKeyStep(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.keyStep = degrees
	}
}
