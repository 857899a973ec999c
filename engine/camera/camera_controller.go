package camera

// ViewState is the per-frame output of a CameraController: the derived eye
// position, the pole-corrected up vector, and the resulting view matrix
// (column-major).
type ViewState struct {
	Eye    [3]float32
	Up     [3]float32
	Matrix [16]float32
}

// CameraController maintains a spherical orbit camera around the origin,
// driven by accumulated pitch/yaw input deltas. Pitch is clamped to a
// configured symmetric range; yaw wraps freely through a full rotation.
type CameraController interface {
	// Pitch returns the current pitch in degrees, always within the
	// configured [minPitch, maxPitch] range.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// Yaw returns the current yaw in degrees, always in [0, 360).
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Distance returns the fixed radius of the sphere the eye travels on.
	//
	// Returns:
	//   - float32: distance from the origin
	Distance() float32

	// SetPitch sets the pitch, clamping it into the configured range.
	//
	// Parameters:
	//   - degrees: desired pitch in degrees
	SetPitch(degrees float32)

	// SetYaw sets the yaw, wrapping it into [0, 360).
	//
	// Parameters:
	//   - degrees: desired yaw in degrees
	SetYaw(degrees float32)

	// ApplyDelta accumulates input deltas: pitch is clamped after the
	// addition, yaw is wrapped. Non-finite deltas are ignored so corrupt
	// input events can never propagate NaN into the view transform.
	//
	// Parameters:
	//   - pitchDelta: pitch change in degrees
	//   - yawDelta: yaw change in degrees
	ApplyDelta(pitchDelta, yawDelta float32)

	// MouseSensitivity returns the degrees-per-pixel multiplier applied to
	// mouse movement before it reaches ApplyDelta.
	//
	// Returns:
	//   - float32: mouse sensitivity
	MouseSensitivity() float32

	// KeyStep returns the per-keypress delta in degrees for keyboard orbit.
	//
	// Returns:
	//   - float32: keyboard step in degrees
	KeyStep() float32

	// View derives the current eye position on the orbit sphere, the up
	// vector (blended toward the Z axis near the poles to avoid a visual
	// flip), and the lookAt view matrix targeting the origin.
	//
	// Returns:
	//   - ViewState: eye, up, and view matrix for the current angles
	View() ViewState
}
