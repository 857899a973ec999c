package body

// BodyOption is a functional option for configuring a Body.
type BodyOption func(*bodyImpl)

// WithName sets the body's display name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - BodyOption: functional option to set the name
func WithName(name string) BodyOption {
	return func(b *bodyImpl) {
		b.cfg.Name = name
	}
}

// WithOrbit sets the body's orbit radius and orbital speed.
//
// Parameters:
//   - radius: distance from the system origin (0 for the central body)
//   - speed: orbital speed in degrees per second
//
// Returns:
//   - BodyOption: functional option to set the orbit parameters
func WithOrbit(radius, speed float32) BodyOption {
	return func(b *bodyImpl) {
		b.cfg.OrbitRadius = radius
		b.cfg.OrbitSpeed = speed
	}
}

// WithRotationSpeed sets the body's axial spin speed.
//
// Parameters:
//   - speed: spin speed in degrees per second
//
// Returns:
//   - BodyOption: functional option to set the spin speed
func WithRotationSpeed(speed float32) BodyOption {
	return func(b *bodyImpl) {
		b.cfg.RotationSpeed = speed
	}
}

// WithSize sets the body's visual scale.
//
// Parameters:
//   - size: uniform scale factor (> 0)
//
// Returns:
//   - BodyOption: functional option to set the size
func WithSize(size float32) BodyOption {
	return func(b *bodyImpl) {
		b.cfg.Size = size
	}
}

// WithMoon attaches a moon with the given orbit parameters.
//
// Parameters:
//   - distance: moon orbit radius around the parent body
//   - speed: moon orbital speed in degrees per second
//
// Returns:
//   - BodyOption: functional option to attach the moon
func WithMoon(distance, speed float32) BodyOption {
	return func(b *bodyImpl) {
		b.cfg.Moon = &MoonConfig{Distance: distance, Speed: speed}
	}
}

// WithRing attaches a ring with the given tilt and scale factors.
// Ring presence is configuration, never derived from the body's name.
//
// Parameters:
//   - tiltDegrees: ring plane tilt around the X axis
//   - scaleXZ: horizontal scale relative to the body's size
//   - scaleY: vertical squash relative to the body's size
//
// Returns:
//   - BodyOption: functional option to attach the ring
func WithRing(tiltDegrees, scaleXZ, scaleY float32) BodyOption {
	return func(b *bodyImpl) {
		b.cfg.Ring = &RingConfig{TiltDegrees: tiltDegrees, ScaleXZ: scaleXZ, ScaleY: scaleY}
	}
}

// WithTexturePath sets the path of the body's surface texture.
//
// Parameters:
//   - path: image file path resolved by the renderer
//
// Returns:
//   - BodyOption: functional option to set the texture path
func WithTexturePath(path string) BodyOption {
	return func(b *bodyImpl) {
		b.cfg.TexturePath = path
	}
}

// WithInitialAngles sets the starting orbit, rotation, and moon angles.
// Useful for scattering bodies around their orbits at session start.
//
// Parameters:
//   - orbit: initial orbit angle in degrees
//   - rotation: initial spin angle in degrees
//   - moon: initial moon orbit angle in degrees (ignored without a moon)
//
// Returns:
//   - BodyOption: functional option to set the initial angles
func WithInitialAngles(orbit, rotation, moon float32) BodyOption {
	return func(b *bodyImpl) {
		b.orbitAngle = orbit
		b.rotationAngle = rotation
		b.moonAngle = moon
	}
}
