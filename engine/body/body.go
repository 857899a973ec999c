// Package body models the orbital and rotational state of the celestial
// bodies in the visualizer and derives their hierarchical placement matrices.
package body

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/helioviz/orrery-go/common"
)

// MoonScaleFactor is the moon's visual scale relative to its parent body.
const MoonScaleFactor = 0.3

// MoonConfig holds the fixed orbital parameters of a body's moon.
type MoonConfig struct {
	// Distance is the moon's orbit radius around its parent body.
	Distance float32
	// Speed is the moon's orbital speed in degrees per second.
	Speed float32
}

// RingConfig holds the fixed visual parameters of a body's ring. The ring is
// rendered as a squashed sphere tilted once around the X axis relative to the
// body's orbit frame; it never inherits the body's own spin.
type RingConfig struct {
	// TiltDegrees is the ring plane's tilt around the X axis.
	TiltDegrees float32
	// ScaleXZ is the ring's horizontal scale relative to the body's size.
	ScaleXZ float32
	// ScaleY is the ring's vertical squash relative to the body's size.
	ScaleY float32
}

// Config holds a body's fixed parameters, immutable after construction.
// Mutable per-frame angle state lives in the Body, not here.
type Config struct {
	// Name is the body's display name.
	Name string
	// OrbitRadius is the distance from the system origin, >= 0.
	// The Sun uses 0 and goes through the same transform pipeline.
	OrbitRadius float32
	// OrbitSpeed is the orbital angular speed in degrees per second.
	OrbitSpeed float32
	// RotationSpeed is the axial spin speed in degrees per second.
	RotationSpeed float32
	// Size is the body's visual scale, > 0.
	Size float32
	// Moon is the optional moon configuration, nil when the body has none.
	Moon *MoonConfig
	// Ring is the optional ring configuration, nil when the body has none.
	Ring *RingConfig
	// TexturePath locates the body's surface texture. The core never
	// interprets the image; the renderer resolves it to a GPU handle.
	TexturePath string
}

// Transforms holds the placement matrices derived from a body's current
// state, all column-major. Ring and Moon are nil when the body has neither.
type Transforms struct {
	// OrbitPivot is the coordinate frame centered on the body's current
	// orbital position, oriented so outward is the local +X axis.
	OrbitPivot [16]float32
	// Planet places the body itself: orbit pivot, own spin, then scale.
	Planet [16]float32
	// Ring places the ring disk, tilted once and held fixed relative to
	// the orbit frame.
	Ring *[16]float32
	// Moon places the moon, orbiting the pivot independently of the
	// parent's spin at MoonScaleFactor of the parent's scale.
	Moon *[16]float32
}

// Body is a celestial body whose angles advance with simulation time.
type Body interface {
	// Config returns the body's fixed parameters.
	//
	// Returns:
	//   - Config: the immutable configuration
	Config() Config

	// Name returns the body's display name.
	//
	// Returns:
	//   - string: the display name
	Name() string

	// OrbitAngle returns the current orbit angle in [0, 360).
	//
	// Returns:
	//   - float32: orbit angle in degrees
	OrbitAngle() float32

	// RotationAngle returns the current axial spin angle in [0, 360).
	//
	// Returns:
	//   - float32: rotation angle in degrees
	RotationAngle() float32

	// MoonAngle returns the moon's current orbit angle in [0, 360).
	// Always 0 for bodies without a moon.
	//
	// Returns:
	//   - float32: moon orbit angle in degrees
	MoonAngle() float32

	// Advance progresses the orbit, spin, and moon angles by their speeds
	// times dt, normalizing each into [0, 360). Negative dt is clamped to
	// zero and a non-finite dt is ignored entirely, so out-of-range input
	// can never leak NaN or a negative angle into the transform pipeline.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Advance(dt float32)

	// Transforms derives the placement matrices for the body's current
	// state. It is deterministic and pure: calling it twice without an
	// intervening Advance yields identical matrices.
	//
	// Returns:
	//   - Transforms: orbit pivot, planet, and optional ring/moon matrices
	Transforms() Transforms
}

type bodyImpl struct {
	mu *sync.Mutex

	cfg Config

	orbitAngle    float32
	rotationAngle float32
	moonAngle     float32
}

var _ Body = &bodyImpl{}

// NewBody creates a Body from the provided options with all angles at zero.
//
// Parameters:
//   - options: functional options to configure the body
//
// Returns:
//   - Body: the newly created body
func NewBody(options ...BodyOption) Body {
	b := &bodyImpl{
		mu: &sync.Mutex{},
		cfg: Config{
			Size: 1,
		},
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// NewBodyFromConfig creates a Body directly from a fixed configuration.
// This is the constructor the data-driven catalog uses.
//
// Parameters:
//   - cfg: the body's fixed parameters
//
// Returns:
//   - Body: the newly created body with zero angles
func NewBodyFromConfig(cfg Config) Body {
	return &bodyImpl{
		mu:  &sync.Mutex{},
		cfg: cfg,
	}
}

func (b *bodyImpl) Config() Config {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

func (b *bodyImpl) Name() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.Name
}

func (b *bodyImpl) OrbitAngle() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.orbitAngle
}

func (b *bodyImpl) RotationAngle() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rotationAngle
}

func (b *bodyImpl) MoonAngle() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.moonAngle
}

func (b *bodyImpl) Advance(dt float32) {
	if math32.IsNaN(dt) || math32.IsInf(dt, 0) {
		return
	}
	if dt < 0 {
		dt = 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.orbitAngle = common.WrapDegrees(b.orbitAngle + b.cfg.OrbitSpeed*dt)
	b.rotationAngle = common.WrapDegrees(b.rotationAngle + b.cfg.RotationSpeed*dt)
	if b.cfg.Moon != nil {
		b.moonAngle = common.WrapDegrees(b.moonAngle + b.cfg.Moon.Speed*dt)
	}
}

func (b *bodyImpl) Transforms() Transforms {
	b.mu.Lock()
	defer b.mu.Unlock()

	var t Transforms

	// Orbit pivot: rotate around Y by the orbit angle, then push out along
	// the local +X axis. A zero orbit radius degenerates to a pure rotation,
	// which needs no special case.
	common.Identity(t.OrbitPivot[:])
	common.RotateY(t.OrbitPivot[:], t.OrbitPivot[:], b.orbitAngle)
	common.Translate(t.OrbitPivot[:], t.OrbitPivot[:], b.cfg.OrbitRadius, 0, 0)

	// The body's own spin applies before its own scale, inside the orbit frame.
	t.Planet = t.OrbitPivot
	common.RotateY(t.Planet[:], t.Planet[:], b.rotationAngle)
	common.Scale(t.Planet[:], t.Planet[:], b.cfg.Size, b.cfg.Size, b.cfg.Size)

	if ring := b.cfg.Ring; ring != nil {
		m := t.OrbitPivot
		common.RotateX(m[:], m[:], ring.TiltDegrees)
		common.Scale(m[:], m[:], b.cfg.Size*ring.ScaleXZ, b.cfg.Size*ring.ScaleY, b.cfg.Size*ring.ScaleXZ)
		t.Ring = &m
	}

	if moon := b.cfg.Moon; moon != nil {
		m := t.OrbitPivot
		common.RotateY(m[:], m[:], b.moonAngle)
		common.Translate(m[:], m[:], moon.Distance, 0, 0)
		moonSize := b.cfg.Size * MoonScaleFactor
		common.Scale(m[:], m[:], moonSize, moonSize, moonSize)
		t.Moon = &m
	}

	return t
}
