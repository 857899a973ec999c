package body

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// origin returns the world-space position of a placement matrix's frame
// origin, i.e. its translation column.
func origin(m [16]float32) [3]float32 {
	return [3]float32{m[12], m[13], m[14]}
}

func TestBodyAdvance(t *testing.T) {
	b := NewBodyFromConfig(Config{
		Name:          "test",
		OrbitRadius:   3.5,
		OrbitSpeed:    30,
		RotationSpeed: 45,
		Size:          0.5,
	})

	b.Advance(6)
	assert.InDelta(t, 180, b.OrbitAngle(), 1e-4)
	assert.InDelta(t, 270, b.RotationAngle(), 1e-4)
	assert.Equal(t, float32(0), b.MoonAngle(), "no moon configured")
}

func TestBodyAdvanceWraps(t *testing.T) {
	b := NewBodyFromConfig(Config{OrbitSpeed: 30, Size: 1})

	b.Advance(13)
	assert.InDelta(t, 30, b.OrbitAngle(), 1e-3)
}

func TestBodyAdvanceAccumulates(t *testing.T) {
	whole := NewBodyFromConfig(Config{OrbitSpeed: 30, Size: 1})
	split := NewBodyFromConfig(Config{OrbitSpeed: 30, Size: 1})

	whole.Advance(6)
	split.Advance(2)
	split.Advance(4)
	assert.InDelta(t, whole.OrbitAngle(), split.OrbitAngle(), 1e-3)
}

func TestBodyAdvanceRejectsBadDt(t *testing.T) {
	tests := []struct {
		name string
		dt   float32
	}{
		{"nan", math32.NaN()},
		{"positive infinity", math32.Inf(1)},
		{"negative infinity", math32.Inf(-1)},
		{"negative", -5},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := NewBodyFromConfig(Config{OrbitSpeed: 30, RotationSpeed: 60, Size: 1})
			b.Advance(1)
			before := b.OrbitAngle()

			b.Advance(test.dt)
			assert.Equal(t, before, b.OrbitAngle())
		})
	}
}

func TestBodyRetrogradeSpinStaysInRange(t *testing.T) {
	// Venus and Uranus spin with negative speeds; a tiny dt produces a small
	// negative increment that must still normalize into [0, 360).
	b := NewBodyFromConfig(Config{OrbitSpeed: -1, RotationSpeed: -4, Size: 1})
	b.Advance(1e-7)

	assert.GreaterOrEqual(t, b.OrbitAngle(), float32(0))
	assert.Less(t, b.OrbitAngle(), float32(360))
	assert.GreaterOrEqual(t, b.RotationAngle(), float32(0))
	assert.Less(t, b.RotationAngle(), float32(360))
}

func TestBodyOrbitPivotPlacement(t *testing.T) {
	b := NewBodyFromConfig(Config{OrbitRadius: 3.5, OrbitSpeed: 30, Size: 1})
	b.Advance(6) // 180°

	pivot := origin(b.Transforms().OrbitPivot)
	assert.InDelta(t, -3.5, pivot[0], 1e-4)
	assert.InDelta(t, 0, pivot[1], 1e-4)
	assert.InDelta(t, 0, pivot[2], 1e-4)
}

func TestBodyPlanetScaleAndPosition(t *testing.T) {
	b := NewBodyFromConfig(Config{OrbitRadius: 2, Size: 0.5})

	tr := b.Transforms()

	// Spin and scale never move the frame origin off the orbit pivot.
	assert.Equal(t, origin(tr.OrbitPivot), origin(tr.Planet))

	// At zero angles the planet matrix is a pure scale at the pivot.
	assert.InDelta(t, 0.5, tr.Planet[0], 1e-5)
	assert.InDelta(t, 0.5, tr.Planet[5], 1e-5)
	assert.InDelta(t, 0.5, tr.Planet[10], 1e-5)
}

func TestBodyTransformsPure(t *testing.T) {
	b := NewBody(
		WithOrbit(5, 20),
		WithRotationSpeed(50),
		WithSize(0.8),
		WithMoon(0.7, 200),
		WithRing(90, 2, 0.1),
	)
	b.Advance(1.37)

	first := b.Transforms()
	second := b.Transforms()
	assert.Equal(t, first, second)
}

func TestBodyMoonPlacement(t *testing.T) {
	b := NewBodyFromConfig(Config{
		Size: 1,
		Moon: &MoonConfig{Distance: 0.7, Speed: 200},
	})

	tr := b.Transforms()
	require.NotNil(t, tr.Moon)
	m := *tr.Moon

	// Zero angles: the moon sits at its orbit distance along +X, scaled to
	// MoonScaleFactor of the parent.
	assert.InDelta(t, 0.7, m[12], 1e-5)
	assert.InDelta(t, 0, m[13], 1e-5)
	assert.InDelta(t, 0, m[14], 1e-5)
	assert.InDelta(t, MoonScaleFactor, m[0], 1e-5)
	assert.InDelta(t, MoonScaleFactor, m[5], 1e-5)
	assert.InDelta(t, MoonScaleFactor, m[10], 1e-5)
}

func TestBodyMoonIgnoresParentSpin(t *testing.T) {
	spinning := NewBodyFromConfig(Config{
		Size:          1,
		RotationSpeed: 90,
		Moon:          &MoonConfig{Distance: 0.7},
	})
	still := NewBodyFromConfig(Config{
		Size: 1,
		Moon: &MoonConfig{Distance: 0.7},
	})

	spinning.Advance(1)
	still.Advance(1)

	require.NotNil(t, spinning.Transforms().Moon)
	assert.Equal(t, *still.Transforms().Moon, *spinning.Transforms().Moon)
}

func TestBodyRingPlacement(t *testing.T) {
	b := NewBodyFromConfig(Config{
		Size: 1,
		Ring: &RingConfig{TiltDegrees: 90, ScaleXZ: 2, ScaleY: 0.1},
	})

	tr := b.Transforms()
	require.NotNil(t, tr.Ring)
	m := *tr.Ring

	// The ring stays centered on the pivot with the local Y axis tilted
	// into +Z by the 90° tilt.
	assert.Equal(t, origin(tr.OrbitPivot), origin(m))
	assert.InDelta(t, 2, m[0], 1e-5)
	assert.InDelta(t, 0, m[5], 1e-5)
	assert.InDelta(t, 0.1, m[6], 1e-5)
}

func TestBodyRingIgnoresSpin(t *testing.T) {
	b := NewBodyFromConfig(Config{
		Size:          1,
		RotationSpeed: 123,
		Ring:          &RingConfig{TiltDegrees: 27, ScaleXZ: 2, ScaleY: 0.1},
	})

	before := *b.Transforms().Ring
	b.Advance(1)
	after := *b.Transforms().Ring
	assert.Equal(t, before, after, "ring placement depends on orbit only")
}

func TestBodyWithoutExtras(t *testing.T) {
	tr := NewBodyFromConfig(Config{Size: 1}).Transforms()
	assert.Nil(t, tr.Ring)
	assert.Nil(t, tr.Moon)
}

func TestNewBodyOptions(t *testing.T) {
	b := NewBody(
		WithName("Ringed"),
		WithOrbit(9.5, 4),
		WithRotationSpeed(28),
		WithSize(0.85),
		WithTexturePath("textures/ringed.jpg"),
		WithMoon(1.1, 150),
		WithRing(25, 1.8, 0.05),
		WithInitialAngles(10, 20, 30),
	)

	cfg := b.Config()
	assert.Equal(t, "Ringed", cfg.Name)
	assert.Equal(t, float32(9.5), cfg.OrbitRadius)
	assert.Equal(t, float32(4), cfg.OrbitSpeed)
	assert.Equal(t, float32(28), cfg.RotationSpeed)
	assert.Equal(t, float32(0.85), cfg.Size)
	assert.Equal(t, "textures/ringed.jpg", cfg.TexturePath)
	require.NotNil(t, cfg.Moon)
	assert.Equal(t, float32(1.1), cfg.Moon.Distance)
	require.NotNil(t, cfg.Ring)
	assert.Equal(t, float32(25), cfg.Ring.TiltDegrees)

	assert.Equal(t, float32(10), b.OrbitAngle())
	assert.Equal(t, float32(20), b.RotationAngle())
	assert.Equal(t, float32(30), b.MoonAngle())
}

func TestCatalog(t *testing.T) {
	entries := Catalog()
	require.Len(t, entries, 9)

	byName := make(map[string]CatalogEntry, len(entries))
	for _, entry := range entries {
		byName[entry.Config.Name] = entry
	}

	sun, ok := byName["Sun"]
	require.True(t, ok)
	assert.Equal(t, float32(0), sun.Config.OrbitRadius)
	assert.Equal(t, float32(0), sun.Config.OrbitSpeed)

	earth, ok := byName["Earth"]
	require.True(t, ok)
	assert.Greater(t, earth.Config.OrbitRadius, float32(0))
	require.NotNil(t, earth.Config.Moon, "Earth carries the moon")

	saturn, ok := byName["Saturn"]
	require.True(t, ok)
	require.NotNil(t, saturn.Config.Ring, "Saturn carries the ring")

	// Orbit radii increase monotonically with the catalog order.
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i].Config.OrbitRadius, entries[i-1].Config.OrbitRadius,
			"%s must orbit outside %s", entries[i].Config.Name, entries[i-1].Config.Name)
	}
}
