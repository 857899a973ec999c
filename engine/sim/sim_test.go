package sim

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioviz/orrery-go/engine/body"
	"github.com/helioviz/orrery-go/engine/meteor"
)

// testCatalog is a minimal two-body catalog for focused advance tests.
func testCatalog() []body.CatalogEntry {
	return []body.CatalogEntry{
		{
			Config: body.Config{
				Name:          "inner",
				OrbitRadius:   3.5,
				OrbitSpeed:    30,
				RotationSpeed: 60,
				Size:          0.5,
			},
			Facts: body.Facts{Name: "inner"},
		},
		{
			Config: body.Config{
				Name:        "outer",
				OrbitRadius: 8,
				OrbitSpeed:  5,
				Size:        1,
				Moon:        &body.MoonConfig{Distance: 0.7, Speed: 200},
			},
			Facts: body.Facts{Name: "outer"},
		},
	}
}

func TestSimulationDefaults(t *testing.T) {
	s := NewSimulation()

	assert.Len(t, s.Bodies(), 9)
	assert.Len(t, s.Facts(), 9)
	assert.NotNil(t, s.Controller())
	assert.NotNil(t, s.Meteors())
	assert.False(t, s.Paused())
	assert.True(t, s.ShowOrbits())
	assert.True(t, s.ShowNames())
	assert.True(t, s.MouseLook())
	assert.Equal(t, float32(0), s.Time())
}

func TestSimulationBodyLookup(t *testing.T) {
	s := NewSimulation()

	earth := s.Body("Earth")
	require.NotNil(t, earth)
	assert.Equal(t, "Earth", earth.Name())

	assert.Nil(t, s.Body("Pluto"))
}

func TestSimulationAdvance(t *testing.T) {
	s := NewSimulation(WithCatalog(testCatalog()))

	s.Advance(6)
	assert.InDelta(t, 6, s.Time(), 1e-5)

	inner := s.Body("inner")
	require.NotNil(t, inner)
	assert.InDelta(t, 180, inner.OrbitAngle(), 1e-3)
	assert.InDelta(t, 0, inner.RotationAngle(), 1e-3, "a full spin wraps back to zero")

	outer := s.Body("outer")
	require.NotNil(t, outer)
	assert.InDelta(t, 30, outer.OrbitAngle(), 1e-3)
	assert.InDelta(t, 120, outer.MoonAngle(), 1e-2, "1200° of moon orbit wraps to 120°")
}

func TestSimulationAdvanceRejectsBadDt(t *testing.T) {
	s := NewSimulation(WithCatalog(testCatalog()))
	s.Advance(1)

	s.Advance(math32.NaN())
	s.Advance(math32.Inf(1))
	s.Advance(-5)

	assert.InDelta(t, 1, s.Time(), 1e-5)
	assert.InDelta(t, 30, s.Body("inner").OrbitAngle(), 1e-3)
}

func TestSimulationPause(t *testing.T) {
	pool := meteor.NewPool(
		meteor.WithRand(rand.New(rand.NewSource(1))),
		meteor.WithRespawnDelay(0.1, 0),
	)
	s := NewSimulation(WithCatalog(testCatalog()), WithMeteorPool(pool))

	s.Advance(1)
	angleBefore := s.Body("inner").OrbitAngle()
	meteorsBefore := pool.Visible()
	require.NotEmpty(t, meteorsBefore, "meteors are flying before the pause")

	s.SetPaused(true)
	require.True(t, s.Paused())
	s.Advance(1)
	s.Advance(2.5)

	assert.InDelta(t, 1, s.Time(), 1e-5, "time holds while paused")
	assert.Equal(t, angleBefore, s.Body("inner").OrbitAngle())
	assert.Equal(t, meteorsBefore, pool.Visible(), "meteors freeze in place while paused")

	s.SetPaused(false)
	s.Advance(1)
	assert.InDelta(t, 2, s.Time(), 1e-5)
	assert.NotEqual(t, angleBefore, s.Body("inner").OrbitAngle())
}

func TestSimulationToggles(t *testing.T) {
	s := NewSimulation(WithCatalog(testCatalog()))

	s.SetShowOrbits(false)
	s.SetShowNames(false)
	s.SetMouseLook(false)
	assert.False(t, s.ShowOrbits())
	assert.False(t, s.ShowNames())
	assert.False(t, s.MouseLook())

	frame := s.Snapshot()
	assert.False(t, frame.ShowOrbits)
	assert.False(t, frame.ShowNames)
}

func TestSimulationPausedOption(t *testing.T) {
	s := NewSimulation(WithCatalog(testCatalog()), WithPaused(true))

	s.Advance(5)
	assert.Equal(t, float32(0), s.Time())
}

func TestSimulationSnapshot(t *testing.T) {
	s := NewSimulation(WithCatalog(testCatalog()), WithComputeWorkers(2))
	s.Advance(6)

	frame := s.Snapshot()
	assert.InDelta(t, 6, frame.Time, 1e-5)
	require.Len(t, frame.Bodies, 2)

	inner := frame.Bodies[0]
	assert.Equal(t, "inner", inner.Name)
	assert.Equal(t, float32(3.5), inner.OrbitRadius)
	assert.Equal(t, s.Body("inner").Transforms(), inner.Transforms)

	outer := frame.Bodies[1]
	assert.Equal(t, "outer", outer.Name)
	require.NotNil(t, outer.Transforms.Moon)

	// The default controller orbits at a fixed distance from the origin.
	eye := frame.View.Eye
	dist := math32.Sqrt(eye[0]*eye[0] + eye[1]*eye[1] + eye[2]*eye[2])
	assert.InDelta(t, 22, dist, 1e-3)
}

func TestSimulationSnapshotImmutable(t *testing.T) {
	s := NewSimulation(WithCatalog(testCatalog()))
	s.Advance(1)

	frame := s.Snapshot()
	pivotBefore := frame.Bodies[0].Transforms.OrbitPivot

	s.Advance(3)

	assert.Equal(t, pivotBefore, frame.Bodies[0].Transforms.OrbitPivot,
		"a snapshot must not track later simulation state")
	assert.NotEqual(t, pivotBefore, s.Snapshot().Bodies[0].Transforms.OrbitPivot)
}

func TestSimulationSnapshotOrderStable(t *testing.T) {
	s := NewSimulation(WithCatalog(testCatalog()), WithComputeWorkers(4))

	for i := 0; i < 20; i++ {
		s.Advance(0.016)
		frame := s.Snapshot()
		require.Len(t, frame.Bodies, 2)
		assert.Equal(t, "inner", frame.Bodies[0].Name)
		assert.Equal(t, "outer", frame.Bodies[1].Name)
	}
}
