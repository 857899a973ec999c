package meteor

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededPool builds a pool with a fixed rng and zero respawn jitter so the
// event timeline is fully predictable.
func seededPool(seed int64, options ...PoolOption) Pool {
	base := []PoolOption{
		WithRand(rand.New(rand.NewSource(seed))),
		WithRespawnDelay(1, 0),
	}
	return NewPool(append(base, options...)...)
}

func TestPoolDefaults(t *testing.T) {
	p := NewPool()

	assert.Equal(t, DefaultSlotCount, p.SlotCount())
	assert.Equal(t, DefaultSlotCount, p.ActiveCount())
	assert.True(t, p.Enabled())
	assert.Empty(t, p.Visible(), "all slots start dormant")
}

func TestPoolSlotCountOption(t *testing.T) {
	p := NewPool(WithSlotCount(3))
	assert.Equal(t, 3, p.SlotCount())
	assert.Equal(t, 3, p.ActiveCount())
}

func TestPoolRespawnAfterDelay(t *testing.T) {
	p := seededPool(1)

	// Initial delays fall inside [0, baseDelay), so by t = 1.5 every slot
	// has fired and is flying.
	p.Advance(1.5, 0)
	visible := p.Visible()
	require.Len(t, visible, p.SlotCount())

	for _, meteor := range visible {
		assert.Equal(t, float32(1.2), meteor.Y, "meteors enter from the top edge")
		assert.GreaterOrEqual(t, meteor.X, float32(-1.2))
		assert.LessOrEqual(t, meteor.X, float32(0.2))
	}
}

func TestPoolFlightDirection(t *testing.T) {
	p := seededPool(2)
	p.Advance(1.5, 0)

	before := p.Visible()
	require.NotEmpty(t, before)

	p.Advance(1.6, 0.1)
	after := p.Visible()
	require.Len(t, after, len(before))

	for i := range after {
		assert.Greater(t, after[i].X, before[i].X, "meteors drift right")
		assert.Less(t, after[i].Y, before[i].Y, "meteors fall")
	}
}

func TestPoolExitSchedulesFutureRespawn(t *testing.T) {
	p := seededPool(3, WithSlotCount(1))

	p.Advance(1.5, 0)
	require.Len(t, p.Visible(), 1)

	// Velocities are at least 0.6 per axis, so five seconds carries any
	// meteor past the exit bounds.
	p.Advance(1.5, 5)
	assert.Empty(t, p.Visible())

	// The next event lands exactly baseDelay after the exit tick.
	p.Advance(2.4, 0)
	assert.Empty(t, p.Visible(), "still dormant before the delay elapses")

	p.Advance(2.6, 0)
	visible := p.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, float32(1.2), visible[0].Y, "respawn repositions at the top edge")
}

func TestPoolCustomExitBounds(t *testing.T) {
	p := seededPool(4, WithSlotCount(1), WithExitBounds(100, -100))

	p.Advance(1.5, 0)
	require.Len(t, p.Visible(), 1)

	// Bounds this wide keep the meteor active long past the default edge.
	p.Advance(1.5, 5)
	assert.Len(t, p.Visible(), 1)
}

func TestPoolDeterministicWithSeed(t *testing.T) {
	a := seededPool(42)
	b := seededPool(42)

	times := []float32{0.5, 1.0, 2.5, 4.0, 9.0}
	for i := 1; i < len(times); i++ {
		dt := times[i] - times[i-1]
		a.Advance(times[i], dt)
		b.Advance(times[i], dt)
		assert.Equal(t, a.Visible(), b.Visible(), "tick at t=%v", times[i])
	}
}

func TestPoolDisableSuppressesVisibilityOnly(t *testing.T) {
	p := seededPool(5)

	p.SetEnabled(false)
	assert.False(t, p.Enabled())

	// Timers keep elapsing while disabled, so the slots respawn silently.
	p.Advance(1.5, 0)
	assert.Nil(t, p.Visible())

	// Re-enabling reveals the already-active meteors mid-cycle.
	p.SetEnabled(true)
	assert.Len(t, p.Visible(), p.SlotCount())
}

func TestPoolActiveCountLimitsVisible(t *testing.T) {
	p := seededPool(6)
	p.Advance(1.5, 0)
	require.Len(t, p.Visible(), p.SlotCount())

	p.SetActiveCount(2)
	assert.Equal(t, 2, p.ActiveCount())
	assert.Len(t, p.Visible(), 2)

	p.SetActiveCount(p.SlotCount())
	assert.Len(t, p.Visible(), p.SlotCount(), "suppressed slots keep their state")
}

func TestPoolActiveCountClamped(t *testing.T) {
	p := NewPool()

	p.SetActiveCount(-3)
	assert.Equal(t, 0, p.ActiveCount())

	p.SetActiveCount(999)
	assert.Equal(t, DefaultSlotCount, p.ActiveCount())
}

func TestPoolAdvanceRejectsBadInput(t *testing.T) {
	p := seededPool(7)
	p.Advance(1.5, 0)
	before := p.Visible()
	require.NotEmpty(t, before)

	p.Advance(math32.NaN(), 1)
	p.Advance(2, math32.NaN())
	p.Advance(math32.Inf(1), 1)
	p.Advance(2, math32.Inf(-1))
	assert.Equal(t, before, p.Visible(), "non-finite ticks are ignored")

	p.Advance(1.5, -10)
	assert.Equal(t, before, p.Visible(), "negative dt clamps to zero")
}
