package meteor

import "math/rand"

// PoolOption is a functional option for configuring a Pool.
type PoolOption func(*poolImpl)

// WithSlotCount sets the fixed number of particle slots.
//
// Parameters:
//   - n: pool size (must be > 0)
//
// Returns:
//   - PoolOption: functional option to set the pool size
func WithSlotCount(n int) PoolOption {
	return func(p *poolImpl) {
		if n > 0 {
			p.slots = make([]slot, n)
		}
	}
}

// WithExitBounds sets the off-screen thresholds for the active-to-dormant
// transition: a particle exits when x > exitX or y < exitY.
//
// Parameters:
//   - exitX: right-edge threshold
//   - exitY: bottom-edge threshold
//
// Returns:
//   - PoolOption: functional option to set the exit bounds
func WithExitBounds(exitX, exitY float32) PoolOption {
	return func(p *poolImpl) {
		p.exitX = exitX
		p.exitY = exitY
	}
}

// WithRespawnDelay sets the dormant timing: the fixed base delay plus the
// maximum random jitter added on each deactivation.
//
// Parameters:
//   - base: fixed delay in seconds
//   - jitter: maximum additional random delay in seconds
//
// Returns:
//   - PoolOption: functional option to set the respawn delay
func WithRespawnDelay(base, jitter float32) PoolOption {
	return func(p *poolImpl) {
		p.baseDelay = base
		p.jitter = jitter
	}
}

// WithRand sets the random source used for spawn points, velocities, and
// delay jitter. Injecting a seeded source makes the pool fully deterministic.
//
// Parameters:
//   - rng: the random source to use
//
// Returns:
//   - PoolOption: functional option to set the random source
func WithRand(rng *rand.Rand) PoolOption {
	return func(p *poolImpl) {
		p.rng = rng
	}
}
