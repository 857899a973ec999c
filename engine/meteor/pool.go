// Package meteor implements the meteor-shower particle effect: a fixed pool
// of 2D particles in a normalized [-1, 1] visual plane, each cycling between
// a dormant delay and an active linear flight across the screen.
package meteor

import (
	"math/rand"
	"sync"

	"github.com/chewxy/math32"
)

// DefaultSlotCount is the size of the particle pool.
const DefaultSlotCount = 6

// Particle is a visible meteor's position snapshot for draw submission.
type Particle struct {
	X, Y float32
}

// slot holds the full state of one pool entry. A slot is either dormant
// (invisible, waiting for nextEventTime) or active (visible, moving linearly).
type slot struct {
	x, y          float32
	vx, vy        float32
	visible       bool
	nextEventTime float32
}

// Pool is the meteor particle scheduler. Slots are reused indefinitely; a
// slot that flies off screen is returned to the dormant state with a fresh
// randomized delay and respawned lazily on its next activation.
type Pool interface {
	// SlotCount returns the fixed number of slots in the pool.
	//
	// Returns:
	//   - int: the pool size
	SlotCount() int

	// Enabled returns whether the effect is globally enabled.
	//
	// Returns:
	//   - bool: true when meteors may be drawn
	Enabled() bool

	// SetEnabled toggles the effect. Disabling suppresses visibility only;
	// slot timers keep elapsing so re-enabling resumes mid-cycle.
	//
	// Parameters:
	//   - enabled: true to show meteors
	SetEnabled(enabled bool)

	// ActiveCount returns how many slots currently participate in the effect.
	//
	// Returns:
	//   - int: participating slot count
	ActiveCount() int

	// SetActiveCount limits how many slots participate, clamped to
	// [0, SlotCount]. Slots beyond the limit are suppressed from the
	// visible set but keep their timer state.
	//
	// Parameters:
	//   - n: desired participating slot count
	SetActiveCount(n int)

	// Advance runs one scheduler tick. A dormant slot whose nextEventTime
	// has passed respawns at a randomized edge point and becomes active;
	// an active slot moves by its velocity times dt and returns to dormant
	// once it exits the visible bounds, receiving a new future event time
	// without being repositioned. Negative dt is clamped to zero; a
	// non-finite now or dt is ignored.
	//
	// Parameters:
	//   - now: current simulation time in seconds
	//   - dt: elapsed time since the previous tick in seconds
	Advance(now, dt float32)

	// Visible returns position snapshots of the particles that should be
	// drawn this frame. Empty while the effect is disabled.
	//
	// Returns:
	//   - []Particle: visible meteor positions
	Visible() []Particle
}

type poolImpl struct {
	mu *sync.Mutex

	slots       []slot
	enabled     bool
	activeCount int

	// exitX and exitY define the off-screen test: a particle leaves the
	// active state when x > exitX or y < exitY. Only these two edges are
	// checked, matching the effect's down-right flight direction.
	exitX float32
	exitY float32

	baseDelay float32
	jitter    float32

	rng *rand.Rand
}

var _ Pool = &poolImpl{}

// NewPool creates a meteor pool with every slot dormant on a randomized
// initial delay.
//
// Parameters:
//   - options: functional options to configure the pool
//
// Returns:
//   - Pool: the newly created pool
func NewPool(options ...PoolOption) Pool {
	p := &poolImpl{
		mu: &sync.Mutex{},

		enabled: true,

		exitX: 1.2,
		exitY: -1.2,

		baseDelay: 2.0,
		jitter:    3.0,

		rng: rand.New(rand.NewSource(rand.Int63())),
	}

	for _, option := range options {
		option(p)
	}

	if p.slots == nil {
		p.slots = make([]slot, DefaultSlotCount)
	}
	if p.activeCount == 0 || p.activeCount > len(p.slots) {
		p.activeCount = len(p.slots)
	}

	for i := range p.slots {
		p.slots[i].nextEventTime = p.rng.Float32() * p.baseDelay
	}
	return p
}

func (p *poolImpl) SlotCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.slots)
}

func (p *poolImpl) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *poolImpl) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

func (p *poolImpl) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activeCount
}

func (p *poolImpl) SetActiveCount(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n > len(p.slots) {
		n = len(p.slots)
	}
	p.activeCount = n
}

func (p *poolImpl) Advance(now, dt float32) {
	if !isFinite(now) || !isFinite(dt) {
		return
	}
	if dt < 0 {
		dt = 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.slots {
		s := &p.slots[i]
		if !s.visible {
			if now > s.nextEventTime {
				p.respawn(s)
			}
			continue
		}

		s.x += s.vx * dt
		s.y += s.vy * dt
		if s.x > p.exitX || s.y < p.exitY {
			s.visible = false
			s.nextEventTime = now + p.baseDelay + p.rng.Float32()*p.jitter
		}
	}
}

func (p *poolImpl) Visible() []Particle {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return nil
	}

	visible := make([]Particle, 0, p.activeCount)
	for i := 0; i < p.activeCount; i++ {
		if p.slots[i].visible {
			visible = append(visible, Particle{X: p.slots[i].x, Y: p.slots[i].y})
		}
	}
	return visible
}

// respawn repositions a slot at a randomized point along the top edge,
// biased to the upper-left quadrant, with a fresh down-right velocity, and
// marks it active. Caller must hold the mutex.
func (p *poolImpl) respawn(s *slot) {
	s.x = -1.2 + p.rng.Float32()*1.4
	s.y = 1.2
	s.vx = 0.6 + p.rng.Float32()*0.6
	s.vy = -(0.6 + p.rng.Float32()*0.6)
	s.visible = true
}

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
