// Package sim owns the per-session simulation state of the visualizer: the
// celestial body set, the camera controller, the meteor pool, and the UI
// toggles that in the original program lived in free-standing globals.
package sim

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/chewxy/math32"
	"github.com/helioviz/orrery-go/engine/body"
	"github.com/helioviz/orrery-go/engine/camera"
	"github.com/helioviz/orrery-go/engine/meteor"
)

// BodyFrame is one body's contribution to a frame: its identity plus the
// placement matrices derived from its state at snapshot time.
type BodyFrame struct {
	// Name is the body's display name, used for the optional name labels.
	Name string
	// TexturePath locates the body's surface texture for the renderer.
	TexturePath string
	// OrbitRadius is carried so the orbit-circle overlay can scale the
	// unit circle without reaching back into the body set.
	OrbitRadius float32
	// Transforms holds the body's placement matrices for this frame.
	Transforms body.Transforms
}

// FrameState is an immutable value snapshot of everything the draw
// submission needs for one frame. Mutating the simulation after Snapshot
// returns does not alter a previously returned frame.
type FrameState struct {
	// Time is the simulation time the snapshot was taken at.
	Time float32
	// Bodies holds one entry per body, in catalog order.
	Bodies []BodyFrame
	// View is the camera state derived from the controller.
	View camera.ViewState
	// Meteors are the visible meteor positions, empty when disabled.
	Meteors []meteor.Particle
	// ShowOrbits indicates whether orbit circles should be drawn.
	ShowOrbits bool
	// ShowNames indicates whether body name labels should be drawn.
	ShowNames bool
}

// Simulation is the session context driving the visualizer's state. All
// animation is driven solely by the dt passed to Advance; the simulation
// never reads a clock itself.
type Simulation interface {
	// Bodies returns the simulation's bodies in catalog order.
	//
	// Returns:
	//   - []body.Body: the body set
	Bodies() []body.Body

	// Body retrieves a body by display name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the display name to look up
	//
	// Returns:
	//   - body.Body: the body or nil
	Body(name string) body.Body

	// Facts returns the educational facts table, in catalog order.
	//
	// Returns:
	//   - []body.Facts: per-body facts for the info table
	Facts() []body.Facts

	// Controller returns the camera controller. Camera input stays live
	// even while the simulation is paused.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController

	// Meteors returns the meteor pool.
	//
	// Returns:
	//   - meteor.Pool: the pool
	Meteors() meteor.Pool

	// Time returns the accumulated simulation time in seconds. Paused
	// intervals do not accumulate.
	//
	// Returns:
	//   - float32: simulation time
	Time() float32

	// Paused returns whether the simulation is paused.
	//
	// Returns:
	//   - bool: true when paused
	Paused() bool

	// SetPaused pauses or resumes the simulation. While paused, Advance
	// treats dt as zero for bodies and meteors.
	//
	// Parameters:
	//   - paused: true to pause
	SetPaused(paused bool)

	// ShowOrbits returns whether orbit circles are drawn.
	//
	// Returns:
	//   - bool: the orbit overlay toggle
	ShowOrbits() bool

	// SetShowOrbits toggles the orbit-circle overlay.
	//
	// Parameters:
	//   - show: true to draw orbit circles
	SetShowOrbits(show bool)

	// ShowNames returns whether body name labels are drawn.
	//
	// Returns:
	//   - bool: the name label toggle
	ShowNames() bool

	// SetShowNames toggles the body name labels.
	//
	// Parameters:
	//   - show: true to draw name labels
	SetShowNames(show bool)

	// MouseLook returns whether mouse input drives the camera.
	//
	// Returns:
	//   - bool: the mouse-look toggle
	MouseLook() bool

	// SetMouseLook toggles mouse-driven camera control.
	//
	// Parameters:
	//   - enabled: true to route mouse deltas to the camera
	SetMouseLook(enabled bool)

	// Advance progresses the simulation by dt seconds: body angles and
	// the meteor pool move forward, in that order. Negative dt is clamped
	// to zero and non-finite dt is ignored. While paused, bodies and
	// meteors see a dt of zero but simulation time and timers hold still.
	//
	// Parameters:
	//   - dt: elapsed wall time since the previous frame in seconds
	Advance(dt float32)

	// Snapshot derives the frame state for draw submission: every body's
	// placement matrices (computed in parallel across the worker pool),
	// the camera view, and the visible meteor set.
	//
	// Returns:
	//   - FrameState: the immutable per-frame state
	Snapshot() FrameState
}

type simulation struct {
	mu *sync.Mutex

	bodies []body.Body
	byName map[string]body.Body
	facts  []body.Facts

	controller camera.CameraController
	meteors    meteor.Pool

	simTime float32

	paused     bool
	showOrbits bool
	showNames  bool
	mouseLook  bool

	// computePool fans the per-body transform derivation out across a
	// bounded set of reusable goroutines. Workers persist across frames; a
	// WaitGroup provides the per-frame barrier.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

var _ Simulation = &simulation{}

// NewSimulation creates a Simulation from a catalog of body configurations.
// Defaults to the full solar-system catalog, a fresh camera controller, and
// a default meteor pool when the corresponding options are omitted.
//
// Parameters:
//   - options: functional options to configure the simulation
//
// Returns:
//   - Simulation: the newly created simulation
func NewSimulation(options ...SimulationOption) Simulation {
	s := &simulation{
		mu:         &sync.Mutex{},
		byName:     make(map[string]body.Body),
		showOrbits: true,
		showNames:  true,
		mouseLook:  true,
	}

	for _, option := range options {
		option(s)
	}

	if s.bodies == nil {
		s.loadCatalog(body.Catalog())
	}
	if s.controller == nil {
		s.controller = camera.NewCameraController()
	}
	if s.meteors == nil {
		s.meteors = meteor.NewPool()
	}
	if s.computeWorkers <= 0 {
		s.computeWorkers = defaultComputeWorkers()
	}
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 64, 1*time.Second)

	return s
}

// loadCatalog instantiates bodies and facts from catalog entries.
func (s *simulation) loadCatalog(entries []body.CatalogEntry) {
	s.bodies = make([]body.Body, 0, len(entries))
	s.facts = make([]body.Facts, 0, len(entries))
	for _, entry := range entries {
		b := body.NewBodyFromConfig(entry.Config)
		s.bodies = append(s.bodies, b)
		s.byName[entry.Config.Name] = b
		s.facts = append(s.facts, entry.Facts)
	}
}

func (s *simulation) Bodies() []body.Body {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]body.Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

func (s *simulation) Body(name string) body.Body {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byName[name]
}

func (s *simulation) Facts() []body.Facts {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]body.Facts, len(s.facts))
	copy(out, s.facts)
	return out
}

func (s *simulation) Controller() camera.CameraController {
	return s.controller
}

func (s *simulation) Meteors() meteor.Pool {
	return s.meteors
}

func (s *simulation) Time() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.simTime
}

func (s *simulation) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *simulation) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
}

func (s *simulation) ShowOrbits() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showOrbits
}

func (s *simulation) SetShowOrbits(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showOrbits = show
}

func (s *simulation) ShowNames() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showNames
}

func (s *simulation) SetShowNames(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showNames = show
}

func (s *simulation) MouseLook() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouseLook
}

func (s *simulation) SetMouseLook(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouseLook = enabled
}

func (s *simulation) Advance(dt float32) {
	if math32.IsNaN(dt) || math32.IsInf(dt, 0) {
		return
	}
	if dt < 0 {
		dt = 0
	}

	s.mu.Lock()
	if s.paused {
		dt = 0
	}
	s.simTime += dt
	now := s.simTime
	bodies := s.bodies
	s.mu.Unlock()

	for _, b := range bodies {
		b.Advance(dt)
	}
	s.meteors.Advance(now, dt)
}

func (s *simulation) Snapshot() FrameState {
	s.mu.Lock()
	frame := FrameState{
		Time:       s.simTime,
		Bodies:     make([]BodyFrame, len(s.bodies)),
		ShowOrbits: s.showOrbits,
		ShowNames:  s.showNames,
	}
	bodies := s.bodies
	s.mu.Unlock()

	// Fan the per-body matrix derivation out across the pool. Each task
	// writes a distinct slice element, so no locking is needed beyond the
	// WaitGroup barrier.
	var wg sync.WaitGroup
	for i, b := range bodies {
		wg.Add(1)
		idx, bCap := i, b
		s.computePool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				cfg := bCap.Config()
				frame.Bodies[idx] = BodyFrame{
					Name:        cfg.Name,
					TexturePath: cfg.TexturePath,
					OrbitRadius: cfg.OrbitRadius,
					Transforms:  bCap.Transforms(),
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	frame.View = s.controller.View()
	frame.Meteors = s.meteors.Visible()
	return frame
}
