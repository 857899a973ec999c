package sim

import (
	"runtime"

	"github.com/helioviz/orrery-go/engine/body"
	"github.com/helioviz/orrery-go/engine/camera"
	"github.com/helioviz/orrery-go/engine/meteor"
)

// SimulationOption is a function that modifies simulation options during
// construction.
type SimulationOption func(*simulation)

// WithCatalog loads the simulation's body set and facts table from the given
// catalog entries instead of the default solar-system catalog.
//
// Parameters:
//   - entries: the catalog entries to instantiate
//
// Returns:
//   - SimulationOption: a function that loads the catalog
func WithCatalog(entries []body.CatalogEntry) SimulationOption {
	return func(s *simulation) {
		s.loadCatalog(entries)
	}
}

// WithController sets the camera controller. Nil values are ignored.
//
// Parameters:
//   - controller: the camera controller to use
//
// Returns:
//   - SimulationOption: a function that sets the controller
func WithController(controller camera.CameraController) SimulationOption {
	return func(s *simulation) {
		if controller != nil {
			s.controller = controller
		}
	}
}

// WithMeteorPool sets the meteor pool. Nil values are ignored.
//
// Parameters:
//   - pool: the meteor pool to use
//
// Returns:
//   - SimulationOption: a function that sets the pool
func WithMeteorPool(pool meteor.Pool) SimulationOption {
	return func(s *simulation) {
		if pool != nil {
			s.meteors = pool
		}
	}
}

// WithComputeWorkers sets the size of the snapshot worker pool. Values less
// than one fall back to the default, which leaves one logical CPU free for
// the frame loop.
//
// Parameters:
//   - workers: the number of pool workers
//
// Returns:
//   - SimulationOption: a function that sets the worker count
func WithComputeWorkers(workers int) SimulationOption {
	return func(s *simulation) {
		s.computeWorkers = workers
	}
}

// WithPaused sets the initial pause state.
//
// Parameters:
//   - paused: true to start paused
//
// Returns:
//   - SimulationOption: a function that sets the pause state
func WithPaused(paused bool) SimulationOption {
	return func(s *simulation) {
		s.paused = paused
	}
}

// defaultComputeWorkers leaves one logical CPU for the frame loop.
func defaultComputeWorkers() int {
	workers := runtime.NumCPU() - 1
	if workers < 1 {
		workers = 1
	}
	return workers
}
