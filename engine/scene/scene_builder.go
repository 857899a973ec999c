package scene

import (
	"github.com/helioviz/orrery-go/engine/camera"
	"github.com/helioviz/orrery-go/engine/renderer"
	"github.com/helioviz/orrery-go/engine/sim"
)

// SceneOption is a functional option for configuring a scene during construction.
type SceneOption func(*scene)

// WithRenderer sets the renderer the scene draws with.
//
// Parameters:
//   - r: the renderer to use
//
// Returns:
//   - SceneOption: a function that sets the renderer
func WithRenderer(r renderer.Renderer) SceneOption {
	return func(s *scene) {
		s.renderer = r
	}
}

// WithCamera sets the scene's camera.
//
// Parameters:
//   - c: the camera to use
//
// Returns:
//   - SceneOption: a function that sets the camera
func WithCamera(c camera.Camera) SceneOption {
	return func(s *scene) {
		s.camera = c
	}
}

// WithSimulation sets the simulation the scene visualizes.
//
// Parameters:
//   - simulation: the simulation to draw
//
// Returns:
//   - SceneOption: a function that sets the simulation
func WithSimulation(simulation sim.Simulation) SceneOption {
	return func(s *scene) {
		s.simulation = simulation
	}
}

// WithSphereDetail overrides the sector and stack counts of the shared
// sphere mesh. Values below the minimum tessellation (3 sectors, 2 stacks)
// are ignored.
//
// Parameters:
//   - sectors: longitudinal subdivisions
//   - stacks: latitudinal subdivisions
//
// Returns:
//   - SceneOption: a function that sets the sphere detail
func WithSphereDetail(sectors, stacks int) SceneOption {
	return func(s *scene) {
		if sectors >= 3 && stacks >= 2 {
			s.sphereSectors = sectors
			s.sphereStacks = stacks
		}
	}
}

// WithOrbitSegments overrides the segment count of the shared orbit circle.
// Values below 3 are ignored.
//
// Parameters:
//   - segments: the number of line segments per circle
//
// Returns:
//   - SceneOption: a function that sets the orbit segment count
func WithOrbitSegments(segments int) SceneOption {
	return func(s *scene) {
		if segments >= 3 {
			s.orbitSegments = segments
		}
	}
}
