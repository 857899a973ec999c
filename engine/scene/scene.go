// Package scene assembles the GPU side of the solar system: it uploads the
// shared sphere and orbit meshes, loads body textures, owns one ResourceSet
// per drawable, and turns a sim.FrameState into draw calls each frame.
package scene

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/helioviz/orrery-go/common"
	"github.com/helioviz/orrery-go/engine/camera"
	"github.com/helioviz/orrery-go/engine/geometry"
	"github.com/helioviz/orrery-go/engine/renderer"
	"github.com/helioviz/orrery-go/engine/renderer/binding"
	"github.com/helioviz/orrery-go/engine/renderer/pipeline"
	"github.com/helioviz/orrery-go/engine/sim"
)

// Pipeline cache keys used by the scene.
const (
	meshPipelineKey       = "solar-mesh"
	backgroundPipelineKey = "solar-background"
	orbitPipelineKey      = "solar-orbit"
	meteorPipelineKey     = "solar-meteor"
)

// backgroundTexturePath is the star field wrapped around the whole scene.
const backgroundTexturePath = "textures/stars.jpg"

// bodyDrawables groups the resource sets belonging to one celestial body.
type bodyDrawables struct {
	planet binding.ResourceSet
	ring   binding.ResourceSet
	moon   binding.ResourceSet
	orbit  binding.ResourceSet
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.Mutex

	active     bool
	renderer   renderer.Renderer
	camera     camera.Camera
	simulation sim.Simulation

	sphereSectors int
	sphereStacks  int
	orbitSegments int

	// sphere mesh data shared by every spherical drawable; each ResourceSet
	// gets its own GPU buffers but the CPU-side mesh is generated once.
	sphereVertices []float32
	sphereIndices  []uint32
	orbitVertices  []float32

	bodies     map[string]*bodyDrawables
	background binding.ResourceSet
	meteors    []binding.ResourceSet

	initialized bool
}

// Scene owns the renderable representation of a simulation: pipelines,
// meshes, textures, and per-drawable resource sets. DrawFrame consumes an
// immutable FrameState so simulation updates never race the draw path.
type Scene interface {
	// Renderer returns the renderer this scene draws with.
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	Renderer() renderer.Renderer

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Simulation returns the simulation this scene visualizes.
	//
	// Returns:
	//   - sim.Simulation: the simulation
	Simulation() sim.Simulation

	// Active returns whether the scene should be drawn.
	//
	// Returns:
	//   - bool: true when active
	Active() bool

	// SetActive marks the scene active or inactive.
	//
	// Parameters:
	//   - active: true to draw the scene each frame
	SetActive(active bool)

	// Init registers the scene's pipelines and uploads all GPU resources:
	// the shared sphere and orbit meshes, one resource set per body drawable,
	// the background star sphere, and the meteor pool slots. Textures that
	// fail to load fall back to a placeholder. Must be called once before
	// DrawFrame.
	//
	// Returns:
	//   - error: an error if any GPU resource could not be created
	Init() error

	// DrawFrame writes per-drawable uniforms from the frame state and encodes
	// all draw calls between the renderer's BeginFrame and EndFrame.
	//
	// Parameters:
	//   - frame: the frame state snapshot to draw
	//
	// Returns:
	//   - error: an error if the frame could not be started
	DrawFrame(frame sim.FrameState) error

	// Release frees all GPU resources held by the scene.
	Release()
}

var _ Scene = &scene{}

// NewScene creates a Scene tying a simulation, camera, and renderer together.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneOption) Scene {
	s := &scene{
		mu:            &sync.Mutex{},
		active:        true,
		sphereSectors: 36,
		sphereStacks:  18,
		orbitSegments: 100,
		bodies:        make(map[string]*bodyDrawables),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Renderer() renderer.Renderer {
	return s.renderer
}

func (s *scene) Camera() camera.Camera {
	return s.camera
}

func (s *scene) Simulation() sim.Simulation {
	return s.simulation
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if s.renderer == nil || s.simulation == nil || s.camera == nil {
		return fmt.Errorf("scene requires a renderer, a camera, and a simulation")
	}

	if err := s.registerPipelines(); err != nil {
		return err
	}

	s.sphereVertices, s.sphereIndices = geometry.GenerateSphere(s.sphereSectors, s.sphereStacks, 1.0)
	s.orbitVertices = geometry.GenerateOrbitCircle(s.orbitSegments)

	for _, b := range s.simulation.Bodies() {
		cfg := b.Config()
		drawables := &bodyDrawables{}

		planet, err := s.initSphereSet(cfg.Name, cfg.TexturePath)
		if err != nil {
			return err
		}
		drawables.planet = planet

		if cfg.Ring != nil {
			ring, ringErr := s.initSphereSet(cfg.Name+" Ring", cfg.TexturePath)
			if ringErr != nil {
				return ringErr
			}
			drawables.ring = ring
		}

		if cfg.Moon != nil {
			moon, moonErr := s.initSphereSet(cfg.Name+" Moon", "textures/moon.jpg")
			if moonErr != nil {
				return moonErr
			}
			drawables.moon = moon
		}

		// The sun sits at the origin and has no orbit to trace.
		if cfg.OrbitRadius > 0 {
			orbit, orbitErr := s.initOrbitSet(cfg.Name + " Orbit")
			if orbitErr != nil {
				return orbitErr
			}
			drawables.orbit = orbit
		}

		s.bodies[cfg.Name] = drawables
	}

	background, err := s.initSphereSet("Background", backgroundTexturePath)
	if err != nil {
		return err
	}
	s.background = background

	slotCount := s.simulation.Meteors().SlotCount()
	s.meteors = make([]binding.ResourceSet, slotCount)
	for i := range s.meteors {
		meteor, meteorErr := s.initSphereSet(fmt.Sprintf("Meteor %d", i), "")
		if meteorErr != nil {
			return meteorErr
		}
		s.meteors[i] = meteor
	}

	s.initialized = true
	return nil
}

// registerPipelines creates the four render pipelines the scene draws with.
func (s *scene) registerPipelines() error {
	return s.renderer.RegisterPipelines(
		pipeline.NewPipeline(meshPipelineKey,
			pipeline.WithSource(renderer.MeshShaderWGSL),
			pipeline.WithVertexLayouts(renderer.MeshVertexLayout()),
			pipeline.WithBindGroupLayouts(renderer.MeshBindGroupLayout()),
			pipeline.WithCullMode(wgpu.CullModeBack),
		),
		// The background sphere is seen from the inside: front-face culling
		// and no depth writes so everything else draws over it.
		pipeline.NewPipeline(backgroundPipelineKey,
			pipeline.WithSource(renderer.MeshShaderWGSL),
			pipeline.WithVertexLayouts(renderer.MeshVertexLayout()),
			pipeline.WithBindGroupLayouts(renderer.MeshBindGroupLayout()),
			pipeline.WithCullMode(wgpu.CullModeFront),
			pipeline.WithDepthWrite(false),
			pipeline.WithDepthTest(false),
		),
		pipeline.NewPipeline(orbitPipelineKey,
			pipeline.WithSource(renderer.LineShaderWGSL),
			pipeline.WithVertexLayouts(renderer.LineVertexLayout()),
			pipeline.WithBindGroupLayouts(renderer.LineBindGroupLayout()),
			pipeline.WithTopology(wgpu.PrimitiveTopologyLineStrip),
		),
		// Meteors are drawn directly in clip space after the world, so depth
		// testing is off.
		pipeline.NewPipeline(meteorPipelineKey,
			pipeline.WithSource(renderer.MeshShaderWGSL),
			pipeline.WithVertexLayouts(renderer.MeshVertexLayout()),
			pipeline.WithBindGroupLayouts(renderer.MeshBindGroupLayout()),
			pipeline.WithDepthTest(false),
			pipeline.WithDepthWrite(false),
		),
	)
}

// initSphereSet uploads the shared sphere mesh plus a texture, sampler, and
// uniform buffer into a fresh ResourceSet. An empty texturePath yields the
// placeholder texture.
func (s *scene) initSphereSet(label, texturePath string) (binding.ResourceSet, error) {
	set := binding.NewResourceSet(label)

	if err := s.renderer.InitMeshBuffers(
		set,
		common.SliceToBytes(s.sphereVertices),
		common.SliceToBytes(s.sphereIndices),
		len(s.sphereIndices),
	); err != nil {
		return nil, err
	}

	var staging common.TextureStagingData
	if texturePath == "" {
		staging = common.PlaceholderTexture()
	} else {
		staging = common.LoadTextureOrPlaceholder(texturePath)
	}
	if err := s.renderer.InitTextureView(set, 1, staging); err != nil {
		return nil, err
	}
	if err := s.renderer.InitSampler(set, 2, common.SamplerStagingData{}); err != nil {
		return nil, err
	}
	if err := s.renderer.InitBindGroup(set, renderer.MeshBindGroupLayout(), nil); err != nil {
		return nil, err
	}
	return set, nil
}

// initOrbitSet uploads the shared orbit circle as a non-indexed line strip.
func (s *scene) initOrbitSet(label string) (binding.ResourceSet, error) {
	set := binding.NewResourceSet(label)

	if err := s.renderer.InitMeshBuffers(set, common.SliceToBytes(s.orbitVertices), nil, 0); err != nil {
		return nil, err
	}
	set.SetVertexCount(len(s.orbitVertices) / geometry.OrbitVertexStride)

	if err := s.renderer.InitBindGroup(set, renderer.LineBindGroupLayout(), nil); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *scene) DrawFrame(frame sim.FrameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return fmt.Errorf("scene not initialized, call Init first")
	}

	view := frame.View.Matrix
	proj := s.camera.ProjectionMatrix()

	writes := make([]binding.BufferWrite, 0, 4*len(frame.Bodies)+1+len(s.meteors))

	// Background follows the camera eye so the star sphere never clips.
	var backgroundModel [16]float32
	common.Identity(backgroundModel[:])
	common.Translate(backgroundModel[:], backgroundModel[:], frame.View.Eye[0], frame.View.Eye[1], frame.View.Eye[2])
	common.Scale(backgroundModel[:], backgroundModel[:], 60, 60, 60)
	writes = append(writes, s.uniformWrite(s.background, backgroundModel, view, proj, [4]float32{1, 1, 1, 1}, true))

	for _, bf := range frame.Bodies {
		drawables := s.bodies[bf.Name]
		if drawables == nil {
			continue
		}

		// The sun is the light source, so it renders unlit.
		unlit := bf.OrbitRadius == 0
		writes = append(writes, s.uniformWrite(drawables.planet, bf.Transforms.Planet, view, proj, [4]float32{1, 1, 1, 1}, unlit))

		if drawables.ring != nil && bf.Transforms.Ring != nil {
			writes = append(writes, s.uniformWrite(drawables.ring, *bf.Transforms.Ring, view, proj, [4]float32{0.9, 0.8, 0.6, 1}, false))
		}
		if drawables.moon != nil && bf.Transforms.Moon != nil {
			writes = append(writes, s.uniformWrite(drawables.moon, *bf.Transforms.Moon, view, proj, [4]float32{1, 1, 1, 1}, false))
		}
		if drawables.orbit != nil && frame.ShowOrbits {
			var orbitModel [16]float32
			common.Identity(orbitModel[:])
			common.Scale(orbitModel[:], orbitModel[:], bf.OrbitRadius, 1, bf.OrbitRadius)
			writes = append(writes, s.uniformWrite(drawables.orbit, orbitModel, view, proj, [4]float32{0.35, 0.35, 0.4, 1}, true))
		}
	}

	// Meteors live in clip space: positions from the pool map directly to
	// x/y with identity view and projection.
	var identity [16]float32
	common.Identity(identity[:])
	for i, particle := range frame.Meteors {
		if i >= len(s.meteors) {
			break
		}
		var meteorModel [16]float32
		common.Identity(meteorModel[:])
		common.Translate(meteorModel[:], meteorModel[:], particle.X, particle.Y, 0)
		common.Scale(meteorModel[:], meteorModel[:], 0.012, 0.012, 0.012)
		writes = append(writes, s.uniformWrite(s.meteors[i], meteorModel, identity, identity, [4]float32{1, 0.95, 0.8, 1}, true))
	}

	s.renderer.WriteBuffers(writes)

	if err := s.renderer.BeginFrame(); err != nil {
		return err
	}

	if err := s.renderer.DrawCall(backgroundPipelineKey, s.background, 1); err != nil {
		return fmt.Errorf("background draw call failed: %w", err)
	}

	for _, bf := range frame.Bodies {
		drawables := s.bodies[bf.Name]
		if drawables == nil {
			continue
		}
		if drawables.orbit != nil && frame.ShowOrbits {
			if err := s.renderer.Draw(orbitPipelineKey, drawables.orbit); err != nil {
				return fmt.Errorf("orbit draw failed for %q: %w", bf.Name, err)
			}
		}
		if err := s.renderer.DrawCall(meshPipelineKey, drawables.planet, 1); err != nil {
			return fmt.Errorf("draw call failed for %q: %w", bf.Name, err)
		}
		if drawables.ring != nil && bf.Transforms.Ring != nil {
			if err := s.renderer.DrawCall(meshPipelineKey, drawables.ring, 1); err != nil {
				return fmt.Errorf("ring draw call failed for %q: %w", bf.Name, err)
			}
		}
		if drawables.moon != nil && bf.Transforms.Moon != nil {
			if err := s.renderer.DrawCall(meshPipelineKey, drawables.moon, 1); err != nil {
				return fmt.Errorf("moon draw call failed for %q: %w", bf.Name, err)
			}
		}
	}

	for i := range frame.Meteors {
		if i >= len(s.meteors) {
			break
		}
		if err := s.renderer.DrawCall(meteorPipelineKey, s.meteors[i], 1); err != nil {
			return fmt.Errorf("meteor draw call failed for slot %d: %w", i, err)
		}
	}

	s.renderer.EndFrame()
	s.renderer.Present()
	return nil
}

// uniformWrite packs a MeshUniforms block for one drawable into a staged
// buffer write.
func (s *scene) uniformWrite(set binding.ResourceSet, model, view, proj [16]float32, tint [4]float32, unlit bool) binding.BufferWrite {
	u := renderer.MeshUniforms{
		Model: model,
		View:  view,
		Proj:  proj,
		Tint:  tint,
	}
	if unlit {
		u.Params[0] = 1
	}
	return binding.BufferWrite{
		Set:     set,
		Binding: 0,
		Offset:  0,
		Data:    common.StructToBytes(&u),
	}
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, drawables := range s.bodies {
		if drawables.planet != nil {
			drawables.planet.Release()
		}
		if drawables.ring != nil {
			drawables.ring.Release()
		}
		if drawables.moon != nil {
			drawables.moon.Release()
		}
		if drawables.orbit != nil {
			drawables.orbit.Release()
		}
	}
	if s.background != nil {
		s.background.Release()
	}
	for _, m := range s.meteors {
		if m != nil {
			m.Release()
		}
	}
	s.bodies = make(map[string]*bodyDrawables)
	s.meteors = nil
	s.initialized = false
}
