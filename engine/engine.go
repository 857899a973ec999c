// Package engine drives the visualizer's frame loop: it owns the window,
// the scene, and the simulation, and runs poll -> advance -> snapshot ->
// draw once per frame on the main thread.
package engine

import (
	"log"
	"sync"
	"time"

	"github.com/helioviz/orrery-go/engine/profiler"
	"github.com/helioviz/orrery-go/engine/scene"
	"github.com/helioviz/orrery-go/engine/window"
)

// engine implements the Engine interface.
type engine struct {
	running bool

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	scene scene.Scene

	// maxFrameDelta caps the dt fed to the simulation so a stall (window
	// drag, debugger pause) does not teleport every body.
	maxFrameDelta float32

	frameCallback func(deltaTime float32)

	lastFrame time.Time
}

// Engine is the main entry point for the visualizer.
// It orchestrates the frame loop, scene drawing, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene the engine draws each frame.
	//
	// Returns:
	//   - scene.Scene: the scene, or nil if not set
	Scene() scene.Scene

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers a function called once per frame after the
	// simulation has advanced but before the scene is drawn. Use this for
	// input-driven state changes that must see fresh simulation state.
	//
	// Parameters:
	//   - callback: function receiving the clamped delta time in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// Run starts the main frame loop (blocks until the window closes).
	// Each iteration polls window events, advances the simulation by the
	// elapsed wall time, snapshots it, and draws the scene.
	Run()

	// Quit signals the frame loop to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, scene, profiling)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel:      make(chan struct{}),
		running:          false,
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		maxFrameDelta:    0.1,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if e.scene == nil {
				return
			}
			if r := e.scene.Renderer(); r != nil {
				r.Resize(width, height)
			}
			if c := e.scene.Camera(); c != nil {
				c.SetAspect(float32(width) / float32(height))
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Run() {
	if e.window == nil {
		log.Println("engine has no window, nothing to run")
		return
	}

	e.running = true
	e.lastFrame = time.Now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
	e.signalQuit()
}

// frame executes one iteration of the loop: dt is measured once and shared
// by the simulation advance and the draw so all motion within a frame is
// coherent.
func (e *engine) frame() {
	select {
	case <-e.quitChannel:
		_ = e.window.Close()
		return
	default:
	}

	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now
	if dt > e.maxFrameDelta {
		dt = e.maxFrameDelta
	}

	if e.scene == nil || !e.scene.Active() {
		return
	}

	simulation := e.scene.Simulation()
	if simulation == nil {
		return
	}
	simulation.Advance(dt)

	if e.frameCallback != nil {
		e.frameCallback(dt)
	}

	if c := e.scene.Camera(); c != nil {
		c.Update()
	}

	frame := simulation.Snapshot()
	if err := e.scene.DrawFrame(frame); err != nil {
		log.Printf("frame dropped: %v", err)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// Quit signals the frame loop to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal the loop to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetFrameCallback registers the function called each frame.
func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}
