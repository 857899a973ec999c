package binding

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// resourceSet is the unexported implementation of ResourceSet.
type resourceSet struct {
	// label is a debug label added for convenience.
	label string

	// The following fields are GPU allocated resources and must be released
	// when no longer needed. They are populated by the Renderer during
	// initialization, not by user-creation.

	bindGroup       *wgpu.BindGroup
	bindGroupLayout *wgpu.BindGroupLayout
	// buffers holds the GPU buffers created for this set, keyed by binding index.
	buffers map[int]*wgpu.Buffer
	// textureViews holds the GPU texture views created for this set, keyed by binding index.
	textureViews map[int]*wgpu.TextureView
	// samplers holds the GPU samplers created for this set, keyed by binding index.
	samplers map[int]*wgpu.Sampler

	// Mesh geometry lives here too so a single set can describe one drawable:
	// one sphere, one orbit circle, plus its uniform/texture/sampler bindings.

	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	// indexCount drives DrawIndexed; zero means the set draws non-indexed.
	indexCount int
	// vertexCount drives non-indexed draws such as the orbit line strip.
	vertexCount int
}

// ResourceSet groups the GPU resources behind one drawable: its bind group
// (uniform buffer, texture view, sampler) and its mesh buffers. Each body
// surface, ring, moon, orbit circle, and meteor holds its own set.
//
// Usage pattern:
//  1. Create a ResourceSet with a label
//  2. Renderer.InitMeshBuffers / InitTextureView / InitSampler populate resources
//  3. Renderer.InitBindGroup creates the bind group from a layout descriptor
//  4. Renderer.WriteBuffers updates uniforms each frame
//  5. Renderer.DrawCall / Draw consume the set
type ResourceSet interface {
	// Release releases all GPU resources held by this set.
	Release()

	// Label returns the debug label for this set.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the created bind group, or nil before initialization.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the created bind group layout, or nil before
	// initialization.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the layout or nil
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the GPU buffer for a specific binding, or nil if not set.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(binding int) *wgpu.Buffer

	// TextureView returns the GPU texture view for a specific binding, or nil if not set.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.TextureView: the texture view or nil
	TextureView(binding int) *wgpu.TextureView

	// Sampler returns the GPU sampler for a specific binding, or nil if not set.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Sampler: the sampler or nil
	Sampler(binding int) *wgpu.Sampler

	// VertexBuffer returns the GPU vertex buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer or nil
	VertexBuffer() *wgpu.Buffer

	// IndexBuffer returns the GPU index buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the index buffer or nil
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of indices for indexed draw calls.
	// Zero indicates a non-indexed drawable.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// VertexCount returns the number of vertices for non-indexed draw calls.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// SetBindGroup stores the bind group after GPU initialization.
	// Called by Renderer.InitBindGroup().
	//
	// Parameters:
	//   - bg: the created bind group
	SetBindGroup(bg *wgpu.BindGroup)

	// SetBindGroupLayout stores the bind group layout after GPU initialization.
	// Called by Renderer.InitBindGroup().
	//
	// Parameters:
	//   - bgl: the created layout
	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)

	// SetBuffer stores a GPU buffer for a specific binding.
	//
	// Parameters:
	//   - binding: the binding index
	//   - buf: the created buffer
	SetBuffer(binding int, buf *wgpu.Buffer)

	// SetTextureView stores a GPU texture view for a specific binding.
	//
	// Parameters:
	//   - binding: the binding index
	//   - tv: the texture view to store
	SetTextureView(binding int, tv *wgpu.TextureView)

	// SetSampler stores a GPU sampler for a specific binding.
	//
	// Parameters:
	//   - binding: the binding index
	//   - s: the sampler to store
	SetSampler(binding int, s *wgpu.Sampler)

	// SetVertexBuffer stores the GPU vertex buffer after creation.
	//
	// Parameters:
	//   - buf: the created vertex buffer
	SetVertexBuffer(buf *wgpu.Buffer)

	// SetIndexBuffer stores the GPU index buffer after creation.
	//
	// Parameters:
	//   - buf: the created index buffer
	SetIndexBuffer(buf *wgpu.Buffer)

	// SetIndexCount sets the number of indices for indexed draw calls.
	//
	// Parameters:
	//   - count: the index count
	SetIndexCount(count int)

	// SetVertexCount sets the number of vertices for non-indexed draw calls.
	//
	// Parameters:
	//   - count: the vertex count
	SetVertexCount(count int)
}

// BufferWrite describes a single GPU buffer write targeting a specific
// binding on a ResourceSet at a given byte offset.
type BufferWrite struct {
	Set     ResourceSet
	Binding int
	Offset  uint64
	Data    []byte
}

// Compile-time check that resourceSet implements ResourceSet
var _ ResourceSet = &resourceSet{}

// NewResourceSet creates a new ResourceSet with the given debug label.
//
// Parameters:
//   - label: the debug label for this set
//
// Returns:
//   - ResourceSet: a new empty resource set
func NewResourceSet(label string) ResourceSet {
	return &resourceSet{
		label:        label,
		buffers:      make(map[int]*wgpu.Buffer),
		textureViews: make(map[int]*wgpu.TextureView),
		samplers:     make(map[int]*wgpu.Sampler),
	}
}

func (p *resourceSet) Label() string {
	return p.label
}

func (p *resourceSet) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *resourceSet) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *resourceSet) Buffer(binding int) *wgpu.Buffer {
	return p.buffers[binding]
}

func (p *resourceSet) TextureView(binding int) *wgpu.TextureView {
	return p.textureViews[binding]
}

func (p *resourceSet) Sampler(binding int) *wgpu.Sampler {
	return p.samplers[binding]
}

func (p *resourceSet) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *resourceSet) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *resourceSet) IndexCount() int {
	return p.indexCount
}

func (p *resourceSet) VertexCount() int {
	return p.vertexCount
}

func (p *resourceSet) SetBindGroup(bg *wgpu.BindGroup) {
	p.bindGroup = bg
}

func (p *resourceSet) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayout = bgl
}

func (p *resourceSet) SetBuffer(binding int, buf *wgpu.Buffer) {
	p.buffers[binding] = buf
}

func (p *resourceSet) SetTextureView(binding int, tv *wgpu.TextureView) {
	p.textureViews[binding] = tv
}

func (p *resourceSet) SetSampler(binding int, s *wgpu.Sampler) {
	p.samplers[binding] = s
}

func (p *resourceSet) SetVertexBuffer(buf *wgpu.Buffer) {
	p.vertexBuffer = buf
}

func (p *resourceSet) SetIndexBuffer(buf *wgpu.Buffer) {
	p.indexBuffer = buf
}

func (p *resourceSet) SetIndexCount(count int) {
	p.indexCount = count
}

func (p *resourceSet) SetVertexCount(count int) {
	p.vertexCount = count
}

func (p *resourceSet) Release() {
	for i, tv := range p.textureViews {
		if tv != nil {
			tv.Release()
			delete(p.textureViews, i)
		}
	}
	for i, s := range p.samplers {
		if s != nil {
			s.Release()
			delete(p.samplers, i)
		}
	}
	for i, buf := range p.buffers {
		if buf != nil {
			buf.Release()
			delete(p.buffers, i)
		}
	}

	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.bindGroupLayout != nil {
		p.bindGroupLayout.Release()
		p.bindGroupLayout = nil
	}
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
}
