package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("test-key", WithSource("shader source"))

	assert.Equal(t, "test-key", p.PipelineKey())
	assert.Equal(t, "shader source", p.Source())
	assert.Equal(t, "vs_main", p.VertexEntry())
	assert.Equal(t, "fs_main", p.FragmentEntry())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Nil(t, p.Pipeline(), "GPU pipeline is attached at registration")
}

func TestNewPipelineOptions(t *testing.T) {
	layout := wgpu.VertexBufferLayout{ArrayStride: 12}
	p := NewPipeline("lines",
		WithSource("line shader"),
		WithEntryPoints("vs_line", "fs_line"),
		WithVertexLayouts(layout),
		WithDepthTest(false),
		WithDepthWrite(false),
		WithBlend(true),
		WithCullMode(wgpu.CullModeBack),
		WithTopology(wgpu.PrimitiveTopologyLineStrip),
		WithFrontFace(wgpu.FrontFaceCW),
	)

	assert.Equal(t, "vs_line", p.VertexEntry())
	assert.Equal(t, "fs_line", p.FragmentEntry())
	assert.Len(t, p.VertexLayouts(), 1)
	assert.Equal(t, uint64(12), p.VertexLayouts()[0].ArrayStride)
	assert.False(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.True(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyLineStrip, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
}

func TestSetRenderPipeline(t *testing.T) {
	p := NewPipeline("test-key")

	rp := &wgpu.RenderPipeline{}
	p.SetRenderPipeline(rp)
	assert.Same(t, rp, p.Pipeline())
}
