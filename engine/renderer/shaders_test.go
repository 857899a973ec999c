package renderer

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshUniformsSize(t *testing.T) {
	// The Go struct layout must match the WGSL uniform block byte-for-byte.
	assert.Equal(t, uintptr(MeshUniformsSize), unsafe.Sizeof(MeshUniforms{}))
}

func TestMeshVertexLayout(t *testing.T) {
	layout := MeshVertexLayout()

	assert.Equal(t, uint64(32), layout.ArrayStride, "position(3) + normal(3) + uv(2) floats")
	require.Len(t, layout.Attributes, 3)

	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)

	assert.Equal(t, uint32(1), layout.Attributes[1].ShaderLocation)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[1].Format)

	assert.Equal(t, uint32(2), layout.Attributes[2].ShaderLocation)
	assert.Equal(t, uint64(24), layout.Attributes[2].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, layout.Attributes[2].Format)
}

func TestLineVertexLayout(t *testing.T) {
	layout := LineVertexLayout()

	assert.Equal(t, uint64(12), layout.ArrayStride, "position(3) floats only")
	require.Len(t, layout.Attributes, 1)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)
}

func TestMeshBindGroupLayout(t *testing.T) {
	desc := MeshBindGroupLayout()
	require.Len(t, desc.Entries, 3)

	uniform := desc.Entries[0]
	assert.Equal(t, uint32(0), uniform.Binding)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, uniform.Buffer.Type)
	assert.Equal(t, uint64(MeshUniformsSize), uniform.Buffer.MinBindingSize)

	assert.Equal(t, uint32(1), desc.Entries[1].Binding)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, desc.Entries[1].Texture.SampleType)

	assert.Equal(t, uint32(2), desc.Entries[2].Binding)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, desc.Entries[2].Sampler.Type)
}

func TestLineBindGroupLayout(t *testing.T) {
	desc := LineBindGroupLayout()
	require.Len(t, desc.Entries, 1)
	assert.Equal(t, uint64(MeshUniformsSize), desc.Entries[0].Buffer.MinBindingSize)
}

func TestShaderSourcesDeclareEntryPoints(t *testing.T) {
	for name, source := range map[string]string{
		"mesh": MeshShaderWGSL,
		"line": LineShaderWGSL,
	} {
		assert.Contains(t, source, "fn vs_main", "%s shader", name)
		assert.Contains(t, source, "fn fs_main", "%s shader", name)
	}
}

func TestShaderSourcesMatchUniformBlock(t *testing.T) {
	// Both shaders bind the same uniform block at group 0, binding 0.
	for _, source := range []string{MeshShaderWGSL, LineShaderWGSL} {
		assert.True(t, strings.Contains(source, "@group(0) @binding(0)"))
	}
}
