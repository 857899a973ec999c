package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// MeshUniforms is the uniform block shared by the mesh and line pipelines.
// Field order and alignment must match the WGSL Uniforms struct.
//
// Params packs per-draw flags: x is the unlit factor (1 skips diffuse
// shading, used for the sun, the background, and meteors), the remaining
// components are reserved.
type MeshUniforms struct {
	Model  [16]float32
	View   [16]float32
	Proj   [16]float32
	Tint   [4]float32
	Params [4]float32
}

// MeshUniformsSize is the byte size of MeshUniforms on the GPU.
const MeshUniformsSize = 3*64 + 2*16

// MeshShaderWGSL renders a textured, point-lit mesh. The light sits at the
// world origin so bodies are lit by the sun; the unlit param bypasses
// shading entirely.
const MeshShaderWGSL = `
struct Uniforms {
    model: mat4x4<f32>,
    view: mat4x4<f32>,
    proj: mat4x4<f32>,
    tint: vec4<f32>,
    params: vec4<f32>,
};

@group(0) @binding(0) var<uniform> uniforms: Uniforms;
@group(0) @binding(1) var base_texture: texture_2d<f32>;
@group(0) @binding(2) var base_sampler: sampler;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) world_pos: vec3<f32>,
    @location(1) world_normal: vec3<f32>,
    @location(2) uv: vec2<f32>,
};

@vertex
fn vs_main(
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) uv: vec2<f32>,
) -> VertexOutput {
    var out: VertexOutput;
    let world = uniforms.model * vec4<f32>(position, 1.0);
    out.position = uniforms.proj * uniforms.view * world;
    out.world_pos = world.xyz;
    out.world_normal = (uniforms.model * vec4<f32>(normal, 0.0)).xyz;
    out.uv = uv;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let albedo = textureSample(base_texture, base_sampler, in.uv) * uniforms.tint;
    if (uniforms.params.x >= 0.5) {
        return albedo;
    }
    let n = normalize(in.world_normal);
    let to_light = normalize(-in.world_pos);
    let diffuse = max(dot(n, to_light), 0.0);
    let ambient = 0.08;
    let lit = albedo.rgb * min(ambient + diffuse, 1.0);
    return vec4<f32>(lit, albedo.a);
}
`

// LineShaderWGSL renders position-only geometry in a flat tint color.
// Used for the orbit circles.
const LineShaderWGSL = `
struct Uniforms {
    model: mat4x4<f32>,
    view: mat4x4<f32>,
    proj: mat4x4<f32>,
    tint: vec4<f32>,
    params: vec4<f32>,
};

@group(0) @binding(0) var<uniform> uniforms: Uniforms;

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return uniforms.proj * uniforms.view * uniforms.model * vec4<f32>(position, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return uniforms.tint;
}
`

// MeshVertexLayout describes the interleaved position/normal/uv vertex
// format produced by geometry.GenerateSphere.
func MeshVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 8 * 4,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 3 * 4, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 6 * 4, ShaderLocation: 2},
		},
	}
}

// LineVertexLayout describes the position-only vertex format produced by
// geometry.GenerateOrbitCircle.
func LineVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 3 * 4,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		},
	}
}

// MeshBindGroupLayout describes group 0 of the mesh pipeline: the uniform
// block, the base color texture, and its sampler.
func MeshBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Mesh Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: MeshUniformsSize,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}

// LineBindGroupLayout describes group 0 of the line pipeline: the uniform
// block only.
func LineBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Line Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: MeshUniformsSize,
				},
			},
		},
	}
}
