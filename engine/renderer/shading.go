package renderer

import (
	_ "embed"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/dleeaw/my3dObject/engine/camera"
	"github.com/dleeaw/my3dObject/engine/light"
	"github.com/dleeaw/my3dObject/engine/mesh"
	"github.com/dleeaw/my3dObject/engine/model"
	"github.com/dleeaw/my3dObject/engine/renderer/pipeline"
)

// ShadingPipelineKey identifies the single render pipeline drawing every shape.
const ShadingPipelineKey = "shading"

// Uniform bindings of bind group 0.
const (
	bindingCamera = 0
	bindingModel  = 1
	bindingLight  = 2
)

//go:embed assets/shading.wgsl
var shadingBody string

// ShadingSource returns the complete WGSL module of the shading pipeline: the uniform
// struct definitions of the camera, model and light packages followed by the entry points.
//
// Returns:
//   - string: the WGSL source
func ShadingSource() string {
	var sb strings.Builder
	for _, part := range []string{camera.GPUCameraUniformSource, model.GPUModelSource, light.GPULightSource, shadingBody} {
		sb.WriteString(part)
		sb.WriteString("\n")
	}
	return sb.String()
}

// vertexLayout mirrors mesh.Vertex: position, normal, texture coordinate and color.
func vertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: mesh.VertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3},
		},
	}
}

// uniformLayout describes bind group 0: one uniform buffer each for camera, model and light,
// visible to both stages.
func uniformLayout() wgpu.BindGroupLayoutDescriptor {
	var (
		cam camera.GPUCameraUniform
		mdl model.GPUModel
		lgt light.GPULight
	)
	entry := func(binding uint32, size int) wgpu.BindGroupLayoutEntry {
		e := wgpu.BindGroupLayoutEntry{
			Binding:    binding,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		}
		e.Buffer.Type = wgpu.BufferBindingTypeUniform
		e.Buffer.MinBindingSize = uint64(size)
		return e
	}
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Shading Uniforms",
		Entries: []wgpu.BindGroupLayoutEntry{
			entry(bindingCamera, cam.Size()),
			entry(bindingModel, mdl.Size()),
			entry(bindingLight, lgt.Size()),
		},
	}
}

// newShadingPipeline describes the pipeline drawing every shape. Faces are not culled so the
// flat shapes stay visible while they face away from the camera.
func newShadingPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(ShadingPipelineKey,
		pipeline.WithSource(ShadingSource(), "vs_main", "fs_main"),
		pipeline.WithVertexLayouts(vertexLayout()),
		pipeline.WithBindGroupLayouts(uniformLayout()),
		pipeline.WithCullMode(wgpu.CullModeNone),
	)
}
