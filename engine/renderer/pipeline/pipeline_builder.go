package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineBuilderOption is a functional option for configuring a Pipeline.
type PipelineBuilderOption func(p *pipeline)

// WithSource sets the WGSL module and the names of its entry points.
//
// Parameters:
//   - source: the WGSL module source
//   - vertexEntryPoint: the vertex stage entry point (default "vs_main")
//   - fragmentEntryPoint: the fragment stage entry point (default "fs_main")
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithSource(source, vertexEntryPoint, fragmentEntryPoint string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.source = source
		if vertexEntryPoint != "" {
			p.vertexEntryPoint = vertexEntryPoint
		}
		if fragmentEntryPoint != "" {
			p.fragEntryPoint = fragmentEntryPoint
		}
	}
}

// WithVertexLayouts sets the vertex buffer layouts.
//
// Parameters:
//   - layouts: one layout per vertex buffer slot
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexLayouts = layouts
	}
}

// WithBindGroupLayouts sets the bind group layouts.
//
// Parameters:
//   - layouts: layout descriptors indexed by group number
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithBindGroupLayouts(layouts ...wgpu.BindGroupLayoutDescriptor) PipelineBuilderOption {
	return func(p *pipeline) {
		p.bindGroupLayouts = layouts
	}
}

// WithDepthTestEnabled sets whether fragments are depth tested.
//
// Parameters:
//   - enabled: true to compare against the depth buffer (default)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled sets whether fragments write depth.
//
// Parameters:
//   - enabled: true to write to the depth buffer (default)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithCullMode sets which triangle faces are culled.
//
// Parameters:
//   - mode: the cull mode (default wgpu.CullModeNone)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology.
//
// Parameters:
//   - topology: the topology (default triangle list)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace sets the winding order of front faces.
//
// Parameters:
//   - frontFace: the winding (default counter-clockwise)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = frontFace
	}
}

// WithWriteMask sets which color channels are written.
//
// Parameters:
//   - writeMask: the channel mask (default all)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = writeMask
	}
}
