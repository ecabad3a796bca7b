package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is a debug label prefixed to every GPU object created for this provider.
	label string

	// GPU resources below are created by the renderer backend and released by Release.

	bindGroup       *wgpu.BindGroup
	bindGroupLayout *wgpu.BindGroupLayout
	// sharedLayout is set when the layout belongs to a pipeline and is not released here.
	sharedLayout bool
	// buffers holds the uniform buffers keyed by binding index.
	buffers map[int]*wgpu.Buffer

	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   int
	// revision is the model revision the vertex and index buffers were uploaded from.
	revision uint64
}

// BindGroupProvider holds the GPU resources of one drawable concern: either a bind group of
// uniform buffers, or the vertex and index buffers of a mesh together with the revision of
// the data they were uploaded from.
//
// Usage pattern:
//  1. The renderer creates a provider with NewBindGroupProvider
//  2. The backend fills it through InitBindGroup or InitMeshBuffers
//  3. Per frame the renderer stages BufferWrites against its bindings
//  4. Draw calls read BindGroup, VertexBuffer and IndexBuffer
type BindGroupProvider interface {
	// Release releases every GPU resource held by this provider.
	Release()

	// ReleaseMesh releases only the vertex and index buffers so they can be re-uploaded.
	ReleaseMesh()

	// Label returns the debug label for this provider.
	Label() string

	// BindGroup returns the created bind group, or nil if not initialized.
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the created bind group layout, or nil if not initialized.
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the uniform buffer at the binding index, or nil.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(binding int) *wgpu.Buffer

	// VertexBuffer returns the mesh vertex buffer, or nil.
	VertexBuffer() *wgpu.Buffer

	// IndexBuffer returns the mesh index buffer, or nil.
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of indices drawn from IndexBuffer.
	IndexCount() int

	// Revision returns the model revision the mesh buffers hold.
	Revision() uint64

	// Stale reports whether the mesh buffers are missing or older than revision.
	//
	// Parameters:
	//   - revision: the current model revision
	//
	// Returns:
	//   - bool: true if the mesh must be (re-)uploaded
	Stale(revision uint64) bool

	SetBindGroup(bg *wgpu.BindGroup)
	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)
	SetBuffer(binding int, buf *wgpu.Buffer)
	SetVertexBuffer(buf *wgpu.Buffer)
	SetIndexBuffer(buf *wgpu.Buffer)
	SetIndexCount(count int)
	SetRevision(revision uint64)
}

var _ BindGroupProvider = &bindGroupProvider{}

// BufferWrite stages the upload of one uniform. Data replaces the whole buffer at Binding of
// Provider; writes to bindings the provider has no buffer for are skipped.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Data     []byte
}

// NewBindGroupProvider creates an empty provider.
//
// Parameters:
//   - label: debug label for the GPU objects
//   - options: functional options to configure the provider
//
// Returns:
//   - BindGroupProvider: the new provider
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:   label,
		buffers: make(map[int]*wgpu.Buffer),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *bindGroupProvider) Buffer(binding int) *wgpu.Buffer {
	return p.buffers[binding]
}

func (p *bindGroupProvider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *bindGroupProvider) IndexCount() int {
	return p.indexCount
}

func (p *bindGroupProvider) Revision() uint64 {
	return p.revision
}

func (p *bindGroupProvider) Stale(revision uint64) bool {
	return p.vertexBuffer == nil || p.indexBuffer == nil || p.revision != revision
}

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	p.bindGroup = bg
}

func (p *bindGroupProvider) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayout = bgl
}

func (p *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer) {
	p.buffers[binding] = buf
}

func (p *bindGroupProvider) SetVertexBuffer(buf *wgpu.Buffer) {
	p.vertexBuffer = buf
}

func (p *bindGroupProvider) SetIndexBuffer(buf *wgpu.Buffer) {
	p.indexBuffer = buf
}

func (p *bindGroupProvider) SetIndexCount(count int) {
	p.indexCount = count
}

func (p *bindGroupProvider) SetRevision(revision uint64) {
	p.revision = revision
}

func (p *bindGroupProvider) ReleaseMesh() {
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
	p.indexCount = 0
}

func (p *bindGroupProvider) Release() {
	p.ReleaseMesh()
	for i, buf := range p.buffers {
		if buf != nil {
			buf.Release()
		}
		delete(p.buffers, i)
	}
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.bindGroupLayout != nil && !p.sharedLayout {
		p.bindGroupLayout.Release()
	}
	p.bindGroupLayout = nil
}
